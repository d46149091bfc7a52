package main

import (
	"fmt"
	"os"

	"github.com/ares-editor/valtree/schema"
	"github.com/ares-editor/valtree/value"

	"github.com/scott-cotton/cli"
)

func schemaInfer(cfg *SchemaInferConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Infer.Parse(cc, args)
	if err != nil {
		return err
	}
	pOpts, err := cfg.parseOpts()
	if err != nil {
		return err
	}
	return eachValueFile(cc, args, func(_ string, v value.Value) error {
		t := schema.FromValue(v)
		t.Name = cfg.Name
		_, err := fmt.Fprintf(cc.Out, "- %s\n", indentAfterFirst(t.String()))
		return err
	}, pOpts...)
}

func indentAfterFirst(s string) string {
	res := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		res = append(res, s[i])
		if s[i] == '\n' {
			res = append(res, ' ', ' ')
		}
	}
	return string(res)
}

func schemaCheck(cfg *SchemaCheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: schema check requires at least 1 argument (template file)", cli.ErrUsage)
	}
	tmpl, err := loadTemplate(args[0], cfg.Name)
	if err != nil {
		return fmt.Errorf("failed to load template %s: %w", args[0], err)
	}
	pOpts, err := cfg.parseOpts()
	if err != nil {
		return err
	}
	failed := 0
	err = eachValueFile(cc, args[1:], func(file string, v value.Value) error {
		if err := tmpl.Check(v); err != nil {
			failed++
			fmt.Fprintf(cc.Out, "%s: %v\n", file, err)
			return nil
		}
		fmt.Fprintf(cc.Out, "%s: ok\n", file)
		return nil
	}, pOpts...)
	if err != nil {
		return err
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func loadTemplate(file, name string) (*schema.Template, error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	ts, err := schema.Load(d)
	if err != nil {
		return nil, err
	}
	for _, t := range ts {
		if name == "" || t.Name == name {
			return t, nil
		}
	}
	if name == "" {
		return nil, fmt.Errorf("no templates in %s", file)
	}
	return nil, fmt.Errorf("no template %q in %s", name, file)
}
