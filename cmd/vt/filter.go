package main

import (
	"fmt"

	"github.com/ares-editor/valtree/encode"
	"github.com/ares-editor/valtree/eval"
	"github.com/ares-editor/valtree/format"
	"github.com/ares-editor/valtree/value"

	"github.com/scott-cotton/cli"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: filter requires an expression", cli.ErrUsage)
	}
	pred := args[0]
	pOpts, err := cfg.parseOpts()
	if err != nil {
		return err
	}
	return eachValueFile(cc, args[1:], func(file string, v value.Value) error {
		coll, err := lookupArg(v, cfg.At)
		if err != nil {
			return err
		}
		f, err := eval.NewFilter(coll, pred, nil)
		if err != nil {
			return err
		}
		defer f.Close()
		res := f.Collection()
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out, format.YAMLFormat)...); err != nil {
			return err
		}
		if f.Err() != nil {
			theLog.Warn("members left out", "file", file, "error", f.Err())
		}
		return nil
	}, pOpts...)
}

func calc(cfg *CalcConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Calc.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: calc requires an expression", cli.ErrUsage)
	}
	code := args[0]
	pOpts, err := cfg.parseOpts()
	if err != nil {
		return err
	}
	return eachValueFile(cc, args[1:], func(_ string, v value.Value) error {
		src, err := lookupArg(v, cfg.At)
		if err != nil {
			return err
		}
		f, err := eval.NewFormula(src, code, value.NoneKind, nil)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := f.Err(); err != nil {
			return err
		}
		return encode.Encode(f, cc.Out, cfg.encOpts(cc.Out, format.YAMLFormat)...)
	}, pOpts...)
}
