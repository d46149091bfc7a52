package main

import (
	"fmt"

	"github.com/ares-editor/valtree/encode"
	"github.com/ares-editor/valtree/format"
	"github.com/ares-editor/valtree/schema"
	"github.com/ares-editor/valtree/value"

	"github.com/scott-cotton/cli"
)

type inserter interface {
	InsertValue(index int, child value.Value) bool
}

func add(cfg *AddConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Add.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: add requires 1 file, got %v", cli.ErrUsage, args)
	}
	if cfg.Write && args[0] == "-" {
		return fmt.Errorf("%w: cannot write back to stdin", cli.ErrUsage)
	}
	pOpts, err := cfg.parseOpts()
	if err != nil {
		return err
	}
	doc, err := getValueFile(cc, args[0], pOpts...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	coll, err := lookupArg(doc, cfg.At)
	if err != nil {
		return err
	}
	if coll.Kind() != value.CollectionKind {
		return fmt.Errorf("%w: %s is a %s, not a collection", cli.ErrUsage, value.Path(coll), coll.Kind())
	}
	member, err := addMember(cfg, coll)
	if err != nil {
		return err
	}
	theLog.Info("added", "path", value.Path(member), "value", value.Dump(member, false))
	if !cfg.Write {
		return encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out, format.FromSuffix(args[0]))...)
	}
	return writeBack(args[0], doc)
}

func addMember(cfg *AddConfig, coll value.Value) (value.Value, error) {
	var selected value.Value
	if cfg.After >= 0 {
		if selected = coll.Child(cfg.After); selected == nil {
			return nil, fmt.Errorf("%w: no member %d in %s", cli.ErrUsage, cfg.After, value.Path(coll))
		}
	}
	if cfg.Template == "" {
		member := coll.NewValue(cfg.Index, selected, cfg.Hints)
		if member == nil {
			return nil, fmt.Errorf("%s cannot make new members, try -tmpl", value.Path(coll))
		}
		return member, nil
	}
	tmpl := schema.Lookup(cfg.Template)
	if tmpl == nil {
		return nil, fmt.Errorf("%w: no template %q registered, see -s", cli.ErrUsage, cfg.Template)
	}
	member, err := tmpl.Build(cfg.Hints)
	if err != nil {
		return nil, err
	}
	index := cfg.Index
	if index < 0 && selected != nil {
		index = value.IndexOf(coll, selected) + 1
	}
	ins, ok := coll.(inserter)
	if !ok || !ins.InsertValue(index, member) {
		return nil, fmt.Errorf("%s refused the new member", value.Path(coll))
	}
	return member, nil
}
