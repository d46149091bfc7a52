package main

import (
	"fmt"

	"github.com/ares-editor/valtree/encode"
	"github.com/ares-editor/valtree/format"
	"github.com/ares-editor/valtree/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	pOpts, err := cfg.parseOpts()
	if err != nil {
		return err
	}
	a, err := getValueFile(cc, args[0], pOpts...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getValueFile(cc, args[1], pOpts...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	d := libdiff.Diff(a, b)
	if len(d) == 0 {
		return nil
	}
	if cfg.Reverse {
		d, err = libdiff.Reverse(d)
		if err != nil {
			return fmt.Errorf("error reversing: %w", err)
		}
	}
	if err := encode.EncodeChanges(d, cc.Out, cfg.encOpts(cc.Out, format.TreeFormat)...); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
