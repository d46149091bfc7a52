package main

import (
	"github.com/ares-editor/valtree/encode"
	"github.com/ares-editor/valtree/format"
	"github.com/ares-editor/valtree/value"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	pOpts, err := cfg.parseOpts()
	if err != nil {
		return err
	}
	return eachValueFile(cc, args, func(_ string, v value.Value) error {
		opts := append(cfg.encOpts(cc.Out, format.TreeFormat), encode.Depth(cfg.Depth))
		return encode.Encode(v, cc.Out, opts...)
	}, pOpts...)
}
