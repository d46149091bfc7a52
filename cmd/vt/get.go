package main

import (
	"fmt"

	"github.com/ares-editor/valtree/encode"
	"github.com/ares-editor/valtree/format"
	"github.com/ares-editor/valtree/value"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a value path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	pOpts, err := cfg.parseOpts()
	if err != nil {
		return err
	}
	return eachValueFile(cc, args[1:], func(file string, v value.Value) error {
		res, err := lookupArg(v, path)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, path, err)
		}
		return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out, format.YAMLFormat)...)
	}, pOpts...)
}
