package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ares-editor/valtree/parse"
	"github.com/ares-editor/valtree/value"

	"github.com/scott-cotton/cli"
)

func getValueFile(cc *cli.Context, path string, opts ...parse.ParseOption) (value.Value, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, opts...)
}

// eachValueFile calls f on each file in args, or on stdin if there are
// none.
func eachValueFile(cc *cli.Context, args []string, f func(string, value.Value) error, opts ...parse.ParseOption) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		v, err := getValueFile(cc, arg, opts...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if err := f(arg, v); err != nil {
			return err
		}
	}
	return nil
}

// lookupArg resolves a path option against root, accepting paths
// without the leading $.
func lookupArg(root value.Value, path string) (value.Value, error) {
	if path == "" {
		return root, nil
	}
	if path[0] != '$' {
		path = "$" + path
	}
	return value.Lookup(root, path)
}
