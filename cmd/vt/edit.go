package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ares-editor/valtree/buffer"
	"github.com/ares-editor/valtree/encode"
	"github.com/ares-editor/valtree/format"
	"github.com/ares-editor/valtree/libdiff"
	"github.com/ares-editor/valtree/patch"
	"github.com/ares-editor/valtree/value"

	"github.com/scott-cotton/cli"
)

func edit(cfg *EditConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Edit.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: edit requires 1 file, got %v", cli.ErrUsage, args)
	}
	if (cfg.Patch == "") == (cfg.Merge == "") {
		return fmt.Errorf("%w: edit requires exactly one of -p and -m", cli.ErrUsage)
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
	changes, err := bufferedEdit(cfg, doc)
	if err != nil {
		return err
	}
	if err := encode.EncodeChanges(changes, os.Stderr, cfg.encOpts(os.Stderr, format.TreeFormat)...); err != nil {
		return err
	}
	if cfg.DryRun {
		return nil
	}
	theLog.Info("applied", "file", args[0], "changes", len(changes))
	if !cfg.Write {
		return encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out, format.FromSuffix(args[0]))...)
	}
	return writeBack(args[0], doc)
}

// bufferedEdit makes the edit in a buffer over doc and returns the
// pending changes.  Unless cfg.DryRun, the buffer is then applied to doc.
func bufferedEdit(cfg *EditConfig, doc value.Value) ([]libdiff.Change, error) {
	buf := buffer.New(doc)
	defer buf.Release()
	if err := applyEdit(cfg, buf); err != nil {
		return nil, err
	}
	changes := libdiff.Diff(doc, buf)
	if cfg.DryRun {
		return changes, nil
	}
	buf.Apply()
	if buf.IsDirty() {
		return changes, fmt.Errorf("some changes could not be applied to %s", value.Path(doc))
	}
	return changes, nil
}

func applyEdit(cfg *EditConfig, dst value.Value) error {
	if cfg.Merge != "" {
		d, err := os.ReadFile(cfg.Merge)
		if err != nil {
			return err
		}
		_, err = patch.Merge(dst, d)
		return err
	}
	d, err := os.ReadFile(cfg.Patch)
	if err != nil {
		return err
	}
	ops, err := patch.Decode(d)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", cfg.Patch, err)
	}
	_, err = patch.Apply(dst, ops)
	return err
}

// writeBack replaces file with v, in the format of the file's suffix.
func writeBack(file string, v value.Value) error {
	out := &bytes.Buffer{}
	if err := encode.Encode(v, out, encode.EncodeFormat(format.FromSuffix(file))); err != nil {
		return err
	}
	fi, err := os.Stat(file)
	if err != nil {
		return err
	}
	return os.WriteFile(file, out.Bytes(), fi.Mode().Perm())
}
