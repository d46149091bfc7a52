package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/ares-editor/valtree/eval"
	"github.com/ares-editor/valtree/mirror"
	"github.com/ares-editor/valtree/patch"
	"github.com/ares-editor/valtree/value"

	"github.com/scott-cotton/cli"
)

func watch(cfg *WatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Watch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 || args[0] == "-" {
		return fmt.Errorf("%w: watch requires 1 file", cli.ErrUsage)
	}
	if cfg.Every <= 0 {
		return fmt.Errorf("%w: -every must be positive", cli.ErrUsage)
	}
	file := args[0]
	pOpts, err := cfg.parseOpts()
	if err != nil {
		return err
	}
	doc, err := getValueFile(cc, file, pOpts...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	if cfg.Select != "" {
		stop, err := watchSelection(cfg, doc)
		if err != nil {
			return err
		}
		defer stop()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	ticker := time.NewTicker(cfg.Every)
	defer ticker.Stop()
	for n := 0; cfg.Limit < 0 || n < cfg.Limit; n++ {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		next, err := getValueFile(cc, file, pOpts...)
		if err != nil {
			theLog.Warn("reload failed", "file", file, "error", err)
			continue
		}
		changes, err := patch.Assign(doc, next)
		if err != nil {
			theLog.Error("reload failed", "file", file, "error", err)
			continue
		}
		for i := range changes {
			c := &changes[i]
			theLog.Info("change", "op", c.Op, "path", c.Path)
		}
	}
	return nil
}

// watchSelection selects a member of the collection at cfg.Select through
// a mirror, and logs the selected member (and cfg.Formula over it) as it
// changes.
func watchSelection(cfg *WatchConfig, doc value.Value) (func(), error) {
	coll, err := lookupArg(doc, cfg.Select)
	if err != nil {
		return nil, err
	}
	if coll.Kind() != value.CollectionKind || coll.Len() == 0 {
		return nil, fmt.Errorf("%w: %s is not a non-empty collection", cli.ErrUsage, value.Path(coll))
	}
	first := coll.Child(0)
	m := mirror.New(first.Kind())
	if first.Kind() == value.CompositeKind {
		m.SetupComposite(first)
	}
	sel := mirror.NewSelection(coll, m)
	sel.Select(cfg.Index)
	if sel.Index() < 0 {
		sel.Close()
		return nil, fmt.Errorf("%w: no member %d in %s", cli.ErrUsage, cfg.Index, value.Path(coll))
	}
	sub := m.Subscribe(value.ListenerFunc(func(v value.Value) {
		theLog.Info("selected", "index", sel.Index(), "value", value.Dump(v, false))
	}))
	stop := func() {
		sub.Unsubscribe()
		sel.Close()
	}
	if cfg.Formula == "" {
		return stop, nil
	}
	f, err := eval.NewFormula(m, cfg.Formula, value.NoneKind, nil)
	if err != nil {
		stop()
		return nil, err
	}
	fsub := f.Subscribe(value.ListenerFunc(func(v value.Value) {
		if err := f.Err(); err != nil {
			theLog.Warn("formula", "code", f.Code(), "error", err)
			return
		}
		theLog.Info("formula", "code", f.Code(), "value", value.Dump(v, false))
	}))
	theLog.Info("formula", "code", f.Code(), "value", value.Dump(f, false))
	return func() {
		fsub.Unsubscribe()
		f.Close()
		stop()
	}, nil
}
