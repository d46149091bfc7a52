package main

import (
	"time"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: tree/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "vt").
		WithSynopsis("vt [opts] command [opts]").
		WithDescription("vt is a tool for inspecting and editing value trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return vtMain(cfg, cc, args)
		}).
		WithSubs(
			DumpCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			EditCommand(cfg),
			AddCommand(cfg),
			FilterCommand(cfg),
			CalcCommand(cfg),
			SchemaCommand(cfg),
			WatchCommand(cfg))
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [-d depth] [files]").
		WithDescription("dump value trees").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get values at a path such as $.quests[0].name").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-r] a b").
		WithDescription("list the changes taking one document to another").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func EditCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Edit, "edit").
		WithAliases("e").
		WithOpts(opts...).
		WithSynopsis("edit (-p patch | -m merge) [-n] [-w] file").
		WithDescription(editDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return edit(cfg, cc, args)
		})
}

const editDescription = `edit applies a JSON patch or merge patch to a document.

The patch is applied to a buffered copy of the document.  The changes are
listed on stderr and, unless -n is given, committed to the document, which
is then written to the output, or back to the file with -w.`

func AddCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AddConfig{MainConfig: mainCfg, Index: -1, After: -1, Hints: map[string]string{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "set",
		Description: "set a field of the new member",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(hintFunc(cfg.Hints)), "(key=val)"),
	})
	return cli.NewCommandAt(&cfg.Add, "add").
		WithAliases("a").
		WithOpts(opts...).
		WithSynopsis("add -at <path> [-i index | -after index] [-tmpl name] [-set key=val]... file").
		WithDescription("add a member to a collection, made from the collection's template").
		WithRun(func(cc *cli.Context, args []string) error {
			return add(cfg, cc, args)
		})
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Filter, "filter").
		WithAliases("f").
		WithOpts(opts...).
		WithSynopsis("filter [-at path] <expr> [files]").
		WithDescription("keep the members of a collection for which expr holds").
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
}

func CalcCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CalcConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Calc, "calc").
		WithAliases("c").
		WithOpts(opts...).
		WithSynopsis("calc [-at path] <expr> [files]").
		WithDescription("evaluate an expression against a value").
		WithRun(func(cc *cli.Context, args []string) error {
			return calc(cfg, cc, args)
		})
}

func SchemaCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SchemaConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Schema, "schema").
		WithSynopsis("schema <subcommand>").
		WithDescription("infer templates from documents and check documents against them").
		WithSubs(
			SchemaInferCommand(cfg.MainConfig),
			SchemaCheckCommand(cfg.MainConfig))
}

func SchemaInferCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SchemaInferConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Infer, "infer").
		WithOpts(opts...).
		WithSynopsis("infer [-n name] [files]").
		WithDescription("print the template of documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return schemaInfer(cfg, cc, args)
		})
}

func SchemaCheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SchemaCheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithOpts(opts...).
		WithSynopsis("check [-n name] <template-file> [files]").
		WithDescription("validate documents against a template").
		WithRun(func(cc *cli.Context, args []string) error {
			return schemaCheck(cfg, cc, args)
		})
}

func WatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WatchConfig{MainConfig: mainCfg, Every: time.Second, Limit: -1}
	everyOpt := &cli.Opt{
		Name:        "every",
		Description: "reload interval",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.mkEvery()), "(duration)"),
	}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, everyOpt)
	return cli.NewCommandAt(&cfg.Watch, "watch").
		WithAliases("w").
		WithOpts(opts...).
		WithSynopsis("watch [-every d] [-lim n] [-sel path -i index [-f expr]] file").
		WithDescription(watchDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return watch(cfg, cc, args)
		})
}

const watchDescription = `watch reloads a document periodically and logs what changed.

Each reload is assigned into the tree loaded first, so values keep their
identity and listeners fire only for what changed.  With -sel, a member of
the collection at that path is selected by index and followed as it moves;
with -f, an expression over the selected member is recomputed and logged
whenever the member changes.`
