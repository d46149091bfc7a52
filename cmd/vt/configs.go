package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ares-editor/valtree/encode"
	"github.com/ares-editor/valtree/format"
	"github.com/ares-editor/valtree/parse"
	"github.com/ares-editor/valtree/schema"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='encode with color'"`
	Gops    bool   `cli:"name=gops desc='start a gops agent'"`
	Schema  string `cli:"name=s aliases=schema desc='register the templates in this yaml file'"`
	NoInfer bool   `cli:"name=noinfer desc='do not infer collection member templates'"`

	T bool `cli:"name=t aliases=tree desc='output as a tree'"`
	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// loadSchema registers the templates named by -s, once.
func (cfg *MainConfig) loadSchema() error {
	if cfg.Schema == "" {
		return nil
	}
	d, err := os.ReadFile(cfg.Schema)
	if err != nil {
		return err
	}
	ts, err := schema.Load(d)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", cfg.Schema, err)
	}
	for _, t := range ts {
		if schema.Lookup(t.Name) == t {
			continue
		}
		if err := schema.Register(t); err != nil {
			return err
		}
	}
	cfg.Schema = ""
	return nil
}

func (cfg *MainConfig) parseOpts() ([]parse.ParseOption, error) {
	if cfg.InFormat != nil && !cfg.InFormat.Readable() {
		return nil, fmt.Errorf("%w: cannot read %s", format.ErrBadFormat, *cfg.InFormat)
	}
	if err := cfg.loadSchema(); err != nil {
		return nil, err
	}
	return []parse.ParseOption{parse.InferMakers(!cfg.NoInfer)}, nil
}

// outFormat is the format selected by -t/-j/-y or -O, falling back to
// def.
func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	switch {
	case cfg.T:
		return format.TreeFormat
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	}
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return def
}

func (cfg *MainConfig) encOpts(w io.Writer, def format.Format) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat(def)),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type DumpConfig struct {
	*MainConfig
	Depth int `cli:"name=d aliases=depth desc='limit the depth shown'"`
	Dump  *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type EditConfig struct {
	*MainConfig
	Patch  string `cli:"name=p aliases=patch desc='json patch file (json or yaml)'"`
	Merge  string `cli:"name=m aliases=merge desc='json merge patch file (json or yaml)'"`
	DryRun bool   `cli:"name=n desc='show the changes without applying them'"`
	Write  bool   `cli:"name=w desc='write the result back to the file'"`

	Edit *cli.Command
}

type AddConfig struct {
	*MainConfig
	At       string `cli:"name=at desc='path of the collection to add to'"`
	Index    int    `cli:"name=i desc='insert at this index'"`
	After    int    `cli:"name=after desc='insert after the member at this index'"`
	Template string `cli:"name=tmpl desc='registered template to build the member from'"`
	Write    bool   `cli:"name=w desc='write the result back to the file'"`
	Hints    map[string]string

	Add *cli.Command
}

type FilterConfig struct {
	*MainConfig
	At string `cli:"name=at desc='path of the collection to filter'"`

	Filter *cli.Command
}

type CalcConfig struct {
	*MainConfig
	At string `cli:"name=at desc='path of the value the expression reads'"`

	Calc *cli.Command
}

type SchemaConfig struct {
	*MainConfig
	Schema *cli.Command
}

type SchemaInferConfig struct {
	*MainConfig
	Name  string `cli:"name=n desc='name of the inferred template'"`
	Infer *cli.Command
}

type SchemaCheckConfig struct {
	*MainConfig
	Name  string `cli:"name=n desc='template to check against (default the first)'"`
	Check *cli.Command
}

type WatchConfig struct {
	*MainConfig
	Every   time.Duration
	Limit   int    `cli:"name=lim desc='max number of reloads (default unlimited)'"`
	Select  string `cli:"name=sel desc='path of a collection to select from'"`
	Index   int    `cli:"name=i desc='index of the selected member'"`
	Formula string `cli:"name=f desc='expression to recompute over the selected member'"`

	Watch *cli.Command
}

func (cfg *WatchConfig) mkEvery() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		cfg.Every = d
		return d, nil
	}
}

func hintFunc(hints map[string]string) func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		k, v, ok := strings.Cut(a, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: hint %q should be key=value", cli.ErrUsage, a)
		}
		hints[k] = v
		return 0, nil
	}
}
