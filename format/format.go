package format

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Format is a text form of a value tree.
//
// TreeFormat is the indented rendering of value.Dump: one line per value
// with its kind, named fields and collection indices.  It shows every
// kind exactly, Long apart from Float included, but it is write only.
// YAMLFormat and JSONFormat are the interchange forms; both can be parsed
// back into a tree.
type Format int

const (
	TreeFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

type formatInfo struct {
	name     string
	short    string
	suffixes []string
	readable bool
}

var formats = [...]formatInfo{
	TreeFormat: {name: "tree", short: "t", suffixes: []string{".tree"}},
	YAMLFormat: {name: "yaml", short: "y", suffixes: []string{".yaml", ".yml"}, readable: true},
	JSONFormat: {name: "json", short: "j", suffixes: []string{".json"}, readable: true},
}

func (f Format) info() (formatInfo, bool) {
	if f < 0 || int(f) >= len(formats) {
		return formatInfo{}, false
	}
	return formats[f], true
}

// ParseFormat accepts a format's name or its one letter abbreviation.
func ParseFormat(v string) (Format, error) {
	for _, f := range AllFormats() {
		if in, _ := f.info(); v == in.name || v == in.short {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	in, ok := f.info()
	if !ok {
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
	return []byte(in.name), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsTree() bool { return f == TreeFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Readable reports whether documents in f can be parsed into a tree.
func (f Format) Readable() bool {
	in, _ := f.info()
	return in.readable
}

// Suffix returns the preferred file extension, with the dot.
func (f Format) Suffix() string {
	in, ok := f.info()
	if !ok {
		return ""
	}
	return in.suffixes[0]
}

// FromSuffix guesses a format from a file name's extension, defaulting to
// YAML.  Stdin ("-") is YAML.
func FromSuffix(name string) Format {
	ext := filepath.Ext(name)
	if ext == name {
		return YAMLFormat
	}
	for _, f := range AllFormats() {
		in, _ := f.info()
		for _, s := range in.suffixes {
			if ext == s {
				return f
			}
		}
	}
	return YAMLFormat
}

// AllFormats returns all formats in preference order.
func AllFormats() []Format {
	return []Format{TreeFormat, YAMLFormat, JSONFormat}
}
