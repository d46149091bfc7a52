package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		var g Format
		if err := g.UnmarshalText([]byte(f.String())); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("%s round tripped to %s", f, g)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
}

func TestFromSuffix(t *testing.T) {
	tests := map[string]Format{
		"a.json":   JSONFormat,
		"a.yaml":   YAMLFormat,
		"a.tree":   TreeFormat,
		"a.yml":    YAMLFormat,
		"-":        YAMLFormat,
		"d/a.json": JSONFormat,
		".json":    YAMLFormat,
		"archive":  YAMLFormat,
	}
	for name, want := range tests {
		if got := FromSuffix(name); got != want {
			t.Errorf("%s: got %s want %s", name, got, want)
		}
	}
}

func TestReadable(t *testing.T) {
	tests := []struct {
		abbrev string
		want   Format
		read   bool
		suffix string
	}{
		{"t", TreeFormat, false, ".tree"},
		{"y", YAMLFormat, true, ".yaml"},
		{"j", JSONFormat, true, ".json"},
	}
	for _, tc := range tests {
		t.Run(tc.abbrev, func(t *testing.T) {
			f, err := ParseFormat(tc.abbrev)
			if err != nil {
				t.Fatal(err)
			}
			if f != tc.want || f.Readable() != tc.read || f.Suffix() != tc.suffix {
				t.Errorf("%s: readable=%t suffix=%s", f, f.Readable(), f.Suffix())
			}
		})
	}
	if Format(7).Readable() || Format(7).Suffix() != "" {
		t.Errorf("unknown format is usable")
	}
}
