package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ares-editor/valtree/value"

	"github.com/goccy/go-yaml"
)

var (
	ErrTemplate = errors.New("bad template")
	ErrMismatch = errors.New("value does not match template")
	ErrHint     = errors.New("bad hint")
)

// Template describes the shape of a value so that new members of a
// collection can be made from hints.
//
// Scalars use Default, written as accepted by value.SetFromString.
// Composites list their Fields in order.  Collections describe their
// members with Items, which may be nil when nothing is known.
type Template struct {
	Name    string     `yaml:"name,omitempty"`
	Kind    value.Kind `yaml:"kind"`
	Default string     `yaml:"default,omitempty"`
	Fields  []Field    `yaml:"fields,omitempty"`
	Items   *Template  `yaml:"items,omitempty"`
}

type Field struct {
	Name     string    `yaml:"name"`
	Template *Template `yaml:"template"`
}

// Load reads a YAML list of templates.
func Load(data []byte) ([]*Template, error) {
	var ts []*Template
	if err := yaml.Unmarshal(data, &ts); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplate, err)
	}
	for _, t := range ts {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	return ts, nil
}

// Validate checks that t is internally consistent.
func (t *Template) Validate() error {
	return t.validate(t.Name)
}

func (t *Template) validate(at string) error {
	if t == nil {
		return fmt.Errorf("%w: missing template at %s", ErrTemplate, at)
	}
	switch t.Kind {
	case value.CompositeKind:
		for _, f := range t.Fields {
			if err := f.Template.validate(at + "." + f.Name); err != nil {
				return err
			}
		}
	case value.CollectionKind:
		if t.Items != nil {
			return t.Items.validate(at + "[]")
		}
	default:
		if len(t.Fields) != 0 || t.Items != nil {
			return fmt.Errorf("%w: scalar %s at %s has fields or items", ErrTemplate, t.Kind, at)
		}
		if t.Default != "" {
			if err := value.SetFromString(value.NewScalar(t.Kind), t.Default); err != nil {
				return fmt.Errorf("%w: default at %s: %w", ErrTemplate, at, err)
			}
		}
	}
	return nil
}

// Make builds a value from t, ignoring hints which do not apply.  It
// has the shape of a value.MakeFunc.
func (t *Template) Make(hints map[string]string) value.Value {
	v, _ := t.Build(hints)
	return v
}

// MakeFunc returns t.Make, or nil for a nil template.
func (t *Template) MakeFunc() value.MakeFunc {
	if t == nil {
		return nil
	}
	return t.Make
}

// Build builds a value from t.  Hint keys are dotted field paths (see
// SplitRef) and hint values are applied with value.SetFromString.  The
// value is built even when some hints fail; the failures are joined in
// the error.
func (t *Template) Build(hints map[string]string) (value.Value, error) {
	v := t.build()
	var errs []error
	for k, h := range hints {
		if err := applyHint(v, SplitRef(k), h); err != nil {
			errs = append(errs, fmt.Errorf("%w %q: %w", ErrHint, k, err))
		}
	}
	return v, errors.Join(errs...)
}

func (t *Template) build() value.Value {
	switch t.Kind {
	case value.CompositeKind:
		c := value.NewComposite()
		for _, f := range t.Fields {
			c.AddChild(f.Name, f.Template.build())
		}
		return c
	case value.CollectionKind:
		return value.NewList(t.Items.MakeFunc())
	default:
		s := value.NewScalar(t.Kind)
		if t.Default != "" {
			_ = value.SetFromString(s, t.Default)
		}
		return s
	}
}

func applyHint(v value.Value, path []string, h string) error {
	for _, name := range path {
		if v.Kind() != value.CompositeKind {
			return fmt.Errorf("%s is not a composite", value.Path(v))
		}
		ch := v.ChildByName(name)
		if ch == nil {
			return fmt.Errorf("no field %q in %s", name, value.Path(v))
		}
		v = ch
	}
	return value.SetFromString(v, h)
}

// FromValue infers a template from sample.  Scalars default to the
// sample's current value and collections take their item template from
// their first member.
func FromValue(sample value.Value) *Template {
	if sample == nil || value.IsNull(sample) {
		return &Template{Kind: value.NoneKind}
	}
	t := &Template{Kind: sample.Kind()}
	switch sample.Kind() {
	case value.CompositeKind:
		for name, ch := range value.All(sample) {
			t.Fields = append(t.Fields, Field{Name: name, Template: FromValue(ch)})
		}
	case value.CollectionKind:
		if sample.Len() > 0 {
			t.Items = FromValue(sample.Child(0))
		}
	case value.NoneKind:
	default:
		t.Default = defaultString(sample)
	}
	return t
}

func defaultString(v value.Value) string {
	if v.Kind() == value.StringKind {
		return v.Str()
	}
	return value.ScalarString(v)
}

// Check reports the first place where v does not have the shape of t.
func (t *Template) Check(v value.Value) error {
	if t == nil {
		return nil
	}
	if v.Kind() != t.Kind {
		return fmt.Errorf("%w: %s is %s, expected %s", ErrMismatch, value.Path(v), v.Kind(), t.Kind)
	}
	switch t.Kind {
	case value.CompositeKind:
		for _, f := range t.Fields {
			ch := v.ChildByName(f.Name)
			if ch == nil {
				return fmt.Errorf("%w: %s has no field %q", ErrMismatch, value.Path(v), f.Name)
			}
			if err := f.Template.Check(ch); err != nil {
				return err
			}
		}
	case value.CollectionKind:
		for _, ch := range value.All(v) {
			if err := t.Items.Check(ch); err != nil {
				return err
			}
		}
	}
	return nil
}

// String renders t as YAML.
func (t *Template) String() string {
	d, err := yaml.Marshal(t)
	if err != nil {
		return err.Error()
	}
	return strings.TrimSpace(string(d))
}
