package value

import "fmt"

type Kind int

const (
	NoneKind Kind = iota
	StringKind
	LongKind
	BoolKind
	FloatKind
	CollectionKind
	CompositeKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NoneKind:       "None",
		StringKind:     "String",
		LongKind:       "Long",
		BoolKind:       "Bool",
		FloatKind:      "Float",
		CollectionKind: "Collection",
		CompositeKind:  "Composite",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"None":       NoneKind,
		"String":     StringKind,
		"Long":       LongKind,
		"Bool":       BoolKind,
		"Float":      FloatKind,
		"Collection": CollectionKind,
		"Composite":  CompositeKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NoneKind,
		StringKind,
		LongKind,
		BoolKind,
		FloatKind,
		CollectionKind,
		CompositeKind,
	}
}

// IsLeaf reports whether values of kind k never have children.
func (k Kind) IsLeaf() bool {
	switch k {
	case CollectionKind, CompositeKind:
		return false
	default:
		return true
	}
}
