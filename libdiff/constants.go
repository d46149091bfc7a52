package libdiff

// Op is the kind of a Change.
type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

var opSigils = [...]string{Insert: "+", Delete: "-", Replace: "~"}

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	}
	return "unknown"
}

// Sigil is the one character prefix used when listing changes.
func (o Op) Sigil() string {
	if o < 0 || int(o) >= len(opSigils) {
		return "?"
	}
	return opSigils[o]
}
