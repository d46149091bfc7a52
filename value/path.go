package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Path returns a JSONPath style location of v relative to its root, such
// as $.quests[1].name.
func Path(v Value) string {
	p := v.Parent()
	if p == nil {
		return "$"
	}
	i := IndexOf(p, v)
	if p.Kind() == CompositeKind {
		return JoinField(Path(p), p.ChildName(i))
	}
	return JoinIndex(Path(p), i)
}

// JoinField appends a field segment to a path, quoting the name when it
// contains path syntax.
func JoinField(prefix, f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
		return prefix + "." + f
	}
	return prefix + ".'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// JoinIndex appends an index segment to a path.  A negative index is
// rendered as [?].
func JoinIndex(prefix string, i int) string {
	if i < 0 {
		return prefix + "[?]"
	}
	return prefix + "[" + strconv.Itoa(i) + "]"
}

// Lookup resolves a path produced by Path starting at root.  Field
// segments select composite children by name and index segments select
// children by position.
func Lookup(root Value, path string) (Value, error) {
	if len(path) == 0 || path[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrPath, path)
	}
	cur := root
	rest := path[1:]
	for rest != "" {
		var (
			field string
			index = -1
			err   error
		)
		switch rest[0] {
		case '.':
			rest = rest[1:]
			if strings.HasPrefix(rest, "'") {
				field, rest, err = quotedField(rest)
				if err != nil {
					return nil, fmt.Errorf("%w: %w in %q", ErrPath, err, path)
				}
				break
			}
			end := strings.IndexAny(rest, ".[")
			if end == -1 {
				end = len(rest)
			}
			field, rest = rest[:end], rest[end:]
			if field == "" {
				return nil, fmt.Errorf("%w: empty field in %q", ErrPath, path)
			}
		case '[':
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				return nil, fmt.Errorf("%w: unterminated index in %q", ErrPath, path)
			}
			if strings.HasPrefix(rest, "['") {
				field, _, err = quotedField(rest[1:end])
				if err != nil {
					return nil, fmt.Errorf("%w: %w in %q", ErrPath, err, path)
				}
			} else {
				index, err = strconv.Atoi(rest[1:end])
				if err != nil || index < 0 {
					return nil, fmt.Errorf("%w: bad index %q in %q", ErrPath, rest[1:end], path)
				}
			}
			rest = rest[end+1:]
		default:
			return nil, fmt.Errorf("%w: unexpected %q in %q", ErrPath, rest[0], path)
		}
		var next Value
		if index >= 0 {
			next = cur.Child(index)
		} else {
			next = cur.ChildByName(field)
		}
		if next == nil {
			return nil, fmt.Errorf("%w: %q at %s", ErrNotFound, path, Path(cur))
		}
		cur = next
	}
	return cur, nil
}

func quotedField(s string) (string, string, error) {
	buf := &strings.Builder{}
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 < len(s) {
				i++
				buf.WriteByte(s[i])
			}
		case '\'':
			return buf.String(), s[i+1:], nil
		default:
			buf.WriteByte(s[i])
		}
	}
	return "", "", fmt.Errorf("unterminated quoted field")
}
