package schema

import "strings"

// EscapeRef escapes dots and backslashes in a field name so it can be
// used as one segment of a hint key.
func EscapeRef(r string) string {
	if !strings.ContainsAny(r, ".\\") {
		return r
	}
	r = strings.ReplaceAll(r, "\\", "\\\\")
	return strings.ReplaceAll(r, ".", "\\.")
}

// SplitRef splits a hint key such as quest.reward.gold into field names,
// honoring EscapeRef escapes.
func SplitRef(e string) []string {
	var (
		res []string
		cur strings.Builder
	)
	for i := 0; i < len(e); i++ {
		switch c := e[i]; c {
		case '\\':
			if i+1 < len(e) {
				i++
				cur.WriteByte(e[i])
			}
		case '.':
			res = append(res, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	return append(res, cur.String())
}
