package libdiff

import (
	"strconv"
	"strings"

	"github.com/ares-editor/valtree/value"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffCollectionByIndex aligns the children of two collections.
//
//  1. each child is summarized: containers by kind, scalars by
//     <kind>-<value>, and each distinct summary is given a rune
//  2. the rune sequences are diffed
//  3. equal runs recurse with df
//  4. deleted and inserted runs become Delete and Insert changes; an
//     insert directly following a delete at the same position is folded
//     into a Replace
//
// Delete and Replace paths index into from, Insert paths index into to.
func DiffCollectionByIndex(dst []Change, path string, from, to value.Value, df DiffFunc) []Change {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	delStart, delIndex := -1, -1
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			delStart, delIndex = len(dst), fi
			for range n {
				dst = append(dst, MakeChange(value.JoinIndex(path, fi), from.Child(fi), nil))
				fi++
			}
		case diffpatch.DiffEqual:
			delStart = -1
			for range n {
				dst = df(dst, value.JoinIndex(path, fi), from.Child(fi), to.Child(ti))
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				if delStart != -1 && delStart < len(dst) && delIndex == ti && dst[delStart].Op == Delete {
					dst[delStart] = MakeChange(dst[delStart].Path, dst[delStart].From, to.Child(ti))
					delStart++
					delIndex++
				} else {
					dst = append(dst, MakeChange(value.JoinIndex(path, ti), nil, to.Child(ti)))
				}
				ti++
			}
			delStart = -1
		}
	}
	return dst
}

func mapValues(m map[string]rune, v value.Value) []rune {
	rs := make([]rune, v.Len())
	for i := range rs {
		sum := summaryStr(v.Child(i))
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(v value.Value) string {
	switch v.Kind() {
	case value.BoolKind:
		return v.Kind().String() + "-" + strconv.FormatBool(v.Bool())
	case value.LongKind:
		return v.Kind().String() + "-" + strconv.FormatInt(v.Long(), 10)
	case value.FloatKind:
		return v.Kind().String() + "-" + strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case value.StringKind:
		if strings.Contains(v.Str(), "\n") {
			return v.Kind().String() + "/m"
		}
		return v.Kind().String() + "-" + v.Str()
	default:
		return v.Kind().String()
	}
}
