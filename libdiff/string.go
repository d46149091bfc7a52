package libdiff

import (
	"strings"

	"github.com/ares-editor/valtree/value"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString compares two string scalars.  Differing strings yield a
// Replace; when the edited text is at most half the shorter string the
// change also carries a Delta.
func DiffString(dst []Change, path string, from, to value.Value) []Change {
	fs, ts := from.Str(), to.Str()
	if fs == ts {
		return dst
	}
	c := MakeChange(path, from, to)
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(fs, "\n") && strings.Contains(ts, "\n")
	diffs := diffCfg.DiffMain(fs, ts, doMultiLine)
	diffSize := 0
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			diffSize += len(diffs[i].Text)
		}
	}
	if diffSize <= min(len(fs), len(ts))/2 {
		c.Delta = diffCfg.DiffToDelta(diffs)
	}
	return append(dst, c)
}

// PatchString applies a delta produced by DiffString to s.
func PatchString(s, delta string) (string, error) {
	diffCfg := diffpatch.New()
	diffs, err := diffCfg.DiffFromDelta(s, delta)
	if err != nil {
		return "", err
	}
	return diffCfg.DiffText2(diffs), nil
}
