package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// TextDiff returns a line diff of a and b.  Every line of either text is
// written once, prefixed by "+ ", "- " or "  ".
func TextDiff(a, b string) string {
	diffCfg := diffpatch.New()
	ra, rb, lines := diffCfg.DiffLinesToRunes(a, b)
	diffs := diffCfg.DiffMainRunes(ra, rb, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	buf := &strings.Builder{}
	for _, diff := range diffs {
		prefix := "  "
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
		case diffpatch.DiffDelete:
			prefix = "- "
		}
		for _, ln := range strings.SplitAfter(diff.Text, "\n") {
			if ln == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(ln)
			if !strings.HasSuffix(ln, "\n") {
				buf.WriteByte('\n')
			}
		}
	}
	return buf.String()
}

// Changed reports whether a line diff holds any insertion or deletion.
func Changed(textDiff string) bool {
	for _, ln := range strings.Split(textDiff, "\n") {
		if strings.HasPrefix(ln, "+ ") || strings.HasPrefix(ln, "- ") {
			return true
		}
	}
	return false
}
