// Package textdiff reports line-level differences between two generated
// source texts. It backs golden-file tests and the sablec -verify mode.
package textdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Unified returns a readable line diff from a to b, or "" when the texts
// are equal.
func Unified(a, b string) string {
	if a == b {
		return ""
	}
	diffCfg := diffpatch.New()
	fromRunes, toRunes, lines := diffCfg.DiffLinesToRunes(a, b)
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)

	var sb strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		var marker string
		switch diff.Type {
		case diffpatch.DiffDelete:
			marker = "-"
		case diffpatch.DiffInsert:
			marker = "+"
		case diffpatch.DiffEqual:
			marker = " "
		}
		for _, ln := range splitKeepNonEmpty(diff.Text) {
			sb.WriteString(marker)
			sb.WriteString(ln)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func splitKeepNonEmpty(text string) []string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	return lines
}
