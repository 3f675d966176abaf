// Package diff renders unified line diffs for dry-run previews, using the
// sergi/go-diff library.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DefaultContext is the number of unchanged lines shown around a change.
const DefaultContext = 3

type op struct {
	kind byte // ' ', '-', '+'
	text string
}

// Unified returns a unified diff of oldContent against newContent, or the
// empty string when they are equal. An empty oldContent is shown as a new file.
func Unified(path, oldContent, newContent string, context int) string {
	if oldContent == newContent {
		return ""
	}

	ops := lineOps(oldContent, newContent)

	var b strings.Builder
	oldName := "a/" + path
	if oldContent == "" {
		oldName = "/dev/null"
	}
	fmt.Fprintf(&b, "--- %s\n+++ b/%s\n", oldName, path)

	for _, h := range hunks(ops, context) {
		oldStart, newStart := 1, 1
		for _, o := range ops[:h[0]] {
			if o.kind != '+' {
				oldStart++
			}
			if o.kind != '-' {
				newStart++
			}
		}
		oldCount, newCount := 0, 0
		for _, o := range ops[h[0]:h[1]] {
			if o.kind != '+' {
				oldCount++
			}
			if o.kind != '-' {
				newCount++
			}
		}
		if oldCount == 0 {
			oldStart--
		}
		if newCount == 0 {
			newStart--
		}

		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", oldStart, oldCount, newStart, newCount)
		for _, o := range ops[h[0]:h[1]] {
			b.WriteByte(o.kind)
			b.WriteString(o.text)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Stats counts added and removed lines.
func Stats(oldContent, newContent string) (added, removed int) {
	for _, o := range lineOps(oldContent, newContent) {
		switch o.kind {
		case '+':
			added++
		case '-':
			removed++
		}
	}
	return added, removed
}

func lineOps(oldContent, newContent string) []op {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0

	a, b, lines := dmp.DiffLinesToChars(oldContent, newContent)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var ops []op
	for _, d := range diffs {
		var kind byte
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			kind = ' '
		case diffmatchpatch.DiffDelete:
			kind = '-'
		case diffmatchpatch.DiffInsert:
			kind = '+'
		}
		for _, line := range splitLines(d.Text) {
			ops = append(ops, op{kind: kind, text: line})
		}
	}
	return ops
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// hunks groups changed ops with their context into [start, end) ranges.
func hunks(ops []op, context int) [][2]int {
	var out [][2]int
	for i, o := range ops {
		if o.kind == ' ' {
			continue
		}
		start := max(i-context, 0)
		end := min(i+context+1, len(ops))
		if n := len(out); n > 0 && start <= out[n-1][1] {
			out[n-1][1] = max(out[n-1][1], end)
			continue
		}
		out = append(out, [2]int{start, end})
	}
	return out
}
