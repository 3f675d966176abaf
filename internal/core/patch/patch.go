// Package patch computes new document text from insertion specs.
// Everything here is pure: a Document goes in, a Result comes out, and the
// caller decides whether anything is committed to disk.
package patch

import (
	"strings"

	"github.com/example/loom/internal/core/anchor"
	"github.com/example/loom/internal/core/document"
)

// Position says where insertion text lands relative to an anchor line.
type Position int

const (
	// After emits the text on its own line(s) right after the anchor.
	After Position = iota
	// Before emits the text right before the anchor.
	Before
	// Replace swaps the anchor line for the text.
	Replace
)

// Occurrence says how many anchor lines a spec applies to.
type Occurrence int

const (
	// First applies only at the first qualifying line of the scan.
	First Occurrence = iota
	// Every applies at each qualifying line.
	Every
)

// Outcome classifies what a spec or pass did to a document.
type Outcome int

const (
	Modified Outcome = iota
	SkippedIdempotent
	ExtensionPointNotFound
)

func (o Outcome) String() string {
	switch o {
	case Modified:
		return "modified"
	case SkippedIdempotent:
		return "skipped_idempotent"
	case ExtensionPointNotFound:
		return "extension_point_not_found"
	default:
		return "unknown"
	}
}

// InsertionSpec describes one text insertion keyed to a marker.
type InsertionSpec struct {
	Matcher    anchor.Matcher
	Text       string
	Position   Position
	Occurrence Occurrence
	// Signature is a substring whose presence anywhere in the document
	// means this spec was already applied.
	Signature string
	// PerLine checks Signature against each anchor line instead of the whole
	// document. An anchor line that already carries it is left alone.
	PerLine bool
}

// Pass is a set of independent specs applied over one document in a single
// linear scan. Probes are substrings whose presence is recorded during the
// same scan.
type Pass struct {
	Specs  []InsertionSpec
	Probes []string
}

// SpecResult is the per-spec outcome of a pass.
type SpecResult struct {
	Outcome    Outcome
	Insertions int
	// Signed counts anchor lines skipped because they already carry the
	// signature. Only PerLine specs set it.
	Signed int
}

// Result is the outcome of running a pass over a document.
type Result struct {
	Outcome  Outcome
	Document *document.Document
	Specs    []SpecResult
	Probes   map[string]bool
}

// Changed reports whether the document needs to be committed.
func (r Result) Changed() bool {
	return r.Outcome == Modified
}

// Found reports whether probe was seen anywhere in the scanned document.
func (r Result) Found(probe string) bool {
	return r.Probes[probe]
}

// Apply runs a single spec over a document.
func Apply(doc *document.Document, spec InsertionSpec) Result {
	return Run(doc, Pass{Specs: []InsertionSpec{spec}})
}

// Run applies every spec of the pass in one scan of the document.
// Untouched lines are emitted verbatim and in their original order.
func Run(doc *document.Document, pass Pass) Result {
	text := doc.Text()
	results := make([]SpecResult, len(pass.Specs))
	live := make([]bool, len(pass.Specs))
	for i, spec := range pass.Specs {
		if !spec.PerLine && spec.Signature != "" && strings.Contains(text, spec.Signature) {
			results[i].Outcome = SkippedIdempotent
			continue
		}
		live[i] = true
	}

	probes := make(map[string]bool, len(pass.Probes))
	for _, p := range pass.Probes {
		probes[p] = false
	}

	out := make([]string, 0, len(doc.Lines)+len(pass.Specs))
	lastAt := -1
	for idx, line := range doc.Lines {
		for p := range probes {
			if !probes[p] && strings.Contains(line, p) {
				probes[p] = true
			}
		}

		for i, spec := range pass.Specs {
			if signedLine(live[i], spec, results[i], line) {
				results[i].Signed++
				live[i] = spec.Occurrence == Every
			}
		}

		for i, spec := range pass.Specs {
			if spec.Position == Before && qualifies(live[i], spec, results[i], line) {
				out = append(out, doc.FormatLines(spec.Text)...)
				results[i].Insertions++
			}
		}

		replaced := false
		for i, spec := range pass.Specs {
			if spec.Position == Replace && !replaced && qualifies(live[i], spec, results[i], line) {
				out = append(out, doc.FormatLines(spec.Text)...)
				results[i].Insertions++
				replaced = true
			}
		}
		if !replaced {
			if idx == len(doc.Lines)-1 {
				lastAt = len(out)
			}
			out = append(out, line)
		}

		for i, spec := range pass.Specs {
			if spec.Position == After && qualifies(live[i], spec, results[i], line) {
				out = append(out, doc.FormatLines(spec.Text)...)
				results[i].Insertions++
			}
		}
	}

	result := Result{Document: doc, Specs: results, Probes: probes}
	anySkipped := false
	for i := range results {
		switch {
		case results[i].Insertions > 0:
			results[i].Outcome = Modified
		case results[i].Signed > 0:
			results[i].Outcome = SkippedIdempotent
			anySkipped = true
		case !live[i]:
			anySkipped = true
		default:
			results[i].Outcome = ExtensionPointNotFound
		}
	}

	switch {
	case anyModified(results):
		result.Outcome = Modified
		endWithoutTerminator(doc, out, lastAt)
		result.Document = doc.WithLines(out)
	case anySkipped && allSettled(results):
		result.Outcome = SkippedIdempotent
	default:
		result.Outcome = ExtensionPointNotFound
	}
	return result
}

func qualifies(live bool, spec InsertionSpec, res SpecResult, line string) bool {
	if !live || spec.Matcher == nil || !spec.Matcher.Match(line) {
		return false
	}
	if spec.PerLine && strings.Contains(line, spec.Signature) {
		return false
	}
	return spec.Occurrence == Every || res.Insertions == 0
}

// endWithoutTerminator keeps a CRLF document that had no final newline in
// that shape. The old last line gains a terminator and the new last line
// carries none.
func endWithoutTerminator(doc *document.Document, out []string, lastAt int) {
	if doc.TrailingNewline || !doc.CRLF() || len(out) == 0 {
		return
	}
	end := len(out) - 1
	if lastAt == end {
		return
	}
	if lastAt >= 0 && !strings.HasSuffix(out[lastAt], "\r") {
		out[lastAt] += "\r"
	}
	out[end] = strings.TrimSuffix(out[end], "\r")
}

// signedLine reports whether line is an anchor for a PerLine spec that
// already carries the signature.
func signedLine(live bool, spec InsertionSpec, res SpecResult, line string) bool {
	if !live || !spec.PerLine || spec.Signature == "" || spec.Matcher == nil {
		return false
	}
	if spec.Occurrence == First && res.Insertions > 0 {
		return false
	}
	return spec.Matcher.Match(line) && strings.Contains(line, spec.Signature)
}

func anyModified(results []SpecResult) bool {
	for _, r := range results {
		if r.Outcome == Modified {
			return true
		}
	}
	return false
}

// allSettled is true when no spec is left at ExtensionPointNotFound.
func allSettled(results []SpecResult) bool {
	for _, r := range results {
		if r.Outcome == ExtensionPointNotFound {
			return false
		}
	}
	return true
}
