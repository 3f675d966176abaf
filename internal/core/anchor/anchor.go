// Package anchor locates marker lines inside a document.
// Matching is literal, case-sensitive substring containment. No regex.
package anchor

import (
	"strings"

	"github.com/example/loom/internal/core/document"
)

// Matcher decides whether a single raw line is an anchor.
type Matcher interface {
	Match(line string) bool
	String() string
}

// Marker is a persistent sentinel substring in a generated file.
type Marker string

// Match reports whether line contains the marker.
func (m Marker) Match(line string) bool {
	return m != "" && strings.Contains(line, string(m))
}

func (m Marker) String() string { return string(m) }

// AnyMarker matches a line containing any of its markers.
type AnyMarker []Marker

// AnyOf builds a matcher over several markers.
func AnyOf(markers ...Marker) AnyMarker {
	return AnyMarker(markers)
}

// Match reports whether line contains at least one marker.
func (a AnyMarker) Match(line string) bool {
	for _, m := range a {
		if m.Match(line) {
			return true
		}
	}
	return false
}

func (a AnyMarker) String() string {
	parts := make([]string, len(a))
	for i, m := range a {
		parts[i] = string(m)
	}
	return strings.Join(parts, " | ")
}

// Find returns the indices of every line matching m, in document order.
// An empty result is not an error.
func Find(doc *document.Document, m Matcher) []int {
	var hits []int
	for i, line := range doc.Lines {
		if m.Match(line) {
			hits = append(hits, i)
		}
	}
	return hits
}

// First returns the index of the first matching line, or -1.
func First(doc *document.Document, m Matcher) int {
	for i, line := range doc.Lines {
		if m.Match(line) {
			return i
		}
	}
	return -1
}
