// Package document holds the in-memory line model of a generated source file.
// A Document is pure data: parsing and rendering never touch the file system.
package document

import "strings"

// Document is an ordered sequence of text lines read from one file.
// Lines keep any trailing carriage return so that untouched lines render
// back byte-for-byte.
type Document struct {
	Path            string
	Lines           []string
	TrailingNewline bool
}

// Parse splits raw file content into a Document.
func Parse(path string, content []byte) *Document {
	doc := &Document{Path: path}
	if len(content) == 0 {
		return doc
	}

	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
		doc.TrailingNewline = true
	}
	doc.Lines = lines
	return doc
}

// Bytes renders the document back to file content.
func (d *Document) Bytes() []byte {
	return []byte(d.Text())
}

// Text renders the document as a single string.
func (d *Document) Text() string {
	if len(d.Lines) == 0 {
		if d.TrailingNewline {
			return "\n"
		}
		return ""
	}
	text := strings.Join(d.Lines, "\n")
	if d.TrailingNewline {
		text += "\n"
	}
	return text
}

// Contains reports whether s occurs anywhere in the document's full text.
func (d *Document) Contains(s string) bool {
	return strings.Contains(d.Text(), s)
}

// CRLF reports whether the document uses Windows line terminators,
// judged by its first line.
func (d *Document) CRLF() bool {
	return len(d.Lines) > 0 && strings.HasSuffix(d.Lines[0], "\r")
}

// FormatLines turns insertion text into document lines using the
// document's own terminator convention.
func (d *Document) FormatLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if d.CRLF() {
		for i := range lines {
			lines[i] += "\r"
		}
	}
	return lines
}

// WithLines returns a copy of the document carrying new lines.
func (d *Document) WithLines(lines []string) *Document {
	return &Document{
		Path:            d.Path,
		Lines:           lines,
		TrailingNewline: d.TrailingNewline,
	}
}

// Equal reports whether two documents render to the same bytes.
func (d *Document) Equal(other *Document) bool {
	if other == nil {
		return false
	}
	return d.Text() == other.Text()
}
