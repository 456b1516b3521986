// Package ingest reads delimited account exports line by line and extracts
// the fields the classifiers need.
package ingest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

// quoteChars are stripped from both ends of every field.
const quoteChars = `"`

// MissingColumnError reports a required column absent from the header.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column not found: %s", e.Column)
}

// IsMissingColumn reports whether err is, or wraps, a MissingColumnError.
func IsMissingColumn(err error) bool {
	var mce *MissingColumnError
	return errors.As(err, &mce)
}

// Header maps column names to their position in a line.
type Header struct {
	Columns  []string
	index    map[string]int
	required []string
	maxIndex int
}

// ParseHeader splits the header line and checks that every required column
// is present. Optional columns are looked up lazily and may be absent.
func ParseHeader(line string, delim rune, required []string) (*Header, error) {
	cols := SplitFields(strings.TrimRight(line, "\r\n"), delim)
	for i, c := range cols {
		cols[i] = strings.Trim(strings.TrimSpace(c), quoteChars)
	}

	h := &Header{
		Columns:  cols,
		index:    make(map[string]int, len(cols)),
		required: required,
		maxIndex: -1,
	}
	for i, c := range cols {
		if _, dup := h.index[c]; !dup {
			h.index[c] = i
		}
	}

	for _, name := range required {
		idx, ok := h.index[name]
		if !ok {
			return nil, eris.Wrap(&MissingColumnError{Column: name}, "ingest: parse header")
		}
		if idx > h.maxIndex {
			h.maxIndex = idx
		}
	}

	return h, nil
}

// Has reports whether the named column is present.
func (h *Header) Has(name string) bool {
	_, ok := h.index[name]
	return ok
}

// Required returns the required column names in the order given.
func (h *Header) Required() []string {
	return h.required
}

// Complete reports whether a line with n fields carries every required
// column.
func (h *Header) Complete(n int) bool {
	return n > h.maxIndex
}

// SplitFields splits a line on delim and strips surrounding quote characters
// from each field. Quotes do not protect embedded delimiters.
func SplitFields(line string, delim rune) []string {
	parts := strings.Split(line, string(delim))
	for i, p := range parts {
		parts[i] = strings.Trim(p, quoteChars)
	}
	return parts
}
