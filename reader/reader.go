// Package reader tokenizes line-oriented tabular genomic files into raw
// ordered rows of string fields, driven by a format descriptor. It splits and
// classifies lines only; per-field validation and typing belong to the
// descriptor and record layers.
package reader

import (
	"bufio"
	"context"
	"io"
	"regexp"
	"strings"

	"github.com/reoring/genoskema"
)

// LineKind classifies what a scanned line holds.
type LineKind int

const (
	LineRow      LineKind = iota // a data row
	LineMetadata                 // a "#"-prefixed metadata/comment line
	LineTrack                    // a track/browser directive (multitrack formats)
)

// Scanner is a pull-style tokenizer over one file. Not safe for concurrent
// use; resources are the caller's io.Reader, nothing is owned here.
type Scanner struct {
	sc    *bufio.Scanner
	desc  *genoskema.Descriptor
	split func(string) []string

	line int
	kind LineKind
	row  []string
	text string
	meta []string
	err  error
}

// NewScanner builds a Scanner for r using the descriptor's delimiter. A
// delimiter regex takes precedence over a literal delimiter; with neither,
// fields are split on runs of whitespace. A malformed delimiter regex is a
// setup error and fails immediately.
func NewScanner(r io.Reader, d *genoskema.Descriptor) (*Scanner, error) {
	split, err := splitter(d)
	if err != nil {
		return nil, err
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	return &Scanner{sc: sc, desc: d, split: split}, nil
}

func splitter(d *genoskema.Descriptor) (func(string) []string, error) {
	if re := d.DelimiterRegex(); re != "" {
		rx, err := regexp.Compile(re)
		if err != nil {
			return nil, &genoskema.ConfigError{Format: d.Name(), Reason: "bad delimiter regex: " + err.Error()}
		}
		return func(s string) []string { return rx.Split(s, -1) }, nil
	}
	if del := d.Delimiter(); del != "" {
		return func(s string) []string { return strings.Split(s, del) }, nil
	}
	return strings.Fields, nil
}

// Scan advances to the next non-blank line. It returns false at end of input
// or on a read error; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	for s.sc.Scan() {
		s.line++
		text := strings.TrimRight(s.sc.Text(), "\r\n")
		if strings.TrimSpace(text) == "" {
			continue
		}
		s.text = text
		switch {
		case strings.HasPrefix(text, "#"):
			s.kind = LineMetadata
			s.row = nil
			s.meta = append(s.meta, text)
		case s.desc.CanMultitrack() && isTrackLine(text):
			s.kind = LineTrack
			s.row = nil
		default:
			s.kind = LineRow
			s.row = s.split(text)
		}
		return true
	}
	s.err = s.sc.Err()
	return false
}

// Kind reports the classification of the current line.
func (s *Scanner) Kind() LineKind { return s.kind }

// Row returns the current raw row. It is nil for metadata and track lines and
// is invalidated by the next Scan.
func (s *Scanner) Row() []string { return s.row }

// Text returns the current line verbatim.
func (s *Scanner) Text() string { return s.text }

// Line returns the 1-based number of the current line.
func (s *Scanner) Line() int { return s.line }

// Metadata returns the metadata lines seen so far, in input order.
func (s *Scanner) Metadata() []string { return s.meta }

// Err returns the first read error, if any.
func (s *Scanner) Err() error { return s.err }

func isTrackLine(text string) bool {
	return strings.HasPrefix(text, "track ") || text == "track" ||
		strings.HasPrefix(text, "browser ") || text == "browser"
}

// Stream feeds every data row to fn until end of input, a read error, a
// callback error, or context cancellation, whichever comes first. Metadata
// and track lines are skipped.
func Stream(ctx context.Context, r io.Reader, d *genoskema.Descriptor, fn func(row []string) error) error {
	sc, err := NewScanner(r, d)
	if err != nil {
		return err
	}
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if sc.Kind() != LineRow {
			continue
		}
		if err := fn(sc.Row()); err != nil {
			return err
		}
	}
	return sc.Err()
}
