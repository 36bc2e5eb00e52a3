package x12

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/865charlesw/x12tools/core/errors"
)

// isaElementWidths is the fixed-width layout of the ISA interchange header:
// the "ISA" tag followed by the 16 envelope data elements. One delimiter
// byte follows each entry, so a well-formed envelope occupies
// sum(widths) + len(widths) = 106 bytes up to and including the segment
// terminator. This table is interop-critical: trading partners rely on
// these exact widths.
var isaElementWidths = [17]int{3, 2, 10, 2, 10, 2, 15, 2, 15, 6, 4, 1, 5, 9, 1, 1, 1}

// isaEnvelopeLength is the byte length of a well-formed ISA segment
// including its terminator.
const isaEnvelopeLength = 89 + len(isaElementWidths) // widths sum to 89

// Segment is an ordered sequence of string elements. Element 0 is the
// segment identifier ("ISA", "ST", "SE", ...). Arity is whatever splitting
// produced; there is no schema.
type Segment struct {
	elements []string
}

// NewSegment creates a segment from explicit elements.
func NewSegment(elements ...string) *Segment {
	return &Segment{elements: elements}
}

// ParseSegment parses a raw segment string. Surrounding whitespace is
// trimmed before splitting on the element separator. Input that is empty
// after trimming is a ParseError.
func ParseSegment(raw string, elementSeparator byte) (*Segment, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.NewParse("segment is empty after trimming")
	}
	return &Segment{elements: strings.Split(raw, string(elementSeparator))}, nil
}

// Len returns the number of elements.
func (s *Segment) Len() int {
	return len(s.elements)
}

// ID returns element 0, the segment identifier.
func (s *Segment) ID() string {
	return s.elements[0]
}

// At returns the element at index, or an IndexError if the segment has no
// such element.
func (s *Segment) At(index int) (string, error) {
	if index < 0 || index >= len(s.elements) {
		return "", errors.NewIndex(index, len(s.elements))
	}
	return s.elements[index], nil
}

// Set replaces the element at index, or returns an IndexError if the
// segment has no such element.
func (s *Segment) Set(index int, value string) error {
	if index < 0 || index >= len(s.elements) {
		return errors.NewIndex(index, len(s.elements))
	}
	s.elements[index] = value
	return nil
}

// Elements returns a copy of the element slice.
func (s *Segment) Elements() []string {
	out := make([]string, len(s.elements))
	copy(out, s.elements)
	return out
}

// Matches reports whether every (index, pattern) pair in the filter fully
// matches the element at that index. Matching is anchored start-to-end,
// not a substring search. Filters are evaluated in ascending index order
// and evaluation stops at the first non-matching element, so a failing
// identifier filter short-circuits before higher indices are touched. A
// filter index the segment does not have is an IndexError; an invalid
// pattern is a ParseError.
func (s *Segment) Matches(filter Filter) (bool, error) {
	for _, index := range filter.indices() {
		if index < 0 || index >= len(s.elements) {
			return false, errors.NewIndex(index, len(s.elements))
		}
		re, err := regexp.Compile(`\A(?:` + filter[index] + `)\z`)
		if err != nil {
			return false, errors.NewParseWrap("invalid filter pattern "+filter[index], err)
		}
		if !re.MatchString(s.elements[index]) {
			return false, nil
		}
	}
	return true, nil
}

// Serialize joins the elements with the separator. If the segment is an
// ISA interchange header, every element is first right-trimmed of
// whitespace and then space-padded to its canonical fixed width. The
// padding mutates the segment in place, so a second serialization sees
// the padded values.
func (s *Segment) Serialize(elementSeparator byte) string {
	if s.elements[0] == "ISA" {
		for i, value := range s.elements {
			if i >= len(isaElementWidths) {
				break
			}
			s.elements[i] = padRight(strings.TrimRightFunc(value, unicode.IsSpace), isaElementWidths[i])
		}
	}
	return strings.Join(s.elements, string(elementSeparator))
}

func padRight(value string, width int) string {
	if len(value) >= width {
		return value
	}
	return value + strings.Repeat(" ", width-len(value))
}
