package x12

import (
	"fmt"
	"strings"

	"github.com/865charlesw/x12tools/core/errors"
)

// Delimiters holds the two delimiter characters in effect for a document.
// Both are single ASCII bytes, discovered once at parse time and reused
// verbatim on serialization.
type Delimiters struct {
	Element byte // separates data elements within a segment
	Segment byte // terminates segments
}

// DelimiterDetector locates the element separator and segment terminator
// in raw X12 text. Normalize prepares raw input for detection and
// splitting; Detect reads the delimiter characters from normalized text.
type DelimiterDetector interface {
	Normalize(content string) string
	Detect(content string) (Delimiters, error)
}

// Fixed byte offsets used by GenericDetector. The first segment of an X12
// document is the 106-byte ISA header, which places the element separator
// directly after the "ISA" tag and the segment terminator on the final
// envelope byte.
const (
	genericElementSeparatorOffset  = 3
	genericSegmentTerminatorOffset = isaEnvelopeLength - 1
)

// GenericDetector reads the delimiter characters from two fixed byte
// offsets. It assumes the document opens with a full-length header segment
// so that both offsets land inside it; documents whose first segment is
// shorter will mis-detect. Use EnvelopeDetector when the input is a
// complete interchange.
type GenericDetector struct{}

// Normalize trims surrounding whitespace.
func (GenericDetector) Normalize(content string) string {
	return strings.TrimSpace(content)
}

// Detect reads the separator and terminator at the fixed offsets.
func (GenericDetector) Detect(content string) (Delimiters, error) {
	if len(content) <= genericSegmentTerminatorOffset {
		return Delimiters{}, errors.NewParse(fmt.Sprintf(
			"input is %d bytes, need at least %d to locate delimiters",
			len(content), genericSegmentTerminatorOffset+1))
	}
	return Delimiters{
		Element: content[genericElementSeparatorOffset],
		Segment: content[genericSegmentTerminatorOffset],
	}, nil
}

// EnvelopeDetector derives the delimiters from the mandatory fixed-width
// layout of the ISA interchange header: the segment terminator sits on the
// last byte of the 106-byte envelope and the element separator directly
// after the first fixed-width field (the "ISA" tag). Detection depends
// only on the envelope widths, never on field content.
type EnvelopeDetector struct{}

// Normalize trims surrounding whitespace and removes every carriage
// return, so interchanges with CRLF line endings split cleanly.
func (EnvelopeDetector) Normalize(content string) string {
	return strings.ReplaceAll(strings.TrimSpace(content), "\r", "")
}

// Detect reads the delimiters from the ISA envelope positions.
func (EnvelopeDetector) Detect(content string) (Delimiters, error) {
	if len(content) < isaEnvelopeLength {
		return Delimiters{}, errors.NewParse(fmt.Sprintf(
			"input is %d bytes, shorter than the %d-byte ISA envelope",
			len(content), isaEnvelopeLength))
	}
	return Delimiters{
		Element: content[isaElementWidths[0]],
		Segment: content[isaEnvelopeLength-1],
	}, nil
}
