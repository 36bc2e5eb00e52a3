package x12

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/865charlesw/x12tools/core/errors"
	"github.com/865charlesw/x12tools/internal/fileutil"
)

// Newlines controls whether Serialize appends a newline after each segment
// terminator.
type Newlines int

const (
	// NewlinesAuto appends a newline unless the terminator itself already
	// contains one.
	NewlinesAuto Newlines = iota
	// NewlinesOn always appends a newline.
	NewlinesOn
	// NewlinesOff never appends a newline.
	NewlinesOff
)

// Match pairs a segment with its position in the document.
type Match struct {
	Index   int
	Segment *Segment
}

// Document is an ordered sequence of segments plus the delimiters in
// effect. A document is an independent in-memory value owned by its
// caller; it holds no locks and no background state, so sharing one
// across goroutines requires external synchronization.
type Document struct {
	segments   []*Segment
	delims     Delimiters
	path       string
	sourceHash string
}

// Parse parses X12 text into a document using the given delimiter
// detection strategy. The text is normalized, the delimiters are read, a
// single trailing terminator is dropped if present, and the remainder is
// split into segments.
func Parse(content string, detector DelimiterDetector) (*Document, error) {
	content = detector.Normalize(content)
	delims, err := detector.Detect(content)
	if err != nil {
		return nil, err
	}
	if delims.Element == delims.Segment {
		return nil, errors.NewParse(fmt.Sprintf(
			"element separator and segment terminator are both %q", delims.Element))
	}
	content = strings.TrimSuffix(content, string(delims.Segment))
	raw := strings.Split(content, string(delims.Segment))
	segments := make([]*Segment, 0, len(raw))
	for _, r := range raw {
		seg, err := ParseSegment(r, delims.Element)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return &Document{segments: segments, delims: delims}, nil
}

// ParseDocument parses loose X12 text using GenericDetector.
func ParseDocument(content string) (*Document, error) {
	return Parse(content, GenericDetector{})
}

// ParseInterchange parses a complete ISA interchange using
// EnvelopeDetector.
func ParseInterchange(content string) (*Document, error) {
	return Parse(content, EnvelopeDetector{})
}

// ReadFile reads and parses the file at path, recording the path as the
// document's provenance and a BLAKE3 digest of the raw text as its source
// hash. Paths ending in .xz are decompressed transparently.
func ReadFile(path string, detector DelimiterDetector) (*Document, error) {
	content, err := fileutil.ReadText(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(content, detector)
	if err != nil {
		return nil, err
	}
	doc.path = path
	sum := blake3.Sum256([]byte(content))
	doc.sourceHash = hex.EncodeToString(sum[:])
	return doc, nil
}

// ReadDocumentFile reads a file with GenericDetector.
func ReadDocumentFile(path string) (*Document, error) {
	return ReadFile(path, GenericDetector{})
}

// ReadInterchangeFile reads a file with EnvelopeDetector.
func ReadInterchangeFile(path string) (*Document, error) {
	return ReadFile(path, EnvelopeDetector{})
}

// Len returns the number of segments.
func (d *Document) Len() int {
	return len(d.segments)
}

// Delimiters returns the delimiters in effect.
func (d *Document) Delimiters() Delimiters {
	return d.delims
}

// Path returns the source file path, if the document was read from a file.
func (d *Document) Path() string {
	return d.path
}

// SourceHash returns the BLAKE3 hex digest of the raw text the document
// was read from, or "" if it was not read from a file.
func (d *Document) SourceHash() string {
	return d.sourceHash
}

// Segments returns a copy of the segment slice. The segments themselves
// are shared, so element mutations are visible to the document.
func (d *Document) Segments() []*Segment {
	out := make([]*Segment, len(d.segments))
	copy(out, d.segments)
	return out
}

// Find returns every segment satisfying the filter, paired with its
// position, in document order.
func (d *Document) Find(filter Filter) ([]Match, error) {
	var out []Match
	for i, seg := range d.segments {
		ok, err := seg.Matches(filter)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, Match{Index: i, Segment: seg})
		}
	}
	return out, nil
}

// FindOne returns the single segment satisfying the filter. Zero or
// multiple matches is a LookupError carrying the match count.
func (d *Document) FindOne(filter Filter) (Match, error) {
	matches, err := d.Find(filter)
	if err != nil {
		return Match{}, err
	}
	if len(matches) != 1 {
		return Match{}, errors.NewLookup(filter.String(), len(matches))
	}
	return matches[0], nil
}

// Remove removes matching segments and returns how many were removed. If
// single is true, exactly one segment must match (via FindOne); otherwise
// every match is removed. Removal proceeds from the highest index down so
// earlier indices stay valid during the pass.
func (d *Document) Remove(filter Filter, single bool) (int, error) {
	var matches []Match
	if single {
		m, err := d.FindOne(filter)
		if err != nil {
			return 0, err
		}
		matches = []Match{m}
	} else {
		var err error
		matches, err = d.Find(filter)
		if err != nil {
			return 0, err
		}
	}
	for i := len(matches) - 1; i >= 0; i-- {
		idx := matches[i].Index
		d.segments = append(d.segments[:idx], d.segments[idx+1:]...)
	}
	return len(matches), nil
}

// At returns the segment at the given position, or an IndexError if the
// position is out of bounds.
func (d *Document) At(index int) (*Segment, error) {
	if index < 0 || index >= len(d.segments) {
		return nil, errors.NewIndex(index, len(d.segments))
	}
	return d.segments[index], nil
}

// Get returns the single segment whose identifier fully matches the
// pattern. Zero or multiple matches is a LookupError.
func (d *Document) Get(pattern string) (*Segment, error) {
	m, err := d.FindOne(ByID(pattern))
	if err != nil {
		return nil, err
	}
	return m.Segment, nil
}

// UpdateTrailerCounts rewrites every SE transaction-set trailer's segment
// count. For each ST header, the SE segment carrying the same control
// number (element 2) gets its element 1 set to the inclusive span
// se_index - st_index + 1. A missing or ambiguous trailer for a control
// number is a LookupError.
func (d *Document) UpdateTrailerCounts() error {
	headers, err := d.Find(ByID("ST"))
	if err != nil {
		return err
	}
	for _, st := range headers {
		controlNumber, err := st.Segment.At(2)
		if err != nil {
			return err
		}
		se, err := d.FindOne(Filter{0: "SE", 2: regexp.QuoteMeta(controlNumber)})
		if err != nil {
			return err
		}
		if err := se.Segment.Set(1, strconv.Itoa(se.Index-st.Index+1)); err != nil {
			return err
		}
	}
	return nil
}

// Serialize returns the document as X12 text, recomputing SE trailer
// counts first; stored counts are never trusted. Every segment is joined
// with the segment terminator (plus a newline per the Newlines mode) and
// one trailing delimiter is appended.
func (d *Document) Serialize(mode Newlines) (string, error) {
	if err := d.UpdateTrailerCounts(); err != nil {
		return "", err
	}
	delimiter := string(d.delims.Segment)
	if mode == NewlinesOn || (mode == NewlinesAuto && !strings.Contains(delimiter, "\n")) {
		delimiter += "\n"
	}
	parts := make([]string, len(d.segments))
	for i, seg := range d.segments {
		parts[i] = seg.Serialize(d.delims.Element)
	}
	return strings.Join(parts, delimiter) + delimiter, nil
}

// Write serializes the document and writes it to path, overwriting any
// existing content. An empty path falls back to the recorded provenance
// path; if neither is set, Write returns a ConfigError.
func (d *Document) Write(path string, mode Newlines) error {
	if path == "" {
		path = d.path
	}
	if path == "" {
		return errors.NewConfig("no destination path provided and no source path recorded")
	}
	content, err := d.Serialize(mode)
	if err != nil {
		return err
	}
	return fileutil.WriteText(path, content)
}
