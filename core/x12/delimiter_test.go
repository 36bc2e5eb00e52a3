package x12

import (
	"strings"
	"testing"

	"github.com/865charlesw/x12tools/core/errors"
)

func TestGenericDetector(t *testing.T) {
	delims, err := GenericDetector{}.Detect(isaFixture)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if delims.Element != '*' {
		t.Errorf("expected element separator '*', got %q", delims.Element)
	}
	if delims.Segment != '~' {
		t.Errorf("expected segment terminator '~', got %q", delims.Segment)
	}
}

func TestGenericDetector_AlternateDelimiters(t *testing.T) {
	content := strings.ReplaceAll(strings.ReplaceAll(isaFixture, "*", "|"), "~", "!")
	delims, err := GenericDetector{}.Detect(content)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if delims.Element != '|' || delims.Segment != '!' {
		t.Errorf("expected '|' and '!', got %q and %q", delims.Element, delims.Segment)
	}
}

func TestGenericDetector_TooShort(t *testing.T) {
	_, err := GenericDetector{}.Detect("ISA*00")
	if err == nil {
		t.Fatal("expected error for short input")
	}
	if !errors.Is(err, errors.ErrMalformedInput) {
		t.Errorf("expected ErrMalformedInput, got %v", err)
	}
}

func TestGenericDetector_Normalize(t *testing.T) {
	got := GenericDetector{}.Normalize("\n  ST*1~  \n")
	if got != "ST*1~" {
		t.Errorf("expected trimmed text, got %q", got)
	}
}

func TestEnvelopeDetector(t *testing.T) {
	delims, err := EnvelopeDetector{}.Detect(isaFixture)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if delims.Element != '*' {
		t.Errorf("expected element separator '*', got %q", delims.Element)
	}
	if delims.Segment != '~' {
		t.Errorf("expected segment terminator '~', got %q", delims.Segment)
	}
}

func TestEnvelopeDetector_TooShort(t *testing.T) {
	_, err := EnvelopeDetector{}.Detect(isaFixture[:50])
	if err == nil {
		t.Fatal("expected error for truncated envelope")
	}
	if !errors.Is(err, errors.ErrMalformedInput) {
		t.Errorf("expected ErrMalformedInput, got %v", err)
	}
}

func TestEnvelopeDetector_NormalizeStripsCarriageReturns(t *testing.T) {
	got := EnvelopeDetector{}.Normalize("ST*1~\r\nSE*2*1~\r\n")
	if strings.Contains(got, "\r") {
		t.Errorf("carriage returns not removed: %q", got)
	}
	if got != "ST*1~\nSE*2*1~" {
		t.Errorf("unexpected normalization result: %q", got)
	}
}

func TestISAEnvelopeLength(t *testing.T) {
	// The canonical ISA envelope is 106 bytes including its terminator.
	if isaEnvelopeLength != 106 {
		t.Errorf("expected envelope length 106, got %d", isaEnvelopeLength)
	}
	if len(isaFixture) != 106 {
		t.Errorf("fixture envelope is %d bytes, want 106", len(isaFixture))
	}
	sum := 0
	for _, w := range isaElementWidths {
		sum += w
	}
	if sum+len(isaElementWidths) != isaEnvelopeLength {
		t.Errorf("width table sums to %d+%d, want %d", sum, len(isaElementWidths), isaEnvelopeLength)
	}
}
