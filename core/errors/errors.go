// Package errors provides standardized error types and helpers for the x12tools codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrMalformedInput indicates input that cannot be parsed as X12 text
	ErrMalformedInput = errors.New("malformed input")
	// ErrLookup indicates a query required exactly one match and found another count
	ErrLookup = errors.New("lookup failed")
	// ErrIndexRange indicates an element index beyond a segment's arity
	ErrIndexRange = errors.New("index out of range")
	// ErrNoDestination indicates a write with no explicit or recorded path
	ErrNoDestination = errors.New("no destination known")
)

// ParseError represents malformed input: text too short to carry the
// delimiter positions, or a segment that is empty after normalization.
type ParseError struct {
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse X12: %s", e.Message)
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformedInput, e.Err}
	}
	return []error{ErrMalformedInput}
}

// LookupError represents a query that required exactly one matching segment
// but found zero or several.
type LookupError struct {
	Filter string // String form of the filter that was applied
	Count  int    // Number of segments that matched
	Err    error  // Underlying error, if any
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%d segments found for filter %s", e.Count, e.Filter)
}

func (e *LookupError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrLookup, e.Err}
	}
	return []error{ErrLookup}
}

// IndexError represents a filter or accessor referencing an element index a
// segment does not have.
type IndexError struct {
	Index  int // Index that was requested
	Length int // Actual element count of the segment
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("element index %d out of range for segment with %d elements", e.Index, e.Length)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexRange
}

// ConfigError represents a missing configuration value, such as a write call
// with no destination path.
type ConfigError struct {
	Message string // Human-readable error message
}

func (e *ConfigError) Error() string {
	return e.Message
}

func (e *ConfigError) Unwrap() error {
	return ErrNoDestination
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "write", "open")
	Path      string // File/resource path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Helper functions for creating common errors

// NewParse creates a ParseError
func NewParse(message string) *ParseError {
	return &ParseError{Message: message}
}

// NewParseWrap creates a ParseError wrapping an underlying error
func NewParseWrap(message string, err error) *ParseError {
	return &ParseError{Message: message, Err: err}
}

// NewLookup creates a LookupError
func NewLookup(filter string, count int) *LookupError {
	return &LookupError{Filter: filter, Count: count}
}

// NewIndex creates an IndexError
func NewIndex(index, length int) *IndexError {
	return &IndexError{Index: index, Length: length}
}

// NewConfig creates a ConfigError
func NewConfig(message string) *ConfigError {
	return &ConfigError{Message: message}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
