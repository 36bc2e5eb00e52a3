package x12

import (
	"fmt"
	"sort"
	"strings"
)

// Filter maps element indices to regex patterns. A segment satisfies a
// filter when every pattern fully matches the element at its index.
// Filters are transient query values; they are never stored on a document.
type Filter map[int]string

// ByID builds a filter matching element 0, the segment identifier.
func ByID(pattern string) Filter {
	return Filter{0: pattern}
}

// ByElements builds a filter matching elements 0..n-1 in order, identifier
// first.
func ByElements(patterns ...string) Filter {
	f := make(Filter, len(patterns))
	for i, pattern := range patterns {
		f[i] = pattern
	}
	return f
}

// ByIndex builds a filter from an explicit index-to-pattern mapping.
func ByIndex(patterns map[int]string) Filter {
	f := make(Filter, len(patterns))
	for index, pattern := range patterns {
		f[index] = pattern
	}
	return f
}

// indices returns the filter's element indices in ascending order.
func (f Filter) indices() []int {
	out := make([]int, 0, len(f))
	for index := range f {
		out = append(out, index)
	}
	sort.Ints(out)
	return out
}

// String renders the filter deterministically for error messages, e.g.
// {0: "SE", 2: "0001"}.
func (f Filter) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, index := range f.indices() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d: %q", index, f[index])
	}
	b.WriteString("}")
	return b.String()
}
