package syntax

import "fmt"

// TextRange is a half-open range of byte offsets.
type TextRange struct {
	Start int
	End   int
}

func NewRange(start, end int) TextRange {
	return TextRange{Start: start, End: end}
}

// EmptyRange is the zero-length range at offset.
func EmptyRange(offset int) TextRange {
	return TextRange{Start: offset, End: offset}
}

func (r TextRange) Len() int {
	return r.End - r.Start
}

func (r TextRange) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports start <= offset < end.
func (r TextRange) Contains(offset int) bool {
	return r.Start <= offset && offset < r.End
}

// ContainsInclusive reports start <= offset <= end.
func (r TextRange) ContainsInclusive(offset int) bool {
	return r.Start <= offset && offset <= r.End
}

func (r TextRange) ContainsRange(other TextRange) bool {
	return r.Start <= other.Start && other.End <= r.End
}

func (r TextRange) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}
