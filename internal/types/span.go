package types

// ByteOffset is a byte position in formula text.
type ByteOffset uint32

// Span is the half-open byte range [Start, End).
type Span struct {
	Start ByteOffset
	End   ByteOffset
}

// NewSpan returns the span [start, end).
func NewSpan(start, end ByteOffset) Span { return Span{Start: start, End: end} }

// Text returns the part of src covered by s.
func (s Span) Text(src []byte) string { return string(src[s.Start:s.End]) }
