package source

import (
	"fmt"
)

// Span is a contiguous byte range [Start, End) inside one source file.
type Span struct {
	File  FileID `json:"file"`
	Start uint32 `json:"start"` // bytes, inclusive
	End   uint32 `json:"end"`   // bytes, exclusive
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover extends the span to include other. Spans from different files
// are left untouched.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Bytes returns the sub-slice of content the span refers to.
// The result shares memory with content.
func (s Span) Bytes(content []byte) []byte {
	return content[s.Start:s.End]
}
