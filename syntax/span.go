package syntax

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Span is a half-open byte range into the source text, [Start, End). Every
// token and tree node carries one; trivia-bearing tokens include their
// leading trivia in the span of whichever build step attaches it (spec
// §3, "CST node").
type Span struct {
	Start, End uint32
}

// Len returns the span's width in bytes.
func (s Span) Len() uint32 {
	return s.End - s.Start
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	start, end := s.Start, s.End
	if other.Start < start {
		start = other.Start
	}
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end}
}

// Position is a human-facing source location: 1-based line, 1-based
// grapheme-cluster column. Rather than counting runes, this counts
// extended grapheme clusters via uniseg so a combining-mark sequence or
// emoji ZWJ sequence reports as one column, matching what an editor's
// cursor actually does.
type Position struct {
	Line, Column int
}

// PositionOf converts a byte offset in text into a 1-based line/column
// Position. Lines are delimited by the same line terminators ASI cares
// about (IsLineTerminator); columns count grapheme clusters since the start
// of the line.
func PositionOf(text string, offset uint32) Position {
	if int(offset) > len(text) {
		offset = uint32(len(text))
	}
	line := 1
	lineStart := 0
	for i := 0; i < int(offset); {
		r, size := utf8.DecodeRuneInString(text[i:])
		crlf := r == '\r' && i+1 < len(text) && text[i+1] == '\n'
		if IsLineTerminator(r) && !crlf && i+size <= int(offset) {
			line++
			lineStart = i + size
		}
		i += size
	}
	col := 1
	rest := text[lineStart:int(offset)]
	gr := uniseg.NewGraphemes(rest)
	for gr.Next() {
		col++
	}
	return Position{Line: line, Column: col}
}
