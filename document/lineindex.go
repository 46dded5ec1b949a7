package document

import "unicode/utf16"

// LineIndex translates byte offsets into a document's text to 0-based
// {Line, Character} pairs, the character counted in UTF-16 code units per
// the LSP convention noted in SPEC_FULL.md §4.5's ambient supplement. It is
// a snapshot of one Text value; callers must not hold one across an Apply.
type LineIndex struct {
	text       string
	lineStarts []int // byte offset of the first byte of each line
}

// LinePos is a 0-based line/character pair, the character counted in UTF-16
// code units. Named to avoid colliding with the statement Position type.
type LinePos struct {
	Line      int
	Character int
}

func buildLineIndex(text string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{text: text, lineStarts: starts}
}

// Position converts a byte offset into text to a {line, character} pair.
// Offsets past the end of the text clamp to the document's final position.
func (li *LineIndex) Position(offset int) LinePos {
	if offset < 0 {
		offset = 0
	}
	if offset > len(li.text) {
		offset = len(li.text)
	}

	line := li.lineForOffset(offset)
	lineStart := li.lineStarts[line]
	return LinePos{Line: line, Character: utf16Len(li.text[lineStart:offset])}
}

// Offset converts a {line, character} pair back to a byte offset, the
// inverse of Position. A character beyond the line's length clamps to the
// line's end (not counting its trailing newline).
func (li *LineIndex) Offset(pos LinePos) int {
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= len(li.lineStarts) {
		return len(li.text)
	}
	lineStart := li.lineStarts[pos.Line]
	lineEnd := len(li.text)
	if pos.Line+1 < len(li.lineStarts) {
		lineEnd = li.lineStarts[pos.Line+1]
		for lineEnd > lineStart && li.text[lineEnd-1] == '\n' {
			lineEnd--
		}
	}
	return lineStart + byteOffsetForUTF16(li.text[lineStart:lineEnd], pos.Character)
}

func (li *LineIndex) lineForOffset(offset int) int {
	lo, hi := 0, len(li.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if li.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += len(utf16.Encode([]rune{r}))
	}
	return n
}

func byteOffsetForUTF16(s string, units int) int {
	if units <= 0 {
		return 0
	}
	count := 0
	for i, r := range s {
		u := len(utf16.Encode([]rune{r}))
		if count >= units {
			return i
		}
		count += u
	}
	return len(s)
}
