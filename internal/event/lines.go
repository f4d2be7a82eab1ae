// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package event

import "unicode/utf8"

const bom = "\xEF\xBB\xBF"

// lineIndex recovers byte offsets from the line/column pairs reported by the
// composer. Line breaks are the ones YAML recognizes: LF, CR LF, CR, NEL, LS
// and PS. Columns count characters, not bytes.
type lineIndex struct {
	text   string
	starts []int // offset of the first byte of each line
}

func newLineIndex(text string) *lineIndex {
	first := 0
	if len(text) >= len(bom) && text[:len(bom)] == bom {
		// The reader drops the byte order mark without advancing the column.
		first = len(bom)
	}
	starts := []int{first}
	for i := first; i < len(text); {
		n := breakWidth(text[i:])
		if n == 0 {
			i++
			continue
		}
		i += n
		starts = append(starts, i)
	}
	return &lineIndex{text: text, starts: starts}
}

// breakWidth returns the length in bytes of the line break at the start of
// s, or 0 if s does not start with one.
func breakWidth(s string) int {
	switch {
	case s[0] == '\r':
		if len(s) > 1 && s[1] == '\n' {
			return 2
		}
		return 1
	case s[0] == '\n':
		return 1
	case len(s) > 1 && s[0] == 0xC2 && s[1] == 0x85: // NEL
		return 2
	case len(s) > 2 && s[0] == 0xE2 && s[1] == 0x80 && (s[2] == 0xA8 || s[2] == 0xA9): // LS, PS
		return 3
	}
	return 0
}

// mark returns the full mark of a 1-indexed line and column. Columns past
// the end of the line are clamped to the line break.
func (x *lineIndex) mark(line, column int) Mark {
	if line < 1 {
		return Mark{}
	}
	if line > len(x.starts) {
		return x.end()
	}
	if column < 1 {
		column = 1
	}
	off := x.starts[line-1]
	limit := len(x.text)
	if line < len(x.starts) {
		limit = x.starts[line]
	}
	for c := 1; c < column && off < limit; c++ {
		_, size := utf8.DecodeRuneInString(x.text[off:limit])
		off += size
	}
	return Mark{Index: off, Line: line, Column: column}
}

// end returns the mark just past the last byte of the input.
func (x *lineIndex) end() Mark {
	line := len(x.starts)
	start := x.starts[line-1]
	return Mark{
		Index:  len(x.text),
		Line:   line,
		Column: utf8.RuneCountInString(x.text[start:]) + 1,
	}
}
