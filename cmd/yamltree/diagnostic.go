// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/rivo/uniseg"

	"go.yaml.in/yamltree"
)

// tabstopWidth is the size tabs are rendered as in source snippets.
const tabstopWidth = 4

const bom = "\xEF\xBB\xBF"

// sourceLine returns the line of text holding pos and the part of that line
// before pos. ok is false when pos does not point into text.
func sourceLine(text string, pos yamltree.Position) (line, prefix string, ok bool) {
	if pos.Line == 0 || pos.Index < 0 || pos.Index > len(text) {
		return "", "", false
	}
	start := strings.LastIndexAny(text[:pos.Index], "\r\n") + 1
	end := strings.IndexAny(text[pos.Index:], "\r\n")
	if end < 0 {
		end = len(text)
	} else {
		end += pos.Index
	}
	line, prefix = text[start:end], text[start:pos.Index]
	if start == 0 {
		line, prefix = strings.TrimPrefix(line, bom), strings.TrimPrefix(prefix, bom)
	}
	return line, prefix, true
}

// writeDiagnostic reports err for the file path with its source line and a
// caret under the offending column.
//
//	bad.yaml: yaml: line 2, column 1: duplicate mapping key "a"
//	 2 | a: 2
//	   | ^
func writeDiagnostic(w io.Writer, path, text string, err error) {
	fmt.Fprintf(w, "%s: %v\n", path, err)

	var yerr *yamltree.Error
	if !errors.As(err, &yerr) {
		return
	}
	line, prefix, ok := sourceLine(text, yerr.Pos)
	if !ok {
		return
	}
	gutter := strconv.Itoa(yerr.Pos.Line)
	var snippet strings.Builder
	stringWidth(0, line, &snippet)
	fmt.Fprintf(w, " %s | %s\n", gutter, strings.TrimRight(snippet.String(), " "))
	fmt.Fprintf(w, " %s | %s^\n", strings.Repeat(" ", len(gutter)), strings.Repeat(" ", stringWidth(0, prefix, nil)))
}

// stringWidth returns the column text ends at when rendered from column,
// with tabs expanded to the next tabstop. The rendered text is written to
// out if it is not nil.
func stringWidth(column int, text string, out *strings.Builder) int {
	for text != "" {
		next := text
		nextTab := strings.IndexByte(text, '\t')
		haveTab := nextTab != -1
		if haveTab {
			next, text = text[:nextTab], text[nextTab+1:]
		} else {
			text = ""
		}

		column += uniseg.StringWidth(next)
		if out != nil {
			out.WriteString(next)
		}

		if haveTab {
			tab := tabstopWidth - (column % tabstopWidth)
			column += tab
			if out != nil {
				out.WriteString(strings.Repeat(" ", tab))
			}
		}
	}
	return column
}

// utf16Len returns the length of s in UTF-16 code units, the unit of
// language server character offsets.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
