// SPDX-License-Identifier: MIT
package lexer

import "bytes"

type (
	// cursor tracks the scan position: a byte offset into the source &
	// its derived 1-based line/column.
	//
	// The offset is strictly non-decreasing for a scan; line & column are
	// maintained incrementally by `advance` & must always agree with the
	// from-scratch `lineAt`/`columnAt` definitions.
	cursor struct {
		offset int
		line   int
		column int
	}
)

// newCursor instantiates a cursor at the start of a source buffer.
func newCursor() cursor { return cursor{line: 1, column: 1} }

// advance moves the cursor forward over n consumed bytes of src, updating
// line & column from the consumed slice alone.
//
// A consumed lexeme may itself contain newlines (whitespace runs); each
// resets the column count.
func (c *cursor) advance(src []byte, n int) {
	for _, b := range src[c.offset : c.offset+n] {
		if b == '\n' {
			c.line++
			c.column = 1
			continue
		}
		c.column++
	}

	c.offset += n
}

// lineAt recomputes the 1-based line for an offset by rescanning the
// buffer prefix: 1 + the count of '\n' bytes before offset.
func lineAt(src []byte, offset int) int {
	return 1 + bytes.Count(src[:offset], []byte{'\n'})
}

// columnAt recomputes the 1-based column for an offset: the distance back
// to the most recent '\n' before it, or offset+1 when none precedes.
func columnAt(src []byte, offset int) int {
	last := bytes.LastIndexByte(src[:offset], '\n')
	if last < 0 {
		return offset + 1
	}

	return offset - last
}
