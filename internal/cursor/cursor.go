// Package cursor owns the raw source text and the byte-level position
// bookkeeping (offset, line, column) that both the tokenizer and, through
// diagnostics, the parser depend on. It normalizes CR, LF, and CRLF into a
// single logical line advance and keeps a sticky flag recording whether a
// line terminator has been seen since the flag was last taken, the signal
// the tokenizer needs for automatic semicolon insertion.
package cursor

import "github.com/esvalidate/esvalidate/internal/diag"

// Cursor walks the source text one byte at a time. The source text must
// outlive the Cursor; Cursor never copies it.
type Cursor struct {
	src        string
	offset     int
	line       int
	column     int
	sawNewline bool
}

// New creates a Cursor positioned at the start of src, line 1 column 1.
func New(src string) *Cursor {
	return &Cursor{src: src, line: 1, column: 1}
}

// AtEOF reports whether the cursor has consumed the entire source.
func (c *Cursor) AtEOF() bool {
	return c.offset >= len(c.src)
}

// Peek returns the byte at the current offset, or 0 at end of input.
func (c *Cursor) Peek() byte {
	return c.PeekAt(0)
}

// PeekAt returns the byte n positions ahead of the current offset, or 0 if
// that position lies at or past the end of input.
func (c *Cursor) PeekAt(n int) byte {
	i := c.offset + n
	if i < 0 || i >= len(c.src) {
		return 0
	}
	return c.src[i]
}

// Pos returns the cursor's current position.
func (c *Cursor) Pos() diag.Position {
	return diag.Position{Line: c.line, Column: c.column, Offset: c.offset}
}

// Remainder returns the unconsumed tail of the source, useful for lexing
// routines that need to look ahead past the current byte (multi-byte
// operator matching, rune decoding).
func (c *Cursor) Remainder() string {
	return c.src[c.offset:]
}

// Slice returns src[from:c.offset], the bytes consumed since a remembered
// start offset.
func (c *Cursor) Slice(from int) string {
	return c.src[from:c.offset]
}

// Offset returns the current byte offset.
func (c *Cursor) Offset() int {
	return c.offset
}

// Advance consumes and returns the current byte as an ordinary (non line
// terminator) byte: offset and column both move forward by one. Callers
// must use AdvanceNewline instead when the byte(s) at the cursor form a
// recognized line terminator.
func (c *Cursor) Advance() byte {
	b := c.Peek()
	c.offset++
	c.column++
	return b
}

// AdvanceNewline consumes width bytes (1 for LF or CR, 2 for CRLF, 3 for
// U+2028/U+2029) as a single logical line terminator: the line counter
// advances by exactly one regardless of width, column resets to 1, and the
// sticky newline flag is set.
func (c *Cursor) AdvanceNewline(width int) {
	c.offset += width
	c.line++
	c.column = 1
	c.sawNewline = true
}

// MarkNewline sets the sticky newline flag without moving the cursor, for a
// caller that has advanced past a terminator through some other path but
// still needs the flag recorded. The lexer itself records terminators via
// AdvanceNewline, including inside block comments.
func (c *Cursor) MarkNewline() {
	c.sawNewline = true
}

// TakeNewlineFlag returns whether a line terminator has been seen since the
// flag was last taken, then clears it. The tokenizer calls this once per
// emitted token.
func (c *Cursor) TakeNewlineFlag() bool {
	v := c.sawNewline
	c.sawNewline = false
	return v
}
