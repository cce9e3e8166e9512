package caption

// Adapted from the frameBufferChar/frameBuffer types in
// _examples/szatmary-gocaption/eia608.go (frameBuffer.clear/getChar/setChar/
// String) and from caption_frame_cell_t/caption_frame_buffer_t in
// _examples/original_source/caption/caption.h. The teacher stores a single
// decoded rune per cell; caption.h's cell stores up to 4 raw UTF-8 bytes plus
// a terminator, which is what spec.md's data model calls for, so the cell
// representation here follows caption.h rather than the teacher's rune.

// Rows and Cols are the fixed caption grid dimensions (CEA-608 §6.4).
const (
	Rows = 15
	Cols = 32
)

// Style is the 3-bit EIA-608 color/attribute code carried by preamble and
// mid-row-change words.
type Style byte

const (
	StyleWhite Style = iota
	StyleGreen
	StyleBlue
	StyleCyan
	StyleRed
	StyleYellow
	StyleMagenta
	StyleItalics
)

// maxCellBytes is the number of raw UTF-8 bytes a cell can hold (caption.h's
// utf8_char_t data[5], 4 bytes of payload plus a null terminator).
const maxCellBytes = 4

// Cell is one character position in a Buffer: a style/underline attribute
// pair plus up to 4 bytes of UTF-8 data. A zero first byte means empty.
type Cell struct {
	Underline bool
	Style     Style
	data      [maxCellBytes + 1]byte
}

// Empty reports whether the cell holds no character.
func (c Cell) Empty() bool { return c.data[0] == 0 }

// Char returns the cell's character as a string, or "" if empty.
func (c Cell) Char() string {
	n := 0
	for n < maxCellBytes && c.data[n] != 0 {
		n++
	}
	return string(c.data[:n])
}

// setChar installs style/underline/char into the cell, truncating char to
// maxCellBytes bytes if it somehow exceeds that (it never should for a
// legal 608 character). Returns true if the cell's content changed.
func (c *Cell) setChar(style Style, underline bool, char string) bool {
	next := Cell{Style: style, Underline: underline}
	n := copy(next.data[:maxCellBytes], char)
	next.data[n] = 0
	if next == *c {
		return false
	}
	*c = next
	return true
}

// clear empties the cell, preserving nothing.
func (c *Cell) clear() { *c = Cell{} }

// Buffer is the fixed 15x32 caption grid. A Frame holds two: front (what a
// viewer sees) and back (the pop-on staging buffer).
type Buffer struct {
	cells [Rows][Cols]Cell
}

// Clear resets every cell in the buffer, equivalent to caption_frame_buffer_clear's
// memset(buff, 0, sizeof(caption_frame_buffer_t)).
func (b *Buffer) Clear() {
	for r := range b.cells {
		for c := range b.cells[r] {
			b.cells[r][c] = Cell{}
		}
	}
}

// cellAt returns a pointer to the cell at (row, col), or nil if out of
// bounds, mirroring frame_buffer_cell's bounds check in caption.c.
func (b *Buffer) cellAt(row, col int) *Cell {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return nil
	}
	return &b.cells[row][col]
}

// WriteChar writes a single character at (row, col). It reports whether the
// write landed on-screen; the caller is responsible for treating an
// out-of-bounds write as DetailOffScreen per spec.md §4.1.2.
func (b *Buffer) WriteChar(row, col int, style Style, underline bool, char string) bool {
	cell := b.cellAt(row, col)
	if cell == nil {
		return false
	}
	cell.setChar(style, underline, char)
	return true
}

// ReadChar reads the character at (row, col). Returns "" with StyleWhite and
// underline false if out of bounds, matching caption_frame_read_char's
// EIA608_CHAR_NULL fallback.
func (b *Buffer) ReadChar(row, col int) (char string, style Style, underline bool) {
	cell := b.cellAt(row, col)
	if cell == nil {
		return "", StyleWhite, false
	}
	return cell.Char(), cell.Style, cell.Underline
}

// clearCellRange blanks cells [fromCol, Cols) on row, used by
// delete_to_end_of_row.
func (b *Buffer) clearCellRange(row, fromCol int) {
	for c := fromCol; c < Cols; c++ {
		if cell := b.cellAt(row, c); cell != nil {
			cell.clear()
		}
	}
}

// shiftRowsUp implements the roll-up shift from spec.md §4.1.4: the
// contents of rows (from, Rows) move up by one, overwriting row from (row k
// takes row k+1's contents for k = from..Rows-2), and the bottom row is
// cleared. Equivalent to the original's loop that copies row r over row r-1
// for r = from+1..Rows-1, i.e. the same shift expressed from the
// destination side.
func (b *Buffer) shiftRowsUp(from int) {
	for r := from; r < Rows-1; r++ {
		b.cells[r] = b.cells[r+1]
	}
	b.cells[Rows-1] = [Cols]Cell{}
}

// copyFrom overwrites b with src's contents, used by end_of_caption's
// front := back swap.
func (b *Buffer) copyFrom(src *Buffer) { *b = *src }
