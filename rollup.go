package caption

// carriageReturn, backspace, and deleteToEndOfRow implement spec.md §4.1.1's
// row-editing control commands, grounded on caption_frame_carriage_return,
// caption_frame_backspace, and caption_frame_delete_to_end_of_row in
// _examples/original_source/src/caption.c.

// carriageReturn implements spec.md §4.1.4. It returns Error (OFF_SCREEN)
// if the cursor row is out of [0, Rows); otherwise it shifts the write
// buffer's active roll-up window up by one row, or no-ops if no roll-up
// window is open.
func (f *Frame) carriageReturn() Status {
	if f.State.Row < 0 || f.State.Row >= Rows {
		f.Detail.Set(DetailOffScreen)
		return StatusError
	}

	r := f.State.Row - (f.State.Rup - 1)
	if r <= 0 || f.RollUpLines() == 0 {
		return StatusOK
	}

	if buf := f.writeBuffer(); buf != nil {
		buf.shiftRowsUp(r - 1)
	}
	f.State.Col = 0
	return StatusOK
}

// backspace moves the cursor back one column and resets that cell to a
// blank white/non-underlined character. The original reaches the erased
// cell only through caption_frame_write_char(..., eia608_style_white, 0,
// EIA608_CHAR_NULL), which unconditionally installs style and underline
// alongside the character, so this is a full cell reset, not just a text
// clear. Per the original, this is display-affecting and so returns Ready
// rather than Ok.
func (f *Frame) backspace() Status {
	if f.State.Col > 0 {
		f.State.Col--
	}
	if buf := f.writeBuffer(); buf != nil {
		buf.WriteChar(f.State.Row, f.State.Col, StyleWhite, false, "")
	}
	return StatusReady
}

// deleteToEndOfRow clears every cell from the cursor column to the end of
// the current row. Like backspace, this is display-affecting and returns
// Ready.
func (f *Frame) deleteToEndOfRow() Status {
	if buf := f.writeBuffer(); buf != nil {
		buf.clearCellRange(f.State.Row, f.State.Col)
	}
	return StatusReady
}
