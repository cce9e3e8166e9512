package caption

// decodePreamble and decodeMidRowChange implement spec.md §4.1.3 and the
// mid-row-change row of §4.1's dispatch table, grounded on
// caption_frame_decode_preamble / caption_frame_decode_midrowchange in
// _examples/original_source/src/caption.c.

// decodePreamble installs a Preamble Address Code's row/col/style/underline
// into frame state. A low byte outside the legal 0x40..0x7F range flags
// ABNORMAL_PACKET but the best-effort parse is installed regardless.
func (f *Frame) decodePreamble(word uint16) Status {
	row, col, style, _, underline := parsePreamble(word)

	low := byte(word) & 0x7F
	if low < 0x40 || low > 0x7F {
		f.Detail.Set(DetailAbnormalPacket)
	}

	f.State.Row = row
	f.State.Col = col
	f.State.Style = style
	f.State.Underline = underline
	return StatusOK
}

// decodeMidRowChange installs a mid-row style change. A word outside the
// legal form (high byte in {0x11, 0x19}, low byte in 0x20..0x2F) flags
// UNKNOWN_TEXT_ATTRIBUTE but the parsed style/underline are installed
// regardless.
func (f *Frame) decodeMidRowChange(word uint16) Status {
	style, _, underline := parseMidRowChange(word)

	high := byte(word>>8) & 0x7F
	low := byte(word) & 0x7F
	if !((high == 0x11 || high == 0x19) && low >= 0x20 && low <= 0x2F) {
		f.Detail.Set(DetailUnknownTextAttribute)
	}

	f.State.Style = style
	f.State.Underline = underline
	return StatusOK
}
