package caption

// decodeText implements spec.md §4.1.2, grounded on
// caption_frame_decode_text in _examples/original_source/src/caption.c.
// The caller (frame.go's Decode) already guards write == none.
func (f *Frame) decodeText(word uint16) Status {
	char1, char2, _ := toUTF8(word)

	if char1 == "" {
		switch {
		case isBasicNA(word):
			c1 := byte(word>>8) & 0x7F
			c2 := byte(word) & 0x7F
			if c1 < 0x20 || c2 < 0x20 {
				f.Detail.Set(DetailInvalidCharacter)
			}
		case isWestEU(word):
			low := byte(word) & 0x7F
			high := byte(word>>8) & 0x7F
			if !(low >= 0x20 && low <= 0x3F && (high == 0x12 || high == 0x13)) {
				f.Detail.Set(DetailInvalidExtCharacter)
			}
		}
		return StatusOK
	}

	// Western-European extended characters replace the previous cell: the
	// original backspaces unconditionally here "for back compatibility".
	if isWestEU(word) {
		f.backspace()
	}

	buf := f.writeBuffer()
	if buf == nil {
		return StatusOK
	}

	f.writeOneChar(buf, char1)
	if char2 != "" {
		f.writeOneChar(buf, char2)
	}

	if f.PaintOn() {
		return StatusReady
	}
	return StatusOK
}

// writeOneChar writes a single translated character at the cursor and
// advances the column, marking OFF_SCREEN if the write landed out of
// bounds.
func (f *Frame) writeOneChar(buf *Buffer, char string) {
	if buf.WriteChar(f.State.Row, f.State.Col, f.State.Style, f.State.Underline, char) {
		f.State.Col++
		return
	}
	f.Detail.Set(DetailOffScreen)
}
