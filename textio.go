package caption

import (
	"fmt"
	"strings"
)

// FrameFromText, FrameToText, and the Dump helpers are the External
// Interfaces boundary utilities from spec.md §6, grounded on
// caption_frame_from_text / caption_frame_to_text / caption_frame_dump(_buffer)
// in _examples/original_source/src/caption.c. src/caption.c's own from_text
// wasn't among the kept original_source files in enough detail to port
// verbatim, so the wrap algorithm here is a direct implementation of
// spec.md §6's prose: greedy-fill each row to Cols, skip leading whitespace
// on a newly started row, stop once Rows is exhausted.

// FrameFromText stuffs the back buffer with text hard-wrapped at Cols
// columns (a wrap may split a word) and then
// atomically publishes it to front, mirroring end_of_caption's back->front
// copy.
func FrameFromText(f *Frame, text string) {
	f.Back.Clear()
	row, col := 0, 0

	for _, r := range text {
		if r == '\r' {
			continue
		}
		if r == '\n' {
			row++
			col = 0
			if row >= Rows {
				break
			}
			continue
		}
		if col >= Cols {
			row++
			col = 0
			if row >= Rows {
				break
			}
		}
		if col == 0 && utf8IsSpace(r) {
			continue
		}
		f.Back.WriteChar(row, col, f.State.Style, f.State.Underline, string(r))
		col++
	}

	f.Front.copyFrom(&f.Back)
	f.Back.Clear()
}

// FrameToText reads the front buffer and emits each row's printable run,
// skipping leading whitespace per row, joining non-empty rows with CRLF.
func FrameToText(f *Frame) string {
	rows := make([]string, 0, Rows)
	for r := 0; r < Rows; r++ {
		var b strings.Builder
		started := false
		for c := 0; c < Cols; c++ {
			ch, _, _ := f.Front.ReadChar(r, c)
			if ch == "" {
				continue
			}
			if !started && utf8IsSpaceString(ch) {
				continue
			}
			started = true
			b.WriteString(ch)
		}
		if text := b.String(); text != "" {
			rows = append(rows, text)
		}
	}
	return strings.Join(rows, "\r\n")
}

// rowString renders one buffer row as a fixed-width Cols-character string,
// blanks standing in for empty cells.
func rowString(buf *Buffer, row int) string {
	var b strings.Builder
	for c := 0; c < Cols; c++ {
		ch, _, _ := buf.ReadChar(row, c)
		if ch == "" {
			b.WriteByte(' ')
		} else {
			b.WriteString(ch)
		}
	}
	return b.String()
}

// DumpBuffer renders one buffer as Rows lines of Cols characters each, for
// debugging.
func DumpBuffer(buf *Buffer) string {
	var b strings.Builder
	for r := 0; r < Rows; r++ {
		b.WriteString(rowString(buf, r))
		b.WriteByte('\n')
	}
	return b.String()
}

// Dump renders front and back side by side, for debugging.
func (f *Frame) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-32s | %-32s\n", "FRONT", "BACK")
	for r := 0; r < Rows; r++ {
		fmt.Fprintf(&b, "%-32s | %-32s\n", rowString(&f.Front, r), rowString(&f.Back, r))
	}
	return b.String()
}
