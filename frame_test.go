package caption

import (
	"testing"

	assert "github.com/stretchr/testify/require"
)

func withParity(raw uint16) uint16 { return parityWord(raw) }

func TestDecodeParityError(t *testing.T) {
	assert := assert.New(t)

	var f Frame
	f.Init()

	status := f.Decode(0x1401, 0, nil, nil, NtscField1, false)
	assert.Equal(StatusError, status)
	assert.True(f.Detail.Is(DetailParityError))
}

func TestDecodeZeroPaddingIsOK(t *testing.T) {
	assert := assert.New(t)

	var f Frame
	f.Init()

	status := f.Decode(withParity(0x0000), 0, nil, nil, NtscField1, false)
	assert.Equal(StatusOK, status)
}

func TestDecodeDuplicateControlSuppressed(t *testing.T) {
	assert := assert.New(t)

	var f Frame
	f.Init()

	word := withParity(rawResumeDirectCaptioning)
	status := f.Decode(word, 0, nil, nil, NtscField1, false)
	assert.Equal(StatusOK, status)

	status = f.Decode(word, 0, nil, nil, NtscField1, false)
	assert.Equal(StatusOK, status)
	assert.True(f.Detail.Is(DetailDuplicateControl))
}

// TestPopOnAtomicity covers spec.md's pop-on atomicity property: text
// written after resume_caption_loading lands in the back buffer and is
// invisible to the front buffer until end_of_caption publishes it.
func TestPopOnAtomicity(t *testing.T) {
	assert := assert.New(t)

	var f Frame
	f.Init()

	status := f.Decode(withParity(rawResumeCaptionLoading), 0, nil, nil, NtscField1, false)
	assert.Equal(StatusOK, status)
	assert.True(f.PopOn())

	f.State.Row, f.State.Col = 0, 0
	textWord := withParity(uint16('H')<<8 | uint16('I'))
	status = f.Decode(textWord, 0, nil, nil, NtscField1, false)
	assert.Equal(StatusOK, status)

	ch, _, _ := f.Front.ReadChar(0, 0)
	assert.Equal("", ch, "text must not reach front before end_of_caption")
	ch, _, _ = f.Back.ReadChar(0, 0)
	assert.Equal("H", ch)

	status = f.Decode(withParity(rawEndOfCaption), 0, nil, nil, NtscField1, false)
	assert.Equal(StatusReady, status)

	ch, _, _ = f.Front.ReadChar(0, 0)
	assert.Equal("H", ch)
	ch, _, _ = f.Back.ReadChar(0, 0)
	assert.Equal("", ch, "back buffer must be cleared after publish")
}

// TestRollUp2CarriageReturnShift mirrors the roll-up-2 scenario: after
// writing "A" on row 14 and hitting carriage_return, "A" moves up to row
// 13 and the cursor is ready for "B" to land back on row 14.
func TestRollUp2CarriageReturnShift(t *testing.T) {
	assert := assert.New(t)

	var f Frame
	f.Init()

	status := f.Decode(withParity(rawRollUp2), 0, nil, nil, NtscField1, false)
	assert.Equal(StatusOK, status)
	assert.Equal(1, f.State.Rup)
	assert.True(f.PaintOn())

	f.State.Row = Rows - 1 // row 14, the default active row
	f.State.Col = 0

	aWord := withParity(uint16('A') << 8)
	status = f.Decode(aWord, 0, nil, nil, NtscField1, false)
	assert.Equal(StatusReady, status)

	status = f.Decode(withParity(rawCarriageReturn), 0, nil, nil, NtscField1, false)
	assert.Equal(StatusOK, status)
	assert.Equal(0, f.State.Col)

	ch, _, _ := f.Front.ReadChar(Rows-2, 0)
	assert.Equal("A", ch)
	ch, _, _ = f.Front.ReadChar(Rows-1, 0)
	assert.Equal("", ch)

	bWord := withParity(uint16('B') << 8)
	status = f.Decode(bWord, 0, nil, nil, NtscField1, false)
	assert.Equal(StatusReady, status)

	ch, _, _ = f.Front.ReadChar(Rows-1, 0)
	assert.Equal("B", ch)
}

func TestCarriageReturnOffScreen(t *testing.T) {
	assert := assert.New(t)

	var f Frame
	f.Init()
	f.State.Row = Rows // out of [0, Rows)

	status := f.carriageReturn()
	assert.Equal(StatusError, status)
	assert.True(f.Detail.Is(DetailOffScreen))
}

func TestBackspaceReturnsReady(t *testing.T) {
	assert := assert.New(t)

	var f Frame
	f.Init()
	f.write = writeFront
	f.State.Row, f.State.Col = 0, 1
	f.Front.WriteChar(0, 0, StyleWhite, false, "X")

	status := f.backspace()
	assert.Equal(StatusReady, status)
	assert.Equal(0, f.State.Col)
	ch, _, _ := f.Front.ReadChar(0, 0)
	assert.Equal("", ch)
}

// TestBackspaceResetsStyleAndUnderline guards against backspace only
// clearing a cell's character while leaving a stale style/underline
// behind: the original's write_char path always resets both.
func TestBackspaceResetsStyleAndUnderline(t *testing.T) {
	assert := assert.New(t)

	var f Frame
	f.Init()
	f.write = writeFront
	f.State.Row, f.State.Col = 0, 1
	f.Front.WriteChar(0, 0, StyleRed, true, "X")

	status := f.backspace()
	assert.Equal(StatusReady, status)

	ch, style, underline := f.Front.ReadChar(0, 0)
	assert.Equal("", ch)
	assert.Equal(StyleWhite, style)
	assert.False(underline)
}

func TestUnknownControlCommandFlagged(t *testing.T) {
	assert := assert.New(t)

	var f Frame
	f.Init()

	// 0x1428 falls inside the control envelope but names no command.
	status := f.Decode(withParity(0x1428), 0, nil, nil, NtscField1, false)
	assert.Equal(StatusOK, status)
	assert.True(f.Detail.Is(DetailUnknownCommand))
}
