package caption

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	assert "github.com/stretchr/testify/require"
)

func TestCellSetCharReportsChange(t *testing.T) {
	assert := assert.New(t)

	var c Cell
	assert.True(c.Empty())

	changed := c.setChar(StyleRed, true, "A")
	assert.True(changed)
	assert.False(c.Empty())
	assert.Equal("A", c.Char())
	assert.Equal(StyleRed, c.Style)
	assert.True(c.Underline)

	changed = c.setChar(StyleRed, true, "A")
	assert.False(changed)
}

func TestBufferWriteReadOutOfBounds(t *testing.T) {
	assert := assert.New(t)

	var b Buffer
	assert.False(b.WriteChar(-1, 0, StyleWhite, false, "A"))
	assert.False(b.WriteChar(Rows, 0, StyleWhite, false, "A"))
	assert.False(b.WriteChar(0, Cols, StyleWhite, false, "A"))

	ch, style, underline := b.ReadChar(Rows, 0)
	assert.Equal("", ch)
	assert.Equal(StyleWhite, style)
	assert.False(underline)
}

func TestBufferClearCellRange(t *testing.T) {
	assert := assert.New(t)

	var b Buffer
	for c := 0; c < Cols; c++ {
		b.WriteChar(0, c, StyleWhite, false, "x")
	}
	b.clearCellRange(0, 10)

	for c := 0; c < 10; c++ {
		ch, _, _ := b.ReadChar(0, c)
		assert.Equal("x", ch)
	}
	for c := 10; c < Cols; c++ {
		ch, _, _ := b.ReadChar(0, c)
		assert.Equal("", ch)
	}
}

func TestBufferShiftRowsUp(t *testing.T) {
	assert := assert.New(t)

	var b Buffer
	b.WriteChar(13, 0, StyleWhite, false, "A")
	b.WriteChar(14, 0, StyleWhite, false, "B")

	b.shiftRowsUp(13)

	ch, _, _ := b.ReadChar(13, 0)
	assert.Equal("B", ch)
	ch, _, _ = b.ReadChar(14, 0)
	assert.Equal("", ch)
}

func TestBufferCopyFrom(t *testing.T) {
	assert := assert.New(t)

	var src, dst Buffer
	src.WriteChar(0, 0, StyleCyan, true, "Z")

	dst.copyFrom(&src)
	ch, style, underline := dst.ReadChar(0, 0)
	assert.Equal("Z", ch)
	assert.Equal(StyleCyan, style)
	assert.True(underline)
}

// TestBufferCopyFromIsDeepEqual guards copyFrom against becoming a
// shallow/partial copy as Buffer's fields evolve, using a full structural
// diff rather than spot-checking individual cells.
func TestBufferCopyFromIsDeepEqual(t *testing.T) {
	var src, dst Buffer
	for r := 0; r < Rows; r++ {
		src.WriteChar(r, r%Cols, Style(r%8), r%2 == 0, "x")
	}

	dst.copyFrom(&src)

	if diff := cmp.Diff(src, dst, cmp.AllowUnexported(Buffer{}, Cell{})); diff != "" {
		t.Fatalf("copyFrom produced a divergent buffer (-src +dst):\n%s", diff)
	}
}
