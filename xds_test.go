package caption

import (
	"testing"

	assert "github.com/stretchr/testify/require"
)

func TestXDSDecodeSimplePacket(t *testing.T) {
	assert := assert.New(t)

	var x XDSState
	x.init()
	var d StatusDetail

	// Start class=current(0x1), type=0x01.
	status := x.decodeIdle(0x0101, &d)
	assert.Equal(StatusOK, status)
	assert.Equal(xdsStateInPacket, x.state)

	// One content byte pair.
	status = x.decodeInPacket(uint16('A')<<8|uint16('B'), &d)
	assert.Equal(StatusOK, status)

	pkt := x.Packet(xdsClassCurrent)
	assert.Equal(2, pkt.Size)
	assert.Equal(byte('A'), pkt.Content[0])
	assert.Equal(byte('B'), pkt.Content[1])

	sum := int(pkt.ClassCode) + int(pkt.TypeCode) + 0x0F + int('A') + int('B')
	checksum := byte((-sum) & 0x7F)
	status = x.decodeInPacket(0x8F00|uint16(checksum), &d)
	assert.Equal(StatusReady, status)
	assert.False(d.Is(DetailXDSChecksumError))
	assert.Equal(xdsStateIdle, x.state)
}

func TestXDSChecksumMismatch(t *testing.T) {
	assert := assert.New(t)

	var x XDSState
	x.init()
	var d StatusDetail

	x.decodeIdle(0x0101, &d)
	status := x.decodeInPacket(0x8F00|0x01, &d)
	assert.Equal(StatusError, status)
	assert.True(d.Is(DetailXDSChecksumError))
}

func TestXDSInvalidControlCodeZero(t *testing.T) {
	assert := assert.New(t)

	var x XDSState
	x.init()
	var d StatusDetail

	status := x.decodeIdle(0x0001, &d)
	assert.Equal(StatusError, status)
	assert.True(d.Is(DetailXDSInvalidPktStructure))
}

func TestXDSEvenContinueRequiresMatchingStart(t *testing.T) {
	assert := assert.New(t)

	var x XDSState
	x.init()
	var d StatusDetail

	// Even control code (0x2) with no prior odd start for class 0x1.
	status := x.decodeIdle(0x0201, &d)
	assert.Equal(StatusError, status)
	assert.True(d.Is(DetailXDSInvalidPktStructure))
}

func TestIsValidXDSType(t *testing.T) {
	assert := assert.New(t)

	assert.True(isValidXDSType(xdsClassCurrent, 0x01))
	assert.False(isValidXDSType(xdsClassCurrent, 0x18))
	assert.True(isValidXDSType(xdsClassChannel, 0x04))
	assert.False(isValidXDSType(xdsClassChannel, 0x05))
	assert.True(isValidXDSType(xdsClassMisc, 0x41))
	assert.False(isValidXDSType(xdsClassMisc, 0x10))
}
