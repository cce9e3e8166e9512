package caption

import (
	"testing"

	assert "github.com/stretchr/testify/require"
)

func buildATSCPayload(triplets [][3]byte) []byte {
	data := []byte{0xB5, 0x00, 49, 'G', 'A', '9', '4', 0x03, byte(0x40 | len(triplets))}
	for _, trip := range triplets {
		data = append(data, trip[:]...)
	}
	data = append(data, 0xFF) // marker_bits byte, ignored by this parser
	return data
}

func TestCEA708ToCCDataParsesValidTriplets(t *testing.T) {
	assert := assert.New(t)

	payload := buildATSCPayload([][3]byte{
		{0x04 | 0x00, 0x80, 0x80}, // cc_valid, cc_type=0 (NtscField1)
		{0x04 | 0x01, 0x90, 0x91}, // cc_valid, cc_type=1 (NtscField2)
		{0x00, 0xFF, 0xFF},        // not valid, should be skipped
	})

	words, err := CEA708ToCCData(payload)
	assert.Nil(err)
	assert.Len(words, 2)
	assert.Equal(NtscField1, words[0].Channel)
	assert.Equal(uint16(0x8080), words[0].Word)
	assert.Equal(NtscField2, words[1].Channel)
}

func TestCEA708ToCCDataRejectsBadCountryCode(t *testing.T) {
	assert := assert.New(t)

	_, err := CEA708ToCCData([]byte{0x00, 0x00, 49, 'G', 'A', '9', '4', 0x03, 0x40})
	assert.NotNil(err)
}

func TestCEA708ToCCDataRejectsUnknownProvider(t *testing.T) {
	assert := assert.New(t)

	_, err := CEA708ToCCData([]byte{0xB5, 0x00, 99, 'G', 'A', '9', '4', 0x03, 0x40})
	assert.NotNil(err)
}

func TestCEA708ToCCDataTooShort(t *testing.T) {
	assert := assert.New(t)

	_, err := CEA708ToCCData([]byte{0xB5, 0x00})
	assert.NotNil(err)
}
