package caption

import "github.com/pkg/errors"

// CEA708ToCCData extracts the raw CEA-608/708 caption-data words carried in
// an H.264 SEI "Registered User Data" (itu_t_t35) payload, adapted from
// CEA708ToCCData/parseCEA708/parseCEA708UserData in
// _examples/szatmary-gocaption/cea708.go. The teacher's version returns a
// flat []uint16; this one additionally classifies each word's channel type
// (from the cc_type field) so the result can be fed straight into
// Frame.Decode/Frame.DecodeDTVCC.

// cea708Provider identifies the itu_t_t35_provider_code values this parser
// recognizes.
type cea708Provider uint16

const (
	cea708ProviderDirecTV cea708Provider = 47
	cea708ProviderATSC    cea708Provider = 49
)

// cea708CCType is the 2-bit cc_type field of one cc_data triplet.
type cea708CCType uint8

const (
	cea708NtscField1      cea708CCType = 0
	cea708NtscField2      cea708CCType = 1
	cea708DtvccPacketData cea708CCType = 2
	cea708DtvccPacketStart cea708CCType = 3
)

// CEA708Word is one decoded caption-data word plus the channel it arrived
// on, ready to feed Frame.Decode / Frame.DecodeDTVCC.
type CEA708Word struct {
	Word    uint16
	Channel ChannelType
}

func (t cea708CCType) channel() ChannelType {
	switch t {
	case cea708NtscField1:
		return NtscField1
	case cea708NtscField2:
		return NtscField2
	case cea708DtvccPacketStart:
		return DtvccHeader
	default:
		return DtvccData
	}
}

// CEA708ToCCData parses an SEI payload's itu_t_t35 user data and returns
// every cc_data triplet it finds. It returns an error if the payload is too
// short to contain a legal header, or if the provider code isn't one this
// parser recognizes (ATSC or DirecTV).
func CEA708ToCCData(data []byte) ([]CEA708Word, error) {
	if len(data) < 3 {
		return nil, errors.New("cea708: SEI payload too short for itu_t_t35 header")
	}

	countryCode := data[0]
	providerCode := cea708Provider(uint16(data[1])<<8 | uint16(data[2]))
	if countryCode != 0xB5 {
		return nil, errors.Errorf("cea708: unrecognized itu_t_t35_country_code 0x%02x", countryCode)
	}

	switch providerCode {
	case cea708ProviderATSC:
		return parseATSCUserData(data[3:])
	case cea708ProviderDirecTV:
		return parseATSCUserData(data[3:])
	default:
		return nil, errors.Errorf("cea708: unrecognized itu_t_t35_provider_code %d", providerCode)
	}
}

// parseATSCUserData parses the user_identifier + user_data_type_code +
// cc_data() structure that follows the itu_t_t35 header, per ATSC A/53 §8.
func parseATSCUserData(data []byte) ([]CEA708Word, error) {
	if len(data) < 6 {
		return nil, errors.New("cea708: SEI payload too short for user data header")
	}
	// data[0:4] is the user_identifier ("GA94"/"DTG1"); data[4] is
	// user_data_type_code, which must be 0x03 (cc_data()).
	if data[4] != 0x03 {
		return nil, errors.Errorf("cea708: unsupported user_data_type_code 0x%02x", data[4])
	}

	ccCount := int(data[5] & 0x1F)
	body := data[6:]
	words := make([]CEA708Word, 0, ccCount)

	for i := 0; i < ccCount; i++ {
		off := i * 3
		if off+3 > len(body) {
			return words, errors.New("cea708: cc_data() truncated before cc_count triplets were read")
		}
		ccValid := body[off]&0x04 != 0
		if !ccValid {
			continue
		}
		ccType := cea708CCType(body[off] & 0x03)
		word := uint16(body[off+1])<<8 | uint16(body[off+2])
		words = append(words, CEA708Word{Word: word, Channel: ccType.channel()})
	}
	return words, nil
}
