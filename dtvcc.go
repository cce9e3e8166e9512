package caption

// DecodeDTVCC, the header/data word parser, and the byte-level opcode
// walker implement spec.md §4.4, grounded on dtvcc_packet_t in
// _examples/original_source/caption/dtvcc.h for the packet-state shape,
// the cc_type/service-block byte layout shown in
// _examples/other_examples's zsiec-prism injector/harness files, and on
// the explicit length tables spec.md itself gives for C1/C3. No
// src/dtvcc.c made it into original_source (only the header did), so the
// per-byte walker below is built directly from spec.md's prose rather than
// ported from a kept C function.

// DTVCCPacketState tracks progress through one 708 service-block stream,
// per spec.md §3's "DTVCC packet state".
type DTVCCPacketState struct {
	SequenceNumber         int
	SequenceCount          int
	SeenSequences          uint8
	PacketSize             int
	ServiceNumber          int
	BlockSize              int
	IsExtendedHeader       bool
	Code                   byte
	IsExtCode              bool
	InVariableLengthHeader bool
	BytesLeft              int

	// activeOpcodeExt and paramsTotal are implementation bookkeeping, not
	// named in spec.md's data model: activeOpcodeExt disambiguates Code
	// values that fall in the same byte range for both the ext and
	// non-ext opcode tables (0x98-0x9F is both "non-ext define_window" and
	// "ext C3 variable-length"); paramsTotal lets a later parameter byte
	// recover its 0-indexed offset within the current opcode's parameter
	// run (BytesLeft only tells us how many remain).
	activeOpcodeExt bool
	paramsTotal     int
}

// PacketSizeBytes returns the total packet length in bytes encoded by
// PacketSize, per dtvcc_packet_size_bytes in dtvcc.h: 128 if PacketSize is
// 0, else PacketSize*2-1.
func (d DTVCCPacketState) PacketSizeBytes() int {
	if d.PacketSize == 0 {
		return 128
	}
	return d.PacketSize*2 - 1
}

// c1CodeLength is the parameter-count-plus-one table for non-extended
// C1 opcodes 0x80..0x9F, verbatim from spec.md §4.4.
var c1CodeLength = [32]int{
	1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 1, 1,
	3, 4, 3, 1, 1, 1, 1, 5, 7, 7, 7, 7, 7, 7, 7, 7,
}

// dtvccG2Whitelist is the set of legal extended-G2 character codes per the
// CEA-708 standard's G2 table (diacritics and special punctuation); any
// other byte in the 0x20..0x7F range flags ABNORMAL_CHARACTER when seen
// with the extended-code flag set.
var dtvccG2Whitelist = map[byte]bool{
	0x20: true, 0x21: true, 0x25: true, 0x2A: true, 0x2C: true,
	0x30: true, 0x31: true, 0x32: true, 0x33: true, 0x34: true, 0x35: true,
	0x39: true, 0x3A: true, 0x3B: true, 0x3C: true, 0x3D: true, 0x3E: true, 0x3F: true,
	0x76: true, 0x77: true, 0x78: true, 0x79: true, 0x7A: true, 0x7B: true,
	0x7C: true, 0x7D: true, 0x7E: true, 0x7F: true,
}

// DecodeDTVCC feeds one caption-data word into the 708 packet parser. Only
// DtvccHeader and DtvccData reach this component; any other channel type
// is a no-op returning Ok, per spec.md §4.4.
func (f *Frame) DecodeDTVCC(ccData uint16, timestamp float64, ch ChannelType) Status {
	if ch != DtvccHeader && ch != DtvccData {
		return StatusOK
	}
	f.Detail.HasCEA708 = true

	if f.Timestamp < 0 || f.Timestamp == timestamp || f.Status == StatusReady {
		f.Timestamp = timestamp
		f.Status = StatusOK
	}

	if ch == DtvccHeader {
		f.Status = f.decodeDTVCCHeader(ccData)
	} else {
		f.Status = f.decodeDTVCCData(ccData)
	}
	return f.Status
}

func (f *Frame) decodeDTVCCHeader(word uint16) Status {
	d := &f.State.DTVCC

	seq := int((word >> 14) & 0x3)
	// packet_size is masked with 0x2F rather than the nominal 0x3F — see
	// spec.md §9's open question; preserved rather than fixed.
	packetSize := int((word >> 8) & 0x2F)
	serviceNumber := int((word >> 5) & 0x07)
	blockSize := int(word & 0x1F)

	if seq != (d.SequenceNumber+1)%4 {
		f.Detail.Set(DetailSequenceDiscontinuity)
	}
	d.SequenceNumber = seq
	d.PacketSize = packetSize
	d.ServiceNumber = serviceNumber
	d.BlockSize = blockSize

	d.SeenSequences |= 1 << uint(seq)
	d.SequenceCount++
	if d.SequenceCount%4 == 0 {
		if d.SeenSequences != 0x0F {
			f.Detail.PacketLoss++
		}
		d.SeenSequences = 0
	}

	if blockSize > 31 {
		f.Detail.Set(DetailAbnormalServiceBlock)
	}
	if serviceNumber > f.Detail.NumServices708 {
		f.Detail.NumServices708 = serviceNumber
	}

	d.IsExtendedHeader = serviceNumber == 7 && blockSize != 0
	d.BytesLeft = 0
	d.InVariableLengthHeader = false
	return StatusOK
}

func (f *Frame) decodeDTVCCData(word uint16) Status {
	d := &f.State.DTVCC
	b1 := byte(word >> 8)
	b2 := byte(word)

	if d.IsExtendedHeader {
		d.ServiceNumber = int(b1 & 0x3F)
		d.IsExtendedHeader = false
		return StatusOK
	}

	f.processDTVCCByte(b1)
	f.processDTVCCByte(b2)

	if d.BytesLeft > d.BlockSize {
		f.Detail.Set(DetailAbnormalControlCode)
	}
	return StatusOK
}

func (f *Frame) processDTVCCByte(b byte) {
	d := &f.State.DTVCC
	if d.ServiceNumber == 0 || d.BlockSize <= 0 {
		return
	}

	if d.BytesLeft == 0 {
		f.classifyDTVCCOpcode(b)
	} else {
		f.consumeDTVCCParam(b)
	}

	if d.BlockSize > 0 {
		d.BlockSize--
	}
}

func (f *Frame) classifyDTVCCOpcode(b byte) {
	d := &f.State.DTVCC
	ext := d.IsExtCode

	if !ext && b == 0x10 {
		d.IsExtCode = true
		d.Code = b
		d.BytesLeft = 0
		d.paramsTotal = 0
		return
	}

	switch {
	case b <= 0x1F:
		f.classifyC0C2(b, ext)
	case b <= 0x7F:
		f.classifyG0G2(b, ext)
	case b <= 0x9F:
		f.classifyC1C3(b, ext)
	default:
		f.classifyG1G3(b, ext)
	}
	d.Code = b
	d.activeOpcodeExt = ext
	d.IsExtCode = false
}

func (f *Frame) classifyC0C2(b byte, ext bool) {
	d := &f.State.DTVCC
	if !ext {
		switch b {
		case 0x00, 0x03, 0x08, 0x0C, 0x0D, 0x0E:
		default:
			f.Detail.Set(DetailAbnormalControlCode)
		}
		d.BytesLeft, d.paramsTotal = 0, 0
		return
	}

	switch {
	case b <= 0x07:
		d.BytesLeft = 0
	case b <= 0x0F:
		d.BytesLeft = 1
	case b <= 0x17:
		d.BytesLeft = 2
	default:
		d.BytesLeft = 3
	}
	d.paramsTotal = d.BytesLeft
}

func (f *Frame) classifyG0G2(b byte, ext bool) {
	d := &f.State.DTVCC
	if ext && !dtvccG2Whitelist[b] {
		f.Detail.Set(DetailAbnormalCharacter)
	}
	d.BytesLeft, d.paramsTotal = 0, 0
}

func (f *Frame) classifyC1C3(b byte, ext bool) {
	d := &f.State.DTVCC
	if !ext {
		n := c1CodeLength[b-0x80] - 1
		d.BytesLeft, d.paramsTotal = n, n
		return
	}

	switch {
	case b == 0x80:
		f.Detail.Set(DetailAbnormalControlCode)
		d.BytesLeft, d.paramsTotal = 0, 0
	case b >= 0x81 && b <= 0x87:
		d.BytesLeft, d.paramsTotal = 4, 4
	case b >= 0x88 && b <= 0x8F:
		d.BytesLeft, d.paramsTotal = 5, 5
	default: // 0x90..0x9F: variable-length, length read from the next byte
		d.InVariableLengthHeader = true
		d.BytesLeft, d.paramsTotal = 1, 1
	}
}

func (f *Frame) classifyG1G3(b byte, ext bool) {
	d := &f.State.DTVCC
	if ext && b != 0xA0 {
		f.Detail.Set(DetailAbnormalCharacter)
	}
	d.BytesLeft, d.paramsTotal = 0, 0
}

func (f *Frame) consumeDTVCCParam(b byte) {
	d := &f.State.DTVCC

	if d.InVariableLengthHeader {
		d.InVariableLengthHeader = false
		d.BytesLeft = int(b & 0x1F)
		return
	}

	if !d.activeOpcodeExt && d.Code >= 0x98 && d.Code <= 0x9F {
		switch d.paramsTotal - d.BytesLeft {
		case 3:
			anchor := int(b >> 4)
			rows := int(b&0x0F) + 1
			if anchor > 8 {
				f.Detail.Set(DetailAbnormalWindowPosition)
			}
			if rows > 12 {
				f.Detail.Set(DetailAbnormalWindowSize)
			}
		case 4:
			cols := int(b&0x3F) + 1
			if cols > 42 {
				f.Detail.Set(DetailAbnormalWindowSize)
			}
		}
	}

	d.BytesLeft--
}
