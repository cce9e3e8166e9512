package caption

// The EIA-608 opcode oracle: pure classification and parsing functions over
// a 16-bit caption-data word. Spec.md calls this out as an external
// collaborator with a named interface only (is_basicna, is_specialna,
// is_westeu, is_control, is_preamble, is_midrowchange, is_padding, is_xds,
// parity verify, to_utf8, parse_preamble, parse_midrowchange, parse_control);
// no header for it shipped with original_source (only caption.c/xds.c were
// kept), so this file is the concrete implementation, grounded directly on
// the bit arithmetic in _examples/szatmary-gocaption/caption.go and
// eia608.go (isControl, isPreamble, isMidRowChange, isBasicNA, isSpecialNA,
// isWesternEu, parityTable, charMap, rowMap, parseControl/parsePreamble/
// parseMidRowChange), which is itself a direct port of the same
// ssimwave/libcaption this spec distills.

// parityTable maps a 7-bit value to its odd-parity byte (bit 7 is set when
// the low seven bits hold an even number of ones). Verbatim from the
// teacher (eia608.go / caption.go share this table exactly).
var parityTable = func() [128]byte {
	var table [128]byte
	bx := func(b, x int) byte { return byte(b << x & 0x80) }
	for i := 0; i < len(table); i++ {
		table[i] = byte(i&0x7F) | (0x80 ^ bx(i, 1) ^ bx(i, 2) ^ bx(i, 3) ^ bx(i, 4) ^ bx(i, 5) ^ bx(i, 6) ^ bx(i, 7))
	}
	return table
}()

// parityByte returns b with its parity bit corrected.
func parityByte(b byte) byte { return parityTable[0x7F&b] }

// parityWord returns ccData with both bytes' parity bits corrected.
func parityWord(ccData uint16) uint16 {
	hi, lo := parityTable[0x7F&byte(ccData>>8)], parityTable[0x7F&byte(ccData)]
	return uint16(hi)<<8 | uint16(lo)
}

// parityVerify reports whether both bytes of ccData already carry correct
// EIA-608 odd parity, per spec.md §4 ingress check 1.
func parityVerify(ccData uint16) bool { return parityWord(ccData) == ccData }

// charMap translates a basic-NA/special-NA/western-European index (0..175)
// into its rune, verbatim from the teacher's charMap table (itself the
// EIA-608 Table 2-5 through 2-9 character sets: Basic NA, Special NA,
// Extended Spanish/Misc/French, Portuguese/German/Danish).
var charMap = [...]rune{
	// Basic NA (0x20..0x7F, with EIA-608's accented letters and symbols in
	// place of several ASCII positions) — 96 entries.
	' ', '!', '"', '#', '$', '%', '&', '’', '(', ')', 'á', '+', ',', '-', '.', '/', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', ':', ';', '<', '=', '>', '?', '@',
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', '[', 'é', ']', 'í', 'ó', 'ú',
	'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', 'ç', '÷', 'Ñ', 'ñ', '█',
	// Special NA — 16 entries.
	'®', '°', '½', '¿', '™', '¢', '£', '♪', 'à', ' ', 'è', 'â', 'ê', 'î', 'ô', 'û',
	// Extended Spanish/Misc — 16 entries.
	'Á', 'É', 'Ó', 'Ú', 'Ü', 'ü', '‘', '¡', '*', '\'', '—', '©', '℠', '•', '“', '”',
	// Extended French — 16 entries.
	'À', 'Â', 'Ç', 'È', 'Ê', 'Ë', 'ë', 'Î', 'Ï', 'ï', 'Ô', 'Ù', 'ù', 'Û', '«', '»',
	// Portuguese — 16 entries.
	'Ã', 'ã', 'Í', 'Ì', 'ì', 'Ò', 'ò', 'Õ', 'õ', '{', '}', '\\', '^', '_', '|', '~',
	// German/Danish — 16 entries.
	'Ä', 'ä', 'Ö', 'ö', 'ß', '¥', '¤', '¦', 'Å', 'å', 'Ø', 'ø', '┌', '┐', '└', '┘',
}

// rowMap maps a 4-bit preamble row-group code (packed as 3 high bits plus 1
// low bit, see parsePreamble) to an absolute 0..14 display row. Verbatim
// from the teacher; index 1 deliberately yields Rows (15, out of the valid
// 0..14 range) — an unused PAC row-group code that spec.md's "row ∈ -1..15"
// range exists to accommodate, since an off-screen row silently discards
// writes (DetailOffScreen) rather than crashing.
var rowMap = [...]int{4, Rows, 14, 13, 12, 11, 3, 2, 1, 0, 10, 9, 8, 7, 6, 5}

// isControl reports whether ccData is a control-code word (the
// eia608_control_* / tab_offset_* range).
func isControl(ccData uint16) bool {
	return 0x1420 == (0x7670&ccData) || 0x1720 == (0x7770&ccData)
}

// isPreamble reports whether ccData is a Preamble Address Code.
func isPreamble(ccData uint16) bool { return 0x1040 == (0x7040 & ccData) }

// isMidRowChange reports whether ccData is a mid-row style-change code.
func isMidRowChange(ccData uint16) bool { return 0x1120 == (0x7770 & ccData) }

// isBasicNA reports whether ccData carries one or two Basic North American
// characters in its high byte.
func isBasicNA(ccData uint16) bool { return 0x0000 != (0x6000 & ccData) }

// isSpecialNA reports whether ccData is a Special North American character.
func isSpecialNA(ccData uint16) bool { return 0x1130 == (0x7770 & ccData) }

// isWestEU reports whether ccData is an Extended Western European character
// (Spanish/Misc/French/Portuguese/German/Danish block, "replace previous").
func isWestEU(ccData uint16) bool { return 0x1220 == (0x7660 & ccData) }

// isXDS reports whether ccData's high byte falls in the XDS class/type
// control-code envelope (0x00..0x0F), per xds.c's control_code extraction
// `(cc & 0x0F00) >> 8`. It deliberately matches control_code==0 too, which
// is a structural error the XDS state machine itself flags.
func isXDS(ccData uint16) bool { return byte(ccData>>8) <= 0x0F }

// ControlCommand names a decoded EIA-608 control/tab-offset opcode.
type ControlCommand int

const (
	CmdUnknown ControlCommand = iota
	CmdResumeCaptionLoading
	CmdBackspace
	CmdAlarmOff
	CmdAlarmOn
	CmdDeleteToEndOfRow
	CmdRollUp2
	CmdRollUp3
	CmdRollUp4
	CmdResumeDirectCaptioning
	CmdTextRestart
	CmdTextResumeTextDisplay
	CmdEraseDisplayMemory
	CmdCarriageReturn
	CmdEraseNonDisplayedMemory
	CmdEndOfCaption
	CmdTabOffset0
	CmdTabOffset1
	CmdTabOffset2
	CmdTabOffset3
)

const (
	rawResumeCaptionLoading     = 0x1420
	rawBackspace                = 0x1421
	rawAlarmOff                 = 0x1422
	rawAlarmOn                  = 0x1423
	rawDeleteToEndOfRow         = 0x1424
	rawRollUp2                  = 0x1425
	rawRollUp3                  = 0x1426
	rawRollUp4                  = 0x1427
	rawResumeDirectCaptioning   = 0x1429
	rawTextRestart              = 0x142A
	rawTextResumeTextDisplay    = 0x142B
	rawEraseDisplayMemory       = 0x142C
	rawCarriageReturn           = 0x142D
	rawEraseNonDisplayedMemory  = 0x142E
	rawEndOfCaption             = 0x142F

	rawTabOffset0 = 0x1720
	rawTabOffset1 = 0x1721
	rawTabOffset2 = 0x1722
	rawTabOffset3 = 0x1723
)

// parseControl extracts the control command and channel (cc1/cc2) encoded
// in ccData. ccData must satisfy isControl(ccData).
func parseControl(ccData uint16) (cmd ControlCommand, channel int) {
	var raw uint16
	if 0 == 0x0200&ccData {
		channel = int((ccData&0x0800)>>10 | (ccData&0x0100)>>8)
		raw = 0x167F & ccData
	} else {
		channel = int((ccData & 0x0800) >> 11)
		raw = 0x177F & ccData
	}

	switch raw {
	case rawResumeCaptionLoading:
		return CmdResumeCaptionLoading, channel
	case rawBackspace:
		return CmdBackspace, channel
	case rawAlarmOff:
		return CmdAlarmOff, channel
	case rawAlarmOn:
		return CmdAlarmOn, channel
	case rawDeleteToEndOfRow:
		return CmdDeleteToEndOfRow, channel
	case rawRollUp2:
		return CmdRollUp2, channel
	case rawRollUp3:
		return CmdRollUp3, channel
	case rawRollUp4:
		return CmdRollUp4, channel
	case rawResumeDirectCaptioning:
		return CmdResumeDirectCaptioning, channel
	case rawTextRestart:
		return CmdTextRestart, channel
	case rawTextResumeTextDisplay:
		return CmdTextResumeTextDisplay, channel
	case rawEraseDisplayMemory:
		return CmdEraseDisplayMemory, channel
	case rawCarriageReturn:
		return CmdCarriageReturn, channel
	case rawEraseNonDisplayedMemory:
		return CmdEraseNonDisplayedMemory, channel
	case rawEndOfCaption:
		return CmdEndOfCaption, channel
	case rawTabOffset0:
		return CmdTabOffset0, channel
	case rawTabOffset1:
		return CmdTabOffset1, channel
	case rawTabOffset2:
		return CmdTabOffset2, channel
	case rawTabOffset3:
		return CmdTabOffset3, channel
	default:
		return CmdUnknown, channel
	}
}

// tabOffset returns the column delta for a CmdTabOffset* command (0..3),
// or 0 for anything else.
func tabOffset(cmd ControlCommand) int {
	switch cmd {
	case CmdTabOffset0:
		return 0
	case CmdTabOffset1:
		return 1
	case CmdTabOffset2:
		return 2
	case CmdTabOffset3:
		return 3
	default:
		return 0
	}
}

// parsePreamble decodes a Preamble Address Code into an absolute row, an
// initial column (nonzero only for an indent-style PAC), style, channel,
// and underline flag. ccData must satisfy isPreamble(ccData).
func parsePreamble(ccData uint16) (row, col int, style Style, channel int, underline bool) {
	row = rowMap[((0x0700&ccData)>>7)|((0x0020&ccData)>>5)]
	channel = int((ccData & 0x0800) >> 11)
	underline = 0x0001&ccData == 1

	if 0x0010&ccData == 0 {
		style = Style((0x000E & ccData) >> 1)
	} else {
		col = 4 * int((0x000E&ccData)>>1)
	}
	return row, col, style, channel, underline
}

// parseMidRowChange decodes a mid-row style-change code into its style,
// channel, and underline flag. ccData must satisfy isMidRowChange(ccData).
func parseMidRowChange(ccData uint16) (style Style, channel int, underline bool) {
	channel = int((ccData & 0x0800) >> 11)
	style = Style((0x000E & ccData) >> 1)
	underline = 0x0001&ccData == 1
	return style, channel, underline
}

// toUTF8 translates a text word into up to two characters and the channel
// it was sent on. It returns 0 characters when the word, despite matching
// isBasicNA/isSpecialNA/isWestEU, doesn't decode to any legal character
// (used by the decoder to tell INVALID_CHARACTER from INVALID_EXT_CHARACTER).
func toUTF8(ccData uint16) (char1, char2 string, channel int) {
	if isBasicNA(ccData) {
		channel = int((ccData & 0x0800) >> 11)
		c1 := charAt((ccData >> 8) - 0x20)
		rest := ccData & 0x00FF
		if rest >= 0x0020 && rest < 0x0080 {
			c2 := charAt(rest - 0x20)
			return c1, c2, channel
		}
		return c1, "", channel
	}

	masked := ccData & 0xF7FF
	channel = int((ccData & 0x0800) >> 11)
	if isSpecialNA(masked) {
		return charAt(masked - 0x1130 + 0x60), "", channel
	}
	if masked >= 0x1220 && masked < 0x1240 {
		return charAt(masked - 0x1220 + 0x70), "", channel
	}
	if masked >= 0x1320 && masked < 0x1340 {
		return charAt(masked - 0x1320 + 0x90), "", channel
	}
	return "", "", channel
}

// charAt returns the charMap entry at i as a UTF-8 string, or "" if i is
// out of range.
func charAt(i uint16) string {
	if int(i) >= len(charMap) {
		return ""
	}
	return string(charMap[i])
}
