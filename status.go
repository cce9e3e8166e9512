package caption

// Status is the result of decoding a single caption-data word.
//
// Adapted from the teacher's inline comments ("//LIBCAPTION_OK",
// "//LIBCAPTION_READY" left over every return in
// _examples/szatmary-gocaption/caption.go) and from
// _examples/original_source/caption/caption.h's libcaption_status_t /
// libcaption_status_update.
type Status int

const (
	// StatusError means the word was rejected outright (bad parity, a
	// structurally invalid XDS packet). The frame's visible state is
	// unchanged by that word.
	StatusError Status = iota
	// StatusOK means the word was absorbed into frame state but produced
	// nothing new to display.
	StatusOK
	// StatusReady means the front buffer now reflects a newly displayable
	// caption. The next non-padding word clears this back to StatusOK.
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusError:
		return "Error"
	case StatusOK:
		return "Ok"
	case StatusReady:
		return "Ready"
	default:
		return "Unknown"
	}
}

// updateStatus folds a newly computed status into a previously accumulated
// one for a single word, mirroring libcaption_status_update: an error is
// sticky, and once ready always wins over ok.
func updateStatus(old, next Status) Status {
	if old == StatusError || next == StatusError {
		return StatusError
	}
	if old == StatusReady {
		return StatusReady
	}
	return next
}

// DetailType is a single anomaly bit, one per row of caption_frame_status_detail_type
// in _examples/original_source/caption/caption.h.
type DetailType uint32

const (
	DetailOffScreen DetailType = 1 << iota
	DetailDuplicateControl
	DetailUnknownCommand
	DetailInvalidCharacter
	DetailParityError
	DetailAbnormalPacket
	DetailUnknownTextAttribute
	DetailInvalidExtCharacter
	DetailRollupOOSError
	DetailRollupMissingError
	DetailRollupError
	DetailPoponOOSError
	DetailPoponMissingError
	DetailPoponError

	DetailXDSInvalidCharacters
	DetailXDSChecksumError
	DetailXDSInvalidPktStructure

	DetailSequenceDiscontinuity
	DetailAbnormalServiceBlock
	DetailAbnormalControlCode
	DetailAbnormalWindowPosition
	DetailAbnormalWindowSize
	DetailAbnormalCharacter
	DetailDTVCCPackingMismatch
)

// StatusDetail is the sticky anomaly bitset plus counters shared across the
// 608 decoder, both sequence validators, the 708 parser, and the XDS parser.
// One instance is threaded by reference through every subcomponent; there is
// no package-level global state (caption.h's shared caption_frame_status_detail_t).
type StatusDetail struct {
	Types           DetailType
	NumServices708  int
	PacketErrors    int
	PacketLoss      int
	HasCEA608       bool
	HasCEA708       bool
}

// Init zeroes only the fields the original status_detail_init zeroes
// (types and packetErrors) — see SPEC_FULL.md §5: PacketLoss and the
// hasCEA608/hasCEA708/NumServices708 fields are owned by the components
// that set them and are not reset here.
func (d *StatusDetail) Init() {
	d.Types = 0
	d.PacketErrors = 0
}

// Is reports whether t is set.
func (d *StatusDetail) Is(t DetailType) bool { return d.Types&t != 0 }

// Set raises anomaly bit t.
func (d *StatusDetail) Set(t DetailType) { d.Types |= t }
