package caption

// Frame reconstructs the 15x32 viewer-visible grid from a stream of 16-bit
// EIA-608 caption-data words. Grounded on caption_frame_t / caption_frame_decode
// in _examples/original_source/src/caption.c and caption/caption.h, and on
// the overall decode loop shape of Decode() in
// _examples/szatmary-gocaption/eia608.go — the teacher mutates frame state
// directly inline with opcode classification; this file keeps that same
// single-entrypoint shape but separates ingress checks (here), control
// effects (control.go, rollup.go), text effects (text.go), and preamble/
// mid-row effects (preamble.go) into their own files, matching the original
// C's own function-per-concern split (caption_frame_decode_control /
// _text / _preamble / _midrowchange).

// ChannelType identifies which of the four CEA-608/708 word channels a
// caption-data word was read from.
type ChannelType int

const (
	NtscField1 ChannelType = iota
	NtscField2
	DtvccHeader
	DtvccData
)

// writeTarget is the tri-state write-buffer selector from spec.md §9: the
// original stores a raw pointer into front or back; this is that pointer's
// Go equivalent.
type writeTarget int

const (
	writeNone writeTarget = iota
	writeFront
	writeBack
)

var rollupLineTable = [4]int{0, 2, 3, 4}

// FrameState is the cursor/attribute state carried between words, mirroring
// caption_frame_state_t.
type FrameState struct {
	Underline bool
	Style     Style
	Rup       int // 0..3, encodes roll-up line count via rollupLineTable
	Row       int // -1..15
	Col       int // 0..31
	CCData    uint16
	DTVCC     DTVCCPacketState
}

// Frame is the full decode target for one caption channel: front (what a
// viewer sees), back (pop-on staging buffer), and the shared anomaly detail
// record. One Frame is owned by exactly one caller-held channel; no state is
// shared across Frame instances.
type Frame struct {
	Timestamp float64
	XDS       XDSState
	State     FrameState
	Front     Buffer
	Back      Buffer
	Status    Status
	Detail    StatusDetail

	write writeTarget
}

// Init zero-initializes the frame, per spec.md §3's lifecycle: buffers
// cleared, timestamp = -1, row = 14 (the Open Question preserved verbatim
// from caption_frame_state_clear), write = none.
func (f *Frame) Init() {
	*f = Frame{}
	f.Timestamp = -1
	f.State.Row = Rows - 1
	f.Detail.Init()
	f.XDS.init()
}

// writeBuffer returns the buffer currently selected for text writes, or nil
// if no mode has been selected yet.
func (f *Frame) writeBuffer() *Buffer {
	switch f.write {
	case writeFront:
		return &f.Front
	case writeBack:
		return &f.Back
	default:
		return nil
	}
}

// PopOn reports whether the frame is in pop-on mode (writing to back).
func (f *Frame) PopOn() bool { return f.write == writeBack }

// PaintOn reports whether the frame is currently writing to front. Per
// spec.md §3 this is true both for paint-on proper (rup == 0) and roll-up
// (rup > 0) — both write text directly to the visible buffer.
func (f *Frame) PaintOn() bool { return f.write == writeFront }

// RollUpLines returns the active roll-up line count (0 if not in roll-up
// mode).
func (f *Frame) RollUpLines() int { return rollupLineTable[f.State.Rup] }

// Decode feeds one 16-bit caption-data word into the frame, per spec.md
// §4.1's entrypoint. rollup/popOn may be nil if the caller isn't tracking
// sequence conformance. processXDS gates XDS sub-dispatch on NtscField2
// words per spec.md §5's ordering guarantee ("field-1 callers must not"
// pass true); it has no effect on NtscField1.
func (f *Frame) Decode(ccData uint16, timestamp float64, rollup *RollupValidator, popOn *PopOnValidator, ch ChannelType, processXDS bool) Status {
	if ch == DtvccHeader || ch == DtvccData {
		return f.DecodeDTVCC(ccData, timestamp, ch)
	}

	if !parityVerify(ccData) {
		f.Detail.Set(DetailParityError)
		f.Status = StatusError
		return f.Status
	}
	f.Detail.HasCEA608 = true

	word := ccData & 0x7F7F
	if word == 0 {
		f.Status = StatusOK
		return f.Status
	}

	if f.Timestamp < 0 || f.Timestamp == timestamp || f.Status == StatusReady {
		f.Timestamp = timestamp
		f.Status = StatusOK
	}

	if (isControl(word) || isSpecialNA(word)) && word == f.State.CCData {
		f.Detail.Set(DetailDuplicateControl)
		f.Status = StatusOK
		return f.Status
	}
	f.State.CCData = word

	switch {
	case processXDS && ch == NtscField2 && (f.XDS.state != xdsStateIdle || isXDS(word)):
		f.Status = updateStatus(f.Status, f.decodeXDS(word))
	case isControl(word):
		cmd, _ := parseControl(word)
		f.feedValidators(cmd, rollup, popOn)
		f.Status = updateStatus(f.Status, f.decodeControl(cmd))
	case isBasicNA(word) || isSpecialNA(word) || isWestEU(word):
		if f.write == writeNone {
			f.Status = updateStatus(f.Status, StatusOK)
		} else {
			f.Status = updateStatus(f.Status, f.decodeText(word))
		}
	case isPreamble(word):
		f.feedValidators(CmdTabOffset0, rollup, popOn)
		f.Status = updateStatus(f.Status, f.decodePreamble(word))
	case isMidRowChange(word):
		f.Status = updateStatus(f.Status, f.decodeMidRowChange(word))
	}
	return f.Status
}

// feedValidators drives whichever sequence validator applies to the
// current mode: roll-up while rup > 0, pop-on otherwise. Every is_control
// or is_preamble dispatch reaches here per spec.md §4.1.
func (f *Frame) feedValidators(cmd ControlCommand, rollup *RollupValidator, popOn *PopOnValidator) {
	if f.State.Rup > 0 {
		if rollup != nil {
			rollup.Update(cmd, &f.Detail)
		}
		return
	}
	if popOn != nil {
		popOn.Update(cmd, &f.Detail)
	}
}
