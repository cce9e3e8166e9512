package caption

// PopOnValidator is the pop-on sequence conformance checker from spec.md
// §4.3, grounded on popon_state_machine / init_psm / update_psm in
// _examples/original_source/caption/caption.h and src/caption.c.
//
// Grammar: RCL -> (ENM|PAC) -> (PAC|TOFF|EDM)* -> EDM -> EOC -> (RCL ...).
type PopOnValidator struct {
	cur, next popOnBit

	rcl, enm, pac, toff, edm, eoc int

	oosError, missingError bool
}

type popOnBit uint8

const (
	poBitRCL popOnBit = 1 << iota
	poBitENM
	poBitPAC
	poBitTOFF
	poBitEDM
	poBitEOC
)

// Reset clears the validator to its initial idle state.
func (v *PopOnValidator) Reset() { *v = PopOnValidator{} }

func (v *PopOnValidator) emit(detail *StatusDetail) {
	if v.oosError {
		detail.Set(DetailPoponOOSError)
	}
	if v.missingError {
		detail.Set(DetailPoponMissingError)
	}
	if v.oosError || v.missingError {
		detail.Set(DetailPoponError)
	}
}

// Update feeds one command into the validator. cmd is CmdResumeCaptionLoading,
// the CmdTabOffset0 sentinel for "a preamble just arrived", or one of
// CmdEraseNonDisplayedMemory, CmdTabOffset1/2/3, CmdEraseDisplayMemory,
// CmdEndOfCaption. Anything else is outside this grammar and ignored.
//
// update_psm wraps its entire switch body in "if (psm->rcl)": every
// transition below except CmdResumeCaptionLoading itself is a no-op on a
// stream that never opened pop-on mode with a resume_caption_loading (e.g.
// a paint-on stream that happens to also send erase_display_memory /
// end_of_caption, both legal per spec.md §4.1.1 with no mode restriction).
func (v *PopOnValidator) Update(cmd ControlCommand, detail *StatusDetail) {
	switch cmd {
	case CmdResumeCaptionLoading:
		if v.rcl != 0 && v.next&poBitRCL == 0 {
			v.oosError = true
			v.missingError = true
			v.emit(detail)
		}
		v.Reset()
		v.cur, v.next = poBitRCL, poBitENM|poBitPAC
		v.rcl++

	case CmdTabOffset0: // preamble sentinel
		if v.rcl != 0 {
			if v.next&poBitPAC == 0 {
				v.oosError = true
			}
			v.cur, v.next = poBitPAC, poBitPAC|poBitTOFF|poBitEDM
			v.pac++
		}

	case CmdEraseNonDisplayedMemory:
		if v.rcl != 0 {
			// No OOS check on this transition — preserved verbatim per
			// spec.md §9's Open Question.
			v.cur, v.next = poBitENM, poBitPAC
			v.enm++
		}

	case CmdTabOffset1, CmdTabOffset2, CmdTabOffset3:
		if v.rcl != 0 {
			// No OOS check on this transition either — same Open Question.
			v.cur, v.next = poBitTOFF, poBitPAC|poBitEDM
			v.toff++
		}

	case CmdEraseDisplayMemory:
		if v.rcl != 0 {
			if v.next&poBitEDM == 0 {
				v.oosError = true
			}
			v.cur, v.next = poBitEDM, poBitEOC
			v.edm++
		}

	case CmdEndOfCaption:
		if v.rcl != 0 {
			if v.next&poBitEOC == 0 {
				v.oosError = true
			}
			v.cur, v.next = poBitEOC, poBitRCL
			v.eoc++
			if v.pac == 0 || v.edm == 0 {
				v.missingError = true
			}
			v.emit(detail)
			v.Reset()
		}
	}
}
