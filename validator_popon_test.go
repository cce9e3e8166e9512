package caption

import (
	"testing"

	assert "github.com/stretchr/testify/require"
)

func TestPopOnValidatorHappyPath(t *testing.T) {
	assert := assert.New(t)

	var v PopOnValidator
	var d StatusDetail

	v.Update(CmdResumeCaptionLoading, &d)
	v.Update(CmdTabOffset0, &d) // a PAC arrives
	v.Update(CmdEraseDisplayMemory, &d)
	v.Update(CmdEndOfCaption, &d)

	assert.False(d.Is(DetailPoponError))
}

func TestPopOnValidatorMissingPACBeforeEOC(t *testing.T) {
	assert := assert.New(t)

	var v PopOnValidator
	var d StatusDetail

	v.Update(CmdResumeCaptionLoading, &d)
	v.Update(CmdEraseDisplayMemory, &d)
	v.Update(CmdEndOfCaption, &d)

	assert.True(d.Is(DetailPoponMissingError))
	assert.True(d.Is(DetailPoponError))
}

func TestPopOnValidatorEOCBeforeEDMIsOutOfSequence(t *testing.T) {
	assert := assert.New(t)

	var v PopOnValidator
	var d StatusDetail

	v.Update(CmdResumeCaptionLoading, &d)
	v.Update(CmdTabOffset0, &d)
	v.Update(CmdEndOfCaption, &d) // EDM skipped

	assert.True(d.Is(DetailPoponOOSError))
}

func TestPopOnValidatorReopenWithoutClosing(t *testing.T) {
	assert := assert.New(t)

	var v PopOnValidator
	var d StatusDetail

	v.Update(CmdResumeCaptionLoading, &d)
	v.Update(CmdResumeCaptionLoading, &d)

	assert.True(d.Is(DetailPoponOOSError))
	assert.True(d.Is(DetailPoponMissingError))
}

// TestPopOnValidatorIgnoredWithoutPriorRCL covers the gate update_psm wraps
// its whole switch in: a pure paint-on stream that never sent
// resume_caption_loading but legally sends erase_display_memory/
// end_of_caption must leave the validator untouched, not flag spurious
// out-of-sequence/missing errors.
func TestPopOnValidatorIgnoredWithoutPriorRCL(t *testing.T) {
	assert := assert.New(t)

	var v PopOnValidator
	var d StatusDetail

	v.Update(CmdEraseDisplayMemory, &d)
	v.Update(CmdEndOfCaption, &d)

	assert.False(d.Is(DetailPoponError))
	assert.False(d.Is(DetailPoponOOSError))
	assert.False(d.Is(DetailPoponMissingError))
	assert.Equal(PopOnValidator{}, v)
}

// TestPopOnValidatorENMAndTOFFStillOmitOOSCheck confirms that once gated
// behind "if v.rcl != 0", CmdEraseNonDisplayedMemory and CmdTabOffset1/2/3
// still don't raise their own OOS error even when fed out of their normal
// slot, matching caption.c's update_psm having no oos_error line for
// either case.
func TestPopOnValidatorENMAndTOFFStillOmitOOSCheck(t *testing.T) {
	assert := assert.New(t)

	var v PopOnValidator
	var d StatusDetail

	v.Update(CmdResumeCaptionLoading, &d)
	// ENM arriving where a PAC/TOFF/EDM was expected (post-PAC state).
	v.Update(CmdTabOffset0, &d)
	v.Update(CmdEraseNonDisplayedMemory, &d)
	assert.False(d.Is(DetailPoponOOSError))

	v.Reset()
	v.Update(CmdResumeCaptionLoading, &d)
	// TabOffset arriving right after RCL, before any PAC/ENM.
	v.Update(CmdTabOffset1, &d)
	assert.False(d.Is(DetailPoponOOSError))
}
