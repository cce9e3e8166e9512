package caption

// decodeControl applies the effect of one control command, per spec.md
// §4.1.1's table and caption_frame_decode_control in
// _examples/original_source/src/caption.c. carriage_return, backspace, and
// delete_to_end_of_row are implemented in rollup.go since they all mutate
// the write buffer's rows.
func (f *Frame) decodeControl(cmd ControlCommand) Status {
	switch cmd {
	case CmdResumeDirectCaptioning:
		f.State.Rup = 0
		f.write = writeFront
		return StatusOK

	case CmdEraseDisplayMemory:
		f.Front.Clear()
		return StatusReady

	case CmdRollUp2:
		f.State.Rup = 1
		f.write = writeFront
		return StatusOK
	case CmdRollUp3:
		f.State.Rup = 2
		f.write = writeFront
		return StatusOK
	case CmdRollUp4:
		f.State.Rup = 3
		f.write = writeFront
		return StatusOK

	case CmdCarriageReturn:
		return f.carriageReturn()

	case CmdBackspace:
		return f.backspace()

	case CmdDeleteToEndOfRow:
		return f.deleteToEndOfRow()

	case CmdResumeCaptionLoading:
		f.State.Rup = 0
		f.write = writeBack
		return StatusOK

	case CmdEraseNonDisplayedMemory:
		f.Back.Clear()
		return StatusOK

	case CmdEndOfCaption:
		f.Front.copyFrom(&f.Back)
		f.Back.Clear()
		return StatusReady

	case CmdTabOffset0, CmdTabOffset1, CmdTabOffset2, CmdTabOffset3:
		f.State.Col += tabOffset(cmd)
		return StatusOK

	case CmdAlarmOn, CmdAlarmOff, CmdTextRestart, CmdTextResumeTextDisplay:
		return StatusOK

	default:
		f.Detail.Set(DetailUnknownCommand)
		return StatusOK
	}
}
