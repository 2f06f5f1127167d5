package rotary

// Direction is the outcome of feeding one pin sample to the decoder.
// The values are disjoint bit flags living above the 4-bit state field,
// so a table entry can carry both the next state and an emitted event.
type Direction uint8

const (
	// DirNone means no complete step yet.
	DirNone Direction = 0x00
	// DirCW is a completed clockwise step.
	DirCW Direction = 0x10
	// DirCCW is a completed counter-clockwise step.
	DirCCW Direction = 0x20
)

const (
	dirMask    = 0x30
	stateMask  = 0x0f
	sampleMask = 0x03
)

func (d Direction) String() string {
	switch d {
	case DirCW:
		return "clockwise"
	case DirCCW:
		return "counter-clockwise"
	case DirNone:
		return "none"
	default:
		return "invalid"
	}
}

// StepMode selects the decoder resolution: one event per detent, or one
// event at each of the two settled positions (00 and 11).
type StepMode int

const (
	FullStep StepMode = iota
	HalfStep
)

func (m StepMode) String() string {
	if m == HalfStep {
		return "half-step"
	}
	return "full-step"
}

// StepTable maps (current state, 2-bit pin sample) to the next state.
// The returned state may carry DirCW or DirCCW in its high bits when the
// sample completed a step. Both built-in tables are total: every state
// has a defined successor for all four samples, and any out-of-sequence
// sample routes back toward the neutral state without emitting anything.
// That routing is what makes the decoder immune to contact bounce.
type StepTable interface {
	Next(state, sample uint8) uint8
}

// stepTable is a row-per-state table; columns are the pin samples
// 00, 01, 10, 11 (bit 0 = line A, bit 1 = line B).
type stepTable [][4]uint8

func (t stepTable) Next(state, sample uint8) uint8 {
	row := state & stateMask
	if int(row) >= len(t) {
		row = rStart
	}
	return t[row][sample&sampleMask]
}

// Full-step states. rStart is the 00 detent.
const (
	rStart    = 0x0
	rCWFinal  = 0x1
	rCWBegin  = 0x2
	rCWNext   = 0x3
	rCCWBegin = 0x4
	rCCWFinal = 0x5
	rCCWNext  = 0x6
)

// fullStepTable follows the sequence 00 > 10 > 11 > 01 > 00 and emits a
// direction only when the sequence closes back at 00.
var fullStepTable = stepTable{
	// rStart (00)
	{rStart, rCCWBegin, rCWBegin, rStart},
	// rCWFinal
	{rStart | uint8(DirCW), rCWFinal, rStart, rCWNext},
	// rCWBegin
	{rStart, rStart, rCWBegin, rCWNext},
	// rCWNext
	{rStart, rCWFinal, rCWBegin, rCWNext},
	// rCCWBegin
	{rStart, rCCWBegin, rStart, rCCWNext},
	// rCCWFinal
	{rStart | uint8(DirCCW), rStart, rCCWFinal, rCCWNext},
	// rCCWNext
	{rStart, rCCWBegin, rCCWFinal, rCCWNext},
}

// Half-step states. hStart is the 00 position, hStartM the 11 position.
const (
	hStart     = 0x0
	hCCWBegin  = 0x1
	hCWBegin   = 0x2
	hStartM    = 0x3
	hCWBeginM  = 0x4
	hCCWBeginM = 0x5
)

// halfStepTable emits a direction at both settled positions (00 and 11),
// doubling the event rate for the same physical motion.
var halfStepTable = stepTable{
	// hStart (00)
	{hStart, hCCWBegin, hCWBegin, hStartM},
	// hCCWBegin
	{hStart, hCCWBegin, hStart, hStartM | uint8(DirCCW)},
	// hCWBegin
	{hStart, hStart, hCWBegin, hStartM | uint8(DirCW)},
	// hStartM (11)
	{hStart, hCWBeginM, hCCWBeginM, hStartM},
	// hCWBeginM
	{hStart | uint8(DirCW), hCWBeginM, hStartM, hStartM},
	// hCCWBeginM
	{hStart | uint8(DirCCW), hStartM, hCCWBeginM, hStartM},
}

func tableFor(mode StepMode) StepTable {
	if mode == HalfStep {
		return halfStepTable
	}
	return fullStepTable
}
