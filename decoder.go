package rotary

// Decoder is the quadrature decoding state machine. It consumes one
// 2-bit pin sample per tick and reports a direction when a full (or
// half, depending on the table) step has been traversed in order.
//
// The machine is pure: Process performs a single table lookup, mutates
// only the internal state, and never blocks. Noise and contact bounce
// are not errors; illegal sample jumps simply walk the state back toward
// neutral, so no event is ever emitted for an incomplete sequence.
type Decoder struct {
	table StepTable
	state uint8
}

// NewDecoder returns a decoder in the neutral state using the table for
// the given mode. The mode is fixed for the decoder's lifetime.
func NewDecoder(mode StepMode) *Decoder {
	return &Decoder{table: tableFor(mode)}
}

// Process advances the state machine with one freshly taken pin sample
// (bit 0 = line A, bit 1 = line B; higher bits are ignored) and returns
// the direction of the step completed by this sample, if any.
//
// Both lines must be sampled at effectively the same instant; sampling
// them at different times manufactures transitions that never happened
// on the shaft.
func (d *Decoder) Process(sample uint8) Direction {
	d.state = d.table.Next(d.state, sample)
	return Direction(d.state & dirMask)
}

// Reset returns the decoder to the neutral state, discarding any
// partially traversed step.
func (d *Decoder) Reset() {
	d.state = rStart
}
