package rijndael

// TraceFunc receives intermediate cipher values when installed as
// Cipher.Trace. The hook runs synchronously between round steps; the
// transforms themselves never depend on it.
type TraceFunc func(TraceEvent)

// TraceStep identifies which intermediate value a TraceEvent carries.
type TraceStep uint8

const (
	StepInput TraceStep = iota
	StepRoundKey
	StepStart
	StepSubBytes
	StepShiftRows
	StepMixColumns
	StepAddRoundKey
	StepOutput
)

func (t TraceStep) String() string {
	switch t {
	case StepInput:
		return "input"
	case StepRoundKey:
		return "round-key"
	case StepStart:
		return "start"
	case StepSubBytes:
		return "sub-bytes"
	case StepShiftRows:
		return "shift-rows"
	case StepMixColumns:
		return "mix-columns"
	case StepAddRoundKey:
		return "add-round-key"
	case StepOutput:
		return "output"
	}
	return "unknown"
}

// TraceEvent is one intermediate snapshot of a cipher run.
//
// Encrypt emits, in order: StepInput and StepRoundKey for round 0; then
// StepStart, StepSubBytes, StepShiftRows, StepMixColumns, StepRoundKey
// for each full round; then StepStart, StepSubBytes, StepShiftRows,
// StepRoundKey, StepOutput for the final round. Decrypt mirrors it with
// the inverse transforms, substitutes StepAddRoundKey for
// StepMixColumns in full rounds, and numbers rounds from the last round
// key down.
type TraceEvent struct {
	Round int
	Step  TraceStep

	// State is the column-major grid snapshot after the step ran.
	// Unset for StepRoundKey.
	State [16]byte

	// Words holds the four schedule words consumed by the round.
	// Set only for StepRoundKey.
	Words [4]uint32
}

func (c *Cipher) emitState(round int, step TraceStep, s *state) {
	if c.Trace == nil {
		return
	}
	c.Trace(TraceEvent{Round: round, Step: step, State: s.bytes()})
}

func (c *Cipher) emitWords(round int, words []uint32) {
	if c.Trace == nil {
		return
	}
	ev := TraceEvent{Round: round, Step: StepRoundKey}
	copy(ev.Words[:], words)
	c.Trace(ev)
}
