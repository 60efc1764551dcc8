// Package rijndael implements the Rijndael block cipher (AES) for
// 128-bit blocks with 128-, 192-, or 256-bit keys.
//
// A Cipher expands its key schedule once at construction and is
// immutable afterwards; each Encrypt or Decrypt call processes exactly
// one 16-byte block. Chaining modes, padding, and key management are
// out of scope. The optional Trace hook exposes every intermediate
// round value for diagnostics without touching the transform logic.
package rijndael

import "strconv"

// BlockSize is the cipher block size in bytes.
const BlockSize = 16

// KeySizeError reports a cipher key whose length is not 16, 24, or
// 32 bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "rijndael: invalid key size " + strconv.Itoa(int(k))
}

// BlockSizeError reports an input block whose length is not BlockSize.
type BlockSizeError int

func (b BlockSizeError) Error() string {
	return "rijndael: invalid block size " + strconv.Itoa(int(b))
}

// Cipher holds one expanded round-key schedule. Distinct instances
// share nothing and may be used concurrently; a single instance is safe
// for concurrent use as long as Trace stays nil.
type Cipher struct {
	schedule []uint32
	rounds   int

	// Trace, when non-nil, receives one TraceEvent per intermediate
	// cipher step in the order documented on TraceEvent.
	Trace TraceFunc
}

// NewCipher expands key into a round-key schedule and returns a cipher
// ready for use. The key must be 16, 24, or 32 bytes, selecting 10, 12,
// or 14 rounds. Invalid lengths fail here, before any schedule word is
// produced.
func NewCipher(key []byte) (*Cipher, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, KeySizeError(len(key))
	}

	return &Cipher{
		schedule: expandKey(key),
		rounds:   len(key)/4 + 6,
	}, nil
}

// Rounds returns the round count selected by the key length.
func (c *Cipher) Rounds() int {
	return c.rounds
}

// Encrypt transforms one 16-byte plaintext block into its ciphertext.
// The round structure is fixed: an initial round-key addition, rounds-1
// full rounds, and a final round without the column mix.
func (c *Cipher) Encrypt(block []byte) ([]byte, error) {
	if len(block) != BlockSize {
		return nil, BlockSizeError(len(block))
	}

	var s state
	s.load(block)

	c.emitState(0, StepInput, &s)
	s.addRoundKey(c.schedule[0:4])
	c.emitWords(0, c.schedule[0:4])

	for round := 1; round < c.rounds; round++ {
		c.emitState(round, StepStart, &s)
		s.subBytes()
		c.emitState(round, StepSubBytes, &s)
		s.shiftRows()
		c.emitState(round, StepShiftRows, &s)
		s.mixColumns()
		c.emitState(round, StepMixColumns, &s)
		s.addRoundKey(c.schedule[4*round : 4*round+4])
		c.emitWords(round, c.schedule[4*round:4*round+4])
	}

	c.emitState(c.rounds, StepStart, &s)
	s.subBytes()
	c.emitState(c.rounds, StepSubBytes, &s)
	s.shiftRows()
	c.emitState(c.rounds, StepShiftRows, &s)
	s.addRoundKey(c.schedule[4*c.rounds : 4*c.rounds+4])
	c.emitWords(c.rounds, c.schedule[4*c.rounds:4*c.rounds+4])
	c.emitState(c.rounds, StepOutput, &s)

	out := s.bytes()
	return out[:], nil
}

// Decrypt transforms one 16-byte ciphertext block back into plaintext,
// consuming the schedule from the last round key down.
func (c *Cipher) Decrypt(block []byte) ([]byte, error) {
	if len(block) != BlockSize {
		return nil, BlockSizeError(len(block))
	}

	var s state
	s.load(block)

	last := 4 * c.rounds
	c.emitState(0, StepInput, &s)
	s.addRoundKey(c.schedule[last : last+4])
	c.emitWords(0, c.schedule[last:last+4])

	for round := 1; round < c.rounds; round++ {
		c.emitState(round, StepStart, &s)
		s.invShiftRows()
		c.emitState(round, StepShiftRows, &s)
		s.invSubBytes()
		c.emitState(round, StepSubBytes, &s)
		words := c.schedule[last-4*round : last-4*round+4]
		s.addRoundKey(words)
		c.emitWords(round, words)
		c.emitState(round, StepAddRoundKey, &s)
		s.invMixColumns()
	}

	c.emitState(c.rounds, StepStart, &s)
	s.invShiftRows()
	c.emitState(c.rounds, StepShiftRows, &s)
	s.invSubBytes()
	c.emitState(c.rounds, StepSubBytes, &s)
	s.addRoundKey(c.schedule[0:4])
	c.emitWords(c.rounds, c.schedule[0:4])
	c.emitState(c.rounds, StepOutput, &s)

	out := s.bytes()
	return out[:], nil
}
