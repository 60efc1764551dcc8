package rijndael

// state is the 4x4 byte grid the round transforms mutate in place.
// Input byte i occupies row i%4, column i/4; serialization reads the
// grid back out in the same column-major order.
type state [4][4]byte

func (s *state) load(block []byte) {
	for i, b := range block {
		s[i%4][i/4] = b
	}
}

func (s *state) bytes() [16]byte {
	var out [16]byte
	for i := range out {
		out[i] = s[i%4][i/4]
	}
	return out
}

// column packs column c, top to bottom, as a big-endian word.
func (s *state) column(c int) uint32 {
	return uint32(s[0][c])<<24 | uint32(s[1][c])<<16 | uint32(s[2][c])<<8 | uint32(s[3][c])
}

func (s *state) setColumn(c int, w uint32) {
	s[0][c] = byte(w >> 24)
	s[1][c] = byte(w >> 16)
	s[2][c] = byte(w >> 8)
	s[3][c] = byte(w)
}

func (s *state) subBytes() {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r][c] = sbox[s[r][c]]
		}
	}
}

func (s *state) invSubBytes() {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r][c] = invSbox[s[r][c]]
		}
	}
}

// shiftRows rotates row r left by r positions; row 0 stays put.
func (s *state) shiftRows() {
	s[1][0], s[1][1], s[1][2], s[1][3] = s[1][1], s[1][2], s[1][3], s[1][0]
	s[2][0], s[2][1], s[2][2], s[2][3] = s[2][2], s[2][3], s[2][0], s[2][1]
	s[3][0], s[3][1], s[3][2], s[3][3] = s[3][3], s[3][0], s[3][1], s[3][2]
}

// invShiftRows rotates row r right by r positions.
func (s *state) invShiftRows() {
	s[1][0], s[1][1], s[1][2], s[1][3] = s[1][3], s[1][0], s[1][1], s[1][2]
	s[2][0], s[2][1], s[2][2], s[2][3] = s[2][2], s[2][3], s[2][0], s[2][1]
	s[3][0], s[3][1], s[3][2], s[3][3] = s[3][1], s[3][2], s[3][3], s[3][0]
}

// mixColumns multiplies each column by the fixed matrix
// {02 03 01 01 / 01 02 03 01 / 01 01 02 03 / 03 01 01 02} over GF(2^8).
func (s *state) mixColumns() {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[0][c], s[1][c], s[2][c], s[3][c]
		s[0][c] = gfAdd(gfAdd(gfMultiply(a0, 0x02), gfMultiply(a1, 0x03)), gfAdd(a2, a3))
		s[1][c] = gfAdd(gfAdd(a0, gfMultiply(a1, 0x02)), gfAdd(gfMultiply(a2, 0x03), a3))
		s[2][c] = gfAdd(gfAdd(a0, a1), gfAdd(gfMultiply(a2, 0x02), gfMultiply(a3, 0x03)))
		s[3][c] = gfAdd(gfAdd(gfMultiply(a0, 0x03), a1), gfAdd(a2, gfMultiply(a3, 0x02)))
	}
}

// invMixColumns multiplies each column by the inverse matrix
// {0e 0b 0d 09 / 09 0e 0b 0d / 0d 09 0e 0b / 0b 0d 09 0e}.
func (s *state) invMixColumns() {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[0][c], s[1][c], s[2][c], s[3][c]
		s[0][c] = gfAdd(gfAdd(gfMultiply(a0, 0x0e), gfMultiply(a1, 0x0b)), gfAdd(gfMultiply(a2, 0x0d), gfMultiply(a3, 0x09)))
		s[1][c] = gfAdd(gfAdd(gfMultiply(a0, 0x09), gfMultiply(a1, 0x0e)), gfAdd(gfMultiply(a2, 0x0b), gfMultiply(a3, 0x0d)))
		s[2][c] = gfAdd(gfAdd(gfMultiply(a0, 0x0d), gfMultiply(a1, 0x09)), gfAdd(gfMultiply(a2, 0x0e), gfMultiply(a3, 0x0b)))
		s[3][c] = gfAdd(gfAdd(gfMultiply(a0, 0x0b), gfMultiply(a1, 0x0d)), gfAdd(gfMultiply(a2, 0x09), gfMultiply(a3, 0x0e)))
	}
}

// addRoundKey XORs the four state columns with four consecutive
// schedule words. Self-inverse.
func (s *state) addRoundKey(words []uint32) {
	for c := 0; c < 4; c++ {
		s.setColumn(c, s.column(c)^words[c])
	}
}
