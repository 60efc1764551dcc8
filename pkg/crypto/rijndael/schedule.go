package rijndael

import "encoding/binary"

// rcon holds the key-expansion round constants, rcon[i] = x^(i+1) in
// GF(2^8) packed into the high byte of a word. Fourteen entries cover
// every supported key size.
var rcon = [14]uint32{
	0x01000000, 0x02000000, 0x04000000, 0x08000000,
	0x10000000, 0x20000000, 0x40000000, 0x80000000,
	0x1b000000, 0x36000000, 0x6c000000, 0xd8000000,
	0xab000000, 0x4d000000,
}

// rotWord cyclically rotates the bytes of a word left by one position.
func rotWord(w uint32) uint32 {
	return w<<8 | w>>24
}

// subWord substitutes each byte of a word through the forward S-box.
func subWord(w uint32) uint32 {
	return uint32(sbox[w>>24])<<24 |
		uint32(sbox[w>>16&0xff])<<16 |
		uint32(sbox[w>>8&0xff])<<8 |
		uint32(sbox[w&0xff])
}

// expandKey derives the full round-key schedule from a cipher key of
// valid length. The first nk words are the key itself packed big-endian;
// each later word combines the word nk positions back with the previous
// word, which is rotated and substituted on nk boundaries (plus an
// extra substitution mid-stride for 256-bit keys).
func expandKey(key []byte) []uint32 {
	nk := len(key) / 4
	nr := nk + 6
	schedule := make([]uint32, 4*(nr+1))

	for i := 0; i < nk; i++ {
		schedule[i] = binary.BigEndian.Uint32(key[4*i:])
	}

	for i := nk; i < len(schedule); i++ {
		temp := schedule[i-1]
		switch {
		case i%nk == 0:
			temp = subWord(rotWord(temp)) ^ rcon[i/nk-1]
		case nk > 6 && i%nk == 4:
			temp = subWord(temp)
		}
		schedule[i] = schedule[i-nk] ^ temp
	}

	return schedule
}
