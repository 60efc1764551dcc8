package rijndael

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandKeyLength(t *testing.T) {
	tests := []struct {
		name     string
		keyBytes int
		words    int
	}{
		{"128-bit key", 16, 44},
		{"192-bit key", 24, 52},
		{"256-bit key", 32, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := expandKey(make([]byte, tt.keyBytes))
			assert.Len(t, schedule, tt.words)
		})
	}
}

func TestExpandKeyFirstWordsAreKey(t *testing.T) {
	key, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f1011121314151617")
	require.NoError(t, err)

	schedule := expandKey(key)
	want := []uint32{0x00010203, 0x04050607, 0x08090a0b, 0x0c0d0e0f, 0x10111213, 0x14151617}
	assert.Equal(t, want, schedule[:6])
}

// Expansion of the 128-bit key from the published worked example.
func TestExpandKeyPublishedExample(t *testing.T) {
	key, err := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")
	require.NoError(t, err)

	schedule := expandKey(key)
	require.Len(t, schedule, 44)

	assert.Equal(t, uint32(0xa0fafe17), schedule[4])
	assert.Equal(t, uint32(0x88542cb1), schedule[5])
	assert.Equal(t, uint32(0x23a33939), schedule[6])
	assert.Equal(t, uint32(0x2a6c7605), schedule[7])
	assert.Equal(t, uint32(0xb6630ca6), schedule[43])
}

func TestRconDerivation(t *testing.T) {
	x := byte(0x01)
	for i, want := range rcon {
		assert.Equal(t, want, uint32(x)<<24, "rcon[%d]", i)
		x = xtime(x)
	}
}

func TestRotWord(t *testing.T) {
	assert.Equal(t, uint32(0x02030401), rotWord(0x01020304))
	assert.Equal(t, uint32(0x00000000), rotWord(0))
}

func TestSubWord(t *testing.T) {
	// sbox: 00->63, 01->7c, 53->ed, ff->16
	assert.Equal(t, uint32(0x637ced16), subWord(0x000153ff))
}
