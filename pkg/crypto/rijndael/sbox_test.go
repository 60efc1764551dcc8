package rijndael

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSboxBijection(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		assert.Equal(t, b, invSbox[sbox[b]], "invSbox[sbox[%#02x]]", b)
		assert.Equal(t, b, sbox[invSbox[b]], "sbox[invSbox[%#02x]]", b)
	}
}

func TestSboxPublishedValues(t *testing.T) {
	tests := []struct {
		in, forward, inverse byte
	}{
		{0x00, 0x63, 0x52},
		{0x01, 0x7c, 0x09},
		{0x53, 0xed, 0x50},
		{0x10, 0xca, 0x7c},
		{0xff, 0x16, 0x7d},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.forward, sbox[tt.in], "sbox[%#02x]", tt.in)
		assert.Equal(t, tt.inverse, invSbox[tt.in], "invSbox[%#02x]", tt.in)
	}
}

func TestSboxCoversAllValues(t *testing.T) {
	var seen [256]bool
	for _, v := range sbox {
		seen[v] = true
	}
	for i, ok := range seen {
		assert.True(t, ok, "value %#02x missing from sbox", i)
	}
}
