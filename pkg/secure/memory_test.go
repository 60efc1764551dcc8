package secure

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZero(t *testing.T) {
	data := []byte("sensitive key material")
	original := make([]byte, len(data))
	copy(original, data)

	Zero(data)

	for _, b := range data {
		assert.Equal(t, byte(0), b)
	}
	assert.NotEqual(t, original, data)

	Zero(nil)
	Zero([]byte{})
}

func TestConstantTimeCompare(t *testing.T) {
	a := []byte("test data")
	b := []byte("test data")
	c := []byte("different")
	d := []byte("test dat")

	assert.True(t, ConstantTimeCompare(a, b))
	assert.False(t, ConstantTimeCompare(a, c))
	assert.False(t, ConstantTimeCompare(a, d))
	assert.False(t, ConstantTimeCompare(a, []byte{}))
	assert.True(t, ConstantTimeCompare(nil, []byte{}))
}

func TestSecureRandom(t *testing.T) {
	sizes := []int{16, 24, 32, 64}

	for _, size := range sizes {
		t.Run(fmt.Sprintf("%d bytes", size), func(t *testing.T) {
			data, err := SecureRandom(size)
			require.NoError(t, err)
			assert.Len(t, data, size)

			data2, err := SecureRandom(size)
			require.NoError(t, err)
			assert.NotEqual(t, data, data2, "Random data should be different")
		})
	}

	empty, err := SecureRandom(0)
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func BenchmarkZero(b *testing.B) {
	data := make([]byte, 1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Zero(data)
	}
}

func BenchmarkConstantTimeCompare(b *testing.B) {
	a := bytes.Repeat([]byte{0x42}, 32)
	b1 := bytes.Repeat([]byte{0x42}, 32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ConstantTimeCompare(a, b1)
	}
}
