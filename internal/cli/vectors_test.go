package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownAnswersAllPass(t *testing.T) {
	for _, vector := range knownAnswers {
		t.Run(vector.name, func(t *testing.T) {
			passed, err := checkVector(vector)
			require.NoError(t, err)
			assert.True(t, passed)
		})
	}
}

func TestKnownAnswersCoverAllKeySizes(t *testing.T) {
	counts := make(map[int]int)
	for _, vector := range knownAnswers {
		counts[len(vector.key)*4]++
	}

	assert.Equal(t, 2, counts[128])
	assert.Equal(t, 2, counts[192])
	assert.Equal(t, 2, counts[256])
}

func TestCheckVectorDetectsMismatch(t *testing.T) {
	bad := knownAnswers[0]
	bad.ciphertext = "00000000000000000000000000000000"

	passed, err := checkVector(bad)
	require.NoError(t, err)
	assert.False(t, passed)
}

func TestCheckVectorRejectsBadEncoding(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*knownAnswer)
	}{
		{"Bad key", func(v *knownAnswer) { v.key = "not-hex" }},
		{"Bad plaintext", func(v *knownAnswer) { v.plaintext = "not-hex" }},
		{"Bad ciphertext", func(v *knownAnswer) { v.ciphertext = "not-hex" }},
		{"Short key", func(v *knownAnswer) { v.key = "0001" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			vector := knownAnswers[0]
			tc.mutate(&vector)

			_, err := checkVector(vector)
			assert.Error(t, err)
		})
	}
}
