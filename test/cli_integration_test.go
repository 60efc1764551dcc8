package test

import (
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwclarke/rijndael/pkg/crypto/rijndael"
)

func TestCLI_HexInputNormalization(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expectError bool
		expectedLen int
	}{
		{
			name:        "Clean lowercase",
			input:       "000102030405060708090a0b0c0d0e0f",
			expectedLen: 16,
		},
		{
			name:        "Uppercase",
			input:       "000102030405060708090A0B0C0D0E0F",
			expectedLen: 16,
		},
		{
			name:        "Surrounding whitespace",
			input:       "\t 000102030405060708090a0b0c0d0e0f \n",
			expectedLen: 16,
		},
		{
			name:        "Odd length",
			input:       "00010",
			expectError: true,
		},
		{
			name:        "Not hex at all",
			input:       "the quick brown fox",
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := parseHexTestHelper(tc.input)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, data, tc.expectedLen)
		})
	}
}

func TestCLI_TraceOutputFormat(t *testing.T) {
	key, err := parseHexTestHelper("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	plaintext, err := parseHexTestHelper("00112233445566778899aabbccddeeff")
	require.NoError(t, err)

	c, err := rijndael.NewCipher(key)
	require.NoError(t, err)

	labels := map[rijndael.TraceStep]string{
		rijndael.StepInput:      "input",
		rijndael.StepRoundKey:   "k_sch",
		rijndael.StepStart:      "start",
		rijndael.StepSubBytes:   "s_box",
		rijndael.StepShiftRows:  "s_row",
		rijndael.StepMixColumns: "m_col",
		rijndael.StepOutput:     "output",
	}

	var lines []string
	c.Trace = func(ev rijndael.TraceEvent) {
		lines = append(lines, traceLineTestHelper(ev, labels))
	}

	_, err = c.Encrypt(plaintext)
	require.NoError(t, err)

	require.Len(t, lines, 52)
	assert.Equal(t, "round[ 0].input    00112233445566778899aabbccddeeff", lines[0])
	assert.Equal(t, "round[ 1].s_row    6353e08c0960e104cd70b751bacad0e7", lines[4])
	assert.Equal(t, "round[ 1].m_col    5f72641557f5bc92f7be3b291db9f91a", lines[5])
	assert.Equal(t, "round[10].output   69c4e0d86a7b0430d8cdb78070b4c55a", lines[51])

	// Each full round prints its states in transform order.
	for round := 1; round < 10; round++ {
		base := 2 + (round-1)*5
		prefix := fmt.Sprintf("round[%2d].", round)
		assert.Contains(t, lines[base+0], prefix+"start")
		assert.Contains(t, lines[base+1], prefix+"s_box")
		assert.Contains(t, lines[base+2], prefix+"s_row")
		assert.Contains(t, lines[base+3], prefix+"m_col")
		assert.Contains(t, lines[base+4], prefix+"k_sch")
	}
}

func TestCLI_WorkflowProducesPublishedVector(t *testing.T) {
	key, err := parseHexTestHelper("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	block, err := parseHexTestHelper("00112233445566778899aabbccddeeff")
	require.NoError(t, err)

	c, err := rijndael.NewCipher(key)
	require.NoError(t, err)

	ciphertext, err := c.Encrypt(block)
	require.NoError(t, err)
	assert.Equal(t, "69c4e0d86a7b0430d8cdb78070b4c55a", hex.EncodeToString(ciphertext))

	recovered, err := c.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(block), hex.EncodeToString(recovered))
}

func TestCLI_BlockSizeErrors(t *testing.T) {
	key, err := parseHexTestHelper("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	c, err := rijndael.NewCipher(key)
	require.NoError(t, err)

	for _, size := range []int{0, 1, 15, 17, 32} {
		_, err := c.Encrypt(make([]byte, size))
		assert.Error(t, err, "Block of %d bytes should be rejected", size)
		_, err = c.Decrypt(make([]byte, size))
		assert.Error(t, err, "Block of %d bytes should be rejected", size)
	}

	for _, size := range []int{0, 8, 15, 17, 33, 64} {
		_, err := rijndael.NewCipher(make([]byte, size))
		assert.Error(t, err, "Key of %d bytes should be rejected", size)
	}
}

// Helper functions mirroring the CLI input and output handling
func parseHexTestHelper(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimSpace(s))
}

func traceLineTestHelper(ev rijndael.TraceEvent, labels map[rijndael.TraceStep]string) string {
	value := hex.EncodeToString(ev.State[:])
	if ev.Step == rijndael.StepRoundKey {
		value = fmt.Sprintf("%08x%08x%08x%08x", ev.Words[0], ev.Words[1], ev.Words[2], ev.Words[3])
	}

	return fmt.Sprintf("round[%2d].%-8s %s", ev.Round, labels[ev.Step], value)
}
