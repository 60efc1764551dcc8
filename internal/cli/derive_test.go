package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDeriveDefaults(t *testing.T) {
	t.Setenv("RIJNDAEL_CONFIG", filepath.Join(t.TempDir(), "config.json"))

	t.Run("fills zero fields", func(t *testing.T) {
		iterations, keySize := 0, 0
		applyDeriveDefaults(&iterations, &keySize)

		assert.Equal(t, 4096, iterations)
		assert.Equal(t, 16, keySize)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		iterations, keySize := 10000, 32
		applyDeriveDefaults(&iterations, &keySize)

		assert.Equal(t, 10000, iterations)
		assert.Equal(t, 32, keySize)
	})
}

func TestDeriveResultJSON(t *testing.T) {
	result := DeriveResult{
		Algorithm:  "pbkdf2-sha1",
		Iterations: 4096,
		Salt:       "73616c74",
		KeyBits:    128,
		Key:        "4b007901b765489abead49d926f721d0",
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var loaded DeriveResult
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, result, loaded)

	assert.Contains(t, string(data), `"key_bits":128`)
}
