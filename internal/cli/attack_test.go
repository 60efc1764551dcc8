package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwclarke/rijndael/pkg/crypto/hashattack"
)

func TestApplyAttackDefaults(t *testing.T) {
	t.Setenv("RIJNDAEL_CONFIG", filepath.Join(t.TempDir(), "config.json"))

	t.Run("fills zero fields", func(t *testing.T) {
		attackConfig := hashattack.Config{}
		applyAttackDefaults(&attackConfig)

		assert.Equal(t, 16, attackConfig.Bits)
		assert.Equal(t, hashattack.DefaultTrials, attackConfig.Trials)
		assert.Equal(t, hashattack.DefaultMessageLen, attackConfig.MessageLen)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		attackConfig := hashattack.Config{Bits: 8, Trials: 5, MessageLen: 12}
		applyAttackDefaults(&attackConfig)

		assert.Equal(t, 8, attackConfig.Bits)
		assert.Equal(t, 5, attackConfig.Trials)
		assert.Equal(t, 12, attackConfig.MessageLen)
	})
}

func TestAttackResultJSONIsFlat(t *testing.T) {
	result := AttackResult{
		Experiment: "preimage",
		Summary: hashattack.Summary{
			Bits:     8,
			Trials:   10,
			Mean:     256.5,
			Min:      3,
			Max:      900,
			Expected: 256,
		},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))

	// The embedded summary flattens into the top-level object.
	assert.Equal(t, "preimage", fields["experiment"])
	assert.Equal(t, float64(8), fields["bits"])
	assert.Equal(t, float64(10), fields["trials"])
	assert.NotContains(t, fields, "Summary")
}
