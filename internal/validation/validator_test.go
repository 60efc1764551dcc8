package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid lowercase", "deadbeef", false},
		{"valid uppercase", "DEADBEEF", false},
		{"valid mixed", "DeadBeef", false},
		{"valid with surrounding space", "  cafe  ", false},
		{"empty", "", true},
		{"only whitespace", "   ", true},
		{"odd length", "abc", true},
		{"non-hex characters", "xyz123", true},
		{"embedded space", "dead beef", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateHex(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateKeyHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"128-bit key", strings.Repeat("00", 16), false},
		{"192-bit key", strings.Repeat("ab", 24), false},
		{"256-bit key", strings.Repeat("ff", 32), false},
		{"10 bytes", strings.Repeat("00", 10), true},
		{"20 bytes", strings.Repeat("00", 20), true},
		{"33 bytes", strings.Repeat("00", 33), true},
		{"not hex", strings.Repeat("zz", 16), true},
		{"empty", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateKeyHex(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBlockHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"exact block", strings.Repeat("00", 16), false},
		{"15 bytes", strings.Repeat("00", 15), true},
		{"17 bytes", strings.Repeat("00", 17), true},
		{"32 bytes", strings.Repeat("00", 32), true},
		{"empty", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateBlockHex(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateKeySize(t *testing.T) {
	assert.True(t, ValidateKeySize(16))
	assert.True(t, ValidateKeySize(24))
	assert.True(t, ValidateKeySize(32))

	assert.False(t, ValidateKeySize(0))
	assert.False(t, ValidateKeySize(10))
	assert.False(t, ValidateKeySize(20))
	assert.False(t, ValidateKeySize(33))
	assert.False(t, ValidateKeySize(-16))
}

func TestValidateDeriveParams(t *testing.T) {
	assert.NoError(t, ValidateDeriveParams(4096, 16))
	assert.NoError(t, ValidateDeriveParams(1, 32))

	assert.Error(t, ValidateDeriveParams(0, 16))
	assert.Error(t, ValidateDeriveParams(-1, 16))
	assert.Error(t, ValidateDeriveParams(10000001, 16))
	assert.Error(t, ValidateDeriveParams(4096, 0))
	assert.Error(t, ValidateDeriveParams(4096, 15))
}

func TestValidatePassphrase(t *testing.T) {
	assert.NoError(t, ValidatePassphrase(""))
	assert.NoError(t, ValidatePassphrase("correct horse battery staple"))
	assert.NoError(t, ValidatePassphrase(strings.Repeat("a", 256)))

	assert.Error(t, ValidatePassphrase(strings.Repeat("a", 257)))
	assert.Error(t, ValidatePassphrase("null\x00byte"))
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"trims outer space", "  hello  ", "hello"},
		{"normalizes crlf", "a\r\nb", "a\nb"},
		{"normalizes bare cr", "a\rb", "a\nb"},
		{"trims each line", "  a  \n  b  ", "a\nb"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeInput(tc.input))
		})
	}
}
