package validation

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/rwclarke/rijndael/pkg/crypto/rijndael"
)

var hexPattern = regexp.MustCompile(`^[0-9a-fA-F]+$`)

func ValidateHex(input string) error {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return fmt.Errorf("hex string cannot be empty")
	}

	if len(input)%2 != 0 {
		return fmt.Errorf("hex string must have even length")
	}

	if !hexPattern.MatchString(input) {
		return fmt.Errorf("invalid hex characters")
	}

	return nil
}

func ValidateKeyHex(input string) error {
	if err := ValidateHex(input); err != nil {
		return fmt.Errorf("invalid key format: %w", err)
	}

	data, err := hex.DecodeString(strings.TrimSpace(input))
	if err != nil {
		return fmt.Errorf("failed to decode key: %w", err)
	}

	if !ValidateKeySize(len(data)) {
		return fmt.Errorf("key must be 16, 24, or 32 bytes (got %d)", len(data))
	}

	return nil
}

func ValidateBlockHex(input string) error {
	if err := ValidateHex(input); err != nil {
		return fmt.Errorf("invalid block format: %w", err)
	}

	data, err := hex.DecodeString(strings.TrimSpace(input))
	if err != nil {
		return fmt.Errorf("failed to decode block: %w", err)
	}

	if len(data) != rijndael.BlockSize {
		return fmt.Errorf("block must be exactly %d bytes (got %d)", rijndael.BlockSize, len(data))
	}

	return nil
}

func ValidateKeySize(size int) bool {
	validSizes := []int{16, 24, 32}
	for _, valid := range validSizes {
		if size == valid {
			return true
		}
	}
	return false
}

func ValidateDeriveParams(iterations, keySize int) error {
	if iterations < 1 || iterations > 10000000 {
		return fmt.Errorf("iterations must be between 1 and 10000000 (got %d)", iterations)
	}

	if !ValidateKeySize(keySize) {
		return fmt.Errorf("derived key size must be 16, 24, or 32 bytes (got %d)", keySize)
	}

	return nil
}

func ValidatePassphrase(passphrase string) error {
	if len(passphrase) > 256 {
		return fmt.Errorf("passphrase too long (max 256 characters)")
	}

	for i, ch := range passphrase {
		if ch == 0 {
			return fmt.Errorf("passphrase contains null character at position %d", i)
		}

		if ch > 0x10FFFF {
			return fmt.Errorf("passphrase contains invalid Unicode at position %d", i)
		}
	}

	return nil
}

func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)

	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	lines := strings.Split(input, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	return strings.Join(lines, "\n")
}
