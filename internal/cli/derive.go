package cli

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/pbkdf2"

	"github.com/rwclarke/rijndael/internal/validation"
	"github.com/rwclarke/rijndael/pkg/config"
	"github.com/rwclarke/rijndael/pkg/crypto/sha1"
	"github.com/rwclarke/rijndael/pkg/secure"
)

// DeriveResult carries one key derivation for output.
type DeriveResult struct {
	Algorithm  string `json:"algorithm"`
	Iterations int    `json:"iterations"`
	Salt       string `json:"salt"`
	KeyBits    int    `json:"key_bits"`
	Key        string `json:"key"`
}

func NewDeriveCommand() *cobra.Command {
	var (
		iterations int
		keySize    int
		saltHex    string
		outputJSON bool
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive a cipher key from a passphrase",
		Long: `Derive an AES key from a passphrase with PBKDF2 over SHA-1.

A fresh random 16-byte salt is generated unless --salt provides one.
Keep the salt and iteration count together with the ciphertext; the
same passphrase, salt, and count always reproduce the same key.

Iteration count and key size default to the configuration file when
the flags are left at zero.`,
		Example: `  # Derive a 128-bit key with the configured defaults
  rijndael derive

  # Derive a 256-bit key with an explicit salt and iteration count
  rijndael derive --key-size 32 --iterations 10000 --salt 73616c7473616c7473616c7473616c74`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ = cmd.Flags().GetBool("json")

			applyDeriveDefaults(&iterations, &keySize)

			if err := validation.ValidateDeriveParams(iterations, keySize); err != nil {
				return err
			}

			var salt []byte
			var err error

			if saltHex != "" {
				if err := validation.ValidateHex(saltHex); err != nil {
					return fmt.Errorf("invalid salt: %w", err)
				}
				salt, err = hex.DecodeString(strings.TrimSpace(saltHex))
				if err != nil {
					return fmt.Errorf("failed to decode salt: %w", err)
				}
			} else {
				salt, err = secure.SecureRandom(16)
				if err != nil {
					return fmt.Errorf("failed to generate salt: %w", err)
				}
			}

			passphrase, err := readPassphrase("Enter passphrase: ")
			if err != nil {
				return fmt.Errorf("failed to read passphrase: %w", err)
			}

			if err := validation.ValidatePassphrase(passphrase); err != nil {
				return err
			}

			passBytes := []byte(passphrase)
			defer secure.Zero(passBytes)

			key := pbkdf2.Key(passBytes, salt, iterations, keySize, sha1.New)
			defer secure.Zero(key)

			result := DeriveResult{
				Algorithm:  "pbkdf2-sha1",
				Iterations: iterations,
				Salt:       hex.EncodeToString(salt),
				KeyBits:    keySize * 8,
				Key:        hex.EncodeToString(key),
			}

			if outputFile != "" {
				return saveToFile(result, outputFile)
			}

			if outputJSON {
				return outputJSONResult(result)
			}

			return outputDeriveText(result)
		},
	}

	cmd.Flags().IntVarP(&iterations, "iterations", "i", 0, "PBKDF2 iteration count (0 uses the configured default)")
	cmd.Flags().IntVar(&keySize, "key-size", 0, "Derived key length in bytes: 16, 24, or 32 (0 uses the configured default)")
	cmd.Flags().StringVar(&saltHex, "salt", "", "Salt as hex (random if omitted)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the result to a JSON file")

	return cmd
}

// applyDeriveDefaults fills unset parameters from the config file,
// falling back to built-in defaults when no config can be loaded.
func applyDeriveDefaults(iterations, keySize *int) {
	defaults := config.DefaultConfig().Defaults
	if cm, err := config.NewConfigManager(); err == nil {
		defaults = cm.GetConfig().Defaults
	}

	if *iterations == 0 {
		*iterations = defaults.DeriveIterations
	}

	if *keySize == 0 {
		*keySize = defaults.DeriveKeySize
	}
}

func outputDeriveText(result DeriveResult) error {
	yellow := color.New(color.FgYellow, color.Bold)
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan, color.Bold)

	fmt.Println()
	yellow.Println("=== DERIVED KEY ===")
	fmt.Println()

	green.Printf("PBKDF2-SHA1, %d iterations, %d-bit key\n\n", result.Iterations, result.KeyBits)

	cyan.Print("  Salt: ")
	fmt.Println(result.Salt)

	cyan.Print("  Key:  ")
	fmt.Println(result.Key)
	fmt.Println()

	fmt.Printf("Use with: rijndael encrypt --key %s\n", result.Key)
	fmt.Println("Keep the salt and iteration count to derive the same key again.")

	return nil
}
