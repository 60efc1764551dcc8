package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rwclarke/rijndael/pkg/crypto/rijndael"
	"github.com/rwclarke/rijndael/pkg/secure"
)

func NewDecryptCommand() *cobra.Command {
	var (
		keyHex     string
		blockHex   string
		useStdin   bool
		showTrace  bool
		outputJSON bool
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a single 16-byte block",
		Long: `Decrypt one 16-byte ciphertext block with the inverse cipher,
consuming the key schedule from the last round key down.

The key length picks the variant: 16, 24, or 32 bytes of hex for
AES-128, AES-192, or AES-256. The key must match the one used to
encrypt; a wrong key yields a valid-looking but unrelated block.

With --trace, every intermediate round state is printed, including the
post-key state each inverse round passes through before its column
mix.`,
		Example: `  # Invert the FIPS 197 appendix C.1 vector
  rijndael decrypt --key 000102030405060708090a0b0c0d0e0f \
    --block 69c4e0d86a7b0430d8cdb78070b4c55a

  # Show every round state along the way
  rijndael decrypt -k 000102030405060708090a0b0c0d0e0f \
    -b 69c4e0d86a7b0430d8cdb78070b4c55a --trace`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ = cmd.Flags().GetBool("json")

			key, err := resolveKey(keyHex)
			if err != nil {
				return fmt.Errorf("failed to read key: %w", err)
			}
			defer secure.Zero(key)

			block, err := resolveBlock(blockHex, useStdin, "Enter ciphertext block (hex): ")
			if err != nil {
				return fmt.Errorf("failed to read block: %w", err)
			}

			cipher, err := rijndael.NewCipher(key)
			if err != nil {
				return err
			}

			var trace []string
			if showTrace {
				collectTrace(cipher, decryptTraceLabels, &trace)
			}

			output, err := cipher.Decrypt(block)
			if err != nil {
				return fmt.Errorf("failed to decrypt block: %w", err)
			}

			result := BlockResult{
				Cipher:    fmt.Sprintf("AES-%d", len(key)*8),
				Direction: "decrypt",
				Rounds:    cipher.Rounds(),
				Input:     hex.EncodeToString(block),
				Output:    hex.EncodeToString(output),
				Trace:     trace,
			}

			if outputFile != "" {
				return saveToFile(result, outputFile)
			}

			if outputJSON {
				return outputJSONResult(result)
			}

			return outputBlockText(result)
		},
	}

	cmd.Flags().StringVarP(&keyHex, "key", "k", "", "Cipher key as hex (prompted if omitted)")
	cmd.Flags().StringVarP(&blockHex, "block", "b", "", "Ciphertext block as hex")
	cmd.Flags().BoolVar(&useStdin, "stdin", false, "Read the block from stdin")
	cmd.Flags().BoolVar(&showTrace, "trace", false, "Show every intermediate round state")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the result to a JSON file")

	return cmd
}
