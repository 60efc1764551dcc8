package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rwclarke/rijndael/pkg/crypto/rijndael"
	"github.com/rwclarke/rijndael/pkg/secure"
)

// BlockResult carries one single-block cipher operation for output.
type BlockResult struct {
	Cipher    string   `json:"cipher"`
	Direction string   `json:"direction"`
	Rounds    int      `json:"rounds"`
	Input     string   `json:"input"`
	Output    string   `json:"output"`
	Trace     []string `json:"trace,omitempty"`
}

func NewEncryptCommand() *cobra.Command {
	var (
		keyHex     string
		blockHex   string
		useStdin   bool
		showTrace  bool
		outputJSON bool
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a single 16-byte block",
		Long: `Encrypt one 16-byte block with AES-128, AES-192, or AES-256, selected
by the key length (16, 24, or 32 bytes of hex).

This is the raw block transformation: no chaining mode, no padding.
Identical blocks under the same key always produce identical
ciphertext, so treat this as a building block and a study aid, not a
file encryptor.

With --trace, every intermediate round state is printed in the layout
of the FIPS 197 appendix listings.`,
		Example: `  # Encrypt the FIPS 197 appendix C.1 vector
  rijndael encrypt --key 000102030405060708090a0b0c0d0e0f \
    --block 00112233445566778899aabbccddeeff

  # Show every round state along the way
  rijndael encrypt -k 000102030405060708090a0b0c0d0e0f \
    -b 00112233445566778899aabbccddeeff --trace

  # Read the block from stdin, prompt for the key
  echo "00112233445566778899aabbccddeeff" | rijndael encrypt --stdin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ = cmd.Flags().GetBool("json")

			key, err := resolveKey(keyHex)
			if err != nil {
				return fmt.Errorf("failed to read key: %w", err)
			}
			defer secure.Zero(key)

			block, err := resolveBlock(blockHex, useStdin, "Enter plaintext block (hex): ")
			if err != nil {
				return fmt.Errorf("failed to read block: %w", err)
			}

			cipher, err := rijndael.NewCipher(key)
			if err != nil {
				return err
			}

			var trace []string
			if showTrace {
				collectTrace(cipher, encryptTraceLabels, &trace)
			}

			output, err := cipher.Encrypt(block)
			if err != nil {
				return fmt.Errorf("failed to encrypt block: %w", err)
			}

			result := BlockResult{
				Cipher:    fmt.Sprintf("AES-%d", len(key)*8),
				Direction: "encrypt",
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
	cmd.Flags().StringVarP(&blockHex, "block", "b", "", "Plaintext block as hex")
	cmd.Flags().BoolVar(&useStdin, "stdin", false, "Read the block from stdin")
	cmd.Flags().BoolVar(&showTrace, "trace", false, "Show every intermediate round state")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the result to a JSON file")

	return cmd
}

func outputBlockText(result BlockResult) error {
	yellow := color.New(color.FgYellow, color.Bold)
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan, color.Bold)

	fmt.Println()
	if result.Direction == "encrypt" {
		yellow.Println("=== BLOCK ENCRYPTION ===")
	} else {
		yellow.Println("=== BLOCK DECRYPTION ===")
	}
	fmt.Println()

	green.Printf("%s, %d rounds\n\n", result.Cipher, result.Rounds)

	cyan.Print("  Input:  ")
	fmt.Println(result.Input)

	cyan.Print("  Output: ")
	fmt.Println(result.Output)
	fmt.Println()

	if len(result.Trace) > 0 {
		yellow.Println("=== ROUND STATES ===")
		fmt.Println()
		for _, line := range result.Trace {
			fmt.Printf("  %s\n", line)
		}
		fmt.Println()
	}

	return nil
}
