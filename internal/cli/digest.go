package cli

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rwclarke/rijndael/internal/validation"
	"github.com/rwclarke/rijndael/pkg/crypto/hashattack"
	"github.com/rwclarke/rijndael/pkg/crypto/sha1"
)

// DigestResult carries one hash computation for output.
type DigestResult struct {
	Algorithm string `json:"algorithm"`
	Length    int    `json:"length"`
	Digest    string `json:"digest"`
	Bits      int    `json:"bits,omitempty"`
	Truncated string `json:"truncated,omitempty"`
}

func NewDigestCommand() *cobra.Command {
	var (
		useStdin   bool
		inputFile  string
		hexInput   bool
		bits       int
		outputJSON bool
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "digest [message]",
		Short: "Compute the SHA-1 digest of a message",
		Args:  cobra.MaximumNArgs(1),
		Long: `Compute the 160-bit SHA-1 digest of the message argument, of a file
with --file, or of stdin with --stdin. With --hex the input is decoded
from hex before hashing. With --bits the digest's low bits are also
shown, the same truncation the attack command searches against.

SHA-1 is here to feed the derive and attack commands. Collisions
against the full function are practical, so do not reach for it where
collision resistance matters.`,
		Example: `  # Digest a string
  rijndael digest "The quick brown fox jumps over the lazy dog"

  # Digest binary data given as hex
  rijndael digest --hex 00112233445566778899aabbccddeeff

  # Show the 16-bit truncation the attack command would target
  rijndael digest --bits 16 "hello"

  # Digest a file
  rijndael digest --file somefile`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ = cmd.Flags().GetBool("json")

			var message []byte
			var err error

			switch {
			case inputFile != "":
				message, err = os.ReadFile(inputFile)
				if err != nil {
					return fmt.Errorf("failed to read file: %w", err)
				}
			case useStdin:
				message, err = readFromStdin()
				if err != nil {
					return fmt.Errorf("failed to read message: %w", err)
				}
			case len(args) == 1:
				message = []byte(args[0])
			default:
				return fmt.Errorf("provide a message argument, --file, or --stdin")
			}

			if hexInput {
				input := strings.TrimSpace(string(message))
				if err := validation.ValidateHex(input); err != nil {
					return fmt.Errorf("invalid hex input: %w", err)
				}

				message, err = hex.DecodeString(input)
				if err != nil {
					return fmt.Errorf("failed to decode hex input: %w", err)
				}
			}

			digest := sha1.Sum(message)
			result := DigestResult{
				Algorithm: "sha1",
				Length:    len(message),
				Digest:    hex.EncodeToString(digest[:]),
			}

			if bits != 0 {
				if bits < 1 || bits > hashattack.MaxBits {
					return fmt.Errorf("bits must be between 1 and %d, got %d", hashattack.MaxBits, bits)
				}
				result.Bits = bits
				result.Truncated = formatTruncated(digest, bits)
			}

			if outputFile != "" {
				return saveToFile(result, outputFile)
			}

			if outputJSON {
				return outputJSONResult(result)
			}

			return outputDigestText(result)
		},
	}

	cmd.Flags().BoolVar(&useStdin, "stdin", false, "Read the message from stdin")
	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "Read the message from a file")
	cmd.Flags().BoolVar(&hexInput, "hex", false, "Treat the input as hex-encoded bytes")
	cmd.Flags().IntVar(&bits, "bits", 0, "Also show the digest truncated to this many low bits")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the result to a JSON file")

	return cmd
}

// formatTruncated renders the low bits of a digest with just enough hex
// digits to hold them.
func formatTruncated(digest [sha1.Size]byte, bits int) string {
	return fmt.Sprintf("%0*x", (bits+3)/4, hashattack.Truncate(digest, bits))
}

func outputDigestText(result DigestResult) error {
	cyan := color.New(color.FgCyan, color.Bold)

	cyan.Print("SHA-1: ")
	fmt.Println(result.Digest)
	if result.Truncated != "" {
		cyan.Printf("Low %d bits: ", result.Bits)
		fmt.Println(result.Truncated)
	}
	fmt.Printf("(%d bytes hashed)\n", result.Length)

	return nil
}
