package cli

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/rwclarke/rijndael/internal/validation"
	"github.com/rwclarke/rijndael/pkg/crypto/rijndael"
)

// readPassphrase reads a passphrase from the terminal
func readPassphrase(prompt string) (string, error) {
	fmt.Print(prompt)

	if term.IsTerminal(int(syscall.Stdin)) {
		passBytes, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(passBytes), nil
	}

	// Fallback for non-terminal
	reader := bufio.NewReader(os.Stdin)
	pass, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(pass), nil
}

// readKeyInteractive reads a hex cipher key without echoing it
func readKeyInteractive() ([]byte, error) {
	input, err := readPassphrase("Enter key (hex): ")
	if err != nil {
		return nil, err
	}
	return parseKeyHex(input)
}

// readBlockInteractive reads one line of hex with normal echo
func readBlockInteractive(prompt string) (string, error) {
	fmt.Print(prompt)

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func readFromStdin() ([]byte, error) {
	scanner := bufio.NewScanner(os.Stdin)
	var lines []string

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return []byte(strings.Join(lines, "\n")), nil
}

func parseKeyHex(input string) ([]byte, error) {
	input = validation.SanitizeInput(input)
	if err := validation.ValidateKeyHex(input); err != nil {
		return nil, err
	}

	key, err := hex.DecodeString(input)
	if err != nil {
		return nil, fmt.Errorf("failed to decode key: %w", err)
	}

	return key, nil
}

func parseBlockHex(input string) ([]byte, error) {
	input = validation.SanitizeInput(input)
	if err := validation.ValidateBlockHex(input); err != nil {
		return nil, err
	}

	block, err := hex.DecodeString(input)
	if err != nil {
		return nil, fmt.Errorf("failed to decode block: %w", err)
	}

	return block, nil
}

// resolveKey decodes the key flag, or falls back to a hidden prompt
func resolveKey(keyHex string) ([]byte, error) {
	if keyHex == "" {
		return readKeyInteractive()
	}
	return parseKeyHex(keyHex)
}

// resolveBlock decodes the block flag, stdin, or an echoed prompt
func resolveBlock(blockHex string, useStdin bool, prompt string) ([]byte, error) {
	if blockHex == "" {
		if useStdin {
			data, err := readFromStdin()
			if err != nil {
				return nil, err
			}
			blockHex = string(data)
		} else {
			input, err := readBlockInteractive(prompt)
			if err != nil {
				return nil, err
			}
			blockHex = input
		}
	}

	return parseBlockHex(blockHex)
}

// Trace labels follow the FIPS 197 appendix C listings: k_sch for
// schedule words, s_box/s_row/m_col for the transform outputs, with
// i-prefixed names on the inverse cipher.
var encryptTraceLabels = map[rijndael.TraceStep]string{
	rijndael.StepInput:      "input",
	rijndael.StepRoundKey:   "k_sch",
	rijndael.StepStart:      "start",
	rijndael.StepSubBytes:   "s_box",
	rijndael.StepShiftRows:  "s_row",
	rijndael.StepMixColumns: "m_col",
	rijndael.StepOutput:     "output",
}

var decryptTraceLabels = map[rijndael.TraceStep]string{
	rijndael.StepInput:       "iinput",
	rijndael.StepRoundKey:    "ik_sch",
	rijndael.StepStart:       "istart",
	rijndael.StepSubBytes:    "is_box",
	rijndael.StepShiftRows:   "is_row",
	rijndael.StepAddRoundKey: "ik_add",
	rijndael.StepOutput:      "ioutput",
}

func formatTraceEvent(ev rijndael.TraceEvent, labels map[rijndael.TraceStep]string) string {
	label, ok := labels[ev.Step]
	if !ok {
		label = ev.Step.String()
	}

	value := hex.EncodeToString(ev.State[:])
	if ev.Step == rijndael.StepRoundKey {
		value = fmt.Sprintf("%08x%08x%08x%08x", ev.Words[0], ev.Words[1], ev.Words[2], ev.Words[3])
	}

	return fmt.Sprintf("round[%2d].%-8s %s", ev.Round, label, value)
}

// collectTrace installs a hook on c that appends one formatted line per
// intermediate value to out.
func collectTrace(c *rijndael.Cipher, labels map[rijndael.TraceStep]string, out *[]string) {
	c.Trace = func(ev rijndael.TraceEvent) {
		*out = append(*out, formatTraceEvent(ev, labels))
	}
}

func saveToFile(result interface{}, filename string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	fmt.Printf("Result saved to %s\n", filename)
	return nil
}

func outputJSONResult(result interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
