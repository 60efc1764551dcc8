package cli

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rwclarke/rijndael/internal/validation"
	"github.com/rwclarke/rijndael/pkg/keystore"
	"github.com/rwclarke/rijndael/pkg/secure"
)

// StoredKeyResult is the output view of one stored key. The key
// material itself only appears for --show.
type StoredKeyResult struct {
	Name    string    `json:"name"`
	Bits    int       `json:"bits"`
	Created time.Time `json:"created"`
	Notes   string    `json:"notes,omitempty"`
	Key     string    `json:"key,omitempty"`
}

func NewKeysCommand() *cobra.Command {
	var (
		storePath  string
		saveName   string
		keyHex     string
		notes      string
		showName   string
		removeName string
		listKeys   bool
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage cipher keys in an encrypted store",
		Long: `Keep named cipher keys in an encrypted store file so they do not
have to be retyped or kept in shell history.

The store is sealed with ChaCha20-Poly1305 under a key derived from
the store passphrase with argon2id. It is created on the first save.
The store passphrase is independent of any passphrase used with the
derive command.`,
		Example: `  # Save a key under a name (prompts for the key and passphrase)
  rijndael keys --save laptop

  # List stored keys, then print one for use with encrypt
  rijndael keys --list
  rijndael keys --show laptop`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ = cmd.Flags().GetBool("json")

			modes := 0
			for _, selected := range []bool{saveName != "", showName != "", removeName != "", listKeys} {
				if selected {
					modes++
				}
			}
			if modes != 1 {
				return fmt.Errorf("specify exactly one of --save, --show, --remove, or --list")
			}

			if storePath == "" {
				path, err := defaultKeyStorePath()
				if err != nil {
					return fmt.Errorf("failed to locate key store: %w", err)
				}
				storePath = path
			}

			passphrase, err := readPassphrase("Enter store passphrase: ")
			if err != nil {
				return fmt.Errorf("failed to read passphrase: %w", err)
			}
			if err := validation.ValidatePassphrase(passphrase); err != nil {
				return err
			}

			passBytes := []byte(passphrase)
			defer secure.Zero(passBytes)

			store := keystore.New(storePath)

			switch {
			case saveName != "":
				key, err := resolveKey(keyHex)
				if err != nil {
					return fmt.Errorf("failed to read key: %w", err)
				}
				defer secure.Zero(key)

				entry := keystore.StoredKey{
					Name:  saveName,
					Key:   key,
					Bits:  len(key) * 8,
					Notes: notes,
				}
				if err := store.Add(entry, passBytes); err != nil {
					return err
				}

				color.New(color.FgGreen).Printf("Key %q saved to %s\n", saveName, storePath)
				return nil

			case showName != "":
				entry, err := store.Get(showName, passBytes)
				if err != nil {
					return err
				}
				defer secure.Zero(entry.Key)

				result := StoredKeyResult{
					Name:    entry.Name,
					Bits:    entry.Bits,
					Created: entry.Created,
					Notes:   entry.Notes,
					Key:     hex.EncodeToString(entry.Key),
				}

				if outputJSON {
					return outputJSONResult(result)
				}
				return outputStoredKeyText(result)

			case removeName != "":
				if err := store.Remove(removeName, passBytes); err != nil {
					return err
				}

				color.New(color.FgGreen).Printf("Key %q removed\n", removeName)
				return nil

			default:
				entries, err := store.List(passBytes)
				if err != nil {
					return err
				}
				defer keystore.Zero(entries)

				results := make([]StoredKeyResult, 0, len(entries))
				for _, entry := range entries {
					results = append(results, StoredKeyResult{
						Name:    entry.Name,
						Bits:    entry.Bits,
						Created: entry.Created,
						Notes:   entry.Notes,
					})
				}

				if outputJSON {
					return outputJSONResult(results)
				}
				return outputKeyListText(results, storePath)
			}
		},
	}

	cmd.Flags().StringVar(&storePath, "store", "", "Key store file (defaults to the config directory)")
	cmd.Flags().StringVar(&saveName, "save", "", "Save a key under this name")
	cmd.Flags().StringVarP(&keyHex, "key", "k", "", "Key to save, as hex (prompted if omitted)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form note stored with the key")
	cmd.Flags().StringVar(&showName, "show", "", "Print the named key")
	cmd.Flags().StringVar(&removeName, "remove", "", "Remove the named key")
	cmd.Flags().BoolVar(&listKeys, "list", false, "List stored keys without their material")

	return cmd
}

// defaultKeyStorePath puts the store next to the config file.
func defaultKeyStorePath() (string, error) {
	if customPath := os.Getenv("RIJNDAEL_KEYSTORE"); customPath != "" {
		return customPath, nil
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "rijndael", "keys.json"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "rijndael", "keys.json"), nil
}

func outputStoredKeyText(result StoredKeyResult) error {
	yellow := color.New(color.FgYellow, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)

	fmt.Println()
	yellow.Println("=== STORED KEY ===")
	fmt.Println()

	cyan.Print("  Name:    ")
	fmt.Println(result.Name)
	cyan.Print("  Size:    ")
	fmt.Printf("%d bits\n", result.Bits)
	cyan.Print("  Created: ")
	fmt.Println(result.Created.Format("2006-01-02 15:04"))
	if result.Notes != "" {
		cyan.Print("  Notes:   ")
		fmt.Println(result.Notes)
	}
	cyan.Print("  Key:     ")
	fmt.Println(result.Key)
	fmt.Println()

	fmt.Printf("Use with: rijndael encrypt --key %s\n", result.Key)

	return nil
}

func outputKeyListText(results []StoredKeyResult, storePath string) error {
	yellow := color.New(color.FgYellow, color.Bold)
	cyan := color.New(color.FgCyan)

	fmt.Println()
	yellow.Println("=== KEY STORE ===")
	fmt.Printf("Store: %s\n\n", storePath)

	if len(results) == 0 {
		fmt.Println("No keys stored yet. Save one with: rijndael keys --save <name>")
		fmt.Println()
		return nil
	}

	for _, result := range results {
		cyan.Printf("  %s", result.Name)
		fmt.Printf("  (%d bits, created %s)", result.Bits, result.Created.Format("2006-01-02"))
		if result.Notes != "" {
			fmt.Printf("  %s", result.Notes)
		}
		fmt.Println()
	}
	fmt.Println()

	fmt.Println("Print one with: rijndael keys --show <name>")

	return nil
}
