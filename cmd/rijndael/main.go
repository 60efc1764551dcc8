package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rwclarke/rijndael/internal/cli"
	"github.com/rwclarke/rijndael/pkg/config"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "rijndael",
		Short: "AES block cipher study tool with round-level tracing",
		Long: `Rijndael implements the AES block cipher (FIPS 197) from first
principles, for studying how the cipher works rather than for
protecting data.

Features:
- AES-128/192/256 single-block encryption and decryption
- Round-by-round state tracing in the FIPS 197 appendix format
- Published known-answer vector checks
- PBKDF2 key derivation from passphrases
- Encrypted at-rest store for named keys
- SHA-1 digests and truncated-hash attack experiments

The tool operates on raw 16-byte blocks. There is no chaining mode,
no padding, and no authentication; do not use it to protect real data.`,
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}

			if cm, err := config.NewConfigManager(); err == nil && !cm.GetConfig().UI.UseColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.AddCommand(
		cli.NewEncryptCommand(),
		cli.NewDecryptCommand(),
		cli.NewDigestCommand(),
		cli.NewDeriveCommand(),
		cli.NewKeysCommand(),
		cli.NewAttackCommand(),
		cli.NewVectorsCommand(),
		cli.NewExampleCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
