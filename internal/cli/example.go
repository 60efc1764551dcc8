package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewExampleCommand creates an example/tutorial command
func NewExampleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "example [scenario]",
		Short: "Show practical examples and tutorials",
		Long: `Learn how to use the cipher tool with practical examples
and step-by-step walkthroughs for common study scenarios.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return showExampleMenu()
			}
			return showExample(args[0])
		},
	}

	return cmd
}

func showExampleMenu() error {
	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)
	yellow := color.New(color.FgYellow)

	fmt.Println()
	green.Println("📚 RIJNDAEL BLOCK CIPHER EXAMPLES")
	fmt.Println("=" + strings.Repeat("=", 40))
	fmt.Println()

	cyan.Println("Available Examples:")
	fmt.Println()

	examples := []struct {
		cmd   string
		title string
		desc  string
	}{
		{"blocks", "Encrypt and Decrypt a Block", "Single-block AES with hex keys"},
		{"trace", "Watch the Rounds", "Print every intermediate round state"},
		{"derive", "Derive Keys from Passphrases", "PBKDF2 key derivation for the cipher"},
		{"store", "Keep Keys in an Encrypted Store", "Named keys sealed under a passphrase"},
		{"attack", "Truncated Hash Attacks", "Preimage and collision search on SHA-1"},
	}

	for _, ex := range examples {
		yellow.Printf("  rijndael example %s\n", ex.cmd)
		fmt.Printf("    %s - %s\n\n", ex.title, ex.desc)
	}

	fmt.Println("Run any example to see detailed instructions and commands.")
	fmt.Println()

	return nil
}

func showExample(scenario string) error {
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)
	red := color.New(color.FgRed, color.Bold)

	fmt.Println()

	switch strings.ToLower(scenario) {
	case "blocks":
		green.Println("📖 EXAMPLE: Encrypt and Decrypt a Block")
		fmt.Println("=" + strings.Repeat("=", 40))
		fmt.Println()

		cyan.Println("Scenario:")
		fmt.Println("You want to run one 16-byte block through AES and check the")
		fmt.Println("result against a value you can verify independently.")
		fmt.Println()

		yellow.Println("Step 1: Encrypt a block")
		fmt.Println()
		fmt.Println("  rijndael encrypt \\")
		fmt.Println("    --key 000102030405060708090a0b0c0d0e0f \\")
		fmt.Println("    --block 00112233445566778899aabbccddeeff")
		fmt.Println()
		fmt.Println("The output block is 69c4e0d86a7b0430d8cdb78070b4c55a, the")
		fmt.Println("value published in FIPS 197 Appendix C.1.")
		fmt.Println()

		yellow.Println("Step 2: Decrypt it back")
		fmt.Println()
		fmt.Println("  rijndael decrypt \\")
		fmt.Println("    --key 000102030405060708090a0b0c0d0e0f \\")
		fmt.Println("    --block 69c4e0d86a7b0430d8cdb78070b4c55a")
		fmt.Println()

		yellow.Println("Step 3: Try the longer key sizes")
		fmt.Println()
		fmt.Println("A 24-byte key selects AES-192 (12 rounds), a 32-byte key")
		fmt.Println("selects AES-256 (14 rounds). The key size is inferred from")
		fmt.Println("the hex length, there is no flag for it.")
		fmt.Println()

		red.Println("⚠️  Security Notes:")
		fmt.Println("- This encrypts ONE raw block. It is a study tool, not a")
		fmt.Println("  file encryption tool.")
		fmt.Println("- Real protocols wrap the block cipher in a mode with an IV")
		fmt.Println("  and authentication. Use established tooling for real data.")
		fmt.Println()

		green.Println("💡 Tips:")
		fmt.Println("- Omit --key to be prompted with hidden input")
		fmt.Println("- Pipe the block in with --stdin")
		fmt.Println("- Add --json for machine-readable output")

	case "trace":
		green.Println("📖 EXAMPLE: Watch the Rounds")
		fmt.Println("=" + strings.Repeat("=", 40))
		fmt.Println()

		cyan.Println("Scenario:")
		fmt.Println("You are studying how AES transforms the state and want to see")
		fmt.Println("every intermediate value, exactly as the standard prints them.")
		fmt.Println()

		yellow.Println("Step 1: Trace an encryption")
		fmt.Println()
		fmt.Println("  rijndael encrypt \\")
		fmt.Println("    --key 000102030405060708090a0b0c0d0e0f \\")
		fmt.Println("    --block 00112233445566778899aabbccddeeff \\")
		fmt.Println("    --trace")
		fmt.Println()
		fmt.Println("Each line shows one step of one round:")
		fmt.Println()
		fmt.Println("  round[ 1].start    00102030405060708090a0b0c0d0e0f0")
		fmt.Println("  round[ 1].s_box    63cab7040953d051cd60e0e7ba70e18c")
		fmt.Println("  round[ 1].s_row    6353e08c0960e104cd70b751bacad0e7")
		fmt.Println("  round[ 1].m_col    5f72641557f5bc92f7be3b291db9f91a")
		fmt.Println()

		yellow.Println("Step 2: Trace the decryption")
		fmt.Println()
		fmt.Println("  rijndael decrypt \\")
		fmt.Println("    --key 000102030405060708090a0b0c0d0e0f \\")
		fmt.Println("    --block 69c4e0d86a7b0430d8cdb78070b4c55a \\")
		fmt.Println("    --trace")
		fmt.Println()
		fmt.Println("Inverse steps carry an i prefix: istart, is_box, is_row,")
		fmt.Println("ik_add. The round numbering counts down through the same")
		fmt.Println("states the encryption produced.")
		fmt.Println()

		yellow.Println("Step 3: Compare against the standard")
		fmt.Println()
		fmt.Println("With the key and block above, the trace reproduces the")
		fmt.Println("FIPS 197 Appendix C.1 walkthrough line for line, so you can")
		fmt.Println("check any step against the published document.")
		fmt.Println()

		green.Println("💡 Tips:")
		fmt.Println("- Traces work for all three key sizes (10/12/14 rounds)")
		fmt.Println("- With --json the trace lines ride along in the result")
		fmt.Println("- k_sch lines show the round keys from the key schedule")

	case "derive":
		green.Println("📖 EXAMPLE: Derive Keys from Passphrases")
		fmt.Println("=" + strings.Repeat("=", 40))
		fmt.Println()

		cyan.Println("Scenario:")
		fmt.Println("You want a cipher key from something you can remember instead")
		fmt.Println("of 32 hex digits.")
		fmt.Println()

		yellow.Println("Step 1: Derive a key")
		fmt.Println()
		fmt.Println("  rijndael derive")
		fmt.Println()
		fmt.Println("Enter your passphrase at the hidden prompt. The output shows")
		fmt.Println("the random salt and the derived key.")
		fmt.Println()

		yellow.Println("Step 2: Use the key")
		fmt.Println()
		fmt.Println("  rijndael encrypt --key <derived-key> --block <your-block>")
		fmt.Println()

		yellow.Println("Step 3: Derive the same key again")
		fmt.Println()
		fmt.Println("Pass the salt back in to reproduce the key:")
		fmt.Println()
		fmt.Println("  rijndael derive --salt <salt-from-step-1>")
		fmt.Println()
		fmt.Println("The same passphrase, salt, and iteration count always give")
		fmt.Println("the same key.")
		fmt.Println()

		yellow.Println("Step 4: Tune the parameters")
		fmt.Println()
		fmt.Println("  rijndael derive --key-size 32 --iterations 10000")
		fmt.Println()
		fmt.Println("Key sizes 16, 24, and 32 bytes select AES-128/192/256.")
		fmt.Println("Defaults live in the config file.")
		fmt.Println()

		red.Println("⚠️  Security Notes:")
		fmt.Println("- The salt is not secret, but losing it loses the key")
		fmt.Println("- More iterations slow down passphrase guessing")
		fmt.Println("- A short passphrase stays weak no matter the iteration count")

	case "store":
		green.Println("📖 EXAMPLE: Keep Keys in an Encrypted Store")
		fmt.Println("=" + strings.Repeat("=", 40))
		fmt.Println()

		cyan.Println("Scenario:")
		fmt.Println("You are working with a few keys across sessions and do not")
		fmt.Println("want raw hex sitting in your shell history.")
		fmt.Println()

		yellow.Println("Step 1: Save a key under a name")
		fmt.Println()
		fmt.Println("  rijndael keys --save lab-key --notes \"appendix C.1\"")
		fmt.Println()
		fmt.Println("You are prompted for the key and then for a store passphrase.")
		fmt.Println("The store file is created on the first save.")
		fmt.Println()

		yellow.Println("Step 2: See what is stored")
		fmt.Println()
		fmt.Println("  rijndael keys --list")
		fmt.Println()
		fmt.Println("Listing shows names, sizes, and dates, never key material.")
		fmt.Println()

		yellow.Println("Step 3: Bring a key back")
		fmt.Println()
		fmt.Println("  rijndael keys --show lab-key")
		fmt.Println("  rijndael encrypt --key <shown-key> --block <your-block>")
		fmt.Println()

		yellow.Println("Step 4: Drop a key you are done with")
		fmt.Println()
		fmt.Println("  rijndael keys --remove lab-key")
		fmt.Println()

		red.Println("⚠️  Security Notes:")
		fmt.Println("- The store is sealed with argon2id and ChaCha20-Poly1305,")
		fmt.Println("  not with the study cipher this tool implements")
		fmt.Println("- There is no recovery: losing the store passphrase loses")
		fmt.Println("  every key in the store")

	case "attack":
		green.Println("📖 EXAMPLE: Truncated Hash Attacks")
		fmt.Println("=" + strings.Repeat("=", 40))
		fmt.Println()

		cyan.Println("Scenario:")
		fmt.Println("You want to see the gap between preimage and collision")
		fmt.Println("resistance with real measurements instead of formulas.")
		fmt.Println()

		yellow.Println("Step 1: Hash something first")
		fmt.Println()
		fmt.Println("  rijndael digest \"The quick brown fox jumps over the lazy dog\"")
		fmt.Println()
		fmt.Println("This is the SHA-1 the attacks run against, truncated to a")
		fmt.Println("few bits so the searches finish quickly.")
		fmt.Println()

		yellow.Println("Step 2: Run both experiments")
		fmt.Println()
		fmt.Println("  rijndael attack --bits 16")
		fmt.Println()
		fmt.Println("Preimage search needs about 2^16 = 65536 attempts per hit.")
		fmt.Println("Collision search needs only about 320, the birthday bound")
		fmt.Println("sqrt(pi/2 * 2^16). That gap is the whole lesson.")
		fmt.Println()

		yellow.Println("Step 3: Make a run reproducible")
		fmt.Println()
		fmt.Println("  rijndael attack --experiment collision --bits 20 --seed 42")
		fmt.Println()
		fmt.Println("A fixed seed replays the exact same random messages, so the")
		fmt.Println("numbers come out identical every run.")
		fmt.Println()

		yellow.Println("Step 4: Push the width up")
		fmt.Println()
		fmt.Println("  rijndael attack --experiment preimage --bits 24 --trials 5")
		fmt.Println()
		fmt.Println("Each extra bit doubles the preimage work. Past ~24 bits a")
		fmt.Println("single trial takes noticeable time; 28 is the cap.")
		fmt.Println()

		green.Println("💡 Tips:")
		fmt.Println("- Defaults for bits and trials live in the config file")
		fmt.Println("- Use --json to collect results for plotting")
		fmt.Println("- Mean/expected ratios near 1.0 confirm the theory")

	default:
		return fmt.Errorf("unknown example: %s", scenario)
	}

	fmt.Println()
	cyan.Println("Learn more:")
	fmt.Println("  rijndael example            (show all examples)")
	fmt.Println("  rijndael <command> --help   (detailed help)")
	fmt.Println()

	return nil
}
