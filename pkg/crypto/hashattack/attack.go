// Package hashattack measures the empirical cost of brute-force
// preimage and collision search against truncated SHA-1 digests.
//
// Truncating to n bits keeps only the digest's low n bits, shrinking
// the search space to 2^n so the generic attacks finish in reasonable
// time. Comparing the measured work against the 2^n preimage cost and
// the square-root birthday cost is the whole point of the exercise.
package hashattack

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"

	"github.com/rwclarke/rijndael/pkg/crypto/sha1"
)

// MaxBits caps the truncation width so a single search stays tractable
// on one machine.
const MaxBits = 28

const (
	DefaultTrials     = 50
	DefaultMessageLen = 40
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Config describes one experiment run.
type Config struct {
	// Bits is the truncation width, 1 through MaxBits.
	Bits int

	// Trials is how many independent searches to average over.
	Trials int

	// MessageLen is the length of each random candidate message.
	MessageLen int

	// Seed fixes the random sequence; equal seeds reproduce runs
	// exactly.
	Seed int64
}

// DefaultConfig returns a Config for the given truncation width with
// the reference trial count and message length.
func DefaultConfig(bits int) Config {
	return Config{
		Bits:       bits,
		Trials:     DefaultTrials,
		MessageLen: DefaultMessageLen,
	}
}

func (c *Config) Validate() error {
	if c.Bits < 1 {
		return fmt.Errorf("bits must be at least 1, got %d", c.Bits)
	}
	if c.Bits > MaxBits {
		return fmt.Errorf("bits cannot exceed %d, got %d", MaxBits, c.Bits)
	}
	if c.Trials < 1 {
		return fmt.Errorf("trials must be at least 1, got %d", c.Trials)
	}
	if c.MessageLen < 1 {
		return fmt.Errorf("message length must be at least 1, got %d", c.MessageLen)
	}
	return nil
}

// Summary aggregates the per-trial work counts of one experiment.
type Summary struct {
	Bits     int     `json:"bits"`
	Trials   int     `json:"trials"`
	Mean     float64 `json:"mean"`
	Min      int     `json:"min"`
	Max      int     `json:"max"`
	Expected float64 `json:"expected"`
}

// Preimage counts how many random candidates it takes to hit the
// truncated digest of a fixed random message, per trial. The expected
// work is 2^bits.
func Preimage(config Config) (Summary, error) {
	if err := config.Validate(); err != nil {
		return Summary{}, fmt.Errorf("invalid config: %w", err)
	}

	rng := rand.New(rand.NewSource(config.Seed))
	counts := make([]int, config.Trials)

	for trial := range counts {
		target := Truncate(sha1.Sum(randomMessage(rng, config.MessageLen)), config.Bits)

		attempts := 0
		for {
			attempts++
			candidate := Truncate(sha1.Sum(randomMessage(rng, config.MessageLen)), config.Bits)
			if candidate == target {
				break
			}
		}
		counts[trial] = attempts
	}

	return summarize(config, counts, math.Exp2(float64(config.Bits))), nil
}

// Collision counts how many random messages it takes before two
// distinct ones share a truncated digest, per trial. The birthday
// bound puts the expected work near sqrt(pi/2 * 2^bits).
func Collision(config Config) (Summary, error) {
	if err := config.Validate(); err != nil {
		return Summary{}, fmt.Errorf("invalid config: %w", err)
	}

	rng := rand.New(rand.NewSource(config.Seed))
	counts := make([]int, config.Trials)

	for trial := range counts {
		seen := make(map[uint32]string)

		attempts := 0
		for {
			attempts++
			message := randomMessage(rng, config.MessageLen)
			value := Truncate(sha1.Sum(message), config.Bits)

			// A repeated message is not a collision, only a
			// repeated digest of distinct messages is.
			if prev, ok := seen[value]; ok && prev != string(message) {
				break
			}
			seen[value] = string(message)
		}
		counts[trial] = attempts
	}

	expected := math.Sqrt(math.Pi / 2 * math.Exp2(float64(config.Bits)))
	return summarize(config, counts, expected), nil
}

// Truncate keeps the low bits of the digest, reading them from the
// trailing bytes. bits must be between 1 and MaxBits.
func Truncate(digest [sha1.Size]byte, bits int) uint32 {
	tail := binary.BigEndian.Uint32(digest[sha1.Size-4:])
	return tail & (1<<bits - 1)
}

func randomMessage(rng *rand.Rand, length int) []byte {
	msg := make([]byte, length)
	for i := range msg {
		msg[i] = asciiLetters[rng.Intn(len(asciiLetters))]
	}
	return msg
}

func summarize(config Config, counts []int, expected float64) Summary {
	lo, hi, total := counts[0], counts[0], 0
	for _, c := range counts {
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
		total += c
	}

	return Summary{
		Bits:     config.Bits,
		Trials:   config.Trials,
		Mean:     float64(total) / float64(len(counts)),
		Min:      lo,
		Max:      hi,
		Expected: expected,
	}
}
