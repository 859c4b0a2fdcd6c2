// Package phrase assembles diceware passphrases.
package phrase

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
)

// ErrNoWords means the supplied wordlist was empty.
var ErrNoWords = errors.New("wordlist is empty")

// Generate picks n words uniformly at random from list and joins them with
// sep. Randomness comes from crypto/rand; math/rand has no place in
// passphrase generation.
func Generate(list []string, n int, sep string) (string, error) {
	if len(list) == 0 {
		return "", ErrNoWords
	}
	if n <= 0 {
		return "", fmt.Errorf("word count must be positive, got %d", n)
	}

	limit := big.NewInt(int64(len(list)))
	picked := make([]string, n)
	for i := range picked {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("failed to read random index: %w", err)
		}
		picked[i] = list[idx.Int64()]
	}

	return strings.Join(picked, sep), nil
}

// Entropy returns the passphrase strength in bits for n words drawn
// uniformly from a list of listLen distinct words.
func Entropy(listLen, n int) float64 {
	if listLen <= 1 || n <= 0 {
		return 0
	}
	return float64(n) * math.Log2(float64(listLen))
}
