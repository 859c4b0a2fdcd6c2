package phrase

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	list := []string{"alpha", "bravo", "charlie", "delta", "echo"}

	got, err := Generate(list, 4, "-")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	words := strings.Split(got, "-")
	if len(words) != 4 {
		t.Fatalf("Generate produced %d words, want 4: %q", len(words), got)
	}
	for _, w := range words {
		found := false
		for _, candidate := range list {
			if w == candidate {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("word %q is not in the list", w)
		}
	}
}

func TestGenerateSingleWordList(t *testing.T) {
	got, err := Generate([]string{"only"}, 3, " ")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if got != "only only only" {
		t.Errorf("Generate = %q, want %q", got, "only only only")
	}
}

func TestGenerateErrors(t *testing.T) {
	if _, err := Generate(nil, 3, " "); !errors.Is(err, ErrNoWords) {
		t.Errorf("Generate(nil, ...) error = %v, want ErrNoWords", err)
	}
	if _, err := Generate([]string{"a"}, 0, " "); err == nil {
		t.Error("Generate with zero words returned nil error")
	}
	if _, err := Generate([]string{"a"}, -1, " "); err == nil {
		t.Error("Generate with negative words returned nil error")
	}
}

func TestEntropy(t *testing.T) {
	// Six words from the 7776-word standard list is the classic 77.5 bits.
	got := Entropy(7776, 6)
	want := 6 * math.Log2(7776)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Entropy(7776, 6) = %v, want %v", got, want)
	}
	if math.Abs(want-77.548) > 0.01 {
		t.Errorf("Entropy(7776, 6) = %v, want about 77.55 bits", want)
	}

	if got := Entropy(0, 6); got != 0 {
		t.Errorf("Entropy(0, 6) = %v, want 0", got)
	}
	if got := Entropy(1, 6); got != 0 {
		t.Errorf("Entropy(1, 6) = %v, want 0", got)
	}
	if got := Entropy(7776, 0); got != 0 {
		t.Errorf("Entropy(7776, 0) = %v, want 0", got)
	}
}
