package geohash

import (
	"errors"
	"strings"
	"testing"
)

func TestAlphabetRoundTrip(t *testing.T) {
	for v := 0; v < 32; v++ {
		c := mustSymbol(v)
		got, err := valueOf(c)
		if err != nil {
			t.Fatalf("valueOf(%q) failed: %v", c, err)
		}
		if got != v {
			t.Errorf("valueOf(mustSymbol(%d)) = %d", v, got)
		}
	}
}

func TestValueOfCaseInsensitive(t *testing.T) {
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if c < 'a' || c > 'z' {
			continue
		}
		upper := c - 'a' + 'A'
		want, err := valueOf(c)
		if err != nil {
			t.Fatalf("valueOf(%q) failed: %v", c, err)
		}
		got, err := valueOf(upper)
		if err != nil {
			t.Fatalf("valueOf(%q) failed: %v", upper, err)
		}
		if got != want {
			t.Errorf("valueOf(%q) = %d, want %d", upper, got, want)
		}
	}
}

func TestValueOfExcludedLetters(t *testing.T) {
	// The alphabet drops a, i, l and o; they are invalid in either case.
	for _, c := range []byte{'a', 'i', 'l', 'o', 'A', 'I', 'L', 'O'} {
		if _, err := valueOf(c); !errors.Is(err, ErrInvalidCharacter) {
			t.Errorf("valueOf(%q) = %v, want ErrInvalidCharacter", c, err)
		}
	}
}

func TestValueOfNonAlphanumeric(t *testing.T) {
	for _, c := range []byte{' ', '-', '_', '!', '/', 0, 0xff} {
		if _, err := valueOf(c); !errors.Is(err, ErrInvalidCharacter) {
			t.Errorf("valueOf(%#x) = %v, want ErrInvalidCharacter", c, err)
		}
	}
}

func TestAlphabetShape(t *testing.T) {
	if len(alphabet) != 32 {
		t.Fatalf("alphabet has %d symbols, want 32", len(alphabet))
	}
	for _, c := range "ailo" {
		if strings.ContainsRune(alphabet, c) {
			t.Errorf("alphabet must not contain %q", c)
		}
	}
	if alphabet != strings.ToLower(alphabet) {
		t.Error("alphabet must be lowercase")
	}
}

func TestMustSymbolContractViolation(t *testing.T) {
	for _, v := range []int{-1, 32} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("mustSymbol(%d) did not panic", v)
				}
			}()
			mustSymbol(v)
		}()
	}
}
