package generator

import (
	"strings"
	"testing"
)

func TestGenerate_ClassesAndLength(t *testing.T) {
	for _, length := range []int{4, 5, 8, 16, 64, 1024} {
		for i := 0; i < 50; i++ {
			pw, err := Generate(length)
			if err != nil {
				t.Fatalf("Generate(%d) error = %v", length, err)
			}
			if len(pw) != length {
				t.Fatalf("Generate(%d) returned %d characters", length, len(pw))
			}
			if !strings.ContainsAny(pw, upper) {
				t.Errorf("Generate(%d) = %q has no uppercase letter", length, pw)
			}
			if !strings.ContainsAny(pw, lower) {
				t.Errorf("Generate(%d) = %q has no lowercase letter", length, pw)
			}
			if !strings.ContainsAny(pw, digits) {
				t.Errorf("Generate(%d) = %q has no digit", length, pw)
			}
			if !strings.ContainsAny(pw, symbols) {
				t.Errorf("Generate(%d) = %q has no symbol", length, pw)
			}
			for _, r := range pw {
				if !strings.ContainsRune(alphabet, r) {
					t.Errorf("Generate(%d) = %q contains %q outside the alphabet", length, pw, r)
				}
			}
		}
	}
}

func TestGenerate_InvalidLength(t *testing.T) {
	for _, length := range []int{-1, 0, 1, 3} {
		if _, err := Generate(length); err != ErrInvalidLength {
			t.Errorf("Generate(%d) error = %v, want %v", length, err, ErrInvalidLength)
		}
	}
}

func TestGenerate_SeedPositionsVary(t *testing.T) {
	// With a shuffle, the first character should not always be uppercase.
	firstUpper := 0
	const runs = 200
	for i := 0; i < runs; i++ {
		pw, err := Generate(MinLength)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if strings.ContainsRune(upper, rune(pw[0])) {
			firstUpper++
		}
	}
	if firstUpper == runs {
		t.Error("Generate() always placed an uppercase letter first; seed positions are predictable")
	}
}

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		pw, err := Generate(DefaultLength)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if seen[pw] {
			t.Fatalf("Generate() repeated %q", pw)
		}
		seen[pw] = true
	}
}
