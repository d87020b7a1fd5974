// Package generator produces random passwords that contain at least one
// character from each of the upper, lower, digit and symbol classes.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const (
	upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lower   = "abcdefghijklmnopqrstuvwxyz"
	digits  = "0123456789"
	symbols = "!@#$%^&*()_+-=[]{}|;:',.<>/?"

	alphabet = upper + lower + digits + symbols
)

// MinLength is the shortest password that can hold one of each class.
const MinLength = 4

// DefaultLength is the length used when the caller does not choose one.
const DefaultLength = 16

// ErrInvalidLength is returned when the requested length is below MinLength.
var ErrInvalidLength = errors.New("password length must be at least 4")

// Generate returns a random password of exactly length characters.
func Generate(length int) (string, error) {
	if length < MinLength {
		return "", ErrInvalidLength
	}

	out := make([]byte, 0, length)
	for _, class := range []string{upper, lower, digits, symbols} {
		c, err := pick(class)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	for len(out) < length {
		c, err := pick(alphabet)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	// Fisher-Yates so the seeded class characters land anywhere.
	for i := len(out) - 1; i > 0; i-- {
		j, err := randIntn(i + 1)
		if err != nil {
			return "", err
		}
		out[i], out[j] = out[j], out[i]
	}

	return string(out), nil
}

func pick(set string) (byte, error) {
	i, err := randIntn(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func randIntn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random: %w", err)
	}
	return int(v.Int64()), nil
}
