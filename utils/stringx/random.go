// File: random.go
// Title: Random String and Identifier Generation
// Description: Implements random string generation for identifiers and
//              test fixtures plus UUID-based ID helpers. Uses crypto/rand
//              for all randomness.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation with secure random generation

package stringx

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/google/uuid"

	"github.com/msto63/dkit/core/errors"
)

const (
	// Character sets for random string generation
	LettersLowercase = "abcdefghijklmnopqrstuvwxyz"
	LettersUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Letters          = LettersLowercase + LettersUppercase
	Digits           = "0123456789"
	Alphanumeric     = Letters + Digits

	// Safe characters for URLs and filenames (excluding ambiguous characters)
	URLSafe = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_"

	// Human-readable characters (excluding visually similar characters like 0, O, l, 1)
	HumanReadable = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

const (
	// DefaultRandomLength is the length RandomStringDefault generates.
	DefaultRandomLength = 10

	// DefaultRandomIntMax is the exclusive upper bound of RandomIntDefault.
	DefaultRandomIntMax = 10000
)

// RandomFrom generates a cryptographically secure random string of the
// specified length using the provided character set. If charset is empty,
// it defaults to Alphanumeric.
func RandomFrom(charset string, length int) (string, error) {
	if length <= 0 {
		return "", nil
	}

	if charset == "" {
		charset = Alphanumeric
	}

	result := make([]byte, length)
	charsetLen := big.NewInt(int64(len(charset)))

	for i := 0; i < length; i++ {
		randomIndex, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			return "", err
		}
		result[i] = charset[randomIndex.Int64()]
	}

	return string(result), nil
}

// RandomString generates a random lowercase string of the specified length.
func RandomString(length int) (string, error) {
	return RandomFrom(LettersLowercase, length)
}

// RandomStringDefault generates a random lowercase string of the default length.
func RandomStringDefault() (string, error) {
	return RandomString(DefaultRandomLength)
}

// RandomStringPrefix generates a random lowercase string of the specified
// length with the given prefix prepended. The length excludes the prefix.
func RandomStringPrefix(length int, prefix string) (string, error) {
	s, err := RandomString(length)
	if err != nil {
		return "", err
	}
	return prefix + s, nil
}

// RandomStringAffix generates a random lowercase string of the specified
// length surrounded by the given prefix and suffix. The length excludes
// both affixes; empty affixes are fine.
func RandomStringAffix(length int, prefix, suffix string) (string, error) {
	s, err := RandomString(length)
	if err != nil {
		return "", err
	}
	return prefix + s + suffix, nil
}

// RandomAlphanumeric generates a random alphanumeric string of the specified length.
// This is a convenience function that uses the Alphanumeric character set.
func RandomAlphanumeric(length int) (string, error) {
	return RandomFrom(Alphanumeric, length)
}

// RandomHex generates a random hexadecimal string of the specified length.
// The resulting string will contain only characters 0-9 and a-f.
func RandomHex(length int) (string, error) {
	return RandomFrom("0123456789abcdef", length)
}

// RandomURLSafe generates a random URL-safe string of the specified length.
// The resulting string is safe to use in URLs and filenames.
func RandomURLSafe(length int) (string, error) {
	return RandomFrom(URLSafe, length)
}

// RandomHumanReadable generates a random human-readable string of the specified length.
// Excludes visually similar characters to reduce transcription errors.
func RandomHumanReadable(length int) (string, error) {
	return RandomFrom(HumanReadable, length)
}

// RandomInt generates a random integer in [min, max). Both bounds must be
// non-negative and min must be less than max.
func RandomInt(min, max int) (int, error) {
	if min < 0 || max < 0 {
		return 0, errors.StringxInvalidInput("random_int", "negative bounds")
	}
	if min >= max {
		return 0, errors.StringxInvalidInput("random_int", "min must be less than max")
	}

	n, err := rand.Int(rand.Reader, big.NewInt(int64(max-min)))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + min, nil
}

// RandomIntMax generates a random integer in [0, max).
func RandomIntMax(max int) (int, error) {
	return RandomInt(0, max)
}

// RandomIntDefault generates a random integer in [0, DefaultRandomIntMax).
func RandomIntDefault() (int, error) {
	return RandomInt(0, DefaultRandomIntMax)
}

// NewID returns a new random identifier in canonical UUID form,
// e.g. "9cbdb5d1-ad03-4ff1-9963-3e7c8b3bcd08".
func NewID() string {
	return uuid.NewString()
}

// NewShortID returns the first length characters of a new random UUID's
// hex encoding. length is clamped to the 32 hex characters available.
func NewShortID(length int) string {
	if length <= 0 {
		return ""
	}
	id := uuid.New()
	hex := strings.ReplaceAll(id.String(), "-", "")
	if length > len(hex) {
		length = len(hex)
	}
	return hex[:length]
}
