package mnemonic

import (
	"errors"
	"fmt"
	"strings"

	bip39 "github.com/tyler-smith/go-bip39"
)

var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// Normalize lowercases the phrase and collapses runs of whitespace.
func Normalize(mn string) string {
	return strings.Join(strings.Fields(strings.ToLower(mn)), " ")
}

// ToSeed checks the BIP-39 checksum and returns the 64-byte seed for mn and
// passphrase.
func ToSeed(mn, passphrase string) ([]byte, error) {
	mn = Normalize(mn)
	if mn == "" {
		return nil, fmt.Errorf("%w: empty phrase", ErrInvalidMnemonic)
	}
	seed, err := bip39.NewSeedWithErrorChecking(mn, passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMnemonic, err)
	}
	return seed, nil
}

// WordCount returns the number of words in the normalized phrase.
func WordCount(mn string) int {
	return len(strings.Fields(mn))
}
