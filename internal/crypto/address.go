package crypto

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

// MaxPrefixLen is the longest human-readable part BIP-173 allows.
const MaxPrefixLen = 83

// AddressLen is the byte length of the hash both pipelines encode.
const AddressLen = 20

// Addresses is the output of the encoder for one public key.
type Addresses struct {
	Bech32 string
	// EVM is empty for VariantStandard.
	EVM string
	// Hash is the 20 bytes under the bech32 encoding.
	Hash []byte
}

// ValidatePrefix checks that prefix is a usable bech32 human-readable part and
// returns its lowercase form.
func ValidatePrefix(prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidPrefix)
	}
	if len(prefix) > MaxPrefixLen {
		return "", fmt.Errorf("%w: %d characters, max %d", ErrInvalidPrefix, len(prefix), MaxPrefixLen)
	}

	var hasLower, hasUpper bool
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		if c < 33 || c > 126 {
			return "", fmt.Errorf("%w: character %q at position %d", ErrInvalidPrefix, c, i)
		}
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		}
	}
	if hasLower && hasUpper {
		return "", fmt.Errorf("%w: mixed case %q", ErrInvalidPrefix, prefix)
	}
	return strings.ToLower(prefix), nil
}

// Encoder turns public keys into addresses for one variant and prefix. The
// prefix is validated once, in NewEncoder. Encoder holds no mutable state.
type Encoder struct {
	variant Variant
	hrp     string
}

// NewEncoder validates the variant and prefix.
func NewEncoder(variant Variant, prefix string) (*Encoder, error) {
	if variant != VariantStandard && variant != VariantEthCompatible {
		return nil, fmt.Errorf("%w: %s", ErrInvalidVariant, variant)
	}
	hrp, err := ValidatePrefix(prefix)
	if err != nil {
		return nil, err
	}
	return &Encoder{variant: variant, hrp: hrp}, nil
}

// Variant returns the variant the encoder was built with.
func (e *Encoder) Variant() Variant { return e.variant }

// Prefix returns the normalized human-readable part.
func (e *Encoder) Prefix() string { return e.hrp }

// Encode derives the address hash for pub and bech32 encodes it.
func (e *Encoder) Encode(pub *btcec.PublicKey) (Addresses, error) {
	switch e.variant {
	case VariantStandard:
		return encodeStandard(pub, e.hrp)
	case VariantEthCompatible:
		return encodeEthCompatible(pub, e.hrp)
	default:
		return Addresses{}, fmt.Errorf("%w: %s", ErrInvalidVariant, e.variant)
	}
}

// Encode is a one-shot convenience over NewEncoder and Encoder.Encode.
func Encode(pub *btcec.PublicKey, variant Variant, prefix string) (Addresses, error) {
	e, err := NewEncoder(variant, prefix)
	if err != nil {
		return Addresses{}, err
	}
	return e.Encode(pub)
}

// StandardHash is RIPEMD160(SHA256(compressed pubkey)).
func StandardHash(pub *btcec.PublicKey) []byte {
	return btcutil.Hash160(pub.SerializeCompressed())
}

func encodeStandard(pub *btcec.PublicKey, hrp string) (Addresses, error) {
	hash := StandardHash(pub)
	addr, err := Bech32(hrp, hash)
	if err != nil {
		return Addresses{}, err
	}
	return Addresses{Bech32: addr, Hash: hash}, nil
}

func encodeEthCompatible(pub *btcec.PublicKey, hrp string) (Addresses, error) {
	hash := EVMAddressBytes(pub)
	addr, err := Bech32(hrp, hash)
	if err != nil {
		return Addresses{}, err
	}
	return Addresses{Bech32: addr, EVM: EVMAddressHex(hash), Hash: hash}, nil
}

// Bech32 encodes data (8-bit bytes) under hrp with the BIP-173 checksum.
func Bech32(hrp string, data []byte) (string, error) {
	conv, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("%w: convert bits: %w", ErrEncode, err)
	}
	addr, err := bech32.Encode(hrp, conv)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return addr, nil
}
