package crypto

import (
	"fmt"
	"strings"
)

// Variant selects the hash pipeline used to turn a public key into an address.
type Variant int

const (
	// VariantStandard hashes the compressed key with SHA-256 then RIPEMD-160.
	VariantStandard Variant = iota
	// VariantEthCompatible hashes the uncompressed key with Keccak-256 and
	// keeps the last 20 bytes, as Ethereum does.
	VariantEthCompatible
)

func (v Variant) String() string {
	switch v {
	case VariantStandard:
		return "secp256k1"
	case VariantEthCompatible:
		return "ethsecp256k1"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// HashingNote is a short human description of the pipeline, used in the banner.
func (v Variant) HashingNote() string {
	if v == VariantEthCompatible {
		return "ethsecp256k1 (Keccak256 hashing)"
	}
	return "standard secp256k1 (SHA256+RIPEMD160 hashing)"
}

// ParseVariant accepts the command line names of the variants.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "secp256k1", "standard", "":
		return VariantStandard, nil
	case "ethsecp256k1", "eth", "evm":
		return VariantEthCompatible, nil
	default:
		return 0, fmt.Errorf("%w: %q (want secp256k1 or ethsecp256k1)", ErrInvalidVariant, s)
	}
}

// UnmarshalFlag lets go-flags parse a Variant directly.
func (v *Variant) UnmarshalFlag(value string) error {
	parsed, err := ParseVariant(value)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalFlag is the inverse of UnmarshalFlag.
func (v Variant) MarshalFlag() (string, error) {
	return v.String(), nil
}
