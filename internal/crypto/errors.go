package crypto

import "errors"

var (
	// ErrInvalidSeed is returned when the seed cannot produce a master key
	// (wrong length). It is a configuration error and aborts the run.
	ErrInvalidSeed = errors.New("invalid seed")

	// ErrInvalidPrefix is returned when the prefix is not a valid bech32
	// human-readable part.
	ErrInvalidPrefix = errors.New("invalid bech32 prefix")

	// ErrInvalidVariant is returned for an unknown address variant.
	ErrInvalidVariant = errors.New("invalid key type")

	// ErrDerivation means a derived scalar was zero or not below the curve order.
	ErrDerivation = errors.New("key derivation failed")

	// ErrEncode means the address could not be bech32 encoded.
	ErrEncode = errors.New("address encoding failed")
)
