package crypto

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"

	"WalletGen/internal/wallet"
)

// PrivateScalar is a 32-byte secp256k1 private key, big endian.
type PrivateScalar [32]byte

// Hex returns the lowercase hex form without a 0x prefix.
func (s PrivateScalar) Hex() string {
	return hex.EncodeToString(s[:])
}

// PubKey returns the public key for s. The scalar must be in [1, n-1].
func (s PrivateScalar) PubKey() (*btcec.PublicKey, error) {
	if err := checkScalar(s[:]); err != nil {
		return nil, err
	}
	_, pub := btcec.PrivKeyFromBytes(s[:])
	return pub, nil
}

// ParsePrivateScalar decodes a hex private key (optionally 0x prefixed).
func ParsePrivateScalar(s string) (PrivateScalar, error) {
	var out PrivateScalar
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return out, fmt.Errorf("decode private key: %w", err)
	}
	if len(b) != len(out) {
		return out, fmt.Errorf("decode private key: want %d bytes, got %d", len(out), len(b))
	}
	if err := checkScalar(b); err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

func checkScalar(b []byte) error {
	var k btcec.ModNScalar
	if overflow := k.SetByteSlice(b); overflow {
		return fmt.Errorf("%w: scalar not below curve order", ErrDerivation)
	}
	if k.IsZero() {
		return fmt.Errorf("%w: zero scalar", ErrDerivation)
	}
	return nil
}

// Deriver derives leaf keys m/44'/118'/0'/0/{index} from one seed. The
// hardened part of the path is derived once in NewDeriver.
//
// A Deriver is not safe for concurrent use: hdkeychain caches the parent
// public key lazily. Each worker owns its own.
type Deriver struct {
	change *hdkeychain.ExtendedKey
}

// NewDeriver builds the master key from seed and walks the hardened levels
// down to the change key. A failure here affects every index, so callers treat
// it as fatal for the run.
func NewDeriver(seed []byte) (*Deriver, error) {
	if len(seed) < hdkeychain.MinSeedBytes || len(seed) > hdkeychain.MaxSeedBytes {
		return nil, fmt.Errorf("%w: length %d not in [%d, %d]",
			ErrInvalidSeed, len(seed), hdkeychain.MinSeedBytes, hdkeychain.MaxSeedBytes)
	}

	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, derivationErr("master key", err)
	}

	// m/44'
	purpose, err := master.Derive(hdkeychain.HardenedKeyStart + wallet.Purpose)
	if err != nil {
		return nil, derivationErr("purpose key", err)
	}

	// m/44'/118'
	coin, err := purpose.Derive(hdkeychain.HardenedKeyStart + wallet.CoinType)
	if err != nil {
		return nil, derivationErr("coin type key", err)
	}

	// m/44'/118'/0'
	account, err := coin.Derive(hdkeychain.HardenedKeyStart + wallet.Account)
	if err != nil {
		return nil, derivationErr("account key", err)
	}

	// m/44'/118'/0'/0
	change, err := account.Derive(wallet.Change)
	if err != nil {
		return nil, derivationErr("change key", err)
	}

	// Warm the parent pubkey cache so the first Derive does not pay for it.
	if _, err := change.ECPubKey(); err != nil {
		return nil, derivationErr("change pubkey", err)
	}

	return &Deriver{change: change}, nil
}

// Derive returns the private scalar at m/44'/118'/0'/0/{index}.
func (d *Deriver) Derive(index uint64) (PrivateScalar, error) {
	var out PrivateScalar
	if index >= uint64(hdkeychain.HardenedKeyStart) {
		return out, fmt.Errorf("%w: index %d is in the hardened range", ErrDerivation, index)
	}

	child, err := d.change.Derive(uint32(index))
	if err != nil {
		return out, derivationErr(fmt.Sprintf("child key at index %d", index), err)
	}

	priv, err := child.ECPrivKey()
	if err != nil {
		return out, derivationErr(fmt.Sprintf("private key at index %d", index), err)
	}

	copy(out[:], priv.Serialize())
	return out, nil
}

// DeriveKey is the stateless form of Deriver.Derive.
func DeriveKey(seed []byte, index uint64) (PrivateScalar, error) {
	d, err := NewDeriver(seed)
	if err != nil {
		return PrivateScalar{}, err
	}
	return d.Derive(index)
}

func derivationErr(step string, err error) error {
	if errors.Is(err, hdkeychain.ErrInvalidSeedLen) {
		return fmt.Errorf("%w: %s: %w", ErrInvalidSeed, step, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrDerivation, step, err)
}
