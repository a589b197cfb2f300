package generator

import (
	"encoding/base64"

	"WalletGen/internal/crypto"
	"WalletGen/internal/wallet"
)

// keySource yields the private scalar of a leaf index. *crypto.Deriver is the
// production implementation.
type keySource interface {
	Derive(index uint64) (crypto.PrivateScalar, error)
}

// newKeySource builds the per-worker derivation context.
var newKeySource = func(seed []byte) (keySource, error) {
	return crypto.NewDeriver(seed)
}

// assembler turns an index into a wallet. One per worker goroutine.
type assembler struct {
	keys    keySource
	encoder *crypto.Encoder
}

func (a *assembler) assemble(index uint64) (wallet.Wallet, error) {
	key, err := a.keys.Derive(index)
	if err != nil {
		return wallet.Wallet{}, err
	}

	pub, err := key.PubKey()
	if err != nil {
		return wallet.Wallet{}, err
	}

	addrs, err := a.encoder.Encode(pub)
	if err != nil {
		return wallet.Wallet{}, err
	}

	return wallet.Wallet{
		Address:        addrs.Bech32,
		EVMAddress:     addrs.EVM,
		PubKey:         base64.StdEncoding.EncodeToString(pub.SerializeCompressed()),
		PrivateKey:     key.Hex(),
		DerivationPath: wallet.PathAt(index).String(),
	}, nil
}

// Assemble builds the wallet at index from scratch. Run uses a per-worker
// assembler instead; this is for one-off lookups and checks.
func Assemble(seed []byte, index uint64, variant crypto.Variant, prefix string) (wallet.Wallet, error) {
	enc, err := crypto.NewEncoder(variant, prefix)
	if err != nil {
		return wallet.Wallet{}, err
	}
	keys, err := newKeySource(seed)
	if err != nil {
		return wallet.Wallet{}, err
	}
	a := &assembler{keys: keys, encoder: enc}
	return a.assemble(index)
}
