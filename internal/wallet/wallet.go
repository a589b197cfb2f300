// Package wallet holds the records produced by the generator.
package wallet

import (
	"fmt"
	"strings"
)

// BIP-44 levels used for every generated wallet. Only Index varies.
const (
	Purpose  uint32 = 44
	CoinType uint32 = 118
	Account  uint32 = 0
	Change   uint32 = 0
)

// Path is a BIP-44 derivation path. Purpose, CoinType and Account are hardened.
type Path struct {
	Purpose  uint32
	CoinType uint32
	Account  uint32
	Change   uint32
	Index    uint64
}

// PathAt returns the path of the wallet with the given index.
func PathAt(index uint64) Path {
	return Path{
		Purpose:  Purpose,
		CoinType: CoinType,
		Account:  Account,
		Change:   Change,
		Index:    index,
	}
}

// String renders the path as m/44'/118'/0'/0/{index}.
func (p Path) String() string {
	var b strings.Builder
	b.Grow(24)
	fmt.Fprintf(&b, "m/%d'/%d'/%d'/%d/%d", p.Purpose, p.CoinType, p.Account, p.Change, p.Index)
	return b.String()
}

// Wallet is one generated key pair with its addresses. Field names and JSON
// tags are the on-disk format.
type Wallet struct {
	Address        string `json:"address"`
	EVMAddress     string `json:"evmAddress,omitempty"`
	PubKey         string `json:"pubkey"`
	PrivateKey     string `json:"privateKey"`
	DerivationPath string `json:"derivationPath"`
}

// Dropped records an index for which no wallet could be produced.
type Dropped struct {
	Index  uint64 `json:"index"`
	Path   string `json:"derivationPath"`
	Reason string `json:"reason"`
}
