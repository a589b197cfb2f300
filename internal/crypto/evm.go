package crypto

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// EVMAddressBytes returns the last 20 bytes of Keccak256 over the 64-byte
// uncompressed public key (0x04 tag stripped).
func EVMAddressBytes(pub *btcec.PublicKey) []byte {
	return gethcrypto.Keccak256(pub.SerializeUncompressed()[1:])[12:]
}

// EVMAddressHex renders an address as 0x followed by 40 lowercase hex digits.
// No EIP-55 checksum casing is applied.
func EVMAddressHex(addr []byte) string {
	return "0x" + hex.EncodeToString(addr)
}
