package generator

import (
	"errors"
	"time"

	"WalletGen/internal/crypto"
	"WalletGen/internal/wallet"
)

// MaxWallets caps a single run. Leaf indices must also stay below 2^31.
const MaxWallets uint64 = 1_000_000_000

// BytesPerWallet is the rough in-memory cost of one wallet record, used for
// the memory estimate shown before a run.
const BytesPerWallet = 400

const (
	defaultProgressInterval = 100 * time.Millisecond
	defaultLogInterval      = 5 * time.Second
)

var (
	// ErrTooManyWallets is returned when Count exceeds MaxWallets.
	ErrTooManyWallets = errors.New("too many wallets requested")

	// ErrWalletsDropped is returned in strict mode when at least one index
	// could not be turned into a wallet.
	ErrWalletsDropped = errors.New("wallets dropped")
)

type Options struct {
	Seed    []byte // BIP-32 seed, 16..64 bytes, read only during Run
	Count   uint64
	Workers int // 0 = runtime.NumCPU()
	Variant crypto.Variant
	Prefix  string // bech32 human-readable part

	// Strict fails the run when any index is dropped.
	Strict bool

	ProgressInterval time.Duration // counter poll period, default 100ms
	LogInterval      time.Duration // progress log period, default 5s
	OnProgress       func(Progress)
}

// Result is the outcome of a successful run.
type Result struct {
	Wallets   []wallet.Wallet  // index ascending
	Dropped   []wallet.Dropped // index ascending
	Workers   int
	PerWorker uint64
	Elapsed   time.Duration
}

// EstimateMemory returns the approximate bytes needed to hold count wallets.
func EstimateMemory(count uint64) uint64 {
	return count * BytesPerWallet
}
