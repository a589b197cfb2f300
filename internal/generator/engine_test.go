package generator

import (
	"context"
	"encoding/base64"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"WalletGen/internal/crypto"
)

func zeroSeed() []byte { return make([]byte, 64) }

func pathIndex(t *testing.T, path string) uint64 {
	t.Helper()
	i := strings.LastIndexByte(path, '/')
	require.GreaterOrEqual(t, i, 0)
	n, err := strconv.ParseUint(path[i+1:], 10, 64)
	require.NoError(t, err)
	return n
}

func withKeySource(t *testing.T, fn func(seed []byte) (keySource, error)) {
	t.Helper()
	prev := newKeySource
	newKeySource = fn
	t.Cleanup(func() { newKeySource = prev })
}

func TestAssembleZeroSeedStandard(t *testing.T) {
	w, err := Assemble(zeroSeed(), 0, crypto.VariantStandard, "cosmos")
	require.NoError(t, err)
	require.Equal(t, "cosmos1eahm5agxn6qm5ea829dc6qza202lxhayqlp8s8", w.Address)
	require.Empty(t, w.EVMAddress)
	require.Equal(t, "AyrarZ7n3JbqtOWth5DKXBE5JdubCui03mQqchlTINpU", w.PubKey)
	require.Equal(t, "56eac3099240999765beb5e6888cb831631bcb46f4930869faf6f29d4c31437f", w.PrivateKey)
	require.Equal(t, "m/44'/118'/0'/0/0", w.DerivationPath)
}

func TestAssembleZeroSeedEthCompatible(t *testing.T) {
	w, err := Assemble(zeroSeed(), 0, crypto.VariantEthCompatible, "cosmos")
	require.NoError(t, err)
	require.Equal(t, "cosmos1jlxq65efp30q22mguuf64nkxz6rpm4py2l7l4u", w.Address)
	require.Equal(t, "0x97cc0d53290c5e052b68e713aacec616861dd424", w.EVMAddress)
	require.Equal(t, "AyrarZ7n3JbqtOWth5DKXBE5JdubCui03mQqchlTINpU", w.PubKey)
}

func TestRunMatchesAssemble(t *testing.T) {
	res, err := Run(context.Background(), Options{
		Seed:    zeroSeed(),
		Count:   3,
		Workers: 2,
		Variant: crypto.VariantStandard,
		Prefix:  "cosmos",
	})
	require.NoError(t, err)
	require.Len(t, res.Wallets, 3)
	require.Empty(t, res.Dropped)

	want := []string{
		"cosmos1eahm5agxn6qm5ea829dc6qza202lxhayqlp8s8",
		"cosmos17c37nyuq85ws8t4msdu5aqnraewc9v08w4pp2t",
		"cosmos1w8rvyfjlqtms60g2pyn6z02pd4drgqnmnzzs7c",
	}
	for i, w := range res.Wallets {
		require.Equal(t, want[i], w.Address)
	}
}

func TestRunIsIndependentOfWorkerCount(t *testing.T) {
	const count = 2100
	var baseline []string

	for _, workers := range []int{1, 3, 8, 64} {
		res, err := Run(context.Background(), Options{
			Seed:    zeroSeed(),
			Count:   count,
			Workers: workers,
			Variant: crypto.VariantEthCompatible,
			Prefix:  "evmos",
		})
		require.NoError(t, err)
		require.Len(t, res.Wallets, count)
		require.Equal(t, workers, res.Workers)

		got := make([]string, len(res.Wallets))
		for i, w := range res.Wallets {
			require.Equal(t, uint64(i), pathIndex(t, w.DerivationPath))
			got[i] = w.Address + "|" + w.EVMAddress + "|" + w.PrivateKey
		}
		if baseline == nil {
			baseline = got
			continue
		}
		require.Equal(t, baseline, got, "workers=%d", workers)
	}
}

func TestRunWalletsAreUnique(t *testing.T) {
	res, err := Run(context.Background(), Options{
		Seed: zeroSeed(), Count: 500, Workers: 4, Variant: crypto.VariantStandard, Prefix: "cosmos",
	})
	require.NoError(t, err)

	seen := make(map[string]struct{}, len(res.Wallets))
	for _, w := range res.Wallets {
		_, dup := seen[w.Address]
		require.False(t, dup, w.Address)
		seen[w.Address] = struct{}{}
	}
}

func TestRunPrivateKeyRoundTrip(t *testing.T) {
	res, err := Run(context.Background(), Options{
		Seed: zeroSeed(), Count: 50, Workers: 3, Variant: crypto.VariantStandard, Prefix: "cosmos",
	})
	require.NoError(t, err)

	for _, w := range res.Wallets {
		require.Equal(t, strings.ToLower(w.PrivateKey), w.PrivateKey)
		require.False(t, strings.HasPrefix(w.PrivateKey, "0x"))

		key, err := crypto.ParsePrivateScalar(w.PrivateKey)
		require.NoError(t, err)
		pub, err := key.PubKey()
		require.NoError(t, err)
		require.Equal(t, w.PubKey, base64.StdEncoding.EncodeToString(pub.SerializeCompressed()))
	}
}

func TestRunZeroCount(t *testing.T) {
	res, err := Run(context.Background(), Options{
		Seed: zeroSeed(), Count: 0, Workers: 4, Variant: crypto.VariantStandard, Prefix: "cosmos",
	})
	require.NoError(t, err)
	require.Empty(t, res.Wallets)
	require.Empty(t, res.Dropped)
}

func TestRunMoreWorkersThanWallets(t *testing.T) {
	res, err := Run(context.Background(), Options{
		Seed: zeroSeed(), Count: 3, Workers: 16, Variant: crypto.VariantStandard, Prefix: "cosmos",
	})
	require.NoError(t, err)
	require.Len(t, res.Wallets, 3)
	for i, w := range res.Wallets {
		require.Equal(t, uint64(i), pathIndex(t, w.DerivationPath))
	}
}

func TestRunConfigErrors(t *testing.T) {
	ctx := context.Background()

	_, err := Run(ctx, Options{Seed: zeroSeed(), Count: 1, Prefix: "Cosmos"})
	require.ErrorIs(t, err, crypto.ErrInvalidPrefix)

	_, err = Run(ctx, Options{Seed: zeroSeed(), Count: MaxWallets + 1, Prefix: "cosmos"})
	require.ErrorIs(t, err, ErrTooManyWallets)

	_, err = Run(ctx, Options{Seed: []byte{1, 2, 3}, Count: 1, Prefix: "cosmos"})
	require.ErrorIs(t, err, crypto.ErrInvalidSeed)

	_, err = Run(ctx, Options{Seed: zeroSeed(), Count: 1, Prefix: "cosmos", Variant: crypto.Variant(9)})
	require.ErrorIs(t, err, crypto.ErrInvalidVariant)
}

func TestRunReportsDroppedWallets(t *testing.T) {
	withKeySource(t, func([]byte) (keySource, error) {
		return fakeKeys{fail: map[uint64]bool{2: true, 1500: true}}, nil
	})

	res, err := Run(context.Background(), Options{
		Seed: zeroSeed(), Count: 2000, Workers: 3, Variant: crypto.VariantStandard, Prefix: "cosmos",
	})
	require.NoError(t, err)
	require.Len(t, res.Wallets, 1998)
	require.Len(t, res.Dropped, 2)
	require.Equal(t, uint64(2), res.Dropped[0].Index)
	require.Equal(t, uint64(1500), res.Dropped[1].Index)

	var prev uint64
	for i, w := range res.Wallets {
		idx := pathIndex(t, w.DerivationPath)
		if i > 0 {
			require.Greater(t, idx, prev)
		}
		prev = idx
	}
}

func TestRunStrictFailsOnDrop(t *testing.T) {
	withKeySource(t, func([]byte) (keySource, error) {
		return fakeKeys{fail: map[uint64]bool{4: true}}, nil
	})

	_, err := Run(context.Background(), Options{
		Seed: zeroSeed(), Count: 10, Workers: 2, Variant: crypto.VariantStandard, Prefix: "cosmos", Strict: true,
	})
	require.ErrorIs(t, err, ErrWalletsDropped)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{
		Seed: zeroSeed(), Count: 100, Workers: 2, Variant: crypto.VariantStandard, Prefix: "cosmos",
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunProgressConverges(t *testing.T) {
	var last Progress
	var ticks int
	monotonic := true
	_, err := Run(context.Background(), Options{
		Seed:             zeroSeed(),
		Count:            1500,
		Workers:          2,
		Variant:          crypto.VariantStandard,
		Prefix:           "cosmos",
		ProgressInterval: time.Millisecond,
		OnProgress: func(p Progress) {
			ticks++
			monotonic = monotonic && p.Done >= last.Done
			last = p
		},
	})
	require.NoError(t, err)
	require.Positive(t, ticks)
	require.True(t, monotonic)
	require.Equal(t, uint64(1500), last.Done)
	require.Equal(t, uint64(1500), last.Total)
	require.InDelta(t, 100.0, last.Percent(), 0.001)
}
