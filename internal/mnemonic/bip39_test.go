package mnemonic

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

const abandon = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestToSeedKnownVector(t *testing.T) {
	seed, err := ToSeed(abandon, "")
	require.NoError(t, err)
	require.Len(t, seed, 64)
	require.Equal(t,
		"5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4",
		hex.EncodeToString(seed))
}

func TestToSeedNormalizesInput(t *testing.T) {
	want, err := ToSeed(abandon, "")
	require.NoError(t, err)

	got, err := ToSeed("  ABANDON abandon\tabandon abandon abandon abandon abandon abandon abandon abandon abandon   about\n", "")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestToSeedPassphraseChangesSeed(t *testing.T) {
	a, err := ToSeed(abandon, "")
	require.NoError(t, err)
	b, err := ToSeed(abandon, "TREZOR")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestToSeedRejectsBadChecksum(t *testing.T) {
	_, err := ToSeed("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon", "")
	require.ErrorIs(t, err, ErrInvalidMnemonic)

	_, err = ToSeed("   ", "")
	require.ErrorIs(t, err, ErrInvalidMnemonic)
}

func TestWordCount(t *testing.T) {
	require.Equal(t, 12, WordCount(abandon))
	require.Equal(t, 0, WordCount(""))
}
