package logsink

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"WalletGen/internal/wallet"
)

func TestMakeRunDirLayout(t *testing.T) {
	base := t.TempDir()
	now := time.Date(2026, 3, 7, 14, 5, 9, 0, time.UTC)

	dir, err := MakeRunDir(base, "generate", now)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(base, "generate", "07.03.2026", "generate_14-05-09"), dir)

	st, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, st.IsDir())
}

func TestWriteDropped(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, WriteDropped(dir, nil))
	_, err := os.Stat(filepath.Join(dir, DroppedFile))
	require.True(t, os.IsNotExist(err))

	require.NoError(t, WriteDropped(dir, []wallet.Dropped{
		{Index: 4, Path: wallet.PathAt(4).String(), Reason: "key derivation failed"},
		{Index: 8, Path: wallet.PathAt(8).String(), Reason: "key derivation failed"},
	}))
	raw, err := os.ReadFile(filepath.Join(dir, DroppedFile))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[1], `"index":8`)
}

func TestWriteSummary(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteSummary(dir, Summary{Requested: 10, Generated: 9, Dropped: 1, KeyType: "secp256k1"}))

	raw, err := os.ReadFile(filepath.Join(dir, SummaryFile))
	require.NoError(t, err)
	var got Summary
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Equal(t, 9, got.Generated)
	require.Equal(t, "secp256k1", got.KeyType)
}
