// Package walletsink writes generated wallets to disk as one JSON array.
package walletsink

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"WalletGen/internal/wallet"
)

// BufferSize is the write buffer used by WriteFile.
const BufferSize = 64 << 20

// Stats describes a finished write.
type Stats struct {
	Path    string
	Wallets int
	Bytes   int64
}

// WriteFile creates path (and its parent directories) and writes wallets to
// it. An existing file is truncated.
func WriteFile(path string, wallets []wallet.Wallet) (Stats, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Stats{}, fmt.Errorf("mkdir %q: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return Stats{}, fmt.Errorf("create %q: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriterSize(f, BufferSize)
	if err := Encode(bw, wallets); err != nil {
		return Stats{}, fmt.Errorf("write %q: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return Stats{}, fmt.Errorf("flush %q: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		return Stats{}, fmt.Errorf("sync %q: %w", path, err)
	}

	st, err := f.Stat()
	if err != nil {
		return Stats{}, fmt.Errorf("stat %q: %w", path, err)
	}
	return Stats{Path: path, Wallets: len(wallets), Bytes: st.Size()}, f.Close()
}

// Encode writes wallets as a JSON array with one object per line:
//
//	[
//	  {...},
//	  {...}
//	]
func Encode(w io.Writer, wallets []wallet.Wallet) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	for i := range wallets {
		sep := "\n  "
		if i > 0 {
			sep = ",\n  "
		}
		if _, err := io.WriteString(w, sep); err != nil {
			return err
		}
		b, err := json.Marshal(&wallets[i])
		if err != nil {
			return fmt.Errorf("marshal wallet %s: %w", wallets[i].DerivationPath, err)
		}
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n]")
	return err
}

// AppendJSONL appends one JSON document plus a newline to path.
func AppendJSONL(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	blob, err := json.Marshal(v)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Write(append(blob, '\n')); err != nil {
		return err
	}
	return f.Close()
}
