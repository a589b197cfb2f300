package logsink

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"WalletGen/internal/wallet"
	"WalletGen/internal/walletsink"
)

const (
	DroppedFile = "dropped.jsonl"
	SummaryFile = "summary.json"
)

// Summary is the machine readable report of one run.
type Summary struct {
	Requested     uint64  `json:"requested"`
	Generated     int     `json:"generated"`
	Dropped       int     `json:"dropped"`
	KeyType       string  `json:"keyType"`
	Prefix        string  `json:"prefix"`
	Workers       int     `json:"workers"`
	Output        string  `json:"output"`
	FileBytes     int64   `json:"fileBytes"`
	GenerationSec float64 `json:"generationSec"`
	WriteSec      float64 `json:"writeSec"`
	TotalSec      float64 `json:"totalSec"`
	RatePerSec    float64 `json:"ratePerSec"`
}

// WriteDropped appends one line per dropped index to dir/dropped.jsonl. It
// does nothing when dropped is empty.
func WriteDropped(dir string, dropped []wallet.Dropped) error {
	path := filepath.Join(dir, DroppedFile)
	for _, d := range dropped {
		if err := walletsink.AppendJSONL(path, d); err != nil {
			return fmt.Errorf("append %q: %w", path, err)
		}
	}
	return nil
}

// WriteSummary writes dir/summary.json.
func WriteSummary(dir string, s Summary) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(dir, SummaryFile)
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}
