package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	flags "github.com/jessevdk/go-flags"
	"golang.org/x/term"

	"WalletGen/internal/crypto"
	"WalletGen/internal/generator"
	"WalletGen/internal/logsink"
	"WalletGen/internal/mnemonic"
	"WalletGen/internal/walletsink"
	"WalletGen/pkg/appcfg"
	"WalletGen/pkg/i18n"
	"WalletGen/pkg/logx"
)

// memoryWarnBytes is the estimate above which the operator has to confirm.
const memoryWarnBytes = 100_000 << 20

// ErrUsage marks command line problems; main exits with status 2 for them.
var ErrUsage = errors.New("usage")

// Flags are the command line options. Unset options fall back to the app
// config (file, then WALLETGEN_* environment).
type Flags struct {
	Count      uint64 `short:"c" long:"count" required:"true" description:"Number of wallets to generate"`
	Mnemonic   string `short:"m" long:"mnemonic" description:"Mnemonic phrase (will prompt if not provided)"`
	Passphrase string `long:"passphrase" default-mask:"-" description:"Optional BIP-39 passphrase"`
	Output     string `short:"o" long:"output" description:"Output file path"`
	Prefix     string `short:"p" long:"prefix" description:"Bech32 prefix for addresses"`
	KeyType    string `short:"k" long:"key-type" choice:"secp256k1" choice:"ethsecp256k1" description:"Key type to generate"`
	Threads    int    `short:"t" long:"threads" description:"Number of parallel workers (0 = auto-detect)"`
	Strict     bool   `long:"strict" description:"Fail the run if any index cannot be derived"`
	Yes        bool   `short:"y" long:"yes" description:"Do not ask for confirmation on large runs"`
	Config     string `long:"config" description:"App config file, replaces configs/app.yaml"`
}

// Settings is the merged view of flags and app config used for one run.
type Settings struct {
	Count      uint64
	Mnemonic   string
	Passphrase string
	Output     string
	Prefix     string
	Variant    crypto.Variant
	Threads    int
	Strict     bool
	Yes        bool
	LogsBase   string
}

type Runner struct {
	in   *bufio.Reader
	inFd int
	out  io.Writer
	cfg  *appcfg.Config
	msg  i18n.Messages
}

func NewRunner(cfg *appcfg.Config) *Runner {
	if cfg == nil {
		cfg = appcfg.Default()
	}
	return &Runner{
		in:   bufio.NewReader(os.Stdin),
		inFd: int(os.Stdin.Fd()),
		out:  os.Stdout,
		cfg:  cfg,
		msg:  i18n.Get(cfg.Language),
	}
}

// WithIO replaces stdin/stdout, mainly for tests. Input is never treated as
// a terminal.
func (r *Runner) WithIO(in io.Reader, out io.Writer) *Runner {
	r.in = bufio.NewReader(in)
	r.inFd = -1
	r.out = out
	return r
}

// ParseArgs parses args and merges them over the app config.
func (r *Runner) ParseArgs(args []string) (Settings, error) {
	var f Flags
	p := flags.NewParser(&f, flags.HelpFlag|flags.PassDoubleDash)
	p.Name = "walletgen"
	if _, err := p.ParseArgs(args); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if f.Config != "" {
		cfg, err := appcfg.Load(f.Config)
		if err != nil {
			return Settings{}, fmt.Errorf("%w: %w", ErrUsage, err)
		}
		if err := cfg.ApplyEnv(); err != nil {
			return Settings{}, fmt.Errorf("%w: %w", ErrUsage, err)
		}
		r.cfg = cfg
		r.msg = i18n.Get(cfg.Language)
	}

	s := Settings{
		Count:      f.Count,
		Mnemonic:   f.Mnemonic,
		Passphrase: f.Passphrase,
		Output:     pick(f.Output, r.cfg.Output),
		Prefix:     pick(f.Prefix, r.cfg.Prefix),
		Threads:    r.cfg.Cores,
		Strict:     f.Strict || r.cfg.Strict,
		Yes:        f.Yes,
		LogsBase:   r.cfg.LogsBase,
	}
	if opt := p.FindOptionByLongName("threads"); opt != nil && opt.IsSet() {
		s.Threads = f.Threads
	}
	if s.Threads < 0 {
		return Settings{}, fmt.Errorf("%w: threads must be >= 0, got %d", ErrUsage, s.Threads)
	}

	v, err := crypto.ParseVariant(pick(f.KeyType, r.cfg.KeyType))
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	s.Variant = v

	if _, err := crypto.ValidatePrefix(s.Prefix); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if s.Count > generator.MaxWallets {
		return Settings{}, fmt.Errorf("%w: %w: maximum is %d billion",
			ErrUsage, generator.ErrTooManyWallets, generator.MaxWallets/1_000_000_000)
	}
	return s, nil
}

// Run parses args, asks for missing input and performs one generation.
func (r *Runner) Run(ctx context.Context, args []string) error {
	s, err := r.ParseArgs(args)
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(r.out, ferr.Message)
			return nil
		}
		return err
	}
	return r.Generate(ctx, s)
}

// Generate runs the pipeline for already merged settings.
func (r *Runner) Generate(ctx context.Context, s Settings) error {
	if est := generator.EstimateMemory(s.Count); est > memoryWarnBytes {
		fmt.Fprintf(r.out, r.msg.MemoryWarning, est>>30)
		if !s.Yes {
			fmt.Fprint(r.out, r.msg.PressEnter)
			if _, err := r.in.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("read confirmation: %w", err)
			}
		}
	}

	phrase := s.Mnemonic
	if phrase == "" {
		var err error
		if phrase, err = r.promptMnemonic(); err != nil {
			return err
		}
	}
	seed, err := mnemonic.ToSeed(phrase, s.Passphrase)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	runDir, err := logsink.MakeRunDir(s.LogsBase, "generate", time.Now())
	if err != nil {
		return err
	}
	if err := logx.Init(logx.Config{
		Level:                r.cfg.LogLevel,
		FilePath:             filepath.Join(runDir, "app.log"),
		HideSecretsInConsole: r.cfg.HideSecretsInConsole,
	}); err != nil {
		return fmt.Errorf("logx init for run failed: %w", err)
	}
	app := logx.With("cli")

	threads := s.Threads
	if threads == 0 {
		threads = runtime.NumCPU()
	}

	fmt.Fprintf(r.out, "\n%s\n", r.msg.AppTitle)
	fmt.Fprintf(r.out, r.msg.KeyType, s.Variant)
	fmt.Fprintf(r.out, r.msg.Platform, runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(r.out, r.msg.Threads, threads)
	fmt.Fprintf(r.out, r.msg.HashingNote, s.Variant.HashingNote())
	fmt.Fprintf(r.out, r.msg.Generating, FormatCount(s.Count))
	fmt.Fprintf(r.out, r.msg.PerThread, threads, FormatCount((s.Count+uint64(threads)-1)/uint64(threads)))

	app.Infow("run started",
		"run_dir", runDir,
		"count", s.Count,
		"key_type", s.Variant.String(),
		"prefix", s.Prefix,
		"threads", threads,
		"words", mnemonic.WordCount(phrase),
		"strict", s.Strict,
	)

	start := time.Now()
	res, err := generator.Run(ctx, generator.Options{
		Seed:       seed,
		Count:      s.Count,
		Workers:    threads,
		Variant:    s.Variant,
		Prefix:     s.Prefix,
		Strict:     s.Strict,
		OnProgress: r.renderProgress,
	})
	if err != nil {
		app.Errorw("generation failed", "err", err)
		return err
	}
	genTime := time.Since(start)
	fmt.Fprint(r.out, r.msg.GenerationDone)

	if err := logsink.WriteDropped(runDir, res.Dropped); err != nil {
		app.Errorw("dropped report failed", "err", err)
	}

	fmt.Fprintf(r.out, r.msg.Writing, FormatCount(uint64(len(res.Wallets))))
	writeStart := time.Now()
	st, err := walletsink.WriteFile(s.Output, res.Wallets)
	if err != nil {
		app.Errorw("write wallets failed", "output", s.Output, "err", err)
		return err
	}
	writeTime := time.Since(writeStart)
	totalTime := time.Since(start)

	rate := 0.0
	if genTime > 0 {
		rate = float64(len(res.Wallets)) / genTime.Seconds()
	}

	summary := logsink.Summary{
		Requested:     s.Count,
		Generated:     len(res.Wallets),
		Dropped:       len(res.Dropped),
		KeyType:       s.Variant.String(),
		Prefix:        s.Prefix,
		Workers:       res.Workers,
		Output:        st.Path,
		FileBytes:     st.Bytes,
		GenerationSec: genTime.Seconds(),
		WriteSec:      writeTime.Seconds(),
		TotalSec:      totalTime.Seconds(),
		RatePerSec:    rate,
	}
	if err := logsink.WriteSummary(runDir, summary); err != nil {
		app.Errorw("summary report failed", "err", err)
	}

	fmt.Fprint(r.out, r.msg.ReportHeader)
	fmt.Fprintf(r.out, r.msg.ReportCount, FormatCount(uint64(len(res.Wallets))))
	if len(res.Dropped) > 0 {
		fmt.Fprintf(r.out, r.msg.ReportDropped, len(res.Dropped), filepath.Join(runDir, logsink.DroppedFile))
	}
	fmt.Fprintf(r.out, r.msg.ReportGenTime, genTime.Seconds())
	fmt.Fprintf(r.out, r.msg.ReportWrite, writeTime.Seconds())
	fmt.Fprintf(r.out, r.msg.ReportTotal, totalTime.Seconds())
	fmt.Fprintf(r.out, r.msg.ReportRate, rate)
	fmt.Fprintf(r.out, r.msg.ReportFileSize, float64(st.Bytes)/(1024*1024))
	fmt.Fprintf(r.out, r.msg.ReportOutput, st.Path)
	fmt.Fprintf(r.out, r.msg.ReportRunDir, runDir)

	app.Infow("run finished",
		"generated", summary.Generated,
		"dropped", summary.Dropped,
		"output", st.Path,
		"bytes", st.Bytes,
	)
	return nil
}

func (r *Runner) renderProgress(p generator.Progress) {
	fmt.Fprintf(r.out, r.msg.Progress,
		p.Elapsed.Truncate(time.Second), p.Done, p.Total, p.Percent(), p.Rate, p.ETA().Truncate(time.Second))
}

// promptMnemonic reads the phrase without echo on a terminal and as a plain
// line otherwise.
func (r *Runner) promptMnemonic() (string, error) {
	fmt.Fprintln(r.out, r.msg.EnterMnemonic)
	if r.inFd >= 0 && term.IsTerminal(r.inFd) {
		b, err := term.ReadPassword(r.inFd)
		fmt.Fprintln(r.out)
		if err != nil {
			return "", fmt.Errorf("read mnemonic: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}
	line, err := r.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read mnemonic: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// FormatCount renders n with comma thousands separators.
func FormatCount(n uint64) string {
	s := strconv.FormatUint(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func pick(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
