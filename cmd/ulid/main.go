// ulid generates and inspects Universally Unique Lexicographically Sortable Identifiers
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/plaenen/ulid/pkg/ulid"
	"github.com/plaenen/ulid/pkg/validators"
)

type config struct {
	count     int
	monotonic bool
	fast      bool
	at        string
	format    string
	parse     bool
	logLevel  string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var cfg config

	fs := flag.NewFlagSet("ulid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.count, "n", 1, "Number of identifiers to generate")
	fs.BoolVar(&cfg.monotonic, "monotonic", false, "Keep identifiers from the same millisecond strictly increasing")
	fs.BoolVar(&cfg.fast, "fast", false, "Use a seeded ChaCha8 stream instead of crypto/rand")
	fs.StringVar(&cfg.at, "time", "", "Timestamp to embed, RFC3339 or Unix milliseconds (default now)")
	fs.StringVar(&cfg.format, "format", "default", "Output format: default, lower, uuid or hex")
	fs.BoolVar(&cfg.parse, "parse", false, "Inspect the identifiers given as arguments instead of generating")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: ulid [options]\n")
		fmt.Fprintf(stderr, "       ulid -parse <id> [<id>...]\n\nOptions:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExample:\n  ulid -n 5 -monotonic\n  ulid -parse 01EAWYQD59KTN275S079C9ESX7\n")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, cfg.logLevel)

	if cfg.parse {
		return inspect(fs.Args(), stdout, stderr)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments %q (did you mean -parse?)", fs.Args())
	}

	return generate(cfg, stdout, logger)
}

func generate(cfg config, stdout io.Writer, logger *slog.Logger) error {
	if cfg.count < 1 {
		return fmt.Errorf("-n must be at least 1, got %d", cfg.count)
	}
	render, err := formatter(cfg.format)
	if err != nil {
		return err
	}

	clock := ulid.Clock(ulid.Now)
	if cfg.at != "" {
		ms, err := parseTimestamp(cfg.at)
		if err != nil {
			return err
		}
		clock = func() int64 { return ms }
	}

	entropy := ulid.SecureEntropy()
	if cfg.fast {
		entropy = ulid.FastEntropy()
	}

	next := func() (ulid.ULID, error) { return ulid.Generate(clock(), entropy) }
	if cfg.monotonic {
		next = ulid.NewMonotonicGenerator(
			ulid.WithClock(clock),
			ulid.WithEntropy(entropy),
			ulid.WithLogger(logger),
		).Next
	}

	logger.Debug("generating identifiers",
		slog.Int("count", cfg.count),
		slog.Bool("monotonic", cfg.monotonic),
		slog.Bool("fast", cfg.fast),
	)

	for i := 0; i < cfg.count; i++ {
		id, err := next()
		if err != nil {
			return fmt.Errorf("generate identifier %d: %w", i+1, err)
		}
		fmt.Fprintln(stdout, render(id))
	}
	return nil
}

func inspect(values []string, stdout, stderr io.Writer) error {
	if len(values) == 0 {
		return errors.New("-parse needs at least one identifier")
	}

	builder := validators.NewValidationBuilder()
	for i, value := range values {
		builder.Add(validators.ValidateULID(value, fmt.Sprintf("argument_%d", i+1)))
	}

	for _, field := range builder.Build() {
		for _, result := range field.Validations {
			if !result.IsValid {
				fmt.Fprintf(stderr, "%s: %s %s\n", result.Value, result.Message, result.SuggestedAction)
				continue
			}
			id := ulid.MustParse(result.Value)
			fmt.Fprintf(stdout, "id:        %s\n", id)
			fmt.Fprintf(stdout, "timestamp: %d\n", id.Timestamp())
			fmt.Fprintf(stdout, "time:      %s\n", id.Time().UTC().Format(time.RFC3339Nano))
			fmt.Fprintf(stdout, "entropy:   %s\n", hex.EncodeToString(id.Entropy()))
			fmt.Fprintf(stdout, "uuid:      %s\n", id.UUID())
		}
	}

	if errs := builder.BuildErrors(); len(errs) > 0 {
		return fmt.Errorf("%d of %d identifiers are invalid", len(errs), len(values))
	}
	return nil
}

func formatter(name string) (func(ulid.ULID) string, error) {
	switch name {
	case "default", "":
		return ulid.ULID.String, nil
	case "lower":
		return func(id ulid.ULID) string { return strings.ToLower(id.String()) }, nil
	case "uuid":
		return func(id ulid.ULID) string { return id.UUID().String() }, nil
	case "hex":
		return func(id ulid.ULID) string { return hex.EncodeToString(id.Bytes()) }, nil
	default:
		return nil, fmt.Errorf("unknown format %q", name)
	}
}

// parseTimestamp accepts Unix milliseconds or an RFC3339 time.
func parseTimestamp(s string) (int64, error) {
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ms, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return 0, fmt.Errorf("invalid -time %q: want RFC3339 or Unix milliseconds", s)
	}
	return ulid.Timestamp(t), nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
