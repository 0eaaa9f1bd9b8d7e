package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/newslens"
	"github.com/fwojciec/newslens/goquery"
	nlhttp "github.com/fwojciec/newslens/http"
	"github.com/fwojciec/newslens/pipeline"
	"github.com/fwojciec/newslens/rod"
	nlzerolog "github.com/fwojciec/newslens/zerolog"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, newslens.ErrNoURL) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. When nil, Run wires the
	// implementations selected by the flags.
	Fetcher newslens.Fetcher
	Models  newslens.ModelProvider
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments. Exactly one JSON object is
// written to stdout unless help was requested. The returned error is non-nil
// only for usage errors, including newslens.ErrNoURL.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("newslens"),
		kong.Description("Summarize a news article and classify its sentiment"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Configuration(YAMLLoader),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		var appErr *newslens.Error
		if !errors.As(err, &appErr) {
			err = newslens.Errorf(newslens.EINVALID, "%v", err)
		}
		return usageError(stdout, err)
	}

	cfg := cli.AnalysisConfig()
	if err := cfg.Validate(); err != nil {
		return usageError(stdout, err)
	}

	logger, err := newLogger(stderr, cli.LogLevel)
	if err != nil {
		return usageError(stdout, err)
	}

	p := &pipeline.Pipeline{Config: cfg, Logger: &logger}

	if cli.URL != "" {
		fetcher := m.fetcher(cli, cfg, logger)
		defer fetcher.Close()

		models := m.Models
		if models == nil {
			if models, err = cli.ModelProvider(); err != nil {
				return usageError(stdout, err)
			}
		}

		p.Fetcher = nlzerolog.NewLoggingFetcher(fetcher, logger)
		p.Extractor = nlzerolog.NewLoggingExtractor(
			goquery.NewExtractor(goquery.WithContentBlockLimit(cfg.ContentBlockLimit)),
			logger,
		)
		p.Models = nlzerolog.NewLoggingModelProvider(models, logger)
	}

	report := p.Run(ctx, newslens.AnalysisRequest{URL: cli.URL})
	if err := writeResult(stdout, report.Result); err != nil {
		return err
	}
	if report.ExitCode() != 0 {
		return newslens.ErrNoURL
	}
	return nil
}

// fetcher returns the injected fetcher or the one selected by the flags.
// A browser that fails to launch falls back to plain HTTP.
func (m *Main) fetcher(cli *CLI, cfg newslens.Config, logger zerolog.Logger) newslens.Fetcher {
	if m.Fetcher != nil {
		return m.Fetcher
	}

	if cli.Browser {
		f, err := rod.NewFetcher(
			rod.WithFetchTimeout(cfg.FetchTimeout),
			rod.WithUserAgent(cli.UserAgent),
		)
		if err == nil {
			return f
		}
		logger.Warn().Err(err).Msg("browser unavailable, falling back to HTTP (Chrome or Chromium must be installed)")
	}

	return nlhttp.NewFetcher(
		nlhttp.WithTimeout(cfg.FetchTimeout),
		nlhttp.WithUserAgent(cli.UserAgent),
	)
}

// newLogger returns a human-readable stderr logger tagged with a run ID.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), newslens.Errorf(newslens.EINVALID, "invalid log level %q", level)
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().
		Timestamp().
		Str("run", uuid.NewString()).
		Logger(), nil
}

// writeResult writes result as a single JSON line. HTML characters in the
// summary are written as-is.
func writeResult(w io.Writer, result *newslens.AnalysisResult) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(result)
}

// usageError reports err on stdout in the result shape and returns it.
func usageError(stdout io.Writer, err error) error {
	if werr := writeResult(stdout, newslens.UsageErrorResult(err)); werr != nil {
		return werr
	}
	return err
}
