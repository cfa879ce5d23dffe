package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/akwxlab/marinedash"
	"github.com/akwxlab/marinedash/internal/config"
	"github.com/akwxlab/marinedash/internal/nwsclient"
	"github.com/akwxlab/marinedash/internal/observability"
	"github.com/akwxlab/marinedash/internal/server"
)

// defaultConfigName is searched when no --config flag is given.
const defaultConfigName = "marinedash"

// shutdownTimeout bounds graceful HTTP server drain on SIGINT/SIGTERM.
const shutdownTimeout = 10 * time.Second

// run wires configuration, logging, the bulletin client, and either the
// one-shot render or the HTTP server.
func run(flags *cliFlags) error {
	cfg, err := loadConfig(flags.config)
	if err != nil {
		return err
	}

	logger := newLogger(cfg, flags.verbose)
	metrics := observability.NewMetrics()

	client := nwsclient.NewClient(cfg.Endpoint, cfg.Timeout(), logger, metrics)
	fetcher := nwsclient.NewCachedFetcher(client, cfg.CacheTTL(), nil, metrics)

	office := flags.office
	if office == "" {
		office = cfg.Office
	}

	if flags.serve {
		addr := flags.addr
		if addr == "" {
			addr = cfg.HTTP.Addr
		}
		return serveWidget(addr, fetcher, logger, metrics)
	}

	return renderOnce(fetcher, office, flags, logger)
}

// loadConfig resolves the configuration: an explicit --config path must
// exist, while the default config name is optional.
func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath != "" {
		return config.Load(nameOrPath)
	}
	cfg, err := config.Load(defaultConfigName)
	if errors.Is(err, config.ErrConfigNotFound) {
		return config.DefaultConfig(), nil
	}
	return cfg, err
}

// newLogger builds the structured logger from config; --verbose forces
// debug level.
func newLogger(cfg *config.Config, verbose bool) *slog.Logger {
	level := parseLevel(cfg.Log.Level)
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.Log.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// localDevelopment reports whether the deployment environment selects the
// placeholder path instead of real fetches.
func localDevelopment() bool {
	return strings.EqualFold(os.Getenv("MARINEDASH_ENV"), "development")
}

// renderOnce runs one widget load cycle and writes the fragment to stdout or
// --out.
func renderOnce(fetcher marinedash.Fetcher, office string, flags *cliFlags, logger *slog.Logger) error {
	opts := []marinedash.Option{
		marinedash.WithFetcher(fetcher),
		marinedash.WithLogger(logger),
	}
	if flags.placeholder || localDevelopment() {
		opts = append(opts, marinedash.WithPlaceholder(true))
	}

	display := &marinedash.CaptureDisplay{}
	widget := marinedash.NewWidget(display, opts...)
	widget.Load(context.Background(), office)

	var out io.Writer = os.Stdout
	if flags.out != "" {
		f, err := os.Create(flags.out)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if _, err := fmt.Fprintln(out, display.Content()); err != nil {
		return fmt.Errorf("writing widget fragment: %w", err)
	}
	return nil
}

// serveWidget runs the HTTP server until SIGINT/SIGTERM, then drains.
func serveWidget(addr string, fetcher marinedash.Fetcher, logger *slog.Logger, metrics *observability.Metrics) error {
	srv := server.New(addr, fetcher, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// printUsage writes command usage and the flag table.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, "marinedash %s - marine forecast discussion widget\n\n", Version)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  marinedash [flags]            render one widget fragment")
	fmt.Fprintln(w, "  marinedash --serve [flags]    serve widget fragments over HTTP")
	fmt.Fprintln(w, "\nFlags:")
	fmt.Fprintln(w, fs.FlagUsages())
}
