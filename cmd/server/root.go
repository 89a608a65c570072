package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	rn "github.com/russiannouns/russiannouns"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "RUNOUNS"

// config holds the server settings after flags and environment are merged.
type config struct {
	Addr        string
	VocabDir    string
	LogLevel    string
	LogFormat   string
	CORSOrigins []string
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "server",
		Short:         "JSON API for Russian noun lemmas",
		Version:       rn.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(v)
			initLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.String("addr", ":8080", "listen address")
	flags.String("vocab", "", "directory with nouns_*.json dictionaries")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")
	flags.StringSlice("cors-origin", []string{"*"}, "allowed CORS origins")

	bindConfig(v, flags)
	return cmd
}

// bindConfig makes flags readable through v, with RUNOUNS_* environment
// variables overriding flag defaults.
func bindConfig(v *viper.Viper, flags *pflag.FlagSet) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(flags)
}

func loadConfig(v *viper.Viper) config {
	return config{
		Addr:        v.GetString("addr"),
		VocabDir:    v.GetString("vocab"),
		LogLevel:    v.GetString("log-level"),
		LogFormat:   v.GetString("log-format"),
		CORSOrigins: v.GetStringSlice("cors-origin"),
	}
}

// initLogger installs the default slog logger.
func initLogger(w io.Writer, level, format string) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
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

func run(ctx context.Context, cfg config) error {
	var vocab *rn.Vocabulary
	if cfg.VocabDir != "" {
		slog.Info("loading vocabulary", "dir", cfg.VocabDir)
		var err error
		if vocab, err = rn.LoadVocabularyDir(cfg.VocabDir); err != nil {
			return err
		}
		slog.Info("vocabulary loaded", "words", vocab.Len())
	} else {
		slog.Warn("no vocabulary given, /api/lookup is disabled")
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newHandler(vocab, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
