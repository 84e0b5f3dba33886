package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/amishk599/resumatch/internal/analyze"
	"github.com/amishk599/resumatch/internal/config"
	"github.com/amishk599/resumatch/internal/extract"
	"github.com/amishk599/resumatch/internal/match"
	"github.com/amishk599/resumatch/internal/model"
	"github.com/amishk599/resumatch/internal/report"
	"github.com/amishk599/resumatch/internal/store"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.yaml"

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "resumatch",
	Short: "Match a resume against a job description",
	Long:  "Resumatch scores how well a resume fits a job description (TF-IDF cosine similarity) and lists matched and missing skills.",
	// No args opens the interactive shell.
	RunE: runUI,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional; variables already set in the environment win.
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: RESUMATCH_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > RESUMATCH_CONFIG env var > "./config.yaml".
// A missing ./config.yaml is not an error; the built-in defaults apply.
func loadConfig(path string) (*config.Config, error) {
	explicit := true
	if path == "" {
		if env := os.Getenv("RESUMATCH_CONFIG"); env != "" {
			path = env
		} else {
			path = defaultConfigPath
			explicit = false
		}
	}
	cfg, err := config.Load(path)
	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// setupHistory opens the analysis history. The returned close func must be
// called before exit.
func setupHistory(cfg *config.Config, logger *slog.Logger) (model.HistoryStore, func(), error) {
	if !cfg.History.Enabled {
		return store.NewNopStore(), func() {}, nil
	}

	sqlStore, err := store.NewSQLiteStore(cfg.History.Path)
	if err != nil {
		return nil, nil, err
	}
	if cfg.History.Retention > 0 {
		if err := sqlStore.Cleanup(cfg.History.Retention); err != nil {
			logger.Warn("history cleanup failed", "error", err)
		}
	}
	logger.Debug("history enabled", "path", cfg.History.Path, "retention", cfg.History.Retention.String())

	return sqlStore, func() {
		if err := sqlStore.Close(); err != nil {
			logger.Warn("failed to close history", "error", err)
		}
	}, nil
}

func buildService(cfg *config.Config, history model.HistoryStore, logger *slog.Logger) *analyze.Service {
	return analyze.NewService(
		extract.NewExtractor(logger),
		match.NewScorer(cfg.Skills),
		history,
		logger,
	)
}

// setupNotifier returns the reporter that shares one-shot results, or nil
// when notification.type is unset.
func setupNotifier(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) report.Reporter {
	switch cfg.Notification.Type {
	case "slack":
		logger.Debug("using slack notifier")
		return report.NewSlackReporter(cfg.Notification.WebhookURL, httpClient, logger)
	case "log":
		return report.NewLogReporter(logger)
	default:
		return nil
	}
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}
