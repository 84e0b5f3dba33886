package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/amishk599/resumatch/internal/tui"
	"github.com/spf13/cobra"
)

var uiResume string

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive matcher (TUI)",
	Long:  "Shows a form for a resume path and a job description, then renders the match score and skills breakdown.",
	RunE:  runUI,
}

func init() {
	uiCmd.Flags().StringVar(&uiResume, "resume", "", "prefill the resume path")
	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Anything written to the terminal while the TUI runs corrupts the
	// display, so the pipeline logs nowhere.
	silentLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	history, closeHistory, err := setupHistory(cfg, silentLogger)
	if err != nil {
		logger.Error("failed to open history", "error", err)
		os.Exit(1)
	}

	svc := buildService(cfg, history, silentLogger)
	err = tui.Run(svc, tui.Options{AltScreen: cfg.UI.AltScreen, InitialPath: uiResume})
	closeHistory()
	if err != nil {
		logger.Error("tui error", "error", err)
		os.Exit(1)
	}
	return nil
}
