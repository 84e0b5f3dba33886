package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/amishk599/resumatch/internal/report"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent analyses",
	Long:  "Prints the most recent analyses from the history database. Requires history.enabled in the config.",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of analyses to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	if err := validateLimit(historyLimit); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if !cfg.History.Enabled {
		fmt.Fprintln(os.Stderr, "history is disabled; set history.enabled: true in the config")
		os.Exit(1)
	}

	history, closeHistory, err := setupHistory(cfg, logger)
	if err != nil {
		logger.Error("failed to open history", "error", err)
		os.Exit(1)
	}
	defer closeHistory()

	records, err := history.Recent(historyLimit)
	if err != nil {
		logger.Error("failed to read history", "error", err)
		return err
	}
	if len(records) == 0 {
		fmt.Println("No analyses recorded yet.")
		return nil
	}

	fmt.Printf("%-17s %-25s %8s  %s\n", "When", "Resume", "Score", "Missing")
	fmt.Println(strings.Repeat("─", 72))
	for _, r := range records {
		missing := strings.Join(r.Missing, ", ")
		if missing == "" {
			missing = "-"
		}
		fmt.Printf("%-17s %-25s %8s  %s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			truncate(r.ResumeName, 25),
			report.FormatPercent(r.Percent),
			missing,
		)
	}
	return nil
}

func validateLimit(n int) error {
	if n < 1 {
		return fmt.Errorf("--limit must be at least 1, got %d", n)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
