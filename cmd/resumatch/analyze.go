package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/amishk599/resumatch/internal/analyze"
	"github.com/amishk599/resumatch/internal/report"
	"github.com/spf13/cobra"
)

var (
	analyzeResume  string
	analyzeJob     string
	analyzeJobText string
	analyzeFormat  string
	analyzeWidth   int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one resume against a job description and exit",
	Long: `One-shot analysis. The job description comes from a file (--job FILE),
stdin (--job -) or the command line (--job-text). Prints the report and exits
non-zero with a short message on failure.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "resume file (PDF, DOCX or plain text)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "job description file, or - for stdin")
	analyzeCmd.Flags().StringVar(&analyzeJobText, "job-text", "", "job description text")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "text", "output format: text, json or log")
	analyzeCmd.Flags().IntVar(&analyzeWidth, "width", 80, "text output width")
	analyzeCmd.MarkFlagsMutuallyExclusive("job", "job-text")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	reporter, err := report.New(analyzeFormat, cmd.OutOrStdout(), analyzeWidth, logger)
	if err != nil {
		logger.Error("invalid output format", "error", err)
		os.Exit(1)
	}

	job, err := readJob(cmd.InOrStdin())
	if err != nil {
		logger.Error("failed to read job description", "error", err)
		os.Exit(1)
	}

	history, closeHistory, err := setupHistory(cfg, logger)
	if err != nil {
		logger.Error("failed to open history", "error", err)
		os.Exit(1)
	}
	defer closeHistory()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := buildService(cfg, history, logger)
	rep, err := runOnce(ctx, svc, analyzeResume, job)
	if err != nil {
		// The short message is the whole output; cobra must not repeat it.
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		logger.Debug("analysis failed", "error", err)
		fmt.Fprintln(cmd.ErrOrStderr(), analyze.UserMessage(err))
		return err
	}

	if err := reporter.Report(rep); err != nil {
		return err
	}

	if n := setupNotifier(cfg, newHTTPClient(), logger); n != nil {
		if err := n.Report(rep); err != nil {
			logger.Error("notification failed", "error", err)
		}
	}
	return nil
}

func runOnce(ctx context.Context, svc *analyze.Service, resumePath, job string) (analyze.Report, error) {
	req, err := analyze.RequestFromFile(resumePath, job)
	if err != nil {
		return analyze.Report{}, err
	}
	return svc.Analyze(ctx, req)
}

// readJob returns the job description from --job-text, the --job file, or
// stdin when --job is "-".
func readJob(stdin io.Reader) (string, error) {
	switch {
	case analyzeJobText != "":
		return analyzeJobText, nil
	case analyzeJob == "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	case strings.TrimSpace(analyzeJob) != "":
		b, err := os.ReadFile(analyzeJob)
		if err != nil {
			return "", fmt.Errorf("reading job file: %w", err)
		}
		return string(b), nil
	}
	return "", nil
}
