package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/amishk599/resumatch/internal/analyze"
)

// Ensure SlackReporter implements Reporter.
var _ Reporter = (*SlackReporter)(nil)

// SlackReporter posts a report summary to a Slack channel via Incoming Webhooks.
type SlackReporter struct {
	webhookURL string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewSlackReporter returns a reporter that posts each report to Slack via webhook.
func NewSlackReporter(webhookURL string, httpClient *http.Client, logger *slog.Logger) *SlackReporter {
	return &SlackReporter{
		webhookURL: webhookURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Report sends one Block Kit message. A 429 is retried once after the
// Retry-After delay.
func (s *SlackReporter) Report(r analyze.Report) error {
	body, err := json.Marshal(buildPayload(r))
	if err != nil {
		return fmt.Errorf("marshal slack payload: %w", err)
	}

	resp, err := s.httpClient.Post(s.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post to slack: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		secs, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		if secs <= 0 {
			secs = 1
		}
		s.logger.Warn("slack rate limited, retrying", "retry_after_secs", secs)
		time.Sleep(time.Duration(secs) * time.Second)

		resp2, err := s.httpClient.Post(s.webhookURL, "application/json", bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("post to slack (retry): %w", err)
		}
		defer resp2.Body.Close()

		if resp2.StatusCode != http.StatusOK {
			return fmt.Errorf("slack returned %d on retry", resp2.StatusCode)
		}
		s.logger.Info("slack message sent", "resume", r.ResumeName, "retried", true)
		return nil
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack returned %d", resp.StatusCode)
	}
	s.logger.Info("slack message sent", "resume", r.ResumeName)
	return nil
}

// Block Kit payload types.

type slackPayload struct {
	Blocks []slackBlock `json:"blocks"`
}

type slackBlock struct {
	Type   string      `json:"type"`
	Text   *slackText  `json:"text,omitempty"`
	Fields []slackText `json:"fields,omitempty"`
}

type slackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func skillList(items []string, empty string) string {
	if len(items) == 0 {
		return "_" + empty + "_"
	}
	return strings.Join(items, ", ")
}

func buildPayload(r analyze.Report) slackPayload {
	name := r.ResumeName
	if name == "" {
		name = "resume"
	}

	return slackPayload{Blocks: []slackBlock{
		{
			Type: "header",
			Text: &slackText{Type: "plain_text", Text: "📄 " + name + ": " + FormatPercent(r.Percent) + " Match"},
		},
		{
			Type: "section",
			Fields: []slackText{
				{Type: "mrkdwn", Text: "*Matched Skills:*\n" + skillList(r.Result.Matched, noMatchedText)},
				{Type: "mrkdwn", Text: "*Missing Skills:*\n" + skillList(r.Result.Missing, noMissingText)},
			},
		},
		{Type: "divider"},
	}}
}
