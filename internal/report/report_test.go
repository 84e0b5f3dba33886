package report

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/amishk599/resumatch/internal/analyze"
	"github.com/amishk599/resumatch/internal/model"
)

func sampleReport(matched, missing []string) analyze.Report {
	return analyze.Report{
		ID:         uuid.MustParse("7f0b3c1e-9a52-4a47-8f5e-0d3c2b1a9e88"),
		ResumeName: "resume.pdf",
		CreatedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Result: model.MatchResult{
			Score:   0.4217,
			Matched: matched,
			Missing: missing,
		},
		Percent: 42.17,
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		report  analyze.Report
		want    []string
		notWant []string
	}{
		{
			name:    "both lists",
			report:  sampleReport([]string{"python", "sql"}, []string{"excel"}),
			want:    []string{"Match Score", "42.17% Match", "Matched Skills", "Missing Skills", "python, sql", "excel"},
			notWant: []string{noMatchedText, noMissingText},
		},
		{
			name:   "nothing matched",
			report: sampleReport(nil, []string{"excel"}),
			want:   []string{noMatchedText, "excel"},
		},
		{
			name:   "nothing missing",
			report: sampleReport([]string{"python"}, nil),
			want:   []string{"python", noMissingText},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Render(tt.report, 80)
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("Render output missing %q:\n%s", w, out)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("Render output unexpectedly contains %q", w)
				}
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	tests := map[float64]string{
		0:     "0.00%",
		50:    "50.00%",
		42.17: "42.17%",
		100:   "100.00%",
	}
	for in, want := range tests {
		if got := FormatPercent(in); got != want {
			t.Errorf("FormatPercent(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONReporter(&buf).Report(sampleReport([]string{"python"}, nil)); err != nil {
		t.Fatalf("Report: %v", err)
	}

	var got jsonReport
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, buf.String())
	}
	if got.Resume != "resume.pdf" || got.Percent != 42.17 || got.Score != 0.4217 {
		t.Errorf("report = %+v", got)
	}
	if len(got.MatchedSkills) != 1 || got.MatchedSkills[0] != "python" {
		t.Errorf("MatchedSkills = %v", got.MatchedSkills)
	}
	if !strings.Contains(buf.String(), `"missing_skills": []`) {
		t.Errorf("missing_skills should encode as an empty array:\n%s", buf.String())
	}
}

func TestLogReporter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	if err := NewLogReporter(logger).Report(sampleReport([]string{"python"}, []string{"excel"})); err != nil {
		t.Errorf("Report = %v, want nil", err)
	}
	out := buf.String()
	for _, want := range []string{"match result", "resume=resume.pdf", "percent=42.17"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	for _, format := range []string{"", "text", "json", "log"} {
		if _, err := New(format, &buf, 80, logger); err != nil {
			t.Errorf("New(%q): %v", format, err)
		}
	}
	if _, err := New("yaml", &buf, 80, logger); err == nil {
		t.Error("New(yaml): expected error")
	}
}

func TestTextReporter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTextReporter(&buf, 80).Report(sampleReport(nil, nil)); err != nil {
		t.Fatalf("Report: %v", err)
	}
	if !strings.Contains(buf.String(), noMatchedText) || !strings.Contains(buf.String(), noMissingText) {
		t.Errorf("text output:\n%s", buf.String())
	}
}
