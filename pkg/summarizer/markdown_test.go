package summarizer

import (
	"strings"
	"testing"
	"time"
)

func TestMarkdownFormatter_Format_Basic(t *testing.T) {
	formatter := NewMarkdownFormatter()

	summary := &Summary{
		GeneratedAt: time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC),
		Input: InputInfo{
			Path:       "clip.mp4",
			FrameCount: 240,
			Timescale:  12800,
			Width:      640,
			Height:     360,
		},
		Pacing: PacingInfo{
			ReorderDepth: 2,
			DtsDelay:     1024,
			PacketCount:  240,
		},
		Settings: Settings{
			DepthPolicy: "as_reported",
			Quality:     25,
			Bitrate:     2000,
			GopSize:     60,
		},
		Output: OutputInfo{
			Path:          "paced.mp4",
			FileSize:      1024 * 1024, // 1 MB
			DurationTicks: 122880,
		},
	}

	result := formatter.Format(summary)

	checks := []string{
		"# Pacing Summary",
		"clip.mp4",
		"640x360",
		"Reorder depth: 2",
		"DTS delay: 1024 ticks",
		"as_reported",
		"2000 kbps",
		"paced.mp4",
		"1.00 MB",
		"9.60 s",
	}

	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q", check)
		}
	}
}

func TestMarkdownFormatter_Format_UnresolvedChapters(t *testing.T) {
	formatter := NewMarkdownFormatter()

	summary := NewBuilder().
		WithPacing(PacingInfo{UnresolvedChapters: 2}).
		Build()

	result := formatter.Format(summary)
	if !strings.Contains(result, "Unresolved chapters: 2") {
		t.Error("expected output to report unresolved chapters")
	}
}

func TestMarkdownFormatter_Format_NoUnresolvedChapters(t *testing.T) {
	formatter := NewMarkdownFormatter()

	result := formatter.Format(NewSummary())
	if strings.Contains(result, "Unresolved chapters") {
		t.Error("expected no unresolved chapter line when count is zero")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{512, "512 bytes"},
		{2048, "2.00 KB"},
		{3 * 1024 * 1024, "3.00 MB"},
	}

	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
