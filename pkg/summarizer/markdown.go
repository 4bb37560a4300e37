package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownFormatter formats a Summary as a Markdown document.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format converts a Summary to a Markdown string.
func (f *MarkdownFormatter) Format(summary *Summary) string {
	var b strings.Builder

	b.WriteString("# Pacing Summary\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", summary.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	b.WriteString("## Input\n\n")
	fmt.Fprintf(&b, "- Path: %s\n", summary.Input.Path)
	fmt.Fprintf(&b, "- Frames: %d\n", summary.Input.FrameCount)
	fmt.Fprintf(&b, "- Size: %dx%d\n", summary.Input.Width, summary.Input.Height)
	fmt.Fprintf(&b, "- Timescale: %d\n\n", summary.Input.Timescale)

	b.WriteString("## Pacing\n\n")
	fmt.Fprintf(&b, "- Reorder depth: %d\n", summary.Pacing.ReorderDepth)
	fmt.Fprintf(&b, "- DTS delay: %d ticks\n", summary.Pacing.DtsDelay)
	fmt.Fprintf(&b, "- Packets: %d\n", summary.Pacing.PacketCount)
	if summary.Pacing.UnresolvedChapters > 0 {
		fmt.Fprintf(&b, "- Unresolved chapters: %d ⚠️\n", summary.Pacing.UnresolvedChapters)
	}
	b.WriteString("\n")

	b.WriteString("## Settings\n\n")
	fmt.Fprintf(&b, "- Depth policy: %s\n", summary.Settings.DepthPolicy)
	fmt.Fprintf(&b, "- Quality (CRF): %d\n", summary.Settings.Quality)
	fmt.Fprintf(&b, "- Bitrate: %d kbps\n", summary.Settings.Bitrate)
	fmt.Fprintf(&b, "- GOP size: %d\n\n", summary.Settings.GopSize)

	b.WriteString("## Output\n\n")
	fmt.Fprintf(&b, "- Path: %s\n", summary.Output.Path)
	fmt.Fprintf(&b, "- Duration: %.2f s (%d ticks)\n", summary.DurationSec(), summary.Output.DurationTicks)
	fmt.Fprintf(&b, "- File size: %s\n", formatBytes(summary.Output.FileSize))

	return b.String()
}

// formatBytes formats a byte count in human-readable units.
func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.2f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.2f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}

// Ensure MarkdownFormatter implements Formatter
var _ Formatter = (*MarkdownFormatter)(nil)
