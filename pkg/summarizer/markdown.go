package summarizer

import (
	"fmt"
	"strings"
	"time"
)

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used to translate labels.
func WithTranslator(fn func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = fn
	}
}

// WithVersion adds the tool version to the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Extraction Summary"))

	fmt.Fprintf(&b, "## %s\n\n", t("Source"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	fmt.Fprintf(&b, "| %s | %s |\n", t("Video"), escapeCell(s.Source.Path))
	fmt.Fprintf(&b, "| %s | %s |\n", t("Duration"), formatDuration(s.Source.Duration))
	fmt.Fprintf(&b, "| %s | %.3f |\n", t("Frame Rate"), s.Source.FrameRate)
	fmt.Fprintf(&b, "| %s | %d |\n", t("Reported Frames"), s.Source.TotalFrames)
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Settings"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	fmt.Fprintf(&b, "| %s | %d fps (%s) |\n", t("Target Rate"), s.Settings.TargetFPS, fmt.Sprintf(t("every %d frames"), s.Settings.Interval))
	fmt.Fprintf(&b, "| %s | %s |\n", t("Format"), strings.ToUpper(s.Settings.Format))
	if s.Settings.Quality > 0 {
		fmt.Fprintf(&b, "| %s | %d |\n", t("Quality"), s.Settings.Quality)
	}
	if s.Settings.Width > 0 {
		fmt.Fprintf(&b, "| %s | %d px |\n", t("Width"), s.Settings.Width)
	} else {
		fmt.Fprintf(&b, "| %s | %s |\n", t("Width"), t("Original"))
	}
	fmt.Fprintf(&b, "| %s | %s |\n", t("Timestamp Overlay"), yesNo(t, s.Settings.Timestamp))
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Output"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	fmt.Fprintf(&b, "| %s | %s |\n", t("Directory"), escapeCell(s.Output.Directory))
	fmt.Fprintf(&b, "| %s | %d |\n", t("Frames Read"), s.Output.FramesRead)
	fmt.Fprintf(&b, "| %s | %d |\n", t("Frames Saved"), s.Output.FramesSaved)
	if s.Output.FramesRead > 0 {
		fmt.Fprintf(&b, "| %s | %.2f%% |\n", t("Sampling Ratio"), s.SamplingRatio()*100)
	}
	fmt.Fprintf(&b, "| %s | %s |\n", t("Total Size"), formatBytes(s.Output.TotalBytes))
	if s.Output.FirstFile != "" {
		fmt.Fprintf(&b, "| %s | %s |\n", t("First File"), escapeCell(s.Output.FirstFile))
		fmt.Fprintf(&b, "| %s | %s |\n", t("Last File"), escapeCell(s.Output.LastFile))
	}
	if s.Output.Elapsed > 0 {
		fmt.Fprintf(&b, "| %s | %s |\n", t("Elapsed"), s.Output.Elapsed.Round(time.Millisecond))
	}
	b.WriteString("\n")

	b.WriteString("---\n\n")
	footer := fmt.Sprintf(t("Generated at %s"), s.GeneratedAt.Format(time.RFC3339))
	if f.version != "" {
		footer += " (exportframes " + f.version + ")"
	}
	b.WriteString(footer + "\n")

	return b.String()
}

func yesNo(t func(string) string, v bool) string {
	if v {
		return t("Yes")
	}
	return t("No")
}

// escapeCell keeps pipe characters in paths from breaking the table.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// formatDuration renders d as H:MM:SS.mmm.
func formatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	secs := ms / 1000
	return fmt.Sprintf("%d:%02d:%02d.%03d", secs/3600, secs/60%60, secs%60, ms%1000)
}

// formatBytes renders a byte count with binary units.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 3; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMGT"[exp])
}
