package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED") // violet
	colorSuccess = lipgloss.Color("#10B981") // emerald
	colorError   = lipgloss.Color("#EF4444") // red
	colorInfo    = lipgloss.Color("#3B82F6") // blue
	colorMuted   = lipgloss.Color("#6B7280") // gray-500
	colorSubtle  = lipgloss.Color("#9CA3AF") // gray-400
	colorText    = lipgloss.Color("#F9FAFB") // gray-50
)

var (
	styleSuccess = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	styleError   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	styleInfo    = lipgloss.NewStyle().Foreground(colorInfo).Bold(true)
	styleDim     = lipgloss.NewStyle().Foreground(colorMuted)

	styleLabel = lipgloss.NewStyle().Foreground(colorSubtle).Width(14)
	styleValue = lipgloss.NewStyle().Foreground(colorText)

	styleHeader = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			MarginBottom(1)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "●"
)

// Success prints a success message.
func Success(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", styleSuccess.Render(iconSuccess), fmt.Sprintf(msg, args...))
}

// Error prints an error message.
func Error(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", styleError.Render(iconError), fmt.Sprintf(msg, args...))
}

// Info prints an info message.
func Info(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", styleInfo.Render(iconInfo), fmt.Sprintf(msg, args...))
}

// Label prints a key-value pair with consistent formatting.
func Label(key, value string) {
	fmt.Fprintf(os.Stderr, "  %s %s\n",
		styleLabel.Render(key),
		styleValue.Render(value))
}

// Dim prints dimmed text.
func Dim(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "  %s\n", styleDim.Render(fmt.Sprintf(msg, args...)))
}

// Header prints a section header.
func Header(title string) {
	fmt.Fprintf(os.Stderr, "\n%s\n", styleHeader.Render(title))
}

// FormatSize formats bytes as human readable string.
func FormatSize(b int64) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case b >= MB:
		return fmt.Sprintf("%.1f MB", float64(b)/MB)
	case b >= KB:
		return fmt.Sprintf("%.1f KB", float64(b)/KB)
	default:
		return fmt.Sprintf("%d B", b)
	}
}

// FormatDuration formats duration as human readable string.
func FormatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
