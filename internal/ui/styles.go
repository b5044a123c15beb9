package ui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Color scheme
var (
	ColorPrimary   = lipgloss.Color("#00D9FF")
	ColorSecondary = lipgloss.Color("#7C3AED")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorInfo      = lipgloss.Color("#3B82F6")

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#9CA3AF")
	ColorTextMuted     = lipgloss.Color("#6B7280")
)

// Common styles
var (
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	StyleStatus = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning)

	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Italic(true)

	StyleInput = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	StyleTextSecondary = lipgloss.NewStyle().
				Foreground(ColorTextSecondary).
				Italic(true)

	StyleTextMuted = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	StyleHelpHeading = lipgloss.NewStyle().
				Foreground(ColorTextPrimary).
				Underline(true)
)

// regionStyle returns the bordered box used for one screen region
func regionStyle(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color)
}

// ansiRegex matches ANSI color codes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes ANSI color codes from a string
func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// truncate cuts s to maxLen display columns, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	stripped := stripANSI(s)
	if runewidth.StringWidth(stripped) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return runewidth.Truncate(stripped, maxLen, "")
	}

	return runewidth.Truncate(stripped, maxLen-3, "") + "..."
}

// truncateLeft keeps the last maxLen display columns of s, marking the cut
// with a leading "..."
func truncateLeft(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxLen {
		return s
	}

	prefix := "..."
	if maxLen <= len(prefix) {
		prefix = ""
	}

	runes := []rune(s)
	budget := maxLen - len(prefix)
	start := len(runes)
	for start > 0 {
		w := runewidth.RuneWidth(runes[start-1])
		if w > budget {
			break
		}
		budget -= w
		start--
	}
	return prefix + string(runes[start:])
}

// clampHeight drops rows from the top of frame until it fits in height, so
// the command region stays on screen in very short terminals
func clampHeight(frame string, height int) string {
	if height <= 0 {
		return frame
	}
	rows := strings.Split(frame, "\n")
	if len(rows) <= height {
		return frame
	}
	return strings.Join(rows[len(rows)-height:], "\n")
}

// line is one row of region content, styled after truncation so that
// escape codes never count against the width
type line struct {
	text  string
	style lipgloss.Style
}

// fitLines truncates every line to width and pads or cuts the list to height
func fitLines(lines []line, width, height int) string {
	if height < 1 {
		height = 1
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	out := make([]string, 0, height)
	for _, l := range lines {
		out = append(out, l.style.Render(truncate(l.text, width)))
	}
	for len(out) < height {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}
