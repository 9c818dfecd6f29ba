package styles

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/roster/internal/config"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 64

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Age:", "Email:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Roster"
	HeaderStyle   lipgloss.Style // For list column headers

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(0, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(lipgloss.Color(colors.Title))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg)).
		Background(lipgloss.Color(colors.WarningBg)).
		Padding(0, 1)
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// Field renders a "Label: value" line
func Field(label, value string) string {
	if value == "" {
		value = SubtitleStyle.Render("-")
	} else {
		value = ValueStyle.Render(value)
	}
	return LabelStyle.Render(label+":") + " " + value
}

// RenderCard wraps a title and its lines in a styled card border
func RenderCard(title string, lines ...string) string {
	content := TitleStyle.Render(title)
	if len(lines) > 0 {
		content += "\n\n" + strings.Join(lines, "\n")
	}
	return CardStyle.Render(content)
}

// Section renders a header followed by its lines, or a muted placeholder
// when there are none
func Section(title string, empty string, lines ...string) string {
	var b strings.Builder
	b.WriteString(SectionStyle.Render(title))
	b.WriteString("\n")
	if len(lines) == 0 {
		b.WriteString(SubtitleStyle.Render("  " + empty))
		return b.String()
	}
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  • " + line)
	}
	return b.String()
}

// Table renders rows under a header with columns padded to a common width
func Table(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	line := func(cells []string, style lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = style.Width(widths[i]).Render(c)
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	out := []string{line(header, HeaderStyle)}
	for _, row := range rows {
		out = append(out, line(row, ValueStyle))
	}
	return strings.Join(out, "\n")
}

// Empty renders the message shown in place of an empty list
func Empty(message string) string {
	return SubtitleStyle.Render(message)
}
