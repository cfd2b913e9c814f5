package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("28"))
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("108"))
	soldStyle     = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("240"))
	panelStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("28")).
			Padding(1, 2)
	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("28"))
	tabInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	userBubbleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("28")).Padding(0, 1)
	modelBubbleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("194")).Padding(0, 1)
)

// rupees renders an amount with thousands separators, e.g. ₹116,500.
// The amount is rounded to whole paise before splitting, so a
// fractional part that rounds up carries into the rupee digits.
func rupees(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	paise := int64(math.Round(amount * 100))
	whole := paise / 100
	frac := paise % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := "₹" + b.String()
	if frac > 0 {
		out += fmt.Sprintf(".%02d", frac)
	}
	if neg {
		out = "-" + out
	}
	return out
}

func tabs(names []string, active int) string {
	parts := make([]string, len(names))
	for i, n := range names {
		if i == active {
			parts[i] = tabActiveStyle.Render(n)
		} else {
			parts[i] = tabInactiveStyle.Render(n)
		}
	}
	return strings.Join(parts, "  ·  ")
}
