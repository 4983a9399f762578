// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color (neon cyan).
	PrimaryColor = lipgloss.Color("#22D3EE")
	// IncomeColor marks income figures.
	IncomeColor = lipgloss.Color("#34D399") // Emerald
	// ExpenseColor marks expense figures.
	ExpenseColor = lipgloss.Color("#E879F9") // Fuchsia
	// WarningColor marks overdue alerts.
	WarningColor = lipgloss.Color("#F87171") // Red
	// SubtleColor is for less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// IncomeStyle formats income amounts.
	IncomeStyle = lipgloss.NewStyle().
			Foreground(IncomeColor)

	// ExpenseStyle formats expense amounts.
	ExpenseStyle = lipgloss.NewStyle().
			Foreground(ExpenseColor)

	// WarningStyle formats overdue warnings.
	WarningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(WarningColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)
)

// Money formats an amount with the configured currency symbol. Amounts are
// currency-agnostic decimals; the symbol is display-only.
func Money(symbol string, amount float64) string {
	return fmt.Sprintf("%s%.2f", symbol, amount)
}
