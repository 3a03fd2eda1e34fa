package components

import "fmt"

// SummaryRow represents a key-value pair in the summary.
type SummaryRow struct {
	Key   string
	Value string
}

// SummaryBox renders a 2-column key/value grid in a bordered box.
type SummaryBox struct {
	Rows   []SummaryRow
	styles Styles
}

// NewSummaryBox creates a new summary box.
func NewSummaryBox(rows []SummaryRow, styles Styles) SummaryBox {
	return SummaryBox{Rows: rows, styles: styles}
}

// View renders the summary box.
func (s SummaryBox) View(width int) string {
	boxWidth := width - 8
	if boxWidth < 30 {
		boxWidth = 30
	}

	var content string
	for _, row := range s.Rows {
		key := s.styles.SummaryKey.Render(row.Key)
		value := s.styles.SummaryValue.Render(row.Value)
		content += fmt.Sprintf("  %s  %s\n", key, value)
	}

	return "  " + s.styles.Box.Width(boxWidth).Render(content)
}
