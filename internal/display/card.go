package display

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Krunal-Kurkure/ten-days-of-voice-agents-2025/internal/models"
)

// renderCard draws one order as the populated-state card. The record is
// decoded loosely: fields it never carried render as placeholders instead
// of failing the whole card.
func renderCard(raw json.RawMessage, file string, loc *time.Location) string {
	var order models.Order
	_ = json.Unmarshal(raw, &order)

	rows := []string{
		row("Drink", orDash(order.DrinkType)),
		row("Size", orDash(order.Size)),
		row("Milk", orDash(order.Milk)),
		row("Extras", extrasLine(order.Extras)),
		row("Name", orDash(order.Name)),
		row("Placed", formatTimestamp(order.Timestamp, loc)),
	}
	card := cardStyle.Render(strings.Join(rows, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, card, fileStyle.Render("from "+file))
}

func row(label, value string) string {
	return labelStyle.Render(label) + " " + value
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func extrasLine(extras []string) string {
	if len(extras) == 0 {
		return "None"
	}
	return strings.Join(extras, ", ")
}

var timestampLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"}

// formatTimestamp renders a store timestamp in local time. Values no layout
// recognizes pass through verbatim rather than vanish.
func formatTimestamp(ts string, loc *time.Location) string {
	if ts == "" {
		return ""
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.In(loc).Format("Jan 2, 2006 3:04 PM")
		}
	}
	return ts
}
