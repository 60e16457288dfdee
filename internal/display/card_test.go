package display

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCardPlaceholders(t *testing.T) {
	raw := json.RawMessage(`{"drinkType":"latte","timestamp":"2024-01-01T00:00:00Z"}`)
	view := renderCard(raw, "/srv/orders.json", time.UTC)

	for _, label := range []string{"Drink", "Size", "Milk", "Extras", "Name", "Placed"} {
		assert.Contains(t, view, label)
	}
	assert.Contains(t, view, "latte")
	assert.Contains(t, view, "None")
	assert.Contains(t, view, "Jan 1, 2024")
	assert.Contains(t, view, "from /srv/orders.json")
	// Size, milk and name were absent; nothing else renders a dash.
	assert.Equal(t, 3, strings.Count(view, "-"))
}

func TestRenderCardFullOrder(t *testing.T) {
	raw := json.RawMessage(`{"id":1,"drinkType":"cappuccino","size":"large","milk":"oat",` +
		`"extras":["extra shot","caramel"],"name":"Alex","timestamp":"2024-06-01T09:30:00Z"}`)
	view := renderCard(raw, "/srv/orders.json", time.UTC)

	assert.Contains(t, view, "cappuccino")
	assert.Contains(t, view, "large")
	assert.Contains(t, view, "oat")
	assert.Contains(t, view, "extra shot, caramel")
	assert.Contains(t, view, "Alex")
	assert.Contains(t, view, "Jun 1, 2024")
	assert.NotContains(t, view, "-")
}

func TestRenderCardLeavesTimestampBlank(t *testing.T) {
	view := renderCard(json.RawMessage(`{"drinkType":"latte"}`), "/srv/orders.json", time.UTC)

	var placed string
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "Placed") {
			placed = line
			break
		}
	}
	require.NotEmpty(t, placed, "card must keep the Placed row")
	assert.NotContains(t, placed, "-", "an absent timestamp renders blank, not as a dash")
}

func TestRenderCardToleratesGarbageRecord(t *testing.T) {
	view := renderCard(json.RawMessage(`"not an object"`), "/srv/orders.json", time.UTC)

	assert.Contains(t, view, "Drink")
	assert.Contains(t, view, "None")
	assert.Contains(t, view, "from /srv/orders.json")
}

func TestFormatTimestamp(t *testing.T) {
	t.Run("localizes RFC3339", func(t *testing.T) {
		loc := time.FixedZone("test", -8*60*60)
		assert.Equal(t, "Jan 1, 2024 2:00 AM", formatTimestamp("2024-01-01T10:00:00Z", loc))
	})

	t.Run("accepts a zoneless layout", func(t *testing.T) {
		assert.Equal(t, "Jun 1, 2024 9:30 AM", formatTimestamp("2024-06-01T09:30:00", time.UTC))
	})

	t.Run("blank stays blank", func(t *testing.T) {
		assert.Equal(t, "", formatTimestamp("", time.UTC))
	})

	t.Run("unparsed values pass through", func(t *testing.T) {
		assert.Equal(t, "yesterday", formatTimestamp("yesterday", time.UTC))
	})
}

func TestExtrasLine(t *testing.T) {
	assert.Equal(t, "None", extrasLine(nil))
	assert.Equal(t, "None", extrasLine([]string{}))
	assert.Equal(t, "whipped, cinnamon", extrasLine([]string{"whipped", "cinnamon"}))
}
