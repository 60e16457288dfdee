package intake

import (
	"strings"
	"time"
	"unicode"

	"github.com/Krunal-Kurkure/ten-days-of-voice-agents-2025/internal/models"
)

var drinkNames = []string{"latte", "americano", "espresso", "cappuccino", "mocha", "flat white", "black coffee", "iced coffee"}

var sizeKeywords = []string{"small", "medium", "large", "regular"}

var milkKeywords = []string{"oat", "almond", "soy", "skim", "whole", "regular"}

var extraKeywords = []string{"whipped", "extra shot", "shot", "vanilla", "caramel", "syrup", "cinnamon"}

// OrderSlots holds whatever the keyword scan could pull out of an
// utterance. Empty fields mean the speaker never said it.
type OrderSlots struct {
	DrinkType string
	Size      string
	Milk      string
	Extras    []string
	Name      string
}

// ExtractOrderSlots scans text for drink, size, milk, extras and a
// "for <name>" customer name. First match wins for single-value slots;
// extras collect every keyword present, overlaps included ("extra shot"
// also matches "shot").
func ExtractOrderSlots(text string) OrderSlots {
	t := strings.ToLower(text)
	var slots OrderSlots

	for _, d := range drinkNames {
		if strings.Contains(t, d) {
			slots.DrinkType = d
			break
		}
	}
	for _, s := range sizeKeywords {
		if strings.Contains(t, s) {
			slots.Size = s
			break
		}
	}
	for _, m := range milkKeywords {
		if strings.Contains(t, m) {
			slots.Milk = m
			break
		}
	}
	for _, ex := range extraKeywords {
		if strings.Contains(t, ex) {
			slots.Extras = append(slots.Extras, ex)
		}
	}

	if _, after, ok := strings.Cut(t, " for "); ok {
		if fields := strings.Fields(after); len(fields) > 0 {
			slots.Name = title(fields[0])
		}
	}
	return slots
}

// BuildOrder fills the gaps in extracted slots with house defaults and
// stamps the record. The id doubles as a rough ordering key.
func BuildOrder(slots OrderSlots, rawText string, now time.Time) models.Order {
	order := models.Order{
		ID:        now.UnixMilli(),
		DrinkType: "coffee",
		Size:      "regular",
		Milk:      "regular",
		Extras:    []string{},
		Name:      "anonymous",
		RawText:   rawText,
		Timestamp: now.UTC().Format(time.RFC3339),
	}
	if slots.DrinkType != "" {
		order.DrinkType = slots.DrinkType
	}
	if slots.Size != "" {
		order.Size = slots.Size
	}
	if slots.Milk != "" {
		order.Milk = slots.Milk
	}
	if len(slots.Extras) > 0 {
		order.Extras = slots.Extras
	}
	if slots.Name != "" {
		order.Name = slots.Name
	}
	return order
}

var orderGateDrinks = []string{"latte", "americano", "espresso", "cappuccino", "mocha", "iced"}

var orderGateWords = []string{"order", "i'd like", "i would like", "i want"}

// LooksLikeOrder reports whether a coffee-intent utterance is concrete
// enough to save: it names a drink or size, addresses someone, or uses
// ordering language. Bare mentions of coffee stay chat.
func LooksLikeOrder(text string) bool {
	t := strings.ToLower(text)
	if containsAny(t, orderGateDrinks) {
		return true
	}
	if containsAny(t, sizeKeywords) {
		return true
	}
	if strings.Contains(t, " for ") || strings.Contains(t, "for ") {
		return true
	}
	return containsAny(t, orderGateWords)
}

func title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
