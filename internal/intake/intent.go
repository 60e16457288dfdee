// Package intake turns raw transcript lines into order and wellness
// records. The heuristics are deliberately shallow keyword scans: they run
// on every utterance, so anything cleverer belongs upstream of the agent.
package intake

import "strings"

// Intent classifies one transcript line.
type Intent int

const (
	IntentChat Intent = iota
	IntentCoffee
	IntentWellness
)

func (i Intent) String() string {
	switch i {
	case IntentCoffee:
		return "coffee"
	case IntentWellness:
		return "wellness"
	}
	return "chat"
}

var coffeeKeywords = []string{"coffee", "latte", "americano", "espresso", "cappuccino", "mocha", "order", "iced"}

var wellnessKeywords = []string{"wellness", "well-being", "feeling", "mood", "energy", "stressed", "stress", "tired"}

// Detect classifies text by keyword scan. Coffee wins when both match.
func Detect(text string) Intent {
	t := strings.ToLower(text)
	if containsAny(t, coffeeKeywords) {
		return IntentCoffee
	}
	if containsAny(t, wellnessKeywords) {
		return IntentWellness
	}
	return IntentChat
}

func containsAny(t string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}
