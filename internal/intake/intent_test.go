package intake

import "testing"

func TestDetect(t *testing.T) {
	cases := []struct {
		text string
		want Intent
	}{
		{"I'd like a latte please", IntentCoffee},
		{"can I order an iced americano", IntentCoffee},
		{"I'm feeling a bit tired today", IntentWellness},
		{"my energy is low", IntentWellness},
		{"nice weather we're having", IntentChat},
		{"", IntentChat},
		{"LARGE CAPPUCCINO FOR SAM", IntentCoffee},
		// Both vocabularies match; coffee wins.
		{"coffee always lifts my mood", IntentCoffee},
	}
	for _, c := range cases {
		if got := Detect(c.text); got != c.want {
			t.Fatalf("Detect(%q) = %s, want %s", c.text, got, c.want)
		}
	}
}

func TestIntentString(t *testing.T) {
	if IntentCoffee.String() != "coffee" {
		t.Fatalf("unexpected coffee label: %s", IntentCoffee)
	}
	if IntentWellness.String() != "wellness" {
		t.Fatalf("unexpected wellness label: %s", IntentWellness)
	}
	if IntentChat.String() != "chat" {
		t.Fatalf("unexpected chat label: %s", IntentChat)
	}
}
