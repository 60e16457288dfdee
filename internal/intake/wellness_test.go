package intake

import (
	"testing"
	"time"
)

func TestBuildWellnessEntryMoodAndEnergy(t *testing.T) {
	cases := []struct {
		text       string
		wantMood   string
		wantEnergy string
	}{
		{"I'm feeling great today", "positive", ""},
		{"feeling tired and exhausted", "low", "low"},
		// The low reading wins when both vocabularies match.
		{"good but tired after the shift", "low", "low"},
		{"feeling energetic this morning", "", "high"},
		{"high energy and happy", "positive", "high"},
		{"nothing to report", "", ""},
	}
	now := time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)
	for _, c := range cases {
		entry := BuildWellnessEntry(c.text, "maria", now)
		if entry.Mood != c.wantMood {
			t.Fatalf("%q: mood = %q, want %q", c.text, entry.Mood, c.wantMood)
		}
		if entry.Energy != c.wantEnergy {
			t.Fatalf("%q: energy = %q, want %q", c.text, entry.Energy, c.wantEnergy)
		}
	}
}

func TestBuildWellnessEntryRecordFields(t *testing.T) {
	now := time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)
	entry := BuildWellnessEntry("I'm feeling fine", "", now)

	if entry.ID != now.UnixMilli() {
		t.Fatalf("unexpected id: %d", entry.ID)
	}
	if entry.Summary != "I'm feeling fine" {
		t.Fatalf("summary lost: %q", entry.Summary)
	}
	if entry.Speaker != "unknown" {
		t.Fatalf("blank speaker must become unknown, got %q", entry.Speaker)
	}
	if entry.Objectives == nil || len(entry.Objectives) != 0 {
		t.Fatalf("objectives must be an empty list, got %v", entry.Objectives)
	}
	if entry.Stress != "" {
		t.Fatalf("stress is never inferred, got %q", entry.Stress)
	}
	if entry.Timestamp != "2026-03-14T09:26:53Z" {
		t.Fatalf("unexpected timestamp: %q", entry.Timestamp)
	}
}

func TestBuildWellnessEntryKeepsSpeaker(t *testing.T) {
	entry := BuildWellnessEntry("feeling fine", "maria", time.Now())
	if entry.Speaker != "maria" {
		t.Fatalf("unexpected speaker: %q", entry.Speaker)
	}
}

func TestLooksLikeCheckIn(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"I'm feeling good today", true},
		{"let's do a wellness check in", true},
		{"my mood is off", true},
		{"the stressed syllable comes first", false},
		{"nice weather", false},
		{"", false},
	}
	for _, c := range cases {
		if got := LooksLikeCheckIn(c.text); got != c.want {
			t.Fatalf("LooksLikeCheckIn(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}
