package intake

import (
	"strings"
	"time"

	"github.com/Krunal-Kurkure/ten-days-of-voice-agents-2025/internal/models"
)

var positiveMoodWords = []string{"good", "great", "fine", "happy"}

var lowMoodWords = []string{"tired", "low", "exhausted"}

var checkInTriggers = []string{"i'm feeling", "i am feeling", "feeling", "mood", "energy", "wellness", "check-in", "check in"}

// BuildWellnessEntry distills an utterance into a check-in record. Mood and
// energy are judged by keyword, with the low reading winning when both
// appear; everything unsaid stays blank rather than guessed.
func BuildWellnessEntry(text, speaker string, now time.Time) models.WellnessEntry {
	t := strings.ToLower(text)

	mood := ""
	if containsAny(t, positiveMoodWords) {
		mood = "positive"
	}
	if containsAny(t, lowMoodWords) {
		mood = "low"
	}

	energy := ""
	if strings.Contains(t, "high energy") || strings.Contains(t, "energetic") {
		energy = "high"
	}
	if strings.Contains(t, "low energy") || strings.Contains(t, "tired") {
		energy = "low"
	}

	if speaker == "" {
		speaker = "unknown"
	}
	return models.WellnessEntry{
		ID:         now.UnixMilli(),
		Mood:       mood,
		Energy:     energy,
		Stress:     "",
		Objectives: []string{},
		Summary:    text,
		Speaker:    speaker,
		Timestamp:  now.UTC().Format(time.RFC3339),
	}
}

// LooksLikeCheckIn reports whether a wellness-intent utterance is an
// actual check-in rather than passing mention.
func LooksLikeCheckIn(text string) bool {
	return containsAny(strings.ToLower(text), checkInTriggers)
}
