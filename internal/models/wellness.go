package models

// WellnessEntry is one wellness check-in as stored in the wellness file.
type WellnessEntry struct {
	ID         int64    `json:"id"`
	Mood       string   `json:"mood"`
	Energy     string   `json:"energy"`
	Stress     string   `json:"stress"`
	Objectives []string `json:"objectives"`
	Summary    string   `json:"summary"`
	Speaker    string   `json:"speaker"`
	Timestamp  string   `json:"timestamp"`
}
