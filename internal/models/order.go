package models

// Order is one barista order as stored in the orders file. The store keeps
// records loosely typed, so this struct names only the fields the system
// writes or renders; anything else a writer adds travels through the read
// path as raw JSON untouched.
type Order struct {
	ID        int64    `json:"id"`
	DrinkType string   `json:"drinkType"`
	Size      string   `json:"size"`
	Milk      string   `json:"milk"`
	Extras    []string `json:"extras"`
	Name      string   `json:"name"`
	RawText   string   `json:"raw_text"`
	Timestamp string   `json:"timestamp"`
}
