package models

import "encoding/json"

// Outcome classifies the result of a latest-record retrieval.
type Outcome int

const (
	OutcomeFound Outcome = iota
	OutcomeEmpty
	OutcomeNotFound
	OutcomeParseError
	OutcomeReadError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeEmpty:
		return "empty"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeParseError:
		return "parse_error"
	case OutcomeReadError:
		return "read_error"
	}
	return "unknown"
}

// Retrieval is the tagged result of looking up the most recent record in a
// store. Failure modes are part of the value, not Go errors: the transport
// layer decides status codes from the outcome alone.
type Retrieval struct {
	Outcome Outcome

	// File is the store path that was read. Empty for OutcomeNotFound.
	File string

	// Record is the raw last element of the store array, exactly as it
	// appears on disk. Nil for OutcomeEmpty, which downstream serializes
	// as an explicit null.
	Record json.RawMessage

	// Entries is the store array length at read time.
	Entries int

	// Candidates lists every probed path and Found the existing subset,
	// both in probe order. Set for OutcomeNotFound.
	Candidates []string
	Found      []string

	// Err describes the parse or read failure.
	Err string
}
