package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ParseError reports a store file whose contents are not valid JSON.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ReadLatest reads the store at path and returns the raw last element of its
// top-level JSON array together with the array length. A store that parses
// but does not hold an array, and an empty array, both yield a nil record:
// there is no current record either way. Syntactically broken contents come
// back as a *ParseError; anything else is an I/O failure.
func ReadLatest(path string) (json.RawMessage, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			// Valid JSON of the wrong shape.
			return nil, 0, nil
		}
		return nil, 0, &ParseError{Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, 0, nil
	}
	return records[len(records)-1], len(records), nil
}
