package holidays

import (
	"encoding/json"
)

// Entry is a single day in the holiday JSON data.
type Entry struct {
	Holiday bool   `json:"holiday"`
	Name    string `json:"name"`
	Date    string `json:"date"`
	// Optional fields
	After  *bool  `json:"after,omitempty"`
	Target string `json:"target,omitempty"`
}

// UnmarshalJSON accepts the holiday field as either a boolean or a string;
// a non-empty string counts as a holiday.
func (e *Entry) UnmarshalJSON(data []byte) error {
	type alias Entry
	aux := &struct {
		Holiday interface{} `json:"holiday"`
		*alias
	}{
		alias: (*alias)(e),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	switch v := aux.Holiday.(type) {
	case bool:
		e.Holiday = v
	case string:
		e.Holiday = v != ""
	default:
		e.Holiday = false
	}
	return nil
}

// File is the on-disk layout: a list of years, each mapping "MM-DD" to an
// entry.
type File []struct {
	Year    string            `json:"year"`
	Holiday map[string]*Entry `json:"holiday"`
}

// Table indexes entries by year string, then by "MM-DD".
type Table map[string]map[string]*Entry

// Info annotates a calendar day.
type Info struct {
	IsHoliday bool // false marks a make-up working day
	Name      string
}
