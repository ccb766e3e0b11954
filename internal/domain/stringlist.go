package domain

import (
	"encoding/json"
	"strings"
)

// StringList normalizes the loosely typed list fields the backend emits.
// Depending on the endpoint the same field arrives as a JSON array, a string
// containing a JSON array, or a comma-joined string; in memory it is always a
// plain slice.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*l = nil
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*l = splitList(s)
	return nil
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Contains reports whether the list holds v, ignoring case.
func (l StringList) Contains(v string) bool {
	for _, item := range l {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}

func splitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	// Embedded JSON array, e.g. `["Weight Loss","Immunity"]`.
	if strings.HasPrefix(s, "[") {
		var items []string
		if err := json.Unmarshal([]byte(s), &items); err == nil {
			return items
		}
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
