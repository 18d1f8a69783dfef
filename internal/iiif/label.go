package iiif

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Label is a IIIF label: either a plain string (Presentation API v2) or a
// map of language tag to value list (v3). The two variants are closed; any
// other JSON shape is a decode error.
type Label struct {
	text      string
	languages map[string][]string
	isText    bool
}

// UnmarshalJSON decodes either label variant.
func (l *Label) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		l.text = s
		l.isText = true
		l.languages = nil
		return nil
	}

	var m map[string][]string
	if err := json.Unmarshal(data, &m); err == nil {
		l.languages = m
		l.isText = false
		l.text = ""
		return nil
	}

	return fmt.Errorf("label is neither a string nor a language map: %s", data)
}

// MarshalJSON encodes the variant that was decoded.
func (l Label) MarshalJSON() ([]byte, error) {
	if l.isText {
		return json.Marshal(l.text)
	}
	return json.Marshal(l.languages)
}

// Text extracts a display string from the label. Plain-string labels are
// returned as-is. Language-map labels prefer the first value under "en".
// When neither yields a value, the given 1-based index is used.
func (l Label) Text(index int) string {
	if l.isText {
		return l.text
	}
	if vals, ok := l.languages["en"]; ok && len(vals) > 0 {
		return vals[0]
	}
	return strconv.Itoa(index)
}
