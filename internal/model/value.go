// internal/model/value.go
package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Text is a form field that accepts any JSON value. Non-string values keep
// their JSON text; null, false and 0 decode to "" like a missing field.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*t = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case 'n', 'f':
		*t = ""
	default:
		if v, err := strconv.ParseFloat(string(data), 64); err == nil && v == 0 {
			*t = ""
			return nil
		}
		var compact bytes.Buffer
		if err := json.Compact(&compact, data); err != nil {
			return err
		}
		*t = Text(compact.String())
	}
	return nil
}

func (t Text) String() string {
	return string(t)
}

// Scalar keeps a submitted JSON value exactly as sent, so a part quantity
// of 2, "2" or "two" is stored the way the customer typed it.
type Scalar []byte

func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = nil
		return nil
	}
	*s = append((*s)[0:0], data...)
	return nil
}

// MarshalJSON writes the stored value back unchanged. Bytes that are not
// valid JSON are written as a string.
func (s Scalar) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return []byte("null"), nil
	}
	if !json.Valid(s) {
		return json.Marshal(string(s))
	}
	return s, nil
}

// String renders the value for summaries: strings without quotes, anything
// else as its JSON text, and missing or null as "".
func (s Scalar) String() string {
	if len(s) == 0 || bytes.Equal(s, []byte("null")) {
		return ""
	}
	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(s, &str); err == nil {
			return str
		}
	}
	return string(s)
}

// Blank reports whether the value is missing, null, false, "" or a numeric zero.
// Quoted text is blank only when empty.
func (s Scalar) Blank() bool {
	if len(s) == 0 || bytes.Equal(s, []byte("null")) || bytes.Equal(s, []byte("false")) {
		return true
	}
	if s[0] == '"' {
		return s.String() == ""
	}
	v, err := strconv.ParseFloat(string(s), 64)
	return err == nil && v == 0
}
