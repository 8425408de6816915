// internal/model/feedback.go
package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	appErrors "github.com/unclebandit/autoshop-backend/internal/errors"
)

// FeedbackInput keeps rating raw so both 4.5 and "4.5" are accepted
type FeedbackInput struct {
	Name    Text            `json:"name"`
	Message Text            `json:"message"`
	Rating  json.RawMessage `json:"rating"`
}

type Feedback struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewFeedback(in FeedbackInput, now time.Time) (*Feedback, error) {
	if err := requireFields(field{"name", in.Name.String()}, field{"message", in.Message.String()}); err != nil {
		return nil, err
	}

	rating, ok := ParseRating(in.Rating)
	if !ok {
		return nil, appErrors.NewValidation("rating must be a number greater than 0", "rating")
	}

	return &Feedback{
		ID:        newID(),
		Name:      in.Name.String(),
		Message:   in.Message.String(),
		Rating:    rating,
		CreatedAt: now.UTC(),
	}, nil
}

// ParseRating coerces a JSON number or numeric string to a finite value > 0
func ParseRating(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}

	text := string(raw)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		text = strings.TrimSpace(s)
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}
