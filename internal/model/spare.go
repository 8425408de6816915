// internal/model/spare.go
package model

import (
	"fmt"
	"strings"
	"time"

	appErrors "github.com/unclebandit/autoshop-backend/internal/errors"
)

const (
	defaultPartQty    = "1"
	defaultPartAmount = "0"
	defaultTotal      = "0"
)

// Part quantities and amounts are stored exactly as submitted
type Part struct {
	Name   Text   `json:"name"`
	Qty    Scalar `json:"qty"`
	Amount Scalar `json:"amount"`
}

type SpareInput struct {
	Name    Text   `json:"name"`
	Phone   Text   `json:"phone"`
	Address Text   `json:"address"`
	Parts   []Part `json:"parts"`
	Total   Scalar `json:"total"`
}

type SpareRequest struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Parts     []Part    `json:"parts"`
	Total     Scalar    `json:"total"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewSpareRequest validates in and builds the summary text. Defaults for
// missing quantities, amounts and total only appear in Details.
func NewSpareRequest(in SpareInput, now time.Time) (*SpareRequest, error) {
	err := requireFields(
		field{"name", in.Name.String()},
		field{"phone", in.Phone.String()},
		field{"address", in.Address.String()},
	)
	if err != nil {
		return nil, err
	}
	if len(in.Parts) == 0 {
		return nil, appErrors.NewValidation("at least one spare part is required", "parts")
	}

	return &SpareRequest{
		ID:        newID(),
		Type:      TypeSpareParts,
		Name:      in.Name.String(),
		Phone:     in.Phone.String(),
		Address:   in.Address.String(),
		Parts:     in.Parts,
		Total:     in.Total,
		Details:   SpareDetails(in.Parts, in.Total),
		CreatedAt: now.UTC(),
	}, nil
}

// SpareDetails renders "<name> | Qty: <q> | Amount: <a>, ... | Total: <t>"
func SpareDetails(parts []Part, total Scalar) string {
	lines := make([]string, len(parts))
	for i, p := range parts {
		lines[i] = fmt.Sprintf("%s | Qty: %s | Amount: %s",
			p.Name, orDefault(p.Qty, defaultPartQty), orDefault(p.Amount, defaultPartAmount))
	}
	return fmt.Sprintf("%s | Total: %s", strings.Join(lines, ", "), orDefault(total, defaultTotal))
}

func orDefault(v Scalar, def string) string {
	if v.Blank() {
		return def
	}
	return v.String()
}

func (s *SpareRequest) CustomerRecord() CustomerRecord {
	return CustomerRecord{
		ID:        s.ID,
		Type:      s.Type,
		Name:      s.Name,
		Phone:     s.Phone,
		Address:   s.Address,
		Details:   s.Details,
		CreatedAt: s.CreatedAt,
	}
}
