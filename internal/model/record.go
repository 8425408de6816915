// internal/model/record.go
package model

import (
	"strings"

	"github.com/google/uuid"

	appErrors "github.com/unclebandit/autoshop-backend/internal/errors"
)

const (
	TypeAppointment = "Appointment"
	TypeSpareParts  = "Spare Parts"
)

func newID() string {
	return uuid.NewString()
}

// field pairs a request field name with its submitted value
type field struct {
	name  string
	value string
}

// requireFields returns a ValidationError naming every blank field, in order
func requireFields(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return appErrors.NewValidation("", missing...)
	}
	return nil
}
