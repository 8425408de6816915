// internal/model/appointment.go
package model

import (
	"fmt"
	"time"
)

type AppointmentInput struct {
	Name    Text `json:"name"`
	Phone   Text `json:"phone"`
	Address Text `json:"address"`
	Vehicle Text `json:"vehicle"`
	Issue   Text `json:"issue"`
}

type Appointment struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Vehicle   string    `json:"vehicle"`
	Issue     string    `json:"issue"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewAppointment validates in and builds a record with a fresh id
func NewAppointment(in AppointmentInput, now time.Time) (*Appointment, error) {
	err := requireFields(
		field{"name", in.Name.String()},
		field{"phone", in.Phone.String()},
		field{"address", in.Address.String()},
		field{"vehicle", in.Vehicle.String()},
		field{"issue", in.Issue.String()},
	)
	if err != nil {
		return nil, err
	}

	return &Appointment{
		ID:        newID(),
		Type:      TypeAppointment,
		Name:      in.Name.String(),
		Phone:     in.Phone.String(),
		Address:   in.Address.String(),
		Vehicle:   in.Vehicle.String(),
		Issue:     in.Issue.String(),
		Details:   fmt.Sprintf("Vehicle: %s | Issue: %s", in.Vehicle, in.Issue),
		CreatedAt: now.UTC(),
	}, nil
}

func (a *Appointment) CustomerRecord() CustomerRecord {
	return CustomerRecord{
		ID:        a.ID,
		Type:      a.Type,
		Name:      a.Name,
		Phone:     a.Phone,
		Address:   a.Address,
		Details:   a.Details,
		CreatedAt: a.CreatedAt,
	}
}
