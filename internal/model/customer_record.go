// internal/model/customer_record.go
package model

import "time"

// CustomerRecord is the cross-type projection written next to every
// appointment and spare-parts request. It shares the source record's ID
// but is deleted independently of it.
type CustomerRecord struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"createdAt"`
}
