// internal/model/contact.go
package model

import "time"

type ContactInput struct {
	Name    Text `json:"name"`
	Phone   Text `json:"phone"`
	Message Text `json:"message"`
}

type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewContact(in ContactInput, now time.Time) (*Contact, error) {
	err := requireFields(
		field{"name", in.Name.String()},
		field{"phone", in.Phone.String()},
		field{"message", in.Message.String()},
	)
	if err != nil {
		return nil, err
	}

	return &Contact{
		ID:        newID(),
		Name:      in.Name.String(),
		Phone:     in.Phone.String(),
		Message:   in.Message.String(),
		CreatedAt: now.UTC(),
	}, nil
}
