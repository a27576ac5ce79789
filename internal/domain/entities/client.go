package entities

import "time"

// Client is the document owner referenced by every quote, invoice and order.
// The client registry is consumed read-only by the lifecycle engine.
type Client struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	MiddleName string    `json:"middle_name,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Address    string    `json:"address,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
