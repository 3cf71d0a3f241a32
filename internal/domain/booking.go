package domain

import "time"

// Booking is one stored reservation request. Records are append-only.
type Booking struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}
