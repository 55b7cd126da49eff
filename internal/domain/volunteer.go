package domain

import "time"

// Volunteer is a flat record with no cross-entity invariant.
type Volunteer struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Contact      string    `json:"contact"`
	Role         string    `json:"role"`
	Availability string    `json:"availability"`
	CreatedAt    time.Time `json:"created_at"`
}
