package domain

import "time"

// Feedback is a flat record with no cross-entity invariant.
type Feedback struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CampName  string    `json:"camp_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
