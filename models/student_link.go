package models

import "time"

// StudentLink is a capability token letting the public submit one or more
// student registrations tied to a specific manager while the link is active.
type StudentLink struct {
	ID        int       `json:"id" db:"id"`
	ManagerID int       `json:"manager_id" db:"manager_id"`
	Token     string    `json:"token" db:"token"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	ManagerName string `json:"manager_name,omitempty" db:"-"`
}
