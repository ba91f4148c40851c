package models

import "time"

// Manager owns students, coaches and registration links. The contact
// number doubles as the login secret; email is the login identifier.
type Manager struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Department   string    `json:"department" db:"department"`
	Sport        string    `json:"sport" db:"sport"`
	Contact      string    `json:"contact" db:"contact"`
	Email        string    `json:"email" db:"email"`
	StudentCount int       `json:"student_count" db:"student_count"`
	TeamID       *int      `json:"team_id" db:"team_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`

	Team *Team `json:"team,omitempty" db:"-"`
}
