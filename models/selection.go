package models

import "time"

// StudentSelection joins a student to a manager with a selection flag.
// Unique on (student_id, manager_id); both sides cascade-delete.
type StudentSelection struct {
	ID         int       `json:"id" db:"id"`
	StudentID  int       `json:"student_id" db:"student_id"`
	ManagerID  int       `json:"manager_id" db:"manager_id"`
	IsSelected bool      `json:"is_selected" db:"is_selected"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`

	Student *Student `json:"student,omitempty" db:"-"`
}
