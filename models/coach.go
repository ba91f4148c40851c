package models

import "time"

type Coach struct {
	ID             int       `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Contact        string    `json:"contact" db:"contact"`
	Email          *string   `json:"email" db:"email"`
	Specialization *string   `json:"specialization" db:"specialization"`
	ManagerID      int       `json:"manager_id" db:"manager_id"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
