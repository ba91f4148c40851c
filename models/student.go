package models

import "time"

// Student belongs to a manager; rows cascade away with the manager.
// Age is computed from BirthDate at write time and not refreshed after.
type Student struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	PrnUID    string    `json:"prn_uid" db:"prn_uid"`
	Contact   string    `json:"contact" db:"contact"`
	Email     *string   `json:"email" db:"email"`
	Address   *string   `json:"address" db:"address"`
	BirthDate time.Time `json:"birth_date" db:"birth_date"`
	Age       int       `json:"age" db:"age"`
	ManagerID int       `json:"manager_id" db:"manager_id"`
	LinkToken *string   `json:"link_token,omitempty" db:"link_token"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
