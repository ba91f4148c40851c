package models

import "time"

// EventImage is a gallery entry ordered by DisplayOrder, not creation time.
type EventImage struct {
	ID           int       `json:"id" db:"id"`
	Title        *string   `json:"title" db:"title"`
	Description  *string   `json:"description" db:"description"`
	ImageURL     string    `json:"image_url" db:"image_url"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`

	ImageKey string `json:"-" db:"image_key"`
}
