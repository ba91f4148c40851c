package models

import "time"

type Notice struct {
	ID               int       `json:"id" db:"id"`
	Title            string    `json:"title" db:"title"`
	Description      string    `json:"description" db:"description"`
	DocumentURL      *string   `json:"document_url" db:"document_url"`
	ScheduleImageURL *string   `json:"schedule_image_url" db:"schedule_image_url"`
	NoticeDate       time.Time `json:"notice_date" db:"notice_date"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`

	DocumentKey      *string `json:"-" db:"document_key"`
	ScheduleImageKey *string `json:"-" db:"schedule_image_key"`
}
