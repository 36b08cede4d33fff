package entity

import "time"

type Review struct {
	ID        int64     `json:"id" db:"id"`
	BoxID     int64     `json:"box_id" db:"box_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Rating    int       `json:"rating" db:"rating"` // 1..5
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
