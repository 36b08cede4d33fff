package entity

import (
	"time"
)

type BoxStatus string

const (
	BoxStatusPending  BoxStatus = "pending"
	BoxStatusApproved BoxStatus = "approved"
	BoxStatusRejected BoxStatus = "rejected"
)

type Box struct {
	ID              int64     `json:"id" db:"id"`
	OwnerID         int64     `json:"owner_id" db:"owner_id"`
	Name            string    `json:"name" db:"name"`
	Sport           string    `json:"sport" db:"sport"`
	Location        string    `json:"location" db:"location"`
	Price           float64   `json:"price" db:"price"` // per hour
	Rating          float64   `json:"rating" db:"rating"`
	Capacity        int       `json:"capacity" db:"capacity"`
	Status          BoxStatus `json:"status" db:"status"`
	RejectionReason string    `json:"rejection_reason,omitempty" db:"rejection_reason"`
	Description     string    `json:"description" db:"description"`
	IsFeatured      bool      `json:"is_featured" db:"is_featured"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
