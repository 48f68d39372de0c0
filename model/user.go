package model

import "time"

// User is the single locally stored session record.
type User struct {
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Company      string    `json:"company,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}
