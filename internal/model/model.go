package model

import "time"

// Model holds the columns shared by every table with a uuid primary key.
type Model struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
