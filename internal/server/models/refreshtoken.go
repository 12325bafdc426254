package models

import "time"

type RefreshToken struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Token     string    `json:"token"`
	Expires   time.Time `json:"expires"`
	CreatedAt time.Time `json:"created_at"`
}
