// Package models defines server-side data models persisted by the repositories.
package models

import "time"

// User is a registered marketplace account. Email is stored lower-cased.
type User struct {
	ID           int64     `json:"id"`
	UserName     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}
