package models

import "time"

// User represents a tutor profile. Profiles are created once through class
// registration and never mutated by this service.
type User struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Avatar    string    `db:"avatar" json:"avatar"`
	Whatsapp  string    `db:"whatsapp" json:"whatsapp"`
	Bio       string    `db:"bio" json:"bio"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
