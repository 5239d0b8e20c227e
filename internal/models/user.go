package models

import (
	"time"
)

// User represents a user in the system
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// ValidRoles defines allowed user roles
var ValidRoles = map[string]bool{
	"student": true,
	"editor":  true,
	"admin":   true,
}

// EditorRoles are the roles allowed to mutate editorial content
var EditorRoles = map[string]bool{
	"editor": true,
	"admin":  true,
}

// Principal is the authenticated identity extracted from a verified
// credential or token
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Author is the byline record articles point at. The reference is weak:
// deleting an author nulls article.author_id rather than cascading.
type Author struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
