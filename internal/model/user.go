package model

// User represents a registered account. Users are created at signup and
// never mutated or deleted afterwards.
type User struct {
	Base
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
}
