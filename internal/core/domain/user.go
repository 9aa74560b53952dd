package domain

import (
	"errors"
	"time"
)

// RolePhotographer is the only role signup issues. It still travels in the
// token and the public user view so clients can branch on it later.
const RolePhotographer = "photographer"

var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrUserNotFound = errors.New("user not found")

// User models an account in the directory. Immutable after signup.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
