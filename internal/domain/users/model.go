package users

import "time"

// User es una cuenta del sistema. PasswordHash es bcrypt, nunca se expone.
type User struct {
	ID       string
	Username string
	Email    string

	PasswordHash string

	CreatedAt time.Time
	UpdatedAt time.Time
}
