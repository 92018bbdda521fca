package user

import "time"

// User is a console admin account. Passwords are stored as bcrypt hashes
// only.
type User struct {
	ID           string
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}
