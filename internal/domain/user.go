package domain

import "time"

// User is the authentication identity. Accounts are owned by the auth
// subsystem; the rest of the core only observes ID and Email.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
