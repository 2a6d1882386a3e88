package entity

import "time"

// UserType mirrors the backend's user_type discriminator.
type UserType string

const (
	UserTypePatient UserType = "patient"
	UserTypeDoctor  UserType = "doctor"
	UserTypeAdmin   UserType = "admin"
)

// User is the authenticated identity as served by GET /users/me/.
// The client holds a transient copy only; the backend owns the record.
type User struct {
	ID         int       `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	FirstName  string    `json:"first_name,omitempty"`
	LastName   string    `json:"last_name,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	UserType   UserType  `json:"user_type"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.UserType == UserTypeAdmin
}

func (u *User) IsDoctor() bool {
	return u.UserType == UserTypeDoctor
}

func (u *User) IsPatient() bool {
	return u.UserType == UserTypePatient
}

// Credentials is the bearer token pair persisted across restarts.
// Access and Refresh are opaque to the client.
type Credentials struct {
	Access  string
	Refresh string
}

func (c Credentials) Empty() bool {
	return c.Access == "" && c.Refresh == ""
}
