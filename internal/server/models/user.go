// Package models defines the server-side records kept by the repositories
// and the projections returned to API clients.
package models

import (
	"time"

	"github.com/dmitrijs2005/itemkeeper/internal/common"
)

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicUser is the outward view of a User.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Username: u.Username, Role: u.Role}
}

// Identity is the {id, username, role} triple carried by a verified token.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == common.RoleAdmin
}

// CanModify reports whether i may mutate a record created by owner.
func (i Identity) CanModify(owner string) bool {
	return i.Username == owner || i.IsAdmin()
}
