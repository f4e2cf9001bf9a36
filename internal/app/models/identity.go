package models

import "time"

// IdentityKind distinguishes the two credential-holding tables.
type IdentityKind string

const (
	IdentityAdmin IdentityKind = "admin"
	IdentityUser  IdentityKind = "user"
)

// Admin is a portal administrator. Email is stored lower-cased.
type Admin struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	Name         string    `json:"name"`
	IsActive     bool      `json:"isActive"`
	IsSuperAdmin bool      `json:"isSuperAdmin"`
	CreatedBy    *int64    `json:"createdBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// User is a regular portal account. Email is stored lower-cased.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Identity is the claim-relevant view shared by admins and users.
type Identity struct {
	ID    int64        `json:"id"`
	Email string       `json:"email"`
	Name  string       `json:"name"`
	Kind  IdentityKind `json:"kind"`
}

// AsIdentity returns the admin's identity claim view.
func (a *Admin) AsIdentity() Identity {
	return Identity{ID: a.ID, Email: a.Email, Name: a.Name, Kind: IdentityAdmin}
}

// AsIdentity returns the user's identity claim view.
func (u *User) AsIdentity() Identity {
	return Identity{ID: u.ID, Email: u.Email, Name: u.Name, Kind: IdentityUser}
}
