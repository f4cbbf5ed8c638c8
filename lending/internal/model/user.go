package model

import "time"

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Role         Role      `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) GetID() string       { return u.ID }
func (u *User) SetID(id string)     { u.ID = id }
func (u *User) Touch(now time.Time) { u.UpdatedAt = now }

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

func NewUser(name, email, passwordHash string, role Role, now time.Time) User {
	if role != RoleAdmin {
		role = RoleUser
	}
	return User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
