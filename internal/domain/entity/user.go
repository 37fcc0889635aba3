package entity

import "time"

// Roles válidos para User. Solo admin administra bodegas, ubicaciones, productos y usuarios.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User operador que crea, aplica y revierte ajustes. Username es el actor registrado en
// created_by/applied_by.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt
	Role         string
	Active       bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si el usuario tiene rol admin.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
