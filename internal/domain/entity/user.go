package entity

import "time"

// Roles de usuario de la aplicación.
const (
	RoleAdmin  = "admin"
	RoleCajero = "cajero"
)

// User usuario de la aplicación (login).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt, nunca se expone en JSON
	Role         string // admin | cajero
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
