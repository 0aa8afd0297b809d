package entity

import "time"

// RoleAdmin es el único rol del sistema: el operador autenticado.
const RoleAdmin = "admin"

// User representa al operador del inventario.
type User struct {
	ID           string
	Username     string
	PasswordHash string // hash bcrypt, nunca plano en dominio después de persistir
	Role         string
	CreatedAt    time.Time
}
