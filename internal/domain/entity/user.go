package entity

import "time"

// User representa un usuario autenticado. Es dueño de cero o más empresas;
// la empresa activa se guarda aparte en UserPreference.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserPreference guarda la empresa activa del usuario (a lo sumo una fila por usuario).
// Se mantiene vía upsert con clave única en UserID. SelectedCompanyID puede quedar
// colgando si la empresa se borra: la resolución cae a la primera empresa o ninguna.
type UserPreference struct {
	UserID            string
	SelectedCompanyID string // vacío = sin preferencia guardada
	UpdatedAt         time.Time
}
