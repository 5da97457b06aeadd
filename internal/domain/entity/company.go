package entity

import "time"

// Company representa una empresa del usuario. Toda la contabilidad
// (cuentas bancarias, órdenes, facturas, recibos, gastos) está alcanzada
// a exactamente una empresa.
//
// Invariante: Name no vacío. Borrar una Company arrastra en cascada todos
// sus registros dependientes (FK ON DELETE CASCADE) — destructivo e irreversible.
type Company struct {
	ID                 string
	UserID             string
	Name               string
	RegistrationNumber string
	Address            string
	Phone              string
	Email              string
	Currency           string // código ISO 4217, ej. "KES"
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
