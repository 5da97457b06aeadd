package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name               string `json:"name" validate:"required,min=1,max=200"`
	RegistrationNumber string `json:"registration_number"`
	Address            string `json:"address"`
	Phone              string `json:"phone"`
	Email              string `json:"email" validate:"omitempty,email"`
	Currency           string `json:"currency"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	Name               *string `json:"name" validate:"omitempty,min=1,max=200"`
	RegistrationNumber *string `json:"registration_number"`
	Address            *string `json:"address"`
	Phone              *string `json:"phone"`
	Email              *string `json:"email" validate:"omitempty,email"`
	Currency           *string `json:"currency"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	RegistrationNumber string    `json:"registration_number"`
	Address            string    `json:"address"`
	Phone              string    `json:"phone"`
	Email              string    `json:"email"`
	Currency           string    `json:"currency"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CompanyListResponse lista de empresas del usuario, más reciente primero.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
}

// SessionResponse estado de la sesión: empresas del usuario y la activa.
// SelectedCompany nil es un estado válido (usuario sin empresas), no un error.
type SessionResponse struct {
	Companies       []CompanyResponse `json:"companies"`
	SelectedCompany *CompanyResponse  `json:"selected_company"`
}
