package client

import "reservashotel/internal/pkg/dates"

// Field names on the wire stay in Spanish; they are the contract the stored
// procedures and the existing frontend already speak.

type CreateClientRequest struct {
	Name        string     `json:"nombre" binding:"required"`
	Email       string     `json:"email" binding:"required,email"`
	Phone       string     `json:"telefono" binding:"required"`
	DocumentID  string     `json:"documento_identidad" binding:"required"`
	Nationality string     `json:"nacionalidad" binding:"required"`
	BirthDate   dates.Date `json:"fecha_nacimiento" binding:"required"`
	Contracts   string     `json:"contratos" binding:"required"`
	EInvoicing  string     `json:"facturacion_electronica" binding:"required"`
}

type UpdateClientRequest struct {
	Name        string     `json:"nombre" binding:"required"`
	Nationality string     `json:"nacionalidad" binding:"required"`
	Phone       string     `json:"telefono" binding:"required"`
	Email       string     `json:"email" binding:"required,email"`
	BirthDate   dates.Date `json:"fecha_nacimiento" binding:"required"`
}

// ListClientsQuery: nil means the filter was not supplied and binds as NULL.
type ListClientsQuery struct {
	Name        *string `form:"nombre"`
	Email       *string `form:"email"`
	Nationality *string `form:"nacionalidad"`
}
