package repository

import (
	"context"

	"gorm.io/gorm"

	"reservashotel/internal/pkg/dates"
)

// ClientRepository maps the /cliente operations onto the client procedures.
// Clients are identified by their document id, not a numeric key.
type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// CreateClientParams carries the arguments of crear_cliente in the
// positional order the procedure declares them.
type CreateClientParams struct {
	DocumentID  string
	Name        string
	Nationality string
	Phone       string
	Email       string
	Contracts   string
	EInvoicing  string
	BirthDate   dates.Date
}

func (r *ClientRepository) Create(ctx context.Context, p CreateClientParams) error {
	return call(ctx, r.db, "CALL crear_cliente(?, ?, ?, ?, ?, ?, ?, ?)",
		p.DocumentID, p.Name, p.Nationality, p.Phone, p.Email, p.Contracts, p.EInvoicing, p.BirthDate)
}

func (r *ClientRepository) GetByID(ctx context.Context, documentID string) (Record, error) {
	return queryOne(ctx, r.db, "SELECT * FROM obtener_cliente(?)", documentID)
}

// UpdateClientParams is the narrower update field set; the document id is
// prepended as the first positional argument.
type UpdateClientParams struct {
	Name        string
	Nationality string
	Phone       string
	Email       string
	BirthDate   dates.Date
}

func (r *ClientRepository) Update(ctx context.Context, documentID string, p UpdateClientParams) error {
	return call(ctx, r.db, "CALL actualizar_cliente(?, ?, ?, ?, ?, ?)",
		documentID, p.Name, p.Nationality, p.Phone, p.Email, p.BirthDate)
}

// Delete fails with a ProcedureError when the client still has active
// reservations; the procedure owns that rule.
func (r *ClientRepository) Delete(ctx context.Context, documentID string) error {
	return call(ctx, r.db, "CALL eliminar_cliente(?)", documentID)
}

// ClientFilters are the optional arguments of filtrar_clientes. Nil means
// "no filter" and binds as NULL.
type ClientFilters struct {
	Name        *string
	Email       *string
	Nationality *string
}

func (r *ClientRepository) Filter(ctx context.Context, f ClientFilters) ([]Record, error) {
	return queryAll(ctx, r.db, "SELECT * FROM filtrar_clientes(?, ?, ?)",
		f.Name, f.Email, f.Nationality)
}
