package repository

import (
	"context"

	"gorm.io/gorm"

	"reservashotel/internal/pkg/dates"
)

// ServiceRepository maps the /servicios operations. Services hang off a
// client through the document id foreign key.
type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type CreateServiceParams struct {
	ClientDocumentID string
	Name             string
	Available        bool
	Schedule         dates.Clock
	UnitPrice        float64
	Promotions       string
	Extras           string
	CustomOffers     string
}

func (r *ServiceRepository) Create(ctx context.Context, p CreateServiceParams) error {
	return call(ctx, r.db, "CALL crear_servicio(?, ?, ?, ?, ?, ?, ?, ?)",
		p.ClientDocumentID, p.Name, p.Available, p.Schedule,
		p.UnitPrice, p.Promotions, p.Extras, p.CustomOffers)
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int) (Record, error) {
	return queryOne(ctx, r.db, "SELECT * FROM obtener_servicio(?)", id)
}

type UpdateServiceParams struct {
	Name         string
	Available    bool
	Price        float64
	Promotions   string
	Extras       string
	CustomOffers string
}

func (r *ServiceRepository) Update(ctx context.Context, id int, p UpdateServiceParams) error {
	return call(ctx, r.db, "CALL actualizar_servicio(?, ?, ?, ?, ?, ?, ?)",
		id, p.Name, p.Available, p.Price, p.Promotions, p.Extras, p.CustomOffers)
}

func (r *ServiceRepository) Delete(ctx context.Context, id int) error {
	return call(ctx, r.db, "CALL eliminar_servicio(?)", id)
}

type ServiceFilters struct {
	Available *bool
}

func (r *ServiceRepository) Filter(ctx context.Context, f ServiceFilters) ([]Record, error) {
	return queryAll(ctx, r.db, "SELECT * FROM filtrar_servicios(?)", f.Available)
}
