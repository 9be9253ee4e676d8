package repository

import (
	"context"

	"gorm.io/gorm"
)

// RoomRepository maps the /habitaciones operations onto the room procedures.
type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type CreateRoomParams struct {
	Number       int
	Type         string
	Description  string
	Availability string
	Features     string
	Season       string
	Promotions   string
	NightlyPrice float64
}

func (r *RoomRepository) Create(ctx context.Context, p CreateRoomParams) error {
	return call(ctx, r.db, "CALL crear_habitacion(?, ?, ?, ?, ?, ?, ?, ?)",
		p.Number, p.Type, p.Description, p.Availability, p.Features, p.Season, p.Promotions, p.NightlyPrice)
}

func (r *RoomRepository) GetByID(ctx context.Context, id int) (Record, error) {
	return queryOne(ctx, r.db, "SELECT * FROM obtener_habitacion(?)", id)
}

type UpdateRoomParams struct {
	Type         string
	Description  string
	NightlyPrice float64
	Availability string
}

// Update binds precio_noche before disponibilidad; that is the order
// actualizar_habitacion declares.
func (r *RoomRepository) Update(ctx context.Context, id int, p UpdateRoomParams) error {
	return call(ctx, r.db, "CALL actualizar_habitacion(?, ?, ?, ?, ?)",
		id, p.Type, p.Description, p.NightlyPrice, p.Availability)
}

func (r *RoomRepository) Delete(ctx context.Context, id int) error {
	return call(ctx, r.db, "CALL eliminar_habitacion(?)", id)
}

type RoomFilters struct {
	Type         *string
	MaxPrice     *float64
	Availability *string
}

func (r *RoomRepository) Filter(ctx context.Context, f RoomFilters) ([]Record, error) {
	return queryAll(ctx, r.db, "SELECT * FROM filtrar_habitaciones(?, ?, ?)",
		f.Type, f.MaxPrice, f.Availability)
}
