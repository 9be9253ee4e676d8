package repository

import (
	"context"

	"gorm.io/gorm"

	"reservashotel/internal/pkg/dates"
)

// ReservationRepository maps the /reservaciones operations onto the
// reservation procedures. There is no hard delete: cancelar_reservacion
// changes the reservation state and keeps the record.
type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type CreateReservationParams struct {
	GuestCount       int
	RoomType         string
	PolicyID         int
	ClientDocumentID string
	CheckIn          dates.Date
	CheckOut         dates.Date
	ReservationType  string
	ConfirmationType string
	SpecialRequests  *string
}

func (r *ReservationRepository) Create(ctx context.Context, p CreateReservationParams) error {
	return call(ctx, r.db, "CALL crear_reservacion(?, ?, ?, ?, ?, ?, ?, ?, ?)",
		p.GuestCount, p.RoomType, p.PolicyID, p.ClientDocumentID,
		p.CheckIn, p.CheckOut, p.ReservationType, p.ConfirmationType, p.SpecialRequests)
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int) (Record, error) {
	return queryOne(ctx, r.db, "SELECT * FROM obtener_reservacion(?)", id)
}

type UpdateReservationParams struct {
	CheckIn         dates.Date
	CheckOut        dates.Date
	GuestCount      int
	SpecialRequests *string
}

func (r *ReservationRepository) Update(ctx context.Context, id int, p UpdateReservationParams) error {
	return call(ctx, r.db, "CALL actualizar_reservacion(?, ?, ?, ?, ?)",
		id, p.CheckIn, p.CheckOut, p.GuestCount, p.SpecialRequests)
}

func (r *ReservationRepository) Cancel(ctx context.Context, id int) error {
	return call(ctx, r.db, "CALL cancelar_reservacion(?)", id)
}

type ReservationFilters struct {
	ClientDocumentID *string
	CheckIn          *dates.Date
}

func (r *ReservationRepository) Filter(ctx context.Context, f ReservationFilters) ([]Record, error) {
	return queryAll(ctx, r.db, "SELECT * FROM filtrar_reservas(?, ?)",
		f.ClientDocumentID, f.CheckIn)
}
