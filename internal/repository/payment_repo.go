package repository

import (
	"context"

	"gorm.io/gorm"

	"reservashotel/internal/pkg/dates"
)

// PaymentRepository maps the /pagos operations. Payments have no update or
// delete; registering one side-effects the reservation status to
// "Confirmada" inside the procedure.
type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type RegisterPaymentParams struct {
	ReservationID       int
	PaymentType         string
	IntegratedPlatforms string
	PaymentMethod       string
	Invoice             string
	Receipt             string
	Refund              int
	ExtraCharges        string
}

func (r *PaymentRepository) Register(ctx context.Context, p RegisterPaymentParams) error {
	err := call(ctx, r.db, "CALL registrar_pago(?, ?, ?, ?, ?, ?, ?, ?)",
		p.ReservationID, p.PaymentType, p.IntegratedPlatforms, p.PaymentMethod,
		p.Invoice, p.Receipt, p.Refund, p.ExtraCharges)
	return classifyPaymentError(err)
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int) (Record, error) {
	return queryOne(ctx, r.db, "SELECT * FROM obtener_pago(?)", id)
}

type PaymentFilters struct {
	ClientDocumentID *string
	PaymentDate      *dates.Date
	PaymentMethod    *string
}

func (r *PaymentRepository) Filter(ctx context.Context, f PaymentFilters) ([]Record, error) {
	return queryAll(ctx, r.db, "SELECT * FROM filtrar_pagos(?, ?, ?)",
		f.ClientDocumentID, f.PaymentDate, f.PaymentMethod)
}
