package reservation

import "reservashotel/internal/pkg/dates"

type CreateReservationRequest struct {
	GuestCount       int        `json:"numero_huespedes" binding:"required"`
	RoomType         string     `json:"tipo_habitacion" binding:"required"`
	PolicyID         int        `json:"id_politicas" binding:"required"`
	ClientDocumentID string     `json:"documento_identidad" binding:"required"`
	CheckIn          dates.Date `json:"fecha_entrada" binding:"required"`
	CheckOut         dates.Date `json:"fecha_salida" binding:"required"`
	ReservationType  string     `json:"tipo_reserva" binding:"required"`
	ConfirmationType string     `json:"tipo_confirmacion" binding:"required"`
	SpecialRequests  *string    `json:"solicitudes_especial"`
}

type UpdateReservationRequest struct {
	CheckIn         dates.Date `json:"fecha_entrada" binding:"required"`
	CheckOut        dates.Date `json:"fecha_salida" binding:"required"`
	GuestCount      int        `json:"numero_huespedes" binding:"required"`
	SpecialRequests *string    `json:"solicitudes_especial"`
}

type ListReservationsQuery struct {
	ClientDocumentID *string     `form:"documento_identidad"`
	CheckIn          *dates.Date `form:"fecha_entrada"`
}
