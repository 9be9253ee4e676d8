package payment

import "reservashotel/internal/pkg/dates"

type RegisterPaymentRequest struct {
	ReservationID       int    `json:"id_reserva" binding:"required"`
	PaymentType         string `json:"tipo_pago" binding:"required"`
	IntegratedPlatforms string `json:"plataformas_integradas" binding:"required"`
	PaymentMethod       string `json:"metodo_pago" binding:"required"`
	Invoice             string `json:"factura" binding:"required"`
	Receipt             string `json:"recibo" binding:"required"`
	// Pointer so an explicit 0 (no refund) passes the required check.
	Refund       *int   `json:"reembolso" binding:"required"`
	ExtraCharges string `json:"cargos_extra" binding:"required"`
}

type ListPaymentsQuery struct {
	ClientDocumentID *string     `form:"documento_identidad"`
	PaymentDate      *dates.Date `form:"fecha_pago"`
	PaymentMethod    *string     `form:"metodo_pago"`
}
