package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"reservashotel/internal/pkg/response"
	"reservashotel/internal/repository"
)

type Repository interface {
	Register(ctx context.Context, p repository.RegisterPaymentParams) error
	GetByID(ctx context.Context, id int) (repository.Record, error)
	Filter(ctx context.Context, f repository.PaymentFilters) ([]repository.Record, error)
}

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// Payments are append-only: no update or delete routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/pagos", h.Register)
	rg.GET("/pagos", h.List)
	rg.GET("/pagos/:id", h.GetByID)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	err := h.repo.Register(c.Request.Context(), repository.RegisterPaymentParams{
		ReservationID:       req.ReservationID,
		PaymentType:         req.PaymentType,
		IntegratedPlatforms: req.IntegratedPlatforms,
		PaymentMethod:       req.PaymentMethod,
		Invoice:             req.Invoice,
		Receipt:             req.Receipt,
		Refund:              *req.Refund,
		ExtraCharges:        req.ExtraCharges,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK,
		fmt.Sprintf("Pago registrado y reserva %d actualizada a 'Confirmada'", req.ReservationID))
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid payment id")
		return
	}
	record, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, record)
}

func (h *Handler) List(c *gin.Context) {
	var q ListPaymentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters", err.Error())
		return
	}

	records, err := h.repo.Filter(c.Request.Context(), repository.PaymentFilters{
		ClientDocumentID: q.ClientDocumentID,
		PaymentDate:      q.PaymentDate,
		PaymentMethod:    q.PaymentMethod,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, records)
}

func handleError(c *gin.Context, err error) {
	var procErr *repository.ProcedureError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Pago no encontrado")
	case errors.Is(err, repository.ErrReservationWithoutClient):
		response.Error(c, http.StatusNotFound, "RESERVATION_WITHOUT_CLIENT",
			"La reserva no tiene un cliente asociado")
	case errors.As(err, &procErr):
		response.Error(c, http.StatusBadRequest, "PROCEDURE_ERROR", procErr.Message)
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Error interno del servidor")
	}
}
