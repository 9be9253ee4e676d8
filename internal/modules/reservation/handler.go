package reservation

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
	Create(ctx context.Context, p repository.CreateReservationParams) error
	GetByID(ctx context.Context, id int) (repository.Record, error)
	Update(ctx context.Context, id int, p repository.UpdateReservationParams) error
	Cancel(ctx context.Context, id int) error
	Filter(ctx context.Context, f repository.ReservationFilters) ([]repository.Record, error)
}

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reservaciones", h.Create)
	rg.GET("/reservaciones", h.List)
	rg.GET("/reservaciones/:id", h.GetByID)
	rg.PUT("/reservaciones/:id", h.Update)
	// DELETE cancels: the procedure flips the reservation state, the record stays.
	rg.DELETE("/reservaciones/:id", h.Cancel)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	err := h.repo.Create(c.Request.Context(), repository.CreateReservationParams{
		GuestCount:       req.GuestCount,
		RoomType:         req.RoomType,
		PolicyID:         req.PolicyID,
		ClientDocumentID: req.ClientDocumentID,
		CheckIn:          req.CheckIn,
		CheckOut:         req.CheckOut,
		ReservationType:  req.ReservationType,
		ConfirmationType: req.ConfirmationType,
		SpecialRequests:  req.SpecialRequests,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Reservación creada exitosamente")
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	record, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, record)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	err := h.repo.Update(c.Request.Context(), id, repository.UpdateReservationParams{
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		GuestCount:      req.GuestCount,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("Reservación %d actualizada exitosamente", id))
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	if err := h.repo.Cancel(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("Reservación %d cancelada exitosamente", id))
}

func (h *Handler) List(c *gin.Context) {
	var q ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters", err.Error())
		return
	}

	records, err := h.repo.Filter(c.Request.Context(), repository.ReservationFilters{
		ClientDocumentID: q.ClientDocumentID,
		CheckIn:          q.CheckIn,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, records)
}

func reservationID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation id")
		return 0, false
	}
	return id, true
}

func handleError(c *gin.Context, err error) {
	var procErr *repository.ProcedureError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservación no encontrada")
	case errors.As(err, &procErr):
		response.Error(c, http.StatusBadRequest, "PROCEDURE_ERROR", procErr.Message)
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Error interno del servidor")
	}
}
