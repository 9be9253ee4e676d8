package room

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"reservashotel/internal/pkg/response"
	"reservashotel/internal/repository"
)

type Repository interface {
	Create(ctx context.Context, p repository.CreateRoomParams) error
	GetByID(ctx context.Context, id int) (repository.Record, error)
	Update(ctx context.Context, id int, p repository.UpdateRoomParams) error
	Delete(ctx context.Context, id int) error
	Filter(ctx context.Context, f repository.RoomFilters) ([]repository.Record, error)
}

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/habitaciones", h.Create)
	rg.GET("/habitaciones", h.List)
	rg.GET("/habitaciones/:id", h.GetByID)
	rg.PUT("/habitaciones/:id", h.Update)
	rg.DELETE("/habitaciones/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	err := h.repo.Create(c.Request.Context(), repository.CreateRoomParams{
		Number:       req.Number,
		Type:         req.Type,
		Description:  req.Description,
		Availability: req.Availability,
		Features:     req.Features,
		Season:       req.Season,
		Promotions:   req.Promotions,
		NightlyPrice: req.NightlyPrice,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Habitación creada exitosamente")
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := roomID(c)
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
	id, ok := roomID(c)
	if !ok {
		return
	}
	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	err := h.repo.Update(c.Request.Context(), id, repository.UpdateRoomParams{
		Type:         req.Type,
		Description:  req.Description,
		NightlyPrice: req.NightlyPrice,
		Availability: req.Availability,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Habitación actualizada exitosamente")
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := roomID(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Habitación eliminada exitosamente")
}

func (h *Handler) List(c *gin.Context) {
	var q ListRoomsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters", err.Error())
		return
	}

	records, err := h.repo.Filter(c.Request.Context(), repository.RoomFilters{
		Type:         q.Type,
		MaxPrice:     q.MaxPrice,
		Availability: q.Availability,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, records)
}

func roomID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room id")
		return 0, false
	}
	return id, true
}

func handleError(c *gin.Context, err error) {
	var procErr *repository.ProcedureError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Habitación no encontrada")
	case errors.As(err, &procErr):
		response.Error(c, http.StatusBadRequest, "PROCEDURE_ERROR", procErr.Message)
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Error interno del servidor")
	}
}
