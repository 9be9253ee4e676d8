package service

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
	Create(ctx context.Context, p repository.CreateServiceParams) error
	GetByID(ctx context.Context, id int) (repository.Record, error)
	Update(ctx context.Context, id int, p repository.UpdateServiceParams) error
	Delete(ctx context.Context, id int) error
	Filter(ctx context.Context, f repository.ServiceFilters) ([]repository.Record, error)
}

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/servicios", h.Create)
	rg.GET("/servicios", h.List)
	rg.GET("/servicios/:id", h.GetByID)
	rg.PUT("/servicios/:id", h.Update)
	rg.DELETE("/servicios/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	err := h.repo.Create(c.Request.Context(), repository.CreateServiceParams{
		ClientDocumentID: req.ClientDocumentID,
		Name:             req.Name,
		Available:        *req.Available,
		Schedule:         req.Schedule,
		UnitPrice:        req.UnitPrice,
		Promotions:       req.Promotions,
		Extras:           req.Extras,
		CustomOffers:     req.CustomOffers,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Servicio registrado exitosamente")
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := serviceID(c)
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
	id, ok := serviceID(c)
	if !ok {
		return
	}
	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	err := h.repo.Update(c.Request.Context(), id, repository.UpdateServiceParams{
		Name:         req.Name,
		Available:    *req.Available,
		Price:        req.Price,
		Promotions:   req.Promotions,
		Extras:       req.Extras,
		CustomOffers: req.CustomOffers,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("Servicio %d actualizado exitosamente", id))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := serviceID(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("Servicio %d eliminado exitosamente", id))
}

func (h *Handler) List(c *gin.Context) {
	var q ListServicesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters", err.Error())
		return
	}

	records, err := h.repo.Filter(c.Request.Context(), repository.ServiceFilters{
		Available: q.Available,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, records)
}

func serviceID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid service id")
		return 0, false
	}
	return id, true
}

func handleError(c *gin.Context, err error) {
	var procErr *repository.ProcedureError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Servicio no encontrado")
	case errors.As(err, &procErr):
		response.Error(c, http.StatusBadRequest, "PROCEDURE_ERROR", procErr.Message)
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Error interno del servidor")
	}
}
