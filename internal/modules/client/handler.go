package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"reservashotel/internal/pkg/response"
	"reservashotel/internal/repository"
)

// Repository is the slice of the client repository the handlers need,
// narrowed to an interface so tests can substitute it.
type Repository interface {
	Create(ctx context.Context, p repository.CreateClientParams) error
	GetByID(ctx context.Context, documentID string) (repository.Record, error)
	Update(ctx context.Context, documentID string, p repository.UpdateClientParams) error
	Delete(ctx context.Context, documentID string) error
	Filter(ctx context.Context, f repository.ClientFilters) ([]repository.Record, error)
}

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/cliente", h.Create)
	rg.GET("/cliente", h.List)
	rg.GET("/cliente/:id", h.GetByID)
	rg.PUT("/cliente/:id", h.Update)
	rg.DELETE("/cliente/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	err := h.repo.Create(c.Request.Context(), repository.CreateClientParams{
		DocumentID:  req.DocumentID,
		Name:        req.Name,
		Nationality: req.Nationality,
		Phone:       req.Phone,
		Email:       req.Email,
		Contracts:   req.Contracts,
		EInvoicing:  req.EInvoicing,
		BirthDate:   req.BirthDate,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Cliente creado exitosamente")
}

func (h *Handler) GetByID(c *gin.Context) {
	record, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, record)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	err := h.repo.Update(c.Request.Context(), c.Param("id"), repository.UpdateClientParams{
		Name:        req.Name,
		Nationality: req.Nationality,
		Phone:       req.Phone,
		Email:       req.Email,
		BirthDate:   req.BirthDate,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Cliente actualizado exitosamente")
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Cliente eliminado exitosamente")
}

func (h *Handler) List(c *gin.Context) {
	var q ListClientsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters", err.Error())
		return
	}

	records, err := h.repo.Filter(c.Request.Context(), repository.ClientFilters{
		Name:        q.Name,
		Email:       q.Email,
		Nationality: q.Nationality,
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
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Cliente no encontrado")
	case errors.As(err, &procErr):
		response.Error(c, http.StatusBadRequest, "PROCEDURE_ERROR", procErr.Message)
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Error interno del servidor")
	}
}
