package reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"reservashotel/internal/pkg/dates"
	"reservashotel/internal/repository"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, p repository.CreateReservationParams) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (repository.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.Record), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int, p repository.UpdateReservationParams) error {
	args := m.Called(ctx, id, p)
	return args.Error(0)
}

func (m *MockRepository) Cancel(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) Filter(ctx context.Context, f repository.ReservationFilters) ([]repository.Record, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.Record), args.Error(1)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setup(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(repo).RegisterRoutes(&r.RouterGroup)
	return r
}

func do(r *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func mustDate(t *testing.T, s string) dates.Date {
	t.Helper()
	d, err := dates.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestCreateReservation(t *testing.T) {
	repo := new(MockRepository)
	special := "Cama adicional"
	repo.On("Create", mock.Anything, repository.CreateReservationParams{
		GuestCount:       2,
		RoomType:         "Doble",
		PolicyID:         1,
		ClientDocumentID: "CC-1001",
		CheckIn:          mustDate(t, "2025-12-20"),
		CheckOut:         mustDate(t, "2025-12-27"),
		ReservationType:  "Online",
		ConfirmationType: "Email",
		SpecialRequests:  &special,
	}).Return(nil)

	w, env := do(setup(repo), http.MethodPost, "/reservaciones", `{
		"numero_huespedes": 2,
		"tipo_habitacion": "Doble",
		"id_politicas": 1,
		"documento_identidad": "CC-1001",
		"fecha_entrada": "2025-12-20",
		"fecha_salida": "2025-12-27",
		"tipo_reserva": "Online",
		"tipo_confirmacion": "Email",
		"solicitudes_especial": "Cama adicional"
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Reservación creada exitosamente", env.Message)
	repo.AssertExpectations(t)
}

func TestCreateReservationWithoutSpecialRequests(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p repository.CreateReservationParams) bool {
		return p.SpecialRequests == nil
	})).Return(nil)

	w, _ := do(setup(repo), http.MethodPost, "/reservaciones", `{
		"numero_huespedes": 1,
		"tipo_habitacion": "Sencilla",
		"id_politicas": 2,
		"documento_identidad": "CC-1002",
		"fecha_entrada": "2026-01-10",
		"fecha_salida": "2026-01-12",
		"tipo_reserva": "Telefónica",
		"tipo_confirmacion": "SMS"
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestCreateReservationUnknownClientFails(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(&repository.ProcedureError{Message: "El cliente no existe"})

	w, env := do(setup(repo), http.MethodPost, "/reservaciones", `{
		"numero_huespedes": 2,
		"tipo_habitacion": "Doble",
		"id_politicas": 1,
		"documento_identidad": "CC-0000",
		"fecha_entrada": "2025-12-20",
		"fecha_salida": "2025-12-27",
		"tipo_reserva": "Online",
		"tipo_confirmacion": "Email"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "PROCEDURE_ERROR", env.Error.Code)
	assert.Equal(t, "El cliente no existe", env.Error.Message)
}

func TestUpdateReservationDatesAndGuests(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Update", mock.Anything, 12, repository.UpdateReservationParams{
		CheckIn:    mustDate(t, "2026-02-01"),
		CheckOut:   mustDate(t, "2026-02-05"),
		GuestCount: 3,
	}).Return(nil)

	w, env := do(setup(repo), http.MethodPut, "/reservaciones/12", `{
		"fecha_entrada": "2026-02-01",
		"fecha_salida": "2026-02-05",
		"numero_huespedes": 3
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Reservación 12 actualizada exitosamente", env.Message)
	repo.AssertExpectations(t)
}

func TestCancelReservation(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Cancel", mock.Anything, 12).Return(nil)

	w, env := do(setup(repo), http.MethodDelete, "/reservaciones/12", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Reservación 12 cancelada exitosamente", env.Message)
	repo.AssertExpectations(t)
}

func TestGetReservationNotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, 99).Return(nil, repository.ErrNotFound)

	w, env := do(setup(repo), http.MethodGet, "/reservaciones/99", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Reservación no encontrada", env.Error.Message)
}

func TestListReservationsByClientAndDate(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Filter", mock.Anything, mock.MatchedBy(func(f repository.ReservationFilters) bool {
		return f.ClientDocumentID != nil && *f.ClientDocumentID == "CC-1001" &&
			f.CheckIn != nil && f.CheckIn.String() == "2025-12-20"
	})).Return([]repository.Record{{"id_reserva": 12}}, nil)

	w, _ := do(setup(repo), http.MethodGet,
		"/reservaciones?documento_identidad=CC-1001&fecha_entrada=2025-12-20", "")

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestListReservationsRejectsMalformedDateFilter(t *testing.T) {
	repo := new(MockRepository)

	w, env := do(setup(repo), http.MethodGet, "/reservaciones?fecha_entrada=ayer", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	repo.AssertNotCalled(t, "Filter")
}
