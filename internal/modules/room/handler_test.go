package room

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

	"reservashotel/internal/repository"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, p repository.CreateRoomParams) error {
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

func (m *MockRepository) Update(ctx context.Context, id int, p repository.UpdateRoomParams) error {
	args := m.Called(ctx, id, p)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) Filter(ctx context.Context, f repository.RoomFilters) ([]repository.Record, error) {
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

func TestCreateRoom(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, repository.CreateRoomParams{
		Number:       101,
		Type:         "Doble",
		Description:  "Vista al mar",
		Availability: "Disponible",
		Features:     "Balcón, aire acondicionado",
		Season:       "Alta",
		Promotions:   "Ninguna",
		NightlyPrice: 250000,
	}).Return(nil)

	w, env := do(setup(repo), http.MethodPost, "/habitaciones", `{
		"numero": 101,
		"tipo": "Doble",
		"descripcion": "Vista al mar",
		"disponibilidad": "Disponible",
		"caracteristicas": "Balcón, aire acondicionado",
		"temporada": "Alta",
		"promociones_especiales": "Ninguna",
		"precio_noche": 250000
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Habitación creada exitosamente", env.Message)
	repo.AssertExpectations(t)
}

func TestCreateRoomMissingFields(t *testing.T) {
	repo := new(MockRepository)

	w, env := do(setup(repo), http.MethodPost, "/habitaciones", `{"numero": 101}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	repo.AssertNotCalled(t, "Create")
}

func TestGetRoomInvalidID(t *testing.T) {
	repo := new(MockRepository)

	w, env := do(setup(repo), http.MethodGet, "/habitaciones/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_ID", env.Error.Code)
	repo.AssertNotCalled(t, "GetByID")
}

func TestGetRoomNotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, 404).Return(nil, repository.ErrNotFound)

	w, env := do(setup(repo), http.MethodGet, "/habitaciones/404", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Habitación no encontrada", env.Error.Message)
}

func TestUpdateRoomBindsPriceBeforeAvailability(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Update", mock.Anything, 101, repository.UpdateRoomParams{
		Type:         "Suite",
		Description:  "Remodelada",
		NightlyPrice: 300000,
		Availability: "Mantenimiento",
	}).Return(nil)

	w, env := do(setup(repo), http.MethodPut, "/habitaciones/101", `{
		"tipo": "Suite",
		"descripcion": "Remodelada",
		"disponibilidad": "Mantenimiento",
		"precio_noche": 300000
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Habitación actualizada exitosamente", env.Message)
	repo.AssertExpectations(t)
}

func TestDeleteRoom(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Delete", mock.Anything, 101).Return(nil)

	w, env := do(setup(repo), http.MethodDelete, "/habitaciones/101", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Habitación eliminada exitosamente", env.Message)
}

func TestListRoomsForwardsFilters(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Filter", mock.Anything, mock.MatchedBy(func(f repository.RoomFilters) bool {
		return f.Type != nil && *f.Type == "Doble" &&
			f.MaxPrice != nil && *f.MaxPrice == 300000 &&
			f.Availability == nil
	})).Return([]repository.Record{{"numero": 101}}, nil)

	w, _ := do(setup(repo), http.MethodGet, "/habitaciones?tipo=Doble&precio_maximo=300000", "")

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestListRoomsNoFiltersPassesAllNil(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Filter", mock.Anything, repository.RoomFilters{}).
		Return([]repository.Record{}, nil)

	w, env := do(setup(repo), http.MethodGet, "/habitaciones", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(string(env.Data)))
	repo.AssertExpectations(t)
}
