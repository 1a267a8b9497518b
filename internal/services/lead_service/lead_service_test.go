package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"premium_motors/internal/domain/models"
	"premium_motors/internal/storage"
	"premium_motors/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) SaveLead(ctx context.Context, lead models.Lead) (uuid.UUID, error) {
	args := m.Called(ctx, lead)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockLeadRepository) GetLeads(ctx context.Context) ([]models.Lead, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Lead), args.Error(1)
}

func (m *MockLeadRepository) DeleteLead(ctx context.Context, leadID uuid.UUID) error {
	args := m.Called(ctx, leadID)
	return args.Error(0)
}

type MockCarRepository struct {
	mock.Mock
}

func (m *MockCarRepository) SaveCar(ctx context.Context, car models.Car) (uuid.UUID, error) {
	args := m.Called(ctx, car)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockCarRepository) UpdateCar(ctx context.Context, car models.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *MockCarRepository) UpdateStatus(ctx context.Context, carID uuid.UUID, status models.CarStatus) error {
	args := m.Called(ctx, carID, status)
	return args.Error(0)
}

func (m *MockCarRepository) DeleteCar(ctx context.Context, carID uuid.UUID) error {
	args := m.Called(ctx, carID)
	return args.Error(0)
}

func (m *MockCarRepository) GetCarByID(ctx context.Context, carID uuid.UUID) (models.Car, error) {
	args := m.Called(ctx, carID)
	return args.Get(0).(models.Car), args.Error(1)
}

func (m *MockCarRepository) GetCatalog(ctx context.Context, filter models.CatalogFilter, limit, offset uint64) ([]models.Car, int, error) {
	args := m.Called(ctx, filter, limit, offset)
	return args.Get(0).([]models.Car), args.Int(1), args.Error(2)
}

func (m *MockCarRepository) GetAllCars(ctx context.Context) ([]models.Car, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Car), args.Error(1)
}

func (m *MockCarRepository) GetBrands(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCarRepository) GetCarsForExport(ctx context.Context, consigned *bool) ([]models.Car, error) {
	args := m.Called(ctx, consigned)
	return args.Get(0).([]models.Car), args.Error(1)
}

func TestValidateLead(t *testing.T) {
	carID := uuid.New()

	tests := []struct {
		name     string
		req      dto.CreateLeadRequest
		expected []string
	}{
		{
			name: "valid lead",
			req: dto.CreateLeadRequest{
				Name:  "Maria Silva",
				Email: "maria@example.com",
				Phone: "(11) 98765-4321",
				CarID: carID,
			},
			expected: nil,
		},
		{
			name: "name too short",
			req: dto.CreateLeadRequest{
				Name:  "Jo",
				Email: "jo@example.com",
				Phone: "11987654321",
				CarID: carID,
			},
			expected: []string{"name must have at least 3 characters"},
		},
		{
			name: "whitespace name",
			req: dto.CreateLeadRequest{
				Name:  "   a    ",
				Email: "a@example.com",
				Phone: "11987654321",
				CarID: carID,
			},
			expected: []string{"name must have at least 3 characters"},
		},
		{
			name: "formatted phone counts digits only",
			req: dto.CreateLeadRequest{
				Name:  "Maria Silva",
				Email: "maria@example.com",
				Phone: "(11) 9876-543",
				CarID: carID,
			},
			expected: []string{"phone must have at least 10 digits"},
		},
		{
			name: "invalid email format",
			req: dto.CreateLeadRequest{
				Name:  "Maria Silva",
				Email: "maria-at-example.com",
				Phone: "11987654321",
				CarID: carID,
			},
			expected: []string{"email must be a valid address"},
		},
		{
			name: "missing email",
			req: dto.CreateLeadRequest{
				Name:  "Maria Silva",
				Phone: "11987654321",
				CarID: carID,
			},
			expected: []string{"email must be a valid address"},
		},
		{
			name: "everything wrong",
			req:  dto.CreateLeadRequest{},
			expected: []string{
				"name must have at least 3 characters",
				"email must be a valid address",
				"phone must have at least 10 digits",
				"carId is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateLead(tt.req))
		})
	}
}

func TestLeadService_CreateLead(t *testing.T) {
	ctx := context.Background()
	carID := uuid.New()
	leadID := uuid.New()

	req := dto.CreateLeadRequest{
		Name:  "  Maria Silva  ",
		Email: "maria@example.com",
		Phone: "11987654321",
		CarID: carID,
	}

	t.Run("successful creation trims fields", func(t *testing.T) {
		repo := new(MockLeadRepository)
		carRepo := new(MockCarRepository)
		service := NewLeadService(slog.Default(), repo, carRepo)

		carRepo.On("GetCarByID", ctx, carID).Return(models.Car{ID: carID}, nil).Once()
		repo.On("SaveLead", ctx, mock.MatchedBy(func(l models.Lead) bool {
			return l.Name == "Maria Silva" && l.CarID == carID
		})).Return(leadID, nil).Once()

		lead, err := service.CreateLead(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, leadID, lead.ID)
		assert.Equal(t, "Maria Silva", lead.Name)
		repo.AssertExpectations(t)
		carRepo.AssertExpectations(t)
	})

	t.Run("unknown car is rejected", func(t *testing.T) {
		repo := new(MockLeadRepository)
		carRepo := new(MockCarRepository)
		service := NewLeadService(slog.Default(), repo, carRepo)

		carRepo.On("GetCarByID", ctx, carID).
			Return(models.Car{}, storage.ErrCarNotFound).Once()

		_, err := service.CreateLead(ctx, req)

		assert.ErrorIs(t, err, storage.ErrCarNotFound)
		repo.AssertNotCalled(t, "SaveLead", mock.Anything, mock.Anything)
	})

	t.Run("validation failure skips repositories", func(t *testing.T) {
		repo := new(MockLeadRepository)
		carRepo := new(MockCarRepository)
		service := NewLeadService(slog.Default(), repo, carRepo)

		_, err := service.CreateLead(ctx, dto.CreateLeadRequest{Name: "x"})

		var vErr *models.LeadValidationError
		assert.ErrorAs(t, err, &vErr)
		carRepo.AssertNotCalled(t, "GetCarByID", mock.Anything, mock.Anything)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(MockLeadRepository)
		carRepo := new(MockCarRepository)
		service := NewLeadService(slog.Default(), repo, carRepo)

		carRepo.On("GetCarByID", ctx, carID).Return(models.Car{ID: carID}, nil).Once()
		repo.On("SaveLead", ctx, mock.Anything).
			Return(uuid.Nil, errors.New("insert failed")).Once()

		_, err := service.CreateLead(ctx, req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "insert failed")
	})
}

func TestLeadService_GetLeads(t *testing.T) {
	ctx := context.Background()

	t.Run("nil becomes empty slice", func(t *testing.T) {
		repo := new(MockLeadRepository)
		carRepo := new(MockCarRepository)
		service := NewLeadService(slog.Default(), repo, carRepo)

		repo.On("GetLeads", ctx).Return([]models.Lead(nil), nil).Once()

		leads, err := service.GetLeads(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, leads)
		assert.Empty(t, leads)
	})
}

func TestLeadService_DeleteLead(t *testing.T) {
	ctx := context.Background()
	leadID := uuid.New()

	repo := new(MockLeadRepository)
	carRepo := new(MockCarRepository)
	service := NewLeadService(slog.Default(), repo, carRepo)

	repo.On("DeleteLead", ctx, leadID).Return(storage.ErrLeadNotFound).Once()

	err := service.DeleteLead(ctx, leadID)

	assert.ErrorIs(t, err, storage.ErrLeadNotFound)
	repo.AssertExpectations(t)
}
