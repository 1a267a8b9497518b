package services

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"testing"

	"premium_motors/internal/domain/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

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

type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) Delete(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

func (m *MockFileStorage) BaseURL() string {
	args := m.Called()
	return args.String(0)
}

func validCar() models.Car {
	return models.Car{
		Brand:       "Toyota",
		Model:       "Corolla",
		Year:        "2020",
		Price:       95000,
		Status:      models.CarStatusAvailable,
		Description: "Well kept, single owner",
	}
}

func TestCarService_CreateCar(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		car         models.Car
		mockSetup   func(repo *MockCarRepository, id uuid.UUID)
		wantError   bool
		expectedErr string
	}{
		{
			name: "successful creation",
			car:  validCar(),
			mockSetup: func(repo *MockCarRepository, id uuid.UUID) {
				repo.On("SaveCar", ctx, mock.Anything).Return(id, nil).Once()
				repo.On("GetCarByID", ctx, id).Return(validCar(), nil).Once()
			},
		},
		{
			name:        "missing brand",
			car:         models.Car{Model: "Corolla", Year: "2020", Price: 95000, Description: "x"},
			mockSetup:   func(repo *MockCarRepository, id uuid.UUID) {},
			wantError:   true,
			expectedErr: "brand is required",
		},
		{
			name: "negative price",
			car: models.Car{
				Brand: "Toyota", Model: "Corolla", Year: "2020", Price: -1, Description: "x",
			},
			mockSetup:   func(repo *MockCarRepository, id uuid.UUID) {},
			wantError:   true,
			expectedErr: "price must be positive",
		},
		{
			name: "repository error",
			car:  validCar(),
			mockSetup: func(repo *MockCarRepository, id uuid.UUID) {
				repo.On("SaveCar", ctx, mock.Anything).
					Return(uuid.Nil, errors.New("insert failed")).Once()
			},
			wantError:   true,
			expectedErr: "insert failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockCarRepository)
			fs := new(MockFileStorage)
			service := NewCarService(slog.Default(), repo, fs)

			id := uuid.New()
			tt.mockSetup(repo, id)

			_, err := service.CreateCar(ctx, tt.car)

			if tt.wantError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestCarService_CreateCar_ValidationErrorType(t *testing.T) {
	repo := new(MockCarRepository)
	fs := new(MockFileStorage)
	service := NewCarService(slog.Default(), repo, fs)

	_, err := service.CreateCar(context.Background(), models.Car{})

	var vErr *models.CarValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.NotEmpty(t, vErr.Errors)
}

func TestCarService_UpdateImages(t *testing.T) {
	ctx := context.Background()
	carID := uuid.New()

	existing := validCar()
	existing.ID = carID
	existing.Images = []string{"/uploads/cars/old.jpg"}

	newImages := []string{"/uploads/cars/b.jpg", "/uploads/cars/a.jpg"}

	updated := existing
	updated.Images = newImages

	repo := new(MockCarRepository)
	fs := new(MockFileStorage)
	service := NewCarService(slog.Default(), repo, fs)

	repo.On("GetCarByID", ctx, carID).Return(existing, nil).Once()
	repo.On("UpdateCar", ctx, mock.MatchedBy(func(c models.Car) bool {
		return c.ID == carID && len(c.Images) == 2 && c.Images[0] == "/uploads/cars/b.jpg"
	})).Return(nil).Once()
	repo.On("GetCarByID", ctx, carID).Return(updated, nil).Once()

	car, err := service.UpdateImages(ctx, carID, newImages)

	assert.NoError(t, err)
	assert.Equal(t, newImages, car.Images)
	assert.Equal(t, "/uploads/cars/b.jpg", car.CoverImage())
	repo.AssertExpectations(t)
}

func TestCarService_DeleteCar(t *testing.T) {
	ctx := context.Background()
	carID := uuid.New()

	car := validCar()
	car.ID = carID
	car.Images = []string{"/uploads/cars/1.jpg", "/uploads/cars/2.jpg"}

	t.Run("deletes row and images", func(t *testing.T) {
		repo := new(MockCarRepository)
		fs := new(MockFileStorage)
		service := NewCarService(slog.Default(), repo, fs)

		repo.On("GetCarByID", ctx, carID).Return(car, nil).Once()
		repo.On("DeleteCar", ctx, carID).Return(nil).Once()
		fs.On("Delete", ctx, "/uploads/cars/1.jpg").Return(nil).Once()
		fs.On("Delete", ctx, "/uploads/cars/2.jpg").Return(nil).Once()

		err := service.DeleteCar(ctx, carID)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
		fs.AssertExpectations(t)
	})

	t.Run("file removal failure does not fail the delete", func(t *testing.T) {
		repo := new(MockCarRepository)
		fs := new(MockFileStorage)
		service := NewCarService(slog.Default(), repo, fs)

		repo.On("GetCarByID", ctx, carID).Return(car, nil).Once()
		repo.On("DeleteCar", ctx, carID).Return(nil).Once()
		fs.On("Delete", ctx, "/uploads/cars/1.jpg").Return(errors.New("bucket unreachable")).Once()
		fs.On("Delete", ctx, "/uploads/cars/2.jpg").Return(nil).Once()

		err := service.DeleteCar(ctx, carID)

		assert.NoError(t, err)
		fs.AssertExpectations(t)
	})

	t.Run("repository error keeps files", func(t *testing.T) {
		repo := new(MockCarRepository)
		fs := new(MockFileStorage)
		service := NewCarService(slog.Default(), repo, fs)

		repo.On("GetCarByID", ctx, carID).Return(car, nil).Once()
		repo.On("DeleteCar", ctx, carID).Return(errors.New("delete failed")).Once()

		err := service.DeleteCar(ctx, carID)

		assert.Error(t, err)
		fs.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestCarService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	carID := uuid.New()

	repo := new(MockCarRepository)
	fs := new(MockFileStorage)
	service := NewCarService(slog.Default(), repo, fs)

	repo.On("UpdateStatus", ctx, carID, models.CarStatusSold).Return(nil).Once()

	err := service.UpdateStatus(ctx, carID, models.CarStatusSold)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
