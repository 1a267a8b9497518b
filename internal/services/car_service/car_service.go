package services

import (
	"context"
	"fmt"
	"log/slog"

	"premium_motors/internal/domain/models"
	"premium_motors/internal/lib/logger/sl"
	"premium_motors/internal/repository"
	storage "premium_motors/internal/storage/filestorage"

	"github.com/google/uuid"
)

type CarService struct {
	log         *slog.Logger
	repo        repository.CarRepository
	fileStorage storage.FileStorage
}

func NewCarService(log *slog.Logger, repo repository.CarRepository, fileStorage storage.FileStorage) *CarService {
	return &CarService{
		log:         log,
		repo:        repo,
		fileStorage: fileStorage,
	}
}

func (s *CarService) CreateCar(ctx context.Context, car models.Car) (models.Car, error) {
	const op = "service.CarService.CreateCar"

	log := s.log.With(
		slog.String("op", op),
		slog.String("brand", car.Brand),
		slog.String("model", car.Model),
	)

	if err := car.Validate(); err != nil {
		log.Warn("car validation failed", sl.Err(err))
		return models.Car{}, err
	}

	id, err := s.repo.SaveCar(ctx, car)
	if err != nil {
		log.Error("failed to save car", sl.Err(err))
		return models.Car{}, fmt.Errorf("%s: %w", op, err)
	}

	saved, err := s.repo.GetCarByID(ctx, id)
	if err != nil {
		return models.Car{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("car created", slog.String("id", id.String()))

	return saved, nil
}

func (s *CarService) UpdateCar(ctx context.Context, car models.Car) (models.Car, error) {
	const op = "service.CarService.UpdateCar"

	log := s.log.With(
		slog.String("op", op),
		slog.String("car_id", car.ID.String()),
	)

	if err := car.Validate(); err != nil {
		log.Warn("car validation failed", sl.Err(err))
		return models.Car{}, err
	}

	if err := s.repo.UpdateCar(ctx, car); err != nil {
		log.Error("failed to update car", sl.Err(err))
		return models.Car{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.GetCarByID(ctx, car.ID)
	if err != nil {
		return models.Car{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("car updated")

	return updated, nil
}

func (s *CarService) UpdateStatus(ctx context.Context, carID uuid.UUID, status models.CarStatus) error {
	const op = "service.CarService.UpdateStatus"

	log := s.log.With(
		slog.String("op", op),
		slog.String("car_id", carID.String()),
		slog.String("status", string(status)),
	)

	if err := s.repo.UpdateStatus(ctx, carID, status); err != nil {
		log.Error("failed to update car status", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("car status updated")

	return nil
}

// UpdateImages replaces the ordered image list; the first URL becomes the
// cover.
func (s *CarService) UpdateImages(ctx context.Context, carID uuid.UUID, images []string) (models.Car, error) {
	const op = "service.CarService.UpdateImages"

	log := s.log.With(
		slog.String("op", op),
		slog.String("car_id", carID.String()),
	)

	car, err := s.repo.GetCarByID(ctx, carID)
	if err != nil {
		return models.Car{}, fmt.Errorf("%s: %w", op, err)
	}

	car.Images = images
	if err := s.repo.UpdateCar(ctx, car); err != nil {
		log.Error("failed to update car images", sl.Err(err))
		return models.Car{}, fmt.Errorf("%s: %w", op, err)
	}

	car, err = s.repo.GetCarByID(ctx, carID)
	if err != nil {
		return models.Car{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("car images updated", slog.Int("count", len(images)))

	return car, nil
}

// DeleteCar removes the DB row and then tries to remove each stored image.
// Image deletion is best-effort: a failed file removal is logged and skipped,
// it never fails the operation once the row is gone.
func (s *CarService) DeleteCar(ctx context.Context, carID uuid.UUID) error {
	const op = "service.CarService.DeleteCar"

	log := s.log.With(
		slog.String("op", op),
		slog.String("car_id", carID.String()),
	)

	car, err := s.repo.GetCarByID(ctx, carID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.DeleteCar(ctx, carID); err != nil {
		log.Error("failed to delete car", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, url := range car.Images {
		if err := s.fileStorage.Delete(ctx, url); err != nil {
			log.Warn("failed to delete car image", slog.String("url", url), sl.Err(err))
		}
	}

	log.Info("car deleted")

	return nil
}

func (s *CarService) GetCarByID(ctx context.Context, carID uuid.UUID) (models.Car, error) {
	const op = "service.CarService.GetCarByID"

	car, err := s.repo.GetCarByID(ctx, carID)
	if err != nil {
		return models.Car{}, fmt.Errorf("%s: %w", op, err)
	}

	return car, nil
}

// GetAllCars is the admin inventory listing, sold cars included.
func (s *CarService) GetAllCars(ctx context.Context) ([]models.Car, error) {
	const op = "service.CarService.GetAllCars"

	cars, err := s.repo.GetAllCars(ctx)
	if err != nil {
		s.log.Error("failed to list cars", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if cars == nil {
		cars = []models.Car{}
	}

	return cars, nil
}
