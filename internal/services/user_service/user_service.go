package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"premium_motors/internal/domain/models"
	"premium_motors/internal/lib/logger/sl"
	"premium_motors/internal/repository"
	"premium_motors/internal/storage"
	"premium_motors/internal/transport/http/dto"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSelfDelete         = errors.New("cannot delete own account")
)

type UserService struct {
	log  *slog.Logger
	repo repository.UserRepository
}

func NewUserService(log *slog.Logger, repo repository.UserRepository) *UserService {
	return &UserService{
		log:  log,
		repo: repo,
	}
}

func (s *UserService) Login(ctx context.Context, email, password string) (models.User, error) {
	const op = "service.UserService.Login"

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	log.Info("attempting to login user")

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Warn("user not found", sl.Err(err))
			return models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		log.Error("failed to get user", sl.Err(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
		log.Info("invalid credentials", sl.Err(err))
		return models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	log.Info("user logged in successfully")

	return user, nil
}

func (s *UserService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (models.User, error) {
	const op = "service.UserService.RegisterUser"

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", req.Email),
	)

	log.Info("registering user")

	if _, err := s.repo.GetUserByEmail(ctx, req.Email); err == nil {
		log.Warn("user already exists")
		return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrUserExists)
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", sl.Err(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: passHash,
		Role:     models.Role(req.Role),
	}

	id, err := s.repo.SaveUser(ctx, user)
	if err != nil {
		log.Error("failed to save user", sl.Err(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	saved, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user registered", slog.String("id", id.String()))

	return saved, nil
}

func (s *UserService) UpdateUser(ctx context.Context, userID uuid.UUID, req dto.UpdateUserRequest) (models.User, error) {
	const op = "service.UserService.UpdateUser"

	log := s.log.With(
		slog.String("op", op),
		slog.String("user_id", userID.String()),
	)

	user := models.User{
		ID:    userID,
		Name:  req.Name,
		Email: req.Email,
		Role:  models.Role(req.Role),
	}

	if req.Password != "" {
		passHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("failed to generate password hash", sl.Err(err))
			return models.User{}, fmt.Errorf("%s: %w", op, err)
		}
		user.Password = passHash
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		log.Error("failed to update user", sl.Err(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user updated")

	return updated, nil
}

// DeleteUser removes an account. Self-deletion is not allowed.
func (s *UserService) DeleteUser(ctx context.Context, userID, requesterID uuid.UUID) error {
	const op = "service.UserService.DeleteUser"

	if userID == requesterID {
		return fmt.Errorf("%s: %w", op, ErrSelfDelete)
	}

	if err := s.repo.DeleteUser(ctx, userID); err != nil {
		s.log.Error("failed to delete user", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *UserService) GetUsers(ctx context.Context) ([]dto.UserResponse, error) {
	const op = "service.UserService.GetUsers"

	users, err := s.repo.GetUsers(ctx)
	if err != nil {
		s.log.Error("failed to get users", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.NewUserResponse(user))
	}

	return responses, nil
}
