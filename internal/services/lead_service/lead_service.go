package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"premium_motors/internal/domain/models"
	"premium_motors/internal/lib/logger/sl"
	"premium_motors/internal/metrics"
	"premium_motors/internal/repository"
	"premium_motors/internal/transport/http/dto"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type LeadService struct {
	log     *slog.Logger
	repo    repository.LeadRepository
	carRepo repository.CarRepository
}

func NewLeadService(log *slog.Logger, repo repository.LeadRepository, carRepo repository.CarRepository) *LeadService {
	return &LeadService{
		log:     log,
		repo:    repo,
		carRepo: carRepo,
	}
}

// ValidateLead applies the public-form rules beyond what struct tags cover.
// The phone rule counts digits only, so "(11) 98765-4321" passes.
func ValidateLead(req dto.CreateLeadRequest) []string {
	var fields []string

	if len(strings.TrimSpace(req.Name)) < 3 {
		fields = append(fields, "name must have at least 3 characters")
	}
	if validate.Var(strings.TrimSpace(req.Email), "required,email") != nil {
		fields = append(fields, "email must be a valid address")
	}
	if digitCount(req.Phone) < 10 {
		fields = append(fields, "phone must have at least 10 digits")
	}
	if req.CarID == uuid.Nil {
		fields = append(fields, "carId is required")
	}

	return fields
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// CreateLead stores a public enquiry. The referenced car must exist; a lead
// for a vanished car is rejected with the car-not-found sentinel.
func (s *LeadService) CreateLead(ctx context.Context, req dto.CreateLeadRequest) (models.Lead, error) {
	const op = "service.LeadService.CreateLead"

	log := s.log.With(
		slog.String("op", op),
		slog.String("car_id", req.CarID.String()),
	)

	if fields := ValidateLead(req); len(fields) > 0 {
		log.Warn("lead validation failed", slog.Any("fields", fields))
		return models.Lead{}, &models.LeadValidationError{Errors: fields}
	}

	if _, err := s.carRepo.GetCarByID(ctx, req.CarID); err != nil {
		log.Warn("lead references unknown car", sl.Err(err))
		return models.Lead{}, fmt.Errorf("%s: %w", op, err)
	}

	lead := models.Lead{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
		Phone: strings.TrimSpace(req.Phone),
		CarID: req.CarID,
	}

	id, err := s.repo.SaveLead(ctx, lead)
	if err != nil {
		log.Error("failed to save lead", sl.Err(err))
		return models.Lead{}, fmt.Errorf("%s: %w", op, err)
	}

	lead.ID = id
	metrics.LeadsCreatedTotal.Inc()
	log.Info("lead created", slog.String("id", id.String()))

	return lead, nil
}

func (s *LeadService) GetLeads(ctx context.Context) ([]models.Lead, error) {
	const op = "service.LeadService.GetLeads"

	leads, err := s.repo.GetLeads(ctx)
	if err != nil {
		s.log.Error("failed to get leads", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if leads == nil {
		leads = []models.Lead{}
	}

	return leads, nil
}

func (s *LeadService) DeleteLead(ctx context.Context, leadID uuid.UUID) error {
	const op = "service.LeadService.DeleteLead"

	if err := s.repo.DeleteLead(ctx, leadID); err != nil {
		s.log.Error("failed to delete lead", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
