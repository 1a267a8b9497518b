package services

import (
	"context"
	"fmt"
	"log/slog"

	"premium_motors/internal/domain/models"
	"premium_motors/internal/lib/logger/sl"
	"premium_motors/internal/repository"
	"premium_motors/internal/transport/http/dto"
)

const defaultPageSize = 12

type CatalogService struct {
	log  *slog.Logger
	repo repository.CarRepository
}

func NewCatalogService(log *slog.Logger, repo repository.CarRepository) *CatalogService {
	return &CatalogService{
		log:  log,
		repo: repo,
	}
}

// BuildPagination computes the paging block the storefront relies on.
// totalPages rounds up; hasMore compares the requested page against it, so a
// page past the end yields hasMore=false rather than an error.
func BuildPagination(page, limit, totalCount int) dto.Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (totalCount + limit - 1) / limit
	}

	return dto.Pagination{
		Page:       page,
		Limit:      limit,
		TotalCount: totalCount,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}
}

// GetCatalog returns the public catalog page for the given filter. showAll
// bypasses paging entirely and reports a single page holding everything.
func (s *CatalogService) GetCatalog(ctx context.Context, filter models.CatalogFilter, page, limit int, showAll bool) (*dto.CatalogResponse, error) {
	const op = "service.CatalogService.GetCatalog"

	log := s.log.With(
		slog.String("op", op),
		slog.Int("page", page),
		slog.Bool("show_all", showAll),
	)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}

	var (
		queryLimit  uint64
		queryOffset uint64
	)
	if !showAll {
		queryLimit = uint64(limit)
		queryOffset = uint64((page - 1) * limit)
	}

	cars, totalCount, err := s.repo.GetCatalog(ctx, filter, queryLimit, queryOffset)
	if err != nil {
		log.Error("failed to get catalog", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if cars == nil {
		cars = []models.Car{}
	}

	pagination := BuildPagination(page, limit, totalCount)
	if showAll {
		pagination = dto.Pagination{
			Page:       1,
			Limit:      totalCount,
			TotalCount: totalCount,
			TotalPages: 1,
			HasMore:    false,
		}
	}

	return &dto.CatalogResponse{
		Cars:       cars,
		Pagination: pagination,
	}, nil
}

// GetBrands returns the distinct brands currently for sale.
func (s *CatalogService) GetBrands(ctx context.Context) ([]string, error) {
	const op = "service.CatalogService.GetBrands"

	brands, err := s.repo.GetBrands(ctx)
	if err != nil {
		s.log.Error("failed to get brands", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if brands == nil {
		brands = []string{}
	}

	return brands, nil
}
