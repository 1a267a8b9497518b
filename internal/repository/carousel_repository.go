package repository

import (
	"context"
	"fmt"

	"premium_motors/internal/domain/models"
	"premium_motors/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

type CarouselRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewCarouselRepo(db *pgxpool.Pool) *CarouselRepo {
	return &CarouselRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *CarouselRepo) SaveSlide(ctx context.Context, slide models.CarouselImage) (uuid.UUID, error) {
	const op = "repository.CarouselRepo.SaveSlide"

	query, args, err := r.sb.Insert("carousel_images").
		Columns("image", "title", "link", "position", "active").
		Values(slide.Image, slide.Title, slide.Link, slide.Order, slide.Active).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *CarouselRepo) UpdateSlide(ctx context.Context, slide models.CarouselImage) error {
	const op = "repository.CarouselRepo.UpdateSlide"

	query, args, err := r.sb.Update("carousel_images").
		Set("image", slide.Image).
		Set("title", slide.Title).
		Set("link", slide.Link).
		Set("position", slide.Order).
		Set("active", slide.Active).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": slide.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrSlideNotFound)
	}

	return nil
}

func (r *CarouselRepo) DeleteSlide(ctx context.Context, slideID uuid.UUID) error {
	const op = "repository.CarouselRepo.DeleteSlide"

	query, args, err := r.sb.Delete("carousel_images").
		Where(sq.Eq{"id": slideID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrSlideNotFound)
	}

	return nil
}

// GetSlides returns slides ordered by their configured position. activeOnly
// is what the public endpoint uses; the admin listing sees inactive slides
// too.
func (r *CarouselRepo) GetSlides(ctx context.Context, activeOnly bool) ([]models.CarouselImage, error) {
	const op = "repository.CarouselRepo.GetSlides"

	queryBuilder := r.sb.Select("id", "image", "title", "link", "position", "active", "created_at", "updated_at").
		From("carousel_images")
	if activeOnly {
		queryBuilder = queryBuilder.Where(sq.Eq{"active": true})
	}

	query, args, err := queryBuilder.OrderBy("position ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var slides []models.CarouselImage
	for rows.Next() {
		var slide models.CarouselImage
		err := rows.Scan(
			&slide.ID, &slide.Image, &slide.Title, &slide.Link,
			&slide.Order, &slide.Active, &slide.CreatedAt, &slide.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		slides = append(slides, slide)
	}

	return slides, nil
}
