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

type LeadRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewLeadRepo(db *pgxpool.Pool) *LeadRepo {
	return &LeadRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *LeadRepo) SaveLead(ctx context.Context, lead models.Lead) (uuid.UUID, error) {
	const op = "repository.LeadRepo.SaveLead"

	query, args, err := r.sb.Insert("leads").
		Columns("name", "email", "phone", "car_id").
		Values(lead.Name, lead.Email, lead.Phone, lead.CarID).
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

// GetLeads returns all leads newest first, each with a summary of the car it
// was left for. The join is LEFT so a lead survives its car being removed.
func (r *LeadRepo) GetLeads(ctx context.Context) ([]models.Lead, error) {
	const op = "repository.LeadRepo.GetLeads"

	query, args, err := r.sb.Select(
		"l.id", "l.name", "l.email", "l.phone", "l.car_id", "l.created_at",
		"c.brand", "c.model", "c.year", "c.price",
	).
		From("leads l").
		LeftJoin("cars c ON c.id = l.car_id").
		OrderBy("l.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var leads []models.Lead
	for rows.Next() {
		var (
			lead  models.Lead
			brand *string
			model *string
			year  *string
			price *float64
		)
		err := rows.Scan(
			&lead.ID, &lead.Name, &lead.Email, &lead.Phone, &lead.CarID,
			&lead.CreatedAt, &brand, &model, &year, &price,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if brand != nil {
			lead.Car = &models.Car{
				ID:    lead.CarID,
				Brand: *brand,
				Model: *model,
				Year:  *year,
				Price: *price,
			}
		}

		leads = append(leads, lead)
	}

	return leads, nil
}

func (r *LeadRepo) DeleteLead(ctx context.Context, leadID uuid.UUID) error {
	const op = "repository.LeadRepo.DeleteLead"

	query, args, err := r.sb.Delete("leads").
		Where(sq.Eq{"id": leadID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrLeadNotFound)
	}

	return nil
}
