package repository

import (
	"context"
	"errors"
	"fmt"

	"premium_motors/internal/domain/models"
	"premium_motors/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// SettingsRepo manages the single site_settings row. The table is keyed by a
// constant id so upsert always targets the same row.
type SettingsRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewSettingsRepo(db *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *SettingsRepo) GetSettings(ctx context.Context) (models.SiteSettings, error) {
	const op = "repository.SettingsRepo.GetSettings"

	query, args, err := r.sb.Select(
		"whatsapp_number", "company_name", "company_email", "company_address",
		"facebook_url", "instagram_url", "updated_at",
	).
		From("site_settings").
		Where(sq.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return models.SiteSettings{}, fmt.Errorf("%s: %w", op, err)
	}

	var settings models.SiteSettings
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&settings.WhatsappNumber, &settings.CompanyName, &settings.CompanyEmail,
		&settings.CompanyAddress, &settings.FacebookURL, &settings.InstagramURL,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.SiteSettings{}, fmt.Errorf("%s: %w", op, storage.ErrSettingsNotFound)
		}
		return models.SiteSettings{}, fmt.Errorf("%s: %w", op, err)
	}

	return settings, nil
}

func (r *SettingsRepo) UpsertSettings(ctx context.Context, settings models.SiteSettings) (models.SiteSettings, error) {
	const op = "repository.SettingsRepo.UpsertSettings"

	query, args, err := r.sb.Insert("site_settings").
		Columns(
			"id", "whatsapp_number", "company_name", "company_email",
			"company_address", "facebook_url", "instagram_url",
		).
		Values(
			1, settings.WhatsappNumber, settings.CompanyName,
			settings.CompanyEmail, settings.CompanyAddress,
			settings.FacebookURL, settings.InstagramURL,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			whatsapp_number = EXCLUDED.whatsapp_number,
			company_name = EXCLUDED.company_name,
			company_email = EXCLUDED.company_email,
			company_address = EXCLUDED.company_address,
			facebook_url = EXCLUDED.facebook_url,
			instagram_url = EXCLUDED.instagram_url,
			updated_at = NOW()
		RETURNING whatsapp_number, company_name, company_email, company_address, facebook_url, instagram_url, updated_at`).
		ToSql()
	if err != nil {
		return models.SiteSettings{}, fmt.Errorf("%s: %w", op, err)
	}

	var saved models.SiteSettings
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&saved.WhatsappNumber, &saved.CompanyName, &saved.CompanyEmail,
		&saved.CompanyAddress, &saved.FacebookURL, &saved.InstagramURL,
		&saved.UpdatedAt,
	)
	if err != nil {
		return models.SiteSettings{}, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}
