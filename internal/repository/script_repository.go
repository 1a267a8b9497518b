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

type ScriptRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewScriptRepo(db *pgxpool.Pool) *ScriptRepo {
	return &ScriptRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ScriptRepo) SaveScript(ctx context.Context, script models.CustomScript) (uuid.UUID, error) {
	const op = "repository.ScriptRepo.SaveScript"

	query, args, err := r.sb.Insert("custom_scripts").
		Columns("name", "content", "script_position", "is_active", "description", "sort_order").
		Values(script.Name, script.Content, script.Position, script.IsActive, script.Description, script.Order).
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

func (r *ScriptRepo) UpdateScript(ctx context.Context, script models.CustomScript) error {
	const op = "repository.ScriptRepo.UpdateScript"

	query, args, err := r.sb.Update("custom_scripts").
		Set("name", script.Name).
		Set("content", script.Content).
		Set("script_position", script.Position).
		Set("is_active", script.IsActive).
		Set("description", script.Description).
		Set("sort_order", script.Order).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": script.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrScriptNotFound)
	}

	return nil
}

func (r *ScriptRepo) DeleteScript(ctx context.Context, scriptID uuid.UUID) error {
	const op = "repository.ScriptRepo.DeleteScript"

	query, args, err := r.sb.Delete("custom_scripts").
		Where(sq.Eq{"id": scriptID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrScriptNotFound)
	}

	return nil
}

// GetScripts returns scripts in injection order. activeOnly is what the
// public site uses when rendering.
func (r *ScriptRepo) GetScripts(ctx context.Context, activeOnly bool) ([]models.CustomScript, error) {
	const op = "repository.ScriptRepo.GetScripts"

	queryBuilder := r.sb.Select(
		"id", "name", "content", "script_position", "is_active",
		"description", "sort_order", "created_at", "updated_at",
	).From("custom_scripts")
	if activeOnly {
		queryBuilder = queryBuilder.Where(sq.Eq{"is_active": true})
	}

	query, args, err := queryBuilder.OrderBy("sort_order ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var scripts []models.CustomScript
	for rows.Next() {
		var script models.CustomScript
		err := rows.Scan(
			&script.ID, &script.Name, &script.Content, &script.Position,
			&script.IsActive, &script.Description, &script.Order,
			&script.CreatedAt, &script.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		scripts = append(scripts, script)
	}

	return scripts, nil
}
