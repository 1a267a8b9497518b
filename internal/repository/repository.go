package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

type Repository struct {
	db       *pgxpool.Pool
	Car      CarRepository
	Lead     LeadRepository
	Post     PostRepository
	User     UserRepository
	Carousel CarouselRepository
	Script   ScriptRepository
	Settings SettingsRepository
}

func NewRepository(ctx context.Context, dsn string) (*Repository, error) {
	db, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		db:       db,
		Car:      NewCarRepo(db),
		Lead:     NewLeadRepo(db),
		Post:     NewPostRepo(db),
		User:     NewUserRepo(db),
		Carousel: NewCarouselRepo(db),
		Script:   NewScriptRepo(db),
		Settings: NewSettingsRepo(db),
	}, nil
}

func (r *Repository) Close() {
	r.db.Close()
}
