package repository

import (
	"context"
	"time"

	"premium_motors/internal/domain/models"

	"github.com/google/uuid"
)

type CarRepository interface {
	SaveCar(ctx context.Context, car models.Car) (uuid.UUID, error)
	UpdateCar(ctx context.Context, car models.Car) error
	UpdateStatus(ctx context.Context, carID uuid.UUID, status models.CarStatus) error
	DeleteCar(ctx context.Context, carID uuid.UUID) error
	GetCarByID(ctx context.Context, carID uuid.UUID) (models.Car, error)
	GetCatalog(ctx context.Context, filter models.CatalogFilter, limit, offset uint64) ([]models.Car, int, error)
	GetAllCars(ctx context.Context) ([]models.Car, error)
	GetBrands(ctx context.Context) ([]string, error)
	GetCarsForExport(ctx context.Context, consigned *bool) ([]models.Car, error)
}

type LeadRepository interface {
	SaveLead(ctx context.Context, lead models.Lead) (uuid.UUID, error)
	GetLeads(ctx context.Context) ([]models.Lead, error)
	DeleteLead(ctx context.Context, leadID uuid.UUID) error
}

type PostRepository interface {
	SavePost(ctx context.Context, post models.Post) (uuid.UUID, error)
	UpdatePost(ctx context.Context, post models.Post) error
	DeletePost(ctx context.Context, postID uuid.UUID) error
	GetPostByID(ctx context.Context, postID uuid.UUID) (models.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (models.Post, error)
	GetPosts(ctx context.Context, publishedOnly bool, page, perPage int) ([]models.Post, int, error)
}

type UserRepository interface {
	SaveUser(ctx context.Context, user models.User) (uuid.UUID, error)
	UpdateUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	GetUsers(ctx context.Context) ([]models.User, error)
}

type TokenRepository interface {
	SaveRefreshToken(ctx context.Context, userID, token string, exp time.Duration) error
	GetRefreshToken(ctx context.Context, userID, token string) (bool, error)
	DeleteRefreshToken(ctx context.Context, userID, token string) error
	DeleteAllUserTokens(ctx context.Context, userID string) error
}

type CarouselRepository interface {
	SaveSlide(ctx context.Context, slide models.CarouselImage) (uuid.UUID, error)
	UpdateSlide(ctx context.Context, slide models.CarouselImage) error
	DeleteSlide(ctx context.Context, slideID uuid.UUID) error
	GetSlides(ctx context.Context, activeOnly bool) ([]models.CarouselImage, error)
}

type ScriptRepository interface {
	SaveScript(ctx context.Context, script models.CustomScript) (uuid.UUID, error)
	UpdateScript(ctx context.Context, script models.CustomScript) error
	DeleteScript(ctx context.Context, scriptID uuid.UUID) error
	GetScripts(ctx context.Context, activeOnly bool) ([]models.CustomScript, error)
}

type SettingsRepository interface {
	GetSettings(ctx context.Context) (models.SiteSettings, error)
	UpsertSettings(ctx context.Context, settings models.SiteSettings) (models.SiteSettings, error)
}
