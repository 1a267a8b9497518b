package services

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"testing"

	"premium_motors/internal/domain/models"
	"premium_motors/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCarouselRepository struct {
	mock.Mock
}

func (m *MockCarouselRepository) SaveSlide(ctx context.Context, slide models.CarouselImage) (uuid.UUID, error) {
	args := m.Called(ctx, slide)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockCarouselRepository) UpdateSlide(ctx context.Context, slide models.CarouselImage) error {
	args := m.Called(ctx, slide)
	return args.Error(0)
}

func (m *MockCarouselRepository) DeleteSlide(ctx context.Context, slideID uuid.UUID) error {
	args := m.Called(ctx, slideID)
	return args.Error(0)
}

func (m *MockCarouselRepository) GetSlides(ctx context.Context, activeOnly bool) ([]models.CarouselImage, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]models.CarouselImage), args.Error(1)
}

type MockScriptRepository struct {
	mock.Mock
}

func (m *MockScriptRepository) SaveScript(ctx context.Context, script models.CustomScript) (uuid.UUID, error) {
	args := m.Called(ctx, script)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockScriptRepository) UpdateScript(ctx context.Context, script models.CustomScript) error {
	args := m.Called(ctx, script)
	return args.Error(0)
}

func (m *MockScriptRepository) DeleteScript(ctx context.Context, scriptID uuid.UUID) error {
	args := m.Called(ctx, scriptID)
	return args.Error(0)
}

func (m *MockScriptRepository) GetScripts(ctx context.Context, activeOnly bool) ([]models.CustomScript, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]models.CustomScript), args.Error(1)
}

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetSettings(ctx context.Context) (models.SiteSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.SiteSettings), args.Error(1)
}

func (m *MockSettingsRepository) UpsertSettings(ctx context.Context, settings models.SiteSettings) (models.SiteSettings, error) {
	args := m.Called(ctx, settings)
	return args.Get(0).(models.SiteSettings), args.Error(1)
}

type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) Delete(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

func (m *MockFileStorage) BaseURL() string {
	args := m.Called()
	return args.String(0)
}

func newSiteService(carousel *MockCarouselRepository, scripts *MockScriptRepository, settings *MockSettingsRepository, fs *MockFileStorage) *SiteService {
	return NewSiteService(slog.Default(), carousel, scripts, settings, fs)
}

func TestSiteService_DeleteSlide(t *testing.T) {
	ctx := context.Background()
	slideID := uuid.New()

	slides := []models.CarouselImage{
		{ID: slideID, Image: "/uploads/cars/slide.jpg"},
		{ID: uuid.New(), Image: "/uploads/cars/other.jpg"},
	}

	t.Run("removes row and image", func(t *testing.T) {
		carousel := new(MockCarouselRepository)
		fs := new(MockFileStorage)
		service := newSiteService(carousel, new(MockScriptRepository), new(MockSettingsRepository), fs)

		carousel.On("GetSlides", ctx, false).Return(slides, nil).Once()
		carousel.On("DeleteSlide", ctx, slideID).Return(nil).Once()
		fs.On("Delete", ctx, "/uploads/cars/slide.jpg").Return(nil).Once()

		err := service.DeleteSlide(ctx, slideID)

		assert.NoError(t, err)
		carousel.AssertExpectations(t)
		fs.AssertExpectations(t)
	})

	t.Run("image removal failure is swallowed", func(t *testing.T) {
		carousel := new(MockCarouselRepository)
		fs := new(MockFileStorage)
		service := newSiteService(carousel, new(MockScriptRepository), new(MockSettingsRepository), fs)

		carousel.On("GetSlides", ctx, false).Return(slides, nil).Once()
		carousel.On("DeleteSlide", ctx, slideID).Return(nil).Once()
		fs.On("Delete", ctx, "/uploads/cars/slide.jpg").
			Return(errors.New("bucket unreachable")).Once()

		err := service.DeleteSlide(ctx, slideID)

		assert.NoError(t, err)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		carousel := new(MockCarouselRepository)
		fs := new(MockFileStorage)
		service := newSiteService(carousel, new(MockScriptRepository), new(MockSettingsRepository), fs)

		carousel.On("GetSlides", ctx, false).Return(slides, nil).Once()
		carousel.On("DeleteSlide", ctx, slideID).
			Return(storage.ErrSlideNotFound).Once()

		err := service.DeleteSlide(ctx, slideID)

		assert.ErrorIs(t, err, storage.ErrSlideNotFound)
		fs.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestSiteService_GetScripts(t *testing.T) {
	ctx := context.Background()

	scripts := []models.CustomScript{
		{ID: uuid.New(), Name: "Analytics", Position: models.ScriptPositionHead},
		{ID: uuid.New(), Name: "Pixel", Position: models.ScriptPositionBodyEnd},
		{ID: uuid.New(), Name: "Chat", Position: models.ScriptPositionHead},
	}

	t.Run("position filter", func(t *testing.T) {
		repo := new(MockScriptRepository)
		service := newSiteService(new(MockCarouselRepository), repo, new(MockSettingsRepository), new(MockFileStorage))

		repo.On("GetScripts", ctx, true).Return(scripts, nil).Once()

		got, err := service.GetScripts(ctx, true, models.ScriptPositionHead)

		assert.NoError(t, err)
		assert.Len(t, got, 2)
		for _, s := range got {
			assert.Equal(t, models.ScriptPositionHead, s.Position)
		}
	})

	t.Run("empty position returns everything", func(t *testing.T) {
		repo := new(MockScriptRepository)
		service := newSiteService(new(MockCarouselRepository), repo, new(MockSettingsRepository), new(MockFileStorage))

		repo.On("GetScripts", ctx, false).Return(scripts, nil).Once()

		got, err := service.GetScripts(ctx, false, "")

		assert.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("nil becomes empty slice", func(t *testing.T) {
		repo := new(MockScriptRepository)
		service := newSiteService(new(MockCarouselRepository), repo, new(MockSettingsRepository), new(MockFileStorage))

		repo.On("GetScripts", ctx, true).Return([]models.CustomScript(nil), nil).Once()

		got, err := service.GetScripts(ctx, true, "")

		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestSiteService_GetSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("existing settings", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		service := newSiteService(new(MockCarouselRepository), new(MockScriptRepository), repo, new(MockFileStorage))

		stored := models.SiteSettings{CompanyName: "Premium Motors", WhatsappNumber: "5511999999999"}
		repo.On("GetSettings", ctx).Return(stored, nil).Once()

		got, err := service.GetSettings(ctx)

		assert.NoError(t, err)
		assert.Equal(t, stored, got)
		repo.AssertNotCalled(t, "UpsertSettings", mock.Anything, mock.Anything)
	})

	t.Run("first read seeds the default row", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		service := newSiteService(new(MockCarouselRepository), new(MockScriptRepository), repo, new(MockFileStorage))

		repo.On("GetSettings", ctx).
			Return(models.SiteSettings{}, storage.ErrSettingsNotFound).Once()
		repo.On("UpsertSettings", ctx, mock.MatchedBy(func(s models.SiteSettings) bool {
			return s.CompanyName == "Premium Motors"
		})).Return(models.SiteSettings{CompanyName: "Premium Motors"}, nil).Once()

		got, err := service.GetSettings(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "Premium Motors", got.CompanyName)
		repo.AssertExpectations(t)
	})
}
