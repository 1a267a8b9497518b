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
	filestorage "premium_motors/internal/storage/filestorage"

	"github.com/google/uuid"
)

// SiteService covers the storefront chrome: carousel slides, injected
// scripts and the settings row.
type SiteService struct {
	log         *slog.Logger
	carousel    repository.CarouselRepository
	scripts     repository.ScriptRepository
	settings    repository.SettingsRepository
	fileStorage filestorage.FileStorage
}

func NewSiteService(
	log *slog.Logger,
	carousel repository.CarouselRepository,
	scripts repository.ScriptRepository,
	settings repository.SettingsRepository,
	fileStorage filestorage.FileStorage,
) *SiteService {
	return &SiteService{
		log:         log,
		carousel:    carousel,
		scripts:     scripts,
		settings:    settings,
		fileStorage: fileStorage,
	}
}

func (s *SiteService) CreateSlide(ctx context.Context, slide models.CarouselImage) (models.CarouselImage, error) {
	const op = "service.SiteService.CreateSlide"

	id, err := s.carousel.SaveSlide(ctx, slide)
	if err != nil {
		s.log.Error("failed to save slide", slog.String("op", op), sl.Err(err))
		return models.CarouselImage{}, fmt.Errorf("%s: %w", op, err)
	}

	slide.ID = id
	return slide, nil
}

func (s *SiteService) UpdateSlide(ctx context.Context, slide models.CarouselImage) error {
	const op = "service.SiteService.UpdateSlide"

	if err := s.carousel.UpdateSlide(ctx, slide); err != nil {
		s.log.Error("failed to update slide", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteSlide removes the slide row and then tries to remove the stored
// image file; a failed file removal is logged and does not undo the delete.
func (s *SiteService) DeleteSlide(ctx context.Context, slideID uuid.UUID) error {
	const op = "service.SiteService.DeleteSlide"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slide_id", slideID.String()),
	)

	slides, err := s.carousel.GetSlides(ctx, false)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var image string
	for _, slide := range slides {
		if slide.ID == slideID {
			image = slide.Image
			break
		}
	}

	if err := s.carousel.DeleteSlide(ctx, slideID); err != nil {
		log.Error("failed to delete slide", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if image != "" {
		if err := s.fileStorage.Delete(ctx, image); err != nil {
			log.Warn("failed to delete slide image", slog.String("url", image), sl.Err(err))
		}
	}

	return nil
}

func (s *SiteService) GetSlides(ctx context.Context, activeOnly bool) ([]models.CarouselImage, error) {
	const op = "service.SiteService.GetSlides"

	slides, err := s.carousel.GetSlides(ctx, activeOnly)
	if err != nil {
		s.log.Error("failed to get slides", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if slides == nil {
		slides = []models.CarouselImage{}
	}

	return slides, nil
}

func (s *SiteService) CreateScript(ctx context.Context, script models.CustomScript) (models.CustomScript, error) {
	const op = "service.SiteService.CreateScript"

	id, err := s.scripts.SaveScript(ctx, script)
	if err != nil {
		s.log.Error("failed to save script", slog.String("op", op), sl.Err(err))
		return models.CustomScript{}, fmt.Errorf("%s: %w", op, err)
	}

	script.ID = id
	return script, nil
}

func (s *SiteService) UpdateScript(ctx context.Context, script models.CustomScript) error {
	const op = "service.SiteService.UpdateScript"

	if err := s.scripts.UpdateScript(ctx, script); err != nil {
		s.log.Error("failed to update script", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *SiteService) DeleteScript(ctx context.Context, scriptID uuid.UUID) error {
	const op = "service.SiteService.DeleteScript"

	if err := s.scripts.DeleteScript(ctx, scriptID); err != nil {
		s.log.Error("failed to delete script", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// GetScripts returns active scripts for the public site, optionally narrowed
// to one injection position. The admin listing passes activeOnly=false and
// position "".
func (s *SiteService) GetScripts(ctx context.Context, activeOnly bool, position models.ScriptPosition) ([]models.CustomScript, error) {
	const op = "service.SiteService.GetScripts"

	scripts, err := s.scripts.GetScripts(ctx, activeOnly)
	if err != nil {
		s.log.Error("failed to get scripts", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if position != "" {
		filtered := scripts[:0]
		for _, script := range scripts {
			if script.Position == position {
				filtered = append(filtered, script)
			}
		}
		scripts = filtered
	}

	if scripts == nil {
		scripts = []models.CustomScript{}
	}

	return scripts, nil
}

// GetSettings returns the settings row, creating the default one on first
// read so the storefront always has something to render.
func (s *SiteService) GetSettings(ctx context.Context) (models.SiteSettings, error) {
	const op = "service.SiteService.GetSettings"

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSettingsNotFound) {
			return s.settings.UpsertSettings(ctx, defaultSettings())
		}
		s.log.Error("failed to get settings", slog.String("op", op), sl.Err(err))
		return models.SiteSettings{}, fmt.Errorf("%s: %w", op, err)
	}

	return settings, nil
}

func (s *SiteService) UpdateSettings(ctx context.Context, settings models.SiteSettings) (models.SiteSettings, error) {
	const op = "service.SiteService.UpdateSettings"

	saved, err := s.settings.UpsertSettings(ctx, settings)
	if err != nil {
		s.log.Error("failed to update settings", slog.String("op", op), sl.Err(err))
		return models.SiteSettings{}, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

func defaultSettings() models.SiteSettings {
	return models.SiteSettings{
		WhatsappNumber: "",
		CompanyName:    "Premium Motors",
	}
}
