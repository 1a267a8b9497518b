package http

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"premium_motors/internal/domain/models"
	"premium_motors/internal/lib/logger/sl"
	"premium_motors/internal/storage"
	"premium_motors/internal/transport/http/dto"
	"premium_motors/internal/transport/http/dto/request"
	"premium_motors/internal/transport/http/dto/response"

	plateservice "premium_motors/internal/services/plate_service"
	userservice "premium_motors/internal/services/user_service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CatalogService interface {
	GetCatalog(ctx context.Context, filter models.CatalogFilter, page, limit int, showAll bool) (*dto.CatalogResponse, error)
	GetBrands(ctx context.Context) ([]string, error)
}

type CarService interface {
	CreateCar(ctx context.Context, car models.Car) (models.Car, error)
	UpdateCar(ctx context.Context, car models.Car) (models.Car, error)
	UpdateStatus(ctx context.Context, carID uuid.UUID, status models.CarStatus) error
	UpdateImages(ctx context.Context, carID uuid.UUID, images []string) (models.Car, error)
	DeleteCar(ctx context.Context, carID uuid.UUID) error
	GetCarByID(ctx context.Context, carID uuid.UUID) (models.Car, error)
	GetAllCars(ctx context.Context) ([]models.Car, error)
}

type LeadService interface {
	CreateLead(ctx context.Context, req dto.CreateLeadRequest) (models.Lead, error)
	GetLeads(ctx context.Context) ([]models.Lead, error)
	DeleteLead(ctx context.Context, leadID uuid.UUID) error
}

type ExportService interface {
	ExportCars(ctx context.Context, consigned *bool) ([]byte, string, error)
	ExportCarsPDF(ctx context.Context, consigned *bool) ([]byte, string, error)
}

type PlateService interface {
	Lookup(ctx context.Context, plate string) (dto.PlateInfo, error)
}

type PostService interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	UpdatePost(ctx context.Context, post models.Post) (models.Post, error)
	DeletePost(ctx context.Context, postID uuid.UUID) error
	GetPostByID(ctx context.Context, postID uuid.UUID) (models.Post, error)
	GetPublishedPostBySlug(ctx context.Context, slug string) (models.Post, error)
	GetPosts(ctx context.Context, publishedOnly bool, page, perPage int) (*dto.PostListResponse, error)
}

type UserService interface {
	Login(ctx context.Context, email, password string) (models.User, error)
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (models.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, req dto.UpdateUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, userID, requesterID uuid.UUID) error
	GetUsers(ctx context.Context) ([]dto.UserResponse, error)
}

type TokenService interface {
	GenerateTokens(ctx context.Context, user models.User) (*models.TokenPair, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	Logout(ctx context.Context, userID uuid.UUID) error
}

type SiteService interface {
	CreateSlide(ctx context.Context, slide models.CarouselImage) (models.CarouselImage, error)
	UpdateSlide(ctx context.Context, slide models.CarouselImage) error
	DeleteSlide(ctx context.Context, slideID uuid.UUID) error
	GetSlides(ctx context.Context, activeOnly bool) ([]models.CarouselImage, error)
	CreateScript(ctx context.Context, script models.CustomScript) (models.CustomScript, error)
	UpdateScript(ctx context.Context, script models.CustomScript) error
	DeleteScript(ctx context.Context, scriptID uuid.UUID) error
	GetScripts(ctx context.Context, activeOnly bool, position models.ScriptPosition) ([]models.CustomScript, error)
	GetSettings(ctx context.Context) (models.SiteSettings, error)
	UpdateSettings(ctx context.Context, settings models.SiteSettings) (models.SiteSettings, error)
}

type MediaService interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (*dto.UploadResponse, error)
}

type Routers struct {
	log            *slog.Logger
	CatalogService CatalogService
	CarService     CarService
	LeadService    LeadService
	ExportService  ExportService
	PlateService   PlateService
	PostService    PostService
	UserService    UserService
	TokenService   TokenService
	SiteService    SiteService
	MediaService   MediaService
}

func NewRouter(
	log *slog.Logger,
	catalogService CatalogService,
	carService CarService,
	leadService LeadService,
	exportService ExportService,
	plateService PlateService,
	postService PostService,
	userService UserService,
	tokenService TokenService,
	siteService SiteService,
	mediaService MediaService,
) *Routers {
	return &Routers{
		log:            log,
		CatalogService: catalogService,
		CarService:     carService,
		LeadService:    leadService,
		ExportService:  exportService,
		PlateService:   plateService,
		PostService:    postService,
		UserService:    userService,
		TokenService:   tokenService,
		SiteService:    siteService,
		MediaService:   mediaService,
	}
}

// respondError maps domain and storage errors onto HTTP responses in one
// place so handlers stay small.
func (r *Routers) respondError(c echo.Context, err error) error {
	var carVal *models.CarValidationError
	var leadVal *models.LeadValidationError

	switch {
	case errors.As(err, &carVal):
		return c.JSON(http.StatusBadRequest, response.ValidationFailed(carVal.Errors))
	case errors.As(err, &leadVal):
		return c.JSON(http.StatusBadRequest, response.ValidationFailed(leadVal.Errors))
	case errors.Is(err, storage.ErrCarNotFound):
		return c.JSON(http.StatusNotFound, response.ErrCarNotFound)
	case errors.Is(err, storage.ErrLeadNotFound):
		return c.JSON(http.StatusNotFound, response.ErrLeadNotFound)
	case errors.Is(err, storage.ErrPostNotFound):
		return c.JSON(http.StatusNotFound, response.ErrPostNotFound)
	case errors.Is(err, storage.ErrSlideNotFound),
		errors.Is(err, storage.ErrScriptNotFound),
		errors.Is(err, storage.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, response.ErrorResponseWithDetails("not_found", err.Error()))
	case errors.Is(err, storage.ErrSlugExists):
		return c.JSON(http.StatusConflict, response.ErrSlugAlreadyExists)
	case errors.Is(err, storage.ErrUserExists):
		return c.JSON(http.StatusConflict, response.ErrUserAlreadyExists)
	case errors.Is(err, storage.ErrFileTooLarge):
		return c.JSON(http.StatusRequestEntityTooLarge, response.ErrorResponseWithDetails("file_too_large", "File exceeds the size limit"))
	case errors.Is(err, storage.ErrInvalidFileType):
		return c.JSON(http.StatusUnsupportedMediaType, response.ErrorResponseWithDetails("invalid_file_type", "Only JPEG, PNG and WebP images are accepted"))
	case errors.Is(err, userservice.ErrSelfDelete):
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("self_delete", "Cannot delete own account"))
	case errors.Is(err, plateservice.ErrInvalidPlate):
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_plate", "Plate format is invalid"))
	case errors.Is(err, plateservice.ErrPlateNotFound):
		return c.JSON(http.StatusNotFound, response.ErrorResponseWithDetails("plate_not_found", "No vehicle found for this plate"))
	case errors.Is(err, plateservice.ErrLookupFailed):
		return c.JSON(http.StatusBadGateway, response.ErrorResponseWithDetails("plate_lookup_failed", "Vehicle data provider unavailable"))
	default:
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}
}

// Login issues a token pair for back-office users.
func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"

	log := r.log.With(
		slog.String("op", op),
	)

	var req request.LoginRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid login request", slog.String("email", req.Email))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	user, err := r.UserService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		log.Warn("authentication failed", sl.Err(err))
		return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
	}

	tokens, err := r.TokenService.GenerateTokens(c.Request().Context(), user)
	if err != nil {
		log.Error("failed to generate tokens", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.LoginResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         dto.NewUserResponse(user),
	}))
}

func (r *Routers) Refresh(c echo.Context) error {
	const op = "http.routers.Refresh"

	log := r.log.With(
		slog.String("op", op),
	)

	var req request.RefreshRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	tokens, err := r.TokenService.RefreshTokens(c.Request().Context(), req.RefreshToken)
	if err != nil {
		log.Warn("refresh rejected", sl.Err(err))
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid refresh token")
	}

	return c.JSON(http.StatusOK, tokens)
}

func (r *Routers) Logout(c echo.Context) error {
	const op = "http.routers.Logout"

	userID, err := authenticatedUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
	}

	if err := r.TokenService.Logout(c.Request().Context(), userID); err != nil {
		r.log.Error("failed to drop refresh tokens", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.NoContent(http.StatusNoContent)
}
