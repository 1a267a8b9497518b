package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"premium_motors/internal/domain/models"
	"premium_motors/internal/lib/logger/sl"
	"premium_motors/internal/transport/http/dto"
	"premium_motors/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// GetPublishedPosts is the public blog listing; drafts never appear.
func (r *Routers) GetPublishedPosts(c echo.Context) error {
	const op = "http.routers.GetPublishedPosts"

	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))

	posts, err := r.PostService.GetPosts(c.Request().Context(), true, page, perPage)
	if err != nil {
		r.log.Error("failed to list posts", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, posts)
}

func (r *Routers) GetPostBySlug(c echo.Context) error {
	const op = "http.routers.GetPostBySlug"

	post, err := r.PostService.GetPublishedPostBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		r.log.Warn("post not found", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, post)
}

// ListPosts is the admin listing: drafts included.
func (r *Routers) ListPosts(c echo.Context) error {
	const op = "http.routers.ListPosts"

	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))

	posts, err := r.PostService.GetPosts(c.Request().Context(), false, page, perPage)
	if err != nil {
		r.log.Error("failed to list posts", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, posts)
}

func (r *Routers) CreatePost(c echo.Context) error {
	const op = "http.routers.CreatePost"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	authorID, err := authenticatedUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
	}

	post, err := r.PostService.CreatePost(c.Request().Context(), req.ToDomain(authorID))
	if err != nil {
		log.Error("failed to create post", sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, post)
}

func (r *Routers) UpdatePost(c echo.Context) error {
	const op = "http.routers.UpdatePost"

	log := r.log.With(
		slog.String("op", op),
	)

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_id", "invalid post ID format"))
	}

	var req dto.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	existing, err := r.PostService.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		return r.respondError(c, err)
	}

	post := req.ToDomain(existing.AuthorID)
	post.ID = postID

	updated, err := r.PostService.UpdatePost(c.Request().Context(), post)
	if err != nil {
		log.Error("failed to update post", sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, updated)
}

func (r *Routers) DeletePost(c echo.Context) error {
	const op = "http.routers.DeletePost"

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_id", "invalid post ID format"))
	}

	if err := r.PostService.DeletePost(c.Request().Context(), postID); err != nil {
		r.log.Error("failed to delete post", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetCarousel is the public carousel: active slides, ordered.
func (r *Routers) GetCarousel(c echo.Context) error {
	const op = "http.routers.GetCarousel"

	slides, err := r.SiteService.GetSlides(c.Request().Context(), true)
	if err != nil {
		r.log.Error("failed to get carousel", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string][]models.CarouselImage{"images": slides})
}

func (r *Routers) ListCarousel(c echo.Context) error {
	const op = "http.routers.ListCarousel"

	slides, err := r.SiteService.GetSlides(c.Request().Context(), false)
	if err != nil {
		r.log.Error("failed to list carousel", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string][]models.CarouselImage{"images": slides})
}

func (r *Routers) CreateSlide(c echo.Context) error {
	const op = "http.routers.CreateSlide"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateSlideRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	slide, err := r.SiteService.CreateSlide(c.Request().Context(), req.ToDomain())
	if err != nil {
		log.Error("failed to create slide", sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, slide)
}

func (r *Routers) UpdateSlide(c echo.Context) error {
	const op = "http.routers.UpdateSlide"

	log := r.log.With(
		slog.String("op", op),
	)

	slideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_id", "invalid slide ID format"))
	}

	var req dto.UpdateSlideRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	if err := r.SiteService.UpdateSlide(c.Request().Context(), req.ToDomain(slideID)); err != nil {
		log.Error("failed to update slide", sl.Err(err))
		return r.respondError(c, err)
	}

	return c.NoContent(http.StatusOK)
}

func (r *Routers) DeleteSlide(c echo.Context) error {
	const op = "http.routers.DeleteSlide"

	slideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_id", "invalid slide ID format"))
	}

	if err := r.SiteService.DeleteSlide(c.Request().Context(), slideID); err != nil {
		r.log.Error("failed to delete slide", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetActiveScripts is the public endpoint the storefront uses to inject
// third-party tags. Optional position filter.
func (r *Routers) GetActiveScripts(c echo.Context) error {
	const op = "http.routers.GetActiveScripts"

	position := models.ScriptPosition(c.QueryParam("position"))

	scripts, err := r.SiteService.GetScripts(c.Request().Context(), true, position)
	if err != nil {
		r.log.Error("failed to get scripts", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string][]models.CustomScript{"scripts": scripts})
}

func (r *Routers) ListScripts(c echo.Context) error {
	const op = "http.routers.ListScripts"

	scripts, err := r.SiteService.GetScripts(c.Request().Context(), false, "")
	if err != nil {
		r.log.Error("failed to list scripts", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string][]models.CustomScript{"scripts": scripts})
}

func (r *Routers) CreateScript(c echo.Context) error {
	const op = "http.routers.CreateScript"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateScriptRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	script, err := r.SiteService.CreateScript(c.Request().Context(), req.ToDomain())
	if err != nil {
		log.Error("failed to create script", sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, script)
}

func (r *Routers) UpdateScript(c echo.Context) error {
	const op = "http.routers.UpdateScript"

	log := r.log.With(
		slog.String("op", op),
	)

	scriptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_id", "invalid script ID format"))
	}

	var req dto.UpdateScriptRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	if err := r.SiteService.UpdateScript(c.Request().Context(), req.ToDomain(scriptID)); err != nil {
		log.Error("failed to update script", sl.Err(err))
		return r.respondError(c, err)
	}

	return c.NoContent(http.StatusOK)
}

func (r *Routers) DeleteScript(c echo.Context) error {
	const op = "http.routers.DeleteScript"

	scriptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_id", "invalid script ID format"))
	}

	if err := r.SiteService.DeleteScript(c.Request().Context(), scriptID); err != nil {
		r.log.Error("failed to delete script", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetSettings is public; the storefront footer and WhatsApp button read it.
func (r *Routers) GetSettings(c echo.Context) error {
	const op = "http.routers.GetSettings"

	settings, err := r.SiteService.GetSettings(c.Request().Context())
	if err != nil {
		r.log.Error("failed to get settings", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, settings)
}

func (r *Routers) UpdateSettings(c echo.Context) error {
	const op = "http.routers.UpdateSettings"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	settings, err := r.SiteService.UpdateSettings(c.Request().Context(), req.ToDomain())
	if err != nil {
		log.Error("failed to update settings", sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, settings)
}

func (r *Routers) GetUsers(c echo.Context) error {
	const op = "http.routers.GetUsers"

	users, err := r.UserService.GetUsers(c.Request().Context())
	if err != nil {
		r.log.Error("failed to get users", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string][]dto.UserResponse{"users": users})
}

func (r *Routers) Register(c echo.Context) error {
	const op = "http.routers.Register"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	user, err := r.UserService.RegisterUser(c.Request().Context(), req)
	if err != nil {
		log.Error("registration failed", sl.Err(err))
		return r.respondError(c, err)
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))

	return c.JSON(http.StatusCreated, response.SuccessResponse(dto.NewUserResponse(user)))
}

func (r *Routers) UpdateUser(c echo.Context) error {
	const op = "http.routers.UpdateUser"

	log := r.log.With(
		slog.String("op", op),
	)

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_id", "invalid user ID format"))
	}

	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	user, err := r.UserService.UpdateUser(c.Request().Context(), userID, req)
	if err != nil {
		log.Error("failed to update user", sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func (r *Routers) DeleteUser(c echo.Context) error {
	const op = "http.routers.DeleteUser"

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_id", "invalid user ID format"))
	}

	requesterID, err := authenticatedUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
	}

	if err := r.UserService.DeleteUser(c.Request().Context(), userID, requesterID); err != nil {
		r.log.Error("failed to delete user", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
