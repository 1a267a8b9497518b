package http

import (
	"net/http"

	"premium_motors/internal/domain/models"
	"premium_motors/internal/lib/logger/sl"
	exportservice "premium_motors/internal/services/export_service"
	"premium_motors/internal/transport/http/dto"
	"premium_motors/internal/transport/http/dto/response"

	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// GetCatalog is the public storefront listing: AVAILABLE cars only, filters
// ANDed, paged unless showAll is set.
func (r *Routers) GetCatalog(c echo.Context) error {
	const op = "http.routers.GetCatalog"

	log := r.log.With(
		slog.String("op", op),
	)

	var query dto.CatalogQuery
	if err := c.Bind(&query); err != nil {
		log.Warn("invalid catalog query", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	catalog, err := r.CatalogService.GetCatalog(
		c.Request().Context(),
		query.ToFilter(),
		query.Page,
		query.Limit,
		query.ShowAll,
	)
	if err != nil {
		log.Error("failed to get catalog", sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, catalog)
}

func (r *Routers) GetBrands(c echo.Context) error {
	const op = "http.routers.GetBrands"

	brands, err := r.CatalogService.GetBrands(c.Request().Context())
	if err != nil {
		r.log.Error("failed to get brands", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string][]string{"brands": brands})
}

func (r *Routers) GetCar(c echo.Context) error {
	const op = "http.routers.GetCar"

	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_id", "invalid car ID format"))
	}

	car, err := r.CarService.GetCarByID(c.Request().Context(), carID)
	if err != nil {
		r.log.Warn("car not found", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, car)
}

// GetAllCars is the admin inventory listing, sold stock included.
func (r *Routers) GetAllCars(c echo.Context) error {
	const op = "http.routers.GetAllCars"

	cars, err := r.CarService.GetAllCars(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list cars", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string][]models.Car{"cars": cars})
}

func (r *Routers) CreateCar(c echo.Context) error {
	const op = "http.routers.CreateCar"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateCarRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("invalid request data", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	car, err := r.CarService.CreateCar(c.Request().Context(), req.ToDomain())
	if err != nil {
		log.Error("failed to create car", sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, car)
}

func (r *Routers) UpdateCar(c echo.Context) error {
	const op = "http.routers.UpdateCar"

	log := r.log.With(
		slog.String("op", op),
	)

	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_id", "invalid car ID format"))
	}

	var req dto.UpdateCarRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("invalid request data", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	car, err := r.CarService.UpdateCar(c.Request().Context(), req.ToDomain(carID))
	if err != nil {
		log.Error("failed to update car", sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, car)
}

func (r *Routers) UpdateCarStatus(c echo.Context) error {
	const op = "http.routers.UpdateCarStatus"

	log := r.log.With(
		slog.String("op", op),
	)

	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_id", "invalid car ID format"))
	}

	var req dto.UpdateCarStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	if err := r.CarService.UpdateStatus(c.Request().Context(), carID, models.CarStatus(req.Status)); err != nil {
		log.Error("failed to update status", sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(map[string]string{"status": req.Status}))
}

// UpdateCarImages reorders the image list; the first URL becomes the cover.
func (r *Routers) UpdateCarImages(c echo.Context) error {
	const op = "http.routers.UpdateCarImages"

	log := r.log.With(
		slog.String("op", op),
	)

	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_id", "invalid car ID format"))
	}

	var req dto.UpdateCarImagesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	car, err := r.CarService.UpdateImages(c.Request().Context(), carID, req.Images)
	if err != nil {
		log.Error("failed to update images", sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, car)
}

func (r *Routers) GetCarImages(c echo.Context) error {
	const op = "http.routers.GetCarImages"

	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_id", "invalid car ID format"))
	}

	car, err := r.CarService.GetCarByID(c.Request().Context(), carID)
	if err != nil {
		r.log.Warn("car not found", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string][]string{"images": car.Images})
}

func (r *Routers) DeleteCar(c echo.Context) error {
	const op = "http.routers.DeleteCar"

	log := r.log.With(
		slog.String("op", op),
	)

	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_id", "invalid car ID format"))
	}

	if err := r.CarService.DeleteCar(c.Request().Context(), carID); err != nil {
		log.Error("failed to delete car", sl.Err(err))
		return r.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SearchPlate pre-fills the admin car form from a license plate.
func (r *Routers) SearchPlate(c echo.Context) error {
	const op = "http.routers.SearchPlate"

	log := r.log.With(
		slog.String("op", op),
	)

	plate := c.QueryParam("plate")
	if plate == "" {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_plate", "plate query parameter is required"))
	}

	info, err := r.PlateService.Lookup(c.Request().Context(), plate)
	if err != nil {
		log.Warn("plate lookup failed", sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, info)
}

// ExportCars streams the stock spreadsheet.
func (r *Routers) ExportCars(c echo.Context) error {
	const op = "http.routers.ExportCars"

	log := r.log.With(
		slog.String("op", op),
	)

	consigned := exportservice.ParseConsignedFilter(c.QueryParam("consignado"))

	content, filename, err := r.ExportService.ExportCars(c.Request().Context(), consigned)
	if err != nil {
		log.Error("failed to export cars", sl.Err(err))
		return r.respondError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

// ExportCarsPDF streams the printable stock listing.
func (r *Routers) ExportCarsPDF(c echo.Context) error {
	const op = "http.routers.ExportCarsPDF"

	log := r.log.With(
		slog.String("op", op),
	)

	consigned := exportservice.ParseConsignedFilter(c.QueryParam("consignado"))

	content, filename, err := r.ExportService.ExportCarsPDF(c.Request().Context(), consigned)
	if err != nil {
		log.Error("failed to export cars", sl.Err(err))
		return r.respondError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "application/pdf", content)
}

func (r *Routers) Upload(c echo.Context) error {
	const op = "http.routers.Upload"

	log := r.log.With(
		slog.String("op", op),
	)

	file, err := c.FormFile("file")
	if err != nil {
		log.Warn("empty file in request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("file_required", "file is required"))
	}

	uploaded, err := r.MediaService.Upload(c.Request().Context(), file)
	if err != nil {
		log.Error("upload failed", sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, uploaded)
}

// CreateLead is the public enquiry form endpoint.
func (r *Routers) CreateLead(c echo.Context) error {
	const op = "http.routers.CreateLead"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	lead, err := r.LeadService.CreateLead(c.Request().Context(), req)
	if err != nil {
		log.Warn("failed to create lead", sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, lead)
}

func (r *Routers) GetLeads(c echo.Context) error {
	const op = "http.routers.GetLeads"

	leads, err := r.LeadService.GetLeads(c.Request().Context())
	if err != nil {
		r.log.Error("failed to get leads", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string][]models.Lead{"leads": leads})
}

func (r *Routers) DeleteLead(c echo.Context) error {
	const op = "http.routers.DeleteLead"

	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_id", "invalid lead ID format"))
	}

	if err := r.LeadService.DeleteLead(c.Request().Context(), leadID); err != nil {
		r.log.Error("failed to delete lead", slog.String("op", op), sl.Err(err))
		return r.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
