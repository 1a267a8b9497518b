package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"premium_motors/internal/domain/models"
	custommiddleware "premium_motors/internal/middleware"
	httprouters "premium_motors/internal/transport/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Server struct {
	log        *slog.Logger
	e          *echo.Echo
	routers    *httprouters.Routers
	host       string
	port       string
	token      string
	uploadsDir string
}

func New(log *slog.Logger, token, host, port, uploadsDir string, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(custommiddleware.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	return &Server{
		log:        log,
		e:          e,
		routers:    routers,
		host:       host,
		port:       port,
		token:      token,
		uploadsDir: uploadsDir,
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf(":%s", s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", op, "http server")

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) BuildRouters() {
	jwtAuth := echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(s.token),
	})
	staff := custommiddleware.RequireRole(models.RoleAdmin, models.RoleOperator)
	adminOnly := custommiddleware.RequireRole(models.RoleAdmin)

	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Local backend serves uploads straight from disk; with object storage
	// the public URL points elsewhere and this stays unused.
	if s.uploadsDir != "" {
		s.e.Static("/uploads", s.uploadsDir)
	}

	api := s.e.Group("/api/v1")
	{
		api.POST("/login", s.routers.Login)
		api.POST("/refresh", s.routers.Refresh)
		api.POST("/logout", s.routers.Logout, jwtAuth)

		// Public storefront.
		api.GET("/cars/catalog", s.routers.GetCatalog)
		api.GET("/cars/brands", s.routers.GetBrands)
		api.GET("/cars/:id", s.routers.GetCar)
		api.POST("/leads", s.routers.CreateLead)
		api.GET("/posts", s.routers.GetPublishedPosts)
		api.GET("/posts/:slug", s.routers.GetPostBySlug)
		api.GET("/carousel", s.routers.GetCarousel)
		api.GET("/scripts", s.routers.GetActiveScripts)
		api.GET("/settings", s.routers.GetSettings)

		// Back office: inventory.
		api.GET("/cars", s.routers.GetAllCars, jwtAuth, staff)
		api.POST("/cars", s.routers.CreateCar, jwtAuth, staff)
		api.GET("/cars/search-plate", s.routers.SearchPlate, jwtAuth, staff)
		api.PUT("/cars/:id", s.routers.UpdateCar, jwtAuth, staff)
		api.PATCH("/cars/:id/status", s.routers.UpdateCarStatus, jwtAuth, staff)
		api.DELETE("/cars/:id", s.routers.DeleteCar, jwtAuth, adminOnly)
		api.PUT("/cars/:id/images", s.routers.UpdateCarImages, jwtAuth, staff)
		api.GET("/cars/:id/images", s.routers.GetCarImages, jwtAuth, staff)

		api.GET("/leads", s.routers.GetLeads, jwtAuth, staff)
		api.DELETE("/leads/:id", s.routers.DeleteLead, jwtAuth, staff)

		api.GET("/export/cars", s.routers.ExportCars, jwtAuth, staff)
		api.GET("/export/cars/pdf", s.routers.ExportCarsPDF, jwtAuth, staff)
		api.POST("/upload", s.routers.Upload, jwtAuth, staff)

		// Back office: content.
		api.GET("/admin/posts", s.routers.ListPosts, jwtAuth, staff)
		api.POST("/posts", s.routers.CreatePost, jwtAuth, staff)
		api.PUT("/posts/:id", s.routers.UpdatePost, jwtAuth, staff)
		api.DELETE("/posts/:id", s.routers.DeletePost, jwtAuth, staff)

		api.GET("/admin/carousel", s.routers.ListCarousel, jwtAuth, staff)
		api.POST("/carousel", s.routers.CreateSlide, jwtAuth, staff)
		api.PUT("/carousel/:id", s.routers.UpdateSlide, jwtAuth, staff)
		api.DELETE("/carousel/:id", s.routers.DeleteSlide, jwtAuth, staff)

		api.GET("/admin/scripts", s.routers.ListScripts, jwtAuth, adminOnly)
		api.POST("/scripts", s.routers.CreateScript, jwtAuth, adminOnly)
		api.PUT("/scripts/:id", s.routers.UpdateScript, jwtAuth, adminOnly)
		api.DELETE("/scripts/:id", s.routers.DeleteScript, jwtAuth, adminOnly)

		api.PUT("/settings", s.routers.UpdateSettings, jwtAuth, adminOnly)

		api.GET("/users", s.routers.GetUsers, jwtAuth, adminOnly)
		api.POST("/register", s.routers.Register, jwtAuth, adminOnly)
		api.PUT("/users/:id", s.routers.UpdateUser, jwtAuth, adminOnly)
		api.DELETE("/users/:id", s.routers.DeleteUser, jwtAuth, adminOnly)
	}
}
