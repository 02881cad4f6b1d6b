package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	handlers "folio-server/internal/adapter/handler/http"
	"folio-server/internal/config"
	"folio-server/internal/infrastructure/database"
	"folio-server/internal/middleware/auth"
	"folio-server/internal/usecase"
	"folio-server/pkg/logger"
)

type Server struct {
	config *config.Config
	logger *zap.Logger
	echo   *echo.Echo
	repos  *database.Repositories
}

// requestValidator adapts go-playground/validator to echo's Validator interface.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func NewServer(cfg *config.Config, log *zap.Logger, repos *database.Repositories) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}

	// Middleware
	e.Use(logger.NewEchoRequestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Service.ClientURLs,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
	}))

	return &Server{
		config: cfg,
		logger: log,
		echo:   e,
		repos:  repos,
	}
}

func (s *Server) Start() error {
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	// Token manager and services
	tokens := auth.NewManager(
		s.config.JWT.Secret,
		time.Duration(s.config.JWT.ExpiryHours)*time.Hour,
		s.logger,
	)
	authService := usecase.NewAuthService(s.repos.User, tokens, s.logger)
	portfolioService := usecase.NewPortfolioService(s.repos.Portfolio, s.repos.User, s.logger)
	caseStudyService := usecase.NewCaseStudyService(s.repos.CaseStudy, s.repos.Portfolio, portfolioService, s.logger)
	themeService := usecase.NewThemeService(s.repos.Theme, s.logger)
	analyticsService := usecase.NewAnalyticsService(s.repos.Analytics, s.repos.Portfolio, s.repos.CaseStudy, portfolioService, s.logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(s.logger, authService)
	portfolioHandler := handlers.NewPortfolioHandler(s.logger, portfolioService)
	caseStudyHandler := handlers.NewCaseStudyHandler(s.logger, caseStudyService)
	themeHandler := handlers.NewThemeHandler(s.logger, themeService)
	analyticsHandler := handlers.NewAnalyticsHandler(s.logger, analyticsService)

	requireAuth := tokens.Middleware()

	api := s.echo.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", authHandler.Me, requireAuth)

	// Portfolio. The fixed-path routes are registered before the public
	// /:username wildcard so "me" is never resolved as a username.
	portfolioGroup := api.Group("/portfolio")
	portfolioGroup.GET("/me", portfolioHandler.GetMine, requireAuth)
	portfolioGroup.GET("/check-username/:username", portfolioHandler.CheckUsername, requireAuth)
	portfolioGroup.PUT("/username", portfolioHandler.UpdateUsername, requireAuth)
	portfolioGroup.POST("", portfolioHandler.Save, requireAuth)
	portfolioGroup.GET("/:username", portfolioHandler.GetPublic)

	// Case studies
	caseStudyGroup := api.Group("/case-study")
	caseStudyGroup.GET("/portfolio/:username", caseStudyHandler.ListPublic)
	caseStudyGroup.GET("/me", caseStudyHandler.ListMine, requireAuth)
	caseStudyGroup.PUT("/reorder", caseStudyHandler.Reorder, requireAuth)
	caseStudyGroup.POST("", caseStudyHandler.Create, requireAuth)
	caseStudyGroup.GET("/:id", caseStudyHandler.Get, requireAuth)
	caseStudyGroup.PUT("/:id", caseStudyHandler.Update, requireAuth)
	caseStudyGroup.DELETE("/:id", caseStudyHandler.Delete, requireAuth)

	// Themes
	themeGroup := api.Group("/theme")
	themeGroup.GET("/system", themeHandler.ListSystem)
	themeGroup.POST("/custom", themeHandler.CreateCustom, requireAuth)
	themeGroup.GET("/:id", themeHandler.Get)

	// Analytics. Tracking endpoints are public: visitors are anonymous.
	analyticsGroup := api.Group("/analytics")
	analyticsGroup.POST("/track-view", analyticsHandler.TrackView)
	analyticsGroup.POST("/track-click", analyticsHandler.TrackClick)
	analyticsGroup.GET("/portfolio", analyticsHandler.GetSummary, requireAuth)
}
