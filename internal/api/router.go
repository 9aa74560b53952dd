package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Adi-cmrec/lenslink/internal/api/handler"
	"github.com/Adi-cmrec/lenslink/internal/api/middleware"
	"github.com/Adi-cmrec/lenslink/internal/core/service"
	"github.com/Adi-cmrec/lenslink/internal/infrastructure/config"
	lensmongo "github.com/Adi-cmrec/lenslink/internal/infrastructure/db/mongo"
	lensredis "github.com/Adi-cmrec/lenslink/internal/infrastructure/db/redis"
	"github.com/Adi-cmrec/lenslink/internal/infrastructure/http/handlers"
	"github.com/Adi-cmrec/lenslink/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, store *storage.LocalStore, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("lenslink"))

	// --- Dependencies ---
	userRepo := lensmongo.NewUserRepository(db)
	profileRepo := lensmongo.NewProfileRepository(db)
	listingCache := lensredis.NewListingCache(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	profileService := service.NewProfileService(profileRepo, userRepo, store, listingCache, log)
	discoveryService := service.NewDiscoveryService(profileRepo, userRepo, listingCache, log)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	discoveryHandler := handler.NewDiscoveryHandler(discoveryService)
	authRequired := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	// --- Profile routes (token required) ---
	profile := e.Group("/profile", authRequired)
	profile.POST("", profileHandler.Create)
	profile.PUT("", profileHandler.Update)
	profile.GET("/me", profileHandler.GetMine)
	profile.POST("/upload", profileHandler.Upload)

	// --- Discovery routes (public) ---
	e.GET("/photographers", discoveryHandler.List)
	e.GET("/photographer/:id", discoveryHandler.GetByID)

	// --- Uploaded photos ---
	e.Static("/uploads", store.Dir())

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
