package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/dumovie/dumovie/internal/auth"
	"github.com/dumovie/dumovie/internal/catalog"
	"github.com/dumovie/dumovie/internal/config"
	"github.com/dumovie/dumovie/internal/middleware"
	"github.com/dumovie/dumovie/internal/notification"
	"github.com/dumovie/dumovie/internal/otp"
	"github.com/dumovie/dumovie/internal/preference"
	"github.com/dumovie/dumovie/internal/user"
	"github.com/dumovie/dumovie/internal/watchlist"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))

	// Health
	RegisterHealthRoutes(app, d)

	// Stores
	var userRepo user.Repository
	if d.DB != nil {
		userRepo = user.NewPostgresRepository(d.DB)
	} else {
		userRepo = user.NewMemoryRepository()
	}

	var otpStore otp.Store
	if d.Cache != nil {
		otpStore = otp.NewRedisStore(d.Cache, d.Cfg.OTPTTL)
	} else {
		otpStore = otp.NewMemoryStore(d.Cfg.OTPTTL)
	}

	var watchRepo watchlist.Repository
	if d.DB != nil {
		watchRepo = watchlist.NewPostgresRepository(d.DB)
	} else {
		watchRepo = watchlist.NewMemoryRepository()
	}

	var prefRepo preference.Repository
	if d.DB != nil {
		prefRepo = preference.NewPostgresRepository(d.DB)
	} else {
		prefRepo = preference.NewMemoryRepository()
	}

	// External collaborators
	var notifier notification.Notifier
	if d.Cfg.SMTPHost != "" {
		notifier = notification.NewSMTPNotifier(d.Cfg.SMTPHost, d.Cfg.SMTPPort, d.Cfg.SMTPUser, d.Cfg.SMTPPass)
	} else {
		notifier = notification.NewLoggerNotifier(d.Logger)
	}

	var catalogClient catalog.Client
	if d.Cfg.TMDBToken != "" {
		catalogClient = catalog.NewHTTPClient(d.Cfg.TMDBBaseURL, d.Cfg.TMDBToken)
	} else {
		catalogClient = catalog.StaticClient{}
	}

	// Services and handlers
	catalogSvc := catalog.NewService(catalogClient, d.Cfg.ImageBaseURL)
	authSvc := auth.NewService(d.Cfg, userRepo, otpStore, notifier, d.Logger)
	watchSvc := watchlist.NewService(watchRepo, catalogSvc)
	prefSvc := preference.NewService(prefRepo)

	authHandler := auth.NewHandler(authSvc)
	catalogHandler := catalog.NewHandler(catalogSvc)
	watchHandler := watchlist.NewHandler(watchSvc)
	prefHandler := preference.NewHandler(prefSvc)

	app.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	// Public routes
	rateLimiter := middleware.AttemptRateLimit(d.Cache, 5)
	RegisterAuthRoutes(app, authHandler, rateLimiter)
	RegisterMovieRoutes(app, catalogHandler)

	// Protected routes
	jwtmw := middleware.JWTAuth(d.Cfg)
	RegisterWatchlistRoutes(app, watchHandler, jwtmw)
	RegisterPreferenceRoutes(app, prefHandler, jwtmw)

	return nil
}
