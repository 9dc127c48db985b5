package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	appControllers "github.com/yigit/schoolportal/internal/app/controllers"
	appMigrations "github.com/yigit/schoolportal/internal/app/migrations"
	appRepos "github.com/yigit/schoolportal/internal/app/repositories"
	appRoutes "github.com/yigit/schoolportal/internal/app/routes"
	appServices "github.com/yigit/schoolportal/internal/app/services"
	"github.com/yigit/schoolportal/internal/config"
	"github.com/yigit/schoolportal/internal/db"
	appMiddleware "github.com/yigit/schoolportal/internal/middleware"
	"github.com/yigit/schoolportal/internal/pkg/filestorage"
	"github.com/yigit/schoolportal/internal/pkg/helpers"
	"github.com/yigit/schoolportal/internal/pkg/logger"
	"github.com/yigit/schoolportal/internal/pkg/metrics"
	"github.com/yigit/schoolportal/internal/pkg/session"
	"github.com/yigit/schoolportal/internal/pkg/validation"
	"github.com/yigit/schoolportal/internal/seed"
	"github.com/yigit/schoolportal/internal/web"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	FileStorage *filestorage.LocalStorage
	Metrics     *metrics.Metrics
	Templates   *template.Template

	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers

	Logger zerolog.Logger
}

// Database is the open store behind the repositories: a pgx pool or a gorm SQLite handle
type Database struct {
	Pool  *pgxpool.Pool
	Gorm  *gorm.DB
	Repos *appRepos.Repositories
}

// Close releases the store
func (d *Database) Close() error {
	if d.Pool != nil {
		d.Pool.Close()
	}
	if d.Gorm != nil {
		sqlDB, err := d.Gorm.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the configured store, applies the schema and seeds demo data if enabled.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*Database, error) {
	database := &Database{}

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		lgr.Info().Str("host", cfg.Database.Host).Msg("Establishing Postgres connection...")
		pool, err := db.NewPostgresPool(cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, err
		}
		database.Pool = pool

		lgr.Info().Str("dir", cfg.Database.MigrationsDir).Msg("Running database migrations...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		migrator := appMigrations.NewMigrator(pool, logger.WithComponent(lgr, "migrator"))
		if err := migrator.MigrateFromDirectory(ctx, cfg.Database.MigrationsDir); err != nil {
			pool.Close()
			lgr.Error().Err(err).Msg("Database migration error")
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations successfully applied.")
		database.Repos = appRepos.NewRepositories(pool)

	case config.DriverSQLite:
		lgr.Info().Str("path", cfg.Database.SQLitePath).Msg("Opening SQLite database...")
		gormDB, err := db.NewSQLiteDB(cfg.Database.SQLitePath)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to open database")
			return nil, err
		}
		database.Gorm = gormDB
		database.Repos = appRepos.NewGormRepositories(gormDB)

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	if cfg.Seed.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := seed.CreateDefaultData(ctx, database.Repos, cfg.Auth.BcryptCost, logger.WithComponent(lgr, "seed")); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes file storage, services, and controllers over the repositories.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Repos: repos, Logger: lgr}

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.UploadDir, cfg.Storage.PreserveNames)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Templates, err = web.LoadTemplates()
	if err != nil {
		return nil, err
	}
	about, err := web.AboutHTML()
	if err != nil {
		return nil, err
	}

	if err := validation.RegisterRules(); err != nil {
		return nil, fmt.Errorf("failed to register validation rules: %w", err)
	}

	deps.Metrics = metrics.New()
	deps.Services = appServices.NewServices(repos, deps.FileStorage, cfg.Auth.BcryptCost, lgr)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Services.AuthService, logger.WithComponent(lgr, "auth_middleware"))

	deps.Controllers = appRoutes.Controllers{
		Auth:   appControllers.NewAuthController(deps.Services.AuthService, deps.Metrics, logger.WithComponent(lgr, "auth_controller")),
		Page:   appControllers.NewPageController(about),
		Event:  appControllers.NewEventController(deps.Services.EventService),
		File:   appControllers.NewFileController(deps.Services.FileService, deps.Metrics, logger.WithComponent(lgr, "file_controller")),
		User:   appControllers.NewUserController(deps.Services.UserService),
		Health: appControllers.NewHealthController(repos, logger.WithComponent(lgr, "health_controller")),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	lgr.Info().Str("ginMode", gin.Mode()).Msg("Gin mode set")

	sessionMiddleware, err := session.Middleware(session.Options{
		Secret:     cfg.Session.Secret,
		CookieName: cfg.Session.CookieName,
		MaxAge:     helpers.ParseDuration(cfg.Session.MaxAge, 7*24*time.Hour),
		Secure:     cfg.Session.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up sessions: %w", err)
	}

	router := gin.New()
	router.Use(
		appMiddleware.Recovery(lgr),
		appMiddleware.RequestLogger(lgr),
		deps.Metrics.Middleware(),
		sessionMiddleware,
	)
	router.SetHTMLTemplate(deps.Templates)

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.Metrics)

	return router, nil
}

// ErrNoDatabase is returned when a Database has no repositories
var ErrNoDatabase = errors.New("database is not initialized")

// NewApp builds the router over an already opened database
func NewApp(cfg *config.Config, database *Database, lgr zerolog.Logger) (*gin.Engine, *Dependencies, error) {
	if database == nil || database.Repos == nil {
		return nil, nil, ErrNoDatabase
	}

	deps, err := BuildDependencies(cfg, database.Repos, lgr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	router, err := SetupRouter(cfg, deps, lgr)
	if err != nil {
		return nil, nil, err
	}
	return router, deps, nil
}
