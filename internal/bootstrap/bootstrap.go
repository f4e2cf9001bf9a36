package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/kaan/examportal/internal/app/controllers"
	appMigrations "github.com/kaan/examportal/internal/app/migrations"
	appRepos "github.com/kaan/examportal/internal/app/repositories"
	appRoutes "github.com/kaan/examportal/internal/app/routes"
	appServices "github.com/kaan/examportal/internal/app/services"
	"github.com/kaan/examportal/internal/config"
	"github.com/kaan/examportal/internal/db"
	appMiddleware "github.com/kaan/examportal/internal/middleware"
	pkgAuth "github.com/kaan/examportal/internal/pkg/auth"
	"github.com/kaan/examportal/internal/pkg/filestorage"
	"github.com/kaan/examportal/internal/pkg/helpers"
	"github.com/kaan/examportal/internal/pkg/logger"
	"github.com/kaan/examportal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           appServices.AuthService
	ExamTypeService       appServices.ExamTypeService
	DepartmentService     appServices.DepartmentService
	AcademicPeriodService appServices.AcademicPeriodService
	MaterialService       appServices.MaterialService

	AuthController           *appControllers.AuthController
	AdminController          *appControllers.AdminController
	ExamTypeController       *appControllers.ExamTypeController
	DepartmentController     *appControllers.DepartmentController
	AcademicPeriodController *appControllers.AcademicPeriodController
	MaterialController       *appControllers.MaterialController
	FileController           *appControllers.FileController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	TokenService   *pkgAuth.TokenService
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// seeding is best effort; a non-empty database is not an error
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.TokenService = pkgAuth.NewTokenService(pkgAuth.TokenConfig{
		AccessSecret:  cfg.JWT.AccessSecret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		AccessExp:     helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 15*time.Minute),
		RefreshExp:    helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 168*time.Hour),
		Issuer:        cfg.JWT.Issuer,
		Audience:      cfg.JWT.Audience,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.AdminRepository,
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.TokenService,
	)
	deps.ExamTypeService = appServices.NewExamTypeService(
		deps.Repos.ExamTypeRepository,
		deps.Repos.DepartmentRepository,
		deps.Repos.AcademicPeriodRepository,
		deps.Repos.MaterialRepository,
	)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository, deps.Repos.ExamTypeRepository)
	deps.AcademicPeriodService = appServices.NewAcademicPeriodService(deps.Repos.AcademicPeriodRepository, deps.Repos.DepartmentRepository)
	deps.MaterialService = appServices.NewMaterialService(
		deps.Repos.MaterialRepository,
		deps.Repos.AcademicPeriodRepository,
		deps.Repos.DepartmentRepository,
		deps.Repos.ExamTypeRepository,
		deps.Repos.DocumentRepository,
		deps.Repos.QuestionRepository,
		deps.FileStorage,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.TokenService, deps.Repos.AdminRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.AdminController = appControllers.NewAdminController(deps.AuthService)
	deps.ExamTypeController = appControllers.NewExamTypeController(deps.ExamTypeService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.AcademicPeriodController = appControllers.NewAcademicPeriodController(deps.AcademicPeriodService)
	deps.MaterialController = appControllers.NewMaterialController(deps.MaterialService)
	deps.FileController = appControllers.NewFileController(deps.FileStorage)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// Edge guard for page-level paths; the API enforces auth itself.
	router.Use(appMiddleware.RouteGuard())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AdminController,
		deps.ExamTypeController,
		deps.DepartmentController,
		deps.AcademicPeriodController,
		deps.MaterialController,
		deps.FileController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
