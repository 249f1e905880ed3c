package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/campushub/studentms/internal/app/controllers"
	appMigrations "github.com/campushub/studentms/internal/app/migrations"
	appRepos "github.com/campushub/studentms/internal/app/repositories"
	appRoutes "github.com/campushub/studentms/internal/app/routes"
	appServices "github.com/campushub/studentms/internal/app/services"
	"github.com/campushub/studentms/internal/config"
	"github.com/campushub/studentms/internal/db"
	appMiddleware "github.com/campushub/studentms/internal/middleware"
	pkgAuth "github.com/campushub/studentms/internal/pkg/auth"
	"github.com/campushub/studentms/internal/pkg/export"
	"github.com/campushub/studentms/internal/pkg/logger"
	"github.com/campushub/studentms/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService       // Interface type
	UserService       appServices.UserService       // Interface type
	DepartmentService appServices.DepartmentService // Interface type
	CourseService     appServices.CourseService     // Interface type
	ReportService     appServices.ReportService     // Interface type

	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	DepartmentController *appControllers.DepartmentController
	CourseController     *appControllers.CourseController
	ReportController     *appControllers.ReportController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
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
// seeds the role table.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.Roles(ctx, dbPool); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed roles")
		dbPool.Close()
		return nil, fmt.Errorf("role seeding failed: %w", err)
	}

	return dbPool, nil
}

// BuildDependencies wires repositories, services, controllers and middleware.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	repos := appRepos.NewRepositories(dbPool)

	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenTTL(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	certificates, err := export.NewCertificateGenerator(cfg.Export.CertificateDir)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare certificate directory: %w", err)
	}

	roster, err := export.NewRosterExporter(cfg.Export.ReportDir)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare report directory: %w", err)
	}

	authService := appServices.NewAuthService(repos.UserRepository, jwtService, cfg.Admin.RegistrationSecret, lgr)
	userService := appServices.NewUserService(repos.UserRepository, lgr)
	departmentService := appServices.NewDepartmentService(repos.DepartmentRepository, repos.UserRepository, lgr)
	courseService := appServices.NewCourseService(repos.CourseRepository, repos.DepartmentRepository, repos.UserRepository, repos.EnrollmentRepository, lgr)
	reportService := appServices.NewReportService(repos.UserRepository, repos.CourseRepository, repos.EnrollmentRepository, certificates, roster, lgr)

	deps := &Dependencies{
		AuthService:       authService,
		UserService:       userService,
		DepartmentService: departmentService,
		CourseService:     courseService,
		ReportService:     reportService,

		AuthController:       appControllers.NewAuthController(authService),
		UserController:       appControllers.NewUserController(userService),
		DepartmentController: appControllers.NewDepartmentController(departmentService),
		CourseController:     appControllers.NewCourseController(courseService),
		ReportController:     appControllers.NewReportController(reportService),

		AuthMiddleware: appMiddleware.NewAuthMiddleware(jwtService, repos.UserRepository),
		Repos:          repos,
		JWTService:     jwtService,
		Logger:         lgr,
	}

	return deps, nil
}

// SetupRouter creates the gin engine and registers all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.UserController,
		deps.DepartmentController,
		deps.CourseController,
		deps.ReportController,
		deps.AuthMiddleware,
	)

	return router
}
