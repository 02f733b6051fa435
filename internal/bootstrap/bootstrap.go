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
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/kerem/schoolhub/docs" // Import generated swagger docs
	appControllers "github.com/kerem/schoolhub/internal/app/controllers"
	appMigrations "github.com/kerem/schoolhub/internal/app/migrations"
	appRepos "github.com/kerem/schoolhub/internal/app/repositories"
	appRoutes "github.com/kerem/schoolhub/internal/app/routes"
	appServices "github.com/kerem/schoolhub/internal/app/services"
	"github.com/kerem/schoolhub/internal/config"
	"github.com/kerem/schoolhub/internal/db"
	appMiddleware "github.com/kerem/schoolhub/internal/middleware"
	"github.com/kerem/schoolhub/internal/pkg/logger"
	appWebsocket "github.com/kerem/schoolhub/internal/pkg/websocket"
	"github.com/kerem/schoolhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService    appServices.StudentService
	TeacherService    appServices.TeacherService
	StudentController *appControllers.StudentController
	TeacherController *appControllers.TeacherController
	WSHub             *appWebsocket.Hub
	WSHandler         *appWebsocket.Handler
	Repos             *appRepos.Repositories
	Logger            zerolog.Logger
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
// seeds sample data when enabled.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

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

	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(context.Background(), dbPool, lgr, cfg.Seed); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create seed data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.TeacherService = appServices.NewTeacherService(deps.Repos.TeacherRepository)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.TeacherController = appControllers.NewTeacherController(deps.TeacherService)

	deps.WSHub = appWebsocket.NewHub(lgr)
	wsDispatcher := appWebsocket.NewDispatcher(deps.StudentService, deps.TeacherService, lgr)
	deps.WSHandler = appWebsocket.NewHandler(deps.WSHub, wsDispatcher, lgr)

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

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.TeacherController,
	)

	// WebSocket RPC endpoint
	go deps.WSHub.Run()
	router.GET("/ws", deps.WSHandler.HandleConnection)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
