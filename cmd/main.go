package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ManishJangid007/hirely-sub000/config"
	"github.com/ManishJangid007/hirely-sub000/database"
	_ "github.com/ManishJangid007/hirely-sub000/docs" // Swagger docs - auto-generated
	"github.com/ManishJangid007/hirely-sub000/internal/controller"
	"github.com/ManishJangid007/hirely-sub000/internal/logger"
	"github.com/ManishJangid007/hirely-sub000/internal/repository"
	"github.com/ManishJangid007/hirely-sub000/internal/service"
	"github.com/common-nighthawk/go-figure"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title Hirely API
// @version 1.0
// @description Candidate interview tracking with question templates, job descriptions, backup/restore and Gemini-assisted drafting.
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.url http://example.com/support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init() // Call this early
	printStartupBanner()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			func(db *database.Database) repository.Conn { return db },
			repository.NewStore,
			func(s repository.Store) repository.CandidateRepository { return s.Candidates() },
			func(s repository.Store) repository.QuestionTemplateRepository { return s.Templates() },
			func(s repository.Store) repository.PositionRepository { return s.Positions() },
			func(s repository.Store) repository.JobDescriptionRepository { return s.JobDescriptions() },
			func(s repository.Store) repository.InterviewResultRepository { return s.Results() },
			func(s repository.Store) repository.SettingsRepository { return s.Settings() },
			func(s repository.Store) repository.FlatRepository { return s.Flat() },
		),

		// Services Layer
		fx.Provide(
			service.NewBackupService,
			service.NewBackupScheduler,
			service.NewCandidateService,
			service.NewQuestionTemplateService,
			service.NewPositionService,
			service.NewJobDescriptionService,
			service.NewInterviewResultService,
			service.NewSettingsService,
			func(
				cfg *config.Config,
				settingsRepo repository.SettingsRepository,
				candidateRepo repository.CandidateRepository,
				resultRepo repository.InterviewResultRepository,
				jdRepo repository.JobDescriptionRepository,
			) service.GenerationService {
				return service.NewGenerationService(cfg, settingsRepo, candidateRepo, resultRepo, jdRepo)
			},
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(OpenStoreAndMigrate),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	// Start the application
	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	// Wait for a shutdown signal
	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func printStartupBanner() {
	myFigure := figure.NewFigure("HIRELY", "", true)
	myFigure.Print()
	fmt.Println("==========================================================")
	fmt.Printf("Hirely API (v%s)\n\n", "1.0")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	// Custom logger using Zerolog for Gin
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return "" // Returning empty string to avoid double logging if Gin's default logger is also active
	}))
	r.Use(gin.Recovery())

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI
	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// OpenStoreAndMigrate ties the database to the Fx lifecycle: connect and
// migrate on start, flush pending backups and disconnect on stop. It is
// invoked before the server hook, so the store is ready before the first
// request and outlives the last one.
func OpenStoreAndMigrate(lc fx.Lifecycle, db *database.Database, scheduler service.BackupScheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.Open(ctx); err != nil {
				return err
			}
			return db.Migrate(ctx)
		},
		OnStop: func(ctx context.Context) error {
			scheduler.Close()
			return db.Close()
		},
	})
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	ctrl *controller.Controller,
) {
	ctrl.RegisterRoutes(router)

	// HTTP Server Setup and Lifecycle
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Hirely API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
