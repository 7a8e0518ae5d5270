package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gcertilab/certilab-api/config"
	"github.com/gcertilab/certilab-api/database"
	"github.com/gcertilab/certilab-api/internal/controller"
	"github.com/gcertilab/certilab-api/internal/jobs"
	"github.com/gcertilab/certilab-api/internal/logger"
	"github.com/gcertilab/certilab-api/internal/model"
	"github.com/gcertilab/certilab-api/internal/repository"
	"github.com/gcertilab/certilab-api/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title CertiLab API
// @version 1.0
// @description Training, certification and file distribution backend for client companies and their workers.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			service.NewSystemClock,
			service.NewPermSampler,
			service.NewChromePDFRenderer,
		),

		fx.Provide(
			repository.NewCompanyRepository,
			repository.NewPeriodRepository,
			repository.NewClassRepository,
			repository.NewWorkerRepository,
			repository.NewUserRepository,
			repository.NewEnrollmentRepository,
			repository.NewQuestionBankRepository,
			repository.NewQuestionRepository,
			repository.NewAnswerRepository,
			repository.NewExamAttemptRepository,
			repository.NewClassFileRepository,
			repository.NewFileDeliveryRepository,
		),

		fx.Provide(
			service.NewAuthService,
			service.NewCompanyService,
			service.NewPeriodService,
			service.NewClassService,
			service.NewWorkerService,
			service.NewUserService,
			service.NewEnrollmentService,
			service.NewBankService,
			service.NewCertificateService,
			service.NewExamService,
			service.NewImportService,
			service.NewReportService,
			service.NewFileService,
			service.NewUploadService,
		),

		fx.Provide(
			controller.NewAuthController,
			controller.NewCompanyController,
			controller.NewPeriodController,
			controller.NewClassController,
			controller.NewWorkerController,
			controller.NewUserController,
			controller.NewEnrollmentController,
			controller.NewBankController,
			controller.NewExamController,
			controller.NewFileController,
			controller.NewUploadController,
			controller.NewRouter,
			jobs.NewCertificateRetryJob,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(StartCertificateRetryJob),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

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
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the HTTP
// server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	engine *gin.Engine,
	cfg *config.Config,
	router *controller.Router,
) {
	router.Register(engine)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("CertiLab API server starting on port %s", cfg.Server.Port)
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

// StartCertificateRetryJob ties the background renderer to the fx lifecycle.
func StartCertificateRetryJob(lc fx.Lifecycle, job *jobs.CertificateRetryJob) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return job.Start()
		},
		OnStop: func(ctx context.Context) error {
			job.Stop()
			return nil
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Company{},
		&model.Period{},
		&model.Class{},
		&model.Worker{},
		&model.User{},
		&model.Enrollment{},
		&model.QuestionBank{},
		&model.Question{},
		&model.Answer{},
		&model.ExamAttempt{},
		&model.ExamAttemptQuestion{},
		&model.ClassFile{},
		&model.FileDelivery{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
