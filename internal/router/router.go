package router

import (
	"time"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/placementcell/backend/internal/forum"
	"github.com/placementcell/backend/internal/handlers"
	"github.com/placementcell/backend/internal/middleware"
	"github.com/placementcell/backend/internal/models"
	"github.com/placementcell/backend/internal/repositories"
	"github.com/placementcell/backend/pkg/config"
	"github.com/placementcell/backend/pkg/mailer"
	"github.com/placementcell/backend/pkg/otp"
	"go.uber.org/zap"
)

const resetCodeTTL = 10 * time.Minute

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, cfg *config.Config, db *config.DB, log *zap.Logger) error {
	// AutoMigrate PostgreSQL models
	if err := db.Postgres.AutoMigrate(
		&models.Student{},
		&models.Staff{},
		&models.Job{},
		&models.Application{},
	); err != nil {
		return err
	}

	e.HTTPErrorHandler = handlers.NewHTTPErrorHandler(log)

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	mongoDB := db.Mongo.Database(cfg.MongoDB)
	postRepo := repositories.NewMongoPostRepository(mongoDB)
	commentRepo := repositories.NewMongoCommentRepository(mongoDB)
	replyRepo := repositories.NewMongoReplyRepository(mongoDB)
	reportRepo := repositories.NewMongoReportRepository(mongoDB)
	forumRepo := repositories.NewMongoForumRepository(mongoDB)
	studentRepo := repositories.NewPostgresStudentRepository(db.Postgres)
	staffRepo := repositories.NewPostgresStaffRepository(db.Postgres)
	jobRepo := repositories.NewPostgresJobRepository(db.Postgres)
	applicationRepo := repositories.NewPostgresApplicationRepository(db.Postgres)

	forumService := forum.NewService(postRepo, commentRepo, replyRepo, reportRepo, forumRepo, jobRepo, log)

	codeStore := otp.NewStore(db.Redis, resetCodeTTL)
	mailSender := mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(studentRepo, staffRepo, codeStore, mailSender, cfg.JWTSecret, log)
	authHandler.RegisterAuthRoutes(authGroup)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuth(cfg.JWTSecret))

	profileHandler := handlers.NewProfileHandler(studentRepo, staffRepo)
	profileHandler.RegisterProfileRoutes(api)

	jobHandler := handlers.NewJobHandler(jobRepo, applicationRepo)
	jobHandler.RegisterJobRoutes(api)

	postHandler := handlers.NewPostHandler(forumService)
	postHandler.RegisterPostRoutes(api)

	commentHandler := handlers.NewCommentHandler(forumService)
	commentHandler.RegisterCommentRoutes(api)

	replyHandler := handlers.NewReplyHandler(forumService)
	replyHandler.RegisterReplyRoutes(api)

	reportHandler := handlers.NewReportHandler(forumService)
	reportHandler.RegisterReportRoutes(api)

	forumHandler := handlers.NewForumHandler(forumService)
	forumHandler.RegisterForumRoutes(api)

	log.Info("all routes configured")
	return nil
}
