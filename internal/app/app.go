package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"tutoria_backend/internal/config"
	"tutoria_backend/internal/controller"
	"tutoria_backend/internal/repository"
	"tutoria_backend/internal/service"
	"tutoria_backend/pkg/database"
	"tutoria_backend/pkg/logger"
	"tutoria_backend/pkg/monitoring"
	"tutoria_backend/pkg/security"
	"tutoria_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	cfgMu    sync.Mutex
	services *services
	tracer   *sdktrace.TracerProvider
}

type repositories struct {
	user         *repository.UserRepository
	subject      *repository.SubjectRepository
	book         *repository.BookRepository
	conversation *repository.ConversationRepository
	diagnostic   *repository.DiagnosticRepository
}

type services struct {
	auth       *service.AuthService
	user       *service.UserService
	subject    *service.SubjectService
	book       *service.BookService
	assessment *service.AssessmentService
	tutor      *service.TutorService
	gif        *service.GifService
	dashboard  *service.DashboardService
}

type controllers struct {
	auth       *controller.AuthController
	user       *controller.UserController
	subject    *controller.SubjectController
	book       *controller.BookController
	assessment *controller.AssessmentController
	chat       *controller.ChatController
	gif        *controller.GifController
	dashboard  *controller.DashboardController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		subject:      repository.NewSubjectRepository(db),
		book:         repository.NewBookRepository(db),
		conversation: repository.NewConversationRepository(db),
		diagnostic:   repository.NewDiagnosticRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	storage, err := service.NewStorageProvider(&cfg.Storage)
	if err != nil {
		logger.Log.Fatal("Failed to initialize storage", zap.Error(err))
	}

	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.subject = service.NewSubjectService(repos.subject)
	s.book = service.NewBookService(repos.book, repos.subject, storage)
	s.assessment = service.NewAssessmentService(repos.subject, repos.diagnostic)
	s.gif = service.NewGifService(&cfg.Tenor, rdb)
	s.dashboard = service.NewDashboardService(repos.user, repos.subject, repos.book, repos.conversation, repos.diagnostic)

	s.tutor, err = service.NewTutorService(context.Background(), repos.conversation, repos.subject, repos.book, &cfg.AI)
	if err != nil {
		logger.Log.Warn("Gemini client unavailable, tutor will serve fallback answers", zap.Error(err))
	}

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth, s.user),
		user:       controller.NewUserController(s.user),
		subject:    controller.NewSubjectController(s.subject, s.book),
		book:       controller.NewBookController(s.book),
		assessment: controller.NewAssessmentController(s.assessment),
		chat:       controller.NewChatController(s.tutor),
		gif:        controller.NewGifController(s.gif),
		dashboard:  controller.NewDashboardController(s.dashboard),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("tutoria-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" || cfg.Storage.Type == "" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

// ReloadConfig applies the hot-reloadable sections of a freshly parsed config
// file. Connection settings require a restart and are left alone.
func (a *App) ReloadConfig(newCfg *config.Config) {
	a.cfgMu.Lock()
	defer a.cfgMu.Unlock()

	a.Config.AI = newCfg.AI
	a.Config.Tenor = newCfg.Tenor
	a.Config.CORS = newCfg.CORS
	a.Config.RateLimit = newCfg.RateLimit

	logger.Log.Info("Configuration reloaded",
		zap.String("ai_model", newCfg.AI.Model),
		zap.Int("gif_daily_limit", newCfg.Tenor.DailyLimit))
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
