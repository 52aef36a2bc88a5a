package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fluentleap_backend/internal/config"
	"fluentleap_backend/internal/controller"
	"fluentleap_backend/internal/repository"
	"fluentleap_backend/internal/service"
	"fluentleap_backend/pkg/database"
	"fluentleap_backend/pkg/logger"
	"fluentleap_backend/pkg/monitoring"
	"fluentleap_backend/pkg/security"
	"fluentleap_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	challenge *repository.ChallengeRepository
	pool      *repository.PoolRepository
	story     *repository.StoryRepository
	feedback  *repository.FeedbackRepository
	timeline  *repository.TimelineRepository
	practice  *repository.PracticeRepository
}

type services struct {
	challenge *service.ChallengeService
	story     *service.StoryService
	feedback  *service.FeedbackService
	practice  *service.PracticeService
	timeline  *service.TimelineService
}

type controllers struct {
	challenge *controller.ChallengeController
	story     *controller.StoryController
	feedback  *controller.FeedbackController
	practice  *controller.PracticeController
	timeline  *controller.TimelineController
	health    *controller.HealthController
	system    *controller.SystemController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置热更新入口，由configwatcher调用
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Config reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		challenge: repository.NewChallengeRepository(db),
		pool:      repository.NewPoolRepository(db),
		story:     repository.NewStoryRepository(db),
		feedback:  repository.NewFeedbackRepository(db),
		timeline:  repository.NewTimelineRepository(db),
		practice:  repository.NewPracticeRepository(db),
	}
}

func (a *App) initServices(repos *repositories, rdb *redis.Client) *services {
	s := &services{}

	s.challenge = service.NewChallengeService(repos.challenge, repos.pool, repos.timeline, rdb)
	s.story = service.NewStoryService(repos.story, repos.timeline, s.challenge)
	s.feedback = service.NewFeedbackService(repos.story, repos.feedback, repos.timeline)
	s.practice = service.NewPracticeService(repos.practice, repos.timeline, s.challenge)
	s.timeline = service.NewTimelineService(repos.timeline)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		challenge: controller.NewChallengeController(s.challenge),
		story:     controller.NewStoryController(s.story),
		feedback:  controller.NewFeedbackController(s.feedback),
		practice:  controller.NewPracticeController(s.practice),
		timeline:  controller.NewTimelineController(s.timeline),
		health:    controller.NewHealthController(db),
		system:    controller.NewSystemController(db, a.Config),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimitWindow()))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		}
	} else {
		// 无redis时挑战创建只靠date唯一索引兜底
		logger.Log.Warn("Redis disabled, per-date challenge lock unavailable")
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, rdb)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("fluentleap", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
