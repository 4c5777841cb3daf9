package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/khoahotran/portfolio/adapters/event"
	httpAdapter "github.com/khoahotran/portfolio/adapters/http"
	"github.com/khoahotran/portfolio/adapters/media_storage"
	"github.com/khoahotran/portfolio/adapters/persistence"
	"github.com/khoahotran/portfolio/adapters/scheduler"
	"github.com/khoahotran/portfolio/internal/application/service"
	analyticsUC "github.com/khoahotran/portfolio/internal/application/usecase/analytics"
	authUC "github.com/khoahotran/portfolio/internal/application/usecase/auth"
	feedUC "github.com/khoahotran/portfolio/internal/application/usecase/feed"
	portfolioUC "github.com/khoahotran/portfolio/internal/application/usecase/portfolio"
	resumeUC "github.com/khoahotran/portfolio/internal/application/usecase/resume"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/internal/domain/analytics"
	"github.com/khoahotran/portfolio/internal/domain/navigation"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/auth"
	"github.com/khoahotran/portfolio/pkg/logger"
	"github.com/khoahotran/portfolio/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := tracing.NewTracerProvider(cfg.Jaeger.OTLPEndpoint, appLogger, "portfolio-server")
	if err != nil {
		appLogger.Fatal("Failed to initialize tracer", err)
	}

	// Dataset
	repo, closeRepo, err := newDatasetRepo(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize dataset repository", err)
	}
	defer closeRepo()

	// Optional infrastructure
	redisEnabled := false
	var (
		counters analytics.CounterRepository = persistence.NewMemoryViewCounterRepo()
		docCache service.DocumentCache       = persistence.NewNoopDocumentCache()
	)
	if cfg.Redis.Addr != "" {
		rdb, err := persistence.NewRedisClient(ctx, cfg, appLogger)
		if err != nil {
			appLogger.Warn("Redis unavailable, counting views in memory and not caching resumes", zap.Error(err))
		} else {
			defer closeRedis(rdb, appLogger)
			redisEnabled = true
			counters = persistence.NewRedisViewCounterRepo(rdb, appLogger)
			docCache = persistence.NewRedisDocumentCache(rdb)
		}
	}

	publisher := event.NewInlinePublisher(counters)
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg.Kafka.Brokers, appLogger)
		if err != nil {
			appLogger.Warn("Kafka unavailable, counting views inline", zap.Error(err))
		} else {
			defer kafkaClient.Close()
			publisher = kafkaClient
		}
	}

	uploader := media_storage.NewLocalAdapter()
	if cfg.CloudinaryEnabled() {
		cld, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
		if err != nil {
			appLogger.Warn("Cloudinary unavailable, serving images as configured", zap.Error(err))
		} else {
			uploader = cld
		}
	}

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	userRepo := persistence.NewConfigUserRepo(cfg.Auth.OwnerEmail, cfg.Auth.OwnerPasswordHash)

	dataContext := portfolioUC.NewDataContext(repo, cfg.Portfolio.LoadDelay, appLogger)
	dataContext.Start(ctx)

	// Use Cases
	recordViewUseCase := analyticsUC.NewRecordViewUseCase(publisher, appLogger)
	statsUseCase := analyticsUC.NewStatsUseCase(counters)
	pageUseCase := portfolioUC.NewPageUseCase(dataContext, uploader, navigation.DefaultSections,
		cfg.Portfolio.HeaderOffset, cfg.Portfolio.PlaceholderImage, appLogger)
	queryUseCase := portfolioUC.NewQueryUseCase(dataContext)
	openProjectUseCase := portfolioUC.NewOpenProjectUseCase(dataContext, recordViewUseCase)
	generateResumeUseCase := resumeUC.NewGenerateResumeUseCase(dataContext, docCache, cfg.Redis.ResumeTTL, appLogger)
	publishResumeUseCase := resumeUC.NewPublishResumeUseCase(generateResumeUseCase, uploader, appLogger)
	feedUseCase := feedUC.NewTimelineFeedUseCase(dataContext, cfg.App.BaseURL, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)

	// HTTP Handlers
	handlers := httpAdapter.Handlers{
		Page: httpAdapter.NewPageHandler(pageUseCase, recordViewUseCase, appLogger),
		API: httpAdapter.NewAPIHandler(queryUseCase, openProjectUseCase, dataContext,
			navigation.DefaultSections, cfg.Portfolio.HeaderOffset, appLogger),
		Resume: httpAdapter.NewResumeHandler(generateResumeUseCase, publishResumeUseCase, recordViewUseCase, appLogger),
		RSS:    httpAdapter.NewRSSHandler(feedUseCase, appLogger),
		Auth:   httpAdapter.NewAuthHandler(loginUseCase, appLogger),
		Admin:  httpAdapter.NewAdminHandler(statsUseCase, appLogger),
	}

	router := httpAdapter.NewRouter(handlers, jwtSvc, appLogger, httpAdapter.RouterOptions{
		AllowOrigins: cfg.App.CORSOrigins,
		RequestLog:   cfg.App.Env != "production",
		LoginRate:    rate.Limit(cfg.Auth.LoginPerMinute / 60),
		LoginBurst:   cfg.Auth.LoginBurst,
	})

	// Scheduled jobs
	jobs := scheduler.New(appLogger)
	if redisEnabled && cfg.Redis.ResumeWarmCron != "" {
		err := jobs.Add(ctx, "resume-warmup", cfg.Redis.ResumeWarmCron, func(ctx context.Context) error {
			_, err := generateResumeUseCase.Execute(ctx)
			return err
		})
		if err != nil {
			appLogger.Warn("Resume warm-up not scheduled", zap.Error(err))
		}
	}
	jobs.Start()

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port), zap.String("source", cfg.Portfolio.Source))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := jobs.Stop(shutdownCtx); err != nil {
			appLogger.Warn("Scheduled jobs did not stop in time", zap.Error(err))
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return shutdownTracer(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		appLogger.Error("Server stopped with error", err)
	}
}

// newDatasetRepo picks the dataset source. The returned close func is never nil.
func newDatasetRepo(ctx context.Context, cfg config.Config, log logger.Logger) (portfolio.Repository, func(), error) {
	if cfg.Portfolio.Source != config.SourcePostgres {
		return persistence.NewStaticRepo(log), func() {}, nil
	}
	pool, err := persistence.NewPostgresPool(ctx, cfg.DB.DSN, log)
	if err != nil {
		return nil, nil, err
	}
	return persistence.NewPostgresDatasetRepo(pool, log), pool.Close, nil
}

func closeRedis(rdb *redis.Client, log logger.Logger) {
	if err := rdb.Close(); err != nil {
		log.Warn("Failed to close Redis client", zap.Error(err))
	}
}
