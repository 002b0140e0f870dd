package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"terravolt-cms/internal/core/auth"
	"terravolt-cms/internal/core/cache"
	"terravolt-cms/internal/core/config"
	"terravolt-cms/internal/core/database"
	"terravolt-cms/internal/core/logger"
	"terravolt-cms/internal/core/server"
	"terravolt-cms/internal/domain"
	"terravolt-cms/internal/media"
	"terravolt-cms/internal/repo"
	"terravolt-cms/internal/service"
	"terravolt-cms/internal/transport/http/handler"
	"terravolt-cms/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))

	var log *zap.Logger
	var cleanup func()
	if cfg.Log.File != "" {
		log, cleanup = logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File,
			cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays)
	} else {
		log, cleanup = logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}, &domain.Blog{}, &domain.Project{}, &domain.Product{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	if created, err := repo.SeedSuperadmin(db, cfg.Seed.SuperadminEmail, cfg.Seed.SuperadminPassword); err != nil {
		log.Fatal("seed superadmin", zap.Error(err))
	} else if created {
		log.Info("bootstrap superadmin created", zap.String("email", cfg.Seed.SuperadminEmail))
	}

	if cfg.JWT.Secret == "" {
		log.Warn("jwt.secret not set, using the built-in default; do not run this in production")
	}
	jwter := auth.New(cfg.JWT.Secret, cfg.JWT.Issuer, time.Duration(cfg.JWT.TTLDays)*24*time.Hour)

	var attempts cache.AttemptCounter
	if cfg.Redis.Enabled {
		attempts = cache.NewRedisCounter(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("login limiter backed by redis", zap.String("addr", cfg.Redis.Addr))
	} else {
		attempts = cache.NewMemCounter()
	}

	store, err := media.NewMinioStore(media.MinioOpts{
		Endpoint:  cfg.Media.Endpoint,
		AccessKey: cfg.Media.AccessKey,
		SecretKey: cfg.Media.SecretKey,
		Bucket:    cfg.Media.Bucket,
		UseSSL:    cfg.Media.UseSSL,
	})
	if err != nil {
		log.Fatal("media store", zap.Error(err))
	}
	if err := store.EnsureBucket(context.Background()); err != nil {
		log.Fatal("media bucket", zap.Error(err))
	}
	resolver := media.NewResolver(store, cfg.Media.Bucket, cfg.Media.PublicBaseURL)

	userRepo := repo.NewUserRepo(db)
	authSvc := service.NewAuthService(userRepo, jwter)
	userSvc := service.NewUserService(userRepo)
	blogSvc := service.NewBlogService(repo.NewBlogRepo(db))
	projectSvc := service.NewProjectService(repo.NewProjectRepo(db))
	productSvc := service.NewProductService(repo.NewProductRepo(db))

	r := router.New(router.Deps{
		Log:         log,
		JWT:         jwter,
		Auth:        handler.NewAuthHandler(authSvc, attempts),
		Users:       handler.NewUserHandler(userSvc),
		Blogs:       handler.NewBlogHandler(blogSvc),
		Projects:    handler.NewProjectHandler(projectSvc),
		Products:    handler.NewProductHandler(productSvc),
		Uploads:     handler.NewUploadHandler(resolver),
		CORSOrigins: cfg.App.CORSOrigins,
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.Build(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	go func() {
		log.Info("api starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.New(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
