package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	pgrepo "github.com/mindxandria/library-backend/internal/adapters/db/postgres"
	httptransport "github.com/mindxandria/library-backend/internal/adapters/transport/http"
	"github.com/mindxandria/library-backend/internal/adapters/transport/http/handler"
	authsvc "github.com/mindxandria/library-backend/internal/app/auth/service"
	"github.com/mindxandria/library-backend/internal/app/auth/token"
	"github.com/mindxandria/library-backend/internal/app/books"
	"github.com/mindxandria/library-backend/internal/app/files"
	"github.com/mindxandria/library-backend/internal/app/users"
	"github.com/mindxandria/library-backend/internal/infra/config"
	lg "github.com/mindxandria/library-backend/internal/infra/log"
	"github.com/mindxandria/library-backend/internal/infra/migrate"
	"github.com/mindxandria/library-backend/internal/infra/server"
)

func main() {
	zapLog := lg.Must(os.Getenv("LOG_LEVEL"))
	defer zapLog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("failed to load config", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		zapLog.Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLog.Fatal("db handle", zap.Error(err))
	}
	defer sqlDB.Close()
	if err := migrate.Up(sqlDB); err != nil {
		zapLog.Fatal("run migrations", zap.Error(err))
	}

	validate := validator.New()
	codec := token.NewCodec(cfg.JWTSecret, cfg.AccessTokenTTL)

	userRepo := pgrepo.NewPostgresUserRepo(db)
	tokenRepo := pgrepo.NewPostgresTokenRepo(db)
	bookRepo := pgrepo.NewPostgresBookRepo(db)

	authService := authsvc.New(userRepo, tokenRepo, codec, cfg.RefreshTokenTTL, validate)
	userService := users.New(userRepo)
	bookService := books.New(bookRepo, validate)
	fileService, err := files.New(cfg.UploadDir)
	if err != nil {
		zapLog.Fatal("upload dir", zap.Error(err))
	}

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Logger:           zapLog,
		Codec:            codec,
		Auth:             handler.NewAuthHandler(authService, zapLog),
		Books:            handler.NewBookHandler(bookService, userService),
		Users:            handler.NewUserHandler(userService),
		Files:            handler.NewFileHandler(fileService),
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: cfg.AllowCredentials,
		RateLimit:        cfg.RateLimit,
		RateLimitBurst:   cfg.RateLimitBurst,
	})

	rootCtx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(rootCtx)

	g.Go(func() error {
		return server.StartHTTPServer(ctx, cfg.HTTPAddress, router, zapLog)
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
		zapLog.Info("shutdown signal received")
	case <-ctx.Done():
	}
	cancel()

	if err := g.Wait(); err != nil {
		zapLog.Error("server terminated", zap.Error(err))
	}
}
