package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"multikanban/internal/board"
	"multikanban/internal/config"
	"multikanban/internal/handler"
	"multikanban/internal/migrations"
	"multikanban/internal/middleware"
	"multikanban/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine  *gin.Engine
	Service *board.Service
	Config  *config.Config
	Log     logrus.FieldLogger

	closers []func() error
}

func Init(cfg *config.Config, log logrus.FieldLogger) (*Server, error) {
	layout, err := cfg.Layout()
	if err != nil {
		return nil, fmt.Errorf("❌ failed to load layout: %w", err)
	}

	s := &Server{Config: cfg, Log: log}
	store, err := s.openStore()
	if err != nil {
		s.Close()
		return nil, err
	}

	s.Service = board.NewService(context.Background(), store, layout, board.WithLogger(log))
	s.Engine = NewRouter(s.Service, cfg, log)
	return s, nil
}

// openStore connects the board state backend selected by STORAGE_DRIVER.
func (s *Server) openStore() (board.Store, error) {
	cfg := s.Config
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		if cfg.DBAutoMigrate {
			url := migrations.URL(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
			if err := migrations.Up(url); err != nil {
				return nil, fmt.Errorf("❌ failed to migrate DB: %w", err)
			}
			s.Log.Info("✅ Migrations applied")
		}

		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
		)
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			s.closers = append(s.closers, sqlDB.Close)
		}
		s.Log.Info("✅ Connected to database")
		return repository.NewBoardStateRepository(db), nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		s.closers = append(s.closers, client.Close)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("❌ failed to connect to redis: %w", err)
		}
		s.Log.WithField("addr", cfg.RedisAddr).Info("✅ Connected to redis")
		return repository.NewRedisStore(client, cfg.RedisPrefix), nil

	case config.DriverMemory:
		s.Log.Warn("⚠️  Using in-memory storage, boards are lost on restart")
		return repository.NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("❌ unknown storage driver %q", cfg.StorageDriver)
	}
}

// NewRouter registers every route on a fresh engine.
func NewRouter(svc handler.BoardService, cfg *config.Config, log logrus.FieldLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	boardHandler := handler.NewBoardHandler(svc)
	taskHandler := handler.NewTaskHandler(svc)
	moveHandler := handler.NewMoveHandler(svc)
	draftHandler := handler.NewDraftHandler(svc)

	api := r.Group("/")
	api.Use(middleware.ActorMiddleware(cfg.JWTSecret, cfg.DefaultActor))
	{
		api.GET("/layout", boardHandler.Layout)

		// Board routes
		api.GET("/boards", boardHandler.GetAll)
		api.GET("/boards/:board", boardHandler.GetByName)
		api.GET("/boards/:board/summary", boardHandler.Summary)

		// Task routes
		api.POST("/boards/:board/tasks", taskHandler.Create)
		api.PUT("/boards/:board/tasks/:id", taskHandler.Update)
		api.DELETE("/boards/:board/columns/:column/tasks/:id", taskHandler.Delete)
		api.POST("/moves", moveHandler.Drop)

		// Draft routes
		api.POST("/drafts/comments", draftHandler.AddComment)
		api.POST("/drafts/notes", draftHandler.AddNote)
	}
	return r
}

func (s *Server) Close() {
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			s.Log.WithError(err).Warn("⚠️  failed to close storage")
		}
	}
	s.closers = nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		s.Log.Infof("🚀 Server running on port %s", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Log.Fatalf("❌ Failed to listen: %s", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	s.Log.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.Log.Fatalf("❌ Server forced to shutdown: %s", err)
	}
	s.Close()

	s.Log.Info("✅ Server exited properly")
}
