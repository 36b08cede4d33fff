package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bookmybox/backend/config"
	repository "github.com/bookmybox/backend/internal/database/postgres"
	rediscache "github.com/bookmybox/backend/internal/database/redis"
	"github.com/bookmybox/backend/internal/service"
	"github.com/bookmybox/backend/internal/transport"
	"github.com/bookmybox/backend/internal/worker"

	"github.com/bookmybox/backend/pkg/postgres"
	"github.com/bookmybox/backend/pkg/rabbitmq"
	"github.com/bookmybox/backend/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	// Initialize database
	db, err := postgres.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := postgres.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	bookingRepo := repository.NewBookingRepository(db)
	boxRepo := repository.NewBoxRepository(db)
	userRepo := repository.NewUserRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Initialize slot cache
	redisClient := redis.NewRedisClient(&cfg.Redis)
	defer redisClient.Close()
	slotCache := rediscache.NewSlotCache(redisClient, cfg.Cache.SlotTTL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize event queue and notification worker
	var eventPublisher service.EventPublisher
	if cfg.RabbitMQ.Enabled {
		mq, err := rabbitmq.NewRabbitMQ(rabbitmq.Config{
			URL:       cfg.RabbitMQ.URL,
			QueueName: cfg.RabbitMQ.QueueName,
		})
		if err != nil {
			logrus.Errorf("Failed to initialize RabbitMQ: %v. Continuing without events...", err)
		} else {
			defer mq.Close()
			eventPublisher = mq

			notificationWorker := worker.NewNotificationWorker(mq)
			go func() {
				if err := notificationWorker.Start(ctx); err != nil {
					logrus.Errorf("Notification worker error: %v", err)
				}
			}()
			logrus.Info("Notification worker started")
		}
	} else {
		logrus.Warn("RabbitMQ disabled, booking events will not be published")
	}

	// Initialize services
	bookingService := service.NewBookingService(bookingRepo, boxRepo, slotCache, eventPublisher, cfg.Booking)
	boxService := service.NewBoxService(boxRepo, reviewRepo)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	bookingHandler := transport.NewBookingHandler(bookingService)
	boxHandler := transport.NewBoxHandler(boxService)
	userHandler := transport.NewUserHandler(userService)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(bookingHandler, boxHandler, userHandler)); err != nil {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
