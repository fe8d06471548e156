package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clubsphere/internal/audit"
	"clubsphere/internal/auth"
	"clubsphere/internal/club"
	"clubsphere/internal/config"
	"clubsphere/internal/dashboard"
	"clubsphere/internal/db"
	"clubsphere/internal/email"
	"clubsphere/internal/event"
	"clubsphere/internal/logger"
	"clubsphere/internal/membership"
	"clubsphere/internal/payment"
	"clubsphere/internal/policy"
	"clubsphere/internal/queue"
	"clubsphere/internal/server"
	"clubsphere/internal/user"
)

// notifier is every outbound message the domain services send.
type notifier interface {
	club.Notifier
	membership.Notifier
	event.Notifier
	payment.Notifier
}

type identity interface {
	auth.Verifier
	auth.IdentityAdmin
}

// @title ClubSphere API
// @version 1.0
// @description API for club membership and event management.
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("info", false)
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.LogLevel, cfg.IsDev())
	defer logger.Sync()
	logger.Info("Starting ClubSphere application", "env", cfg.Env)

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info("Connecting to database...")
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	ident, err := newIdentity(ctx, cfg)
	if err != nil {
		logger.Fatalf("Failed to initialise identity provider: %v", err)
	}
	logger.Info("Identity provider ready", "provider", cfg.AuthProvider)

	var workers sync.WaitGroup

	var notify notifier = email.Nop{}
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Fatalf("Failed to connect to Redis: %v", err)
		}
		emailService := email.New(rdb, email.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Pass:     cfg.SMTPPass,
			From:     cfg.EmailFrom,
			FromName: cfg.EmailFromName,
		})
		defer emailService.Close()

		workers.Add(1)
		go func() {
			defer workers.Done()
			emailService.Start(ctx)
		}()
		notify = emailService
		logger.Info("Email service initialized")
	} else {
		logger.Warn("REDIS_ADDR not set, emails are disabled")
	}

	var auditStore *audit.Store
	if cfg.MongoURI != "" {
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			logger.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer func() {
			disconnectCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
			defer done()
			_ = client.Disconnect(disconnectCtx)
		}()

		auditStore = audit.NewStore(client.Database(cfg.MongoDatabase))
		if err := auditStore.EnsureIndexes(ctx); err != nil {
			logger.Warn("Audit indexes not created", "error", err)
		}
		logger.Info("Audit store connected")
	}
	auditLog := audit.New(auditStore, logger.L(), audit.Config{Admin: cfg.AuditAdmin, Payment: cfg.AuditPayment})

	var publisher queue.Publisher = queue.Nop{}
	if cfg.AMQPURL != "" {
		amqpPublisher, err := queue.NewAMQPPublisher(cfg.AMQPURL)
		if err != nil {
			logger.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
		logger.Info("Event publisher connected")
	}

	if cfg.StripeSecretKey == "" {
		logger.Warn("STRIPE_SECRET_KEY not set, checkout will fail")
	}

	owners := policy.New(database)

	userService := user.NewService(user.NewRepository(database), ident, auditLog)
	clubService := club.NewService(club.NewRepository(database), notify, publisher, auditLog)
	membershipRepo := membership.NewRepository(database)
	membershipService := membership.NewService(membershipRepo, owners, notify, auditLog)
	eventRepo := event.NewRepository(database)
	eventService := event.NewService(eventRepo, owners, notify)
	paymentService := payment.NewService(
		payment.NewStripeProvider(cfg.StripeSecretKey),
		payment.NewRepository(database),
		membershipRepo,
		eventRepo,
		notify,
		publisher,
		auditLog,
		payment.Config{Currency: cfg.Currency, ClientURL: cfg.ClientURL},
	)
	dashboardService := dashboard.NewService(dashboard.NewRepository(database))

	workers.Add(1)
	go func() {
		defer workers.Done()
		membership.StartSweeper(ctx, membershipService, cfg.MembershipSweepInterval)
	}()

	srv := server.New(ctx, server.Deps{
		Config:   cfg,
		Verifier: ident,
		Roles:    userService,
		DB:       database,
	}, server.Handlers{
		User:       user.NewHandler(userService),
		Club:       club.NewHandler(clubService),
		Membership: membership.NewHandler(membershipService),
		Event:      event.NewHandler(eventService),
		Payment:    payment.NewHandler(paymentService),
		Dashboard:  dashboard.NewHandler(dashboardService),
	})

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	cancel()
	workers.Wait()

	logger.Info("Server stopped")
}

func newIdentity(ctx context.Context, cfg *config.Config) (identity, error) {
	if cfg.AuthProvider == config.AuthProviderJWT {
		v, err := auth.NewJWTVerifier(cfg.JWTSecret)
		if err != nil {
			return nil, err
		}
		return v, nil
	}

	fb, err := auth.NewFirebase(ctx, cfg.FirebaseKeyB64)
	if err != nil {
		return nil, err
	}
	return fb, nil
}
