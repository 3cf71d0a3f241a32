package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/reserva-backend/api"
	"github.com/Domenick1991/reserva-backend/config"
	"github.com/Domenick1991/reserva-backend/internal/bootstrap"
	"github.com/Domenick1991/reserva-backend/internal/cache"
	"github.com/Domenick1991/reserva-backend/internal/email"
	"github.com/Domenick1991/reserva-backend/internal/kafka"
	"github.com/Domenick1991/reserva-backend/internal/logger"
	"github.com/Domenick1991/reserva-backend/internal/payment"
	"github.com/Domenick1991/reserva-backend/internal/repository"
	"github.com/Domenick1991/reserva-backend/internal/service/booking"
	"github.com/Domenick1991/reserva-backend/internal/service/checkout"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		bootLogger := logger.New("info")
		bootLogger.Fatal("load config", zap.Error(err))
	}

	log := logger.New(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bookingRepo, closeStore, err := openStore(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal("connect database", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
	defer closeStore()

	var opts []booking.BookingServiceOption
	if cfg.Redis.Enabled() {
		redisCache := cache.NewRedisCache(cfg.Redis, cfg.Booking.ListCacheTTL())
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn("redis unavailable, bookings cache disabled", zap.Error(err))
			_ = redisCache.Close()
		} else {
			defer redisCache.Close()
			opts = append(opts, booking.WithCache(redisCache))
		}
	}
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, log)
		defer producer.Close()
		opts = append(opts, booking.WithEventPublisher(producer, cfg.Kafka.BookingTopic))
	}

	if cfg.SMTP.Host == "" {
		log.Warn("SMTP_HOST is not set, confirmation emails will fail")
	}
	if cfg.Stripe.SecretKey == "" {
		log.Warn("STRIPE_SECRET_KEY is not set, checkout sessions will fail")
	}

	bookingService := booking.NewBookingService(bookingRepo, email.NewSender(cfg.SMTP), log, opts...)
	checkoutService := checkout.NewCheckoutService(
		payment.NewStripeClient(cfg.Stripe.SecretKey),
		checkout.Settings{
			Currency:   cfg.Stripe.Currency,
			SuccessURL: cfg.Stripe.SuccessURL,
			CancelURL:  cfg.Stripe.CancelURL,
		},
		log,
	)

	router := api.NewRouter(log, cfg.HTTP.StaticDir,
		api.NewBookingHandler(bookingService, log),
		api.NewCheckoutHandler(checkoutService, log),
	)

	if err := bootstrap.Run(ctx, cfg.HTTP.Address(), router, log); err != nil {
		log.Error("server error", zap.Error(err))
		return
	}
	log.Info("server stopped")
}

// openStore connects to the configured database and returns the booking
// repository with a function releasing the connection.
func openStore(ctx context.Context, cfg config.DatabaseConfig, log *zap.Logger) (repository.BookingRepository, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		if err := repository.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info("connected to postgres")
		return repository.NewBookingRepository(pool), pool.Close, nil
	default:
		client, err := repository.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		log.Info("connected to mongodb", zap.String("database", cfg.MongoDatabase))
		coll := client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection)
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Warn("disconnect mongodb", zap.Error(err))
			}
		}
		return repository.NewMongoBookingRepository(coll), closeFn, nil
	}
}
