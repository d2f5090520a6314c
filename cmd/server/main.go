package main

import (
	"context"
	"errors"
	"log"
	nethttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/errgroup"

	"shop-service/internal/auth"
	"shop-service/internal/config"
	"shop-service/internal/controllers/http"
	mmysql "shop-service/internal/infra/mysql"
	"shop-service/internal/infra/rabbitmq"
	mysqlrepo "shop-service/internal/repository/mysql"
	"shop-service/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := mmysql.NewMySQL(&cfg.MySQL)
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.SeedData {
		if err := mmysql.Seed(ctx, db); err != nil {
			log.Fatalf("db: seed: %v", err)
		}
	}

	store := mysqlrepo.NewStore(db)

	var publisher rabbitmq.PublisherInterface = rabbitmq.NopPublisher{}
	if cfg.RabbitMQ.URL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("failed to init publisher: %v", err)
		}
		defer p.Close()
		publisher = p
	} else {
		log.Println("RABBITMQ_URL not set, order events are not published")
	}

	redisClient := newRedisClient(ctx, cfg.Redis)
	if redisClient != nil {
		defer redisClient.Close()
	}

	tokens := auth.NewTokenManager(&cfg.JWT)

	handler := http.NewHandler(http.Services{
		Users:    services.NewUserService(store, tokens),
		Catalog:  services.NewCatalogService(store),
		Carts:    services.NewCartService(store),
		Orders:   services.NewOrderService(store, services.NewMockCardProcessor(), publisher),
		Wishlist: services.NewWishlistService(store),
	}, tokens, redisClient, cfg.RateLimit)

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handler.RegisterRoutes(r)

	srv := &nethttp.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Starting shop service on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server run: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("Server stopped")
}

// newRedisClient returns nil when Redis is unreachable; the auth rate limiter
// is then disabled.
func newRedisClient(ctx context.Context, cfg config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		log.Println("REDIS_ADDR not set, rate limiting disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     50,
		MinIdleConns: 5,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("WARNING: failed to connect to Redis at %s: %v. Rate limiting disabled.", cfg.Addr, err)
		_ = client.Close()
		return nil
	}

	log.Printf("Redis connected at %s", cfg.Addr)
	return client
}
