package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	v1 "storefront/internal/delivery/http/v1"
	"storefront/internal/infrastructure/cache"
	"storefront/internal/infrastructure/notify"
	"storefront/internal/infrastructure/session"
	"storefront/internal/repository/memory"
	"storefront/internal/usecase"
	"storefront/pkg/logger"
	"storefront/pkg/utils"

	"github.com/NYTimes/gziphandler"
	"golang.org/x/time/rate"
)

const (
	serviceName    = "storefront"
	serviceVersion = "1.0.0"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Catalog: static seed, published after the simulated latency
	items, err := memory.LoadSeed(cfg.CatalogFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load catalog seed")
	}
	catalogRepo := memory.NewCatalogRepository()
	go func() {
		if err := catalogRepo.Load(ctx, items, cfg.CatalogLoadDelay); err != nil {
			log.Warn().Err(err).Msg("Catalog load aborted")
			return
		}
		log.Info().Int("items", len(items)).Msg("Catalog loaded")
	}()

	prices, err := utils.NewCurrencyFormatter(cfg.Currency)
	if err != nil {
		log.Fatal().Err(err).Str("currency", cfg.Currency).Msg("Invalid currency")
	}

	// Notifications
	notifiers := notify.Multi{notify.NewLogNotifier()}
	var kafkaNotifier *notify.KafkaNotifier
	if len(cfg.KafkaBrokers) > 0 {
		kafkaNotifier = notify.NewKafkaNotifier(cfg.KafkaBrokers, cfg.KafkaTopic)
		notifiers = append(notifiers, kafkaNotifier)
		log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("Kafka notifications enabled")
	}

	// Sessions
	signer := utils.NewSessionSigner(cfg.SessionSecret, cfg.SessionTTL)
	registry := session.NewRegistry(signer, cfg.SessionTTL)

	// Use cases
	catalogUC := usecase.NewCatalogUsecase(catalogRepo, cfg.PageSize, prices)
	wishlistUC := usecase.NewWishlistUsecase(catalogRepo, notifiers, prices)
	cartUC := usecase.NewCartUsecase(catalogRepo, notifiers, prices, cfg.CheckoutDelay)

	// Default expiration 30m, cleanup every 60m
	memCache := cache.NewMemoryCache(30*time.Minute, 60*time.Minute)

	mux := http.NewServeMux()
	v1.RegisterRoutes(mux, v1.Handlers{
		Catalog:  v1.NewCatalogHandler(catalogUC),
		Wishlist: v1.NewWishlistHandler(wishlistUC),
		Cart:     v1.NewCartHandler(cartUC, cfg.MaxCartQuantity),
		Config:   v1.NewConfigHandler(memCache, cfg.CacheEnumsTTL, prices.Code(), cfg.PageSize),
	})

	addr := fmt.Sprintf(":%s", cfg.Port)

	rateLimiter := middleware.NewRateLimiter(
		ctx,
		rate.Limit(cfg.RateLimitRPS),
		cfg.RateLimitBurst,
		time.Minute,   // sweep interval
		3*time.Minute, // idle TTL
	)

	// Outermost first: CORS, request logger, rate limit, session, gzip
	handler := gziphandler.GzipHandler(mux)
	handler = middleware.NewSessionMiddleware(registry, cfg.SessionTTL, cfg.Env == "production")(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = middleware.RequestLogger(handler)
	handler = middleware.NewCORSMiddleware(cfg)(handler)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	logger.ServiceStart(serviceName, serviceVersion, cfg.Port)

	<-ctx.Done()
	log.Info().Msg("Server shutting down...")

	rateLimiter.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	registry.Close()
	if kafkaNotifier != nil {
		if err := kafkaNotifier.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to flush Kafka notifications")
		}
	}

	logger.ServiceStop(serviceName)
}
