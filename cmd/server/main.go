package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dharmasatrya/transitbook/internal/booking"
	"github.com/dharmasatrya/transitbook/internal/config"
	"github.com/dharmasatrya/transitbook/internal/generator"
	"github.com/dharmasatrya/transitbook/internal/handler"
	"github.com/dharmasatrya/transitbook/internal/metrics"
	"github.com/dharmasatrya/transitbook/internal/ratelimit"
	"github.com/dharmasatrya/transitbook/internal/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())
	e.Use(requestLogger())

	reg := metrics.NewRegistry()

	var rnd generator.Rand = generator.NewRand()
	if cfg.GeneratorSeed != 0 {
		rnd = generator.NewSeededRand(cfg.GeneratorSeed)
		slog.Info("offer generator seeded", "seed", cfg.GeneratorSeed)
	}
	gen := generator.New(rnd)

	searchService := search.NewService(gen, search.Config{
		Latency: cfg.SearchLatency,
		Timeout: cfg.SearchTimeout,
	}, reg)
	resultsService := searchService.WithLatency(cfg.ResultsLatency)

	bookingService := booking.NewService(rnd, booking.Config{
		Latency: cfg.BookingLatency,
	}, reg)

	var apiMiddleware []echo.MiddlewareFunc
	var closers []func() error
	if cfg.RateLimitEnabled {
		limiter, closer, err := newLimiter(cfg)
		if err != nil {
			slog.Error("failed to init rate limiter", "backend", cfg.RateLimitBackend, "error", err)
			os.Exit(1)
		}
		if closer != nil {
			closers = append(closers, closer)
		}
		apiMiddleware = append(apiMiddleware, ratelimit.Middleware(limiter, reg))
		slog.Info("rate limiting enabled", "backend", cfg.RateLimitBackend, "rps", cfg.RateLimitRPS, "burst", cfg.RateLimitBurst)
	}

	handler.Register(e,
		handler.NewSearchHandler(searchService, resultsService),
		handler.NewBookingHandler(bookingService),
		apiMiddleware...,
	)
	e.GET("/metrics", echo.WrapHandler(reg.Handler()))

	go func() {
		slog.Info("http server listening", "address", cfg.Addr())
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to listen and serve http server", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to close resources", "name", "HTTP Server", "error", err)
	}
	for _, closer := range closers {
		if err := closer(); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "error", err)
		}
	}
	slog.Info("application gracefully shutdown")
}

func newLimiter(cfg *config.Config) (ratelimit.Limiter, func() error, error) {
	if cfg.RateLimitBackend == config.BackendRedis {
		client, err := ratelimit.NewRedisClient(ratelimit.RedisConfig{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, err
		}
		limiter := ratelimit.NewRedisLimiter(client, cfg.RateLimitBurst, cfg.RateLimitWindow)
		return limiter, limiter.Close, nil
	}

	return ratelimit.NewClientLimiter(ratelimit.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}), nil, nil
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"request_id", v.RequestID,
				"remote_ip", v.RemoteIP,
			}
			ctx := c.Request().Context()
			if v.Error != nil {
				slog.ErrorContext(ctx, "request", append(attrs, "error", v.Error)...)
				return nil
			}
			slog.InfoContext(ctx, "request", attrs...)
			return nil
		},
	})
}
