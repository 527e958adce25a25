package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/xid"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/characterhub/characterhub/client"
	"github.com/characterhub/characterhub/core"
	"github.com/characterhub/characterhub/x/auth"
)

type CustomHandler struct {
	slog.Handler
}

func (h *CustomHandler) Handle(ctx context.Context, r slog.Record) error {

	r.AddAttrs(slog.String("type", "app"))

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(slog.String("traceID", span.SpanContext().TraceID().String()))
		r.AddAttrs(slog.String("spanID", span.SpanContext().SpanID().String()))
	}

	return h.Handler.Handle(ctx, r)
}

var (
	version      = "unknown"
	buildMachine = "unknown"
	buildTime    = "unknown"
	goVersion    = "unknown"
)

func main() {

	handler := &CustomHandler{Handler: slog.NewJSONHandler(os.Stdout, nil)}
	slogger := slog.New(handler)
	slog.SetDefault(slogger)

	slog.Info(fmt.Sprintf("CharacterHub %s starting...", version))

	e := echo.New()
	e.HidePort = true
	e.HideBanner = true

	configPath := os.Getenv("CHARACTERHUB_CONFIG")
	if configPath == "" {
		configPath = "/etc/characterhub/config.yaml"
	}

	config := core.Config{}
	err := config.Load(configPath)
	if err != nil {
		slog.Error(fmt.Sprintf("Failed to load config: %v", err))
		os.Exit(1)
	}

	slog.Info(fmt.Sprintf("Config loaded! Upstream: %s", config.Upstream.APIURL))

	if config.Server.EnableTrace {
		cleanup, err := setupTraceProvider(config.Server.TraceEndpoint, "characterhub/api", version)
		if err != nil {
			panic(err)
		}
		defer cleanup()

		skipper := otelecho.WithSkipper(
			func(c echo.Context) bool {
				return c.Path() == "/metrics" || c.Path() == "/health"
			},
		)
		e.Use(otelecho.Middleware("api", skipper))
	}

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace: "chapi",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return xid.New().String()
		},
	}))

	// proxied answers must never be served from an intermediary cache
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("Cache-Control", "no-store")
			return next(c)
		}
	})

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Server.RedisAddr,
		Password: "",
		DB:       config.Server.RedisDB,
	})
	err = redisotel.InstrumentTracing(
		rdb,
		redisotel.WithAttributes(
			attribute.KeyValue{
				Key:   "db.name",
				Value: attribute.StringValue("redis"),
			},
		),
	)
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	mc := memcache.New(config.Server.MemcachedAddr)
	defer mc.Close()

	upstream := client.NewClient(config.Upstream.APIURL)

	credentialProvider := auth.NewCachedProvider(auth.NewHTTPProvider(config), rdb)
	authService := auth.NewService(credentialProvider, config.Auth.CookieName)

	forwarder := SetupForwarder(upstream)
	characterHandler := SetupCharacterHandler(forwarder)
	roleHandler := SetupRoleHandler(forwarder)
	tagHandler := SetupTagHandler(forwarder)
	notificationHandler := SetupNotificationHandler(forwarder)
	userHandler := SetupUserHandler(forwarder)
	conversationHandler := SetupConversationHandler(forwarder)
	favoriteHandler := SetupFavoriteHandler(forwarder)
	libraryHandler := SetupLibraryHandler(upstream, mc)

	api := e.Group("/api", authService.RequireSession)

	// characters
	api.GET("/characters", characterHandler.List)
	api.POST("/characters", characterHandler.Create)
	api.GET("/characters/:id", characterHandler.Get)
	api.PATCH("/characters/:id", characterHandler.Update)
	api.DELETE("/characters/:id", characterHandler.Delete)
	api.POST("/characters/:id/tags", characterHandler.AttachTag)

	// roles
	api.GET("/characters/roles", roleHandler.List)
	api.POST("/characters/roles", roleHandler.Create)
	api.GET("/characters/roles/:id", roleHandler.Get)
	api.PATCH("/characters/roles/:id", roleHandler.Update)
	api.DELETE("/characters/roles/:id", roleHandler.Delete)

	// tags
	api.GET("/characters/tags", tagHandler.List)
	api.POST("/characters/tags", tagHandler.Create)
	api.GET("/characters/tags/:id", tagHandler.Get)
	api.PATCH("/characters/tags/:id", tagHandler.Update)
	api.DELETE("/characters/tags/:id", tagHandler.Delete)

	// favorites
	api.GET("/characters/favorites", favoriteHandler.List)
	api.GET("/library/characters", libraryHandler.MyCharacters)
	api.GET("/library/favorites", libraryHandler.Favorites)
	api.GET("/favorites", favoriteHandler.List)
	api.POST("/favorites", favoriteHandler.Add)
	api.DELETE("/favorites/:characterID", favoriteHandler.Remove)

	// notifications
	api.GET("/notifications", notificationHandler.List)
	api.POST("/notifications", notificationHandler.Create)
	api.GET("/notifications/:id", notificationHandler.Get)
	api.PATCH("/notifications/:id", notificationHandler.Update)
	api.DELETE("/notifications/:id", notificationHandler.Delete)

	// users
	api.GET("/users/:id", userHandler.Get)
	api.PATCH("/users/:id", userHandler.Update)
	api.DELETE("/users/:id", userHandler.Delete)

	// conversations
	api.GET("/conversations/:id/participants", conversationHandler.ListParticipants)
	api.POST("/conversations/:id/participants", conversationHandler.AddParticipant)

	e.GET("/health", func(c echo.Context) (err error) {
		ctx := c.Request().Context()

		err = rdb.Ping(ctx).Err()
		if err != nil {
			return c.String(http.StatusInternalServerError, "redis error")
		}

		return c.String(http.StatusOK, "ok")
	})

	e.GET("/metrics", echoprometheus.NewHandler())

	addr := config.Server.Addr
	if addr == "" {
		addr = ":8000"
	}
	e.Logger.Fatal(e.Start(addr))
}

func setupTraceProvider(endpoint string, serviceName string, serviceVersion string) (func(), error) {

	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)

	if err != nil {
		return nil, err
	}

	resource := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(serviceVersion),
	)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource),
	)
	otel.SetTracerProvider(tracerProvider)

	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagator)

	cleanup := func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			slog.Error(fmt.Sprintf("Failed to shutdown tracer provider: %v", err))
		}
	}
	return cleanup, nil
}
