package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"storefront/cache"
	"storefront/config"
	"storefront/handlers"
	middleware "storefront/middlewares"
	"storefront/rpc"
	"storefront/search"
	"storefront/store"
	"storefront/telemetry"

	"github.com/alecthomas/kong"
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Version is set via ldflags during build
var Version = "dev"

var CLI struct {
	Serve   ServeCmd   `cmd:"" help:"Start the storefront server" default:"1"`
	Seed    SeedCmd    `cmd:"" help:"Populate the database with demo data"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type ServeCmd struct {
	DatabaseURL string `help:"PostgreSQL connection string (overrides DATABASE_URL env var)" env:"DATABASE_URL"`
	Port        string `help:"HTTP listen port (overrides PORT env var)" env:"PORT"`
}

func (s *ServeCmd) Run() error {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	if s.DatabaseURL != "" {
		cfg.DatabaseURL = s.DatabaseURL
	}
	if s.Port != "" {
		cfg.Port = s.Port
	}

	zapLogger, err := newLogger(cfg)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	peers := rpc.ResolvePeers(cfg.PeerServices, cfg.ServiceName)
	zapLogger.Info("Starting storefront",
		zap.String("port", cfg.Port),
		zap.String("service", cfg.ServiceName),
		zap.Strings("peers", peerNames(peers)),
		zap.Float64("dt_probability", cfg.Probability()),
	)

	ctx := context.Background()

	tracerProvider, err := telemetry.Init(cfg.ServiceName, cfg.Environment, cfg.OTLPEndpoint)
	if err != nil {
		log.Fatal("Failed to initialize tracing:", err)
	}
	if tracerProvider != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			tracerProvider.Shutdown(shutdownCtx)
		}()
	}

	shopStore := store.New(store.Config{DatabaseURL: cfg.DatabaseURL}, zapLogger)
	if err := shopStore.Connect(ctx); err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer shopStore.Close()

	if err := shopStore.EnsureSchema(ctx); err != nil {
		zapLogger.Fatal("Failed to ensure schema", zap.Error(err))
	}

	productIndex, err := search.NewProductIndex(zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to create product index", zap.Error(err))
	}
	defer productIndex.Close()
	if err := rebuildProductIndex(ctx, shopStore, productIndex); err != nil {
		zapLogger.Warn("Failed to build product index", zap.Error(err))
	}

	var statsCache *cache.Cache
	if cfg.CacheEnabled() {
		statsCache, err = cache.New(ctx, cfg.RedisAddr, cfg.ServiceName, zapLogger)
		if err != nil {
			zapLogger.Warn("Stats cache disabled", zap.Error(err))
			statsCache = nil
		} else {
			defer statsCache.Close()
		}
	}

	return startServer(cfg, zapLogger, shopStore, productIndex, statsCache, peers)
}

type SeedCmd struct {
	DatabaseURL string `help:"PostgreSQL connection string (overrides DATABASE_URL env var)" env:"DATABASE_URL"`
	Count       int    `help:"Number of products and customers to generate" default:"100"`
}

func (s *SeedCmd) Run() error {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if s.DatabaseURL != "" {
		cfg.DatabaseURL = s.DatabaseURL
	}

	zapLogger, err := newLogger(cfg)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	ctx := context.Background()
	shopStore := store.New(store.Config{DatabaseURL: cfg.DatabaseURL}, zapLogger)
	if err := shopStore.Connect(ctx); err != nil {
		return err
	}
	defer shopStore.Close()

	if err := shopStore.EnsureSchema(ctx); err != nil {
		return err
	}
	return shopStore.Seed(ctx, s.Count)
}

type VersionCmd struct{}

func (v *VersionCmd) Run() error {
	fmt.Printf("storefront %s\n", Version)
	return nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LogLevel == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func peerNames(peers []rpc.Peer) []string {
	names := make([]string, len(peers))
	for i, p := range peers {
		names[i] = string(p)
	}
	return names
}

func rebuildProductIndex(ctx context.Context, shopStore *store.Store, index *search.ProductIndex) error {
	products, err := shopStore.ListProducts(ctx)
	if err != nil {
		return err
	}
	descriptions, err := shopStore.ProductDescriptions(ctx)
	if err != nil {
		return err
	}
	return index.Reindex(products, descriptions)
}

func startServer(cfg *config.Config, zapLogger *zap.Logger, shopStore *store.Store,
	productIndex *search.ProductIndex, statsCache *cache.Cache, peers []rpc.Peer) error {

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			zapLogger.Error("Request error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
			)
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})

	// Middleware
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(telemetry.Middleware(cfg.ServiceName))

	// Inject handler context middleware
	app.Use(func(c *fiber.Ctx) error {
		handlers.SetContext(c, &handlers.HandlerContext{
			Store:  shopStore,
			Search: productIndex,
			Cache:  statsCache,
			Config: cfg,
			Logger: zapLogger,
		})
		return c.Next()
	})

	// Prometheus metrics
	prometheus := fiberprometheus.New(cfg.ServiceName)
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Probabilistic forwarding to sibling services, applied explicitly to
	// the read routes that are eligible for it
	policy := rpc.NewPolicy(peers, cfg.Probability(), zapLogger)
	peerClient := rpc.NewHTTPPeerClient(cfg.PeerPort, zapLogger)
	fw := middleware.Forwarding(policy, peerClient, zapLogger)

	app.Get("/health", handlers.Health)
	app.Get("/rum_config.js", handlers.RUMConfig)
	app.Get("/oopsie", handlers.Oopsie)

	api := app.Group("/api")
	{
		api.Get("/stats", fw, handlers.Stats)

		api.Get("/products", fw, handlers.Products)
		api.Get("/products/top", fw, handlers.TopProducts)
		api.Get("/products/search", fw, handlers.SearchProducts)
		api.Get("/products/:id", fw, handlers.Product)
		api.Get("/products/:id/customers", fw, handlers.ProductCustomers)

		api.Get("/types", fw, handlers.ProductTypes)
		api.Get("/types/:id", fw, handlers.ProductType)

		api.Get("/customers", fw, handlers.Customers)
		api.Get("/customers/:id", fw, handlers.Customer)

		api.Get("/orders", handlers.Orders)
		api.Get("/orders/:id", handlers.Order)
		api.Post("/orders", handlers.PostOrder)
		api.Post("/orders/csv", handlers.PostOrderBulk)
	}

	// Start server
	zapLogger.Info("Server starting", zap.String("address", ":"+cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
		return err
	}
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("storefront"),
		kong.Description("A demo e-commerce backend with probabilistic peer forwarding"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
