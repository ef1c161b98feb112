package protocal

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"whatsapp-leadbot/configs"
	httpAdapter "whatsapp-leadbot/internal/adapters/input/http"
	fileAdapter "whatsapp-leadbot/internal/adapters/output/file"
	"whatsapp-leadbot/internal/adapters/output/memory"
	"whatsapp-leadbot/internal/adapters/output/postgres"
	redisAdapter "whatsapp-leadbot/internal/adapters/output/redis"
	whatsappAdapter "whatsapp-leadbot/internal/adapters/output/whatsapp"
	"whatsapp-leadbot/internal/application"
	"whatsapp-leadbot/internal/domain"
	"whatsapp-leadbot/internal/ports/output"
	"whatsapp-leadbot/pkg/database_driver/gorm"
	"whatsapp-leadbot/pkg/metrics"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type config struct {
	ENV string `mapstructure:"env"`
}

const (
	sessionDriverMemory = "memory"
	sessionDriverRedis  = "redis"
	catalogSourceFile   = "file"
	catalogSourcePG     = "postgres"
)

// ServeHTTP func
func ServeHTTP() error {
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	conf := configs.GetViper()
	logrus.Info(conf.Env)
	if conf.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	metrics.MustRegister()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Postgres is needed for leads and, optionally, the catalog
	dbConGorm, err := gorm.ConnectToPostgreSQL(conf.Postgres)
	if err != nil {
		return err
	}
	defer gorm.DisconnectPostgres(dbConGorm.Postgres)

	// Wire up the hexagonal architecture layers
	// Output adapters
	leadRepo := postgres.NewLeadRepository(dbConGorm.Postgres)

	catalog, err := loadCatalog(ctx, conf.Catalog, postgres.NewCatalogRepository(dbConGorm.Postgres))
	if err != nil {
		return err
	}
	images := domain.NewProductImages(catalogImages(conf.Catalog.Images))

	sessionStore, closeSessions, err := newSessionStore(ctx, conf.Session, conf.Redis)
	if err != nil {
		return err
	}
	defer closeSessions()

	whatsAppClient, err := whatsappAdapter.NewWhatsAppClientAdapter(conf.WhatsApp)
	if err != nil {
		return fmt.Errorf("failed to create WhatsApp client: %w", err)
	}

	// Application services (use cases)
	conversationSrv := application.NewConversationService(
		whatsAppClient,
		sessionStore,
		leadRepo,
		catalog,
		images,
		application.TemplateConfig{
			LanguageCode:    conf.WhatsApp.LanguageCode,
			WelcomeTemplate: conf.WhatsApp.WelcomeTemplate,
			ProductTemplate: conf.WhatsApp.ProductTemplate,
		},
	)
	leadSrv := application.NewLeadService(leadRepo)
	catalogSrv := application.NewCatalogService(catalog, images)

	// Input adapters (HTTP handlers)
	hdl := httpAdapter.New(leadSrv, catalogSrv, dbConGorm.Postgres)
	webhookHdl := httpAdapter.NewWhatsAppWebhookHandler(conversationSrv, conf.WhatsApp.VerifyToken)

	app := fiber.New(fiber.Config{DisableStartupMessage: !conf.App.Debug})
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))
	app.Get("/swagger/*", swagger.HandlerDefault) // default
	app.Get("/health", hdl.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	magnolia := app.Group("/v1/api")
	{
		magnolia.Get("/leads", hdl.GetLeads)
		magnolia.Get("/products", hdl.GetProducts)
	}

	// WhatsApp webhook endpoints
	webhook := app.Group("/webhook")
	{
		webhook.Get("", webhookHdl.VerifyWebhook)
		webhook.Post("", webhookHdl.HandleWebhook)
	}
	app.Get("/", webhookHdl.VerifyWebhook)
	app.Post("/", webhookHdl.LogWebhook)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logrus.Println("Listerning on port: ", conf.App.Port)
		return app.Listen(":" + conf.App.Port)
	})
	g.Go(func() error {
		<-gctx.Done()
		logrus.Println("Gracefull shut down ...")
		return app.Shutdown()
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// loadCatalog reads products from the configured source. An empty catalog
// is fatal: the product menu cannot work without items.
func loadCatalog(ctx context.Context, cfg configs.Catalog, repo *postgres.CatalogRepository) (*domain.Catalog, error) {
	var source output.CatalogSource
	switch cfg.Source {
	case catalogSourceFile:
		source = fileAdapter.NewCatalogSource(cfg.Path)
	case catalogSourcePG, "":
		if cfg.Path != "" {
			seed, err := fileAdapter.NewCatalogSource(cfg.Path).LoadCatalog(ctx)
			if err != nil {
				return nil, err
			}
			n, err := repo.SeedIfEmpty(ctx, seed)
			if err != nil {
				return nil, fmt.Errorf("failed to seed products: %w", err)
			}
			if n > 0 {
				logrus.Infof("Seeded %d products from %s", n, cfg.Path)
			}
		}
		source = repo
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}

	products, err := source.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	catalog, err := domain.NewCatalog(products)
	if err != nil {
		return nil, err
	}
	logrus.Infof("Loaded %d products from %s.", catalog.Len(), cfg.Source)
	return catalog, nil
}

func catalogImages(cfg []configs.CatalogImage) []domain.ProductImage {
	images := make([]domain.ProductImage, 0, len(cfg))
	for _, img := range cfg {
		images = append(images, domain.ProductImage{Name: img.Name, URL: img.URL})
	}
	return images
}

// newSessionStore builds the configured session store and its cleanup func
func newSessionStore(ctx context.Context, session configs.Session, redisCfg configs.Redis) (output.SessionStore, func(), error) {
	switch session.Driver {
	case sessionDriverMemory, "":
		return memory.NewMemorySessionStore(), func() {}, nil
	case sessionDriverRedis:
		client, err := redisAdapter.NewClient(ctx, redisCfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		logrus.Infof("Session store: redis at %s", redisCfg.Addr)
		closeFn := func() {
			if err := client.Close(); err != nil {
				logrus.Error(err)
			}
		}
		return redisAdapter.NewRedisSessionStore(client, session.KeyPrefix), closeFn, nil
	default:
		return nil, nil, fmt.Errorf("unknown session driver %q", session.Driver)
	}
}
