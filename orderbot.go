package orderbot

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/weikanglim/OrderBot/internal/config"
	"github.com/weikanglim/OrderBot/internal/logging"
	"github.com/weikanglim/OrderBot/pkg/adapters/catalog"
	"github.com/weikanglim/OrderBot/pkg/adapters/memory"
	"github.com/weikanglim/OrderBot/pkg/adapters/nlu"
	redisstore "github.com/weikanglim/OrderBot/pkg/adapters/redis"
	"github.com/weikanglim/OrderBot/pkg/bot"
	"github.com/weikanglim/OrderBot/pkg/domain"
	"github.com/weikanglim/OrderBot/pkg/observability"
	"github.com/weikanglim/OrderBot/pkg/ports"
)

// Version is the release version of the module.
var Version = "0.1.0"

// App is the high-level entry point: the bot plus the collaborators built
// from configuration. Transports (HTTP, MCP, CLI) are layered on top of it.
type App struct {
	Bot      *bot.Bot
	Store    ports.StateStore
	Catalog  ports.Catalog
	Metrics  *observability.Metrics
	Registry *prometheus.Registry

	logger *slog.Logger
}

// Option defines a functional option for configuring the App.
type Option func(*App)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithStore injects a state store, bypassing the configured backend.
func WithStore(store ports.StateStore) Option {
	return func(a *App) {
		a.Store = store
	}
}

// WithCatalog injects a product catalog, bypassing the configured products.
func WithCatalog(c ports.Catalog) Option {
	return func(a *App) {
		a.Catalog = c
	}
}

// New builds the application from configuration. A nil cfg uses defaults:
// in-memory store, local keyword recognizer, built-in menu.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &App{
		Registry: prometheus.NewRegistry(),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(app)
	}

	if app.Catalog == nil {
		app.Catalog = catalog.NewStatic(productsFromConfig(cfg)...)
	}

	if app.Store == nil {
		store, err := buildStore(cfg.Store)
		if err != nil {
			return nil, err
		}
		app.Store = store
	}

	recognizer, err := buildRecognizer(cfg.Recognizer, app.Catalog)
	if err != nil {
		return nil, err
	}

	app.Metrics = observability.NewMetrics(app.Registry)

	app.Bot, err = bot.New(app.Store, app.Catalog, recognizer,
		bot.WithLogger(app.logger),
		bot.WithMetrics(app.Metrics),
	)
	if err != nil {
		return nil, err
	}
	return app, nil
}

func buildStore(cfg config.StoreConfig) (ports.StateStore, error) {
	switch cfg.Backend {
	case config.StoreMemory:
		return memory.NewStore(), nil

	case config.StoreRedis:
		ttl, err := cfg.TTLDuration()
		if err != nil {
			return nil, err
		}
		var opts []redisstore.Option
		if cfg.Prefix != "" {
			opts = append(opts, redisstore.WithPrefix(cfg.Prefix))
		}
		if ttl > 0 {
			opts = append(opts, redisstore.WithTTL(ttl))
		}
		return redisstore.New(cfg.Address, cfg.Password, cfg.DB, opts...), nil

	default:
		return nil, fmt.Errorf("unknown store backend %q: %w", cfg.Backend, domain.ErrConfiguration)
	}
}

func buildRecognizer(cfg config.RecognizerConfig, c ports.Catalog) (ports.Recognizer, error) {
	switch cfg.Kind {
	case config.RecognizerKeyword:
		return nlu.NewKeyword(c), nil

	case config.RecognizerHTTP:
		var opts []nlu.ClientOption
		if cfg.Key != "" {
			opts = append(opts, nlu.WithKey(cfg.Key))
		}
		return nlu.NewClient(cfg.Endpoint, opts...), nil

	default:
		return nil, fmt.Errorf("unknown recognizer kind %q: %w", cfg.Kind, domain.ErrConfiguration)
	}
}

func productsFromConfig(cfg *config.Config) []domain.Product {
	products := make([]domain.Product, 0, len(cfg.Products))
	for _, p := range cfg.Products {
		products = append(products, domain.Product{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
		})
	}
	return products
}
