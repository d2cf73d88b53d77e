package di

import (
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	urlkit "github.com/goliatone/go-urlkit"
	"github.com/uptrace/bun"

	pubarticles "github.com/simonmumina/codingeasypeasy-sub006/articles"
	internalarticles "github.com/simonmumina/codingeasypeasy-sub006/internal/articles"
	mdxcmd "github.com/simonmumina/codingeasypeasy-sub006/internal/commands/mdx"
	"github.com/simonmumina/codingeasypeasy-sub006/internal/index"
	"github.com/simonmumina/codingeasypeasy-sub006/internal/logging"
	"github.com/simonmumina/codingeasypeasy-sub006/internal/logging/gologger"
	"github.com/simonmumina/codingeasypeasy-sub006/internal/mdx"
	"github.com/simonmumina/codingeasypeasy-sub006/internal/runtimeconfig"
	"github.com/simonmumina/codingeasypeasy-sub006/internal/storage"
	"github.com/simonmumina/codingeasypeasy-sub006/internal/validation"
	"github.com/simonmumina/codingeasypeasy-sub006/pkg/interfaces"
)

// Container wires module dependencies from configuration. Constructing one
// resolves storage, logging, the article service, the MDX pipeline, the
// contract validator, and the index builder so hosts only hold a single
// value.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider

	bunDB         *bun.DB
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	articleRepo internalarticles.Repository
	articleSvc  pubarticles.Service
	articlePort interfaces.ArticleService

	mdxSvc    interfaces.MDXService
	validator *validation.ContractValidator

	routeManager *urlkit.RouteManager
	urlResolver  *index.URLResolver
	indexBuilder *index.Builder
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB injects an externally managed database handle. The configured
// storage driver is ignored when set.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the default repository cache bindings.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider overrides the provider derived from the logging config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithArticleRepository overrides the storage-derived article repository.
func WithArticleRepository(repo internalarticles.Repository) Option {
	return func(c *Container) {
		c.articleRepo = repo
	}
}

// WithArticleService overrides the default article service binding.
func WithArticleService(svc pubarticles.Service) Option {
	return func(c *Container) {
		c.articleSvc = svc
	}
}

// WithMDXService overrides the default MDX service binding.
func WithMDXService(svc interfaces.MDXService) Option {
	return func(c *Container) {
		c.mdxSvc = svc
	}
}

// New creates a container with the provided configuration.
func New(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:   cfg,
		cacheTTL: cacheTTL,
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	if err := c.configureStorage(); err != nil {
		return nil, err
	}
	c.configureCacheDefaults()
	c.configureArticles()
	if err := c.configureValidator(); err != nil {
		return nil, err
	}
	if err := c.configureMDX(); err != nil {
		return nil, err
	}
	c.configureIndex()

	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}
	if c.Config.Logging.Provider != "gologger" {
		return nil
	}
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.Config.Logging.Level,
		Format:    c.Config.Logging.Format,
		AddSource: c.Config.Logging.AddSource,
		Focus:     c.Config.Logging.Focus,
	})
	if err != nil {
		return err
	}
	c.loggerProvider = provider
	return nil
}

func (c *Container) configureStorage() error {
	if c.bunDB != nil {
		return nil
	}
	db, err := storage.Open(c.Config.Storage.Driver, c.Config.Storage.DSN)
	if err != nil {
		return err
	}
	c.bunDB = db
	return nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cacheCfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cacheCfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cacheCfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureArticles() {
	if c.articleRepo == nil {
		if c.bunDB != nil {
			c.articleRepo = internalarticles.NewBunArticleRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		} else {
			c.articleRepo = internalarticles.NewMemoryArticleRepository()
		}
	}

	if c.articleSvc == nil {
		c.articleSvc = internalarticles.NewService(
			c.articleRepo,
			internalarticles.WithLogger(logging.ArticlesLogger(c.loggerProvider)),
		)
	}

	c.articlePort = newArticleServiceAdapter(c.articleSvc)
}

func (c *Container) configureValidator() error {
	validator, err := validation.NewContractValidator(
		validation.WithValidatorLogger(logging.ValidationLogger(c.loggerProvider)),
	)
	if err != nil {
		return err
	}
	c.validator = validator
	return nil
}

func (c *Container) configureMDX() error {
	if c.mdxSvc != nil {
		return nil
	}
	if !c.Config.Features.MDX || !c.Config.MDX.Enabled {
		return nil
	}

	importer := mdx.NewImporter(mdx.ImporterConfig{
		Articles: c.articlePort,
		Logger:   logging.MDXLogger(c.loggerProvider),
	})

	svc, err := mdx.NewService(mdx.Config{
		BasePath:  c.Config.MDX.ContentDir,
		Pattern:   c.Config.MDX.Pattern,
		Recursive: c.Config.MDX.Recursive,
		Parser: interfaces.ParseOptions{
			Extensions: c.Config.MDX.Parser.Extensions,
			Sanitize:   c.Config.MDX.Parser.Sanitize,
			HardWraps:  c.Config.MDX.Parser.HardWraps,
			SafeMode:   c.Config.MDX.Parser.SafeMode,
		},
	}, nil, importer)
	if err != nil {
		return err
	}
	c.mdxSvc = svc
	return nil
}

func (c *Container) configureIndex() {
	if c.Config.Index.RouteConfig != nil {
		c.routeManager = urlkit.NewRouteManager(c.Config.Index.RouteConfig)
	}

	c.urlResolver = index.NewURLResolver(index.URLResolverConfig{
		Manager:     c.routeManager,
		Group:       c.Config.Index.URLKit.Group,
		PostRoute:   c.Config.Index.URLKit.PostRoute,
		TagRoute:    c.Config.Index.URLKit.TagRoute,
		AuthorRoute: c.Config.Index.URLKit.AuthorRoute,
		SlugParam:   c.Config.Index.URLKit.SlugParam,
		TagParam:    c.Config.Index.URLKit.TagParam,
		AuthorParam: c.Config.Index.URLKit.AuthorParam,
	})

	c.indexBuilder = index.NewBuilder(index.BuilderConfig{
		Articles:  c.articleSvc,
		URLs:      c.urlResolver,
		Logger:    logging.IndexLogger(c.loggerProvider),
		FeedTitle: c.Config.Index.FeedTitle,
	})
}

// RegisterCommands builds the MDX command handlers and registers them with
// the supplied registry. Passing a nil registry returns the handlers without
// registering them.
func (c *Container) RegisterCommands(reg mdxcmd.CommandRegistry, opts ...mdxcmd.Option) (*mdxcmd.HandlerSet, error) {
	gates := mdxcmd.FeatureGates{
		MDXEnabled: func() bool { return c.Config.Features.MDX },
	}
	return mdxcmd.RegisterMDXCommands(reg, c.MDXService(), c.validator, c.loggerProvider, gates, opts...)
}

// LoggerProvider exposes the configured logging provider, which may be nil.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// DB exposes the database handle. Nil when the memory driver is active.
func (c *Container) DB() *bun.DB {
	return c.bunDB
}

// ArticleRepository exposes the configured article repository.
func (c *Container) ArticleRepository() internalarticles.Repository {
	return c.articleRepo
}

// ArticleService returns the configured article service.
func (c *Container) ArticleService() pubarticles.Service {
	return c.articleSvc
}

// ArticlePort returns the article service behind the stable interfaces contract.
func (c *Container) ArticlePort() interfaces.ArticleService {
	return c.articlePort
}

// MDXService returns the configured MDX service. Nil when the feature is disabled.
func (c *Container) MDXService() interfaces.MDXService {
	return c.mdxSvc
}

// Validator returns the content contract validator.
func (c *Container) Validator() *validation.ContractValidator {
	return c.validator
}

// RouteManager exposes the urlkit route manager when routes are configured.
func (c *Container) RouteManager() *urlkit.RouteManager {
	return c.routeManager
}

// URLResolver exposes the index URL resolver.
func (c *Container) URLResolver() *index.URLResolver {
	return c.urlResolver
}

// IndexBuilder returns the read-side index builder.
func (c *Container) IndexBuilder() *index.Builder {
	return c.indexBuilder
}
