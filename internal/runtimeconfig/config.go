package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
)

// ErrMDXContentDirRequired flags an enabled corpus without a content root.
var ErrMDXContentDirRequired = errors.New("corpus config: content directory is required when mdx is enabled")

// ErrMDXFeatureRequired keeps the MDX config behind its feature flag.
var ErrMDXFeatureRequired = errors.New("corpus config: mdx feature must be enabled to configure mdx")

// ErrStorageDriverUnknown rejects storage drivers no adapter exists for.
var ErrStorageDriverUnknown = errors.New("corpus config: storage driver is invalid")
var ErrStorageDSNRequired = errors.New("corpus config: storage dsn is required for database drivers")
var ErrLoggingProviderRequired = errors.New("corpus config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("corpus config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("corpus config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("corpus config: logging format is invalid")
var ErrIndexRouteGroupRequired = errors.New("corpus config: index route group is required when routes are configured")

// Config aggregates feature flags and adapter bindings for the corpus module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled  bool
	MDX      MDXConfig
	Storage  StorageConfig
	Cache    CacheConfig
	Index    IndexConfig
	Features Features
	Logging  LoggingConfig
}

// MDXConfig captures filesystem and parser behaviour for corpus ingestion.
type MDXConfig struct {
	Enabled    bool
	ContentDir string
	Pattern    string
	Recursive  bool
	Parser     ParserConfig
}

// ParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type ParserConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// StorageConfig selects the article store backing.
type StorageConfig struct {
	// Driver is one of "memory", "sqlite", "postgres".
	Driver string
	DSN    string
}

// CacheConfig captures repository cache behaviour toggles.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// IndexConfig captures routing configuration for index entry URL resolution.
type IndexConfig struct {
	RouteConfig *urlkit.Config
	URLKit      URLKitResolverConfig
	FeedTitle   string
}

// URLKitResolverConfig configures the go-urlkit based resolver.
type URLKitResolverConfig struct {
	Group       string
	PostRoute   string
	TagRoute    string
	AuthorRoute string
	SlugParam   string
	TagParam    string
	AuthorParam string
}

// Features toggles module functionality.
type Features struct {
	MDX    bool
	Logger bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for a filesystem-backed corpus.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		MDX: MDXConfig{
			ContentDir: "content",
			Pattern:    "*.mdx",
			Recursive:  true,
		},
		Storage: StorageConfig{
			Driver: "memory",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Index: IndexConfig{
			URLKit: URLKitResolverConfig{
				Group:       "site",
				PostRoute:   "post",
				TagRoute:    "tag",
				AuthorRoute: "author",
				SlugParam:   "slug",
				TagParam:    "tag",
				AuthorParam: "author",
			},
		},
		Features: Features{},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if cfg.MDX.Enabled {
		if !cfg.Features.MDX {
			return ErrMDXFeatureRequired
		}
		if strings.TrimSpace(cfg.MDX.ContentDir) == "" {
			return ErrMDXContentDirRequired
		}
	}
	switch normalizeDriver(cfg.Storage.Driver) {
	case "", "memory":
	case "sqlite", "postgres":
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	default:
		return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, cfg.Storage.Driver)
	}
	if cfg.Index.RouteConfig != nil {
		if strings.TrimSpace(cfg.Index.URLKit.Group) == "" {
			return ErrIndexRouteGroupRequired
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeDriver(driver string) string {
	return strings.ToLower(strings.TrimSpace(driver))
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "gologger", "noop":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
