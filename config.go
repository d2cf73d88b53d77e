package corpus

import "github.com/simonmumina/codingeasypeasy-sub006/internal/runtimeconfig"

var (
	ErrMDXContentDirRequired   = runtimeconfig.ErrMDXContentDirRequired
	ErrMDXFeatureRequired      = runtimeconfig.ErrMDXFeatureRequired
	ErrStorageDriverUnknown    = runtimeconfig.ErrStorageDriverUnknown
	ErrStorageDSNRequired      = runtimeconfig.ErrStorageDSNRequired
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
	ErrIndexRouteGroupRequired = runtimeconfig.ErrIndexRouteGroupRequired
)

type (
	Config               = runtimeconfig.Config
	MDXConfig            = runtimeconfig.MDXConfig
	ParserConfig         = runtimeconfig.ParserConfig
	StorageConfig        = runtimeconfig.StorageConfig
	CacheConfig          = runtimeconfig.CacheConfig
	IndexConfig          = runtimeconfig.IndexConfig
	URLKitResolverConfig = runtimeconfig.URLKitResolverConfig
	Features             = runtimeconfig.Features
	LoggingConfig        = runtimeconfig.LoggingConfig
)

// DefaultConfig returns opinionated defaults for a filesystem-backed corpus.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
