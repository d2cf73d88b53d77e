package bootstrap

import (
	"fmt"
	"strings"

	corpus "github.com/simonmumina/codingeasypeasy-sub006"
	mdxcmd "github.com/simonmumina/codingeasypeasy-sub006/internal/commands/mdx"
	"github.com/simonmumina/codingeasypeasy-sub006/internal/di"
	"github.com/simonmumina/codingeasypeasy-sub006/internal/logging"
	"github.com/simonmumina/codingeasypeasy-sub006/pkg/interfaces"
)

// Options captures configuration for corpus CLI bootstraps.
type Options struct {
	ContentDir     string
	Pattern        string
	Recursive      bool
	StorageDriver  string
	StorageDSN     string
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the corpus module with the services the CLIs operate on.
type Module struct {
	Module    *corpus.Module
	Service   interfaces.MDXService
	Validator mdxcmd.DirectoryValidator
	Logger    interfaces.Logger
}

// BuildModule constructs a corpus module configured for CLI operations.
func BuildModule(opts Options) (*Module, error) {
	cfg := corpus.DefaultConfig()
	cfg.Features.MDX = true
	cfg.MDX.Enabled = true
	cfg.MDX.ContentDir = strings.TrimSpace(opts.ContentDir)
	if cfg.MDX.ContentDir == "" {
		cfg.MDX.ContentDir = "content"
	}
	if trimmed := strings.TrimSpace(opts.Pattern); trimmed != "" {
		cfg.MDX.Pattern = trimmed
	}
	cfg.MDX.Recursive = opts.Recursive

	if driver := strings.TrimSpace(opts.StorageDriver); driver != "" {
		cfg.Storage.Driver = driver
		cfg.Storage.DSN = strings.TrimSpace(opts.StorageDSN)
	}

	diOpts := []di.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := corpus.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise corpus module: %w", err)
	}

	service := module.MDX()
	if service == nil {
		return nil, fmt.Errorf("mdx service not configured; ensure mdx feature is enabled")
	}

	logger := logging.MDXLogger(module.Container().LoggerProvider())

	built := &Module{
		Module:  module,
		Service: service,
		Logger:  logger,
	}
	if validator := module.Validator(); validator != nil {
		built.Validator = validator
	}
	return built, nil
}
