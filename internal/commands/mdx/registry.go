package mdxcmd

import (
	"context"
	"errors"

	"github.com/simonmumina/codingeasypeasy-sub006/internal/commands"
	"github.com/simonmumina/codingeasypeasy-sub006/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CronRegistrar matches the function signature used by go-command registries.
type CronRegistrar func(command.HandlerConfig, any) error

// HandlerSet groups the MDX command handlers produced by RegisterMDXCommands.
type HandlerSet struct {
	Import   *ImportDirectoryHandler
	Sync     *SyncDirectoryHandler
	Validate *ValidateDirectoryHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	importHandlerOpts   []commands.HandlerOption[ImportDirectoryCommand]
	syncHandlerOpts     []commands.HandlerOption[SyncDirectoryCommand]
	validateHandlerOpts []commands.HandlerOption[ValidateDirectoryCommand]
}

// WithImportHandlerOptions forwards options to the ImportDirectoryHandler constructor.
func WithImportHandlerOptions(opts ...commands.HandlerOption[ImportDirectoryCommand]) Option {
	return func(cfg *options) {
		cfg.importHandlerOpts = append(cfg.importHandlerOpts, opts...)
	}
}

// WithSyncHandlerOptions forwards options to the SyncDirectoryHandler constructor.
func WithSyncHandlerOptions(opts ...commands.HandlerOption[SyncDirectoryCommand]) Option {
	return func(cfg *options) {
		cfg.syncHandlerOpts = append(cfg.syncHandlerOpts, opts...)
	}
}

// WithValidateHandlerOptions forwards options to the ValidateDirectoryHandler constructor.
func WithValidateHandlerOptions(opts ...commands.HandlerOption[ValidateDirectoryCommand]) Option {
	return func(cfg *options) {
		cfg.validateHandlerOpts = append(cfg.validateHandlerOpts, opts...)
	}
}

// RegisterMDXCommands builds MDX command handlers and registers them with the provided
// registry. A HandlerSet containing the constructed handlers is returned so callers can
// wire additional integrations (dispatcher, cron) as needed. The validate handler is only
// built when a validator is supplied.
func RegisterMDXCommands(reg CommandRegistry, service interfaces.MDXService, validator DirectoryValidator, provider interfaces.LoggerProvider, gates FeatureGates, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("mdx command registration: service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "mdx")

	set := &HandlerSet{
		Import: NewImportDirectoryHandler(service, logger, gates, cfg.importHandlerOpts...),
		Sync:   NewSyncDirectoryHandler(service, logger, gates, cfg.syncHandlerOpts...),
	}
	if validator != nil {
		set.Validate = NewValidateDirectoryHandler(validator, logger, gates, cfg.validateHandlerOpts...)
	}

	if reg != nil {
		if err := reg.RegisterCommand(set.Import); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(set.Sync); err != nil {
			return nil, err
		}
		if set.Validate != nil {
			if err := reg.RegisterCommand(set.Validate); err != nil {
				return nil, err
			}
		}
	}

	return set, nil
}

// RegisterMDXCron wires the provided sync handler into a cron registrar using the supplied
// command configuration and message payload. The handler is executed with a background context.
func RegisterMDXCron(reg CronRegistrar, handler *SyncDirectoryHandler, cfg command.HandlerConfig, msg SyncDirectoryCommand) error {
	if reg == nil || handler == nil {
		return nil
	}
	return reg(cfg, func() error {
		return handler.Execute(context.Background(), msg)
	})
}
