package corpus

import (
	"github.com/simonmumina/codingeasypeasy-sub006/articles"
	mdxcmd "github.com/simonmumina/codingeasypeasy-sub006/internal/commands/mdx"
	"github.com/simonmumina/codingeasypeasy-sub006/internal/di"
	"github.com/simonmumina/codingeasypeasy-sub006/internal/index"
	"github.com/simonmumina/codingeasypeasy-sub006/internal/validation"
	"github.com/simonmumina/codingeasypeasy-sub006/pkg/interfaces"
)

// ArticleService exports the article service contract for consumers of the corpus package.
type ArticleService = articles.Service

// MDXService exports the MDX pipeline contract.
type MDXService = interfaces.MDXService

// MDXParser exports the body rendering contract.
type MDXParser = interfaces.MDXParser

// ContractValidator exports the content contract validator.
type ContractValidator = validation.ContractValidator

// ValidationReport exports the aggregated validation result type.
type ValidationReport = validation.Report

// DirectoryOptions exports the directory validation options.
type DirectoryOptions = validation.DirectoryOptions

// IndexBuilder exports the read-side index builder.
type IndexBuilder = index.Builder

// CommandRegistry exports the registration contract for command wiring.
type CommandRegistry = mdxcmd.CommandRegistry

// CommandHandlerSet exports the MDX command handler bundle.
type CommandHandlerSet = mdxcmd.HandlerSet

// Module represents the top level corpus runtime façade: article records,
// the MDX import pipeline, contract validation, and the derived indexes.
type Module struct {
	container *di.Container
}

// New constructs a corpus module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Articles returns the configured article service.
func (m *Module) Articles() ArticleService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.ArticleService()
}

// MDX returns the configured MDX service. Nil when the feature is disabled.
func (m *Module) MDX() MDXService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.MDXService()
}

// Validator returns the content contract validator.
func (m *Module) Validator() *ContractValidator {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Validator()
}

// Index returns the read-side index builder.
func (m *Module) Index() *IndexBuilder {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.IndexBuilder()
}

// RegisterCommands wires the MDX command handlers into the supplied registry.
func (m *Module) RegisterCommands(reg CommandRegistry, opts ...mdxcmd.Option) (*CommandHandlerSet, error) {
	return m.container.RegisterCommands(reg, opts...)
}
