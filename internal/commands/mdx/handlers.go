package mdxcmd

import (
	"context"
	"errors"

	"github.com/simonmumina/codingeasypeasy-sub006/internal/commands"
	"github.com/simonmumina/codingeasypeasy-sub006/internal/logging"
	"github.com/simonmumina/codingeasypeasy-sub006/internal/validation"
	"github.com/simonmumina/codingeasypeasy-sub006/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const (
	importOperation   = "mdx.import_directory"
	syncOperation     = "mdx.sync_directory"
	validateOperation = "mdx.validate_directory"
)

var (
	// ErrMDXFeatureDisabled is returned when the MDX feature flag is disabled at runtime.
	ErrMDXFeatureDisabled = errors.New("mdx command: feature disabled")
)

var (
	_ command.Commander[ImportDirectoryCommand]   = (*ImportDirectoryHandler)(nil)
	_ command.Commander[SyncDirectoryCommand]     = (*SyncDirectoryHandler)(nil)
	_ command.Commander[ValidateDirectoryCommand] = (*ValidateDirectoryHandler)(nil)
)

// DirectoryValidator is the subset of the contract validator the validate
// command needs, kept as an interface so tests can substitute their own.
type DirectoryValidator interface {
	ValidateDirectory(ctx context.Context, dir string, opts validation.DirectoryOptions) (*validation.Report, error)
}

// ImportDirectoryHandler orchestrates MDX directory imports via the shared command handler foundation.
type ImportDirectoryHandler struct {
	inner *commands.Handler[ImportDirectoryCommand]
}

// NewImportDirectoryHandler creates a handler bound to the supplied MDX service.
func NewImportDirectoryHandler(service interfaces.MDXService, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[ImportDirectoryCommand]) *ImportDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ImportDirectoryCommand) error {
		if !gates.mdxEnabled() {
			return ErrMDXFeatureDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := service.ImportDirectory(ctx, msg.Directory, interfaces.ImportOptions{
			DryRun:        msg.DryRun,
			IncludeDrafts: msg.IncludeDrafts,
		})
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"created_count": len(result.CreatedArticleIDs),
				"updated_count": len(result.UpdatedArticleIDs),
				"skipped_count": len(result.SkippedArticleIDs),
				"error_count":   len(result.Errors),
				"dry_run":       msg.DryRun,
			}).Info("mdx.command.import_directory.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ImportDirectoryCommand]{
		commands.WithLogger[ImportDirectoryCommand](baseLogger),
		commands.WithOperation[ImportDirectoryCommand](importOperation),
		commands.WithMessageFields(func(msg ImportDirectoryCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			if msg.IncludeDrafts != nil {
				fields["include_drafts"] = *msg.IncludeDrafts
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ImportDirectoryCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ImportDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ImportDirectoryCommand].
func (h *ImportDirectoryHandler) Execute(ctx context.Context, msg ImportDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// SyncDirectoryHandler orchestrates MDX sync workflows via the shared command handler foundation.
type SyncDirectoryHandler struct {
	inner *commands.Handler[SyncDirectoryCommand]
}

// NewSyncDirectoryHandler creates a handler bound to the supplied MDX service.
func NewSyncDirectoryHandler(service interfaces.MDXService, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[SyncDirectoryCommand]) *SyncDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg SyncDirectoryCommand) error {
		if !gates.mdxEnabled() {
			return ErrMDXFeatureDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := service.Sync(ctx, msg.Directory, interfaces.SyncOptions{
			ImportOptions: interfaces.ImportOptions{
				DryRun:        msg.DryRun,
				IncludeDrafts: msg.IncludeDrafts,
			},
			DeleteOrphaned: msg.DeleteOrphaned,
		})
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"created_count":  result.Created,
				"updated_count":  result.Updated,
				"deleted_count":  result.Deleted,
				"skipped_count":  result.Skipped,
				"error_count":    len(result.Errors),
				"dry_run":        msg.DryRun,
				"delete_orphans": msg.DeleteOrphaned,
			}).Info("mdx.command.sync_directory.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[SyncDirectoryCommand]{
		commands.WithLogger[SyncDirectoryCommand](baseLogger),
		commands.WithOperation[SyncDirectoryCommand](syncOperation),
		commands.WithMessageFields(func(msg SyncDirectoryCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			if msg.IncludeDrafts != nil {
				fields["include_drafts"] = *msg.IncludeDrafts
			}
			if msg.DeleteOrphaned {
				fields["delete_orphaned"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[SyncDirectoryCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SyncDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SyncDirectoryCommand].
func (h *SyncDirectoryHandler) Execute(ctx context.Context, msg SyncDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ValidateDirectoryHandler runs the content contract over a directory of MDX
// files. Execution fails when any file violates the contract, carrying the
// aggregated report in the returned error.
type ValidateDirectoryHandler struct {
	inner *commands.Handler[ValidateDirectoryCommand]
}

// NewValidateDirectoryHandler creates a handler bound to the supplied contract validator.
func NewValidateDirectoryHandler(validator DirectoryValidator, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[ValidateDirectoryCommand]) *ValidateDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ValidateDirectoryCommand) error {
		if !gates.mdxEnabled() {
			return ErrMDXFeatureDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		report, err := validator.ValidateDirectory(ctx, msg.Directory, validation.DirectoryOptions{
			Pattern:   msg.Pattern,
			Recursive: msg.Recursive,
		})
		if err != nil {
			return err
		}
		if report != nil {
			logging.WithFields(baseLogger, map[string]any{
				"files_checked": report.FilesChecked,
				"error_count":   len(report.Errors()),
				"warning_count": len(report.Warnings()),
			}).Info("mdx.command.validate_directory.completed")
			return report.Err()
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ValidateDirectoryCommand]{
		commands.WithLogger[ValidateDirectoryCommand](baseLogger),
		commands.WithOperation[ValidateDirectoryCommand](validateOperation),
		commands.WithMessageFields(func(msg ValidateDirectoryCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.Pattern != "" {
				fields["pattern"] = msg.Pattern
			}
			if msg.Recursive {
				fields["recursive"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ValidateDirectoryCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ValidateDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ValidateDirectoryCommand].
func (h *ValidateDirectoryHandler) Execute(ctx context.Context, msg ValidateDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}
