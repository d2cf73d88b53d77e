package mdxcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	importDirectoryMessageType   = "corpus.mdx.import_directory"
	syncDirectoryMessageType     = "corpus.mdx.sync_directory"
	validateDirectoryMessageType = "corpus.mdx.validate_directory"
)

// ImportDirectoryCommand triggers a filesystem walk for MDX documents under
// the provided Directory. The command mirrors mdx.Service ImportDirectory
// semantics, with options mapping directly onto interfaces.ImportOptions.
type ImportDirectoryCommand struct {
	// Directory selects the filesystem path (relative or absolute) to load MDX files from.
	Directory string `json:"directory"`
	// DryRun toggles preview mode to collect import diffs without persisting changes.
	DryRun bool `json:"dry_run,omitempty"`
	// IncludeDrafts keeps draft documents in the import set. Unset means drafts import.
	IncludeDrafts *bool `json:"include_drafts,omitempty"`
}

// Type implements command.Message.
func (ImportDirectoryCommand) Type() string { return importDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd ImportDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(requireDirectory(importDirectoryMessageType))),
	)
}

// SyncDirectoryCommand orchestrates an MDX sync run for the provided
// Directory, applying deletion flags consistent with interfaces.SyncOptions.
type SyncDirectoryCommand struct {
	// Directory selects the filesystem path (relative or absolute) to load MDX files from.
	Directory string `json:"directory"`
	// DryRun toggles preview mode to collect sync diffs without persisting changes.
	DryRun bool `json:"dry_run,omitempty"`
	// IncludeDrafts keeps draft documents in the import set. Unset means drafts import.
	IncludeDrafts *bool `json:"include_drafts,omitempty"`
	// DeleteOrphaned removes article records without matching MDX files when true.
	DeleteOrphaned bool `json:"delete_orphaned,omitempty"`
}

// Type implements command.Message.
func (SyncDirectoryCommand) Type() string { return syncDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd SyncDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(requireDirectory(syncDirectoryMessageType))),
	)
}

// ValidateDirectoryCommand checks every MDX file under Directory against the
// content contract without touching the article store.
type ValidateDirectoryCommand struct {
	// Directory selects the filesystem path (relative or absolute) to check.
	Directory string `json:"directory"`
	// Pattern limits checked files to those matching the supplied glob (defaults to "*.mdx").
	Pattern string `json:"pattern,omitempty"`
	// Recursive controls whether sub-directories are traversed.
	Recursive bool `json:"recursive,omitempty"`
}

// Type implements command.Message.
func (ValidateDirectoryCommand) Type() string { return validateDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd ValidateDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(requireDirectory(validateDirectoryMessageType))),
	)
}

func requireDirectory(messageType string) validation.RuleFunc {
	return func(value any) error {
		if strings.TrimSpace(value.(string)) == "" {
			return validation.NewError(messageType+".directory_required", "directory is required")
		}
		return nil
	}
}
