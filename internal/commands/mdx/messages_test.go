package mdxcmd

import (
	"testing"
)

func TestImportDirectoryCommandValidateRequiresDirectory(t *testing.T) {
	cmd := ImportDirectoryCommand{}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when directory missing")
	}

	cmd.Directory = "   "
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when directory is blank")
	}

	cmd.Directory = "content"
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error when directory provided: %v", err)
	}
}

func TestSyncDirectoryCommandValidateRequiresDirectory(t *testing.T) {
	cmd := SyncDirectoryCommand{}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when directory missing")
	}

	cmd.Directory = "content"
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error when directory provided: %v", err)
	}
}

func TestValidateDirectoryCommandValidateRequiresDirectory(t *testing.T) {
	cmd := ValidateDirectoryCommand{}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when directory missing")
	}

	cmd.Directory = "content"
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error when directory provided: %v", err)
	}
}

func TestMessageTypes(t *testing.T) {
	if got := (ImportDirectoryCommand{}).Type(); got != "corpus.mdx.import_directory" {
		t.Fatalf("unexpected import message type %q", got)
	}
	if got := (SyncDirectoryCommand{}).Type(); got != "corpus.mdx.sync_directory" {
		t.Fatalf("unexpected sync message type %q", got)
	}
	if got := (ValidateDirectoryCommand{}).Type(); got != "corpus.mdx.validate_directory" {
		t.Fatalf("unexpected validate message type %q", got)
	}
}
