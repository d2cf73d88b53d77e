package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/simonmumina/codingeasypeasy-sub006/cmd/corpus/internal/bootstrap"
	mdxcmd "github.com/simonmumina/codingeasypeasy-sub006/internal/commands/mdx"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runSync(os.Args[1:]); err != nil {
		log.Fatalf("corpus sync: %v", err)
	}
}

func runSync(args []string) error {
	fs := flag.NewFlagSet("corpus-sync", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the MDX content root")
	pattern := fs.String("pattern", "*.mdx", "Glob pattern applied when discovering MDX files")
	recursive := fs.Bool("recursive", true, "Traverse sub-directories of the content root")
	directory := fs.String("directory", ".", "Directory to sync, relative to the content root")
	driver := fs.String("storage-driver", "", "Storage driver (memory, sqlite, postgres); defaults to memory")
	dsn := fs.String("storage-dsn", "", "Storage DSN for database drivers")
	dryRun := fs.Bool("dry-run", false, "Preview changes without persisting records")
	skipDrafts := fs.Bool("skip-drafts", false, "Exclude draft documents from the sync")
	deleteOrphaned := fs.Bool("delete-orphaned", false, "Remove stored articles whose source files disappeared")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir:    *contentDir,
		Pattern:       *pattern,
		Recursive:     *recursive,
		StorageDriver: *driver,
		StorageDSN:    *dsn,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Service == nil {
		return fmt.Errorf("mdx service not configured; ensure Features.MDX is enabled")
	}

	handler := mdxcmd.NewSyncDirectoryHandler(module.Service, module.Logger, mdxcmd.FeatureGates{
		MDXEnabled: func() bool { return true },
	})

	cmd := mdxcmd.SyncDirectoryCommand{
		Directory:      *directory,
		DryRun:         *dryRun,
		DeleteOrphaned: *deleteOrphaned,
	}
	if *skipDrafts {
		include := false
		cmd.IncludeDrafts = &include
	}

	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute sync command: %w", err)
	}
	fmt.Fprintln(os.Stdout, "corpus sync command executed successfully")

	return nil
}
