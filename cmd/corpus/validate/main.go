package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/simonmumina/codingeasypeasy-sub006/cmd/corpus/internal/bootstrap"
	mdxcmd "github.com/simonmumina/codingeasypeasy-sub006/internal/commands/mdx"
	"github.com/simonmumina/codingeasypeasy-sub006/internal/validation"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runValidate(os.Args[1:]); err != nil {
		log.Fatalf("corpus validate: %v", err)
	}
}

func runValidate(args []string) error {
	fs := flag.NewFlagSet("corpus-validate", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the MDX content root")
	pattern := fs.String("pattern", "*.mdx", "Glob pattern applied when discovering MDX files")
	recursive := fs.Bool("recursive", true, "Traverse sub-directories of the content root")
	directory := fs.String("directory", "", "Directory to validate; defaults to the content root")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir: *contentDir,
		Pattern:    *pattern,
		Recursive:  *recursive,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Validator == nil {
		return fmt.Errorf("contract validator not configured")
	}

	dir := *directory
	if dir == "" {
		dir = *contentDir
	}

	handler := mdxcmd.NewValidateDirectoryHandler(module.Validator, module.Logger, mdxcmd.FeatureGates{
		MDXEnabled: func() bool { return true },
	})

	cmd := mdxcmd.ValidateDirectoryCommand{
		Directory: dir,
		Pattern:   *pattern,
		Recursive: *recursive,
	}

	if err := handler.Execute(context.Background(), cmd); err != nil {
		var contractErr *validation.ContractError
		if errors.As(err, &contractErr) {
			for _, issue := range contractErr.Issues {
				fmt.Fprintln(os.Stderr, issue.String())
			}
		}
		return fmt.Errorf("execute validate command: %w", err)
	}
	fmt.Fprintln(os.Stdout, "corpus validate command executed successfully")

	return nil
}
