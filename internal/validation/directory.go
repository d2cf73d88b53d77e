package validation

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DirectoryOptions controls which files a directory walk validates.
type DirectoryOptions struct {
	// Pattern limits checked files to those matching the supplied glob (defaults to "*.mdx").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
}

// ValidateDirectory walks dir, collects matching files, and validates them as
// a batch. File discovery mirrors the loader conventions used for imports so
// a directory that validates cleanly also imports cleanly.
func (v *ContractValidator) ValidateDirectory(ctx context.Context, dir string, opts DirectoryOptions) (*Report, error) {
	files, err := collectFiles(ctx, os.DirFS(filepath.Clean(dir)), opts)
	if err != nil {
		return nil, fmt.Errorf("validation walk %s: %w", dir, err)
	}
	return v.Validate(ctx, files)
}

// ValidateDirectoryFS is the fs.FS variant of ValidateDirectory, used by
// tests and embedded corpora.
func (v *ContractValidator) ValidateDirectoryFS(ctx context.Context, fsys fs.FS, opts DirectoryOptions) (*Report, error) {
	files, err := collectFiles(ctx, fsys, opts)
	if err != nil {
		return nil, err
	}
	return v.Validate(ctx, files)
}

func collectFiles(ctx context.Context, fsys fs.FS, opts DirectoryOptions) ([]File, error) {
	pattern := strings.TrimSpace(opts.Pattern)
	if pattern == "" {
		pattern = "*.mdx"
	}

	var files []File
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if !opts.Recursive && path != "." {
				return fs.SkipDir
			}
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if match, matchErr := filepath.Match(pattern, filepath.Base(path)); matchErr != nil || !match {
			return matchErr
		}
		data, readErr := fs.ReadFile(fsys, path)
		if readErr != nil {
			return readErr
		}
		files = append(files, File{Path: path, Source: data})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}
