package mdxcmd

import (
	"context"
	"errors"
	"testing"

	"github.com/simonmumina/codingeasypeasy-sub006/internal/logging"
	"github.com/simonmumina/codingeasypeasy-sub006/internal/validation"
	"github.com/simonmumina/codingeasypeasy-sub006/pkg/interfaces"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

type importCall struct {
	directory string
	options   interfaces.ImportOptions
}

type syncCall struct {
	directory string
	options   interfaces.SyncOptions
}

type stubMDXService struct {
	importCalls []importCall
	syncCalls   []syncCall

	importResult *interfaces.ImportResult
	syncResult   *interfaces.SyncResult

	importErr error
	syncErr   error
}

func (s *stubMDXService) Load(context.Context, string, interfaces.LoadOptions) (*interfaces.Document, error) {
	return nil, nil
}

func (s *stubMDXService) LoadDirectory(context.Context, string, interfaces.LoadOptions) ([]*interfaces.Document, error) {
	return nil, nil
}

func (s *stubMDXService) Render(context.Context, []byte, interfaces.ParseOptions) ([]byte, error) {
	return nil, nil
}

func (s *stubMDXService) RenderDocument(context.Context, *interfaces.Document, interfaces.ParseOptions) ([]byte, error) {
	return nil, nil
}

func (s *stubMDXService) Import(context.Context, *interfaces.Document, interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	return nil, nil
}

func (s *stubMDXService) ImportDirectory(ctx context.Context, directory string, opts interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	s.importCalls = append(s.importCalls, importCall{
		directory: directory,
		options:   opts,
	})
	if s.importErr != nil {
		return nil, s.importErr
	}
	return s.importResult, nil
}

func (s *stubMDXService) Sync(ctx context.Context, directory string, opts interfaces.SyncOptions) (*interfaces.SyncResult, error) {
	s.syncCalls = append(s.syncCalls, syncCall{
		directory: directory,
		options:   opts,
	})
	if s.syncErr != nil {
		return nil, s.syncErr
	}
	return s.syncResult, nil
}

type validateCall struct {
	directory string
	options   validation.DirectoryOptions
}

type stubValidator struct {
	calls  []validateCall
	report *validation.Report
	err    error
}

func (s *stubValidator) ValidateDirectory(ctx context.Context, dir string, opts validation.DirectoryOptions) (*validation.Report, error) {
	s.calls = append(s.calls, validateCall{directory: dir, options: opts})
	if s.err != nil {
		return nil, s.err
	}
	return s.report, nil
}

type captureLogger struct {
	fields       []map[string]any
	infoMessages []string
}

var _ interfaces.Logger = (*captureLogger)(nil)

func (c *captureLogger) Trace(string, ...any) {}
func (c *captureLogger) Debug(string, ...any) {}
func (c *captureLogger) Info(msg string, _ ...any) {
	c.infoMessages = append(c.infoMessages, msg)
}
func (c *captureLogger) Warn(string, ...any)  {}
func (c *captureLogger) Error(string, ...any) {}
func (c *captureLogger) Fatal(string, ...any) {}

func (c *captureLogger) WithFields(fields map[string]any) interfaces.Logger {
	if fields == nil {
		c.fields = append(c.fields, map[string]any{})
		return c
	}
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	c.fields = append(c.fields, copied)
	return c
}

func (c *captureLogger) WithContext(context.Context) interfaces.Logger {
	return c
}

func TestImportDirectoryHandlerInvokesService(t *testing.T) {
	service := &stubMDXService{
		importResult: &interfaces.ImportResult{
			CreatedArticleIDs: []uuid.UUID{uuid.New()},
			UpdatedArticleIDs: []uuid.UUID{uuid.New()},
			SkippedArticleIDs: []uuid.UUID{},
			Errors:            []error{},
		},
	}
	logger := &captureLogger{}
	handler := NewImportDirectoryHandler(service, logger, FeatureGates{
		MDXEnabled: func() bool { return true },
	})

	includeDrafts := false
	cmd := ImportDirectoryCommand{
		Directory:     "content/blog",
		DryRun:        true,
		IncludeDrafts: &includeDrafts,
	}

	if err := handler.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("execute import directory: %v", err)
	}

	if len(service.importCalls) != 1 {
		t.Fatalf("expected import call, got %d", len(service.importCalls))
	}
	call := service.importCalls[0]
	if call.directory != cmd.Directory {
		t.Fatalf("expected directory %q, got %q", cmd.Directory, call.directory)
	}
	if !call.options.DryRun {
		t.Fatalf("expected dry run option set")
	}
	if call.options.IncludeDrafts == nil || *call.options.IncludeDrafts {
		t.Fatalf("expected include drafts false, got %v", call.options.IncludeDrafts)
	}

	if len(logger.infoMessages) == 0 {
		t.Fatalf("expected summary log emitted")
	}
	found := false
	for _, fields := range logger.fields {
		if _, ok := fields["created_count"]; ok {
			found = true
			if fields["created_count"] != len(service.importResult.CreatedArticleIDs) {
				t.Fatalf("expected created count %d, got %v", len(service.importResult.CreatedArticleIDs), fields["created_count"])
			}
			if fields["dry_run"] != cmd.DryRun {
				t.Fatalf("expected dry_run %v, got %v", cmd.DryRun, fields["dry_run"])
			}
			break
		}
	}
	if !found {
		t.Fatalf("expected summary fields recorded, got %#v", logger.fields)
	}
}

func TestImportDirectoryHandlerFeatureDisabled(t *testing.T) {
	service := &stubMDXService{}
	handler := NewImportDirectoryHandler(service, logging.NoOp(), FeatureGates{
		MDXEnabled: func() bool { return false },
	})

	err := handler.Execute(context.Background(), ImportDirectoryCommand{
		Directory: "content",
	})
	if !errors.Is(err, ErrMDXFeatureDisabled) {
		t.Fatalf("expected feature disabled error, got %v", err)
	}
	if len(service.importCalls) != 0 {
		t.Fatalf("expected no import calls, got %d", len(service.importCalls))
	}
}

func TestImportDirectoryHandlerContextCancellation(t *testing.T) {
	service := &stubMDXService{}
	handler := NewImportDirectoryHandler(service, logging.NoOp(), FeatureGates{
		MDXEnabled: func() bool { return true },
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := handler.Execute(ctx, ImportDirectoryCommand{
		Directory: "content",
	})
	if err == nil {
		t.Fatal("expected context cancellation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command error category, got %v", err)
	}
	if len(service.importCalls) != 0 {
		t.Fatalf("expected no import calls, got %d", len(service.importCalls))
	}
}

func TestSyncDirectoryHandlerInvokesService(t *testing.T) {
	service := &stubMDXService{
		syncResult: &interfaces.SyncResult{
			Created: 2,
			Updated: 1,
			Deleted: 1,
			Skipped: 3,
			Errors:  []error{},
		},
	}
	logger := &captureLogger{}
	handler := NewSyncDirectoryHandler(service, logger, FeatureGates{
		MDXEnabled: func() bool { return true },
	})

	cmd := SyncDirectoryCommand{
		Directory:      "content",
		DryRun:         true,
		DeleteOrphaned: true,
	}

	if err := handler.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("execute sync directory: %v", err)
	}

	if len(service.syncCalls) != 1 {
		t.Fatalf("expected sync call, got %d", len(service.syncCalls))
	}
	call := service.syncCalls[0]
	if call.directory != cmd.Directory {
		t.Fatalf("expected directory %q, got %q", cmd.Directory, call.directory)
	}
	if !call.options.DryRun {
		t.Fatalf("expected dry run option set")
	}
	if !call.options.DeleteOrphaned {
		t.Fatalf("expected delete orphans option set")
	}

	found := false
	for _, fields := range logger.fields {
		if _, ok := fields["deleted_count"]; ok {
			found = true
			if fields["deleted_count"] != service.syncResult.Deleted {
				t.Fatalf("expected deleted count %d, got %v", service.syncResult.Deleted, fields["deleted_count"])
			}
			if fields["delete_orphans"] != cmd.DeleteOrphaned {
				t.Fatalf("expected delete_orphans %v, got %v", cmd.DeleteOrphaned, fields["delete_orphans"])
			}
			break
		}
	}
	if !found {
		t.Fatalf("expected sync summary fields recorded, got %#v", logger.fields)
	}
}

func TestSyncDirectoryHandlerFeatureDisabled(t *testing.T) {
	service := &stubMDXService{}
	handler := NewSyncDirectoryHandler(service, logging.NoOp(), FeatureGates{
		MDXEnabled: func() bool { return false },
	})

	err := handler.Execute(context.Background(), SyncDirectoryCommand{
		Directory: "content",
	})
	if !errors.Is(err, ErrMDXFeatureDisabled) {
		t.Fatalf("expected feature disabled error, got %v", err)
	}
	if len(service.syncCalls) != 0 {
		t.Fatalf("expected no sync calls, got %d", len(service.syncCalls))
	}
}

func TestValidateDirectoryHandlerInvokesValidator(t *testing.T) {
	validator := &stubValidator{
		report: &validation.Report{FilesChecked: 3},
	}
	logger := &captureLogger{}
	handler := NewValidateDirectoryHandler(validator, logger, FeatureGates{
		MDXEnabled: func() bool { return true },
	})

	cmd := ValidateDirectoryCommand{
		Directory: "content",
		Pattern:   "*.mdx",
		Recursive: true,
	}

	if err := handler.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("execute validate directory: %v", err)
	}

	if len(validator.calls) != 1 {
		t.Fatalf("expected validate call, got %d", len(validator.calls))
	}
	call := validator.calls[0]
	if call.directory != cmd.Directory {
		t.Fatalf("expected directory %q, got %q", cmd.Directory, call.directory)
	}
	if call.options.Pattern != cmd.Pattern {
		t.Fatalf("expected pattern %q, got %q", cmd.Pattern, call.options.Pattern)
	}
	if !call.options.Recursive {
		t.Fatal("expected recursive option set")
	}

	found := false
	for _, fields := range logger.fields {
		if _, ok := fields["files_checked"]; ok {
			found = true
			if fields["files_checked"] != validator.report.FilesChecked {
				t.Fatalf("expected files checked %d, got %v", validator.report.FilesChecked, fields["files_checked"])
			}
			break
		}
	}
	if !found {
		t.Fatalf("expected report fields recorded, got %#v", logger.fields)
	}
}

func TestValidateDirectoryHandlerFailsOnContractViolations(t *testing.T) {
	report := &validation.Report{FilesChecked: 1}
	report.Add(validation.Issue{
		Path:     "content/bad.mdx",
		Field:    "title",
		Code:     "schema",
		Message:  "missing property 'title'",
		Severity: validation.SeverityError,
	})
	validator := &stubValidator{report: report}
	handler := NewValidateDirectoryHandler(validator, logging.NoOp(), FeatureGates{
		MDXEnabled: func() bool { return true },
	})

	err := handler.Execute(context.Background(), ValidateDirectoryCommand{Directory: "content"})
	if err == nil {
		t.Fatal("expected contract violation error")
	}
	if !errors.Is(err, validation.ErrContractViolated) {
		t.Fatalf("expected contract violation sentinel, got %v", err)
	}
}

func TestValidateDirectoryHandlerFeatureDisabled(t *testing.T) {
	validator := &stubValidator{}
	handler := NewValidateDirectoryHandler(validator, logging.NoOp(), FeatureGates{
		MDXEnabled: func() bool { return false },
	})

	err := handler.Execute(context.Background(), ValidateDirectoryCommand{Directory: "content"})
	if !errors.Is(err, ErrMDXFeatureDisabled) {
		t.Fatalf("expected feature disabled error, got %v", err)
	}
	if len(validator.calls) != 0 {
		t.Fatalf("expected no validate calls, got %d", len(validator.calls))
	}
}
