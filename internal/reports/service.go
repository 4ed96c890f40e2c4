// File path: internal/reports/service.go

// Package reports manages the lifecycle of uploaded report entities: upload,
// versioning, submission for approval and removal. Approval decisions
// themselves live in the approval package.
package reports

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/neoenergia/neoview/internal/catalog"
	"github.com/neoenergia/neoview/internal/hierarchy"
)

var (
	// ErrValidation reports malformed input. Nothing is persisted.
	ErrValidation = errors.New("reports: validation failed")
	// ErrInvalidTransition reports a lifecycle move the current status does
	// not allow.
	ErrInvalidTransition = errors.New("reports: invalid status transition")
)

// UploadInput is the metadata for a new report upload. File bytes are stored
// elsewhere; FileURL and FilePath reference them opaquely.
type UploadInput struct {
	IndicatorID string `json:"indicator_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	FileURL     string `json:"file_url"`
	FilePath    string `json:"file_path"`
	FileSize    int64  `json:"file_size"`
	MimeType    string `json:"mime_type"`
	UploadedBy  string `json:"uploaded_by"`
}

// VersionInput carries the replacement file for an existing report.
type VersionInput struct {
	FileURL  string `json:"file_url"`
	FilePath string `json:"file_path"`
	FileSize int64  `json:"file_size"`
}

// Service implements the report workflow over a catalog store. The tree is
// consulted only to verify that an upload targets a real indicator.
//
// Every status write runs a read-modify-write of the whole report row, so all
// of them hold the guard mutex. The same mutex must be shared with the
// approval service; otherwise a version upload racing a decision could write
// the pre-decision status back.
type Service struct {
	mu      *sync.Mutex
	catalog catalog.Store
	tree    *hierarchy.Store
	now     func() time.Time
}

// NewService builds the workflow service. guard serializes report row writes
// across every service that performs them; nil gets a private mutex.
func NewService(cat catalog.Store, tree *hierarchy.Store, guard *sync.Mutex) *Service {
	if guard == nil {
		guard = new(sync.Mutex)
	}
	return &Service{mu: guard, catalog: cat, tree: tree, now: time.Now}
}

// Upload registers a new report entity in draft status.
func (s *Service) Upload(ctx context.Context, input UploadInput) (*catalog.ReportEntity, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}
	if strings.TrimSpace(input.IndicatorID) == "" {
		return nil, fmt.Errorf("%w: indicator_id required", ErrValidation)
	}
	if _, _, err := s.tree.IndicatorByID(input.IndicatorID); err != nil {
		return nil, fmt.Errorf("%w: unknown indicator %q", ErrValidation, input.IndicatorID)
	}

	now := s.now().UTC()
	report := &catalog.ReportEntity{
		ID:          "rep-" + uuid.NewString(),
		IndicatorID: input.IndicatorID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		FileURL:     input.FileURL,
		FilePath:    input.FilePath,
		FileSize:    input.FileSize,
		MimeType:    input.MimeType,
		Status:      catalog.StatusDraft,
		UploadedBy:  input.UploadedBy,
		UploadedAt:  now,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.catalog.InsertReport(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *Service) Get(ctx context.Context, id string) (*catalog.ReportEntity, error) {
	return s.catalog.GetReport(ctx, id)
}

func (s *Service) List(ctx context.Context, filter catalog.ReportFilter) ([]catalog.ReportEntity, int, error) {
	return s.catalog.ListReports(ctx, filter)
}

func (s *Service) ByIndicator(ctx context.Context, indicatorID string) ([]catalog.ReportEntity, error) {
	return s.catalog.ReportsByIndicator(ctx, indicatorID)
}

// NewVersion replaces the stored file reference and bumps the version
// counter. Versions only ever grow; prior versions are never removed from
// history by this path.
func (s *Service) NewVersion(ctx context.Context, id string, input VersionInput) (*catalog.ReportEntity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report, err := s.catalog.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}
	report.Version++
	if input.FileURL != "" {
		report.FileURL = input.FileURL
	}
	if input.FilePath != "" {
		report.FilePath = input.FilePath
	}
	if input.FileSize > 0 {
		report.FileSize = input.FileSize
	}
	report.UpdatedAt = s.now().UTC()
	if err := s.catalog.UpdateReport(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// SubmitForApproval moves a draft into the pending queue.
func (s *Service) SubmitForApproval(ctx context.Context, id string) (*catalog.ReportEntity, error) {
	return s.transition(ctx, id, catalog.StatusDraft, catalog.StatusPendingApproval, false)
}

// Resubmit returns a rejected report to draft so the author can revise it.
// The version counter advances so reviewers can tell revisions apart.
func (s *Service) Resubmit(ctx context.Context, id string) (*catalog.ReportEntity, error) {
	return s.transition(ctx, id, catalog.StatusRejected, catalog.StatusDraft, true)
}

func (s *Service) transition(ctx context.Context, id string, from, to catalog.ReportStatus, bumpVersion bool) (*catalog.ReportEntity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report, err := s.catalog.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}
	if report.Status != from {
		return nil, fmt.Errorf("%w: %s -> %s not allowed for report %q",
			ErrInvalidTransition, report.Status, to, id)
	}
	report.Status = to
	if bumpVersion {
		report.Version++
	}
	report.UpdatedAt = s.now().UTC()
	if err := s.catalog.UpdateReport(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.DeleteReport(ctx, id)
}
