// File path: internal/catalog/catalog.go

// Package catalog defines the persistent workflow records behind the
// dashboard: uploaded report entities, their approval history and per-report
// view counters. The organizational tree itself is immutable and lives in the
// hierarchy package; the catalog only holds what users change at runtime.
package catalog

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound reports that the addressed record does not exist.
	ErrNotFound = errors.New("catalog: not found")
	// ErrDuplicate reports an insert with an id that is already taken.
	ErrDuplicate = errors.New("catalog: duplicate id")
)

// ReportStatus is the lifecycle state of an uploaded report entity.
type ReportStatus string

const (
	StatusDraft           ReportStatus = "draft"
	StatusPendingApproval ReportStatus = "pending_approval"
	StatusApproved        ReportStatus = "approved"
	StatusRejected        ReportStatus = "rejected"
	StatusArchived        ReportStatus = "archived"
)

// Valid reports whether s is one of the known lifecycle states.
func (s ReportStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPendingApproval, StatusApproved, StatusRejected, StatusArchived:
		return true
	}
	return false
}

// ReportEntity is an uploaded report document. File bytes live in external
// storage; FileURL and FilePath are opaque references to them.
type ReportEntity struct {
	ID          string       `db:"id" json:"id"`
	IndicatorID string       `db:"indicator_id" json:"indicator_id"`
	Name        string       `db:"name" json:"name"`
	Description string       `db:"description" json:"description,omitempty"`
	FileURL     string       `db:"file_url" json:"file_url"`
	FilePath    string       `db:"file_path" json:"file_path"`
	FileSize    int64        `db:"file_size" json:"file_size"`
	MimeType    string       `db:"mime_type" json:"mime_type"`
	Status      ReportStatus `db:"status" json:"status"`
	UploadedBy  string       `db:"uploaded_by" json:"uploaded_by"`
	UploadedAt  time.Time    `db:"uploaded_at" json:"uploaded_at"`
	Version     int          `db:"version" json:"version"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at" json:"updated_at"`
}

// Approval is one immutable approval decision. A report accumulates one
// record per decision; records are never updated or removed.
type Approval struct {
	ID         string       `db:"id" json:"id"`
	ReportID   string       `db:"report_id" json:"report_id"`
	ApproverID string       `db:"approver_id" json:"approver_id"`
	Status     ReportStatus `db:"status" json:"status"`
	Comments   string       `db:"comments" json:"comments,omitempty"`
	DecidedAt  time.Time    `db:"decided_at" json:"decided_at"`
	CreatedAt  time.Time    `db:"created_at" json:"created_at"`
}

// ReportFilter narrows ListReports. Zero values mean "no constraint";
// Page/PerPage of zero fall back to the first page of ten.
type ReportFilter struct {
	Query       string
	Status      ReportStatus
	IndicatorID string
	Page        int
	PerPage     int
}

// Store is the persistence boundary for workflow state. Implementations must
// be safe for concurrent use and must return copies, never aliases into their
// internal state.
type Store interface {
	InsertReport(ctx context.Context, report *ReportEntity) error
	GetReport(ctx context.Context, id string) (*ReportEntity, error)
	// ListReports applies the filter and returns the requested page plus the
	// total number of matches before pagination.
	ListReports(ctx context.Context, filter ReportFilter) ([]ReportEntity, int, error)
	ReportsByIndicator(ctx context.Context, indicatorID string) ([]ReportEntity, error)
	UpdateReport(ctx context.Context, report *ReportEntity) error
	DeleteReport(ctx context.Context, id string) error
	// PendingReports returns all reports in pending_approval status, oldest
	// submission first.
	PendingReports(ctx context.Context) ([]ReportEntity, error)

	InsertApproval(ctx context.Context, approval *Approval) error
	// Approvals returns decision records newest first. An empty reportID
	// returns the full history.
	Approvals(ctx context.Context, reportID string) ([]Approval, error)

	// RecordView bumps the view counter for a report id and returns the new
	// total. Counters are keyed by bare report id and do not require the
	// report to exist as a catalog entity.
	RecordView(ctx context.Context, reportID string) (int64, error)
	Views(ctx context.Context) (map[string]int64, error)

	Close() error
}
