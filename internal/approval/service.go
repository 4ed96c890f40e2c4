// File path: internal/approval/service.go

// Package approval implements the supervisor decision flow over the pending
// report queue. Decisions are appended to an immutable history; report status
// is the single source of truth for queue membership.
package approval

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
	// ErrInvalidTransition reports a decision on a report that is not in the
	// pending queue.
	ErrInvalidTransition = errors.New("approval: report not pending approval")
	// ErrValidation reports malformed decision input. Nothing is persisted.
	ErrValidation = errors.New("approval: validation failed")
)

// UserDirectory resolves user ids to display names for queue listings. A nil
// directory leaves submitter names blank.
type UserDirectory interface {
	DisplayName(userID string) string
}

// PendingReport is a queue entry joined with the names the review screen
// shows.
type PendingReport struct {
	catalog.ReportEntity
	IndicatorName string `json:"indicator_name"`
	SubmitterName string `json:"submitter_name"`
}

// Stats summarizes approval activity. Today is measured in UTC.
type Stats struct {
	Pending       int `json:"pending"`
	ApprovedToday int `json:"approved_today"`
	RejectedToday int `json:"rejected_today"`
}

// Service serializes all approval decisions behind a single mutex. Decisions
// on distinct reports do not run concurrently; the queue is small and
// correctness of the pending check matters more than write throughput here.
// The mutex is shared with every other writer of report status, so a decision
// can never interleave with a version upload or lifecycle transition.
type Service struct {
	mu      *sync.Mutex
	catalog catalog.Store
	tree    *hierarchy.Store
	users   UserDirectory
	now     func() time.Time
}

// NewService builds the decision service. guard is the report status write
// lock shared with the lifecycle service; nil gets a private mutex.
func NewService(cat catalog.Store, tree *hierarchy.Store, users UserDirectory, guard *sync.Mutex) *Service {
	if guard == nil {
		guard = new(sync.Mutex)
	}
	return &Service{mu: guard, catalog: cat, tree: tree, users: users, now: time.Now}
}

// Approve records an approval decision for a pending report. Comments are
// optional.
func (s *Service) Approve(ctx context.Context, reportID, approverID, comments string) (*catalog.Approval, error) {
	return s.decide(ctx, reportID, approverID, comments, catalog.StatusApproved)
}

// Reject records a rejection. A non-blank comment is mandatory so the author
// knows what to fix; a blank comment fails validation with no state change.
func (s *Service) Reject(ctx context.Context, reportID, approverID, comments string) (*catalog.Approval, error) {
	if strings.TrimSpace(comments) == "" {
		return nil, fmt.Errorf("%w: rejection requires a comment", ErrValidation)
	}
	return s.decide(ctx, reportID, approverID, comments, catalog.StatusRejected)
}

func (s *Service) decide(ctx context.Context, reportID, approverID, comments string, decision catalog.ReportStatus) (*catalog.Approval, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report, err := s.catalog.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.Status != catalog.StatusPendingApproval {
		return nil, fmt.Errorf("%w: report %q is %s", ErrInvalidTransition, reportID, report.Status)
	}

	now := s.now().UTC()
	record := &catalog.Approval{
		ID:         "apv-" + uuid.NewString(),
		ReportID:   reportID,
		ApproverID: approverID,
		Status:     decision,
		Comments:   strings.TrimSpace(comments),
		DecidedAt:  now,
		CreatedAt:  now,
	}
	// History first. If the insert fails the report stays pending and the
	// caller can retry; the history never references a decision that was not
	// attempted.
	if err := s.catalog.InsertApproval(ctx, record); err != nil {
		return nil, fmt.Errorf("persist decision: %w", err)
	}
	report.Status = decision
	report.UpdatedAt = now
	if err := s.catalog.UpdateReport(ctx, report); err != nil {
		return nil, fmt.Errorf("update report status: %w", err)
	}
	return record, nil
}

// Pending returns the queue oldest submission first, joined with indicator
// and submitter display names.
func (s *Service) Pending(ctx context.Context) ([]PendingReport, error) {
	reports, err := s.catalog.PendingReports(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PendingReport, 0, len(reports))
	for _, report := range reports {
		entry := PendingReport{ReportEntity: report}
		if ind, _, err := s.tree.IndicatorByID(report.IndicatorID); err == nil {
			entry.IndicatorName = ind.Name
		}
		if s.users != nil {
			entry.SubmitterName = s.users.DisplayName(report.UploadedBy)
		}
		out = append(out, entry)
	}
	return out, nil
}

// History returns decision records newest first, optionally scoped to one
// report.
func (s *Service) History(ctx context.Context, reportID string) ([]catalog.Approval, error) {
	return s.catalog.Approvals(ctx, reportID)
}

// CurrentStats counts the pending queue and today's decisions.
func (s *Service) CurrentStats(ctx context.Context) (Stats, error) {
	pending, err := s.catalog.PendingReports(ctx)
	if err != nil {
		return Stats{}, err
	}
	history, err := s.catalog.Approvals(ctx, "")
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Pending: len(pending)}
	today := s.now().UTC().Truncate(24 * time.Hour)
	for _, decision := range history {
		if decision.DecidedAt.UTC().Truncate(24 * time.Hour) != today {
			continue
		}
		switch decision.Status {
		case catalog.StatusApproved:
			stats.ApprovedToday++
		case catalog.StatusRejected:
			stats.RejectedToday++
		}
	}
	return stats, nil
}
