// File path: internal/catalog/memory.go
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

const defaultPerPage = 10

// MemoryStore is the in-process Store used by tests and by the service when
// no catalog path is configured.
type MemoryStore struct {
	mu        sync.RWMutex
	reports   map[string]ReportEntity
	order     []string
	approvals []Approval
	views     map[string]int64
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		reports: make(map[string]ReportEntity),
		views:   make(map[string]int64),
	}
}

func (m *MemoryStore) InsertReport(_ context.Context, report *ReportEntity) error {
	if report == nil || report.ID == "" {
		return fmt.Errorf("catalog: report id required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reports[report.ID]; ok {
		return fmt.Errorf("report %q: %w", report.ID, ErrDuplicate)
	}
	m.reports[report.ID] = *report
	m.order = append(m.order, report.ID)
	return nil
}

func (m *MemoryStore) GetReport(_ context.Context, id string) (*ReportEntity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	report, ok := m.reports[id]
	if !ok {
		return nil, fmt.Errorf("report %q: %w", id, ErrNotFound)
	}
	return &report, nil
}

func (m *MemoryStore) ListReports(_ context.Context, filter ReportFilter) ([]ReportEntity, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []ReportEntity
	for _, id := range m.order {
		report := m.reports[id]
		if !matchesFilter(report, filter) {
			continue
		}
		matched = append(matched, report)
	}
	// Newest first, insertion order breaking ties.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	page, perPage := filter.Page, filter.PerPage
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	start := (page - 1) * perPage
	if start >= total {
		return nil, total, nil
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func matchesFilter(report ReportEntity, filter ReportFilter) bool {
	if filter.Status != "" && report.Status != filter.Status {
		return false
	}
	if filter.IndicatorID != "" && report.IndicatorID != filter.IndicatorID {
		return false
	}
	if filter.Query != "" {
		q := strings.ToLower(filter.Query)
		if !strings.Contains(strings.ToLower(report.Name), q) &&
			!strings.Contains(strings.ToLower(report.Description), q) {
			return false
		}
	}
	return true
}

func (m *MemoryStore) ReportsByIndicator(_ context.Context, indicatorID string) ([]ReportEntity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []ReportEntity
	for _, id := range m.order {
		if report := m.reports[id]; report.IndicatorID == indicatorID {
			out = append(out, report)
		}
	}
	return out, nil
}

func (m *MemoryStore) UpdateReport(_ context.Context, report *ReportEntity) error {
	if report == nil || report.ID == "" {
		return fmt.Errorf("catalog: report id required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reports[report.ID]; !ok {
		return fmt.Errorf("report %q: %w", report.ID, ErrNotFound)
	}
	m.reports[report.ID] = *report
	return nil
}

func (m *MemoryStore) DeleteReport(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reports[id]; !ok {
		return fmt.Errorf("report %q: %w", id, ErrNotFound)
	}
	delete(m.reports, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MemoryStore) PendingReports(_ context.Context) ([]ReportEntity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var pending []ReportEntity
	for _, id := range m.order {
		if report := m.reports[id]; report.Status == StatusPendingApproval {
			pending = append(pending, report)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].UploadedAt.Before(pending[j].UploadedAt)
	})
	return pending, nil
}

func (m *MemoryStore) InsertApproval(_ context.Context, approval *Approval) error {
	if approval == nil || approval.ID == "" {
		return fmt.Errorf("catalog: approval id required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.approvals {
		if existing.ID == approval.ID {
			return fmt.Errorf("approval %q: %w", approval.ID, ErrDuplicate)
		}
	}
	m.approvals = append(m.approvals, *approval)
	return nil
}

func (m *MemoryStore) Approvals(_ context.Context, reportID string) ([]Approval, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Approval
	for _, approval := range m.approvals {
		if reportID != "" && approval.ReportID != reportID {
			continue
		}
		out = append(out, approval)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DecidedAt.After(out[j].DecidedAt)
	})
	return out, nil
}

func (m *MemoryStore) RecordView(_ context.Context, reportID string) (int64, error) {
	if reportID == "" {
		return 0, fmt.Errorf("catalog: report id required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.views[reportID]++
	return m.views[reportID], nil
}

func (m *MemoryStore) Views(_ context.Context) (map[string]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]int64, len(m.views))
	for id, count := range m.views {
		out[id] = count
	}
	return out, nil
}

func (m *MemoryStore) Close() error { return nil }

// SeedDemo loads the sample workflow records used in development mode: three
// report entities in distinct lifecycle states and one past approval.
func SeedDemo(ctx context.Context, store Store) error {
	reports := []ReportEntity{
		{
			ID:          "rep-001",
			IndicatorID: "ind-dec",
			Name:        "Relatório DEC Q4 2024.pdf",
			Description: "Relatório trimestral de DEC",
			FileURL:     "/placeholder.svg",
			FilePath:    "reports/2024/q4/dec-report.pdf",
			FileSize:    2516582,
			MimeType:    "application/pdf",
			Status:      StatusApproved,
			UploadedBy:  "usr-001",
			UploadedAt:  time.Date(2024, 12, 15, 10, 30, 0, 0, time.UTC),
			Version:     1,
			CreatedAt:   time.Date(2024, 12, 15, 10, 30, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 12, 15, 14, 0, 0, 0, time.UTC),
		},
		{
			ID:          "rep-002",
			IndicatorID: "ind-fec",
			Name:        "Relatório FEC Q4 2024.pdf",
			Description: "Relatório trimestral de FEC",
			FileURL:     "/placeholder.svg",
			FilePath:    "reports/2024/q4/fec-report.pdf",
			FileSize:    1992294,
			MimeType:    "application/pdf",
			Status:      StatusPendingApproval,
			UploadedBy:  "usr-003",
			UploadedAt:  time.Date(2024, 12, 16, 9, 0, 0, 0, time.UTC),
			Version:     1,
			CreatedAt:   time.Date(2024, 12, 16, 9, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 12, 16, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:          "rep-003",
			IndicatorID: "ind-perdas",
			Name:        "Análise Perdas Técnicas 2024.pdf",
			Description: "Análise anual de perdas técnicas",
			FileURL:     "/placeholder.svg",
			FilePath:    "reports/2024/annual/perdas-tecnicas.pdf",
			FileSize:    3355443,
			MimeType:    "application/pdf",
			Status:      StatusDraft,
			UploadedBy:  "usr-003",
			UploadedAt:  time.Date(2024, 12, 17, 15, 20, 0, 0, time.UTC),
			Version:     2,
			CreatedAt:   time.Date(2024, 12, 10, 11, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 12, 17, 15, 20, 0, 0, time.UTC),
		},
	}
	for i := range reports {
		if err := store.InsertReport(ctx, &reports[i]); err != nil {
			return err
		}
	}
	return store.InsertApproval(ctx, &Approval{
		ID:         "apv-001",
		ReportID:   "rep-001",
		ApproverID: "usr-002",
		Status:     StatusApproved,
		Comments:   "Relatório está completo e dentro dos padrões.",
		DecidedAt:  time.Date(2024, 12, 15, 14, 0, 0, 0, time.UTC),
		CreatedAt:  time.Date(2024, 12, 15, 10, 35, 0, 0, time.UTC),
	})
}
