package reports

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neoenergia/neoview/internal/approval"
	"github.com/neoenergia/neoview/internal/catalog"
	"github.com/neoenergia/neoview/internal/hierarchy"
)

func newTestService(t *testing.T) (*Service, *catalog.MemoryStore) {
	t.Helper()
	store := catalog.NewMemoryStore()
	require.NoError(t, catalog.SeedDemo(context.Background(), store))
	return NewService(store, hierarchy.NewSeededStore(), nil), store
}

func TestUploadCreatesDraft(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	report, err := svc.Upload(ctx, UploadInput{
		IndicatorID: "ind-dec",
		Name:        "DEC Janeiro 2025.pdf",
		Description: "Apuração mensal",
		FileSize:    1024,
		MimeType:    "application/pdf",
		UploadedBy:  "usr-003",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, catalog.StatusDraft, report.Status)
	assert.Equal(t, 1, report.Version)
	assert.False(t, report.UploadedAt.IsZero())

	loaded, err := svc.Get(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, "DEC Janeiro 2025.pdf", loaded.Name)
}

func TestUploadValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Upload(ctx, UploadInput{IndicatorID: "ind-dec"})
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = svc.Upload(ctx, UploadInput{Name: "x.pdf"})
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = svc.Upload(ctx, UploadInput{Name: "x.pdf", IndicatorID: "ind-inexistente"})
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestNewVersionIncrementsMonotonically(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	report, err := svc.NewVersion(ctx, "rep-003", VersionInput{
		FileURL:  "/files/perdas-v3.pdf",
		FileSize: 4096,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Version)
	assert.Equal(t, "/files/perdas-v3.pdf", report.FileURL)

	report, err = svc.NewVersion(ctx, "rep-003", VersionInput{})
	require.NoError(t, err)
	assert.Equal(t, 4, report.Version)

	_, err = svc.NewVersion(ctx, "rep-999", VersionInput{})
	assert.True(t, errors.Is(err, catalog.ErrNotFound))
}

func TestSubmitForApproval(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	report, err := svc.SubmitForApproval(ctx, "rep-003")
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusPendingApproval, report.Status)

	pending, err := store.PendingReports(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	// Already pending, cannot submit again.
	_, err = svc.SubmitForApproval(ctx, "rep-003")
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	// Approved reports are terminal for submission.
	_, err = svc.SubmitForApproval(ctx, "rep-001")
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}

func TestResubmitReturnsRejectedToDraft(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	rejected, err := store.GetReport(ctx, "rep-002")
	require.NoError(t, err)
	rejected.Status = catalog.StatusRejected
	require.NoError(t, store.UpdateReport(ctx, rejected))

	report, err := svc.Resubmit(ctx, "rep-002")
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusDraft, report.Status)
	assert.Equal(t, 2, report.Version)

	_, err = svc.Resubmit(ctx, "rep-002")
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}

// getHookStore lets a test inject work between a status writer's read and its
// write-back.
type getHookStore struct {
	catalog.Store
	onGet func(id string)
}

func (s *getHookStore) GetReport(ctx context.Context, id string) (*catalog.ReportEntity, error) {
	if s.onGet != nil {
		s.onGet(id)
	}
	return s.Store.GetReport(ctx, id)
}

func TestNewVersionCannotRevertConcurrentDecision(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore()
	require.NoError(t, catalog.SeedDemo(ctx, store))
	tree := hierarchy.NewSeededStore()

	guard := new(sync.Mutex)
	approvals := approval.NewService(store, tree, nil, guard)

	// While a version upload for the pending rep-002 is in flight, a
	// supervisor approves it. The shared guard forces the decision to wait,
	// so the upload can never write the pre-decision status back.
	decided := make(chan error, 1)
	var once sync.Once
	hooked := &getHookStore{Store: store, onGet: func(id string) {
		once.Do(func() {
			go func() {
				_, err := approvals.Approve(ctx, id, "usr-002", "aprovado")
				decided <- err
			}()
			time.Sleep(20 * time.Millisecond)
		})
	}}
	svc := NewService(hooked, tree, guard)

	_, err := svc.NewVersion(ctx, "rep-002", VersionInput{FileURL: "/files/fec-v2.pdf"})
	require.NoError(t, err)
	require.NoError(t, <-decided)

	report, err := store.GetReport(ctx, "rep-002")
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusApproved, report.Status)
	assert.Equal(t, 2, report.Version)
	assert.Equal(t, "/files/fec-v2.pdf", report.FileURL)

	pending, err := store.PendingReports(ctx)
	require.NoError(t, err)
	for _, entry := range pending {
		assert.NotEqual(t, "rep-002", entry.ID)
	}

	history, err := store.Approvals(ctx, "rep-002")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, catalog.StatusApproved, history[0].Status)
}

func TestListAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	page, total, err := svc.List(ctx, catalog.ReportFilter{Status: catalog.StatusDraft})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, page, 1)

	byIndicator, err := svc.ByIndicator(ctx, "ind-fec")
	require.NoError(t, err)
	require.Len(t, byIndicator, 1)

	require.NoError(t, svc.Delete(ctx, "rep-003"))
	_, err = svc.Get(ctx, "rep-003")
	assert.True(t, errors.Is(err, catalog.ErrNotFound))
}
