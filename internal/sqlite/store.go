// File path: internal/sqlite/store.go

// Package sqlite implements the workflow catalog over a pooled SQLite
// database. Schema migration runs on open.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/neoenergia/neoview/internal/catalog"
)

// Store wraps a pooled sqlx.DB connection to the SQLite catalog.
type Store struct {
	db *sqlx.DB
}

var _ catalog.Store = (*Store)(nil)

// Open constructs a Store backed by the SQLite database at the provided path.
// The schema is migrated automatically on first use.
func Open(path string) (*Store, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		cfg.Path = trimmed
	}
	return OpenWithConfig(cfg)
}

// OpenWithConfig constructs a Store using the provided configuration.
func OpenWithConfig(cfg Config) (*Store, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.New("sqlite path required")
	}
	abs, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve sqlite path: %w", err)
	}
	busy := int(cfg.BusyTimeout / time.Millisecond)
	if busy <= 0 {
		busy = 5000
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)", abs, busy)
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.BusyTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Close releases the underlying database resources.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	for i, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("execute schema statement %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	return nil
}

var schemaStatements = []string{
	`PRAGMA journal_mode = WAL;`,
	`PRAGMA foreign_keys = ON;`,
	`CREATE TABLE IF NOT EXISTS reports (
                id TEXT PRIMARY KEY,
                indicator_id TEXT NOT NULL,
                name TEXT NOT NULL,
                description TEXT NOT NULL DEFAULT '',
                file_url TEXT NOT NULL DEFAULT '',
                file_path TEXT NOT NULL DEFAULT '',
                file_size INTEGER NOT NULL DEFAULT 0,
                mime_type TEXT NOT NULL DEFAULT '',
                status TEXT NOT NULL,
                uploaded_by TEXT NOT NULL DEFAULT '',
                uploaded_at DATETIME NOT NULL,
                version INTEGER NOT NULL DEFAULT 1,
                created_at DATETIME NOT NULL,
                updated_at DATETIME NOT NULL
        );`,
	`CREATE INDEX IF NOT EXISTS idx_reports_status ON reports(status);`,
	`CREATE INDEX IF NOT EXISTS idx_reports_indicator ON reports(indicator_id);`,
	`CREATE TABLE IF NOT EXISTS report_approvals (
                id TEXT PRIMARY KEY,
                report_id TEXT NOT NULL,
                approver_id TEXT NOT NULL,
                status TEXT NOT NULL,
                comments TEXT NOT NULL DEFAULT '',
                decided_at DATETIME NOT NULL,
                created_at DATETIME NOT NULL
        );`,
	`CREATE INDEX IF NOT EXISTS idx_approvals_report ON report_approvals(report_id);`,
	`CREATE TABLE IF NOT EXISTS report_views (
                report_id TEXT PRIMARY KEY,
                views INTEGER NOT NULL DEFAULT 0
        );`,
}

const reportColumns = `id, indicator_id, name, description, file_url, file_path,
        file_size, mime_type, status, uploaded_by, uploaded_at, version,
        created_at, updated_at`

func (s *Store) InsertReport(ctx context.Context, report *catalog.ReportEntity) error {
	if report == nil || strings.TrimSpace(report.ID) == "" {
		return errors.New("sqlite: report id required")
	}
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO reports (`+reportColumns+`)
                VALUES (:id, :indicator_id, :name, :description, :file_url, :file_path,
                        :file_size, :mime_type, :status, :uploaded_by, :uploaded_at,
                        :version, :created_at, :updated_at)`, report)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("report %q: %w", report.ID, catalog.ErrDuplicate)
		}
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (s *Store) GetReport(ctx context.Context, id string) (*catalog.ReportEntity, error) {
	var report catalog.ReportEntity
	err := s.db.GetContext(ctx, &report, `SELECT `+reportColumns+` FROM reports WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("report %q: %w", id, catalog.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	return &report, nil
}

func (s *Store) ListReports(ctx context.Context, filter catalog.ReportFilter) ([]catalog.ReportEntity, int, error) {
	where, args := buildReportFilter(filter)

	var total int
	if err := s.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM reports`+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count reports: %w", err)
	}

	page, perPage := filter.Page, filter.PerPage
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	query := `SELECT ` + reportColumns + ` FROM reports` + where +
		` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, perPage, (page-1)*perPage)

	var reports []catalog.ReportEntity
	if err := s.db.SelectContext(ctx, &reports, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list reports: %w", err)
	}
	return reports, total, nil
}

func buildReportFilter(filter catalog.ReportFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}
	if filter.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.IndicatorID != "" {
		clauses = append(clauses, "indicator_id = ?")
		args = append(args, filter.IndicatorID)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		clauses = append(clauses, "(name LIKE ? COLLATE NOCASE OR description LIKE ? COLLATE NOCASE)")
		pattern := "%" + q + "%"
		args = append(args, pattern, pattern)
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (s *Store) ReportsByIndicator(ctx context.Context, indicatorID string) ([]catalog.ReportEntity, error) {
	var reports []catalog.ReportEntity
	err := s.db.SelectContext(ctx, &reports, `SELECT `+reportColumns+` FROM reports
                WHERE indicator_id = ? ORDER BY created_at DESC`, indicatorID)
	if err != nil {
		return nil, fmt.Errorf("reports by indicator: %w", err)
	}
	return reports, nil
}

func (s *Store) UpdateReport(ctx context.Context, report *catalog.ReportEntity) error {
	if report == nil || strings.TrimSpace(report.ID) == "" {
		return errors.New("sqlite: report id required")
	}
	res, err := s.db.NamedExecContext(ctx, `UPDATE reports SET
                indicator_id = :indicator_id, name = :name, description = :description,
                file_url = :file_url, file_path = :file_path, file_size = :file_size,
                mime_type = :mime_type, status = :status, uploaded_by = :uploaded_by,
                uploaded_at = :uploaded_at, version = :version,
                created_at = :created_at, updated_at = :updated_at
                WHERE id = :id`, report)
	if err != nil {
		return fmt.Errorf("update report: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("report %q: %w", report.ID, catalog.ErrNotFound)
	}
	return nil
}

func (s *Store) DeleteReport(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM reports WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("report %q: %w", id, catalog.ErrNotFound)
	}
	return nil
}

func (s *Store) PendingReports(ctx context.Context) ([]catalog.ReportEntity, error) {
	var reports []catalog.ReportEntity
	err := s.db.SelectContext(ctx, &reports, `SELECT `+reportColumns+` FROM reports
                WHERE status = ? ORDER BY uploaded_at ASC`, catalog.StatusPendingApproval)
	if err != nil {
		return nil, fmt.Errorf("pending reports: %w", err)
	}
	return reports, nil
}

func (s *Store) InsertApproval(ctx context.Context, approval *catalog.Approval) error {
	if approval == nil || strings.TrimSpace(approval.ID) == "" {
		return errors.New("sqlite: approval id required")
	}
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO report_approvals
                (id, report_id, approver_id, status, comments, decided_at, created_at)
                VALUES (:id, :report_id, :approver_id, :status, :comments, :decided_at, :created_at)`,
		approval)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("approval %q: %w", approval.ID, catalog.ErrDuplicate)
		}
		return fmt.Errorf("insert approval: %w", err)
	}
	return nil
}

func (s *Store) Approvals(ctx context.Context, reportID string) ([]catalog.Approval, error) {
	query := `SELECT id, report_id, approver_id, status, comments, decided_at, created_at
                FROM report_approvals`
	var args []interface{}
	if reportID != "" {
		query += ` WHERE report_id = ?`
		args = append(args, reportID)
	}
	query += ` ORDER BY decided_at DESC`

	var approvals []catalog.Approval
	if err := s.db.SelectContext(ctx, &approvals, query, args...); err != nil {
		return nil, fmt.Errorf("list approvals: %w", err)
	}
	return approvals, nil
}

func (s *Store) RecordView(ctx context.Context, reportID string) (int64, error) {
	if strings.TrimSpace(reportID) == "" {
		return 0, errors.New("sqlite: report id required")
	}
	var views int64
	err := s.db.GetContext(ctx, &views, `INSERT INTO report_views (report_id, views)
                VALUES (?, 1)
                ON CONFLICT(report_id) DO UPDATE SET views = views + 1
                RETURNING views`, reportID)
	if err != nil {
		return 0, fmt.Errorf("record view: %w", err)
	}
	return views, nil
}

func (s *Store) Views(ctx context.Context) (map[string]int64, error) {
	rows, err := s.db.QueryxContext(ctx, `SELECT report_id, views FROM report_views`)
	if err != nil {
		return nil, fmt.Errorf("list views: %w", err)
	}
	defer rows.Close()

	views := make(map[string]int64)
	for rows.Next() {
		var id string
		var count int64
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("scan view row: %w", err)
		}
		views[id] = count
	}
	return views, rows.Err()
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
