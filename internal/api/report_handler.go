// File path: internal/api/report_handler.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	chi "github.com/go-chi/chi/v5"

	"github.com/neoenergia/neoview/internal/catalog"
	"github.com/neoenergia/neoview/internal/common"
	"github.com/neoenergia/neoview/internal/reports"
	"github.com/neoenergia/neoview/internal/session"
)

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := catalog.ReportFilter{
		Query:       q.Get("q"),
		IndicatorID: q.Get("indicator_id"),
	}
	if status := strings.TrimSpace(q.Get("status")); status != "" {
		st := catalog.ReportStatus(status)
		if !st.Valid() {
			writeError(w, http.StatusBadRequest, fmt.Errorf("unknown status %q", status))
			return
		}
		filter.Status = st
	}
	var err error
	if filter.Page, err = positiveIntParam(q.Get("page")); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if filter.PerPage, err = positiveIntParam(q.Get("per_page")); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	page, total, err := s.reports.List(r.Context(), filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reports": page,
		"total":   total,
	})
}

func positiveIntParam(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, fmt.Errorf("invalid pagination value %q", raw)
	}
	return value, nil
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.reports.Get(r.Context(), chi.URLParam(r, "reportID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleUploadReport(w http.ResponseWriter, r *http.Request, user session.User) {
	var input reports.UploadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	input.UploadedBy = user.ID

	report, err := s.reports.Upload(r.Context(), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	common.Logger().Info("api: report uploaded", "report", report.ID, "indicator", report.IndicatorID, "user", user.ID)
	writeJSON(w, http.StatusCreated, report)
}

func (s *Server) handleNewVersion(w http.ResponseWriter, r *http.Request, user session.User) {
	var input reports.VersionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	report, err := s.reports.NewVersion(r.Context(), chi.URLParam(r, "reportID"), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	common.Logger().Info("api: report version uploaded", "report", report.ID, "version", report.Version, "user", user.ID)
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleSubmitReport(w http.ResponseWriter, r *http.Request, user session.User) {
	report, err := s.reports.SubmitForApproval(r.Context(), chi.URLParam(r, "reportID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	common.Logger().Info("api: report submitted", "report", report.ID, "user", user.ID)
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleResubmitReport(w http.ResponseWriter, r *http.Request, user session.User) {
	report, err := s.reports.Resubmit(r.Context(), chi.URLParam(r, "reportID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	common.Logger().Info("api: report resubmitted", "report", report.ID, "version", report.Version, "user", user.ID)
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleDeleteReport(w http.ResponseWriter, r *http.Request, user session.User) {
	reportID := chi.URLParam(r, "reportID")
	if err := s.reports.Delete(r.Context(), reportID); err != nil {
		writeDomainError(w, err)
		return
	}
	common.Logger().Info("api: report deleted", "report", reportID, "user", user.ID)
	w.WriteHeader(http.StatusNoContent)
}
