// File path: internal/api/ranking_handler.go
package api

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/neoenergia/neoview/internal/common"
	"github.com/neoenergia/neoview/internal/common/telemetry"
)

func (s *Server) handleRankings(w http.ResponseWriter, r *http.Request) {
	companyID := r.URL.Query().Get("company_id")
	entries, err := s.rankings.Top(r.Context(), companyID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"company_id": companyID,
		"rankings":   entries,
	})
}

func (s *Server) handleRecordView(w http.ResponseWriter, r *http.Request) {
	reportID := chi.URLParam(r, "reportID")
	views, err := s.rankings.RecordView(r.Context(), reportID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	telemetry.RecordReportView()
	common.Logger().Debug("api: view recorded", "report", reportID, "views", views)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"report_id": reportID,
		"views":     views,
	})
}
