// File path: internal/api/approval_handler.go
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/neoenergia/neoview/internal/common"
	"github.com/neoenergia/neoview/internal/common/telemetry"
	"github.com/neoenergia/neoview/internal/session"
)

func (s *Server) handlePendingApprovals(w http.ResponseWriter, r *http.Request, _ session.User) {
	pending, err := s.approvals.Pending(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"pending": pending})
}

func (s *Server) handleApprovalHistory(w http.ResponseWriter, r *http.Request) {
	history, err := s.approvals.History(r.Context(), r.URL.Query().Get("report_id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"history": history})
}

func (s *Server) handleApprovalStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.approvals.CurrentStats(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

type decisionRequest struct {
	Comments string `json:"comments"`
}

func (s *Server) handleApprove(w http.ResponseWriter, r *http.Request, user session.User) {
	s.handleDecision(w, r, user, true)
}

func (s *Server) handleReject(w http.ResponseWriter, r *http.Request, user session.User) {
	s.handleDecision(w, r, user, false)
}

func (s *Server) handleDecision(w http.ResponseWriter, r *http.Request, user session.User, approve bool) {
	logger := common.Logger()
	reportID := chi.URLParam(r, "reportID")

	var req decisionRequest
	if r.Body != nil {
		// An empty body means no comments; only malformed JSON is an error.
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	var err error
	var record interface{}
	if approve {
		record, err = s.approvals.Approve(r.Context(), reportID, user.ID, req.Comments)
	} else {
		record, err = s.approvals.Reject(r.Context(), reportID, user.ID, req.Comments)
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	action := "rejected"
	if approve {
		action = "approved"
	}
	telemetry.RecordDecision(action)
	logger.Info("api: report decision", "report", reportID, "action", action, "approver", user.ID)
	writeJSON(w, http.StatusOK, record)
}
