// File path: internal/api/server.go
package api

import (
	"encoding/json"
	"errors"
	"expvar"
	"net/http"
	"strings"
	"sync"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/neoenergia/neoview/internal/aisearch"
	"github.com/neoenergia/neoview/internal/approval"
	"github.com/neoenergia/neoview/internal/catalog"
	"github.com/neoenergia/neoview/internal/common"
	"github.com/neoenergia/neoview/internal/common/telemetry"
	"github.com/neoenergia/neoview/internal/hierarchy"
	"github.com/neoenergia/neoview/internal/llm"
	"github.com/neoenergia/neoview/internal/ranking"
	"github.com/neoenergia/neoview/internal/reports"
	"github.com/neoenergia/neoview/internal/search"
	"github.com/neoenergia/neoview/internal/session"
)

type Server struct {
	router    chi.Router
	tree      *hierarchy.Store
	walker    *search.Walker
	rankings  *ranking.Aggregator
	reports   *reports.Service
	approvals *approval.Service
	auth      *session.Service
	aiSearch  *aisearch.Service
	provider  llm.Provider
}

func NewServer(tree *hierarchy.Store, cat catalog.Store, provider llm.Provider) *Server {
	logger := common.Logger()
	auth := session.NewService(session.NewMemoryStorage())
	// One lock for every report status writer; see reports.Service.
	statusMu := new(sync.Mutex)
	srv := &Server{
		router:    chi.NewRouter(),
		tree:      tree,
		walker:    search.NewWalker(tree),
		rankings:  ranking.NewAggregator(tree, cat),
		reports:   reports.NewService(cat, tree, statusMu),
		approvals: approval.NewService(cat, tree, auth, statusMu),
		auth:      auth,
		aiSearch:  aisearch.NewService(provider),
		provider:  provider,
	}
	srv.routes()
	providerName := "none"
	if provider != nil {
		providerName = provider.Name()
	}
	logger.Info("api: server ready", "provider", providerName)
	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			duration := time.Since(start)
			telemetry.RecordRequest(r.Method, duration)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", duration, "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Get("/v1/hierarchy/companies", s.handleCompanies)
	s.router.Get("/v1/hierarchy/companies/{companyID}", s.handleCompany)
	s.router.Get("/v1/hierarchy/companies/{companyID}/superintendences/{supID}", s.handleSuperintendence)
	s.router.Get("/v1/hierarchy/companies/{companyID}/superintendences/{supID}/managements/{mgmtID}", s.handleManagement)
	s.router.Get("/v1/hierarchy/companies/{companyID}/superintendences/{supID}/managements/{mgmtID}/projects/{projID}", s.handleProject)
	s.router.Get("/v1/hierarchy/companies/{companyID}/superintendences/{supID}/managements/{mgmtID}/projects/{projID}/indicators/{indID}", s.handleIndicator)

	s.router.Get("/v1/search", s.handleSearch)
	s.router.Post("/v1/search/ai", s.handleAISearch)
	s.router.Post("/v1/chat", s.handleChat)

	s.router.Get("/v1/rankings", s.handleRankings)
	s.router.Post("/v1/reports/{reportID}/view", s.handleRecordView)

	s.router.Get("/v1/reports", s.handleListReports)
	s.router.Get("/v1/reports/{reportID}", s.handleGetReport)
	s.router.Post("/v1/reports", s.requireUser(s.handleUploadReport))
	s.router.Post("/v1/reports/{reportID}/versions", s.requireUser(s.handleNewVersion))
	s.router.Post("/v1/reports/{reportID}/submit", s.requireUser(s.handleSubmitReport))
	s.router.Post("/v1/reports/{reportID}/resubmit", s.requireUser(s.handleResubmitReport))
	s.router.Delete("/v1/reports/{reportID}", s.requireUser(s.handleDeleteReport))

	s.router.Get("/v1/approvals/pending", s.requireApprover(s.handlePendingApprovals))
	s.router.Get("/v1/approvals/history", s.handleApprovalHistory)
	s.router.Get("/v1/approvals/stats", s.handleApprovalStats)
	s.router.Post("/v1/approvals/{reportID}/approve", s.requireApprover(s.handleApprove))
	s.router.Post("/v1/approvals/{reportID}/reject", s.requireApprover(s.handleReject))

	s.router.Post("/v1/auth/login", s.handleLogin)
	s.router.Post("/v1/auth/logout", s.handleLogout)
	s.router.Get("/v1/auth/me", s.handleMe)

	s.router.Get("/v1/logs", s.handleLogs)
	s.router.Method(http.MethodGet, "/v1/metrics", expvar.Handler())
}

// currentUser resolves the session behind the Authorization bearer token.
func (s *Server) currentUser(r *http.Request) (session.User, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return session.User{}, false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return s.auth.UserFromToken(token)
}

type authedHandler func(w http.ResponseWriter, r *http.Request, user session.User)

func (s *Server) requireUser(next authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := s.currentUser(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, errors.New("authentication required"))
			return
		}
		next(w, r, user)
	}
}

func (s *Server) requireApprover(next authedHandler) http.HandlerFunc {
	return s.requireUser(func(w http.ResponseWriter, r *http.Request, user session.User) {
		if !user.CanApprove() {
			writeError(w, http.StatusForbidden, errors.New("supervisor or admin role required"))
			return
		}
		next(w, r, user)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// writeDomainError translates service sentinel errors into HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, hierarchy.ErrNotFound), errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, catalog.ErrDuplicate):
		writeError(w, http.StatusConflict, err)
	case errors.Is(err, reports.ErrValidation), errors.Is(err, approval.ErrValidation):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, reports.ErrInvalidTransition), errors.Is(err, approval.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err)
	case errors.Is(err, session.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err)
	case errors.Is(err, llm.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, err)
	case errors.Is(err, llm.ErrQuotaExceeded):
		writeError(w, http.StatusPaymentRequired, err)
	case errors.Is(err, llm.ErrTimeout):
		writeError(w, http.StatusGatewayTimeout, err)
	case errors.Is(err, llm.ErrUpstreamUnavailable):
		writeError(w, http.StatusBadGateway, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": common.LogEntries()})
}
