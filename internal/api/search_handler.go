// File path: internal/api/search_handler.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/neoenergia/neoview/internal/common"
	"github.com/neoenergia/neoview/internal/common/telemetry"
)

// defaultSearchLimit caps how many hits the dropdown shows by default.
const defaultSearchLimit = 8

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	query := r.URL.Query().Get("q")

	limit := defaultSearchLimit
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", raw))
			return
		}
		limit = parsed
	}

	results := s.walker.Search(query)
	total := len(results)
	telemetry.RecordSearch(total)
	if len(results) > limit {
		results = results[:limit]
	}
	logger.Debug("api: search", "query", query, "total", total, "returned", len(results))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
		"total":   total,
	})
}

type aiSearchRequest struct {
	Query string `json:"query"`
}

func (s *Server) handleAISearch(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req aiSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("query required"))
		return
	}

	start := time.Now()
	resp, err := s.aiSearch.Search(r.Context(), req.Query)
	telemetry.RecordAssistantCall("ai_search", time.Since(start), err != nil)
	if err != nil {
		logger.Error("api: ai search failed", "error", err)
		writeDomainError(w, err)
		return
	}
	logger.Info("api: ai search", "query_length", len(req.Query), "results", len(resp.Results))
	writeJSON(w, http.StatusOK, resp)
}
