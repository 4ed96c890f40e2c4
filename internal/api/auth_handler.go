// File path: internal/api/auth_handler.go
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/neoenergia/neoview/internal/common"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	token, user, err := s.auth.Login(req.Email, req.Password)
	if err != nil {
		logger.Warn("api: login failed", "email", req.Email)
		writeDomainError(w, err)
		return
	}
	logger.Info("api: login", "user", user.ID)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token != "" {
		s.auth.Logout(token)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}
	writeJSON(w, http.StatusOK, user)
}
