// File path: internal/api/hierarchy_handler.go
package api

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
)

func (s *Server) handleCompanies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"companies": s.tree.Companies()})
}

func (s *Server) handleCompany(w http.ResponseWriter, r *http.Request) {
	company, err := s.tree.Company(chi.URLParam(r, "companyID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, company)
}

func (s *Server) handleSuperintendence(w http.ResponseWriter, r *http.Request) {
	sup, err := s.tree.Superintendence(chi.URLParam(r, "companyID"), chi.URLParam(r, "supID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sup)
}

func (s *Server) handleManagement(w http.ResponseWriter, r *http.Request) {
	mgmt, err := s.tree.Management(
		chi.URLParam(r, "companyID"),
		chi.URLParam(r, "supID"),
		chi.URLParam(r, "mgmtID"),
	)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mgmt)
}

func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	proj, err := s.tree.Project(
		chi.URLParam(r, "companyID"),
		chi.URLParam(r, "supID"),
		chi.URLParam(r, "mgmtID"),
		chi.URLParam(r, "projID"),
	)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, proj)
}

func (s *Server) handleIndicator(w http.ResponseWriter, r *http.Request) {
	ind, err := s.tree.Indicator(
		chi.URLParam(r, "companyID"),
		chi.URLParam(r, "supID"),
		chi.URLParam(r, "mgmtID"),
		chi.URLParam(r, "projID"),
		chi.URLParam(r, "indID"),
	)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ind)
}
