// File path: internal/search/walker.go

// Package search implements substring search over the organizational tree.
package search

import (
	"strings"
	"unicode/utf8"

	"github.com/neoenergia/neoview/internal/hierarchy"
)

// MinQueryLen is the minimum query length, in runes, before the walker runs.
// Shorter queries return the empty set rather than flooding the caller.
const MinQueryLen = 2

type ResultType string

const (
	TypeIndicator ResultType = "indicator"
	TypeReport    ResultType = "report"
)

// Result is a single hit. Path holds the ancestor display names down to the
// matched node; the scope ids allow the caller to navigate straight to it.
// Report hits also carry the owning indicator.
type Result struct {
	Type              ResultType            `json:"type"`
	Path              []string              `json:"path"`
	Indicator         *hierarchy.Indicator  `json:"indicator,omitempty"`
	Report            *hierarchy.Report     `json:"report,omitempty"`
	CompanyID         string                `json:"company_id"`
	SuperintendenceID string                `json:"superintendence_id"`
	ManagementID      string                `json:"management_id"`
	ProjectID         string                `json:"project_id"`
}

// Walker performs case-insensitive substring search across indicator names,
// indicator descriptions and report file names. Results come back in tree
// traversal order, an indicator's own hit before its reports' hits.
type Walker struct {
	store *hierarchy.Store
}

func NewWalker(store *hierarchy.Store) *Walker {
	return &Walker{store: store}
}

func (w *Walker) Search(query string) []Result {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLen {
		return nil
	}
	needle := strings.ToLower(query)

	var results []Result
	w.store.WalkIndicators(func(c hierarchy.Company, sup hierarchy.Superintendence, m hierarchy.Management, p hierarchy.Project, ind *hierarchy.Indicator) bool {
		base := []string{c.Name, sup.Name, m.Name, p.Name}

		if contains(ind.Name, needle) || contains(ind.Description, needle) {
			results = append(results, Result{
				Type:              TypeIndicator,
				Path:              appendPath(base, ind.Name),
				Indicator:         ind,
				CompanyID:         c.ID,
				SuperintendenceID: sup.ID,
				ManagementID:      m.ID,
				ProjectID:         p.ID,
			})
		}

		for ri := range ind.Reports {
			rep := &ind.Reports[ri]
			if contains(rep.Name, needle) {
				results = append(results, Result{
					Type:              TypeReport,
					Path:              appendPath(base, ind.Name, rep.Name),
					Indicator:         ind,
					Report:            rep,
					CompanyID:         c.ID,
					SuperintendenceID: sup.ID,
					ManagementID:      m.ID,
					ProjectID:         p.ID,
				})
			}
		}
		return true
	})
	return results
}

func contains(haystack, needle string) bool {
	if haystack == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), needle)
}

func appendPath(base []string, tail ...string) []string {
	path := make([]string, 0, len(base)+len(tail))
	path = append(path, base...)
	return append(path, tail...)
}
