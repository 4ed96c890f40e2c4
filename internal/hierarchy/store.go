// File path: internal/hierarchy/store.go
package hierarchy

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that an id does not resolve at the addressed level.
var ErrNotFound = errors.New("hierarchy: not found")

// Store holds the organizational tree. It is populated once at construction
// and never mutated afterwards, so it is safe for concurrent readers.
//
// Lookup order is the tree's insertion order. The source dataset contains
// duplicate ids on some branches (e.g. the same indicator id under different
// managements); lookups deliberately resolve to the first occurrence in
// traversal order rather than enforcing global uniqueness.
type Store struct {
	companies []Company
}

// NewStore builds a store over the given companies. The slice is used as-is;
// callers must not mutate it afterwards.
func NewStore(companies []Company) *Store {
	return &Store{companies: companies}
}

// NewSeededStore builds a store over the canonical NeoView dataset.
func NewSeededStore() *Store {
	return NewStore(seedCompanies())
}

// Companies returns all companies in insertion order.
func (s *Store) Companies() []Company {
	return s.companies
}

func (s *Store) Company(id string) (*Company, error) {
	for i := range s.companies {
		if s.companies[i].ID == id {
			return &s.companies[i], nil
		}
	}
	return nil, fmt.Errorf("company %q: %w", id, ErrNotFound)
}

func (s *Store) Superintendence(companyID, id string) (*Superintendence, error) {
	company, err := s.Company(companyID)
	if err != nil {
		return nil, err
	}
	for i := range company.Superintendences {
		if company.Superintendences[i].ID == id {
			return &company.Superintendences[i], nil
		}
	}
	return nil, fmt.Errorf("superintendence %q: %w", id, ErrNotFound)
}

func (s *Store) Management(companyID, superintendenceID, id string) (*Management, error) {
	sup, err := s.Superintendence(companyID, superintendenceID)
	if err != nil {
		return nil, err
	}
	for i := range sup.Managements {
		if sup.Managements[i].ID == id {
			return &sup.Managements[i], nil
		}
	}
	return nil, fmt.Errorf("management %q: %w", id, ErrNotFound)
}

func (s *Store) Project(companyID, superintendenceID, managementID, id string) (*Project, error) {
	mgmt, err := s.Management(companyID, superintendenceID, managementID)
	if err != nil {
		return nil, err
	}
	for i := range mgmt.Projects {
		if mgmt.Projects[i].ID == id {
			return &mgmt.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("project %q: %w", id, ErrNotFound)
}

func (s *Store) Indicator(companyID, superintendenceID, managementID, projectID, id string) (*Indicator, error) {
	proj, err := s.Project(companyID, superintendenceID, managementID, projectID)
	if err != nil {
		return nil, err
	}
	for i := range proj.Indicators {
		if proj.Indicators[i].ID == id {
			return &proj.Indicators[i], nil
		}
	}
	return nil, fmt.Errorf("indicator %q: %w", id, ErrNotFound)
}

// IndicatorByID resolves an indicator anywhere in the tree, first occurrence
// in traversal order wins. Used when only a bare indicator id is known, such
// as when joining workflow records back onto the tree.
func (s *Store) IndicatorByID(id string) (*Indicator, []string, error) {
	var found *Indicator
	var path []string
	s.WalkIndicators(func(c Company, sup Superintendence, m Management, p Project, ind *Indicator) bool {
		if ind.ID == id {
			found = ind
			path = []string{c.Name, sup.Name, m.Name, p.Name, ind.Name}
			return false
		}
		return true
	})
	if found == nil {
		return nil, nil, fmt.Errorf("indicator %q: %w", id, ErrNotFound)
	}
	return found, path, nil
}

// WalkIndicators visits every indicator in traversal order with its ancestor
// chain. Returning false from the callback stops the walk.
func (s *Store) WalkIndicators(fn func(c Company, sup Superintendence, m Management, p Project, ind *Indicator) bool) {
	for ci := range s.companies {
		c := &s.companies[ci]
		for si := range c.Superintendences {
			sup := &c.Superintendences[si]
			for mi := range sup.Managements {
				m := &sup.Managements[mi]
				for pi := range m.Projects {
					p := &m.Projects[pi]
					for ii := range p.Indicators {
						if !fn(*c, *sup, *m, *p, &p.Indicators[ii]) {
							return
						}
					}
				}
			}
		}
	}
}

// AllReports flattens every report in the tree, in traversal order, carrying
// the ancestor path and scope ids needed by ranking and search.
func (s *Store) AllReports() []ReportRef {
	var refs []ReportRef
	s.WalkIndicators(func(c Company, sup Superintendence, m Management, p Project, ind *Indicator) bool {
		for _, rep := range ind.Reports {
			refs = append(refs, ReportRef{
				Report:            rep,
				IndicatorName:     ind.Name,
				Path:              []string{c.Name, sup.Name, m.Name, p.Name, ind.Name, rep.Name},
				CompanyID:         c.ID,
				SuperintendenceID: sup.ID,
				ManagementID:      m.ID,
				ProjectID:         p.ID,
				IndicatorID:       ind.ID,
			})
		}
		return true
	})
	return refs
}
