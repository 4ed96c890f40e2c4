// File path: internal/ranking/aggregator.go

// Package ranking produces the most-viewed report listings shown on the
// dashboard home screen.
package ranking

import (
	"context"
	"fmt"
	"sort"

	"github.com/neoenergia/neoview/internal/catalog"
	"github.com/neoenergia/neoview/internal/hierarchy"
)

// TopN is the number of entries returned by Top.
const TopN = 5

// Entry is one ranked report occurrence with its persisted view count.
// Reports sharing an id also share a counter, so a report appearing on
// several branches of the tree ranks identically on each.
type Entry struct {
	hierarchy.ReportRef
	Views int64 `json:"views"`
	Rank  int   `json:"rank"`
}

// Aggregator joins the immutable report tree with the catalog's view
// counters.
type Aggregator struct {
	tree    *hierarchy.Store
	catalog catalog.Store
}

func NewAggregator(tree *hierarchy.Store, cat catalog.Store) *Aggregator {
	return &Aggregator{tree: tree, catalog: cat}
}

// RecordView bumps the persisted counter for a report id and returns the new
// total.
func (a *Aggregator) RecordView(ctx context.Context, reportID string) (int64, error) {
	return a.catalog.RecordView(ctx, reportID)
}

// Top returns the TopN most-viewed reports, ordered by view count descending.
// Ties keep tree traversal order. A non-empty companyID restricts the ranking
// to that company's subtree.
func (a *Aggregator) Top(ctx context.Context, companyID string) ([]Entry, error) {
	views, err := a.catalog.Views(ctx)
	if err != nil {
		return nil, fmt.Errorf("load view counters: %w", err)
	}

	var entries []Entry
	for _, ref := range a.tree.AllReports() {
		if companyID != "" && ref.CompanyID != companyID {
			continue
		}
		entries = append(entries, Entry{ReportRef: ref, Views: views[ref.Report.ID]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Views > entries[j].Views
	})
	if len(entries) > TopN {
		entries = entries[:TopN]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}
