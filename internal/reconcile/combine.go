// Package reconcile holds the two engines that answer the transfer
// questions: Combine builds a concrete seat-filling assignment, Loss
// estimates credit coverage. They deliberately differ on exclusivity:
// Combine consumes each BS code at most once, Loss lets one BS code
// satisfy any number of AS courses.
package reconcile

import (
	"sort"

	"transfer-pathways/internal/domain"
	"transfer-pathways/internal/match"
)

// Combine merges an AS plan into a BS plan. AS courses are processed in
// input order; each picks the lexicographically smallest equivalent BS
// code still unconsumed in the BS table (smallest-code tie-break keeps
// output reproducible across runs). BS courses never claimed are appended
// as remaining requirements. Rows come back stably sorted by term, AS
// before BS within a term.
func Combine(as []domain.ASCourse, bs []domain.BSCourse, eq match.EquivalencyMap) []domain.CombinedRow {
	bsCodes := make(map[string]struct{}, len(bs))
	for _, b := range bs {
		bsCodes[b.Code] = struct{}{}
	}

	rows := make([]domain.CombinedRow, 0, len(as)+len(bs))
	consumed := make(map[string]struct{})

	for _, a := range as {
		hit, ok := pickEquivalent(eq.Lookup(a.Code), bsCodes, consumed)
		if ok {
			consumed[hit] = struct{}{}
			rows = append(rows, domain.CombinedRow{
				Term:      a.Term,
				Source:    domain.SourceAS,
				Match:     domain.MatchYes,
				ASCode:    a.Code,
				ASCredits: a.Credits,
				BSCode:    hit,
				Status:    domain.StatusTransferred,
			})
			continue
		}
		rows = append(rows, domain.CombinedRow{
			Term:      a.Term,
			Source:    domain.SourceAS,
			Match:     domain.MatchNo,
			ASCode:    a.Code,
			ASCredits: a.Credits,
			Status:    domain.StatusNotTransferred,
		})
	}

	for _, b := range bs {
		if _, ok := consumed[b.Code]; ok {
			continue
		}
		rows = append(rows, domain.CombinedRow{
			Term:   b.Term,
			Source: domain.SourceBS,
			BSCode: b.Code,
			Status: domain.StatusToComplete,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Term != rows[j].Term {
			return rows[i].Term < rows[j].Term
		}
		return rows[i].Source < rows[j].Source
	})
	return rows
}

// pickEquivalent intersects an AS course's equivalents with the BS codes
// present and still unconsumed, returning the smallest code.
func pickEquivalent(equivalents, present map[string]struct{}, consumed map[string]struct{}) (string, bool) {
	best := ""
	found := false
	for code := range equivalents {
		if _, ok := present[code]; !ok {
			continue
		}
		if _, ok := consumed[code]; ok {
			continue
		}
		if !found || code < best {
			best = code
			found = true
		}
	}
	return best, found
}
