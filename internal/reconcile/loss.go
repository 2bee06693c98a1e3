package reconcile

import (
	"math"

	"transfer-pathways/internal/domain"
	"transfer-pathways/internal/match"
)

// Loss scores how much AS credit value fails to transfer. An AS course
// counts as matched when any of its equivalents appears anywhere in the
// BS table; there is no consumption, so one BS code may satisfy several
// AS courses at once. Unmatched courses come back in AS input order.
func Loss(as []domain.ASCourse, bs []domain.BSCourse, eq match.EquivalencyMap) (domain.LossSummary, []domain.UnmatchedCourse) {
	bsCodes := make(map[string]struct{}, len(bs))
	for _, b := range bs {
		bsCodes[b.Code] = struct{}{}
	}

	var total, matched float64
	var unmatched []domain.UnmatchedCourse

	for _, a := range as {
		total += a.Credits
		if anyPresent(eq.Lookup(a.Code), bsCodes) {
			matched += a.Credits
			continue
		}
		unmatched = append(unmatched, domain.UnmatchedCourse{Code: a.Code, Credits: a.Credits})
	}

	lost := total - matched
	if lost < 0 {
		lost = 0
	}

	// 1.0 when there is nothing to transfer: avoids dividing by zero and
	// reads as total loss.
	score := 1.0
	if total > 0 {
		score = round4(lost / total)
	}

	return domain.LossSummary{
		TotalCredits:   total,
		MatchedCredits: matched,
		LostCredits:    lost,
		LossScore:      score,
	}, unmatched
}

func anyPresent(equivalents, present map[string]struct{}) bool {
	for code := range equivalents {
		if _, ok := present[code]; ok {
			return true
		}
	}
	return false
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
