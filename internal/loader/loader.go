// Package loader turns raw tables into validated record sets. Rows that
// fail validation (absent code, unparseable credits) are dropped, not
// errors; the drop counts come back as diagnostics for the caller to log.
package loader

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"transfer-pathways/internal/domain"
	"transfer-pathways/internal/normalize"
	"transfer-pathways/internal/tabular"
)

// Column header candidates, in priority order. Headers match on
// lower-cased substring, so "AS Course Code" satisfies "course code".
var (
	asCodeCandidates   = []string{"course_name", "course code", "course_code", "name", "code"}
	asCreditCandidates = []string{"credit_hours", "credits", "credit hours"}
	bsCodeCandidates   = []string{"name", "course_name", "course code", "course_code", "code"}
	bsCreditCandidates = []string{"credits", "credit", "credit hours", "credit_hours"}
	equivASCandidates  = []string{"course_code", "as_code"}
	equivBSCandidates  = []string{"equivalent course code", "equivalent"}
)

// ErrMissingInput means one of the three required tables was not supplied.
var ErrMissingInput = errors.New("missing input table")

// RequireInputs checks that all three table sources are present before any
// processing starts.
func RequireInputs(as, bs, equiv string) error {
	switch {
	case strings.TrimSpace(as) == "":
		return fmt.Errorf("%w: AS plan", ErrMissingInput)
	case strings.TrimSpace(bs) == "":
		return fmt.Errorf("%w: BS plan", ErrMissingInput)
	case strings.TrimSpace(equiv) == "":
		return fmt.Errorf("%w: course equivalencies", ErrMissingInput)
	}
	return nil
}

// LoadAS parses an AS plan table. Rows missing a code or with credits that
// do not parse as a number are dropped; the count of dropped rows is the
// second return.
func LoadAS(t tabular.Table) ([]domain.ASCourse, int, error) {
	codeIdx, err := tabular.FindColumn(t.Headers, asCodeCandidates, "AS course-code")
	if err != nil {
		return nil, 0, err
	}
	creditIdx, err := tabular.FindColumn(t.Headers, asCreditCandidates, "AS credits")
	if err != nil {
		return nil, 0, err
	}
	termIdx := tabular.FindTermColumn(t.Headers)

	var out []domain.ASCourse
	dropped := 0
	for i, row := range t.Rows {
		code, ok := normalize.Code(tabular.Cell(row, codeIdx))
		if !ok {
			dropped++
			continue
		}
		credits, err := parseCredits(tabular.Cell(row, creditIdx))
		if err != nil {
			dropped++
			continue
		}
		out = append(out, domain.ASCourse{
			Term:    termValue(row, termIdx, i),
			Code:    code,
			Credits: credits,
		})
	}
	return out, dropped, nil
}

// LoadBS parses a BS plan table. Only an absent code drops a row; the
// credits column is optional and blank/unparseable credits stay unknown.
func LoadBS(t tabular.Table) ([]domain.BSCourse, int, error) {
	codeIdx, err := tabular.FindColumn(t.Headers, bsCodeCandidates, "BS course-code")
	if err != nil {
		return nil, 0, err
	}
	// Some BS sources carry no credit column at all.
	creditIdx, err := tabular.FindColumn(t.Headers, bsCreditCandidates, "BS credits")
	if err != nil {
		creditIdx = -1
	}
	termIdx := tabular.FindTermColumn(t.Headers)

	var out []domain.BSCourse
	dropped := 0
	for i, row := range t.Rows {
		code, ok := normalize.Code(tabular.Cell(row, codeIdx))
		if !ok {
			dropped++
			continue
		}
		rec := domain.BSCourse{
			Term: termValue(row, termIdx, i),
			Code: code,
		}
		if creditIdx >= 0 {
			if credits, err := parseCredits(tabular.Cell(row, creditIdx)); err == nil {
				rec.Credits = credits
				rec.CreditsKnown = true
			}
		}
		out = append(out, rec)
	}
	return out, dropped, nil
}

// LoadEquiv parses the equivalency table. The BS side is a
// semicolon-separated list; each piece is normalized and empties are
// discarded. Rows with an absent AS code are dropped.
func LoadEquiv(t tabular.Table) ([]domain.EquivalencyEntry, int, error) {
	asIdx, err := tabular.FindColumn(t.Headers, equivASCandidates, "equivalency AS code")
	if err != nil {
		return nil, 0, err
	}
	bsIdx := exactColumn(t.Headers, "Equivalent Course Code")
	if bsIdx < 0 {
		bsIdx, err = tabular.FindColumn(t.Headers, equivBSCandidates, "equivalency BS code")
		if err != nil {
			return nil, 0, err
		}
	}

	var out []domain.EquivalencyEntry
	dropped := 0
	for _, row := range t.Rows {
		asCode, ok := normalize.Code(tabular.Cell(row, asIdx))
		if !ok {
			dropped++
			continue
		}
		var bsCodes []string
		for _, piece := range strings.Split(tabular.Cell(row, bsIdx), ";") {
			if code, ok := normalize.Code(piece); ok {
				bsCodes = append(bsCodes, code)
			}
		}
		out = append(out, domain.EquivalencyEntry{ASCode: asCode, BSCodes: bsCodes})
	}
	return out, dropped, nil
}

func exactColumn(headers []string, name string) int {
	for i, h := range headers {
		if h == name {
			return i
		}
	}
	return -1
}

func parseCredits(raw string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}

// termValue parses the term cell when the table has a term column and the
// cell holds a number; otherwise the 1-based row position stands in.
func termValue(row []string, termIdx, rowIdx int) int {
	if termIdx >= 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(tabular.Cell(row, termIdx))); err == nil {
			return n
		}
	}
	return rowIdx + 1
}
