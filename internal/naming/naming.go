// Package naming derives output filenames from input filenames. Plan
// uploads follow the `AS_<institution>_<plan>.xlsx` convention; anything
// else degrades to a generic token.
package naming

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"transfer-pathways/internal/normalize"
)

var nonWord = regexp.MustCompile(`[^0-9A-Za-z_]+`)

// words that carry no identity in institution names
var stopWords = map[string]bool{
	"university": true,
	"college":    true,
	"community":  true,
	"of":         true,
	"the":        true,
	"district":   true,
	"cc":         true,
}

// SafeToken reduces free text to a short filesystem-safe token: punctuation
// stripped, stop words removed, first two remaining words joined.
func SafeToken(s string) string {
	s = strings.TrimSpace(nonWord.ReplaceAllString(normalize.Clean(s), " "))
	parts := strings.Fields(s)

	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if !stopWords[strings.ToLower(p)] {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		kept = parts
	}
	if len(kept) > 2 {
		kept = kept[:2]
	}
	return strings.Join(kept, "")
}

// InferInstPlan extracts institution and plan tokens from a plan filename.
// Expected shape: <AS|BS>_<institution>_<plan name>.<ext>. Filenames that
// do not follow it yield the whole base as institution and "Plan".
func InferInstPlan(path string) (inst, plan string) {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	parts := strings.SplitN(base, "_", 3)
	if len(parts) >= 3 {
		if p := strings.ToUpper(parts[0]); p == "AS" || p == "BS" {
			return SafeToken(parts[1]), stripSpaces(parts[2])
		}
	}
	return SafeToken(base), "Plan"
}

// CombinedPlanFileName names the combined-plan workbook after both inputs.
func CombinedPlanFileName(asPath, bsPath string) string {
	asInst, asPlan := InferInstPlan(asPath)
	bsInst, bsPlan := InferInstPlan(bsPath)
	return fmt.Sprintf("combined_study_plan_AS_%s_%s__BS_%s_%s.xlsx", asInst, asPlan, bsInst, bsPlan)
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
