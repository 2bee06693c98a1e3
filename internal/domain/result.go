package domain

// Source values for CombinedRow.
const (
	SourceAS = "AS"
	SourceBS = "BS"
)

// Match marks shown in the combined plan.
const (
	MatchYes = "✅"
	MatchNo  = "❌"
)

// Status values for CombinedRow.
const (
	StatusTransferred    = "Transferred"
	StatusNotTransferred = "Not transferred"
	StatusToComplete     = "To complete at BS"
)

// CombinedRow is one line of the combined plan of study.
// AS-sourced rows carry the AS code/credits and, when transferred, the BS
// code they consumed. BS-sourced rows are remaining requirements: only
// Term, BSCode and Status are set.
type CombinedRow struct {
	Term      int
	Source    string
	Match     string
	ASCode    string
	ASCredits float64
	BSCode    string
	Status    string
}

// LossSummary aggregates credit totals for one AS/BS pair.
// LossScore is LostCredits/TotalCredits rounded to 4 decimals, and exactly
// 1.0 when TotalCredits is zero.
type LossSummary struct {
	TotalCredits   float64
	MatchedCredits float64
	LostCredits    float64
	LossScore      float64
}

// UnmatchedCourse is an AS course with no equivalent in the BS plan.
type UnmatchedCourse struct {
	Code    string
	Credits float64
}
