package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"transfer-pathways/internal/domain"
)

// Loss-analysis CSV layouts. Keep header order EXACT.
var (
	summaryHeader   = []string{"Total AS Credits", "Matched Credits", "Lost Credits", "Loss Score (0=perfect)"}
	unmatchedHeader = []string{"AS Course Code", "Credits"}
	asTableHeader   = []string{"AS_Term", "AS_Code", "AS_Credits"}
	bsTableHeader   = []string{"BS_Term", "BS_Code", "BS_Credits"}
)

// WriteLossSummaryCSV writes the one-row credit summary.
func WriteLossSummaryCSV(w io.Writer, s domain.LossSummary) error {
	return writeAll(w, [][]string{
		summaryHeader,
		{
			floatToString(s.TotalCredits),
			floatToString(s.MatchedCredits),
			floatToString(s.LostCredits),
			floatToString(s.LossScore),
		},
	})
}

// WriteUnmatchedCSV lists AS courses with no BS equivalent, in plan order.
func WriteUnmatchedCSV(w io.Writer, courses []domain.UnmatchedCourse) error {
	records := [][]string{unmatchedHeader}
	for _, c := range courses {
		records = append(records, []string{c.Code, floatToString(c.Credits)})
	}
	return writeAll(w, records)
}

// WriteASTableCSV dumps the normalized AS records (a debugging aid the
// analyzer offers for download alongside the summary).
func WriteASTableCSV(w io.Writer, courses []domain.ASCourse) error {
	records := [][]string{asTableHeader}
	for _, c := range courses {
		records = append(records, []string{strconv.Itoa(c.Term), c.Code, floatToString(c.Credits)})
	}
	return writeAll(w, records)
}

// WriteBSTableCSV dumps the normalized BS records. Unknown credits print
// as empty cells.
func WriteBSTableCSV(w io.Writer, courses []domain.BSCourse) error {
	records := [][]string{bsTableHeader}
	for _, c := range courses {
		credits := ""
		if c.CreditsKnown {
			credits = floatToString(c.Credits)
		}
		records = append(records, []string{strconv.Itoa(c.Term), c.Code, credits})
	}
	return writeAll(w, records)
}

func writeAll(w io.Writer, records [][]string) error {
	cw := csv.NewWriter(w)
	for _, rec := range records {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// floatToString keeps plain decimals: 3 not 3.000000, 2.5 not 2.50.
func floatToString(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
