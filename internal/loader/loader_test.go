package loader

import (
	"errors"
	"testing"

	"transfer-pathways/internal/domain"
	"transfer-pathways/internal/tabular"
)

func TestLoadAS(t *testing.T) {
	tbl := tabular.Table{
		Headers: []string{"Term", "Course_Code", "Credit_Hours"},
		Rows: [][]string{
			{"1", "math 101", "3"},
			{"1", "", "3"},          // absent code: dropped
			{"2", "ENG 101", "n/a"}, // bad credits: dropped
			{"2", "bio 101", "4.5"},
		},
	}

	courses, dropped, err := LoadAS(tbl)
	if err != nil {
		t.Fatalf("LoadAS() error = %v", err)
	}
	if dropped != 2 {
		t.Errorf("dropped = %d, want 2", dropped)
	}
	want := []domain.ASCourse{
		{Term: 1, Code: "MATH 101", Credits: 3},
		{Term: 2, Code: "BIO 101", Credits: 4.5},
	}
	if len(courses) != len(want) {
		t.Fatalf("got %d courses, want %d", len(courses), len(want))
	}
	for i := range want {
		if courses[i] != want[i] {
			t.Errorf("course[%d] = %+v, want %+v", i, courses[i], want[i])
		}
	}
}

func TestLoadASPositionalTerms(t *testing.T) {
	tbl := tabular.Table{
		Headers: []string{"Course Code", "Credits"},
		Rows: [][]string{
			{"MATH 101", "3"},
			{"ENG 101", "3"},
		},
	}

	courses, _, err := LoadAS(tbl)
	if err != nil {
		t.Fatalf("LoadAS() error = %v", err)
	}
	if courses[0].Term != 1 || courses[1].Term != 2 {
		t.Errorf("positional terms = %d, %d; want 1, 2", courses[0].Term, courses[1].Term)
	}
}

func TestLoadASMissingColumn(t *testing.T) {
	tbl := tabular.Table{Headers: []string{"Term", "Title"}}

	_, _, err := LoadAS(tbl)
	var cnf *tabular.ColumnNotFoundError
	if !errors.As(err, &cnf) {
		t.Fatalf("expected *ColumnNotFoundError, got %v", err)
	}
	if cnf.Label != "AS course-code" {
		t.Errorf("Label = %q, want %q", cnf.Label, "AS course-code")
	}
}

func TestLoadBS(t *testing.T) {
	tbl := tabular.Table{
		Headers: []string{"Name", "Credits", "Term"},
		Rows: [][]string{
			{"MATH-101", "", "1"}, // unknown credits: kept
			{"", "3", "1"},        // absent code: dropped
			{"CHEM-210", "4", "3"},
		},
	}

	courses, dropped, err := LoadBS(tbl)
	if err != nil {
		t.Fatalf("LoadBS() error = %v", err)
	}
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}
	if len(courses) != 2 {
		t.Fatalf("got %d courses, want 2", len(courses))
	}
	if courses[0].Code != "MATH-101" || courses[0].CreditsKnown {
		t.Errorf("course[0] = %+v, want unknown credits", courses[0])
	}
	if courses[1] != (domain.BSCourse{Term: 3, Code: "CHEM-210", Credits: 4, CreditsKnown: true}) {
		t.Errorf("course[1] = %+v", courses[1])
	}
}

func TestLoadBSWithoutCreditColumn(t *testing.T) {
	tbl := tabular.Table{
		Headers: []string{"Course_Name"},
		Rows:    [][]string{{"MATH-101"}},
	}

	courses, _, err := LoadBS(tbl)
	if err != nil {
		t.Fatalf("LoadBS() error = %v", err)
	}
	if len(courses) != 1 || courses[0].CreditsKnown {
		t.Errorf("courses = %+v, want one record with unknown credits", courses)
	}
}

func TestLoadEquiv(t *testing.T) {
	tbl := tabular.Table{
		Headers: []string{"Course_Code", "Equivalent Course Code"},
		Rows: [][]string{
			{"math 101", "MATH-101; math-110 ;"},
			{"", "X-1"}, // absent AS code: dropped
			{"eng 101", ""},
		},
	}

	entries, dropped, err := LoadEquiv(tbl)
	if err != nil {
		t.Fatalf("LoadEquiv() error = %v", err)
	}
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].ASCode != "MATH 101" {
		t.Errorf("ASCode = %q", entries[0].ASCode)
	}
	if len(entries[0].BSCodes) != 2 || entries[0].BSCodes[0] != "MATH-101" || entries[0].BSCodes[1] != "MATH-110" {
		t.Errorf("BSCodes = %v", entries[0].BSCodes)
	}
	if len(entries[1].BSCodes) != 0 {
		t.Errorf("empty equivalent list should stay empty, got %v", entries[1].BSCodes)
	}
}

func TestLoadEquivFallbackHeader(t *testing.T) {
	tbl := tabular.Table{
		Headers: []string{"AS_Code", "Equivalent codes (BS)"},
		Rows:    [][]string{{"MATH 101", "MATH-101"}},
	}

	entries, _, err := LoadEquiv(tbl)
	if err != nil {
		t.Fatalf("LoadEquiv() error = %v", err)
	}
	if len(entries) != 1 || entries[0].BSCodes[0] != "MATH-101" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestRequireInputs(t *testing.T) {
	if err := RequireInputs("as.xlsx", "bs.xlsx", "eq.xlsx"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := RequireInputs("as.xlsx", "", "eq.xlsx")
	if !errors.Is(err, ErrMissingInput) {
		t.Errorf("expected ErrMissingInput, got %v", err)
	}
}
