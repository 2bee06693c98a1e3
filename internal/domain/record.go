package domain

// ASCourse is one row of an associate-plan table after normalization.
// Term is the plan term when the source table has one, otherwise the
// 1-based row position.
type ASCourse struct {
	Term    int
	Code    string // normalized course code
	Credits float64
}

// BSCourse is one row of a bachelor-plan table after normalization.
// Some BS sources carry no credit column at all; CreditsKnown marks
// whether Credits holds a real value.
type BSCourse struct {
	Term         int
	Code         string
	Credits      float64
	CreditsKnown bool
}

// EquivalencyEntry is one row of the equivalency table: an AS code and
// the BS codes it can satisfy. Entries for the same AS code accumulate;
// they never replace earlier ones.
type EquivalencyEntry struct {
	ASCode  string
	BSCodes []string
}
