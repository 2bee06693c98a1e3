package naming

import "testing"

func TestSafeToken(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"Northern Virginia Community College", "NorthernVirginia"},
		{"University of Maryland", "Maryland"},
		{"Foo-Bar CC!", "FooBar"},
		{"The College of the District", "TheCollege"},
		{"  ", ""},
	}

	for _, tc := range testCases {
		if got := SafeToken(tc.input); got != tc.expected {
			t.Errorf("SafeToken(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestSafeTokenAllStopWords(t *testing.T) {
	// when everything is a stop word, fall back to the raw words
	if got := SafeToken("Community College"); got != "CommunityCollege" {
		t.Errorf("SafeToken = %q, want CommunityCollege", got)
	}
}

func TestInferInstPlan(t *testing.T) {
	testCases := []struct {
		path     string
		wantInst string
		wantPlan string
	}{
		{"/tmp/AS_NOVA_Computer Science.xlsx", "NOVA", "ComputerScience"},
		{"BS_George Mason University_Applied CS.xlsx", "GeorgeMason", "AppliedCS"},
		{"as_nova_biology.xlsx", "nova", "biology"},
		{"courses.xlsx", "courses", "Plan"},
		{"AS_only.xlsx", "AS_only", "Plan"},
	}

	for _, tc := range testCases {
		inst, plan := InferInstPlan(tc.path)
		if inst != tc.wantInst || plan != tc.wantPlan {
			t.Errorf("InferInstPlan(%q) = (%q, %q), want (%q, %q)", tc.path, inst, plan, tc.wantInst, tc.wantPlan)
		}
	}
}

func TestCombinedPlanFileName(t *testing.T) {
	got := CombinedPlanFileName("AS_NOVA_CS.xlsx", "BS_GMU_Applied CS.xlsx")
	want := "combined_study_plan_AS_NOVA_CS__BS_GMU_AppliedCS.xlsx"
	if got != want {
		t.Errorf("CombinedPlanFileName = %q, want %q", got, want)
	}
}
