package taxonomy

import "testing"

func TestResolveExactMatch(t *testing.T) {
	p := Resolve("Math", "Algebra - Foundations", "Linear Equations - One Variable")
	if p.Subject != "Math" {
		t.Errorf("got subject %q, want Math", p.Subject)
	}
	if p.BaseBranch != "Algebra - Foundations" {
		t.Errorf("got base %q", p.BaseBranch)
	}
	if p.DetailedBranch != "Linear Equations - One Variable" {
		t.Errorf("got detailed %q", p.DetailedBranch)
	}
	if !IsValid(p) {
		t.Error("exact-match path reported invalid")
	}
}

func TestResolveSubjectAlias(t *testing.T) {
	p := Resolve("maths", "Algebra - Foundations", "Inequalities")
	if p.Subject != "Math" {
		t.Errorf("alias not normalized: got %q", p.Subject)
	}
}

func TestResolveUnlistedDetailedBranch(t *testing.T) {
	// Unlisted detailed branch substitutes the first registered child,
	// and does so identically on every call with the same bad input.
	first := Resolve("Math", "Algebra - Foundations", "Quadratic Systems")
	if first.DetailedBranch != "Linear Equations - One Variable" {
		t.Errorf("got fallback child %q, want first registered child", first.DetailedBranch)
	}
	for range 5 {
		again := Resolve("Math", "Algebra - Foundations", "Quadratic Systems")
		if again != first {
			t.Fatalf("fallback not deterministic: %+v vs %+v", again, first)
		}
	}
}

func TestResolveUnknownBaseBranch(t *testing.T) {
	p := Resolve("Math", "Calculus - Advanced", "Derivatives")
	if p.BaseBranch != "Others: Math" || p.DetailedBranch != "General" {
		t.Errorf("got %+v, want Others bucket", p)
	}
	if !IsValid(p) {
		t.Error("Others bucket reported invalid")
	}
}

func TestResolveUnknownSubject(t *testing.T) {
	p := Resolve("Astronomy", "Stellar Evolution", "Main Sequence")
	want := Path{Subject: "Astronomy", BaseBranch: "Others: Astronomy", DetailedBranch: "General"}
	if p != want {
		t.Errorf("got %+v, want %+v", p, want)
	}
	if p.Key() != "Astronomy/Others: Astronomy/General" {
		t.Errorf("got key %q", p.Key())
	}
}

func TestResolveEmptyInput(t *testing.T) {
	p := Resolve("", "", "")
	if p.Subject != "Unknown" || p.BaseBranch != "Others: Unknown" || p.DetailedBranch != "General" {
		t.Errorf("got %+v", p)
	}
}

func TestResolveAlwaysValid(t *testing.T) {
	// Every combination, including garbage, must land on a valid path.
	subjects := []string{"Math", "math", "Physics", "Astronomy", "", "  ", "English"}
	bases := []string{"Algebra - Foundations", "Mechanics", "Nonsense", "", "grammar"}
	details := []string{"Linear Equations - One Variable", "Kinematics", "Bogus Topic", ""}

	for _, s := range subjects {
		for _, b := range bases {
			for _, d := range details {
				p := Resolve(s, b, d)
				if !IsValid(p) {
					t.Errorf("Resolve(%q, %q, %q) = %+v is not valid", s, b, d, p)
				}
			}
		}
	}
}

func TestResolveCaseInsensitiveBranchMatch(t *testing.T) {
	p := Resolve("Math", "algebra - foundations", "inequalities")
	if p.BaseBranch != "Algebra - Foundations" || p.DetailedBranch != "Inequalities" {
		t.Errorf("case-insensitive match failed: %+v", p)
	}
}

func TestWeaknessKeyFormat(t *testing.T) {
	p := Resolve("Math", "Algebra - Foundations", "Linear Equations - One Variable")
	want := "Math/Algebra - Foundations/Linear Equations - One Variable"
	if p.Key() != want {
		t.Errorf("got %q, want %q", p.Key(), want)
	}
}

func TestParseErrorType(t *testing.T) {
	tests := []struct {
		in   string
		want ErrorType
	}{
		{"execution_error", ErrorExecution},
		{"conceptual_gap", ErrorConceptualGap},
		{"needs_refinement", ErrorNeedsRefinement},
		{"  Execution_Error ", ErrorExecution},
		{"careless", DefaultErrorType},
		{"", DefaultErrorType},
		{"CONCEPT", DefaultErrorType},
	}
	for _, tt := range tests {
		if got := ParseErrorType(tt.in); got != tt.want {
			t.Errorf("ParseErrorType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestErrorTypeSeverityOrdering(t *testing.T) {
	if !(ErrorConceptualGap.Severity() > ErrorExecution.Severity()) {
		t.Error("conceptual gap should outrank execution error")
	}
	if !(ErrorExecution.Severity() > ErrorNeedsRefinement.Severity()) {
		t.Error("execution error should outrank needs refinement")
	}
	if DefaultErrorType.Severity() != ErrorNeedsRefinement.Severity() {
		t.Error("default must be the lowest-severity type")
	}
}

func TestBranchesCopyIsolated(t *testing.T) {
	b := Branches("Math")
	if len(b) == 0 {
		t.Fatal("no branches for Math")
	}
	b[0].Name = "mutated"
	if Branches("Math")[0].Name == "mutated" {
		t.Error("Branches returned a view into the catalog")
	}
}

func TestBranchesUnknownSubject(t *testing.T) {
	if b := Branches("Astronomy"); b != nil {
		t.Errorf("got %v, want nil", b)
	}
}
