package spdxexpr

import "testing"

func TestEvaluateBasic(t *testing.T) {
	tests := []struct {
		src       string
		satisfied map[string]bool
		want      bool
	}{
		{"MIT", map[string]bool{"MIT": true}, true},
		{"MIT", map[string]bool{"MIT": false}, false},
		{"MIT OR Apache-2.0", map[string]bool{"MIT": false, "Apache-2.0": true}, true},
		{"MIT AND Apache-2.0", map[string]bool{"MIT": true, "Apache-2.0": false}, false},
		{"MIT AND Apache-2.0", map[string]bool{"MIT": true, "Apache-2.0": true}, true},
		{"(MIT OR Apache-2.0) AND BSD-3-Clause",
			map[string]bool{"MIT": false, "Apache-2.0": true, "BSD-3-Clause": true}, true},
		{"(MIT OR Apache-2.0) AND BSD-3-Clause",
			map[string]bool{"MIT": false, "Apache-2.0": true, "BSD-3-Clause": false}, false},
	}
	for _, tt := range tests {
		e, err := Parse(tt.src, Strict())
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.src, err)
		}
		got := e.Evaluate(func(req LicenseReq) bool {
			return tt.satisfied[req.License.ID.ShortName()]
		})
		if got != tt.want {
			t.Errorf("Evaluate(%q) with %v = %v, want %v", tt.src, tt.satisfied, got, tt.want)
		}
	}
}

func TestEvaluateWithFailuresCollectsAllUnmet(t *testing.T) {
	e, err := Parse("MIT AND Apache-2.0 AND BSD-3-Clause", Strict())
	if err != nil {
		t.Fatal(err)
	}
	ok, unmet := e.EvaluateWithFailures(func(req LicenseReq) bool {
		return req.License.ID.ShortName() == "MIT"
	})
	if ok {
		t.Fatal("expected overall evaluation to fail")
	}
	if len(unmet) != 2 {
		t.Fatalf("unmet = %v, want 2 entries", unmet)
	}
	names := map[string]bool{}
	for _, r := range unmet {
		names[r.License.ID.ShortName()] = true
	}
	if !names["Apache-2.0"] || !names["BSD-3-Clause"] {
		t.Errorf("unmet = %v, want Apache-2.0 and BSD-3-Clause", names)
	}
}

func TestEvaluateWithFailuresEmptyIffSatisfied(t *testing.T) {
	// A failed OR branch must not leak into the unmet set once its
	// sibling satisfies the OR: the unmet set must be empty exactly when
	// the overall result is true.
	e, err := Parse("MIT OR Apache-2.0", Strict())
	if err != nil {
		t.Fatal(err)
	}
	satisfied := map[string]bool{"MIT": false, "Apache-2.0": true}
	ok, unmet := e.EvaluateWithFailures(func(req LicenseReq) bool {
		return satisfied[req.License.ID.ShortName()]
	})
	if !ok {
		t.Fatal("expected overall evaluation to succeed")
	}
	if len(unmet) != 0 {
		t.Errorf("unmet = %v, want none: result is true so the failure set must be empty", unmet)
	}
}

func TestEvaluateWithFailuresNestedOrUnderAnd(t *testing.T) {
	e, err := Parse("(MIT OR Apache-2.0) AND BSD-3-Clause", Strict())
	if err != nil {
		t.Fatal(err)
	}
	satisfied := map[string]bool{"MIT": false, "Apache-2.0": true, "BSD-3-Clause": false}
	ok, unmet := e.EvaluateWithFailures(func(req LicenseReq) bool {
		return satisfied[req.License.ID.ShortName()]
	})
	if ok {
		t.Fatal("expected overall evaluation to fail")
	}
	// The satisfied OR branch (Apache-2.0) must not appear; only the
	// failing AND sibling (BSD-3-Clause) should.
	if len(unmet) != 1 || unmet[0].License.ID.ShortName() != "BSD-3-Clause" {
		t.Errorf("unmet = %v, want exactly [BSD-3-Clause]", unmet)
	}
}

func TestEvaluateNoShortCircuitVisitsEveryLeaf(t *testing.T) {
	e, err := Parse("MIT OR Apache-2.0", Strict())
	if err != nil {
		t.Fatal(err)
	}
	var visited []string
	e.Evaluate(func(req LicenseReq) bool {
		visited = append(visited, req.License.ID.ShortName())
		return true
	})
	if len(visited) != 2 {
		t.Errorf("visited = %v, want both leaves visited despite OR's first operand satisfying", visited)
	}
}
