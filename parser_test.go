package spdxexpr

import (
	"errors"
	"testing"
)

func TestParseSimple(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"MIT", "MIT"},
		{"MIT OR Apache-2.0", "MIT OR Apache-2.0"},
		{"MIT AND Apache-2.0", "MIT AND Apache-2.0"},
		{"MIT OR Apache-2.0 AND BSD-3-Clause", "MIT OR Apache-2.0 AND BSD-3-Clause"},
		{"(MIT OR Apache-2.0) AND BSD-3-Clause", "(MIT OR Apache-2.0) AND BSD-3-Clause"},
		{"MIT AND (Apache-2.0 OR BSD-3-Clause)", "MIT AND (Apache-2.0 OR BSD-3-Clause)"},
		{"GPL-2.0-only WITH Classpath-exception-2.0", "GPL-2.0-only WITH Classpath-exception-2.0"},
		{"Apache-2.0+", "Apache-2.0+"},
		{"LicenseRef-my-license", "LicenseRef-my-license"},
		{"DocumentRef-foo:LicenseRef-bar", "DocumentRef-foo:LicenseRef-bar"},
	}
	for _, tt := range tests {
		e, err := Parse(tt.src, Strict())
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tt.src, err)
		}
		if got := e.String(); got != tt.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestParsePrecedence(t *testing.T) {
	e, err := Parse("MIT AND Apache-2.0 OR BSD-3-Clause AND ISC", Strict())
	if err != nil {
		t.Fatal(err)
	}
	// AND binds tighter than OR: (MIT AND Apache-2.0) OR (BSD-3-Clause AND ISC).
	want := "MIT AND Apache-2.0 OR BSD-3-Clause AND ISC"
	if got := e.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	reqs := e.Requirements()
	if len(reqs) != 4 {
		t.Fatalf("Requirements() len = %d, want 4", len(reqs))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src        string
		mode       ParseMode
		wantReason Reason
	}{
		{"", Strict(), ReasonEmpty},
		{"   ", Strict(), ReasonEmpty},
		{"(MIT", Strict(), ReasonUnclosedParens},
		{"MIT)", Strict(), ReasonUnopenedParens},
		{"MIT AND", Strict(), ReasonMissingOperand},
		{"AND MIT", Strict(), ReasonMissingOperand},
		{"MIT OR OR Apache-2.0", Strict(), ReasonMissingOperand},
		{"NOPE-1.0", Strict(), ReasonUnknownLicense},
		{"MIT WITH NOPE-EXCEPTION", Strict(), ReasonUnknownTerm},
		{"GPL-2.0-only+", Strict(), ReasonGnuPlusWithSuffix},
		{"GPL-2.0+", Strict(), ReasonDeprecatedLicenseID},
		{"MIT Apache-2.0", Strict(), ReasonUnexpectedToken},
		{"Classpath-exception-2.0", Strict(), ReasonUnexpectedToken},
	}
	for _, tt := range tests {
		_, err := Parse(tt.src, tt.mode)
		if err == nil {
			t.Errorf("Parse(%q): expected error %v, got nil", tt.src, tt.wantReason)
			continue
		}
		if !errors.Is(err, tt.wantReason) {
			t.Errorf("Parse(%q): error = %v, want reason %v", tt.src, err, tt.wantReason)
		}
	}
}

func TestParseDeprecatedTrumpsPlus(t *testing.T) {
	// parse("GPL-2.0+") under Strict fails with DeprecatedLicenseID, not a
	// plus-related error, because the deprecated check happens before the
	// trailing "+" is considered.
	_, err := Parse("GPL-2.0+", Strict())
	if !errors.Is(err, ReasonDeprecatedLicenseID) {
		t.Fatalf("Parse(\"GPL-2.0+\") error = %v, want ReasonDeprecatedLicenseID", err)
	}
}

func TestParseLaxAllowsPostfixPlusOnGPL(t *testing.T) {
	e, err := Parse("GPL-2.0+", Lax())
	if err != nil {
		t.Fatalf("Parse(\"GPL-2.0+\", Lax()): %v", err)
	}
	want := "GPL-2.0-or-later"
	if got := e.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseLaxImpreciseNames(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"Apache 2.0", "Apache-2.0"},
		{"Apache License 2.0", "Apache-2.0"},
		{"mozilla public license 2.0", "MPL-2.0"},
		{"gpl v2", "GPL-2.0-only"},
		{"new bsd license", "BSD-3-Clause"},
		{"apache2", "Apache-2.0"},
	}
	for _, tt := range tests {
		e, err := Parse(tt.src, Lax())
		if err != nil {
			t.Fatalf("Parse(%q, Lax()): %v", tt.src, err)
		}
		if got := e.String(); got != tt.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestParseLaxImprecisePhraseStopsAtOperator(t *testing.T) {
	// The phrase scanner must never fold a reserved keyword into the
	// phrase it's matching, even when a prefix of the remaining words
	// would otherwise be a candidate.
	e, err := Parse("mit license AND Apache-2.0", Lax())
	if err != nil {
		t.Fatalf("Parse(...): %v", err)
	}
	reqs := e.Requirements()
	if len(reqs) != 2 {
		t.Fatalf("Requirements() = %v, want 2 entries", reqs)
	}
	if reqs[0].License.ID.ShortName() != "MIT" {
		t.Errorf("first requirement = %+v, want MIT", reqs[0])
	}
	if reqs[1].License.ID.ShortName() != "Apache-2.0" {
		t.Errorf("second requirement = %+v, want Apache-2.0", reqs[1])
	}
}

func TestParseLaxUnknownBecomesLicenseRef(t *testing.T) {
	e, err := Parse("SomeRandomLicense", Lax())
	if err != nil {
		t.Fatalf("Parse(..., Lax()): %v", err)
	}
	reqs := e.Requirements()
	if len(reqs) != 1 || reqs[0].License.Kind != ItemOther {
		t.Fatalf("expected a single ItemOther requirement, got %+v", reqs)
	}
}

func TestParseNoAssertionRejectsWith(t *testing.T) {
	_, err := Parse("NOASSERTION WITH Classpath-exception-2.0", Strict())
	if !errors.Is(err, ReasonUnexpectedToken) {
		t.Fatalf("Parse(NOASSERTION WITH ...) error = %v, want ReasonUnexpectedToken", err)
	}
}

func TestParseWithOnParenGroupRejected(t *testing.T) {
	_, err := Parse("(MIT OR Apache-2.0) WITH Classpath-exception-2.0", Strict())
	if err == nil {
		t.Fatal("expected an error attaching WITH to a parenthesized group")
	}
}
