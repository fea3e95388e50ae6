package spdxexpr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLicenseeRejectsOperators(t *testing.T) {
	if _, err := ParseLicensee("MIT OR Apache-2.0", Strict()); err == nil {
		t.Fatal("expected an error parsing a compound expression as a single licensee")
	}
}

func TestParseLicenseeWithException(t *testing.T) {
	l, err := ParseLicensee("GPL-2.0-only WITH Classpath-exception-2.0", Strict())
	if err != nil {
		t.Fatal(err)
	}
	if l.String() != "GPL-2.0-only WITH Classpath-exception-2.0" {
		t.Errorf("String() = %q", l.String())
	}
}

func TestRequirementsAndIterAgree(t *testing.T) {
	e, err := Parse("MIT AND (Apache-2.0 OR BSD-3-Clause)", Strict())
	if err != nil {
		t.Fatal(err)
	}
	var fromIter []LicenseReq
	for _, n := range e.Iter() {
		if n.Kind == NodeReq {
			fromIter = append(fromIter, n.Req)
		}
	}
	reqs := e.Requirements()
	if diff := cmp.Diff(fromIter, reqs, cmp.Comparer(func(a, b LicenseReq) bool {
		return a.License.ID == b.License.ID && a.License.Kind == b.License.Kind
	})); diff != "" {
		t.Errorf("Requirements() vs Iter() leaves mismatch (-iter +requirements):\n%s", diff)
	}
}

func TestCanonicalizeDeprecatedGNU(t *testing.T) {
	e, err := Parse("GPL-2.0", Lax())
	if err != nil {
		t.Fatal(err)
	}
	got, err := e.Canonicalize(Strict())
	if err != nil {
		t.Fatal(err)
	}
	if got != "GPL-2.0-only" {
		t.Errorf("Canonicalize() = %q, want GPL-2.0-only", got)
	}
}

func TestCanonicalizeRoundTripsCleanExpression(t *testing.T) {
	e, err := Parse("MIT OR Apache-2.0", Strict())
	if err != nil {
		t.Fatal(err)
	}
	got, err := e.Canonicalize(Strict())
	if err != nil {
		t.Fatal(err)
	}
	if got != "MIT OR Apache-2.0" {
		t.Errorf("Canonicalize() = %q, want MIT OR Apache-2.0", got)
	}
}

func TestSourcePreservesOriginalText(t *testing.T) {
	src := "  MIT   OR   Apache-2.0  "
	e, err := Parse(src, Strict())
	if err != nil {
		t.Fatal(err)
	}
	if e.Source() != src {
		t.Errorf("Source() = %q, want %q", e.Source(), src)
	}
	if e.String() != "MIT OR Apache-2.0" {
		t.Errorf("String() = %q", e.String())
	}
}
