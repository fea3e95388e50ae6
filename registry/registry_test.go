package registry

import "testing"

func TestLookupLicenseCaseInsensitive(t *testing.T) {
	tests := []string{"MIT", "mit", "Mit", "mIT"}
	for _, s := range tests {
		id, ok := LookupLicense(s)
		if !ok {
			t.Fatalf("LookupLicense(%q): not found", s)
		}
		if id.ShortName() != "MIT" {
			t.Errorf("LookupLicense(%q).ShortName() = %q, want MIT", s, id.ShortName())
		}
	}
}

func TestLookupLicenseMiss(t *testing.T) {
	if _, ok := LookupLicense("NOPE-1.0"); ok {
		t.Fatal("expected miss for unknown license")
	}
}

func TestDeprecatedGNUAliases(t *testing.T) {
	for _, name := range []string{"GPL-2.0", "GPL-3.0", "LGPL-2.1", "AGPL-3.0"} {
		id, ok := LookupLicense(name)
		if !ok {
			t.Fatalf("LookupLicense(%q): not found", name)
		}
		if !id.IsDeprecated() {
			t.Errorf("%s: IsDeprecated() = false, want true", name)
		}
		if !id.IsGNU() {
			t.Errorf("%s: IsGNU() = false, want true", name)
		}
		if v := id.GNUVariant(); v != VariantNone {
			t.Errorf("%s: GNUVariant() = %v, want VariantNone", name, v)
		}
	}
}

func TestGNULicenseIDRoundTrip(t *testing.T) {
	tests := []struct {
		root           string
		major, minor   int32
		variant        GNUVariant
		want           string
	}{
		{"GPL", 2, 0, VariantOnly, "GPL-2.0-only"},
		{"GPL", 3, 0, VariantOrLater, "GPL-3.0-or-later"},
		{"LGPL", 2, 1, VariantOnly, "LGPL-2.1-only"},
		{"AGPL", 3, 0, VariantOrLater, "AGPL-3.0-or-later"},
		{"GFDL", 1, 3, VariantOrLater, "GFDL-1.3-or-later"},
	}
	for _, tt := range tests {
		id, ok := GNULicenseID(tt.root, tt.major, tt.minor, tt.variant)
		if !ok {
			t.Fatalf("GNULicenseID(%s, %d.%d, %v): not found", tt.root, tt.major, tt.minor, tt.variant)
		}
		if id.ShortName() != tt.want {
			t.Errorf("GNULicenseID(%s, %d.%d, %v) = %q, want %q", tt.root, tt.major, tt.minor, tt.variant, id.ShortName(), tt.want)
		}
		// Round trip: root+version+variant recovers the same id.
		root, ok := id.GNURoot()
		if !ok || root != tt.root {
			t.Errorf("%s: GNURoot() = (%q, %v)", tt.want, root, ok)
		}
		got, ok := GNULicenseID(root, tt.major, tt.minor, id.GNUVariant())
		if !ok || got != id {
			t.Errorf("%s: round trip via GNURoot/GNUVariant failed", tt.want)
		}
	}
}

func TestImpreciseName(t *testing.T) {
	canon, ok := ImpreciseName("Apache 2.0")
	if !ok || canon != "Apache-2.0" {
		t.Fatalf("ImpreciseName(\"Apache 2.0\") = (%q, %v), want (Apache-2.0, true)", canon, ok)
	}
}

func TestSentinels(t *testing.T) {
	if !NoAssertion.IsSentinel() || !NoAssertion.Valid() {
		t.Error("NoAssertion should be a valid sentinel")
	}
	if !None.IsSentinel() || !None.Valid() {
		t.Error("None should be a valid sentinel")
	}
}
