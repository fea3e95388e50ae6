package spdxexpr

import "github.com/gospdx/expr/registry"

// Satisfies reports whether the accepted licensee l covers a single
// requirement leaf req.
func (l Licensee) Satisfies(req LicenseReq) bool {
	if !l.req.Exception.equal(req.Exception) {
		return false
	}
	return licenseSatisfies(l.req.License, req.License)
}

func licenseSatisfies(have, want LicenseItem) bool {
	if have.Kind != want.Kind {
		return false
	}
	if have.Kind == ItemOther {
		return have.DocRef == want.DocRef && have.LicRef == want.LicRef
	}

	if have.ID.IsSentinel() || want.ID.IsSentinel() {
		return false
	}
	if have.ID.IsGNU() || want.ID.IsGNU() {
		return gnuSatisfies(have.ID, want.ID)
	}
	if have.ID == want.ID {
		return true
	}
	if want.OrLater {
		return have.ID.Base() == want.ID.Base() && versionGE(have.ID, want.ID)
	}
	return false
}

func versionGE(have, want registry.LicenseID) bool {
	hMaj, hMin, hOk := have.Version()
	wMaj, wMin, wOk := want.Version()
	if !hOk || !wOk {
		return false
	}
	if hMaj != wMaj {
		return hMaj > wMaj
	}
	return hMin >= wMin
}

// gnuSatisfies implements the GNU family satisfaction table. Mismatched
// roots (e.g. GPL vs LGPL, or a GNU license against a non-GNU one) never
// satisfy. GFDL is checked with the same shape but never compared against
// GPL/LGPL/AGPL version orderings, since GNURoot already distinguishes it.
func gnuSatisfies(have, want registry.LicenseID) bool {
	if !have.IsGNU() || !want.IsGNU() {
		return false
	}
	hRoot, _ := have.GNURoot()
	wRoot, _ := want.GNURoot()
	if hRoot != wRoot {
		return false
	}
	hMaj, hMin, hOk := have.Version()
	wMaj, wMin, wOk := want.Version()
	if !hOk || !wOk {
		return false
	}

	hOrLater := have.GNUVariant() == registry.VariantOrLater
	wOrLater := want.GNUVariant() == registry.VariantOrLater

	switch {
	case hMaj == wMaj && hMin == wMin:
		return true
	case hMaj > wMaj || (hMaj == wMaj && hMin > wMin):
		return wOrLater
	default:
		return hOrLater && wOrLater
	}
}
