package spdxexpr

import (
	"sort"

	"github.com/gospdx/expr/registry"
)

// Valid reports whether expression is a syntactically valid SPDX expression
// under Strict(). Informal license names are rejected.
func Valid(expression string) bool {
	_, err := Parse(expression, Strict())
	return err == nil
}

// ValidLicense reports whether license is a registered SPDX short
// identifier, case-insensitively.
func ValidLicense(license string) bool {
	_, ok := registry.LookupLicense(license)
	return ok
}

// NormalizeExpression reparses expression under mode and returns its
// canonical Display form.
func NormalizeExpression(expression string, mode ParseMode) (string, error) {
	expr, err := Parse(expression, mode)
	if err != nil {
		return "", err
	}
	return expr.String(), nil
}

// Satisfies reports whether the licenses in allowed (parsed as Licensee
// values under Lax()) jointly satisfy expression.
func Satisfies(expression string, allowed []string) (bool, error) {
	expr, err := Parse(expression, Lax())
	if err != nil {
		return false, err
	}
	licensees := make([]Licensee, 0, len(allowed))
	for _, a := range allowed {
		l, err := ParseLicensee(a, Lax())
		if err != nil {
			return false, err
		}
		licensees = append(licensees, l)
	}
	return expr.Evaluate(func(req LicenseReq) bool {
		for _, l := range licensees {
			if l.Satisfies(req) {
				return true
			}
		}
		return false
	}), nil
}

// ExtractLicenses returns every distinct license identifier appearing in
// expression (exceptions are not included), sorted alphabetically.
func ExtractLicenses(expression string) ([]string, error) {
	expr, err := Parse(expression, Lax())
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var out []string
	for _, req := range expr.Requirements() {
		name := displayItem(req.License)
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out, nil
}

// ValidateLicenses reports whether every entry in licenses is a registered
// SPDX short identifier. On failure it also returns the invalid entries,
// in their original order.
func ValidateLicenses(licenses []string) (bool, []string) {
	var invalid []string
	for _, l := range licenses {
		if !ValidLicense(l) {
			invalid = append(invalid, l)
		}
	}
	return len(invalid) == 0, invalid
}
