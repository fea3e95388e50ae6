package spdxexpr

// ParseMode configures how tolerant the lexer and parser are of
// non-canonical input. Construct from Strict() or Lax() and override
// individual fields. The zero value has every relaxation off and is
// identical to Strict().
type ParseMode struct {
	// AllowLowerCaseOperators accepts "and"/"or"/"with" (legacy).
	AllowLowerCaseOperators bool
	// AllowSlashAsOr treats a standalone "/" as OR.
	AllowSlashAsOr bool
	// AllowImpreciseLicenseNames maps common misspellings to canonical
	// ids via the registry's small fixup table.
	AllowImpreciseLicenseNames bool
	// AllowPostfixPlusOnGPL accepts "GPL-2.0+" as "GPL-2.0-or-later".
	AllowPostfixPlusOnGPL bool
	// AllowDeprecated accepts deprecated license/exception ids. Default
	// false under Strict(), true under Lax().
	AllowDeprecated bool
	// AllowUnknown reinterprets an unresolved bare identifier as
	// LicenseRef-<id> (or AdditionRef-<id> after WITH) instead of
	// failing.
	AllowUnknown bool
}

// Strict returns the conservative preset: no relaxations at all.
func Strict() ParseMode {
	return ParseMode{}
}

// Lax returns every relaxation enabled, including AllowDeprecated.
func Lax() ParseMode {
	return ParseMode{
		AllowLowerCaseOperators:    true,
		AllowSlashAsOr:             true,
		AllowImpreciseLicenseNames: true,
		AllowPostfixPlusOnGPL:      true,
		AllowDeprecated:            true,
		AllowUnknown:               true,
	}
}
