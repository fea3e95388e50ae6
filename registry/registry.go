// Package registry is the static SPDX identifier table: short names for
// licenses and exceptions, plus the metadata flags the expression engine
// needs (deprecated, OSI-approved, FSF-libre, copyleft, GNU family and
// version). It is process-wide read-only state with no lifecycle, the
// external collaborator described by the core's lookup interface.
//
// The table covers a representative slice of the real upstream SPDX
// license list (not all ~600 entries, and none of the canonical license
// texts) — enough to exercise every code path the expression engine has:
// GNU-family variants across several versions per root, deprecated
// aliases, exceptions, versioned non-GNU licenses for the same-or-later
// "+" rule, and a handful of common imprecise names.
package registry

import "strings"

// LicenseID is an opaque handle into the license table. The zero value is
// invalid; use LookupLicense or GNULicenseID to obtain one.
type LicenseID uint16

// ExceptionID is an opaque handle into the exception table. The zero value
// is invalid; use LookupException to obtain one.
type ExceptionID uint16

// GNUVariant classifies how a GNU-family license id encodes "or later".
type GNUVariant uint8

const (
	// VariantNone is a bare, deprecated GNU identifier carrying no
	// -only/-or-later suffix (e.g. "GPL-2.0").
	VariantNone GNUVariant = iota
	// VariantOnly is the modern "-only" suffix.
	VariantOnly
	// VariantOrLater is the modern "-or-later" suffix.
	VariantOrLater
)

type licenseEntry struct {
	name         string
	fullName     string
	deprecated   bool
	osiApproved  bool
	fsfLibre     bool
	copyleft     bool
	gnuRoot      string // "GPL", "LGPL", "AGPL", "GFDL", or "" if not GNU family
	gnuVariant   GNUVariant
	base         string // family name, version included for GNU ids (spec: "GPL-2.0")
	verMajor     int32
	verMinor     int32
	hasVersion   bool
	isSentinel   bool // NOASSERTION / NONE
}

type exceptionEntry struct {
	name       string
	deprecated bool
}

var (
	licenseByLower   map[string]LicenseID
	exceptionByLower map[string]ExceptionID
	gnuIndex         map[string]LicenseID // "GPL|2.0|1" (root|major.minor|variant) -> id

	// NoAssertion is the sentinel meaning "the licensing is unknown or
	// unspecified"; it is accepted by the parser but matches nothing.
	NoAssertion LicenseID
	// None is the sentinel meaning "no license information provided at
	// all" — distinct from NoAssertion in intent, identical in matching
	// behavior (matches nothing, rejects WITH).
	None LicenseID
)

func init() {
	licenseByLower = make(map[string]LicenseID, len(licenses))
	for i, e := range licenses {
		id := LicenseID(i + 1)
		licenseByLower[strings.ToLower(e.name)] = id
		if e.name == "NOASSERTION" {
			NoAssertion = id
		}
		if e.name == "NONE" {
			None = id
		}
	}

	exceptionByLower = make(map[string]ExceptionID, len(exceptions))
	for i, e := range exceptions {
		exceptionByLower[strings.ToLower(e.name)] = ExceptionID(i + 1)
	}

	gnuIndex = make(map[string]LicenseID, len(licenses))
	for i, e := range licenses {
		if e.gnuRoot == "" {
			continue
		}
		gnuIndex[gnuKey(e.gnuRoot, e.verMajor, e.verMinor, e.gnuVariant)] = LicenseID(i + 1)
	}
}

func gnuKey(root string, major, minor int32, variant GNUVariant) string {
	var b strings.Builder
	b.WriteString(root)
	b.WriteByte('|')
	b.WriteString(itoa(major))
	b.WriteByte('.')
	b.WriteString(itoa(minor))
	b.WriteByte('|')
	b.WriteByte(byte('0' + variant))
	return b.String()
}

func itoa(n int32) string {
	if n == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func (id LicenseID) entry() *licenseEntry {
	if id == 0 || int(id) > len(licenses) {
		return nil
	}
	return &licenses[id-1]
}

// Valid reports whether id was obtained from this registry.
func (id LicenseID) Valid() bool { return id.entry() != nil }

// ShortName is the canonical SPDX short identifier, e.g. "MIT".
func (id LicenseID) ShortName() string {
	if e := id.entry(); e != nil {
		return e.name
	}
	return ""
}

// FullName is the human-readable license name.
func (id LicenseID) FullName() string {
	if e := id.entry(); e != nil {
		return e.fullName
	}
	return ""
}

// IsDeprecated reports whether upstream SPDX has deprecated this id.
func (id LicenseID) IsDeprecated() bool {
	if e := id.entry(); e != nil {
		return e.deprecated
	}
	return false
}

// IsOSIApproved reports OSI approval.
func (id LicenseID) IsOSIApproved() bool {
	if e := id.entry(); e != nil {
		return e.osiApproved
	}
	return false
}

// IsFSFLibre reports FSF "free" classification.
func (id LicenseID) IsFSFLibre() bool {
	if e := id.entry(); e != nil {
		return e.fsfLibre
	}
	return false
}

// IsCopyleft reports whether the license imposes copyleft obligations.
func (id LicenseID) IsCopyleft() bool {
	if e := id.entry(); e != nil {
		return e.copyleft
	}
	return false
}

// IsGNU reports membership in the GPL/LGPL/AGPL/GFDL family.
func (id LicenseID) IsGNU() bool {
	if e := id.entry(); e != nil {
		return e.gnuRoot != ""
	}
	return false
}

// GNURoot returns the GNU family root ("GPL", "LGPL", "AGPL", "GFDL") and
// true, or ("", false) if id is not a GNU-family license.
func (id LicenseID) GNURoot() (string, bool) {
	if e := id.entry(); e != nil && e.gnuRoot != "" {
		return e.gnuRoot, true
	}
	return "", false
}

// GNUVariant reports how id spells "or later". Meaningless if !IsGNU().
func (id LicenseID) GNUVariant() GNUVariant {
	if e := id.entry(); e != nil {
		return e.gnuVariant
	}
	return VariantNone
}

// Base returns the version-stripped family name used for the same-or-later
// "+" comparison (e.g. "Apache" for "Apache-2.0"). For GNU-family licenses
// it returns the root plus version, e.g. "GPL-2.0" for "GPL-2.0-only".
func (id LicenseID) Base() string {
	if e := id.entry(); e != nil {
		return e.base
	}
	return ""
}

// Version returns the numeric (major, minor) version embedded in the id,
// if any.
func (id LicenseID) Version() (major, minor int32, ok bool) {
	if e := id.entry(); e != nil && e.hasVersion {
		return e.verMajor, e.verMinor, true
	}
	return 0, 0, false
}

// IsSentinel reports whether id is NOASSERTION or NONE.
func (id LicenseID) IsSentinel() bool {
	if e := id.entry(); e != nil {
		return e.isSentinel
	}
	return false
}

func (id ExceptionID) entry() *exceptionEntry {
	if id == 0 || int(id) > len(exceptions) {
		return nil
	}
	return &exceptions[id-1]
}

// Valid reports whether id was obtained from this registry.
func (id ExceptionID) Valid() bool { return id.entry() != nil }

// ShortName is the canonical SPDX exception short identifier.
func (id ExceptionID) ShortName() string {
	if e := id.entry(); e != nil {
		return e.name
	}
	return ""
}

// IsDeprecated reports whether upstream SPDX has deprecated this exception.
func (id ExceptionID) IsDeprecated() bool {
	if e := id.entry(); e != nil {
		return e.deprecated
	}
	return false
}

// LookupLicense resolves a short name (case-insensitively) to a LicenseID.
// It reports ok=false on a miss.
func LookupLicense(name string) (LicenseID, bool) {
	id, ok := licenseByLower[strings.ToLower(name)]
	return id, ok
}

// LookupException resolves a short name (case-insensitively) to an
// ExceptionID. It reports ok=false on a miss.
func LookupException(name string) (ExceptionID, bool) {
	id, ok := exceptionByLower[strings.ToLower(name)]
	return id, ok
}

// GNULicenseID looks up the GNU-family id for the given root
// ("GPL"/"LGPL"/"AGPL"/"GFDL"), version and variant. VariantNone is only
// meaningful for the handful of deprecated bare aliases that exist.
func GNULicenseID(root string, major, minor int32, variant GNUVariant) (LicenseID, bool) {
	id, ok := gnuIndex[gnuKey(root, major, minor, variant)]
	return id, ok
}

// ImpreciseName maps a common misspelling or informal name to its
// canonical SPDX short name, for ParseMode.AllowImpreciseLicenseNames.
func ImpreciseName(name string) (string, bool) {
	canon, ok := impreciseNames[strings.ToLower(name)]
	return canon, ok
}
