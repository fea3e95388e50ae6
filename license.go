package spdxexpr

import "github.com/gospdx/expr/registry"

// ItemKind discriminates the two LicenseItem variants.
type ItemKind uint8

const (
	// ItemSpdx is a registered license, resolved against the registry.
	ItemSpdx ItemKind = iota
	// ItemOther is an unregistered user-defined license
	// (LicenseRef-... or DocumentRef-...:LicenseRef-...).
	ItemOther
)

// LicenseItem is a tagged union: either a registered SPDX license or an
// unregistered user-defined LicenseRef.
type LicenseItem struct {
	Kind ItemKind

	// Valid when Kind == ItemSpdx.
	ID      registry.LicenseID
	OrLater bool // the "+" marker; only meaningful for non-GNU ids

	// Valid when Kind == ItemOther.
	DocRef string // optional DocumentRef-<id>
	LicRef string // the LicenseRef-<id> name
}

// SpdxItem builds a LicenseItem wrapping a registered license id.
func SpdxItem(id registry.LicenseID, orLater bool) LicenseItem {
	return LicenseItem{Kind: ItemSpdx, ID: id, OrLater: orLater}
}

// OtherItem builds a LicenseItem for an unregistered LicenseRef.
func OtherItem(docRef, licRef string) LicenseItem {
	return LicenseItem{Kind: ItemOther, DocRef: docRef, LicRef: licRef}
}

// ExceptionKind discriminates the two ExceptionRef variants.
type ExceptionKind uint8

const (
	// ExceptionSpdx is a registered exception.
	ExceptionSpdx ExceptionKind = iota
	// ExceptionAddition is an unregistered AdditionRef (optionally with
	// a DocumentRef), the exception-side mirror of LicenseRef.
	ExceptionAddition
)

// ExceptionRef is a WITH clause's right-hand side.
type ExceptionRef struct {
	Kind ExceptionKind

	ID registry.ExceptionID // valid when Kind == ExceptionSpdx

	DocRef string // valid when Kind == ExceptionAddition
	Name   string // valid when Kind == ExceptionAddition
}

func (e *ExceptionRef) equal(other *ExceptionRef) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.Kind != other.Kind {
		return false
	}
	if e.Kind == ExceptionSpdx {
		return e.ID == other.ID
	}
	return e.DocRef == other.DocRef && e.Name == other.Name
}

// LicenseReq is a single leaf requirement in a parsed expression: a license
// optionally paired with a WITH exception.
type LicenseReq struct {
	License   LicenseItem
	Exception *ExceptionRef
}

// Licensee represents one accepted license (with optional exception) used
// to evaluate whether a policy satisfies a requirement.
type Licensee struct {
	req LicenseReq
}

// Requirement exposes the Licensee's underlying LicenseReq, e.g. for
// building a minimized-requirements policy from the same string a
// Licensee was parsed from.
func (l Licensee) Requirement() LicenseReq { return l.req }

func (l Licensee) String() string { return displayReq(l.req) }
