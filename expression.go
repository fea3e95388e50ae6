// Package spdxexpr parses, evaluates, and minimizes SPDX license
// expressions: the lexer, recursive-descent parser, postfix representation,
// Boolean evaluator, licensee satisfaction rules (including the GNU family
// table), canonicalization, and the minimized-requirements algorithm.
package spdxexpr

import (
	"strings"

	"github.com/gospdx/expr/registry"
)

// Expression is a parsed SPDX license expression: the original source plus
// its postfix program. Values are immutable once returned by Parse.
type Expression struct {
	src   string
	nodes []ExprNode
}

// Parse lexes and parses src under mode, producing an Expression whose
// postfix program captures operator precedence structurally.
func Parse(src string, mode ParseMode) (*Expression, error) {
	if strings.TrimSpace(src) == "" {
		return nil, parseErr(src, Span{Start: 0, End: len(src)}, ReasonEmpty)
	}
	p, err := newParser(src, mode)
	if err != nil {
		return nil, err
	}
	nodes, err := p.parse()
	if err != nil {
		return nil, err
	}
	return &Expression{src: src, nodes: nodes}, nil
}

// ParseLicensee parses src as exactly one LicenseReq: no operators, no
// parentheses.
func ParseLicensee(src string, mode ParseMode) (Licensee, error) {
	if strings.TrimSpace(src) == "" {
		return Licensee{}, parseErr(src, Span{Start: 0, End: len(src)}, ReasonEmpty)
	}
	p, err := newParser(src, mode)
	if err != nil {
		return Licensee{}, err
	}
	leafIdx, isLeaf, err := p.parsePrimary()
	if err != nil {
		return Licensee{}, err
	}
	if p.cur.Kind == TokWith {
		if !isLeaf {
			return Licensee{}, parseErr(src, p.cur.Span, ReasonUnexpectedToken)
		}
		if err := p.advance(); err != nil {
			return Licensee{}, err
		}
		exc, err := p.parseException()
		if err != nil {
			return Licensee{}, err
		}
		p.out[leafIdx].Req.Exception = exc
	}
	if p.cur.Kind != TokEOF {
		return Licensee{}, parseErr(src, p.cur.Span, ReasonUnexpectedToken)
	}
	if !isLeaf {
		return Licensee{}, parseErr(src, p.cur.Span, ReasonInvalidStructure)
	}
	return Licensee{req: p.out[leafIdx].Req}, nil
}

// Source returns the original string Parse was called with.
func (e *Expression) Source() string { return e.src }

// Requirements returns every LicenseReq leaf in source order.
func (e *Expression) Requirements() []LicenseReq {
	reqs := make([]LicenseReq, 0, len(e.nodes))
	for _, n := range e.nodes {
		if n.Kind == NodeReq {
			reqs = append(reqs, n.Req)
		}
	}
	return reqs
}

// Iter returns the raw postfix program, both requirement leaves and
// operators, in evaluation order.
func (e *Expression) Iter() []ExprNode {
	return e.nodes
}

// String renders e through the precedence-aware pretty-printer.
func (e *Expression) String() string {
	return displayTree(buildTree(e.nodes))
}

// Canonicalize returns an owned string that reparses under Strict():
// deprecated GNU aliases are rewritten to their -only/-or-later form, and
// deprecated non-GNU aliases are resolved through the imprecise-name map
// where possible.
func (e *Expression) Canonicalize(mode ParseMode) (string, error) {
	canon := make([]ExprNode, len(e.nodes))
	copy(canon, e.nodes)

	for i := range canon {
		if canon[i].Kind != NodeReq {
			continue
		}
		item := &canon[i].Req.License
		if item.Kind != ItemSpdx {
			continue
		}
		id := item.ID
		switch {
		case id.IsGNU() && id.GNUVariant() == registry.VariantNone:
			root, _ := id.GNURoot()
			major, minor, _ := id.Version()
			if newID, ok := registry.GNULicenseID(root, major, minor, registry.VariantOnly); ok {
				item.ID = newID
			}
		case !id.IsGNU() && id.IsDeprecated():
			if canonName, ok := registry.ImpreciseName(id.ShortName()); ok {
				if newID, ok := registry.LookupLicense(canonName); ok {
					item.ID = newID
				}
			}
		}
	}

	out := displayTree(buildTree(canon))
	if _, err := Parse(out, Strict()); err != nil {
		return "", err
	}
	return out, nil
}
