package spdxexpr

import "github.com/gospdx/expr/registry"

// parser is a recursive-descent parser over the lexer's token stream. It
// emits its result directly as a postfix program: since postfix(A op B) ==
// postfix(A) ++ postfix(B) ++ [op], parsing left-to-right and appending
// each operator after its two operands are parsed produces postfix order
// for free, with no intermediate tree.
type parser struct {
	lex  *lexer
	src  string
	mode ParseMode
	cur  Token
	out  []ExprNode
}

func newParser(src string, mode ParseMode) (*parser, error) {
	p := &parser{lex: newLexer(src, mode), src: src, mode: mode}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// parse runs the full grammar and returns the postfix program.
func (p *parser) parse() ([]ExprNode, error) {
	if err := p.parseOr(); err != nil {
		return nil, err
	}
	switch p.cur.Kind {
	case TokEOF:
		return p.out, nil
	case TokCloseParen:
		return nil, parseErr(p.src, p.cur.Span, ReasonUnopenedParens)
	default:
		return nil, parseErr(p.src, p.cur.Span, ReasonUnexpectedToken)
	}
}

// compound := term ( (AND | OR) term )*, left-associative, AND binds
// tighter than OR.
func (p *parser) parseOr() error {
	if err := p.parseAnd(); err != nil {
		return err
	}
	for p.cur.Kind == TokOr {
		span := p.cur.Span
		if err := p.advance(); err != nil {
			return err
		}
		if err := p.parseAnd(); err != nil {
			return err
		}
		p.out = append(p.out, ExprNode{Kind: NodeOp, Op: OpOr, Span: span})
	}
	return nil
}

func (p *parser) parseAnd() error {
	if err := p.parseTerm(); err != nil {
		return err
	}
	for p.cur.Kind == TokAnd {
		span := p.cur.Span
		if err := p.advance(); err != nil {
			return err
		}
		if err := p.parseTerm(); err != nil {
			return err
		}
		p.out = append(p.out, ExprNode{Kind: NodeOp, Op: OpAnd, Span: span})
	}
	return nil
}

// term := primary (WITH exception)?. WITH binds tighter than AND and only
// ever attaches to a single license leaf, never to a parenthesized
// subexpression.
func (p *parser) parseTerm() error {
	leafIdx, isLeaf, err := p.parsePrimary()
	if err != nil {
		return err
	}
	if p.cur.Kind != TokWith {
		return nil
	}
	if !isLeaf {
		return parseErr(p.src, p.cur.Span, ReasonUnexpectedToken)
	}
	if err := p.advance(); err != nil {
		return err
	}
	exc, err := p.parseException()
	if err != nil {
		return err
	}
	leaf := &p.out[leafIdx]
	if leaf.Req.License.Kind == ItemSpdx &&
		(leaf.Req.License.ID == registry.NoAssertion || leaf.Req.License.ID == registry.None) {
		return parseErr(p.src, leaf.Span, ReasonUnexpectedToken)
	}
	leaf.Req.Exception = exc
	return nil
}

// parsePrimary parses a license leaf or a parenthesized subexpression. It
// returns the index into p.out of the leaf it just appended (isLeaf=true),
// or isLeaf=false for a parenthesized compound (which has no single leaf
// WITH can attach to).
func (p *parser) parsePrimary() (leafIdx int, isLeaf bool, err error) {
	switch p.cur.Kind {
	case TokOpenParen:
		if err := p.advance(); err != nil {
			return 0, false, err
		}
		if err := p.parseOr(); err != nil {
			return 0, false, err
		}
		if p.cur.Kind != TokCloseParen {
			return 0, false, parseErr(p.src, p.cur.Span, ReasonUnclosedParens)
		}
		if err := p.advance(); err != nil {
			return 0, false, err
		}
		return 0, false, nil

	case TokSpdx:
		tok := p.cur
		if tok.Deprecated && !p.mode.AllowDeprecated {
			return 0, false, parseErr(p.src, tok.Span, ReasonDeprecatedLicenseID)
		}
		if err := p.advance(); err != nil {
			return 0, false, err
		}
		id := tok.LicenseID
		orLater := false
		if p.cur.Kind == TokPlus {
			plusSpan := p.cur.Span
			if variant, isGNU := gnuVariantOf(id); isGNU {
				if variant != registry.VariantNone {
					return 0, false, parseErr(p.src, plusSpan, ReasonGnuPlusWithSuffix)
				}
				if !p.mode.AllowPostfixPlusOnGPL {
					return 0, false, parseErr(p.src, plusSpan, ReasonUnexpectedToken)
				}
				root, _ := id.GNURoot()
				major, minor, _ := id.Version()
				newID, ok := registry.GNULicenseID(root, major, minor, registry.VariantOrLater)
				if !ok {
					return 0, false, parseErr(p.src, plusSpan, ReasonUnexpectedToken)
				}
				id = newID
			} else {
				orLater = true
			}
			if err := p.advance(); err != nil {
				return 0, false, err
			}
		}
		node := ExprNode{Kind: NodeReq, Req: LicenseReq{License: SpdxItem(id, orLater)}, Span: tok.Span}
		p.out = append(p.out, node)
		return len(p.out) - 1, true, nil

	case TokLicenseRef:
		tok := p.cur
		if err := p.advance(); err != nil {
			return 0, false, err
		}
		node := ExprNode{Kind: NodeReq, Req: LicenseReq{License: OtherItem(tok.DocRef, tok.Name)}, Span: tok.Span}
		p.out = append(p.out, node)
		return len(p.out) - 1, true, nil

	case TokAnd, TokOr, TokWith:
		return 0, false, parseErr(p.src, p.cur.Span, ReasonMissingOperand)

	case TokEOF:
		return 0, false, parseErr(p.src, p.cur.Span, ReasonMissingOperand)

	default:
		return 0, false, parseErr(p.src, p.cur.Span, ReasonUnexpectedToken)
	}
}

func (p *parser) parseException() (*ExceptionRef, error) {
	switch p.cur.Kind {
	case TokException:
		tok := p.cur
		if tok.Deprecated && !p.mode.AllowDeprecated {
			return nil, parseErr(p.src, tok.Span, ReasonDeprecatedLicenseID)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ExceptionRef{Kind: ExceptionSpdx, ID: tok.ExceptionID}, nil

	case TokAdditionRef:
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ExceptionRef{Kind: ExceptionAddition, DocRef: tok.DocRef, Name: tok.Name}, nil

	case TokEOF, TokAnd, TokOr:
		return nil, parseErr(p.src, p.cur.Span, ReasonMissingOperand)

	default:
		return nil, parseErr(p.src, p.cur.Span, ReasonUnexpectedToken)
	}
}

func gnuVariantOf(id registry.LicenseID) (registry.GNUVariant, bool) {
	if !id.IsGNU() {
		return registry.VariantNone, false
	}
	return id.GNUVariant(), true
}
