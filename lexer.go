package spdxexpr

import (
	"strings"

	"github.com/gospdx/expr/registry"
)

// lexer produces a lazy, finite, non-restartable sequence of tokens from an
// SPDX expression string.
type lexer struct {
	src      string
	pos      int
	mode     ParseMode
	prevKind TokenKind
	hasPrev  bool

	pendingPlus bool
	pendingSpan Span
}

func newLexer(src string, mode ParseMode) *lexer {
	return &lexer{src: src, mode: mode}
}

func isWordStart(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

func isWordChar(b byte) bool {
	return isWordStart(b) || b == '.' || b == '-' || b == '+'
}

func isIdstringChar(b byte) bool {
	return isWordStart(b) || b == '.' || b == '-'
}

func isIdstring(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isIdstringChar(s[i]) {
			return false
		}
	}
	return true
}

// idstringReason distinguishes a missing idstring (nothing followed the
// "LicenseRef-"/"AdditionRef-" prefix) from a present-but-malformed one.
func idstringReason(s string) Reason {
	if s == "" {
		return ReasonIdstringTerm
	}
	return ReasonIdstring
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// next returns the next token, or a *ParseError on a lexical failure.
func (l *lexer) next() (Token, error) {
	if l.pendingPlus {
		l.pendingPlus = false
		tok := Token{Kind: TokPlus, Span: l.pendingSpan}
		l.setPrev(tok.Kind)
		return tok, nil
	}

	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}

	if l.pos >= len(l.src) {
		tok := Token{Kind: TokEOF, Span: Span{Start: l.pos, End: l.pos}}
		l.setPrev(tok.Kind)
		return tok, nil
	}

	start := l.pos
	ch := l.src[l.pos]

	switch ch {
	case '(':
		l.pos++
		tok := Token{Kind: TokOpenParen, Span: Span{Start: start, End: l.pos}}
		l.setPrev(tok.Kind)
		return tok, nil
	case ')':
		l.pos++
		tok := Token{Kind: TokCloseParen, Span: Span{Start: start, End: l.pos}}
		l.setPrev(tok.Kind)
		return tok, nil
	case '/':
		l.pos++
		if !l.mode.AllowSlashAsOr {
			return Token{}, parseErr(l.src, Span{Start: start, End: l.pos}, ReasonInvalidCharacters)
		}
		tok := Token{Kind: TokOr, Span: Span{Start: start, End: l.pos}}
		l.setPrev(tok.Kind)
		return tok, nil
	}

	if !isWordStart(ch) {
		return Token{}, parseErr(l.src, Span{Start: start, End: start + 1}, ReasonInvalidCharacters)
	}

	if l.mode.AllowImpreciseLicenseNames {
		if id, end, ok := l.matchImprecisePhrase(start); ok {
			l.pos = end
			tok := Token{Kind: TokSpdx, Span: Span{Start: start, End: end}, LicenseID: id, Deprecated: id.IsDeprecated()}
			l.setPrev(tok.Kind)
			return tok, nil
		}
	}

	for l.pos < len(l.src) {
		c := l.src[l.pos]
		// A ':' only continues a word after a DocumentRef- prefix, so
		// "DocumentRef-<doc>:LicenseRef-<name>" lexes as one word.
		if !isWordChar(c) && !(c == ':' && strings.HasPrefix(strings.ToUpper(l.src[start:l.pos]), "DOCUMENTREF-")) {
			break
		}
		l.pos++
	}
	raw := l.src[start:l.pos]
	end := l.pos

	word := raw
	if strings.HasSuffix(word, "+") {
		word = word[:len(word)-1]
		l.pendingPlus = true
		end--
		l.pendingSpan = Span{Start: end, End: end + 1}
	}

	tok, err := l.resolveWord(word, Span{Start: start, End: end})
	if err != nil {
		l.pendingPlus = false
		return Token{}, err
	}
	l.setPrev(tok.Kind)
	return tok, nil
}

func (l *lexer) setPrev(k TokenKind) {
	l.prevKind = k
	l.hasPrev = true
}

func (l *lexer) prevWasWith() bool {
	return l.hasPrev && l.prevKind == TokWith
}

func (l *lexer) resolveWord(word string, span Span) (Token, error) {
	kw := word
	if l.mode.AllowLowerCaseOperators {
		kw = strings.ToUpper(word)
	}
	switch kw {
	case "AND":
		return Token{Kind: TokAnd, Span: span}, nil
	case "OR":
		return Token{Kind: TokOr, Span: span}, nil
	case "WITH":
		return Token{Kind: TokWith, Span: span}, nil
	}

	upper := strings.ToUpper(word)

	switch {
	case strings.HasPrefix(upper, "DOCUMENTREF-"):
		return l.resolveDocumentRef(word, span)
	case strings.HasPrefix(upper, "LICENSEREF-"):
		name := word[len("LicenseRef-"):]
		if !isIdstring(name) {
			return Token{}, parseErr(l.src, span, idstringReason(name))
		}
		return Token{Kind: TokLicenseRef, Span: span, Name: name}, nil
	case strings.HasPrefix(upper, "ADDITIONREF-") && l.prevWasWith():
		name := word[len("AdditionRef-"):]
		if !isIdstring(name) {
			return Token{}, parseErr(l.src, span, idstringReason(name))
		}
		return Token{Kind: TokAdditionRef, Span: span, Name: name}, nil
	}

	return l.resolveRegistry(word, span)
}

func (l *lexer) resolveDocumentRef(word string, span Span) (Token, error) {
	rest := word[len("DocumentRef-"):]
	upperRest := strings.ToUpper(rest)

	if idx := strings.Index(upperRest, ":LICENSEREF-"); idx != -1 {
		doc := rest[:idx]
		name := rest[idx+len(":LicenseRef-"):]
		if !isIdstring(doc) {
			return Token{}, parseErr(l.src, span, idstringReason(doc))
		}
		if !isIdstring(name) {
			return Token{}, parseErr(l.src, span, idstringReason(name))
		}
		return Token{Kind: TokLicenseRef, Span: span, DocRef: doc, Name: name}, nil
	}
	if idx := strings.Index(upperRest, ":ADDITIONREF-"); idx != -1 {
		if !l.prevWasWith() {
			return Token{}, parseErr(l.src, span, ReasonInvalidCharacters)
		}
		doc := rest[:idx]
		name := rest[idx+len(":AdditionRef-"):]
		if !isIdstring(doc) {
			return Token{}, parseErr(l.src, span, idstringReason(doc))
		}
		if !isIdstring(name) {
			return Token{}, parseErr(l.src, span, idstringReason(name))
		}
		return Token{Kind: TokAdditionRef, Span: span, DocRef: doc, Name: name}, nil
	}
	return Token{}, parseErr(l.src, span, ReasonInvalidCharacters)
}

func (l *lexer) resolveRegistry(word string, span Span) (Token, error) {
	if id, ok := registry.LookupLicense(word); ok {
		return Token{Kind: TokSpdx, Span: span, LicenseID: id, Deprecated: id.IsDeprecated()}, nil
	}
	if id, ok := registry.LookupException(word); ok {
		return Token{Kind: TokException, Span: span, ExceptionID: id, Deprecated: id.IsDeprecated()}, nil
	}

	if l.mode.AllowImpreciseLicenseNames {
		if canon, ok := registry.ImpreciseName(word); ok {
			if id, ok := registry.LookupLicense(canon); ok {
				return Token{Kind: TokSpdx, Span: span, LicenseID: id, Deprecated: id.IsDeprecated()}, nil
			}
		}
	}

	if l.mode.AllowUnknown {
		if l.prevWasWith() {
			return Token{Kind: TokAdditionRef, Span: span, Name: word}, nil
		}
		return Token{Kind: TokLicenseRef, Span: span, Name: word}, nil
	}

	if l.prevWasWith() {
		return Token{}, parseErr(l.src, span, ReasonUnknownTerm)
	}
	return Token{}, parseErr(l.src, span, ReasonUnknownLicense)
}

func isPhraseWordChar(b byte) bool {
	return isWordStart(b) || b == '.' || b == ',' || b == '-'
}

const maxImprecisePhraseWords = 6

// matchImprecisePhrase looks ahead from start for the longest run of
// single-space-separated words that, lowercased and joined back with
// single spaces, is a key in the imprecise-name table (e.g. "Apache
// License 2.0"). Without this, registry.ImpreciseName's many multi-word
// entries would be unreachable: the ordinary word scan in next() never
// includes whitespace, so it can only ever produce single-word lookup
// keys. A reserved keyword (AND/OR/WITH) always ends the phrase rather
// than being folded into it.
func (l *lexer) matchImprecisePhrase(start int) (registry.LicenseID, int, bool) {
	pos := start
	var words []string
	ends := []int{start}

	for len(words) < maxImprecisePhraseWords {
		if len(words) > 0 {
			if pos >= len(l.src) || l.src[pos] != ' ' {
				break
			}
			pos++
		}
		wordStart := pos
		for pos < len(l.src) && isPhraseWordChar(l.src[pos]) {
			pos++
		}
		if pos == wordStart {
			break
		}
		word := l.src[wordStart:pos]
		upper := strings.ToUpper(word)
		if upper == "AND" || upper == "OR" || upper == "WITH" {
			break
		}
		words = append(words, word)
		ends = append(ends, pos)
	}

	for n := len(words); n >= 2; n-- {
		phrase := strings.ToLower(strings.Join(words[:n], " "))
		canon, ok := registry.ImpreciseName(phrase)
		if !ok {
			continue
		}
		id, ok := registry.LookupLicense(canon)
		if !ok {
			continue
		}
		return id, ends[n], true
	}
	return 0, 0, false
}
