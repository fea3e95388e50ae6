package spdxexpr

import "github.com/gospdx/expr/registry"

// TokenKind discriminates the lexer's token alphabet.
type TokenKind uint8

const (
	TokSpdx TokenKind = iota
	TokLicenseRef
	TokException
	TokAdditionRef
	TokAnd
	TokOr
	TokWith
	TokPlus
	TokOpenParen
	TokCloseParen
	TokEOF
)

// Token is one lexical unit with its byte span in the source.
type Token struct {
	Kind TokenKind
	Span Span

	LicenseID   registry.LicenseID   // TokSpdx
	ExceptionID registry.ExceptionID // TokException
	Deprecated  bool                 // TokSpdx / TokException

	DocRef string // TokLicenseRef / TokAdditionRef
	Name   string // TokLicenseRef / TokAdditionRef
}
