// Package token provides lexing for Styx documents.
//
// [Lexer] produces tokens lazily from a byte slice, and [Tokenize] collects
// all of them at once.  Positions are byte offsets with 0-based line and
// column numbers, see [PosDoc].
package token
