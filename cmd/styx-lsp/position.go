package main

import (
	"unicode/utf8"

	"go.lsp.dev/protocol"
)

// LSP columns count UTF-16 code units, document columns count bytes.

func (d *document) position(off int) protocol.Position {
	off = min(max(off, 0), len(d.content))
	line, _ := d.pos.LineCol(off)
	start := d.pos.Offset(line, 0)
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(utf16Len(d.content[start:off])),
	}
}

func (d *document) rangeOf(start, end int) protocol.Range {
	return protocol.Range{Start: d.position(start), End: d.position(end)}
}

// offset is the inverse of position.  Characters past the end of a line
// are clamped to it.
func (d *document) offset(p protocol.Position) int {
	start := d.pos.Offset(int(p.Line), 0)
	lineEnd := d.pos.Offset(int(p.Line), len(d.content))
	n := int(p.Character)
	i := start
	for i < lineEnd && n > 0 {
		r, size := utf8.DecodeRuneInString(d.content[i:])
		n -= utf16Units(r)
		i += size
	}
	return i
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16Units(r)
	}
	return n
}

func utf16Units(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}
