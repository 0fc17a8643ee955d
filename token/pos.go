package token

import (
	"fmt"
	"sort"
)

// PosDoc maps byte offsets of a document to 0-based line and column
// numbers.  Columns count bytes.
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	p := &PosDoc{d: d}
	for i, c := range d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	switch di {
	case 0:
		return 0, off
	default:
		return di, off - p.n[di-1] - 1
	}
}

// Offset is the inverse of LineCol.  Positions past the end of a line are
// clamped to the line end and positions past the document to its length.
func (p *PosDoc) Offset(line, col int) int {
	if line < 0 {
		return 0
	}
	start := 0
	if line > 0 {
		if line > len(p.n) {
			return len(p.d)
		}
		start = p.n[line-1] + 1
	}
	end := len(p.d)
	if line < len(p.n) {
		end = p.n[line]
	}
	return min(start+max(col, 0), end)
}

func (p *PosDoc) Pos(off int) Pos {
	l, c := p.LineCol(off)
	return Pos{Offset: off, Line: l, Col: c}
}

func (p *PosDoc) Len() int {
	return len(p.d)
}

// Pos is a position in a document.  Line and Col are 0-based.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) String() string {
	return fmt.Sprintf("offset %d (line=%d, col=%d)", p.Offset, p.Line, p.Col)
}
