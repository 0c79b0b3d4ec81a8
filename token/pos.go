package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc maps byte offsets in a document to lines and columns.  The
// tokenizer records each newline offset as it passes it.
type PosDoc struct {
	d []byte
	n []int
}

func (p *PosDoc) nl(i int) {
	if len(p.n) > 0 && p.n[len(p.n)-1] >= i {
		return
	}
	p.n = append(p.n, i)
}

// LineCol returns the 1-based line and column of offset off.
func (p *PosDoc) LineCol(off int) (int, int) {
	di := sort.Search(len(p.n), func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 1, off + 1
	}
	return di + 1, off - p.n[di-1]
}

func (d *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: d,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	if p.D == nil {
		return 0, 0
	}
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	var sample string
	if p.D != nil && len(p.D.d) > 0 {
		sample = string(p.D.d[max(0, min(p.I-5, len(p.D.d))):min(p.I+5, len(p.D.d))])
	} else {
		sample = "?"
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	line, col := p.LineCol()
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, line, col)
}
