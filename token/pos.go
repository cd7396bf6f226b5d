package token

import (
	"sort"
	"strconv"
)

type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	res := &PosDoc{d: d}
	for i, c := range d {
		if c == '\n' {
			res.n = append(res.n, i)
		}
	}
	return res
}

func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	switch di {
	case 0:
		return 0, off
	case N:
		if N != 0 {
			return di, off - p.n[di-1] - 1
		}
		return 0, off
	default:
		return di, off - p.n[di-1] - 1
	}
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{I: i, D: p}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) String() string {
	if p.D == nil {
		return strconv.Itoa(p.I)
	}
	line, col := p.D.LineCol(p.I)
	return strconv.Itoa(line+1) + ":" + strconv.Itoa(col+1)
}
