package qr

import (
	"strings"

	"github.com/vvgo/qr18004/coding"
)

// quietZone is the mandated light margin width, in modules, around a
// finished symbol: 4 for QR, 2 for Micro QR.
func quietZone(t SymbolType) int {
	if t == MicroQR {
		return 2
	}
	return 4
}

// Matrix is a two-dimensional grid of modules, dark=true, including
// the quiet zone. Matrix[row][col] indexes from (0,0) at the top
// left.
type Matrix [][]bool

// Size returns the side length of m, in modules.
func (m Matrix) Size() int { return len(m) }

// String renders m as two-character-wide block art, one line per row,
// for quick inspection on a terminal; it is not a supported output
// format (see the render package for PNG/PBM encoding).
func (m Matrix) String() string {
	var sb strings.Builder
	for _, row := range m {
		for _, dark := range row {
			if dark {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func newMatrix(g *coding.Grid, quiet int) Matrix {
	size := g.Size + 2*quiet
	m := make(Matrix, size)
	for r := range m {
		m[r] = make([]bool, size)
	}
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			if g.Get(r, c) {
				m[r+quiet][c+quiet] = true
			}
		}
	}
	return m
}
