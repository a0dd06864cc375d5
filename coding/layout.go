package coding

// Grid is the mutable module matrix built up during encoding: the
// dark/light modules plus a same-shape reserved mask marking function
// patterns and format/version information that data placement and
// masking must not touch. A flat, row-major boolean buffer is used
// throughout rather than nested slices, per the core's preference for
// a compact representation over one matrix per row.
type Grid struct {
	Size     int
	mod      []bool
	reserved []bool
}

// NewGrid allocates an empty size x size grid.
func NewGrid(size int) *Grid {
	return &Grid{
		Size:     size,
		mod:      make([]bool, size*size),
		reserved: make([]bool, size*size),
	}
}

func (g *Grid) idx(r, c int) int { return r*g.Size + c }

// Get reports whether the module at (row, col) is dark.
func (g *Grid) Get(r, c int) bool { return g.mod[g.idx(r, c)] }

// Set marks the module at (row, col) dark or light and reserves it.
func (g *Grid) Set(r, c int, dark bool) {
	i := g.idx(r, c)
	g.mod[i] = dark
	g.reserved[i] = true
}

// Reserved reports whether (row, col) is a function pattern or
// format/version information module.
func (g *Grid) Reserved(r, c int) bool { return g.reserved[g.idx(r, c)] }

// drawFinder draws a 7x7 finder pattern with its top-left corner at
// (r, c): an outer dark ring, a light ring, and a dark 3x3 center.
func (g *Grid) drawFinder(r, c int) {
	for i := 0; i < 7; i++ {
		for j := 0; j < 7; j++ {
			dark := i == 0 || i == 6 || j == 0 || j == 6 ||
				(i >= 2 && i <= 4 && j >= 2 && j <= 4)
			g.Set(r+i, c+j, dark)
		}
	}
	// Separator: one module of light all around the finder, where it
	// exists inside the symbol.
	for i := -1; i <= 7; i++ {
		g.setSeparator(r+i, c-1)
		g.setSeparator(r+i, c+7)
	}
	for j := -1; j <= 7; j++ {
		g.setSeparator(r-1, c+j)
		g.setSeparator(r+7, c+j)
	}
}

func (g *Grid) setSeparator(r, c int) {
	if r < 0 || c < 0 || r >= g.Size || c >= g.Size {
		return
	}
	g.Set(r, c, false)
}

// drawAlignment draws a 5x5 alignment pattern centered at (cr, cc).
func (g *Grid) drawAlignment(cr, cc int) {
	for i := -2; i <= 2; i++ {
		for j := -2; j <= 2; j++ {
			dark := i == -2 || i == 2 || j == -2 || j == 2 || (i == 0 && j == 0)
			g.Set(cr+i, cc+j, dark)
		}
	}
}

// drawTiming draws the timing pattern along row/column axis at index
// axis, alternating dark/light starting dark, from start to end
// inclusive (both axes: row axis draws along a fixed row varying
// column, and vice versa, so this draws both in one pass since QR and
// Micro both have a horizontal and a vertical timing pattern sharing
// the same axis index).
func (g *Grid) drawTiming(axis, start, end int) {
	for i := start; i <= end; i++ {
		dark := (i-start)%2 == 0
		if !g.Reserved(axis, i) {
			g.Set(axis, i, dark)
		}
		if !g.Reserved(i, axis) {
			g.Set(i, axis, dark)
		}
	}
}

// reserveRect marks every module in [r0,r1] x [c0,c1] (inclusive,
// clamped to the grid) as reserved, for format/version info strips
// that are filled in later by format.go.
func (g *Grid) reserveRect(r0, c0, r1, c1 int) {
	if r0 < 0 {
		r0 = 0
	}
	if c0 < 0 {
		c0 = 0
	}
	if r1 >= g.Size {
		r1 = g.Size - 1
	}
	if c1 >= g.Size {
		c1 = g.Size - 1
	}
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			g.reserved[g.idx(r, c)] = true
		}
	}
}

// BuildLayout allocates and draws the function patterns for (t,
// version): finder patterns, timing patterns, alignment patterns (QR
// only), and reserves the format/version information strips. Data
// placement and masking treat every module not yet marked Reserved as
// fair game.
func BuildLayout(t SymbolType, version int) *Grid {
	size := Size(t, version)
	g := NewGrid(size)

	g.drawFinder(0, 0)
	if t == QR {
		g.drawFinder(0, size-7)
		g.drawFinder(size-7, 0)
	}

	timingAxis := 6
	timingStart, timingEnd := 8, size-9
	if t == MicroQR {
		timingAxis = 0
		timingStart, timingEnd = 8, size-1
	}
	g.drawTiming(timingAxis, timingStart, timingEnd)

	if t == QR {
		drawAlignmentPatterns(g, version)
	}

	// Format information strips.
	g.reserveRect(8, 0, 8, 8)
	g.reserveRect(0, 8, 8, 8)
	if t == QR {
		g.reserveRect(8, size-8, 8, size-1)
		g.reserveRect(size-8, 8, size-1, 8)
		// Version information blocks, v >= 7.
		if version >= 7 {
			g.reserveRect(0, size-11, 5, size-9)
			g.reserveRect(size-11, 0, size-9, 5)
		}
		// The dark module, always dark and always reserved.
		g.Set(size-8, 8, true)
	}

	return g
}

// drawAlignmentPatterns draws every alignment pattern for QR version,
// at the Cartesian product of the per-version center list, excluding
// the three pairs that would collide with a finder pattern (the
// top-left pair (first, first), and the top-right and bottom-left
// pairs (first, last) and (last, first)). This is the resolution adopted for the open
// question of how alignment centers interact with the finder
// corners: only the three actual finder-corner pairs are excluded,
// nothing else.
func drawAlignmentPatterns(g *Grid, version int) {
	centers := vtab[versionIndex(QR, version)].alignCenter
	if len(centers) == 0 {
		return
	}
	first, last := centers[0], centers[len(centers)-1]
	for _, cr := range centers {
		for _, cc := range centers {
			if (cr == first && cc == first) ||
				(cr == first && cc == last) ||
				(cr == last && cc == first) {
				continue
			}
			g.drawAlignment(cr, cc)
		}
	}
}
