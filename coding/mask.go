package coding

// maskFuncs are the eight QR mask predicates; a mask bit of true
// means the module at (i, j) is flipped.
var maskFuncs = [8]func(i, j int) bool{
	func(i, j int) bool { return (i+j)%2 == 0 },
	func(i, j int) bool { return i%2 == 0 },
	func(i, j int) bool { return j%3 == 0 },
	func(i, j int) bool { return (i+j)%3 == 0 },
	func(i, j int) bool { return (i/2+j/3)%2 == 0 },
	func(i, j int) bool { return (i*j)%2+(i*j)%3 == 0 },
	func(i, j int) bool { return ((i*j)%2+(i*j)%3)%2 == 0 },
	func(i, j int) bool { return ((i+j)%2+(i*j)%3)%2 == 0 },
}

// microMaskID maps a Micro mask id 0..3 to the underlying QR mask
// pattern it reuses.
var microMaskID = [4]int{1, 4, 6, 7}

// ApplyMask XORs every non-reserved module of g against QR mask id
// maskID (0..7).
func ApplyMask(g *Grid, maskID int) {
	f := maskFuncs[maskID]
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			if g.Reserved(r, c) {
				continue
			}
			if f(r, c) {
				g.PlaceBit(r, c, !g.Get(r, c))
			}
		}
	}
}

// cloneMod returns a copy of g's module values, for trying a mask
// without committing to it.
func cloneMod(g *Grid) []bool {
	m := make([]bool, len(g.mod))
	copy(m, g.mod)
	return m
}

// BestMask tries every permissible mask for (t, g) and returns the
// mask id that minimises the QR penalty score, or maximises the Micro
// merit score, breaking ties by the smallest id. g is left with no
// mask applied; the caller must call ApplyMask with the result.
func BestMask(g *Grid, t SymbolType) int {
	n := 8
	if t == MicroQR {
		n = 4
	}
	best := 0
	var bestScore int
	for id := 0; id < n; id++ {
		qrID := id
		if t == MicroQR {
			qrID = microMaskID[id]
		}
		trial := &Grid{Size: g.Size, mod: cloneMod(g), reserved: g.reserved}
		ApplyMask(trial, qrID)
		var score int
		if t == MicroQR {
			score = microMerit(trial)
		} else {
			score = qrPenalty(trial)
		}
		better := false
		switch {
		case id == 0:
			better = true
		case t == MicroQR:
			better = score > bestScore
		default:
			better = score < bestScore
		}
		if better {
			best = id
			bestScore = score
		}
	}
	return best
}

// qrPenalty computes the four-feature QR mask penalty score (lower is
// better), ISO/IEC 18004:2015 7.8.3.
func qrPenalty(g *Grid) int {
	score := feature1Rows(g) + feature1Cols(g) + feature2(g) + feature3(g) + feature4(g)
	return score
}

func feature1Rows(g *Grid) int {
	total := 0
	for r := 0; r < g.Size; r++ {
		run, last := 0, false
		for c := 0; c < g.Size; c++ {
			v := g.Get(r, c)
			if c > 0 && v == last {
				run++
			} else {
				if run >= 5 {
					total += 3 + (run - 5)
				}
				run = 1
			}
			last = v
		}
		if run >= 5 {
			total += 3 + (run - 5)
		}
	}
	return total
}

func feature1Cols(g *Grid) int {
	total := 0
	for c := 0; c < g.Size; c++ {
		run, last := 0, false
		for r := 0; r < g.Size; r++ {
			v := g.Get(r, c)
			if r > 0 && v == last {
				run++
			} else {
				if run >= 5 {
					total += 3 + (run - 5)
				}
				run = 1
			}
			last = v
		}
		if run >= 5 {
			total += 3 + (run - 5)
		}
	}
	return total
}

func feature2(g *Grid) int {
	total := 0
	for r := 0; r < g.Size-1; r++ {
		for c := 0; c < g.Size-1; c++ {
			v := g.Get(r, c)
			if g.Get(r, c+1) == v && g.Get(r+1, c) == v && g.Get(r+1, c+1) == v {
				total += 3
			}
		}
	}
	return total
}

// finderLike reports whether the 11 consecutive bool values starting
// at s (as dark=true) form the pattern 1:0:1:1:1:0:1:0:0:0:0 or its
// reverse.
func finderLike(s []bool) bool {
	if len(s) != 11 {
		return false
	}
	pat1 := []bool{true, false, true, true, true, false, true, false, false, false, false}
	pat2 := []bool{false, false, false, false, true, false, true, true, true, false, true}
	eq := func(pat []bool) bool {
		for i, v := range pat {
			if s[i] != v {
				return false
			}
		}
		return true
	}
	return eq(pat1) || eq(pat2)
}

func feature3(g *Grid) int {
	total := 0
	for r := 0; r < g.Size; r++ {
		for c := 0; c+11 <= g.Size; c++ {
			s := make([]bool, 11)
			for i := range s {
				s[i] = g.Get(r, c+i)
			}
			if finderLike(s) {
				total += 40
			}
		}
	}
	for c := 0; c < g.Size; c++ {
		for r := 0; r+11 <= g.Size; r++ {
			s := make([]bool, 11)
			for i := range s {
				s[i] = g.Get(r+i, c)
			}
			if finderLike(s) {
				total += 40
			}
		}
	}
	return total
}

func feature4(g *Grid) int {
	dark, total := 0, g.Size*g.Size
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			if g.Get(r, c) {
				dark++
			}
		}
	}
	p := (200*dark + total) / (2 * total) // round(100*dark/total), half up
	diff := p - 50
	if diff < 0 {
		diff = -diff
	}
	return 10 * (diff / 5)
}

// microMerit computes the Micro QR mask merit score (higher is
// better), ISO/IEC 18004:2015 7.8.3.2: 16*min(A,B) + max(A,B), where A
// is the dark module count of the last row (excluding the corner at
// column 0) and B is the dark module count of the last column
// (excluding the corner at row 0).
func microMerit(g *Grid) int {
	a, b := 0, 0
	for c := 1; c < g.Size; c++ {
		if g.Get(g.Size-1, c) {
			a++
		}
	}
	for r := 1; r < g.Size; r++ {
		if g.Get(r, g.Size-1) {
			b++
		}
	}
	min, max := a, b
	if b < a {
		min, max = b, a
	}
	return 16*min + max
}
