package coding

import "github.com/vvgo/qr18004/gf256"

var field = gf256.NewField(0x11d, 2)

// point is a module coordinate.
type point struct{ row, col int }

// modulePath returns the zig-zag data module traversal order for g:
// starting at the bottom-right module, moving in vertical two-column
// strips right to left, skipping the vertical timing column (QR
// only), zig-zagging up then down in alternating strips, visiting the
// right-hand module of each row before the left-hand one. Reserved
// modules are skipped.
func modulePath(g *Grid, t SymbolType) []point {
	var path []point
	up := true
	for col := g.Size - 1; col >= 1; col -= 2 {
		if t == QR && col == 6 {
			col = 5
		}
		for i := 0; i < g.Size; i++ {
			row := i
			if up {
				row = g.Size - 1 - i
			}
			for dc := 0; dc < 2; dc++ {
				c := col - dc
				if c < 0 || g.Reserved(row, c) {
					continue
				}
				path = append(path, point{row, c})
			}
		}
		up = !up
	}
	return path
}

// PlaceBit writes a data/EC bit into a module without marking it
// reserved, so it remains subject to masking.
func (g *Grid) PlaceBit(r, c int, dark bool) { g.mod[g.idx(r, c)] = dark }

// terminatorBits returns the maximum terminator length for (t,
// version): 4 for QR, 3+2*(version-1) for Micro.
func terminatorBits(t SymbolType, version int) int {
	if t == MicroQR {
		return 3 + 2*(version-1)
	}
	return 4
}

// PadToCapacity appends the terminator, pads to a byte boundary (a
// nibble boundary for the final codeword of Micro v1/v3), and fills
// any remaining capacity with the alternating pad codewords 0xEC,
// 0x11, per ISO/IEC 18004:2015 7.4.9-7.4.10.
func PadToCapacity(b *Bits, capacityBits int, t SymbolType, version int) {
	microShort := t == MicroQR && (version == 1 || version == 3)

	term := terminatorBits(t, version)
	if remaining := capacityBits - b.Len(); term > remaining {
		term = remaining
	}
	b.Write(0, term)

	for b.Len()%8 != 0 && b.Len() < capacityBits {
		if microShort && capacityBits-b.Len() == 4 {
			break
		}
		b.Write(0, 1)
	}

	toggle := true
	for b.Len() < capacityBits {
		if capacityBits-b.Len() == 4 {
			b.Write(0, 4)
			break
		}
		if toggle {
			b.Write(0xEC, 8)
		} else {
			b.Write(0x11, 8)
		}
		toggle = !toggle
	}
}

// splitBlocks divides data into nblock blocks whose sizes differ by
// at most one codeword: the first `normal` blocks get the smaller
// size, matching ISO/IEC 18004:2015 Annex D's block-size table
// without needing to store its two-size breakdown directly.
func splitBlocks(data []byte, nblock int) [][]byte {
	total := len(data)
	small := total / nblock
	normal := (small+1)*nblock - total
	blocks := make([][]byte, nblock)
	pos := 0
	for i := 0; i < nblock; i++ {
		n := small
		if i >= normal {
			n = small + 1
		}
		blocks[i] = data[pos : pos+n]
		pos += n
	}
	return blocks
}

// interleave concatenates blocks column-wise: the k-th byte of every
// block that has one, for increasing k, so that a block boundary in
// the matrix path does not need to be tracked during placement.
func interleave(blocks [][]byte) []byte {
	max := 0
	for _, blk := range blocks {
		if len(blk) > max {
			max = len(blk)
		}
	}
	out := make([]byte, 0, max*len(blocks))
	for k := 0; k < max; k++ {
		for _, blk := range blocks {
			if k < len(blk) {
				out = append(out, blk[k])
			}
		}
	}
	return out
}

// PlaceCodewords builds the final data+EC codeword stream for the
// padded bit stream bits, per the block layout for (t, version,
// level), and writes it into g along the zig-zag module path.
func PlaceCodewords(g *Grid, t SymbolType, version int, level Level, bits *Bits) {
	bi := blockLayout(t, version, level)
	dataBytes := bits.Bytes()

	dataBlocks := splitBlocks(dataBytes, bi.nblock)
	ecBlocks := make([][]byte, bi.nblock)
	if bi.ecPerBlock > 0 {
		rs := gf256.NewRSEncoder(field, bi.ecPerBlock)
		for i, blk := range dataBlocks {
			ec := make([]byte, bi.ecPerBlock)
			rs.ECC(blk, ec)
			ecBlocks[i] = ec
		}
	}

	data := interleave(dataBlocks)
	ec := interleave(ecBlocks)

	microShort := t == MicroQR && (version == 1 || version == 3)
	path := modulePath(g, t)
	pos := 0
	writeByte := func(v byte, nbits int) {
		for i := nbits - 1; i >= 0; i-- {
			if pos >= len(path) {
				return
			}
			p := path[pos]
			g.PlaceBit(p.row, p.col, v&(1<<uint(i)) != 0)
			pos++
		}
	}
	for i, c := range data {
		nbits := 8
		if microShort && i == len(data)-1 {
			nbits = 4
			c >>= 4
		}
		writeByte(c, nbits)
	}
	for _, c := range ec {
		writeByte(c, 8)
	}
}
