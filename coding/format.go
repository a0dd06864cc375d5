package coding

// bchEncode15 computes the 15-bit BCH(15,5) systematic codeword for a
// 5-bit format data value: the 5 data bits occupy the top of the
// codeword, the 10 check bits (computed modulo the degree-10
// generator 0x537) occupy the bottom.
func bchEncode15(data uint16) uint16 {
	fb := data << 10
	rem := fb
	for i := 4; i >= 0; i-- {
		if rem&(uint16(1)<<uint(10+i)) != 0 {
			rem ^= 0x537 << uint(i)
		}
	}
	return fb | rem
}

// bchEncode18 computes the 18-bit BCH(18,6) systematic codeword for a
// 6-bit version number, generator 0x1f25 (degree 12).
func bchEncode18(data uint32) uint32 {
	fb := data << 12
	rem := fb
	for i := 5; i >= 0; i-- {
		if rem&(uint32(1)<<uint(12+i)) != 0 {
			rem ^= 0x1f25 << uint(i)
		}
	}
	return fb | rem
}

const (
	qrFormatXOR    = 0x5412
	microFormatXOR = 0x4445
)

// ecBits is the 2-bit QR error-correction-level field used in format
// information: L=01, M=00, Q=11, H=10.
func ecBits(l Level) uint16 {
	return [4]uint16{L: 0b01, M: 0b00, Q: 0b11, H: 0b10}[l]
}

// microSymbolNumber is the 3-bit Micro QR "symbol number" field used
// in format information, enumerating the seven valid (version, level)
// combinations.
func microSymbolNumber(version int, level Level) uint16 {
	switch {
	case version == 1:
		return 0
	case version == 2 && level == L:
		return 1
	case version == 2 && level == M:
		return 2
	case version == 3 && level == L:
		return 3
	case version == 3 && level == M:
		return 4
	case version == 4 && level == L:
		return 5
	case version == 4 && level == M:
		return 6
	case version == 4 && level == Q:
		return 7
	}
	return 0
}

// FormatInfo computes the final, mask-XORed 15-bit format information
// string for (t, version, level, maskID).
func FormatInfo(t SymbolType, version int, level Level, maskID int) uint16 {
	if t == MicroQR {
		data := microSymbolNumber(version, level)<<2 | uint16(maskID)
		return bchEncode15(data) ^ microFormatXOR
	}
	data := ecBits(level)<<3 | uint16(maskID)
	return bchEncode15(data) ^ qrFormatXOR
}

// VersionInfo computes the 18-bit version information string for a QR
// version (only meaningful for version >= 7).
func VersionInfo(version int) uint32 {
	return bchEncode18(uint32(version))
}

func bit(v uint32, i int) bool { return v&(1<<uint(i)) != 0 }

// PlaceFormatInfo draws the format information bits into the
// reserved strips built by BuildLayout: a single L-shaped strip
// around the lone finder for Micro QR, and that same strip plus its
// redundant transposed copy around the other two finders for QR. The
// first copy runs vertically down column 8 for the low-order bits,
// skipping the timing pattern row, then horizontally along row 8 for
// the remainder, skipping the timing pattern column.
func PlaceFormatInfo(g *Grid, t SymbolType, version int, level Level, maskID int) {
	f := uint32(FormatInfo(t, version, level, maskID))
	size := g.Size

	timingAxis := 6
	if t == MicroQR {
		timingAxis = 0
	}

	bitIndex := 0
	for i := 0; i < 8; i++ {
		if i == timingAxis {
			continue
		}
		g.Set(i, 8, bit(f, bitIndex))
		bitIndex++
	}
	for i := 8; i >= 0; i-- {
		if i == timingAxis {
			continue
		}
		g.Set(8, i, bit(f, bitIndex))
		bitIndex++
	}

	if t != QR {
		return
	}
	g.Set(size-8, 8, true) // the dark module, always dark

	for i := 0; i < 15; i++ {
		if i <= 7 {
			g.Set(8, size-1-i, bit(f, i))
		} else {
			g.Set(size-15+i, 8, bit(f, i))
		}
	}
}

// PlaceVersionInfo draws the 18-bit version information blocks for QR
// version >= 7, two identical 6x3 blocks transposed at the top-right
// and bottom-left of the symbol.
func PlaceVersionInfo(g *Grid, t SymbolType, version int) {
	if t != QR || version < 7 {
		return
	}
	v := VersionInfo(version)
	size := g.Size
	for i := 0; i < 18; i++ {
		r := i / 3
		c := i % 3
		set := bit(v, i)
		g.Set(r, size-11+c, set)
		g.Set(size-11+c, r, set)
	}
}
