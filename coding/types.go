// Package coding implements the low-level QR and Micro QR Code
// encoding pipeline: segment bit-stream assembly, Reed-Solomon error
// correction, matrix layout, codeword placement, masking and format
// information, per ISO/IEC 18004:2015.
package coding

import "fmt"

// SymbolType distinguishes a full QR Code symbol from a Micro QR Code
// symbol.
type SymbolType int

const (
	QR SymbolType = iota
	MicroQR
)

func (t SymbolType) String() string {
	if t == MicroQR {
		return "Micro QR"
	}
	return "QR"
}

// Level is the error-correction level. ErrorDetectionOnly is valid
// only for Micro QR version 1, which requires it.
type Level int

const (
	L Level = iota
	M
	Q
	H
	ErrorDetectionOnly
)

func (l Level) String() string {
	switch l {
	case L:
		return "L"
	case M:
		return "M"
	case Q:
		return "Q"
	case H:
		return "H"
	case ErrorDetectionOnly:
		return "ErrorDetectionOnly"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// tableIndex maps a Level to the 0..3 index used by the version
// tables (L=0, M=1, Q=2, H=3). ErrorDetectionOnly is treated as L for
// table lookup, per the Micro M1 layout, which has only one level.
func (l Level) tableIndex() int {
	if l == ErrorDetectionOnly {
		return int(L)
	}
	return int(l)
}

// Mode is a segment's encoding mode.
type Mode int

const (
	Numeric Mode = iota
	Alphanumeric
	Byte
	Kanji
)

func (m Mode) String() string {
	switch m {
	case Numeric:
		return "Numeric"
	case Alphanumeric:
		return "Alphanumeric"
	case Byte:
		return "Byte"
	case Kanji:
		return "Kanji"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Size returns the side length of the symbol, in modules, excluding
// the quiet zone.
func Size(t SymbolType, version int) int {
	if t == MicroQR {
		return 11 + 2*(version-1)
	}
	return 21 + 4*(version-1)
}

// MaxVersion returns the highest valid version number for t.
func MaxVersion(t SymbolType) int {
	if t == MicroQR {
		return 4
	}
	return 40
}

// sizeClass returns the index 0..6 into the char-count length tables
// (numericCL, alphaCL, byteCL, kanjiCL) for
// (type, version): 0-3 are Micro M1-M4, 4-6 are QR version buckets
// 1-9, 10-26, 27-40.
func sizeClass(t SymbolType, version int) int {
	if t == MicroQR {
		return version - 1
	}
	switch {
	case version <= 9:
		return 4
	case version <= 26:
		return 5
	default:
		return 6
	}
}

// ValidLevel reports whether level is a legal error-correction level
// for (t, version).
func ValidLevel(t SymbolType, version int, level Level) bool {
	if t == QR {
		return level == L || level == M || level == Q || level == H
	}
	switch version {
	case 1:
		return level == ErrorDetectionOnly
	case 4:
		return level == L || level == M || level == Q
	default: // 2, 3
		return level == L || level == M
	}
}

// ValidMode reports whether mode is usable in (t, version): Micro M1
// supports only Numeric, M2 adds Alphanumeric, M3 and M4 add Byte and
// Kanji.
func ValidMode(t SymbolType, version int, mode Mode) bool {
	if t == QR {
		return true
	}
	switch version {
	case 1:
		return mode == Numeric
	case 2:
		return mode == Numeric || mode == Alphanumeric
	default: // 3, 4
		return true
	}
}
