// Package qr implements a QR Code / Micro QR Code encoder conforming
// to ISO/IEC 18004:2015. It builds a complete module matrix from one
// or more typed text segments: it does not parse command lines,
// render pixels, or convert between character sets, all of which are
// left to callers (see the render and cmd/qrencode packages for one
// way to do each).
package qr

import "github.com/vvgo/qr18004/coding"

// SymbolType, Level and Mode are aliases of the coding package's
// types, re-exported here so that callers of this package's API never
// need to import coding directly.
type (
	SymbolType = coding.SymbolType
	Level      = coding.Level
	Mode       = coding.Mode
)

const (
	QR      = coding.QR
	MicroQR = coding.MicroQR
)

const (
	L                  = coding.L
	M                  = coding.M
	Q                  = coding.Q
	H                  = coding.H
	ErrorDetectionOnly = coding.ErrorDetectionOnly
)

const (
	Numeric      = coding.Numeric
	Alphanumeric = coding.Alphanumeric
	Byte         = coding.Byte
	Kanji        = coding.Kanji
)
