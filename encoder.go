package qr

import (
	"fmt"

	"github.com/vvgo/qr18004/coding"
)

// Encoder accumulates segments and produces QR / Micro QR Code
// matrices. The zero value is not usable; construct one with New.
//
// An *Encoder is a purely computational, single-threaded unit of
// work: all its methods are synchronous and CPU-bound. Distinct
// Encoders may be used concurrently from different goroutines without
// coordination; a single Encoder is not safe for concurrent use by
// multiple goroutines.
type Encoder struct {
	typ     SymbolType
	version int
	level   Level
	bits    coding.Bits
}

// New constructs an Encoder for the given symbol type, version and
// error-correction level, failing with ErrInvalidArgument if version
// or level is not valid for typ.
func New(typ SymbolType, version int, level Level) (*Encoder, error) {
	if version < 1 || version > coding.MaxVersion(typ) {
		return nil, fmt.Errorf("%w: version %d invalid for %v", ErrInvalidArgument, version, typ)
	}
	if !coding.ValidLevel(typ, version, level) {
		return nil, fmt.Errorf("%w: level %v invalid for %v version %d", ErrInvalidArgument, level, typ, version)
	}
	return &Encoder{typ: typ, version: version, level: level}, nil
}

// SymbolType returns the symbol type the Encoder was constructed
// with.
func (e *Encoder) SymbolType() SymbolType { return e.typ }

// Version returns the version the Encoder was constructed with.
func (e *Encoder) Version() int { return e.version }

// Level returns the error-correction level the Encoder was
// constructed with.
func (e *Encoder) Level() Level { return e.level }

// AddCharacters appends a segment of data in the given mode to the
// accumulated bit stream. data may contain inline ECI escapes of the
// form \NNNNNN (six ASCII digits) and literal backslash escapes \\;
// ECI is not permitted for Micro QR Code. On any error the Encoder's
// state is left exactly as it was before the call.
func (e *Encoder) AddCharacters(data []byte, mode Mode) error {
	mark := e.bits.Len()
	if err := coding.EncodeSegment(&e.bits, e.typ, e.version, mode, data); err != nil {
		e.bits.Truncate(mark)
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if capacity := coding.DataCapacityBits(e.typ, e.version, e.level); e.bits.Len() > capacity {
		total := e.bits.Len()
		e.bits.Truncate(mark)
		return fmt.Errorf("%w: %d bits exceeds %d-bit capacity", ErrLengthError, total, capacity)
	}
	return nil
}

// Clear discards the accumulated bit stream.
func (e *Encoder) Clear() { e.bits.Reset() }

// GenerateMatrix builds and returns a complete symbol matrix,
// including quiet zone, from the accumulated bit stream. It does not
// modify the Encoder's state and may be called repeatedly; equal
// accumulated streams always produce equal matrices.
func (e *Encoder) GenerateMatrix() Matrix {
	g := coding.BuildLayout(e.typ, e.version)

	data := e.bits.Clone()
	capacity := coding.DataCapacityBits(e.typ, e.version, e.level)
	coding.PadToCapacity(data, capacity, e.typ, e.version)
	coding.PlaceCodewords(g, e.typ, e.version, e.level, data)

	maskID := coding.BestMask(g, e.typ)
	coding.ApplyMask(g, maskID)

	coding.PlaceFormatInfo(g, e.typ, e.version, e.level, maskID)
	coding.PlaceVersionInfo(g, e.typ, e.version)

	return newMatrix(g, quietZone(e.typ))
}
