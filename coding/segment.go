package coding

import (
	"errors"
	"fmt"
)

// Errors returned while building the segment bit stream. These are
// the two kinds named by the core's error model: invalid input for
// the declared mode or symbol, and a bit stream that would exceed
// capacity.
var (
	ErrInvalidMode     = errors.New("coding: invalid character for mode")
	ErrInvalidECI      = errors.New("coding: invalid ECI escape")
	ErrECIInMicro      = errors.New("coding: ECI not permitted in Micro QR")
	ErrModeUnsupported = errors.New("coding: mode not supported at this version")
	ErrLength          = errors.New("coding: bit stream would exceed symbol capacity")
)

var numericCL = [7]int{3, 4, 5, 6, 10, 12, 14}
var alphaCL = [7]int{0, 3, 4, 5, 9, 11, 13}
var byteCL = [7]int{0, 0, 4, 5, 8, 16, 16}
var kanjiCL = [7]int{0, 0, 3, 4, 8, 10, 12}

func charCountBits(t SymbolType, version int, mode Mode) int {
	class := sizeClass(t, version)
	switch mode {
	case Numeric:
		return numericCL[class]
	case Alphanumeric:
		return alphaCL[class]
	case Byte:
		return byteCL[class]
	case Kanji:
		return kanjiCL[class]
	}
	return 0
}

// modeIndicator writes the mode indicator for mode at (t, version)
// into b.
func modeIndicator(b *Bits, t SymbolType, version int, mode Mode) {
	if t == QR {
		switch mode {
		case Numeric:
			b.Write(0b0001, 4)
		case Alphanumeric:
			b.Write(0b0010, 4)
		case Byte:
			b.Write(0b0100, 4)
		case Kanji:
			b.Write(0b1000, 4)
		}
		return
	}
	nbits := version - 1
	if nbits == 0 {
		return // M1: mode indicator is empty, Numeric only
	}
	b.Write(uint32(mode), nbits)
}

func eciIndicator(b *Bits) { b.Write(0b0111, 4) }

// writeECIDesignator writes the ECI assignment number n in the
// shortest of the three codeword forms defined by ISO/IEC 18004:2015
// Annex F: 8, 16 or 24 bits.
func writeECIDesignator(b *Bits, n int) error {
	switch {
	case n < 0 || n > 999999:
		return fmt.Errorf("%w: designator %d out of range", ErrInvalidECI, n)
	case n < 1<<7:
		b.Write(uint32(n), 8)
	case n < 1<<14:
		b.Write(uint32(n)|(0b10<<14), 16)
	default:
		b.Write(uint32(n)|(0b110<<21), 24)
	}
	return nil
}

func alnumValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	case c == ' ':
		return 36, true
	case c == '$':
		return 37, true
	case c == '%':
		return 38, true
	case c == '*':
		return 39, true
	case c == '+':
		return 40, true
	case c == '-':
		return 41, true
	case c == '.':
		return 42, true
	case c == '/':
		return 43, true
	case c == ':':
		return 44, true
	}
	return 0, false
}

// writePayload writes the mode-specific payload of data into b. It
// assumes data is non-empty and already validated for length (Kanji
// evenness is checked here since it's intrinsic to the encoding).
func writePayload(b *Bits, mode Mode, data []byte) error {
	switch mode {
	case Numeric:
		for i := 0; i < len(data); i += 3 {
			n := len(data) - i
			if n > 3 {
				n = 3
			}
			v := 0
			for j := 0; j < n; j++ {
				c := data[i+j]
				if c < '0' || c > '9' {
					return fmt.Errorf("%w: %q in Numeric segment", ErrInvalidMode, c)
				}
				v = v*10 + int(c-'0')
			}
			bits := [4]int{0, 4, 7, 10}[n]
			b.Write(uint32(v), bits)
		}
	case Alphanumeric:
		for i := 0; i < len(data); i += 2 {
			a, ok := alnumValue(data[i])
			if !ok {
				return fmt.Errorf("%w: %q in Alphanumeric segment", ErrInvalidMode, data[i])
			}
			if i+1 < len(data) {
				c, ok := alnumValue(data[i+1])
				if !ok {
					return fmt.Errorf("%w: %q in Alphanumeric segment", ErrInvalidMode, data[i+1])
				}
				b.Write(uint32(45*a+c), 11)
			} else {
				b.Write(uint32(a), 6)
			}
		}
	case Byte:
		for _, c := range data {
			b.Write(uint32(c), 8)
		}
	case Kanji:
		if len(data)%2 != 0 {
			return fmt.Errorf("%w: odd byte count in Kanji segment", ErrInvalidMode)
		}
		for i := 0; i < len(data); i += 2 {
			cp := uint16(data[i])<<8 | uint16(data[i+1])
			var sub uint16
			switch {
			case cp >= 0x8140 && cp <= 0x9ffc:
				sub = cp - 0x8140
			case cp >= 0xe040 && cp <= 0xebbf:
				sub = cp - 0xc140
			default:
				return fmt.Errorf("%w: Shift-JIS code point %#04x out of range", ErrInvalidMode, cp)
			}
			v := uint32(sub>>8)*0xc0 + uint32(sub&0xff)
			b.Write(v, 13)
		}
	}
	return nil
}

// part is a single unit of a parsed segment call: either an ECI
// designator with no payload, or a run of mode payload bytes.
type part struct {
	isECI bool
	eci   int
	data  []byte
}

// splitECI scans data for inline ECI escapes (\NNNNNN, six ASCII
// digits) and literal backslash escapes (\\, collapsed to a single
// backslash in the output), per the core's segment builder design.
// Callers for Micro QR symbols run this the same as for QR and then
// reject any resulting part with isECI set, since \\ alone is not an
// ECI designator and remains legal there.
func splitECI(data []byte) ([]part, error) {
	var parts []part
	var cur []byte
	flush := func() {
		if len(cur) > 0 {
			parts = append(parts, part{data: cur})
			cur = nil
		}
	}
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' {
			cur = append(cur, data[i])
			continue
		}
		if i+1 < len(data) && data[i+1] == '\\' {
			cur = append(cur, '\\')
			i++
			continue
		}
		if i+6 >= len(data) {
			return nil, fmt.Errorf("%w: truncated ECI escape", ErrInvalidECI)
		}
		n := 0
		for j := 1; j <= 6; j++ {
			c := data[i+j]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("%w: non-digit in ECI escape", ErrInvalidECI)
			}
			n = n*10 + int(c-'0')
		}
		flush()
		parts = append(parts, part{isECI: true, eci: n})
		i += 6
	}
	flush()
	return parts, nil
}

// EncodeSegment appends the segment bit stream for data, declared as
// mode, to b. It parses inline ECI escapes and literal backslash
// escapes from data first (a genuine \NNNNNN ECI designator is
// forbidden for Micro QR; a literal doubled backslash is not an ECI
// escape and collapses to one output backslash as usual), then emits
// an ECI header plus mode-specific payload for each resulting part.
func EncodeSegment(b *Bits, t SymbolType, version int, mode Mode, data []byte) error {
	if !ValidMode(t, version, mode) {
		return fmt.Errorf("%w: %v at version %d", ErrModeUnsupported, mode, version)
	}
	parts, err := splitECI(data)
	if err != nil {
		return err
	}
	if t == MicroQR {
		var payload []byte
		for _, p := range parts {
			if p.isECI {
				return ErrECIInMicro
			}
			payload = append(payload, p.data...)
		}
		modeIndicator(b, t, version, mode)
		b.Write(uint32(charCount(mode, payload)), charCountBits(t, version, mode))
		return writePayload(b, mode, payload)
	}
	for _, p := range parts {
		if p.isECI {
			eciIndicator(b)
			if err := writeECIDesignator(b, p.eci); err != nil {
				return err
			}
			continue
		}
		modeIndicator(b, t, version, mode)
		b.Write(uint32(charCount(mode, p.data)), charCountBits(t, version, mode))
		if err := writePayload(b, mode, p.data); err != nil {
			return err
		}
	}
	return nil
}

// charCount returns the value of the char-count indicator: the byte
// count for all modes except Kanji, which counts 2-byte pairs.
func charCount(mode Mode, data []byte) int {
	if mode == Kanji {
		return len(data) / 2
	}
	return len(data)
}
