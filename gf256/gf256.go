// Package gf256 implements arithmetic in GF(256) and Reed-Solomon
// error-correction encoding over that field, as used by QR code
// error correction (ISO/IEC 18004:2015 Annex A).
package gf256

import "sync"

// A Field is a representation of GF(256) generated by a primitive
// polynomial with primitive element alpha=2.  A *Field is immutable
// after NewField returns and safe for concurrent use.
type Field struct {
	exp [510]byte // exp[i] = alpha^i, duplicated past 255 to avoid wraparound checks
	log [256]byte // log[exp[i]] = i, log[0] is unused

	mu   sync.Mutex
	gens map[int][]byte // cached generator polynomials, keyed by degree
}

// NewField returns the field GF(256) defined by the primitive
// polynomial poly (e.g. 0x11d for x^8+x^4+x^3+x^2+1) with primitive
// element gen.  The only primitive element used by QR codes is 2;
// other values are not supported.
func NewField(poly uint16, gen byte) *Field {
	if gen != 2 {
		panic("gf256: only primitive element 2 is supported")
	}
	f := &Field{gens: make(map[int][]byte)}
	x := byte(1)
	for i := 0; i < 255; i++ {
		f.exp[i] = x
		f.log[x] = byte(i)
		hi := x & 0x80
		x <<= 1
		if hi != 0 {
			x ^= byte(poly)
		}
	}
	for i := 255; i < len(f.exp); i++ {
		f.exp[i] = f.exp[i-255]
	}
	return f
}

// Mul returns the product of a and b in the field.
func (f *Field) Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return f.exp[int(f.log[a])+int(f.log[b])]
}

// Exp returns alpha^e, with e taken modulo 255.
func (f *Field) Exp(e int) byte {
	e %= 255
	if e < 0 {
		e += 255
	}
	return f.exp[e]
}

// genPoly returns the coefficients of the Reed-Solomon generator
// polynomial of degree n, g(x) = product(x - alpha^i) for i=0..n-1,
// highest degree coefficient first.  The leading coefficient is
// always 1.  Results are cached, since a given (version, level) in a
// QR symbol always asks for the same degree.
func (f *Field) genPoly(n int) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	if g, ok := f.gens[n]; ok {
		return g
	}
	g := []byte{1}
	for i := 0; i < n; i++ {
		g = f.mulPoly(g, []byte{1, f.Exp(i)})
	}
	f.gens[n] = g
	return g
}

// mulPoly multiplies two polynomials with coefficients in the field,
// highest degree first.
func (f *Field) mulPoly(a, b []byte) []byte {
	res := make([]byte, len(a)+len(b)-1)
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		for j, bj := range b {
			if bj == 0 {
				continue
			}
			res[i+j] ^= f.Mul(ai, bj)
		}
	}
	return res
}

// An RSEncoder computes Reed-Solomon error-correction codewords of a
// fixed degree over a Field.  An *RSEncoder is immutable and safe for
// concurrent use.
type RSEncoder struct {
	field *Field
	gen   []byte // generator polynomial, degree n, highest coefficient first
}

// NewRSEncoder returns an RSEncoder producing n error-correction
// codewords over f.
func NewRSEncoder(f *Field, n int) *RSEncoder {
	return &RSEncoder{field: f, gen: f.genPoly(n)}
}

// ECC computes len(dst) error-correction codewords for data and
// stores them in dst, most significant byte first.  len(dst) must
// equal the degree the RSEncoder was created with.
func (rs *RSEncoder) ECC(data []byte, dst []byte) {
	n := len(rs.gen) - 1
	if len(dst) != n {
		panic("gf256: wrong EC codeword count")
	}
	buf := make([]byte, len(data)+n)
	copy(buf, data)
	for i := 0; i < len(data); i++ {
		coef := buf[i]
		if coef == 0 {
			continue
		}
		for j, g := range rs.gen {
			if g != 0 {
				buf[i+j] ^= rs.field.Mul(coef, g)
			}
		}
	}
	copy(dst, buf[len(data):])
}
