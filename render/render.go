// Package render provides downstream bitmap renderers for a qr.Matrix:
// an image.Image adapter (for use with any standard library image
// encoder, e.g. image/png) and a direct PBM (netpbm) writer. Neither
// is part of the encoding core; both are plain consumers of its
// public Matrix type.
package render

import qr "github.com/vvgo/qr18004"

// Image adapts a qr.Matrix to image.Image, drawing each module as a
// scale x scale block of Dark or Light, surrounded by the matrix's
// own quiet zone (already included in the Matrix).
type Image struct {
	Matrix qr.Matrix
	Scale  int
	Dark   [3]byte
	Light  [3]byte
}
