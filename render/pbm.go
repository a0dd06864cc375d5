package render

import (
	"bufio"
	"fmt"
	"io"
)

// EncodePBM writes a Portable Bit Map (netpbm P4) image of im to w,
// for use with tools that read raw 1-bit bitmaps. Color is not
// representable in PBM; Dark maps to the set bit.
func EncodePBM(w io.Writer, im *Image) error {
	scale := im.scale()
	m := im.Matrix
	side := m.Size() * scale
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P4\n%d %d\n", side, side); err != nil {
		return err
	}
	rowBytes := (side + 7) / 8
	row := make([]byte, rowBytes)
	for r := 0; r < m.Size(); r++ {
		for i := range row {
			row[i] = 0
		}
		for c := 0; c < m.Size(); c++ {
			if !m[r][c] {
				continue
			}
			for sx := 0; sx < scale; sx++ {
				x := c*scale + sx
				row[x/8] |= 1 << uint(7-x%8)
			}
		}
		for sy := 0; sy < scale; sy++ {
			if _, err := bw.Write(row); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
