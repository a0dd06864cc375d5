package coding

import "testing"

func TestBuildLayoutFinderCorners(t *testing.T) {
	g := BuildLayout(QR, 1)
	// Three finder patterns: top-left, top-right, bottom-left. Their
	// outer-ring corner modules must be dark and reserved.
	for _, corner := range [][2]int{{0, 0}, {0, g.Size - 7}, {g.Size - 7, 0}} {
		if !g.Reserved(corner[0], corner[1]) {
			t.Errorf("finder corner (%d,%d) not reserved", corner[0], corner[1])
		}
		if !g.Get(corner[0], corner[1]) {
			t.Errorf("finder corner (%d,%d) not dark", corner[0], corner[1])
		}
	}
}

func TestBuildLayoutMicroSingleFinder(t *testing.T) {
	g := BuildLayout(MicroQR, 2)
	if !g.Reserved(0, 0) || !g.Get(0, 0) {
		t.Error("Micro QR top-left finder corner not dark/reserved")
	}
	// Micro QR has exactly one finder: the bottom-right area away from
	// the lone finder must not be reserved by a second/third finder.
	if g.Reserved(g.Size-1, g.Size-1) {
		t.Error("Micro QR symbol unexpectedly reserves a module in the opposite corner")
	}
}

func TestBuildLayoutTimingAlternates(t *testing.T) {
	g := BuildLayout(QR, 1)
	for i := 8; i <= g.Size-9; i++ {
		want := (i-8)%2 == 0
		if g.Get(6, i) != want {
			t.Errorf("timing pattern at (6,%d) = %v, want %v", i, g.Get(6, i), want)
		}
	}
}

func TestBuildLayoutAlignmentAvoidsFinderCorners(t *testing.T) {
	g := BuildLayout(QR, 7)
	centers := vtab[versionIndex(QR, 7)].alignCenter
	if len(centers) == 0 {
		t.Fatal("expected alignment centers for QR version 7")
	}
	// The center pair (22,22) for v7 is not adjacent to any finder
	// corner, so it must carry a real alignment pattern (dark center).
	if !g.Get(22, 22) {
		t.Error("expected alignment pattern center (22,22) to be dark for QR version 7")
	}
	if !g.Reserved(22, 22) {
		t.Error("expected alignment pattern center (22,22) to be reserved for QR version 7")
	}
	// The center pairs (6,38) and (38,6) overlap the top-right and
	// bottom-left finders and must be skipped; an alignment pattern
	// there would reserve (8,36) and (36,8), which nothing else does.
	if g.Reserved(8, 36) || g.Reserved(36, 8) {
		t.Error("alignment pattern drawn at a finder-corner center pair for QR version 7")
	}
}

func TestBuildLayoutVersion7HasVersionInfoStrip(t *testing.T) {
	g := BuildLayout(QR, 7)
	// Version info occupies a 6x3 block near the top-right and
	// bottom-left corners, reserved but not drawn until
	// PlaceVersionInfo runs.
	if !g.Reserved(0, g.Size-9) {
		t.Error("version info strip not reserved for QR version 7")
	}
	if !g.Reserved(g.Size-9, 0) {
		t.Error("version info strip not reserved for QR version 7 (transposed block)")
	}
}

func TestBuildLayoutVersion6NoVersionInfoStrip(t *testing.T) {
	g := BuildLayout(QR, 6)
	if g.Reserved(0, g.Size-9) {
		t.Error("version info strip unexpectedly reserved below version 7")
	}
}
