package coding

import (
	"reflect"
	"testing"
)

func TestAlignCentersKnownVersions(t *testing.T) {
	tests := []struct {
		version int
		want    []int
	}{
		{1, nil},
		{2, []int{6, 18}},
		{7, []int{6, 22, 38}},
		{40, []int{6, 30, 58, 86, 114, 142, 170}},
	}
	for _, tc := range tests {
		size := 21 + 4*(tc.version-1)
		got := alignCenters(rawAlign[tc.version][0], rawAlign[tc.version][1], size)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("alignCenters(version %d) = %v, want %v", tc.version, got, tc.want)
		}
	}
}

func TestDataCapacityBitsISOv1Q(t *testing.T) {
	// ISO/IEC 18004:2015 Annex: QR v1-Q has 13 data codewords, 13 EC
	// codewords, one block.
	got := DataCapacityBits(QR, 1, Q)
	want := 8 * 13
	if got != want {
		t.Errorf("DataCapacityBits(QR, 1, Q) = %d, want %d", got, want)
	}
}

func TestBlockLayoutISOv5Q(t *testing.T) {
	bi := blockLayout(QR, 5, Q)
	if bi.nblock != 4 {
		t.Errorf("nblock = %d, want 4", bi.nblock)
	}
	if bi.ecPerBlock != 18 {
		t.Errorf("ecPerBlock = %d, want 18", bi.ecPerBlock)
	}
}

func TestDataCapacityBitsMicroM1Nibble(t *testing.T) {
	// M1 has a 4-bit-short final codeword.
	v := &vtab[versionIndex(MicroQR, 1)]
	bi := v.levels[ErrorDetectionOnly.tableIndex()]
	full := 8 * (v.words - bi.nblock*bi.ecPerBlock)
	got := DataCapacityBits(MicroQR, 1, ErrorDetectionOnly)
	if got != full-4 {
		t.Errorf("DataCapacityBits(MicroQR, 1, ErrorDetectionOnly) = %d, want %d", got, full-4)
	}
}

func TestSizeAndMaxVersion(t *testing.T) {
	if Size(QR, 1) != 21 {
		t.Errorf("Size(QR, 1) = %d, want 21", Size(QR, 1))
	}
	if Size(QR, 40) != 177 {
		t.Errorf("Size(QR, 40) = %d, want 177", Size(QR, 40))
	}
	if Size(MicroQR, 1) != 11 {
		t.Errorf("Size(MicroQR, 1) = %d, want 11", Size(MicroQR, 1))
	}
	if Size(MicroQR, 4) != 17 {
		t.Errorf("Size(MicroQR, 4) = %d, want 17", Size(MicroQR, 4))
	}
	if MaxVersion(QR) != 40 {
		t.Errorf("MaxVersion(QR) = %d, want 40", MaxVersion(QR))
	}
	if MaxVersion(MicroQR) != 4 {
		t.Errorf("MaxVersion(MicroQR) = %d, want 4", MaxVersion(MicroQR))
	}
}
