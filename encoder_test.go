package qr

import (
	"errors"
	"strings"
	"testing"
)

func TestNewRejectsInvalidVersion(t *testing.T) {
	if _, err := New(QR, 0, M); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("New(QR, 0, M) error = %v, want ErrInvalidArgument", err)
	}
	if _, err := New(QR, 41, M); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("New(QR, 41, M) error = %v, want ErrInvalidArgument", err)
	}
	if _, err := New(MicroQR, 5, L); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("New(MicroQR, 5, L) error = %v, want ErrInvalidArgument", err)
	}
}

func TestNewRejectsInvalidLevel(t *testing.T) {
	if _, err := New(MicroQR, 1, L); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("New(MicroQR, 1, L) error = %v, want ErrInvalidArgument (M1 requires ErrorDetectionOnly)", err)
	}
	if _, err := New(MicroQR, 2, H); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("New(MicroQR, 2, H) error = %v, want ErrInvalidArgument", err)
	}
}

func TestAddCharactersRollsBackOnError(t *testing.T) {
	e, err := New(QR, 1, H)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.AddCharacters([]byte("123"), Numeric); err != nil {
		t.Fatal(err)
	}
	before := e.bits.Len()
	if err := e.AddCharacters([]byte("12x4"), Numeric); err == nil {
		t.Fatal("expected error for non-digit in Numeric segment")
	}
	if e.bits.Len() != before {
		t.Errorf("bit length after failed AddCharacters = %d, want %d (unchanged)", e.bits.Len(), before)
	}
}

func TestAddCharactersRejectsOverCapacity(t *testing.T) {
	e, err := New(QR, 1, H)
	if err != nil {
		t.Fatal(err)
	}
	huge := strings.Repeat("9", 200)
	if err := e.AddCharacters([]byte(huge), Numeric); !errors.Is(err, ErrLengthError) {
		t.Errorf("error = %v, want ErrLengthError", err)
	}
}

func TestClearResetsState(t *testing.T) {
	e, err := New(QR, 1, H)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.AddCharacters([]byte("12345"), Numeric); err != nil {
		t.Fatal(err)
	}
	e.Clear()
	if e.bits.Len() != 0 {
		t.Errorf("bit length after Clear = %d, want 0", e.bits.Len())
	}
	// The encoder must be reusable after Clear.
	if err := e.AddCharacters([]byte("67890"), Numeric); err != nil {
		t.Fatalf("AddCharacters after Clear: %v", err)
	}
}

func TestGenerateMatrixIsDeterministicAndNonDestructive(t *testing.T) {
	e, err := New(QR, 2, M)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.AddCharacters([]byte("HELLO WORLD"), Alphanumeric); err != nil {
		t.Fatal(err)
	}
	before := e.bits.Len()
	m1 := e.GenerateMatrix()
	if e.bits.Len() != before {
		t.Errorf("bit length changed by GenerateMatrix: %d -> %d", before, e.bits.Len())
	}
	m2 := e.GenerateMatrix()
	if m1.Size() != m2.Size() {
		t.Fatalf("matrix size not stable across calls: %d vs %d", m1.Size(), m2.Size())
	}
	for r := range m1 {
		for c := range m1[r] {
			if m1[r][c] != m2[r][c] {
				t.Fatalf("matrix differs at (%d,%d) across repeated GenerateMatrix calls", r, c)
			}
		}
	}
}

func TestGenerateMatrixHasQuietZone(t *testing.T) {
	e, err := New(QR, 1, L)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.AddCharacters([]byte("1"), Numeric); err != nil {
		t.Fatal(err)
	}
	m := e.GenerateMatrix()
	if want := 21 + 2*4; m.Size() != want {
		t.Errorf("matrix size = %d, want %d (21 + 2x4-module quiet zone)", m.Size(), want)
	}
	for c := 0; c < m.Size(); c++ {
		if m[0][c] || m[m.Size()-1][c] {
			t.Fatalf("quiet zone row contains a dark module at col %d", c)
		}
	}
	for r := 0; r < m.Size(); r++ {
		if m[r][0] || m[r][m.Size()-1] {
			t.Fatalf("quiet zone column contains a dark module at row %d", r)
		}
	}
}

func TestGenerateMatrixMicroHasSmallerQuietZone(t *testing.T) {
	e, err := New(MicroQR, 1, ErrorDetectionOnly)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.AddCharacters([]byte("1"), Numeric); err != nil {
		t.Fatal(err)
	}
	m := e.GenerateMatrix()
	if want := 11 + 2*2; m.Size() != want {
		t.Errorf("matrix size = %d, want %d (11 + 2x2-module quiet zone)", m.Size(), want)
	}
}
