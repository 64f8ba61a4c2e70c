package cfen

import (
	"errors"
	"testing"

	"github.com/behrlich/twophase/internal/cube"
)

func TestToCFENSolvedCube(t *testing.T) {
	got := ToCFEN(cube.NewCubieCube())
	want := "WG|W9/B9/R9/G9/O9/Y9"
	if got != want {
		t.Fatalf("ToCFEN(solved) = %q, want %q", got, want)
	}
}

func TestCFENRoundTrip(t *testing.T) {
	scrambles := [][]cube.Move{
		nil,
		{cube.R1},
		{cube.U1, cube.R2, cube.F1, cube.D3, cube.L2, cube.B1},
	}
	for _, moves := range scrambles {
		c := cube.NewCubieCube()
		c.ApplyAll(moves)

		s := ToCFEN(c)
		back, err := ParseCFEN(s)
		if err != nil {
			t.Fatalf("ParseCFEN(%q): %v", s, err)
		}
		if back != c {
			t.Fatalf("ParseCFEN(ToCFEN(c)) != c for scramble %v\ncfen: %s", moves, s)
		}
	}
}

func TestParseCFENRejectsWrongOrientation(t *testing.T) {
	_, err := ParseCFEN("YG|U9/B9/R9/F9/L9/D9")
	if err == nil {
		t.Fatal("expected an error for unsupported orientation")
	}
	if !errors.Is(err, cube.ErrInvalidInput) {
		t.Fatalf("error %v does not wrap ErrInvalidInput", err)
	}
}

func TestParseCFENRejectsWrongFaceCount(t *testing.T) {
	_, err := ParseCFEN("WG|U9/B9/R9/F9/L9")
	if err == nil {
		t.Fatal("expected an error for a missing face")
	}
	if !errors.Is(err, cube.ErrInvalidInput) {
		t.Fatalf("error %v does not wrap ErrInvalidInput", err)
	}
}

func TestParseCFENRejectsWrongStickerCount(t *testing.T) {
	_, err := ParseCFEN("WG|W8/B9/R9/G9/O9/Y9")
	if err == nil {
		t.Fatal("expected an error for a face with 8 stickers")
	}
	if !errors.Is(err, cube.ErrInvalidInput) {
		t.Fatalf("error %v does not wrap ErrInvalidInput", err)
	}
}

func TestParseCFENRejectsUnknownColor(t *testing.T) {
	_, err := ParseCFEN("WG|U9/B9/R9/F9/L9/X9")
	if err == nil {
		t.Fatal("expected an error for an unknown color token")
	}
	if !errors.Is(err, cube.ErrInvalidInput) {
		t.Fatalf("error %v does not wrap ErrInvalidInput", err)
	}
}

func TestParseCFENRejectsMissingSeparator(t *testing.T) {
	_, err := ParseCFEN("WGU9/B9/R9/F9/L9/D9")
	if err == nil {
		t.Fatal("expected an error for a missing '|' separator")
	}
	if !errors.Is(err, cube.ErrInvalidInput) {
		t.Fatalf("error %v does not wrap ErrInvalidInput", err)
	}
}

func TestParseCFENRejectsImpossibleCube(t *testing.T) {
	// A valid-looking but impossible sticker layout: every face solid White
	// can't be a real cube (duplicate/missing pieces), so FromColors must
	// reject it the same way ParseCFEN surfaces here.
	_, err := ParseCFEN("WG|W9/W9/W9/W9/W9/W9")
	if err == nil {
		t.Fatal("expected an error for an unsolvable sticker layout")
	}
}
