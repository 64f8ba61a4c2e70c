// Package cfen implements CFEN, a compact, human-writable serialization of
// a cube's 54 stickers, fixed to a single 3x3x3 layout backed by
// cube.CubieCube.
package cfen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/behrlich/twophase/internal/cube"
)

// fixedOrientation is the only up/front pair this adapter emits or accepts.
// cube.CubieCube.ToColors fixes White on U and Green on F; a CFEN string
// naming any other orientation can't round-trip through FromColors, so it
// is rejected rather than silently reinterpreted.
const fixedOrientation = "WG"

// faceOrder names the six 9-sticker blocks in the order cube.CubieCube's
// ToColors/FromColors lay them out.
var faceOrder = [6]string{"U", "B", "R", "F", "L", "D"}

// ToCFEN renders c as a CFEN string: "WG|<face>/<face>/.../<face>", each
// face a run-length encoding of its 9 stickers (e.g. "W4Y2O2B").
func ToCFEN(c cube.CubieCube) string {
	colors := c.ToColors()
	faces := make([]string, 6)
	for i := range faces {
		faces[i] = compactFace(colors[i*9 : i*9+9])
	}
	return fixedOrientation + "|" + strings.Join(faces, "/")
}

func compactFace(stickers []cube.Color) string {
	var sb strings.Builder
	count := 1
	for i := 1; i <= len(stickers); i++ {
		if i < len(stickers) && stickers[i] == stickers[i-1] {
			count++
			continue
		}
		sb.WriteString(stickers[i-1].String())
		if count > 1 {
			sb.WriteString(strconv.Itoa(count))
		}
		count = 1
	}
	return sb.String()
}

var faceTokenRe = regexp.MustCompile(`([WYROGB])(\d*)`)

// ParseCFEN parses a string produced by ToCFEN (or handwritten in the same
// format) back into a cube. It fails with cube.ErrInvalidInput if the
// string isn't well-formed, if the orientation field isn't "WG", or if
// cube.FromColors rejects the stickers (a sticker pair or triple naming no
// real piece, or a wrong center color). Like FromColors, it does not reject
// a layout with a duplicated piece or with bad twist, flip or permutation
// parity.
func ParseCFEN(s string) (cube.CubieCube, error) {
	parts := strings.SplitN(s, "|", 2)
	if len(parts) != 2 {
		return cube.CubieCube{}, fmt.Errorf("cfen: expected \"<orientation>|<faces>\", got %q: %w", s, cube.ErrInvalidInput)
	}
	if parts[0] != fixedOrientation {
		return cube.CubieCube{}, fmt.Errorf("cfen: unsupported orientation %q (only %q round-trips): %w", parts[0], fixedOrientation, cube.ErrInvalidInput)
	}

	faceStrs := strings.Split(parts[1], "/")
	if len(faceStrs) != 6 {
		return cube.CubieCube{}, fmt.Errorf("cfen: expected 6 faces, got %d: %w", len(faceStrs), cube.ErrInvalidInput)
	}

	var colors [54]cube.Color
	for i, fs := range faceStrs {
		stickers, err := parseFace(fs)
		if err != nil {
			return cube.CubieCube{}, err
		}
		if len(stickers) != 9 {
			return cube.CubieCube{}, fmt.Errorf("cfen: face %s has %d stickers, want 9: %w", faceOrder[i], len(stickers), cube.ErrInvalidInput)
		}
		copy(colors[i*9:i*9+9], stickers)
	}

	return cube.FromColors(colors)
}

func parseFace(s string) ([]cube.Color, error) {
	matches := faceTokenRe.FindAllStringSubmatch(s, -1)
	if matches == nil {
		return nil, fmt.Errorf("cfen: no sticker tokens in %q: %w", s, cube.ErrInvalidInput)
	}

	var consumed strings.Builder
	var stickers []cube.Color
	for _, m := range matches {
		consumed.WriteString(m[0])

		color, err := parseColor(m[1])
		if err != nil {
			return nil, err
		}

		count := 1
		if m[2] != "" {
			n, err := strconv.Atoi(m[2])
			if err != nil || n < 1 {
				return nil, fmt.Errorf("cfen: invalid run count %q: %w", m[2], cube.ErrInvalidInput)
			}
			count = n
		}
		for i := 0; i < count; i++ {
			stickers = append(stickers, color)
		}
	}

	if consumed.String() != s {
		return nil, fmt.Errorf("cfen: unparsed trailing text in %q: %w", s, cube.ErrInvalidInput)
	}
	return stickers, nil
}

func parseColor(s string) (cube.Color, error) {
	switch s {
	case "W":
		return cube.White, nil
	case "Y":
		return cube.Yellow, nil
	case "R":
		return cube.Red, nil
	case "O":
		return cube.Orange, nil
	case "G":
		return cube.Green, nil
	case "B":
		return cube.Blue, nil
	default:
		return 0, fmt.Errorf("cfen: unknown color %q: %w", s, cube.ErrInvalidInput)
	}
}
