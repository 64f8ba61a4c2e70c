package cube

// Color is one of the six sticker colors found on a physical cube.
type Color int

const (
	White Color = iota
	Yellow
	Red
	Orange
	Blue
	Green
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Blue:
		return "B"
	case Green:
		return "G"
	default:
		return "?"
	}
}

// Face is one of the six faces of the cube.
type Face int

const (
	U Face = iota
	B
	R
	F
	L
	D
)

// Index returns the face's position in the fixed U,B,R,F,L,D ordering used
// by the 54-sticker layout.
func (f Face) Index() int {
	return int(f)
}

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case L:
		return "L"
	case R:
		return "R"
	case F:
		return "F"
	case B:
		return "B"
	default:
		return "?"
	}
}

// IsOpposite reports whether f and other are opposite faces of the cube.
func (f Face) IsOpposite(other Face) bool {
	switch {
	case f == U && other == D, f == D && other == U:
		return true
	case f == L && other == R, f == R && other == L:
		return true
	case f == F && other == B, f == B && other == F:
		return true
	default:
		return false
	}
}

// TurnDirection is how far a face is turned.
type TurnDirection int

const (
	CW TurnDirection = iota
	Double
	CCW
)

// Reverse returns the direction that undoes a turn of d, except Double,
// which undoes itself and is returned unchanged.
func (d TurnDirection) Reverse() TurnDirection {
	switch d {
	case CW:
		return CCW
	case CCW:
		return CW
	default:
		return Double
	}
}

// Combine composes two successive turns of the same face into one,
// returning ok=false when the pair cancels to no move at all.
func (d TurnDirection) Combine(second TurnDirection) (result TurnDirection, ok bool) {
	switch d {
	case CW:
		switch second {
		case CW:
			return Double, true
		case Double:
			return CCW, true
		case CCW:
			return 0, false
		}
	case Double:
		switch second {
		case CW:
			return CCW, true
		case Double:
			return 0, false
		case CCW:
			return CW, true
		}
	case CCW:
		switch second {
		case CW:
			return 0, false
		case Double:
			return CW, true
		case CCW:
			return Double, true
		}
	}
	return 0, false
}

// CornerPiece identifies one of the 8 physical corner cubies.
type CornerPiece int

const (
	UFR CornerPiece = iota
	UFL
	UBL
	UBR
	DFR
	DFL
	DBL
	DBR
)

// CornerOrientation is how a corner is twisted relative to its home slot.
type CornerOrientation int

const (
	Normal CornerOrientation = iota
	OneTwist
	TwoTwist
)

// Twist advances the orientation by one clockwise twist.
func (o CornerOrientation) Twist() CornerOrientation {
	return (o + 1) % 3
}

// DoubleTwist advances the orientation by two clockwise twists.
func (o CornerOrientation) DoubleTwist() CornerOrientation {
	return (o + 2) % 3
}

// Corner is a physical corner cubie: which piece it is, and its orientation
// relative to whatever slot currently holds it.
type Corner struct {
	Piece       CornerPiece
	Orientation CornerOrientation
}

func cornerFromPiece(p CornerPiece) Corner {
	return Corner{Piece: p, Orientation: Normal}
}

// Twist mutates c in place by one clockwise twist.
func (c *Corner) Twist() {
	c.Orientation = c.Orientation.Twist()
}

// DoubleTwist mutates c in place by two clockwise twists.
func (c *Corner) DoubleTwist() {
	c.Orientation = c.Orientation.DoubleTwist()
}

// EdgePiece identifies one of the 12 physical edge cubies.
type EdgePiece int

const (
	UR EdgePiece = iota
	UF
	UB
	UL
	FR
	BR
	FL
	BL
	DR
	DF
	DB
	DL
)

// EdgeOrientation is whether an edge sits flipped relative to its home slot.
type EdgeOrientation int

const (
	EdgeNormal EdgeOrientation = iota
	Flipped
)

// Flip returns the other orientation.
func (o EdgeOrientation) Flip() EdgeOrientation {
	if o == EdgeNormal {
		return Flipped
	}
	return EdgeNormal
}

// Edge is a physical edge cubie: which piece it is, and its orientation
// relative to whatever slot currently holds it.
type Edge struct {
	Piece       EdgePiece
	Orientation EdgeOrientation
}

func edgeFromPiece(p EdgePiece) Edge {
	return Edge{Piece: p, Orientation: EdgeNormal}
}

// Flip mutates e in place.
func (e *Edge) Flip() {
	e.Orientation = e.Orientation.Flip()
}

// SliceLayer is one of the three middle slice layers (named after the moves
// that rotate them: E for equator, M for middle, S for standing).
type SliceLayer int

const (
	SliceE SliceLayer = iota
	SliceM
	SliceS
)
