package svg

import (
	"fmt"
	"math"
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

// CommandKind tells which drawing operation a path command performs.
type CommandKind int

// The path command kinds, one per instruction letter of the SVG path
// data grammar.
const (
	MoveTo CommandKind = iota
	LineTo
	HLineTo
	VLineTo
	CubicTo
	SmoothCubicTo
	QuadTo
	SmoothQuadTo
	ArcTo
	ClosePath
)

func (k CommandKind) String() string {
	switch k {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case HLineTo:
		return "HLineTo"
	case VLineTo:
		return "VLineTo"
	case CubicTo:
		return "CubicTo"
	case SmoothCubicTo:
		return "SmoothCubicTo"
	case QuadTo:
		return "QuadTo"
	case SmoothQuadTo:
		return "SmoothQuadTo"
	case ArcTo:
		return "ArcTo"
	case ClosePath:
		return "ClosePath"
	default:
		return "<unknown CommandKind>"
	}
}

// PathCommand is one drawing instruction of a path. The populated
// parameter fields depend on Kind. Coordinates are meaningful only
// relative to the pen position established by the preceding commands;
// when Relative is set they are offsets from the current pen.
type PathCommand struct {
	Kind     CommandKind
	Relative bool

	To Tuple   // endpoint for move, line, curve and arc commands
	X  float64 // horizontal lineto target
	Y  float64 // vertical lineto target
	C1 Tuple   // first cubic control point, also the quadratic control point
	C2 Tuple   // second cubic control point, also the smooth-cubic control point

	// elliptical arc parameters
	Rx, Ry    float64
	XRotation float64 // degrees
	LargeArc  bool
	Sweep     bool
}

func moveTo(x, y float64) PathCommand {
	return PathCommand{Kind: MoveTo, To: Tuple{x, y}}
}

func lineTo(x, y float64) PathCommand {
	return PathCommand{Kind: LineTo, To: Tuple{x, y}}
}

func arcTo(rx, ry, rot float64, largeArc, sweep bool, x, y float64) PathCommand {
	return PathCommand{Kind: ArcTo, Rx: rx, Ry: ry, XRotation: rot,
		LargeArc: largeArc, Sweep: sweep, To: Tuple{x, y}}
}

func closePath() PathCommand {
	return PathCommand{Kind: ClosePath}
}

// letter returns the instruction letter for the command, lowercased
// for relative commands.
func (c PathCommand) letter() byte {
	var b byte
	switch c.Kind {
	case MoveTo:
		b = 'M'
	case LineTo:
		b = 'L'
	case HLineTo:
		b = 'H'
	case VLineTo:
		b = 'V'
	case CubicTo:
		b = 'C'
	case SmoothCubicTo:
		b = 'S'
	case QuadTo:
		b = 'Q'
	case SmoothQuadTo:
		b = 'T'
	case ArcTo:
		b = 'A'
	case ClosePath:
		b = 'Z'
	}
	if c.Relative {
		b += 'a' - 'A'
	}
	return b
}

// String renders the command as a fragment of path data. Coordinates
// use fixed 5-decimal-place precision so serialized output is stable
// and comparable.
func (c PathCommand) String() string {
	l := c.letter()
	switch c.Kind {
	case MoveTo, LineTo, SmoothQuadTo:
		return fmt.Sprintf("%c%.5f,%.5f", l, c.To[0], c.To[1])
	case HLineTo:
		return fmt.Sprintf("%c%.5f", l, c.X)
	case VLineTo:
		return fmt.Sprintf("%c%.5f", l, c.Y)
	case CubicTo:
		return fmt.Sprintf("%c%.5f,%.5f %.5f,%.5f %.5f,%.5f", l,
			c.C1[0], c.C1[1], c.C2[0], c.C2[1], c.To[0], c.To[1])
	case SmoothCubicTo:
		return fmt.Sprintf("%c%.5f,%.5f %.5f,%.5f", l,
			c.C2[0], c.C2[1], c.To[0], c.To[1])
	case QuadTo:
		return fmt.Sprintf("%c%.5f,%.5f %.5f,%.5f", l,
			c.C1[0], c.C1[1], c.To[0], c.To[1])
	case ArcTo:
		return fmt.Sprintf("%c%.5f,%.5f %.5f %d %d %.5f,%.5f", l,
			c.Rx, c.Ry, c.XRotation, boolFlag(c.LargeArc), boolFlag(c.Sweep),
			c.To[0], c.To[1])
	case ClosePath:
		return string(l)
	}
	return ""
}

func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// RenderPathData renders a command sequence as the value of a path
// `d` attribute.
func RenderPathData(cmds []PathCommand) string {
	chunks := make([]string, len(cmds))
	for i, c := range cmds {
		chunks[i] = c.String()
	}
	return strings.Join(chunks, " ")
}

// absoluteCommands rewrites a command sequence so every command is
// absolute and horizontal/vertical lines become plain lines. The pen
// position is tracked sequentially; ClosePath returns the pen to the
// current subpath start.
func absoluteCommands(cmds []PathCommand) []PathCommand {
	out := make([]PathCommand, 0, len(cmds))
	var pen, start Tuple
	for _, c := range cmds {
		a := c
		a.Relative = false
		switch c.Kind {
		case MoveTo:
			if c.Relative {
				a.To = Tuple{pen[0] + c.To[0], pen[1] + c.To[1]}
			}
			pen, start = a.To, a.To
		case LineTo, SmoothQuadTo:
			if c.Relative {
				a.To = Tuple{pen[0] + c.To[0], pen[1] + c.To[1]}
			}
			pen = a.To
		case HLineTo:
			x := c.X
			if c.Relative {
				x += pen[0]
			}
			a = PathCommand{Kind: LineTo, To: Tuple{x, pen[1]}}
			pen = a.To
		case VLineTo:
			y := c.Y
			if c.Relative {
				y += pen[1]
			}
			a = PathCommand{Kind: LineTo, To: Tuple{pen[0], y}}
			pen = a.To
		case CubicTo:
			if c.Relative {
				a.C1 = Tuple{pen[0] + c.C1[0], pen[1] + c.C1[1]}
				a.C2 = Tuple{pen[0] + c.C2[0], pen[1] + c.C2[1]}
				a.To = Tuple{pen[0] + c.To[0], pen[1] + c.To[1]}
			}
			pen = a.To
		case SmoothCubicTo:
			if c.Relative {
				a.C2 = Tuple{pen[0] + c.C2[0], pen[1] + c.C2[1]}
				a.To = Tuple{pen[0] + c.To[0], pen[1] + c.To[1]}
			}
			pen = a.To
		case QuadTo:
			if c.Relative {
				a.C1 = Tuple{pen[0] + c.C1[0], pen[1] + c.C1[1]}
				a.To = Tuple{pen[0] + c.To[0], pen[1] + c.To[1]}
			}
			pen = a.To
		case ArcTo:
			if c.Relative {
				a.To = Tuple{pen[0] + c.To[0], pen[1] + c.To[1]}
			}
			pen = a.To
		case ClosePath:
			pen = start
		}
		out = append(out, a)
	}
	return out
}

// transformCommands applies an affine matrix to a command sequence.
// The input must be in absolute form (see absoluteCommands).
// Coordinate pairs are mapped through the matrix. Arc radii are
// scaled by the matrix scale factors and the x-axis rotation is
// adjusted by the matrix rotation; a reflecting matrix flips the
// sweep direction.
func transformCommands(cmds []PathCommand, m mt.Transform) []PathCommand {
	rot, sx, sy := decompose(m)
	out := make([]PathCommand, 0, len(cmds))
	for _, c := range cmds {
		t := c
		switch c.Kind {
		case MoveTo, LineTo, SmoothQuadTo:
			t.To = applyTuple(m, c.To)
		case CubicTo:
			t.C1 = applyTuple(m, c.C1)
			t.C2 = applyTuple(m, c.C2)
			t.To = applyTuple(m, c.To)
		case SmoothCubicTo:
			t.C2 = applyTuple(m, c.C2)
			t.To = applyTuple(m, c.To)
		case QuadTo:
			t.C1 = applyTuple(m, c.C1)
			t.To = applyTuple(m, c.To)
		case ArcTo:
			t.To = applyTuple(m, c.To)
			t.Rx = c.Rx * math.Abs(sx)
			t.Ry = c.Ry * math.Abs(sy)
			t.XRotation = c.XRotation + rot*180/math.Pi
			if sx*sy < 0 {
				t.Sweep = !c.Sweep
			}
		}
		out = append(out, t)
	}
	return out
}

func applyTuple(m mt.Transform, p Tuple) Tuple {
	x, y := m.Apply(p[0], p[1])
	return Tuple{x, y}
}

// decompose extracts the rotation angle (radians) and the scale
// factors of an affine matrix. A negative y scale indicates a
// reflection.
func decompose(m mt.Transform) (rot, sx, sy float64) {
	a, b := m[0][0], m[1][0]
	c, d := m[0][1], m[1][1]
	rot = math.Atan2(b, a)
	sx = math.Hypot(a, b)
	det := a*d - b*c
	if sx != 0 {
		sy = det / sx
	}
	return rot, sx, sy
}
