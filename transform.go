package svg

import (
	"math"
	"strconv"
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

// TransformKind discriminates the transform function variants of the
// SVG transform attribute.
type TransformKind int

const (
	TranslateTransform TransformKind = iota
	ScaleTransform
	RotateTransform
	SkewXTransform
	SkewYTransform
	MatrixTransform
)

func (k TransformKind) String() string {
	switch k {
	case TranslateTransform:
		return "translate"
	case ScaleTransform:
		return "scale"
	case RotateTransform:
		return "rotate"
	case SkewXTransform:
		return "skewX"
	case SkewYTransform:
		return "skewY"
	case MatrixTransform:
		return "matrix"
	default:
		return "<unknown TransformKind>"
	}
}

// Transformation is one transform function from a transform list.
// Args holds the function arguments after parsing, normalized to the
// full form: translate and scale always carry two arguments, rotate
// carries one or three (angle plus optional center), matrix carries
// six. Angles are in degrees as written in the source attribute.
type Transformation struct {
	Kind TransformKind
	Args []float64
}

// Translate returns a translation by dx, dy.
func Translate(dx, dy float64) Transformation {
	return Transformation{Kind: TranslateTransform, Args: []float64{dx, dy}}
}

// Scale returns a scale by sx, sy.
func Scale(sx, sy float64) Transformation {
	return Transformation{Kind: ScaleTransform, Args: []float64{sx, sy}}
}

// Rotate returns a rotation around the origin by angle degrees.
func Rotate(angle float64) Transformation {
	return Transformation{Kind: RotateTransform, Args: []float64{angle}}
}

// RotateAbout returns a rotation by angle degrees around cx, cy.
func RotateAbout(angle, cx, cy float64) Transformation {
	return Transformation{Kind: RotateTransform, Args: []float64{angle, cx, cy}}
}

// SkewX returns a skew along the x axis by angle degrees.
func SkewX(angle float64) Transformation {
	return Transformation{Kind: SkewXTransform, Args: []float64{angle}}
}

// SkewY returns a skew along the y axis by angle degrees.
func SkewY(angle float64) Transformation {
	return Transformation{Kind: SkewYTransform, Args: []float64{angle}}
}

// Matrix returns the raw matrix transform [a b c d e f].
func Matrix(a, b, c, d, e, f float64) Transformation {
	return Transformation{Kind: MatrixTransform, Args: []float64{a, b, c, d, e, f}}
}

// Matrix returns the row-major 3x3 matrix equivalent of the
// transformation.
func (t Transformation) Matrix() mt.Transform {
	switch t.Kind {
	case TranslateTransform:
		return mt.Transform{
			{1, 0, t.Args[0]},
			{0, 1, t.Args[1]},
			{0, 0, 1},
		}
	case ScaleTransform:
		return mt.Transform{
			{t.Args[0], 0, 0},
			{0, t.Args[1], 0},
			{0, 0, 1},
		}
	case RotateTransform:
		sin, cos := math.Sincos(t.Args[0] * math.Pi / 180)
		rot := mt.Transform{
			{cos, -sin, 0},
			{sin, cos, 0},
			{0, 0, 1},
		}
		if len(t.Args) != 3 {
			return rot
		}
		// rotate(a cx cy) is translate(cx cy) rotate(a) translate(-cx -cy)
		cx, cy := t.Args[1], t.Args[2]
		m := mt.MultiplyTransforms(Translate(cx, cy).Matrix(), rot)
		return mt.MultiplyTransforms(m, Translate(-cx, -cy).Matrix())
	case SkewXTransform:
		return mt.Transform{
			{1, math.Tan(t.Args[0] * math.Pi / 180), 0},
			{0, 1, 0},
			{0, 0, 1},
		}
	case SkewYTransform:
		return mt.Transform{
			{1, 0, 0},
			{math.Tan(t.Args[0] * math.Pi / 180), 1, 0},
			{0, 0, 1},
		}
	case MatrixTransform:
		return mt.Transform{
			{t.Args[0], t.Args[2], t.Args[4]},
			{t.Args[1], t.Args[3], t.Args[5]},
			{0, 0, 1},
		}
	}
	return mt.Identity()
}

// Compose multiplies a transform list into a single matrix in
// left-to-right document order, so the leftmost transform is applied
// last to a point: T1 * T2 * ... * point.
func Compose(ts []Transformation) mt.Transform {
	m := mt.Identity()
	for _, t := range ts {
		m = mt.MultiplyTransforms(m, t.Matrix())
	}
	return m
}

// ApplyTransforms applies the composed transform list to a point.
func ApplyTransforms(ts []Transformation, x, y float64) (float64, float64) {
	m := Compose(ts)
	return m.Apply(x, y)
}

// argument counts accepted per transform function
var transformArity = map[TransformKind][]int{
	TranslateTransform: {1, 2},
	ScaleTransform:     {1, 2},
	RotateTransform:    {1, 3},
	SkewXTransform:     {1},
	SkewYTransform:     {1},
	MatrixTransform:    {6},
}

var transformKinds = map[string]TransformKind{
	"translate": TranslateTransform,
	"scale":     ScaleTransform,
	"rotate":    RotateTransform,
	"skewx":     SkewXTransform,
	"skewy":     SkewYTransform,
	"matrix":    MatrixTransform,
}

// ParseTransformList parses a transform attribute value containing
// zero or more transform functions in document order, for example
// "translate(3 4) rotate(45)".
func ParseTransformList(v string) ([]Transformation, error) {
	var ts []Transformation
	for _, chunk := range strings.Split(v, ")") {
		chunk = strings.TrimSpace(strings.TrimPrefix(chunk, ","))
		if len(chunk) == 0 {
			continue
		}
		d := strings.Split(chunk, "(")
		if len(d) != 2 || len(strings.TrimSpace(d[1])) == 0 {
			return nil, &ParseError{Attr: "transform", Msg: "badly formed transform function " + strconv.Quote(chunk)}
		}
		name := strings.ToLower(strings.TrimSpace(d[0]))
		kind, ok := transformKinds[name]
		if !ok {
			return nil, &ParseError{Attr: "transform", Msg: "unknown transform function " + strconv.Quote(name)}
		}
		args, err := parseNumberList(d[1])
		if err != nil {
			return nil, &ParseError{Attr: "transform", Msg: "bad arguments to " + name, Err: err}
		}
		if !arityAllowed(transformArity[kind], len(args)) {
			return nil, &ParseError{Attr: "transform", Msg: "wrong argument count for " + name}
		}
		ts = append(ts, normalizeTransform(kind, args))
	}
	return ts, nil
}

func arityAllowed(allowed []int, n int) bool {
	for _, a := range allowed {
		if a == n {
			return true
		}
	}
	return false
}

// normalizeTransform expands the short argument forms: a single
// translate argument means dy=0, a single scale argument means sy=sx.
func normalizeTransform(kind TransformKind, args []float64) Transformation {
	switch kind {
	case TranslateTransform:
		if len(args) == 1 {
			args = append(args, 0)
		}
	case ScaleTransform:
		if len(args) == 1 {
			args = append(args, args[0])
		}
	}
	return Transformation{Kind: kind, Args: args}
}
