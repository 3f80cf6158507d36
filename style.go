package svg

import (
	"strconv"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// CapMode defines how stroke ends are drawn.
type CapMode uint8

const (
	NilCap CapMode = iota // unset, inherits
	ButtCap
	RoundCap
	SquareCap
)

func (c CapMode) String() string {
	switch c {
	case NilCap:
		return ""
	case ButtCap:
		return "butt"
	case RoundCap:
		return "round"
	case SquareCap:
		return "square"
	default:
		return "<unknown CapMode>"
	}
}

// JoinMode defines how stroke segments bridge the gap at a join.
type JoinMode uint8

const (
	NilJoin JoinMode = iota // unset, inherits
	Miter
	RoundJoin
	Bevel
)

func (j JoinMode) String() string {
	switch j {
	case NilJoin:
		return ""
	case Miter:
		return "miter"
	case RoundJoin:
		return "round"
	case Bevel:
		return "bevel"
	default:
		return "<unknown JoinMode>"
	}
}

// FillRule selects the winding rule used to fill a path.
type FillRule uint8

const (
	NilFillRule FillRule = iota // unset, inherits
	NonZero
	EvenOdd
)

func (f FillRule) String() string {
	switch f {
	case NilFillRule:
		return ""
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "<unknown FillRule>"
	}
}

// Stroke holds the resolved stroke state of an element. Nil pointers
// and Nil enum values mean the field was never set anywhere on the
// ancestor chain.
type Stroke struct {
	Color      *string
	Width      *float64
	Opacity    *float64
	LineCap    CapMode
	LineJoin   JoinMode
	MiterLimit *float64
}

// Fill holds the resolved fill state of an element.
type Fill struct {
	Color   *string
	Opacity *float64
	Rule    FillRule
}

// ParseStyleString parses the value of an inline style attribute into
// a property map. The last occurrence of a duplicated property wins.
// Unrecognized properties are kept; consumers ignore what they don't
// know.
func ParseStyleString(style string) (map[string]string, error) {
	if strings.TrimSpace(style) == "" {
		return nil, nil
	}
	// the CSS parser is strict about semicolons, inline styles often
	// omit the trailing one
	if !strings.HasSuffix(style, ";") {
		style += ";"
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		return nil, &StyleError{Property: "style", Value: style, Err: err}
	}
	props := make(map[string]string, len(decls))
	for _, d := range decls {
		props[strings.ToLower(strings.TrimSpace(d.Property))] = strings.TrimSpace(d.Value)
	}
	return props, nil
}

// styleSource looks up a property with the documented precedence:
// inline style string first, then the presentation attribute.
type styleSource struct {
	props map[string]string
	attrs *PresentationAttributes
}

func (s styleSource) lookup(prop string, attr *string) (string, bool) {
	if v, ok := s.props[prop]; ok {
		return v, true
	}
	if attr != nil {
		return *attr, true
	}
	return "", false
}

// resolveStroke merges an element's own stroke styling over the
// inherited stroke. Explicitly set values always win over
// inheritance; inheritance only fills genuinely unset fields.
func resolveStroke(inherited Stroke, src styleSource) (Stroke, error) {
	out := inherited
	if v, ok := src.lookup("stroke", src.attrs.Stroke); ok {
		out.Color = &v
	}
	if v, ok := src.lookup("stroke-width", src.attrs.StrokeWidth); ok {
		w, err := parseStyleFloat("stroke-width", v)
		if err != nil {
			return out, err
		}
		out.Width = w
	}
	if v, ok := src.lookup("stroke-opacity", src.attrs.StrokeOpacity); ok {
		o, err := parseStyleFloat("stroke-opacity", v)
		if err != nil {
			return out, err
		}
		out.Opacity = o
	}
	if v, ok := src.lookup("stroke-miterlimit", src.attrs.StrokeMiterLimit); ok {
		ml, err := parseStyleFloat("stroke-miterlimit", v)
		if err != nil {
			return out, err
		}
		out.MiterLimit = ml
	}
	if v, ok := src.lookup("stroke-linecap", src.attrs.StrokeLineCap); ok {
		switch v {
		case "butt":
			out.LineCap = ButtCap
		case "round":
			out.LineCap = RoundCap
		case "square":
			out.LineCap = SquareCap
		}
	}
	if v, ok := src.lookup("stroke-linejoin", src.attrs.StrokeLineJoin); ok {
		switch v {
		case "miter":
			out.LineJoin = Miter
		case "round":
			out.LineJoin = RoundJoin
		case "bevel":
			out.LineJoin = Bevel
		}
	}
	return out, nil
}

// resolveFill merges an element's own fill styling over the inherited
// fill.
func resolveFill(inherited Fill, src styleSource) (Fill, error) {
	out := inherited
	if v, ok := src.lookup("fill", src.attrs.Fill); ok {
		out.Color = &v
	}
	if v, ok := src.lookup("fill-opacity", src.attrs.FillOpacity); ok {
		o, err := parseStyleFloat("fill-opacity", v)
		if err != nil {
			return out, err
		}
		out.Opacity = o
	}
	if v, ok := src.lookup("fill-rule", src.attrs.FillRule); ok {
		switch v {
		case "nonzero":
			out.Rule = NonZero
		case "evenodd":
			out.Rule = EvenOdd
		}
	}
	return out, nil
}

func parseStyleFloat(prop, v string) (*float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return nil, &StyleError{Property: prop, Value: v, Err: err}
	}
	return &f, nil
}
