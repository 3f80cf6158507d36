package svg

import (
	"encoding/xml"
	"fmt"
)

// The attribute capability sets shared by every element kind. Shapes,
// groups and the document root compose these instead of inheriting
// from a common element base.

// CoreAttributes are the identity attributes common to all elements.
type CoreAttributes struct {
	ID string `xml:"id,attr"`
}

// StyleAttributes carry the raw inline style and transform attribute
// values. Both are parsed on demand: the transform list when
// flattening, the style string during style resolution.
type StyleAttributes struct {
	Style     string `xml:"style,attr"`
	Transform string `xml:"transform,attr"`
}

// PresentationAttributes are the paint attributes an element may set
// directly, for example stroke="red". Nil means the attribute is
// absent and the value inherits.
type PresentationAttributes struct {
	Fill             *string `xml:"fill,attr"`
	FillOpacity      *string `xml:"fill-opacity,attr"`
	FillRule         *string `xml:"fill-rule,attr"`
	Stroke           *string `xml:"stroke,attr"`
	StrokeWidth      *string `xml:"stroke-width,attr"`
	StrokeOpacity    *string `xml:"stroke-opacity,attr"`
	StrokeLineCap    *string `xml:"stroke-linecap,attr"`
	StrokeLineJoin   *string `xml:"stroke-linejoin,attr"`
	StrokeMiterLimit *string `xml:"stroke-miterlimit,attr"`
}

// styleSource builds the property lookup for style resolution,
// parsing the inline style string once.
func (sa *StyleAttributes) styleSource(pa *PresentationAttributes) (styleSource, error) {
	props, err := ParseStyleString(sa.Style)
	if err != nil {
		return styleSource{attrs: pa}, err
	}
	return styleSource{props: props, attrs: pa}, nil
}

// transformations parses the transform attribute, empty when unset.
func (sa *StyleAttributes) transformations() ([]Transformation, error) {
	if sa.Transform == "" {
		return nil, nil
	}
	return ParseTransformList(sa.Transform)
}

// scanElementAttrs fills the three capability sets from a start
// element's attribute list. Used by the containers that decode their
// children by hand; leaf shapes rely on the struct tags instead.
func scanElementAttrs(core *CoreAttributes, pres *PresentationAttributes, style *StyleAttributes, attrs []xml.Attr) {
	for _, attr := range attrs {
		v := attr.Value
		switch attr.Name.Local {
		case "id":
			core.ID = v
		case "style":
			style.Style = v
		case "transform":
			style.Transform = v
		case "fill":
			pres.Fill = strPtr(v)
		case "fill-opacity":
			pres.FillOpacity = strPtr(v)
		case "fill-rule":
			pres.FillRule = strPtr(v)
		case "stroke":
			pres.Stroke = strPtr(v)
		case "stroke-width":
			pres.StrokeWidth = strPtr(v)
		case "stroke-opacity":
			pres.StrokeOpacity = strPtr(v)
		case "stroke-linecap":
			pres.StrokeLineCap = strPtr(v)
		case "stroke-linejoin":
			pres.StrokeLineJoin = strPtr(v)
		case "stroke-miterlimit":
			pres.StrokeMiterLimit = strPtr(v)
		}
	}
}

func strPtr(s string) *string { return &s }

// Accessors promoted onto every element kind through embedding, so
// the flattener can reach any element's attribute sets uniformly.

func (c *CoreAttributes) coreAttrs() *CoreAttributes { return c }

func (p *PresentationAttributes) presentationAttrs() *PresentationAttributes { return p }

func (s *StyleAttributes) styleAttrs() *StyleAttributes { return s }

// Attribute emission for serialization. Numeric shape coordinates are
// rendered with fixed 5-decimal-place precision.

func attrStr(attrs []xml.Attr, name, v string) []xml.Attr {
	if v == "" {
		return attrs
	}
	return append(attrs, xml.Attr{Name: xml.Name{Local: name}, Value: v})
}

func attrOpt(attrs []xml.Attr, name string, v *string) []xml.Attr {
	if v == nil {
		return attrs
	}
	return append(attrs, xml.Attr{Name: xml.Name{Local: name}, Value: *v})
}

func attrCoord(attrs []xml.Attr, name string, f float64) []xml.Attr {
	return append(attrs, xml.Attr{Name: xml.Name{Local: name}, Value: fmt.Sprintf("%.5f", f)})
}

func (c CoreAttributes) marshalAttrs(attrs []xml.Attr) []xml.Attr {
	return attrStr(attrs, "id", c.ID)
}

func (s StyleAttributes) marshalAttrs(attrs []xml.Attr) []xml.Attr {
	attrs = attrStr(attrs, "style", s.Style)
	return attrStr(attrs, "transform", s.Transform)
}

func (p PresentationAttributes) marshalAttrs(attrs []xml.Attr) []xml.Attr {
	attrs = attrOpt(attrs, "fill", p.Fill)
	attrs = attrOpt(attrs, "fill-opacity", p.FillOpacity)
	attrs = attrOpt(attrs, "fill-rule", p.FillRule)
	attrs = attrOpt(attrs, "stroke", p.Stroke)
	attrs = attrOpt(attrs, "stroke-width", p.StrokeWidth)
	attrs = attrOpt(attrs, "stroke-opacity", p.StrokeOpacity)
	attrs = attrOpt(attrs, "stroke-linecap", p.StrokeLineCap)
	attrs = attrOpt(attrs, "stroke-linejoin", p.StrokeLineJoin)
	return attrOpt(attrs, "stroke-miterlimit", p.StrokeMiterLimit)
}

// writeElement emits a childless element with the given name and
// attributes.
func writeElement(e *xml.Encoder, name string, attrs []xml.Attr) error {
	start := xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}
