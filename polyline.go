package svg

import "encoding/xml"

// PolyLine is an SVG polyline element, a set of connected line
// segments left open at the end.
type PolyLine struct {
	CoreAttributes
	PresentationAttributes
	StyleAttributes
	Points string `xml:"points,attr"`
}

func (*PolyLine) isElement() {}

// Commands converts the polyline into its equivalent path: a move to
// the first point and lines through the rest. Unlike polygon the path
// is not closed. An empty points list yields no commands.
func (p *PolyLine) Commands(_ bool) ([]PathCommand, error) {
	return polyCommands("polyline", p.Points, false)
}

// MarshalXML implements the encoding.xml.Marshaler interface
func (p *PolyLine) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	attrs := p.CoreAttributes.marshalAttrs(nil)
	attrs = attrStr(attrs, "points", p.Points)
	attrs = p.PresentationAttributes.marshalAttrs(attrs)
	attrs = p.StyleAttributes.marshalAttrs(attrs)
	return writeElement(e, "polyline", attrs)
}
