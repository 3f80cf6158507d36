package svg

import "encoding/xml"

// Polygon is an SVG polygon element, a closed figure bounded by
// straight segments.
type Polygon struct {
	CoreAttributes
	PresentationAttributes
	StyleAttributes
	Points string `xml:"points,attr"`
}

func (*Polygon) isElement() {}

// Commands converts the polygon into its equivalent path: a move to
// the first point, lines through the rest and a close back to the
// start. An empty points list yields no commands.
func (p *Polygon) Commands(_ bool) ([]PathCommand, error) {
	return polyCommands("polygon", p.Points, true)
}

// MarshalXML implements the encoding.xml.Marshaler interface
func (p *Polygon) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	attrs := p.CoreAttributes.marshalAttrs(nil)
	attrs = attrStr(attrs, "points", p.Points)
	attrs = p.PresentationAttributes.marshalAttrs(attrs)
	attrs = p.StyleAttributes.marshalAttrs(attrs)
	return writeElement(e, "polygon", attrs)
}

// polyCommands is the shared polygon/polyline processor.
func polyCommands(element, points string, closed bool) ([]PathCommand, error) {
	pts, err := parsePoints(element, points)
	if err != nil {
		return nil, err
	}
	if len(pts) == 0 {
		return nil, nil
	}
	cmds := make([]PathCommand, 0, len(pts)+1)
	cmds = append(cmds, moveTo(pts[0][0], pts[0][1]))
	for _, pt := range pts[1:] {
		cmds = append(cmds, lineTo(pt[0], pt[1]))
	}
	if closed {
		cmds = append(cmds, closePath())
	}
	return cmds, nil
}
