package svg

import "encoding/xml"

// Line is an SVG line element
type Line struct {
	CoreAttributes
	PresentationAttributes
	StyleAttributes
	X1 float64 `xml:"x1,attr"`
	Y1 float64 `xml:"y1,attr"`
	X2 float64 `xml:"x2,attr"`
	Y2 float64 `xml:"y2,attr"`
}

func (*Line) isElement() {}

// Commands converts the line into its equivalent path: a move to the
// first endpoint and a line to the second. The path stays open since a
// line has no interior.
func (l *Line) Commands(_ bool) ([]PathCommand, error) {
	if !isFinite(l.X1) || !isFinite(l.Y1) || !isFinite(l.X2) || !isFinite(l.Y2) {
		return nil, &ShapeError{Element: "line", Attr: "x1/y1/x2/y2", Msg: "non-finite geometry"}
	}
	return []PathCommand{
		moveTo(l.X1, l.Y1),
		lineTo(l.X2, l.Y2),
	}, nil
}

// MarshalXML implements the encoding.xml.Marshaler interface
func (l *Line) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	attrs := l.CoreAttributes.marshalAttrs(nil)
	attrs = attrCoord(attrs, "x1", l.X1)
	attrs = attrCoord(attrs, "y1", l.Y1)
	attrs = attrCoord(attrs, "x2", l.X2)
	attrs = attrCoord(attrs, "y2", l.Y2)
	attrs = l.PresentationAttributes.marshalAttrs(attrs)
	attrs = l.StyleAttributes.marshalAttrs(attrs)
	return writeElement(e, "line", attrs)
}
