package svg

import "encoding/xml"

// Circle is an SVG circle element
type Circle struct {
	CoreAttributes
	PresentationAttributes
	StyleAttributes
	Cx float64 `xml:"cx,attr"`
	Cy float64 `xml:"cy,attr"`
	R  float64 `xml:"r,attr"`
}

func (*Circle) isElement() {}

// Commands converts the circle into its equivalent path: two 180
// degree arcs starting at the rightmost point, then a close. A radius
// of zero or less yields a bare move.
func (c *Circle) Commands(clockwise bool) ([]PathCommand, error) {
	return ellipseCommands("circle", c.Cx, c.Cy, c.R, c.R, clockwise)
}

// MarshalXML implements the encoding.xml.Marshaler interface
func (c *Circle) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	attrs := c.CoreAttributes.marshalAttrs(nil)
	attrs = attrCoord(attrs, "cx", c.Cx)
	attrs = attrCoord(attrs, "cy", c.Cy)
	attrs = attrCoord(attrs, "r", c.R)
	attrs = c.PresentationAttributes.marshalAttrs(attrs)
	attrs = c.StyleAttributes.marshalAttrs(attrs)
	return writeElement(e, "circle", attrs)
}
