package svg

import "encoding/xml"

// Ellipse is an SVG ellipse element
type Ellipse struct {
	CoreAttributes
	PresentationAttributes
	StyleAttributes
	Cx float64 `xml:"cx,attr"`
	Cy float64 `xml:"cy,attr"`
	Rx float64 `xml:"rx,attr"`
	Ry float64 `xml:"ry,attr"`
}

func (*Ellipse) isElement() {}

// Commands converts the ellipse into its equivalent path.
func (el *Ellipse) Commands(clockwise bool) ([]PathCommand, error) {
	return ellipseCommands("ellipse", el.Cx, el.Cy, el.Rx, el.Ry, clockwise)
}

// MarshalXML implements the encoding.xml.Marshaler interface
func (el *Ellipse) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	attrs := el.CoreAttributes.marshalAttrs(nil)
	attrs = attrCoord(attrs, "cx", el.Cx)
	attrs = attrCoord(attrs, "cy", el.Cy)
	attrs = attrCoord(attrs, "rx", el.Rx)
	attrs = attrCoord(attrs, "ry", el.Ry)
	attrs = el.PresentationAttributes.marshalAttrs(attrs)
	attrs = el.StyleAttributes.marshalAttrs(attrs)
	return writeElement(e, "ellipse", attrs)
}

// ellipseCommands is the shared circle/ellipse processor. A full
// ellipse cannot be expressed as a single arc command, so it is
// decomposed into two 180 degree arcs from the rightmost point to the
// leftmost and back. The sweep flag follows the requested direction;
// the large-arc flag is always 0 since each arc spans exactly half
// the ellipse.
func ellipseCommands(element string, cx, cy, rx, ry float64, clockwise bool) ([]PathCommand, error) {
	if !isFinite(cx) || !isFinite(cy) || !isFinite(rx) || !isFinite(ry) {
		return nil, &ShapeError{Element: element, Attr: "cx/cy/rx/ry", Msg: "non-finite geometry"}
	}
	if rx <= 0 || ry <= 0 {
		// degenerate, not drawn but not an error
		return []PathCommand{moveTo(cx, cy)}, nil
	}
	return []PathCommand{
		moveTo(cx+rx, cy),
		arcTo(rx, ry, 0, false, clockwise, cx-rx, cy),
		arcTo(rx, ry, 0, false, clockwise, cx+rx, cy),
		closePath(),
	}, nil
}
