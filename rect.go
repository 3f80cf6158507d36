package svg

import (
	"encoding/xml"
	"math"
)

// Rect is an SVG rect element
type Rect struct {
	CoreAttributes
	PresentationAttributes
	StyleAttributes
	X      float64  `xml:"x,attr"`
	Y      float64  `xml:"y,attr"`
	Width  float64  `xml:"width,attr"`
	Height float64  `xml:"height,attr"`
	Rx     *float64 `xml:"rx,attr"`
	Ry     *float64 `xml:"ry,attr"`
}

func (*Rect) isElement() {}

// Commands converts the rectangle into its equivalent path, starting
// at the top-left corner and proceeding clockwise. Nonzero corner
// radii replace the corners with quarter-ellipse arcs; each radius is
// clamped to half the rectangle's extent on its axis. A rectangle
// without area yields a bare move.
func (r *Rect) Commands(clockwise bool) ([]PathCommand, error) {
	if !isFinite(r.X) || !isFinite(r.Y) || !isFinite(r.Width) || !isFinite(r.Height) {
		return nil, &ShapeError{Element: "rect", Attr: "x/y/width/height", Msg: "non-finite geometry"}
	}
	if r.Width <= 0 || r.Height <= 0 {
		// not drawn, but not an error
		return []PathCommand{moveTo(r.X, r.Y)}, nil
	}

	rx, ry, err := r.cornerRadii()
	if err != nil {
		return nil, err
	}
	x, y, w, h := r.X, r.Y, r.Width, r.Height
	if rx == 0 || ry == 0 {
		return []PathCommand{
			moveTo(x, y),
			lineTo(x+w, y),
			lineTo(x+w, y+h),
			lineTo(x, y+h),
			lineTo(x, y),
			closePath(),
		}, nil
	}
	return []PathCommand{
		moveTo(x+rx, y),
		lineTo(x+w-rx, y),
		arcTo(rx, ry, 0, false, clockwise, x+w, y+ry),
		lineTo(x+w, y+h-ry),
		arcTo(rx, ry, 0, false, clockwise, x+w-rx, y+h),
		lineTo(x+rx, y+h),
		arcTo(rx, ry, 0, false, clockwise, x, y+h-ry),
		lineTo(x, y+ry),
		arcTo(rx, ry, 0, false, clockwise, x+rx, y),
		closePath(),
	}, nil
}

// cornerRadii resolves rx/ry per the SVG auto rules: a missing radius
// takes the other's value, negatives count as unset, and both clamp
// to half the rectangle's width/height.
func (r *Rect) cornerRadii() (float64, float64, error) {
	var rx, ry float64
	if r.Rx != nil {
		if !isFinite(*r.Rx) {
			return 0, 0, &ShapeError{Element: "rect", Attr: "rx", Msg: "non-finite radius"}
		}
		rx = math.Max(*r.Rx, 0)
	}
	if r.Ry != nil {
		if !isFinite(*r.Ry) {
			return 0, 0, &ShapeError{Element: "rect", Attr: "ry", Msg: "non-finite radius"}
		}
		ry = math.Max(*r.Ry, 0)
	}
	if r.Rx == nil {
		rx = ry
	}
	if r.Ry == nil {
		ry = rx
	}
	rx = math.Min(rx, r.Width/2)
	ry = math.Min(ry, r.Height/2)
	return rx, ry, nil
}

// MarshalXML implements the encoding.xml.Marshaler interface
func (r *Rect) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	attrs := r.CoreAttributes.marshalAttrs(nil)
	attrs = attrCoord(attrs, "x", r.X)
	attrs = attrCoord(attrs, "y", r.Y)
	attrs = attrCoord(attrs, "width", r.Width)
	attrs = attrCoord(attrs, "height", r.Height)
	if r.Rx != nil {
		attrs = attrCoord(attrs, "rx", *r.Rx)
	}
	if r.Ry != nil {
		attrs = attrCoord(attrs, "ry", *r.Ry)
	}
	attrs = r.PresentationAttributes.marshalAttrs(attrs)
	attrs = r.StyleAttributes.marshalAttrs(attrs)
	return writeElement(e, "rect", attrs)
}
