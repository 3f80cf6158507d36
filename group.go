package svg

import "encoding/xml"

// Group is an SVG g element. Children holds the group's content as a
// single sequence in document order, so a decoded document serializes
// back with its elements where they were.
type Group struct {
	CoreAttributes
	PresentationAttributes
	StyleAttributes
	Children []Element
}

func (*Group) isElement() {}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (g *Group) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	scanElementAttrs(&g.CoreAttributes, &g.PresentationAttributes, &g.StyleAttributes, start.Attr)
	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}
		switch tok := token.(type) {
		case xml.StartElement:
			child, err := decodeChild(decoder, tok)
			if err != nil {
				return err
			}
			if child != nil {
				g.Children = append(g.Children, child)
			}
		case xml.EndElement:
			return nil
		}
	}
}

// decodeChild decodes one child start element into its entity.
// Unknown element names are skipped along with their subtree.
func decodeChild(decoder *xml.Decoder, tok xml.StartElement) (Element, error) {
	var el Element
	switch tok.Name.Local {
	case "g":
		el = &Group{}
	case "circle":
		el = &Circle{}
	case "ellipse":
		el = &Ellipse{}
	case "rect":
		el = &Rect{}
	case "line":
		el = &Line{}
	case "polygon":
		el = &Polygon{}
	case "polyline":
		el = &PolyLine{}
	case "path":
		el = &Path{}
	default:
		return nil, decoder.Skip()
	}
	if err := decoder.DecodeElement(el, &tok); err != nil {
		return nil, &ParseError{Attr: tok.Name.Local, Msg: "cannot decode element", Err: err}
	}
	return el, nil
}

// MarshalXML implements the encoding.xml.Marshaler interface
func (g *Group) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	attrs := g.CoreAttributes.marshalAttrs(nil)
	attrs = g.PresentationAttributes.marshalAttrs(attrs)
	attrs = g.StyleAttributes.marshalAttrs(attrs)
	start := xml.StartElement{Name: xml.Name{Local: "g"}, Attr: attrs}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, child := range g.Children {
		if err := e.Encode(child); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}
