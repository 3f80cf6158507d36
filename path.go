package svg

import "encoding/xml"

// Path is an SVG path element. D holds the raw attribute value as
// decoded; Commands holds the parsed command sequence once
// ParseCommands has run, and takes precedence over D when the path is
// serialized again.
type Path struct {
	CoreAttributes
	PresentationAttributes
	StyleAttributes
	D        string `xml:"d,attr"`
	Commands []PathCommand

	// paint state resolved during flattening
	StrokePaint Stroke
	FillPaint   Fill
}

func (*Path) isElement() {}

// ParseCommands parses the path's d attribute and caches the result on
// the Commands field.
func (p *Path) ParseCommands() ([]PathCommand, error) {
	cmds, err := ParsePathData(p.D)
	if err != nil {
		return nil, err
	}
	p.Commands = cmds
	return cmds, nil
}

// String renders the path's command sequence as path data, falling
// back to the raw attribute when the path was never parsed.
func (p *Path) String() string {
	if p.Commands == nil {
		return p.D
	}
	return RenderPathData(p.Commands)
}

// MarshalXML implements the encoding.xml.Marshaler interface
func (p *Path) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	attrs := p.CoreAttributes.marshalAttrs(nil)
	attrs = attrStr(attrs, "d", p.String())
	attrs = p.PresentationAttributes.marshalAttrs(attrs)
	attrs = p.StyleAttributes.marshalAttrs(attrs)
	return writeElement(e, "path", attrs)
}
