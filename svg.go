package svg

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// Element is an entity of the document tree. The set is closed: a
// child is a group, a path or one of the basic shapes.
type Element interface {
	xml.Marshaler
	isElement()
}

// Svg represents an SVG document. Width, Height and ViewBox keep their
// raw attribute values so unit suffixes survive a round trip; Bounds
// interprets them. Children holds groups, paths and bare shapes in
// document order.
type Svg struct {
	CoreAttributes
	PresentationAttributes
	StyleAttributes
	Width   string
	Height  string
	ViewBox string
	Title   string
	Desc    string

	Children []Element
}

// Bounds is the drawing area of a document in user units.
type Bounds struct {
	X, Y, W, H float64
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (s *Svg) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	if start.Name.Local != "svg" {
		return &ParseError{Attr: start.Name.Local, Msg: "root element is not svg"}
	}
	scanElementAttrs(&s.CoreAttributes, &s.PresentationAttributes, &s.StyleAttributes, start.Attr)
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "width":
			s.Width = attr.Value
		case "height":
			s.Height = attr.Value
		case "viewBox":
			s.ViewBox = attr.Value
		}
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}
		switch tok := token.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "title":
				if err := decoder.DecodeElement(&s.Title, &tok); err != nil {
					return err
				}
			case "desc":
				if err := decoder.DecodeElement(&s.Desc, &tok); err != nil {
					return err
				}
			default:
				child, err := decodeChild(decoder, tok)
				if err != nil {
					return err
				}
				if child != nil {
					s.Children = append(s.Children, child)
				}
			}
		case xml.EndElement:
			if tok.Name.Local == "svg" {
				return nil
			}
		}
	}
}

// MarshalXML implements the encoding.xml.Marshaler interface
func (s *Svg) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	attrs := []xml.Attr{{Name: xml.Name{Local: "xmlns"}, Value: "http://www.w3.org/2000/svg"}}
	attrs = s.CoreAttributes.marshalAttrs(attrs)
	attrs = attrStr(attrs, "width", s.Width)
	attrs = attrStr(attrs, "height", s.Height)
	attrs = attrStr(attrs, "viewBox", s.ViewBox)
	attrs = s.PresentationAttributes.marshalAttrs(attrs)
	attrs = s.StyleAttributes.marshalAttrs(attrs)

	start := xml.StartElement{Name: xml.Name{Local: "svg"}, Attr: attrs}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if s.Title != "" {
		if err := e.EncodeElement(s.Title, xml.StartElement{Name: xml.Name{Local: "title"}}); err != nil {
			return err
		}
	}
	if s.Desc != "" {
		if err := e.EncodeElement(s.Desc, xml.StartElement{Name: xml.Name{Local: "desc"}}); err != nil {
			return err
		}
	}
	for _, child := range s.Children {
		if err := e.Encode(child); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// Bounds returns the document's drawing area: the viewBox when set,
// otherwise a region at the origin sized by the width and height
// attributes with any unit suffix ignored.
func (s *Svg) Bounds() (Bounds, error) {
	if s.ViewBox != "" {
		nums, err := parseNumberList(s.ViewBox)
		if err != nil {
			return Bounds{}, &ParseError{Attr: "viewBox", Msg: "malformed number list", Err: err}
		}
		if len(nums) != 4 {
			return Bounds{}, &ParseError{Attr: "viewBox", Msg: "expected 4 numbers, got " + strconv.Itoa(len(nums))}
		}
		return Bounds{X: nums[0], Y: nums[1], W: nums[2], H: nums[3]}, nil
	}
	w, err := parseDimension("width", s.Width)
	if err != nil {
		return Bounds{}, err
	}
	h, err := parseDimension("height", s.Height)
	if err != nil {
		return Bounds{}, err
	}
	return Bounds{W: w, H: h}, nil
}

// parseDimension parses a length attribute, tolerating a trailing unit
// such as px, pt, mm or %. An empty value counts as zero.
func parseDimension(attr, v string) (float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	end := len(v)
	for end > 0 {
		c := v[end-1]
		if (c >= '0' && c <= '9') || c == '.' {
			break
		}
		end--
	}
	f, err := strconv.ParseFloat(v[:end], 64)
	if err != nil {
		return 0, &ParseError{Attr: attr, Msg: "malformed length " + strconv.Quote(v), Err: err}
	}
	return f, nil
}

// ParseSvg parses an SVG document from a string.
func ParseSvg(str string) (*Svg, error) {
	return ParseSvgFromReader(strings.NewReader(str))
}

// ParseSvgFromReader parses an SVG document from an io.Reader. The
// decoder honors the document's declared character encoding.
func ParseSvgFromReader(r io.Reader) (*Svg, error) {
	var s Svg
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	if err := decoder.Decode(&s); err != nil {
		if pe, ok := err.(*ParseError); ok {
			return nil, pe
		}
		return nil, &ParseError{Attr: "svg", Msg: "malformed document", Err: err}
	}
	return &s, nil
}

// LoadDocument reads and parses the SVG file at the given path.
func LoadDocument(path string) (*Svg, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, err
	}
	defer f.Close()
	return ParseSvgFromReader(f)
}

// Render serializes the document back to SVG markup.
func (s *Svg) Render() (string, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	if err := enc.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
