package svg

import "fmt"

// ParseError reports malformed attribute syntax or malformed XML.
type ParseError struct {
	Attr string // attribute or construct being parsed
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("svg: parsing %s: %s: %v", e.Attr, e.Msg, e.Err)
	}
	return fmt.Sprintf("svg: parsing %s: %s", e.Attr, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ShapeError reports missing or invalid geometric parameters on a
// shape element.
type ShapeError struct {
	Element string
	Attr    string
	Msg     string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("svg: %s element, attribute %q: %s", e.Element, e.Attr, e.Msg)
}

// StyleError reports a malformed style property value. Style values
// that fail to parse surface here instead of crashing or silently
// defaulting.
type StyleError struct {
	Property string
	Value    string
	Err      error
}

func (e *StyleError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("svg: style property %q with value %q: %v", e.Property, e.Value, e.Err)
	}
	return fmt.Sprintf("svg: style property %q with value %q", e.Property, e.Value)
}

func (e *StyleError) Unwrap() error { return e.Err }

// NotFoundError reports a missing input file.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("svg: document %q not found: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }
