package svg

import (
	"log"
	"strconv"
)

// ErrorMode controls how flattening reacts to a broken element.
type ErrorMode uint8

const (
	// IgnoreErrorMode drops broken elements silently.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode drops broken elements and logs each one.
	WarnErrorMode
	// StrictErrorMode aborts on the first broken element.
	StrictErrorMode
)

// ShapeElement is an element that converts to a path command
// sequence. The clockwise flag picks the traversal direction of
// closed outlines.
type ShapeElement interface {
	Element
	Commands(clockwise bool) ([]PathCommand, error)
}

// styledElement is satisfied by every element kind through the
// embedded capability sets.
type styledElement interface {
	coreAttrs() *CoreAttributes
	presentationAttrs() *PresentationAttributes
	styleAttrs() *StyleAttributes
}

// flattenState is the inherited context at one node of the walk: the
// transform chain accumulated from the root and the resolved paints.
type flattenState struct {
	transforms []Transformation
	stroke     Stroke
	fill       Fill
}

// child derives the state for an element from its parent's state,
// appending the element's own transforms and merging its styling over
// the inherited paints. The transform slice is copied so sibling
// subtrees cannot alias each other's chains.
func (st flattenState) child(el styledElement) (flattenState, error) {
	out := flattenState{stroke: st.stroke, fill: st.fill}

	sa := el.styleAttrs()
	src, err := sa.styleSource(el.presentationAttrs())
	if err != nil {
		return out, err
	}
	if out.stroke, err = resolveStroke(st.stroke, src); err != nil {
		return out, err
	}
	if out.fill, err = resolveFill(st.fill, src); err != nil {
		return out, err
	}

	ts, err := sa.transformations()
	if err != nil {
		return out, err
	}
	out.transforms = make([]Transformation, 0, len(st.transforms)+len(ts))
	out.transforms = append(out.transforms, st.transforms...)
	out.transforms = append(out.transforms, ts...)
	return out, nil
}

type flattener struct {
	mode  ErrorMode
	paths []*Path
}

// report consumes an element's error according to the mode. A non-nil
// return aborts the walk.
func (f *flattener) report(err error) error {
	switch f.mode {
	case StrictErrorMode:
		return err
	case WarnErrorMode:
		log.Printf("svg: flatten: %v", err)
	}
	return nil
}

// Flatten walks the document in order and converts every shape and
// path into a standalone Path with absolute commands in root
// coordinates and fully resolved paints. In Ignore and Warn mode
// broken elements are dropped and the rest of the document is still
// flattened; in Strict mode the first error aborts.
func (s *Svg) Flatten(mode ErrorMode) ([]*Path, error) {
	f := &flattener{mode: mode}
	state, err := flattenState{}.child(s)
	if err != nil {
		if err = f.report(err); err != nil {
			return nil, err
		}
		state = flattenState{}
	}
	for _, el := range s.Children {
		if err := f.walk(el, state); err != nil {
			return nil, err
		}
	}
	return f.paths, nil
}

func (f *flattener) walk(el Element, inherited flattenState) error {
	styled, ok := el.(styledElement)
	if !ok {
		return nil
	}
	state, err := inherited.child(styled)
	if err != nil {
		if err = f.report(err); err != nil {
			return err
		}
		// broken styling drops the element, not the whole walk
		return nil
	}

	switch v := el.(type) {
	case *Group:
		for _, child := range v.Children {
			if err := f.walk(child, state); err != nil {
				return err
			}
		}
	case *Path:
		cmds := v.Commands
		if cmds == nil {
			var err error
			cmds, err = ParsePathData(v.D)
			if err != nil {
				return f.report(err)
			}
		}
		f.emit(styled.coreAttrs().ID, cmds, state)
	case ShapeElement:
		cmds, err := v.Commands(true)
		if err != nil {
			return f.report(err)
		}
		if len(cmds) == 0 {
			return nil
		}
		f.emit(styled.coreAttrs().ID, cmds, state)
	}
	return nil
}

// emit normalizes a command sequence to absolute form, maps it through
// the composed transform chain and records the resulting path.
func (f *flattener) emit(id string, cmds []PathCommand, st flattenState) {
	if len(cmds) == 0 {
		return
	}
	out := transformCommands(absoluteCommands(cmds), Compose(st.transforms))
	p := &Path{
		Commands:    out,
		D:           RenderPathData(out),
		StrokePaint: st.stroke,
		FillPaint:   st.fill,
	}
	p.ID = id
	p.PresentationAttributes = paintAttributes(st.stroke, st.fill)
	f.paths = append(f.paths, p)
}

// paintAttributes converts resolved paints back into presentation
// attributes so a flattened path serializes with its styling attached.
func paintAttributes(stroke Stroke, fill Fill) PresentationAttributes {
	var pa PresentationAttributes
	pa.Fill = fill.Color
	if fill.Opacity != nil {
		pa.FillOpacity = strPtr(formatStyleFloat(*fill.Opacity))
	}
	if fill.Rule != NilFillRule {
		pa.FillRule = strPtr(fill.Rule.String())
	}
	pa.Stroke = stroke.Color
	if stroke.Width != nil {
		pa.StrokeWidth = strPtr(formatStyleFloat(*stroke.Width))
	}
	if stroke.Opacity != nil {
		pa.StrokeOpacity = strPtr(formatStyleFloat(*stroke.Opacity))
	}
	if stroke.LineCap != NilCap {
		pa.StrokeLineCap = strPtr(stroke.LineCap.String())
	}
	if stroke.LineJoin != NilJoin {
		pa.StrokeLineJoin = strPtr(stroke.LineJoin.String())
	}
	if stroke.MiterLimit != nil {
		pa.StrokeMiterLimit = strPtr(formatStyleFloat(*stroke.MiterLimit))
	}
	return pa
}

func formatStyleFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
