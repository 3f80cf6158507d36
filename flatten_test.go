package svg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlattenInheritsStyle(t *testing.T) {
	svg, err := ParseSvg(`<svg><g stroke="red" fill="black"><circle cx="5" cy="5" r="5"/><circle cx="1" cy="1" r="1" stroke="blue"/></g></svg>`)
	require.NoError(t, err)

	paths, err := svg.Flatten(StrictErrorMode)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	require.Equal(t, "red", *paths[0].StrokePaint.Color)
	require.Equal(t, "black", *paths[0].FillPaint.Color)

	// the child's own attribute wins over the inherited value
	require.Equal(t, "blue", *paths[1].StrokePaint.Color)
	require.Equal(t, "black", *paths[1].FillPaint.Color)
}

func TestFlattenAppliesGroupTransforms(t *testing.T) {
	svg, err := ParseSvg(`<svg><g transform="translate(10 20)"><g transform="scale(2)"><rect width="3" height="4"/></g></g></svg>`)
	require.NoError(t, err)

	paths, err := svg.Flatten(StrictErrorMode)
	require.NoError(t, err)
	require.Len(t, paths, 1)

	cmds := paths[0].Commands
	require.Len(t, cmds, 6)
	// scale is applied before the outer translate
	require.Equal(t, Tuple{10, 20}, cmds[0].To)
	require.Equal(t, Tuple{16, 20}, cmds[1].To)
	require.Equal(t, Tuple{16, 28}, cmds[2].To)
	require.Equal(t, Tuple{10, 28}, cmds[3].To)
}

func TestFlattenCircleUnderTransform(t *testing.T) {
	svg, err := ParseSvg(`<svg><g transform="translate(10 0)"><circle cx="5" cy="5" r="5"/></g></svg>`)
	require.NoError(t, err)

	paths, err := svg.Flatten(StrictErrorMode)
	require.NoError(t, err)
	require.Len(t, paths, 1)

	cmds := paths[0].Commands
	require.Len(t, cmds, 4)
	require.Equal(t, Tuple{20, 5}, cmds[0].To)
	require.Equal(t, Tuple{10, 5}, cmds[1].To)
	require.Equal(t, 5.0, cmds[1].Rx)
	require.Equal(t, 5.0, cmds[1].Ry)
}

func TestFlattenPathRelativeData(t *testing.T) {
	svg, err := ParseSvg(`<svg><path id="p" transform="translate(1 1)" d="m1 1 l2 0"/></svg>`)
	require.NoError(t, err)

	paths, err := svg.Flatten(StrictErrorMode)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Equal(t, "p", paths[0].ID)
	require.Equal(t, "M2.00000,2.00000 L4.00000,2.00000", paths[0].D)
}

func TestFlattenIdempotentOnPlainPaths(t *testing.T) {
	svg, err := ParseSvg(`<svg><path d="M0.00000,0.00000 L10.00000,0.00000 Z"/></svg>`)
	require.NoError(t, err)

	paths, err := svg.Flatten(StrictErrorMode)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Equal(t, "M0.00000,0.00000 L10.00000,0.00000 Z", paths[0].D)
}

func TestFlattenDocumentOrder(t *testing.T) {
	svg, err := ParseSvg(`<svg><rect id="a" width="1" height="1"/><g><circle id="b" r="1"/></g><line id="c" x2="1" y2="1"/></svg>`)
	require.NoError(t, err)

	paths, err := svg.Flatten(StrictErrorMode)
	require.NoError(t, err)
	require.Len(t, paths, 3)
	require.Equal(t, "a", paths[0].ID)
	require.Equal(t, "b", paths[1].ID)
	require.Equal(t, "c", paths[2].ID)
}

func TestFlattenErrorModes(t *testing.T) {
	src := `<svg><polygon points="0,0 10"/><circle cx="5" cy="5" r="5"/></svg>`
	svg, err := ParseSvg(src)
	require.NoError(t, err)

	_, err = svg.Flatten(StrictErrorMode)
	require.Error(t, err)
	var se *ShapeError
	require.True(t, errors.As(err, &se))
	require.Equal(t, "polygon", se.Element)

	// the broken polygon is dropped, the circle still flattens
	paths, err := svg.Flatten(IgnoreErrorMode)
	require.NoError(t, err)
	require.Len(t, paths, 1)

	paths, err = svg.Flatten(WarnErrorMode)
	require.NoError(t, err)
	require.Len(t, paths, 1)
}

func TestFlattenBadStyleDropsElement(t *testing.T) {
	svg, err := ParseSvg(`<svg><circle r="1" style="stroke-width: wide"/><circle r="2"/></svg>`)
	require.NoError(t, err)

	_, err = svg.Flatten(StrictErrorMode)
	require.Error(t, err)
	var styleErr *StyleError
	require.True(t, errors.As(err, &styleErr))

	paths, err := svg.Flatten(IgnoreErrorMode)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Equal(t, 2.0, paths[0].Commands[1].Rx)
}

func TestFlattenedPathSerializes(t *testing.T) {
	svg, err := ParseSvg(`<svg><g stroke="red"><circle cx="5" cy="5" r="5" style="stroke-width: 2"/></g></svg>`)
	require.NoError(t, err)

	paths, err := svg.Flatten(StrictErrorMode)
	require.NoError(t, err)
	require.Len(t, paths, 1)

	require.Equal(t, "red", *paths[0].Stroke)
	require.Equal(t, "2", *paths[0].StrokeWidth)

	out := &Svg{}
	out.Children = append(out.Children, paths[0])
	markup, err := out.Render()
	require.NoError(t, err)
	require.Contains(t, markup, `stroke="red"`)
	require.Contains(t, markup, `stroke-width="2"`)
	require.Contains(t, markup, `d="M10.00000,5.00000`)
}
