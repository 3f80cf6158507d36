package svg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type pathTest struct {
	Description string
	D           string
	Kinds       []CommandKind
	XCoords     []float64
	YCoords     []float64
}

var pathTests = []pathTest{
	{
		"absolute lines",
		"M0.000 0.000 L100.000 0.000 100.000 100.000 L0.000 100.000 Z",
		[]CommandKind{MoveTo, LineTo, LineTo, LineTo, ClosePath},
		[]float64{0, 100, 100, 0, 0},
		[]float64{0, 0, 100, 100, 0},
	},
	{
		"relative lines",
		"M0.000 0.000 l100.000 0.000 100.000 100.000 l0.000 100.000 Z",
		[]CommandKind{MoveTo, LineTo, LineTo, LineTo, ClosePath},
		[]float64{0, 100, 200, 200, 0},
		[]float64{0, 0, 100, 200, 0},
	},
	{
		"implicit lineto after moveto",
		"M0 0 10 5 20 10",
		[]CommandKind{MoveTo, LineTo, LineTo},
		[]float64{0, 10, 20},
		[]float64{0, 5, 10},
	},
	{
		"relative h-line",
		"M0.000 0.000 h100.000 50.000",
		[]CommandKind{MoveTo, LineTo, LineTo},
		[]float64{0, 100, 150},
		[]float64{0, 0, 0},
	},
	{
		"absolute h-line",
		"M0.000 0.000 H100.000 50.000",
		[]CommandKind{MoveTo, LineTo, LineTo},
		[]float64{0, 100, 50},
		[]float64{0, 0, 0},
	},
	{
		"relative v-line",
		"M0.000 0.000 v100.000 50.000",
		[]CommandKind{MoveTo, LineTo, LineTo},
		[]float64{0, 0, 0},
		[]float64{0, 100, 150},
	},
	{
		"absolute v-line",
		"M0.000 0.000 V100.000 50.000",
		[]CommandKind{MoveTo, LineTo, LineTo},
		[]float64{0, 0, 0},
		[]float64{0, 100, 50},
	},
	{
		"close resets the pen to the subpath start",
		"M10 10 L20 10 Z l5 5",
		[]CommandKind{MoveTo, LineTo, ClosePath, LineTo},
		[]float64{10, 20, 10, 15},
		[]float64{10, 10, 10, 15},
	},
	{
		"relative cubic curve",
		"M10 10 c1 2 3 4 5 6",
		[]CommandKind{MoveTo, CubicTo},
		[]float64{10, 15},
		[]float64{10, 16},
	},
	{
		"relative arc",
		"M10 10 a5 5 0 0 1 10 0",
		[]CommandKind{MoveTo, ArcTo},
		[]float64{10, 20},
		[]float64{10, 10},
	},
}

func TestParsePathData(t *testing.T) {
	for _, test := range pathTests {
		cmds, err := ParsePathData(test.D)
		require.NoError(t, err, test.Description)

		abs := absoluteCommands(cmds)
		require.Len(t, abs, len(test.Kinds), test.Description)

		for i, kind := range test.Kinds {
			require.Equal(t, kind, abs[i].Kind, "%s: command %d", test.Description, i)
			require.False(t, abs[i].Relative, "%s: command %d", test.Description, i)
			if kind == ClosePath {
				continue
			}
			require.Equal(t, test.XCoords[i], abs[i].To[0], "%s: x of command %d", test.Description, i)
			require.Equal(t, test.YCoords[i], abs[i].To[1], "%s: y of command %d", test.Description, i)
		}
	}
}

func TestParsePathDataCurves(t *testing.T) {
	cmds, err := ParsePathData("M0 0 C1 2 3 4 5 6 S7 8 9 10 Q11 12 13 14 T15 16")
	require.NoError(t, err)
	require.Len(t, cmds, 5)

	c := cmds[1]
	require.Equal(t, CubicTo, c.Kind)
	require.Equal(t, Tuple{1, 2}, c.C1)
	require.Equal(t, Tuple{3, 4}, c.C2)
	require.Equal(t, Tuple{5, 6}, c.To)

	s := cmds[2]
	require.Equal(t, SmoothCubicTo, s.Kind)
	require.Equal(t, Tuple{7, 8}, s.C2)
	require.Equal(t, Tuple{9, 10}, s.To)

	q := cmds[3]
	require.Equal(t, QuadTo, q.Kind)
	require.Equal(t, Tuple{11, 12}, q.C1)
	require.Equal(t, Tuple{13, 14}, q.To)

	require.Equal(t, SmoothQuadTo, cmds[4].Kind)
	require.Equal(t, Tuple{15, 16}, cmds[4].To)
}

func TestParsePathDataArcs(t *testing.T) {
	cmds, err := ParsePathData("M0 0 A25,25 -30 0,1 50,-25")
	require.NoError(t, err)
	require.Len(t, cmds, 2)

	a := cmds[1]
	require.Equal(t, ArcTo, a.Kind)
	require.Equal(t, 25.0, a.Rx)
	require.Equal(t, 25.0, a.Ry)
	require.Equal(t, -30.0, a.XRotation)
	require.False(t, a.LargeArc)
	require.True(t, a.Sweep)
	require.Equal(t, Tuple{50, -25}, a.To)
}

func TestParsePathDataErrors(t *testing.T) {
	bad := []struct {
		name string
		d    string
	}{
		{"odd moveto coordinates", "M10"},
		{"odd lineto coordinates", "M0 0 L10 10 5"},
		{"truncated cubic", "M0 0 C1 2 3 4"},
		{"arc flag out of range", "A1 1 0 2 0 5 5"},
		{"unknown command", "M0 0 X10"},
		{"command without arguments", "M0 0 L"},
		{"illegal character", "M0 0 #10,10"},
	}
	for _, test := range bad {
		_, err := ParsePathData(test.d)
		require.Error(t, err, test.name)
		require.IsType(t, &ParseError{}, err, test.name)
	}
}

func TestRenderPathData(t *testing.T) {
	cmds := []PathCommand{
		moveTo(0, 0),
		lineTo(10, 0),
		arcTo(5, 5, 0, false, true, 10, 10),
		closePath(),
	}
	require.Equal(t,
		"M0.00000,0.00000 L10.00000,0.00000 A5.00000,5.00000 0.00000 0 1 10.00000,10.00000 Z",
		RenderPathData(cmds))
}

func TestPathString(t *testing.T) {
	p := &Path{D: "M0 0 L10 10"}
	require.Equal(t, "M0 0 L10 10", p.String())

	_, err := p.ParseCommands()
	require.NoError(t, err)
	require.Equal(t, "M0.00000,0.00000 L10.00000,10.00000", p.String())
}
