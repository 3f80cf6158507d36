package svg

import (
	"errors"
	"strings"
	"testing"

	"github.com/cheekybits/is"
)

const testSvg = `<?xml version="1.0" encoding="utf-8"?>
<!-- Generator: Adobe Illustrator 15.0.2, SVG Export Plug-In . SVG Version: 6.00 Build 0)  -->
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<svg version="1.1" id="Layer_1" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" x="0px" y="0px"
	 width="595.201px" height="841.922px" viewBox="0 0 595.201 841.922" enable-background="new 0 0 595.201 841.922"
	 xml:space="preserve">
<title>Podium</title>
<rect x="207" y="53" fill="#009FE3" width="181.667" height="85.333"/>
<text transform="matrix(1 0 0 1 232.3306 107.5952)" fill="#FFFFFF" font-family="'ArialMT'" font-size="31.9752">PODIUM</text>
<g id="marks" transform="translate(10 20)">
	<circle cx="5" cy="5" r="5"/>
	<path d="M0 0 L10 10"/>
</g>
</svg>`

func TestParse(t *testing.T) {
	is := is.New(t)

	svg, err := ParseSvg(testSvg)
	is.NoErr(err)
	is.NotNil(svg)

	svg, err = ParseSvgFromReader(strings.NewReader(testSvg))
	is.NoErr(err)
	is.NotNil(svg)

	is.Equal(svg.ID, "Layer_1")
	is.Equal(svg.Title, "Podium")
	is.Equal(svg.ViewBox, "0 0 595.201 841.922")

	// the text element is not part of the model and is skipped
	is.Equal(len(svg.Children), 2)

	rect, ok := svg.Children[0].(*Rect)
	is.OK(ok)
	is.Equal(rect.X, 207.0)
	is.NotNil(rect.Fill)
	is.Equal(*rect.Fill, "#009FE3")

	g, ok := svg.Children[1].(*Group)
	is.OK(ok)
	is.Equal(g.ID, "marks")
	is.Equal(g.Transform, "translate(10 20)")
	is.Equal(len(g.Children), 2)
	_, ok = g.Children[0].(*Circle)
	is.OK(ok)
	_, ok = g.Children[1].(*Path)
	is.OK(ok)
}

func TestParseRejectsNonSvgRoot(t *testing.T) {
	is := is.New(t)

	_, err := ParseSvg(`<html><body/></html>`)
	is.Err(err)
	var pe *ParseError
	is.OK(errors.As(err, &pe))
}

func TestParseMalformedXML(t *testing.T) {
	is := is.New(t)

	_, err := ParseSvg(`<svg><circle`)
	is.Err(err)
}

func TestBounds(t *testing.T) {
	is := is.New(t)

	svg, err := ParseSvg(testSvg)
	is.NoErr(err)
	b, err := svg.Bounds()
	is.NoErr(err)
	is.Equal(b, Bounds{X: 0, Y: 0, W: 595.201, H: 841.922})

	svg, err = ParseSvg(`<svg width="10px" height="20"/>`)
	is.NoErr(err)
	b, err = svg.Bounds()
	is.NoErr(err)
	is.Equal(b, Bounds{W: 10, H: 20})

	svg, err = ParseSvg(`<svg viewBox="0 0 1 2 3"/>`)
	is.NoErr(err)
	_, err = svg.Bounds()
	is.Err(err)
}

func TestLoadDocumentMissing(t *testing.T) {
	is := is.New(t)

	_, err := LoadDocument("testdata/does-not-exist.svg")
	is.Err(err)
	var nfe *NotFoundError
	is.OK(errors.As(err, &nfe))
	is.Equal(nfe.Path, "testdata/does-not-exist.svg")
}

func TestRenderRoundTrip(t *testing.T) {
	is := is.New(t)

	svg, err := ParseSvg(`<svg width="10" height="10"><circle cx="5" cy="5" r="5"/></svg>`)
	is.NoErr(err)

	markup, err := svg.Render()
	is.NoErr(err)

	again, err := ParseSvg(markup)
	is.NoErr(err)
	is.Equal(len(again.Children), 1)
	c, ok := again.Children[0].(*Circle)
	is.OK(ok)
	is.Equal(c.Cx, 5.0)
	is.Equal(c.Cy, 5.0)
	is.Equal(c.R, 5.0)
}

func TestRenderPreservesDocumentOrder(t *testing.T) {
	is := is.New(t)

	src := `<svg><rect width="1" height="1"/><g><line x1="0" y1="0" x2="1" y2="1"/></g><circle r="1"/></svg>`
	svg, err := ParseSvg(src)
	is.NoErr(err)

	markup, err := svg.Render()
	is.NoErr(err)

	again, err := ParseSvg(markup)
	is.NoErr(err)
	is.Equal(len(again.Children), 3)
	_, ok := again.Children[0].(*Rect)
	is.OK(ok)
	_, ok = again.Children[1].(*Group)
	is.OK(ok)
	_, ok = again.Children[2].(*Circle)
	is.OK(ok)
}
