package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testView(zoom float64) View {
	return View{Left: -12, Right: 12, Bottom: -8, Top: 8, Width: 900, Height: 600, Zoom: zoom}
}

func TestView_WorldToScreen(t *testing.T) {
	v := testView(1)

	x, y := v.WorldToScreen(0, 0)
	assert.InDelta(t, 450.0, x, 1e-9)
	assert.InDelta(t, 300.0, y, 1e-9)

	x, y = v.WorldToScreen(-12, 8)
	assert.InDelta(t, 0.0, x, 1e-9)
	assert.InDelta(t, 0.0, y, 1e-9)

	x, y = v.WorldToScreen(12, -8)
	assert.InDelta(t, 900.0, x, 1e-9)
	assert.InDelta(t, 600.0, y, 1e-9)
}

func TestView_ZoomNarrowsView(t *testing.T) {
	v := testView(0.5)

	// При zoom 0.5 видна область [-6, 6]×[-4, 4]
	x, y := v.WorldToScreen(6, 4)
	assert.InDelta(t, 900.0, x, 1e-9)
	assert.InDelta(t, 0.0, y, 1e-9)
}

func TestView_Transform(t *testing.T) {
	v := testView(1)
	shape := Shape{Polygon: []Point{{1, 0}, {0, 1}}}

	pts := v.Transform(shape, 0, 0, 90)
	require.Len(t, pts, 2)

	// (1, 0) после поворота на 90° становится (0, 1)
	x, y := v.WorldToScreen(0, 1)
	assert.InDelta(t, x, pts[0].X, 1e-9)
	assert.InDelta(t, y, pts[0].Y, 1e-9)
	// (0, 1) становится (-1, 0)
	x, y = v.WorldToScreen(-1, 0)
	assert.InDelta(t, x, pts[1].X, 1e-9)
	assert.InDelta(t, y, pts[1].Y, 1e-9)
}

func TestDefaultShapes(t *testing.T) {
	shapes := DefaultShapes()
	for _, name := range []string{"triangle", "square1", "square5", "rectangle3", "ground", "cannon", "barrier", "bullet", "ceiling", "wall_left", "wall_right"} {
		shape, ok := shapes[name]
		require.True(t, ok, name)
		assert.GreaterOrEqual(t, len(shape.Polygon), 3, name)
		assert.Equal(t, uint8(255), shape.Color.A, name)
	}
}

func TestColors(t *testing.T) {
	c := FloatColor(1, 0.5, 0)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(128), c.G)
	assert.Equal(t, uint8(0), c.B)

	d := DarkenColor(c)
	assert.Equal(t, uint8(127), d.R)
	assert.Equal(t, c.A, d.A)
}

func TestShape_FillColor(t *testing.T) {
	shape := DefaultShapes()["square5"]

	assert.Equal(t, shape.Color, shape.FillColor(false))
	dimmed := shape.FillColor(true)
	assert.Equal(t, DarkenColor(shape.Color), dimmed)
	assert.Less(t, dimmed.R, shape.Color.R)
	assert.Equal(t, shape.Color.A, dimmed.A)
}
