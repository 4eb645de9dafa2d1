package elevation

import (
	"fmt"
	"image"
	"image/color"
)

// The color used for paths by default, matching the maze solution color.
var DefaultPathColor color.Color = color.RGBA{
	R: 230,
	G: 20,
	B: 20,
	A: 255,
}

// Satisfies the image.Image interface, drawing one pixel per grid cell. Each
// cell's gray level is given by Grid.AlphaValue, unless the cell is on a
// highlighted path. Create using NewElevationImage.
type ElevationImage struct {
	grid *Grid
	// Indexed the same way as the grid's cells. Nil entries aren't on any
	// highlighted path.
	overlay []color.Color
	// The number of cells currently highlighted.
	highlighted int
}

// Returns a new image of the given grid, with no paths highlighted.
func NewElevationImage(g *Grid) *ElevationImage {
	return &ElevationImage{
		grid:    g,
		overlay: make([]color.Color, len(g.cells)),
	}
}

// Draws every position in the path in the given color, replacing any color
// from earlier calls. Either highlights every position or, if one is outside
// of the grid, returns an error wrapping ErrOutOfBounds and changes nothing.
func (m *ElevationImage) HighlightPath(p Path, c color.Color) error {
	g := m.grid
	for _, pos := range p {
		if !g.InBounds(pos.Row, pos.Column) {
			return fmt.Errorf("%w: path position %s in a %dx%d grid",
				ErrOutOfBounds, pos, g.width, g.height)
		}
	}
	for _, pos := range p {
		index := pos.Row*g.width + pos.Column
		if m.overlay[index] == nil {
			m.highlighted++
		}
		m.overlay[index] = c
	}
	return nil
}

// Removes all highlighted paths.
func (m *ElevationImage) ClearPaths() {
	for i := range m.overlay {
		m.overlay[i] = nil
	}
	m.highlighted = 0
}

// Returns a human-readable string about the image, for debug output.
func (m *ElevationImage) GetInfo() string {
	g := m.grid
	return fmt.Sprintf("%dx%d elevation map, elevations %d to %d, %d cells "+
		"highlighted", g.width, g.height, g.minElevation, g.maxElevation,
		m.highlighted)
}

func (m *ElevationImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (m *ElevationImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.grid.width, m.grid.height)
}

func (m *ElevationImage) At(x, y int) color.Color {
	// Pixel columns are grid columns and pixel rows are grid rows.
	g := m.grid
	if !g.InBounds(y, x) {
		return color.Transparent
	}
	index := y*g.width + x
	if m.overlay[index] != nil {
		return m.overlay[index]
	}
	v := g.AlphaValue(g.cells[index])
	return color.RGBA{
		R: v,
		G: v,
		B: v,
		A: 255,
	}
}

// Satisfies the Image interface, surrounds an image with a solid-color border.
type imageBorder struct {
	pic         image.Image
	picBounds   image.Rectangle
	borderWidth int
	fillColor   color.Color
}

func (b *imageBorder) ColorModel() color.Model {
	return b.pic.ColorModel()
}

func (b *imageBorder) Bounds() image.Rectangle {
	w := b.borderWidth * 2
	return image.Rect(0, 0, b.picBounds.Dx()+w, b.picBounds.Dy()+w)
}

func (b *imageBorder) At(x, y int) color.Color {
	tmp := b.picBounds
	if (x < b.borderWidth) || (y < b.borderWidth) {
		return b.fillColor
	}
	if (x >= tmp.Dx()+b.borderWidth) || (y >= tmp.Dy()+b.borderWidth) {
		return b.fillColor
	}
	return b.pic.At(x-b.borderWidth+tmp.Min.X, y-b.borderWidth+tmp.Min.Y)
}

// Returns a new image, consisting of the given image surrounded by a border
// of the given color and width in pixels. The returned image's bounds always
// start at (0, 0).
func AddImageBorder(pic image.Image, fill color.Color, width int) image.Image {
	if width < 0 {
		width = 0
	}
	return &imageBorder{
		pic:         pic,
		picBounds:   pic.Bounds(),
		borderWidth: width,
		fillColor:   fill,
	}
}
