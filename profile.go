package elevation

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Saves a line plot of the elevation at each position along the path, with
// the column on the x axis. The image format is chosen from the filename's
// extension (e.g. ".png" or ".svg").
func SavePathProfile(g *Grid, p Path, filename string) error {
	if len(p) == 0 {
		return fmt.Errorf("Can't plot an empty path")
	}
	points := make(plotter.XYs, 0, len(p))
	for _, pos := range p {
		v, e := g.ElevationAt(pos.Row, pos.Column)
		if e != nil {
			return fmt.Errorf("Error plotting path: %w", e)
		}
		points = append(points, plotter.XY{
			X: float64(pos.Column),
			Y: float64(v),
		})
	}
	change, e := p.ElevationChange(g)
	if e != nil {
		return fmt.Errorf("Error plotting path: %w", e)
	}

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("Path from %s, total elevation change %d",
		p[0], change)
	pl.X.Label.Text = "Column"
	pl.Y.Label.Text = "Elevation"
	pl.Add(plotter.NewGrid())
	line, e := plotter.NewLine(points)
	if e != nil {
		return fmt.Errorf("Error creating profile line: %w", e)
	}
	line.Width = vg.Points(1)
	line.Color = DefaultPathColor
	pl.Add(line)
	e = pl.Save(10*vg.Inch, 4*vg.Inch, filename)
	if e != nil {
		return fmt.Errorf("Error saving profile to %s: %w", filename, e)
	}
	return nil
}
