// pkg/report/plot.go
package report

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/opd-ai/go-howitzer/pkg/physics"
)

// Default image size
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 5 * vg.Inch
)

// Trajectory is what gets plotted: the flight, and optionally the terrain
// under it and the target.
type Trajectory struct {
	Title   string
	States  []physics.KinematicState
	Terrain []physics.Vector2D // surface profile in meters, left to right
	Target  *physics.Vector2D
}

// Plot builds an altitude-over-distance chart. The flight needs at least
// one state.
func Plot(t Trajectory) (*plot.Plot, error) {
	if len(t.States) == 0 {
		return nil, fmt.Errorf("empty trajectory")
	}

	p := plot.New()
	p.Title.Text = t.Title
	p.X.Label.Text = "Distance (m)"
	p.Y.Label.Text = "Altitude (m)"
	p.Add(plotter.NewGrid())

	if len(t.Terrain) > 0 {
		ground, err := plotter.NewLine(vectors(t.Terrain))
		if err != nil {
			return nil, fmt.Errorf("terrain line: %w", err)
		}
		ground.Color = color.RGBA{R: 34, G: 139, B: 34, A: 255}
		p.Add(ground)
		p.Legend.Add("terrain", ground)
	}

	path := make(plotter.XYs, len(t.States))
	for i, s := range t.States {
		path[i] = plotter.XY{X: s.Position.X, Y: s.Position.Y}
	}
	line, err := plotter.NewLine(path)
	if err != nil {
		return nil, fmt.Errorf("flight line: %w", err)
	}
	line.Width = vg.Points(1.5)
	p.Add(line)
	p.Legend.Add("flight", line)

	ends, err := plotter.NewScatter(plotter.XYs{path[0], path[len(path)-1]})
	if err != nil {
		return nil, fmt.Errorf("end points: %w", err)
	}
	ends.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(ends)

	if t.Target != nil {
		target, err := plotter.NewScatter(plotter.XYs{{X: t.Target.X, Y: t.Target.Y}})
		if err != nil {
			return nil, fmt.Errorf("target: %w", err)
		}
		target.GlyphStyle.Shape = draw.CrossGlyph{}
		target.GlyphStyle.Color = color.RGBA{R: 220, G: 20, B: 60, A: 255}
		target.GlyphStyle.Radius = vg.Points(5)
		p.Add(target)
		p.Legend.Add("target", target)
	}
	return p, nil
}

// WriteImage renders the chart to w in the given format (png, svg, pdf...)
func WriteImage(w io.Writer, t Trajectory, format string) error {
	p, err := Plot(t)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(DefaultWidth, DefaultHeight, format)
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// SaveImage renders the chart to path; the extension picks the format
func SaveImage(path string, t Trajectory) error {
	p, err := Plot(t)
	if err != nil {
		return err
	}
	if filepath.Ext(path) == "" {
		return fmt.Errorf("no image format in %q", path)
	}
	return p.Save(DefaultWidth, DefaultHeight, path)
}

func vectors(points []physics.Vector2D) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, v := range points {
		xys[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	return xys
}
