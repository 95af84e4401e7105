package charts

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrNoData is returned when a renderer is given an empty series.
var ErrNoData = errors.New("charts: no data to draw")

// Figure is a drawn chart held in memory. Panels are laid out in a grid of
// rows and columns; a single chart is a 1x1 grid.
//
// Building a Figure touches no files; WriteTo and Save persist it.
type Figure struct {
	Name   string
	Panels [][]*plot.Plot
	Width  vg.Length
	Height vg.Length
}

func single(name string, p *plot.Plot, width, height vg.Length) *Figure {
	return &Figure{
		Name:   name,
		Panels: [][]*plot.Plot{{p}},
		Width:  width,
		Height: height,
	}
}

// Rows returns the number of panel rows.
func (f *Figure) Rows() int {
	return len(f.Panels)
}

// Cols returns the number of panel columns.
func (f *Figure) Cols() int {
	if len(f.Panels) == 0 {
		return 0
	}
	return len(f.Panels[0])
}

// Panel returns the plot at (row, col).
func (f *Figure) Panel(row, col int) *plot.Plot {
	return f.Panels[row][col]
}

// WriteTo renders the figure as PNG into w.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	if f.Rows() == 0 || f.Cols() == 0 {
		return 0, ErrNoData
	}

	img := vgimg.New(f.Width, f.Height)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      f.Rows(),
		Cols:      f.Cols(),
		PadX:      vg.Millimeter * 8,
		PadY:      vg.Millimeter * 8,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}

	canvases := plot.Align(f.Panels, tiles, dc)
	for j := range f.Panels {
		for i := range f.Panels[j] {
			f.Panels[j][i].Draw(canvases[j][i])
		}
	}

	png := vgimg.PngCanvas{Canvas: img}
	return png.WriteTo(w)
}

// Save writes the figure as PNG to path, replacing any existing file. The
// image is written to a temporary file in the same directory and renamed
// into place.
func (f *Figure) Save(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("save %s: %w", f.Name, err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("save %s: %w", f.Name, err)
	}

	if _, err := f.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("render %s: %w", f.Name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save %s: %w", f.Name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save %s: %w", f.Name, err)
	}
	return nil
}
