package pipeline

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/sartorproj/pageviews/charts"
	"github.com/sartorproj/pageviews/stats"
	"github.com/sartorproj/pageviews/timeseries"
)

// Output file names, written into the output directory.
const (
	LinePlotFile = "line_plot.png"
	BarPlotFile  = "bar_plot.png"
	BoxPlotFile  = "box_plot.png"
)

// QuantileMethod is the interpolation used for the cleaning band.
const QuantileMethod = stats.Linear

// Clean drops values outside the central 95% of raw. raw is not modified.
func Clean(raw *timeseries.Series) (*timeseries.Series, stats.Band, error) {
	return stats.FilterPercentileBand(raw, stats.DefaultLowerPercentile, stats.DefaultUpperPercentile, QuantileMethod)
}

// Load reads the CSV at path and returns the cleaned series.
func Load(path string) (*timeseries.Series, error) {
	_, cleaned, _, err := loadAndClean(path)
	return cleaned, err
}

func loadAndClean(path string) (raw, cleaned *timeseries.Series, band stats.Band, err error) {
	raw, err = timeseries.LoadCSV(path, timeseries.DefaultCSVOptions())
	if err != nil {
		return nil, nil, stats.Band{}, err
	}
	cleaned, band, err = Clean(raw)
	if err != nil {
		return nil, nil, stats.Band{}, fmt.Errorf("clean %s: %w", path, err)
	}
	return raw, cleaned, band, nil
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithOutputDir sets the directory the images are written to.
func WithOutputDir(dir string) Option {
	return func(p *Pipeline) {
		p.outputDir = dir
	}
}

// WithLogger sets the logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// Pipeline holds the cleaned dataset shared read-only by the renderers.
type Pipeline struct {
	data      *timeseries.Series
	outputDir string
	logger    *slog.Logger
}

// New creates a pipeline over an already cleaned series.
func New(data *timeseries.Series, opts ...Option) *Pipeline {
	p := &Pipeline{
		data:      data,
		outputDir: ".",
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Open loads and cleans the CSV at path and returns a pipeline over it.
func Open(path string, opts ...Option) (*Pipeline, error) {
	p := New(nil, opts...)

	raw, cleaned, band, err := loadAndClean(path)
	if err != nil {
		return nil, err
	}

	first, last := cleaned.Span()
	p.logger.Info("Dataset loaded",
		slog.String("input", path),
		slog.Int("raw_rows", raw.Len()),
		slog.Int("kept_rows", cleaned.Len()),
		slog.Int("dropped_rows", raw.Len()-cleaned.Len()),
		slog.Float64("band_low", band.Low),
		slog.Float64("band_high", band.High),
		slog.String("quantile_method", QuantileMethod.String()),
		slog.Float64("kept_mean", cleaned.Mean()),
		slog.Float64("kept_min", cleaned.Min()),
		slog.Float64("kept_max", cleaned.Max()),
		slog.Time("first", first),
		slog.Time("last", last))

	p.data = cleaned
	return p, nil
}

// Data returns a copy of the cleaned dataset; the pipeline's own series
// stays unchanged whatever the caller does with it.
func (p *Pipeline) Data() *timeseries.Series {
	if p.data == nil {
		return nil
	}
	return p.data.Copy()
}

// DrawLinePlot draws the daily series and writes line_plot.png.
func (p *Pipeline) DrawLinePlot() (*charts.Figure, error) {
	return p.draw(LinePlotFile, charts.Line)
}

// DrawBarPlot draws the monthly averages per year and writes bar_plot.png.
func (p *Pipeline) DrawBarPlot() (*charts.Figure, error) {
	return p.draw(BarPlotFile, charts.Bar)
}

// DrawBoxPlot draws the trend and seasonality panels and writes box_plot.png.
func (p *Pipeline) DrawBoxPlot() (*charts.Figure, error) {
	return p.draw(BoxPlotFile, charts.Box)
}

// RunAll draws the line, bar and box charts in that order, stopping at the
// first failure.
func (p *Pipeline) RunAll() error {
	for _, draw := range []func() (*charts.Figure, error){
		p.DrawLinePlot,
		p.DrawBarPlot,
		p.DrawBoxPlot,
	} {
		if _, err := draw(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) draw(file string, render func(*timeseries.Series) (*charts.Figure, error)) (*charts.Figure, error) {
	if p.data == nil {
		return nil, fmt.Errorf("%s: %w", file, charts.ErrNoData)
	}
	fig, err := render(p.data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	path := filepath.Join(p.outputDir, file)
	if err := fig.Save(path); err != nil {
		return nil, err
	}
	p.logger.Info("Chart written",
		slog.String("chart", fig.Name),
		slog.String("path", path),
		slog.Int("panels", fig.Rows()*fig.Cols()))
	return fig, nil
}
