// Package plot renders time series as PNG line charts.
package plot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"SeriesScope/internal/series"
)

const (
	// DefaultWidth and DefaultHeight are the chart dimensions in pixels
	// when the config leaves them unset.
	DefaultWidth  = 1024
	DefaultHeight = 576
)

// LineRenderer draws a series as a PNG line chart. It implements
// series.Renderer.
type LineRenderer struct {
	Width  int
	Height int
	sink   func() (io.WriteCloser, error)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// NewWriterRenderer renders into the given writer.
func NewWriterRenderer(w io.Writer, width, height int) *LineRenderer {
	return &LineRenderer{
		Width:  width,
		Height: height,
		sink: func() (io.WriteCloser, error) {
			return nopCloser{w}, nil
		},
	}
}

// NewFileRenderer renders into the file at path, creating or truncating it
// on every render.
func NewFileRenderer(path string, width, height int) *LineRenderer {
	return &LineRenderer{
		Width:  width,
		Height: height,
		sink: func() (io.WriteCloser, error) {
			return os.Create(path)
		},
	}
}

// RenderLine draws the points as a line chart with the given title and axis
// labels. An empty series cannot be drawn and returns an error; a single
// point is padded to a flat two-point segment so go-chart accepts it.
func (r *LineRenderer) RenderLine(pts series.Points, title, xLabel, yLabel string) error {
	if len(pts) == 0 {
		return errors.New("cannot render an empty series")
	}

	times := make([]time.Time, len(pts))
	values := make([]float64, len(pts))
	for i, p := range pts {
		times[i] = p.Time
		values[i] = p.Value
	}
	if len(times) == 1 {
		times = append(times, times[0].Add(time.Second))
		values = append(values, values[0])
	}

	width, height := r.Width, r.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	graph := chart.Chart{
		Title:  title,
		Width:  width,
		Height: height,
		XAxis:  chart.XAxis{Name: xLabel},
		YAxis:  chart.YAxis{Name: yLabel},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    title,
				XValues: times,
				YValues: values,
			},
		},
	}

	out, err := r.sink()
	if err != nil {
		return fmt.Errorf("open chart output: %w", err)
	}
	if err := graph.Render(chart.PNG, out); err != nil {
		out.Close()
		return fmt.Errorf("render chart: %w", err)
	}
	return out.Close()
}
