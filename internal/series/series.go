package series

import (
	"fmt"
	"sort"
	"time"

	"SeriesScope/internal/stats"
)

// Point is a single observation: a timestamp and its numeric value.
type Point struct {
	Time  time.Time
	Value float64
}

// Points is the recognized timestamp-indexed sequence: points in strictly
// ascending timestamp order with unique, non-zero timestamps. Construction
// and whole-sequence replacement validate against this shape.
type Points []Point

// TypeError reports that a supplied sequence does not conform to the
// Points shape. It is the only error kind raised by this package.
type TypeError struct {
	Reason string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("time series data must be an ordered timestamp-indexed sequence: %s", e.Reason)
}

func validate(pts Points) error {
	for i, p := range pts {
		if p.Time.IsZero() {
			return &TypeError{Reason: fmt.Sprintf("point %d has a zero timestamp", i)}
		}
		if i == 0 {
			continue
		}
		if !pts[i-1].Time.Before(p.Time) {
			if pts[i-1].Time.Equal(p.Time) {
				return &TypeError{Reason: fmt.Sprintf("duplicate timestamp at point %d (%s)", i, p.Time.Format(time.RFC3339))}
			}
			return &TypeError{Reason: fmt.Sprintf("timestamps not in ascending order at point %d", i)}
		}
	}
	return nil
}

// TimeSeries holds a named, ordered, timestamp-indexed sequence of values.
type TimeSeries struct {
	points Points
	name   string
}

// DefaultName is used when no name is given at construction.
const DefaultName = "Unnamed Series"

// Option configures a TimeSeries at construction.
type Option func(*TimeSeries)

// WithName sets the series name.
func WithName(name string) Option {
	return func(ts *TimeSeries) { ts.name = name }
}

// New creates a TimeSeries from the given points. The points must satisfy
// the Points shape; otherwise a *TypeError is returned and no series is
// created. An empty sequence is valid.
func New(pts Points, opts ...Option) (*TimeSeries, error) {
	if err := validate(pts); err != nil {
		return nil, err
	}
	ts := &TimeSeries{points: pts, name: DefaultName}
	for _, opt := range opts {
		opt(ts)
	}
	return ts, nil
}

// Data returns the current sequence. Callers must not mutate the returned
// slice; it is not a defensive copy.
func (ts *TimeSeries) Data() Points {
	return ts.points
}

// SetData replaces the entire stored sequence after re-validating it.
// On a *TypeError the previous sequence is left intact.
func (ts *TimeSeries) SetData(pts Points) error {
	if err := validate(pts); err != nil {
		return err
	}
	ts.points = pts
	return nil
}

// Name returns the series label.
func (ts *TimeSeries) Name() string {
	return ts.name
}

// SetName sets the series label. Any text is accepted, including "".
func (ts *TimeSeries) SetName(name string) {
	ts.name = name
}

// Len returns the number of points in the series.
func (ts *TimeSeries) Len() int {
	return len(ts.points)
}

// AddValue inserts the value at the given timestamp, overwriting any value
// already stored there (last write wins). Unlike SetData it performs no
// validation on the timestamp or value; inconsistent input surfaces later,
// in statistics or rendering.
func (ts *TimeSeries) AddValue(t time.Time, v float64) {
	i := sort.Search(len(ts.points), func(i int) bool {
		return !ts.points[i].Time.Before(t)
	})
	if i < len(ts.points) && ts.points[i].Time.Equal(t) {
		ts.points[i].Value = v
		return
	}
	ts.points = append(ts.points, Point{})
	copy(ts.points[i+1:], ts.points[i:])
	ts.points[i] = Point{Time: t, Value: v}
}

// Summary holds descriptive statistics for a series.
type Summary struct {
	Mean   float64
	Median float64
	Std    float64
	Min    float64
	Max    float64
	Length int
}

// Summary computes descriptive statistics over the current sequence.
// Std is the sample (n-1) standard deviation. On an empty series the
// statistical fields are NaN and Length is 0; no error is raised.
func (ts *TimeSeries) Summary() Summary {
	values := make([]float64, len(ts.points))
	for i, p := range ts.points {
		values[i] = p.Value
	}
	return Summary{
		Mean:   stats.Mean(values),
		Median: stats.Median(values),
		Std:    stats.SampleStd(values),
		Min:    stats.Min(values),
		Max:    stats.Max(values),
		Length: len(values),
	}
}

// Renderer draws a sequence as a line plot. Implementations own the output
// surface; the series only supplies data and labels.
type Renderer interface {
	RenderLine(pts Points, title, xLabel, yLabel string) error
}

// Plot renders the series as a line plot through the given renderer, with
// the series name as title and fixed "Time"/"Value" axis labels. It blocks
// until the renderer returns.
func (ts *TimeSeries) Plot(r Renderer) error {
	return r.RenderLine(ts.points, ts.name, "Time", "Value")
}

// String returns the human-readable form.
func (ts *TimeSeries) String() string {
	return fmt.Sprintf("TimeSeries: %s, Length: %d", ts.name, len(ts.points))
}

// GoString returns the diagnostic form used by %#v.
func (ts *TimeSeries) GoString() string {
	return fmt.Sprintf("TimeSeries(name=%q, length=%d)", ts.name, len(ts.points))
}
