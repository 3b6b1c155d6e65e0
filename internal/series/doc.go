// Package series provides the TimeSeries container: a named, ordered,
// timestamp-indexed sequence of float64 values.
//
// Create a series from points:
//
//	pts := series.Points{
//		{Time: day1, Value: 1.0},
//		{Time: day2, Value: 3.0},
//	}
//	ts, err := series.New(pts, series.WithName("Closing Price"))
//
// The sequence shape (ascending, unique timestamps) is validated at
// construction and on SetData; a violation yields a *TypeError and leaves
// prior state untouched. AddValue deliberately skips that validation and
// inserts or overwrites a single point directly.
//
// Summary returns mean, median, sample standard deviation, min, max and
// length. Plot delegates drawing to a Renderer implementation such as the
// one in internal/plot.
package series
