package plot

import (
	"bytes"
	"testing"
	"time"

	"SeriesScope/internal/series"
)

func day(d int) time.Time {
	return time.Date(2023, 1, d, 0, 0, 0, 0, time.UTC)
}

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func TestRenderLine_WritesPNG(t *testing.T) {
	pts := series.Points{
		{Time: day(1), Value: 1.0},
		{Time: day(2), Value: 3.0},
		{Time: day(3), Value: 2.0},
	}

	var buf bytes.Buffer
	r := NewWriterRenderer(&buf, 640, 480)
	if err := r.RenderLine(pts, "S", "Time", "Value"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected chart bytes")
	}
	if !bytes.HasPrefix(buf.Bytes(), pngHeader) {
		t.Errorf("output is not a PNG, starts with %v", buf.Bytes()[:4])
	}
}

func TestRenderLine_SinglePoint(t *testing.T) {
	pts := series.Points{{Time: day(1), Value: 1.0}}

	var buf bytes.Buffer
	r := NewWriterRenderer(&buf, 0, 0) // falls back to default dimensions
	if err := r.RenderLine(pts, "S", "Time", "Value"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected chart bytes for single-point series")
	}
}

func TestRenderLine_EmptySeries(t *testing.T) {
	var buf bytes.Buffer
	r := NewWriterRenderer(&buf, 640, 480)
	if err := r.RenderLine(nil, "S", "Time", "Value"); err == nil {
		t.Fatal("expected error for empty series")
	}
	if buf.Len() != 0 {
		t.Error("expected no output on error")
	}
}
