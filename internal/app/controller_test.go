package app

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/iburimskiy/cursorglow/internal/highlight"
	"github.com/iburimskiy/cursorglow/internal/settings"
)

type memorySaver struct {
	saved []settings.Record
	err   error
}

func (m *memorySaver) Save(r settings.Record) error {
	m.saved = append(m.saved, r)
	return m.err
}

type countingCanvas struct {
	strokes int
	arcs    []float64 // centers x
}

func (c *countingCanvas) Save()                     {}
func (c *countingCanvas) Restore()                  {}
func (c *countingCanvas) Translate(_, _ float64)    {}
func (c *countingCanvas) Scale(_, _ float64)        {}
func (c *countingCanvas) Rotate(_ float64)          {}
func (c *countingCanvas) NewSubPath()               {}
func (c *countingCanvas) ClosePath()                {}
func (c *countingCanvas) SetColor(_ highlight.Color) {}
func (c *countingCanvas) SetLineWidth(_ float64)    {}
func (c *countingCanvas) Stroke()                   { c.strokes++ }
func (c *countingCanvas) Arc(cx, _, _, _, _ float64) {
	c.arcs = append(c.arcs, cx)
}

var start = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestDispatchPressTickRelease(t *testing.T) {
	var pressed []highlight.Button
	c := NewController(highlight.New(start), nil, Hooks{
		Pressed: func(b highlight.Button) { pressed = append(pressed, b) },
	})

	c.Dispatch(Press{Button: highlight.ButtonPrimary})
	c.Dispatch(Tick{Now: start.Add(100 * time.Millisecond)})

	got := c.Highlight().Channel(highlight.ButtonPrimary).Amount
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("amount after 100ms at speed 5 = %v, want 0.5", got)
	}

	c.Dispatch(Release{Button: highlight.ButtonPrimary})
	c.Dispatch(Tick{Now: start.Add(300 * time.Millisecond)})
	if got := c.Highlight().Channel(highlight.ButtonPrimary).Amount; got != 0 {
		t.Errorf("amount after release = %v, want 0", got)
	}

	if len(pressed) != 1 || pressed[0] != highlight.ButtonPrimary {
		t.Errorf("Pressed hook calls = %v, want [primary]", pressed)
	}
}

func TestDispatchMotionMovesRender(t *testing.T) {
	h := highlight.New(start)
	h.Shape = highlight.Circle
	h.GlowSize = 0
	c := NewController(h, nil, Hooks{})

	c.Dispatch(Motion{X: 12, Y: 34})
	if x, y := c.Cursor(); x != 12 || y != 34 {
		t.Fatalf("Cursor() = %v, %v; want 12, 34", x, y)
	}

	canvas := &countingCanvas{}
	c.Render(canvas)
	if canvas.strokes != 2 {
		t.Errorf("strokes = %d, want 2", canvas.strokes)
	}
	for _, x := range canvas.arcs {
		if x != 12 {
			t.Errorf("arc centered at x=%v, want 12", x)
		}
	}
}

func TestDispatchChangePersists(t *testing.T) {
	saver := &memorySaver{}
	var results []error
	c := NewController(highlight.New(start), saver, Hooks{
		Saved: func(err error) { results = append(results, err) },
	})

	c.Dispatch(Change{Label: "size", Edit: func(h *highlight.Highlight) { h.Size = 80 }})
	c.Dispatch(Change{Label: "shape", Edit: func(h *highlight.Highlight) { h.Shape = highlight.Circle }})

	if len(saver.saved) != 2 {
		t.Fatalf("saves = %d, want one per change", len(saver.saved))
	}
	last := saver.saved[1]
	if last.Size != 80 || last.Shape != "circle" {
		t.Errorf("last saved record = %+v", last)
	}
	if len(results) != 2 || results[0] != nil || results[1] != nil {
		t.Errorf("Saved hook results = %v", results)
	}
}

func TestDispatchChangeSaveFailureKeepsValue(t *testing.T) {
	saver := &memorySaver{err: errors.New("disk full")}
	var got error
	c := NewController(highlight.New(start), saver, Hooks{Saved: func(err error) { got = err }})

	c.Dispatch(Change{Label: "glow", Edit: func(h *highlight.Highlight) { h.GlowSize = 20 }})

	if c.Highlight().GlowSize != 20 {
		t.Errorf("GlowSize = %v, want 20", c.Highlight().GlowSize)
	}
	if got == nil {
		t.Error("Saved hook did not receive the save error")
	}
}

func TestQueueDrain(t *testing.T) {
	q := NewQueue(2)
	c := NewController(highlight.New(start), nil, Hooks{})

	if !q.Post(Motion{X: 1, Y: 1}) || !q.Post(Motion{X: 2, Y: 3}) {
		t.Fatal("Post() rejected an event with room in the queue")
	}
	if q.Post(Motion{X: 9, Y: 9}) {
		t.Error("Post() accepted an event into a full queue")
	}

	if n := q.Drain(c); n != 2 {
		t.Errorf("Drain() = %d, want 2", n)
	}
	if x, y := c.Cursor(); x != 2 || y != 3 {
		t.Errorf("Cursor() = %v, %v; want the last motion", x, y)
	}
	if n := q.Drain(c); n != 0 {
		t.Errorf("second Drain() = %d, want 0", n)
	}
}
