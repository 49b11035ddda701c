package overlay

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCanvasTransformOrder(t *testing.T) {
	c := NewCanvas()
	c.Translate(10, 0)
	c.Scale(2, 2)

	// The most recent call applies first, so the point is scaled then moved.
	x, y := c.state.geoM.Apply(1, 1)
	if !near(x, 12) || !near(y, 2) {
		t.Errorf("Apply(1, 1) = (%v, %v), want (12, 2)", x, y)
	}
}

func TestCanvasPivotedRotate(t *testing.T) {
	c := NewCanvas()
	c.Translate(50, 50)
	c.Rotate(math.Pi / 2)
	c.Translate(-50, -50)

	x, y := c.state.geoM.Apply(60, 50)
	if !near(x, 50) || !near(y, 60) {
		t.Errorf("Apply(60, 50) = (%v, %v), want (50, 60)", x, y)
	}
	x, y = c.state.geoM.Apply(50, 50)
	if !near(x, 50) || !near(y, 50) {
		t.Errorf("pivot moved to (%v, %v)", x, y)
	}
}

func TestCanvasSaveRestore(t *testing.T) {
	c := NewCanvas()
	c.SetLineWidth(3)
	c.Save()
	c.Translate(5, 5)
	c.SetLineWidth(7)
	c.Restore()

	if x, y := c.state.geoM.Apply(0, 0); x != 0 || y != 0 {
		t.Errorf("transform not restored: (%v, %v)", x, y)
	}
	if c.state.width != 3 {
		t.Errorf("width = %v, want 3", c.state.width)
	}

	// Unbalanced restore is ignored.
	c.Restore()
	if c.state.width != 3 {
		t.Errorf("width = %v after extra Restore", c.state.width)
	}
}

func TestCanvasArcExtent(t *testing.T) {
	tests := []struct {
		name string
		arcs [][5]float64
		want bool
	}{
		{"full circle", [][5]float64{{0, 0, 5, 0, 2 * math.Pi}}, true},
		{"zero radius point", [][5]float64{{0, 0, 0, 0, 2 * math.Pi}}, false},
		{"zero radius square", [][5]float64{
			{10, 0, 0, -math.Pi / 2, 0},
			{10, 10, 0, 0, math.Pi / 2},
			{0, 10, 0, math.Pi / 2, math.Pi},
			{0, 0, 0, math.Pi, 3 * math.Pi / 2},
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas()
			c.resetPath()
			c.NewSubPath()
			for _, a := range tt.arcs {
				c.Arc(a[0], a[1], a[2], a[3], a[4])
			}
			if c.hasExtent != tt.want {
				t.Errorf("hasExtent = %v, want %v", c.hasExtent, tt.want)
			}
		})
	}
}
