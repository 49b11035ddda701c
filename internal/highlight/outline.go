package highlight

import "math"

// Canvas is the small subset of a 2D vector context the renderer needs.
// Transformations apply to the user space of subsequent operations, so the
// last one issued is the first one applied to a point.
type Canvas interface {
	Save()
	Restore()
	Translate(tx, ty float64)
	Scale(sx, sy float64)
	Rotate(radians float64)

	NewSubPath()
	Arc(cx, cy, radius, startAngle, endAngle float64)
	ClosePath()

	SetColor(c Color)
	SetLineWidth(w float64)
	Stroke()
}

// Outline generates the closed path of a shape and applies its press deformation.
type Outline interface {
	// Trace adds the outline of the given side length, centered on (cx, cy).
	Trace(c Canvas, cx, cy, side, radius float64)
	// Deform transforms the canvas for a press of the given button and amount.
	Deform(c Canvas, cx, cy float64, b Button, amount float64)
}

const (
	squeezePerPress = 0.2
	shiftPerPress   = 10.0
)

type circle struct{}

func (circle) Trace(c Canvas, cx, cy, side, _ float64) {
	c.NewSubPath()
	c.Arc(cx, cy, nonNegative(side)/2, 0, 2*math.Pi)
	c.ClosePath()
}

// Deform squeezes the circle horizontally around the cursor.
func (circle) Deform(c Canvas, cx, cy float64, _ Button, amount float64) {
	squeeze := 1 - amount*squeezePerPress
	c.Translate(cx, cy)
	c.Scale(squeeze, 1)
	c.Translate(-cx, -cy)
}

type roundedSquare struct{}

func (roundedSquare) Trace(c Canvas, cx, cy, side, radius float64) {
	side = nonNegative(side)
	radius = min(nonNegative(radius), side/2)
	x := cx - side/2
	y := cy - side/2

	c.NewSubPath()
	c.Arc(x+side-radius, y+radius, radius, -math.Pi/2, 0)
	c.Arc(x+side-radius, y+side-radius, radius, 0, math.Pi/2)
	c.Arc(x+radius, y+side-radius, radius, math.Pi/2, math.Pi)
	c.Arc(x+radius, y+radius, radius, math.Pi, 3*math.Pi/2)
	c.ClosePath()
}

// Deform shifts the square right for the primary button and left for the secondary one.
func (roundedSquare) Deform(c Canvas, _, _ float64, b Button, amount float64) {
	var offset float64
	switch b {
	case ButtonPrimary:
		offset = amount * shiftPerPress
	case ButtonSecondary:
		offset = -amount * shiftPerPress
	}
	c.Translate(offset, 0)
}
