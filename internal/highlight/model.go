// Package highlight holds the cursor highlight model, its press animation
// and the renderer that turns it into stroke operations on a Canvas.
package highlight

import (
	"fmt"
	"time"
)

// Color is a straight-alpha RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// ShapeKind selects which outline the highlight is drawn with.
type ShapeKind int

const (
	RoundedSquare ShapeKind = iota
	Circle
)

func (s ShapeKind) String() string {
	switch s {
	case Circle:
		return "circle"
	case RoundedSquare:
		return "rounded_square"
	}
	return fmt.Sprintf("ShapeKind(%d)", int(s))
}

// ParseShapeKind maps the persisted shape name back to a ShapeKind.
func ParseShapeKind(name string) (ShapeKind, error) {
	switch name {
	case "circle":
		return Circle, nil
	case "rounded_square":
		return RoundedSquare, nil
	}
	return RoundedSquare, fmt.Errorf("unknown shape %q", name)
}

// Outline returns the path generator for the shape.
func (s ShapeKind) Outline() Outline {
	if s == Circle {
		return circle{}
	}
	return roundedSquare{}
}

// Highlight is the single animated shape that follows the cursor.
type Highlight struct {
	Size             float64
	Color            Color
	InnerOpacity     float64
	CornerRadius     float64
	Rotation         float64 // degrees
	BorderWidth      float64
	InnerPadding     float64
	GlowSize         float64
	GlowOpacity      float64
	Shape            ShapeKind
	InnerStrokeWidth float64
	AnimationEnabled bool
	AnimationSpeed   float64 // amount per second

	press      [buttonCount]Channel
	lastUpdate time.Time
}

// New returns a highlight with the default look. now seeds the animation clock.
func New(now time.Time) *Highlight {
	return &Highlight{
		Size:             50,
		Color:            Color{R: 1, G: 1, B: 1, A: 0.8},
		InnerOpacity:     0.5,
		CornerRadius:     15,
		Rotation:         0,
		BorderWidth:      4,
		InnerPadding:     4,
		GlowSize:         10,
		GlowOpacity:      0.3,
		Shape:            RoundedSquare,
		InnerStrokeWidth: 2,
		AnimationEnabled: true,
		AnimationSpeed:   5,
		lastUpdate:       now,
	}
}

// Inset is the distance between the outer and the inner outline.
func (h *Highlight) Inset() float64 {
	return h.BorderWidth + h.InnerPadding
}

// InnerSize is the side (or diameter) of the inner outline, never negative.
func (h *Highlight) InnerSize() float64 {
	return nonNegative(h.Size - 2*h.Inset())
}

// InnerRadius is the corner radius of the inner outline, never negative.
func (h *Highlight) InnerRadius() float64 {
	return nonNegative(h.CornerRadius - h.Inset())
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
