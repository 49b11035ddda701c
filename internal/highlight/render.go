package highlight

import "math"

// GlowRing is one stroke of the halo drawn outside the outer outline.
type GlowRing struct {
	Offset  float64 // how far the ring grows past the outer outline on each side
	Opacity float64
	Width   float64
}

// GlowRings lists the halo strokes from the outermost inward. Offsets step
// down from floor(GlowSize) by two; a zero glow size yields none.
func (h *Highlight) GlowRings() []GlowRing {
	if h.GlowSize <= 0 {
		return nil
	}
	var rings []GlowRing
	for i := math.Floor(h.GlowSize); i > 0; i -= 2 {
		rings = append(rings, GlowRing{
			Offset:  i,
			Opacity: h.GlowOpacity * (i / h.GlowSize),
			Width:   h.BorderWidth + i*2,
		})
	}
	return rings
}

// Render draws the highlight centered on the cursor at (x, y).
func Render(c Canvas, h *Highlight, x, y float64) {
	outline := h.Shape.Outline()

	c.Save()
	defer c.Restore()

	if h.AnimationEnabled {
		if b, amount := h.ActivePress(); b != ButtonNone {
			outline.Deform(c, x, y, b, amount)
		}
	}

	c.Translate(x, y)
	c.Rotate(h.Rotation * math.Pi / 180)
	c.Translate(-x, -y)

	for _, ring := range h.GlowRings() {
		c.SetColor(h.Color.WithAlpha(ring.Opacity))
		c.SetLineWidth(ring.Width)
		outline.Trace(c, x, y, h.Size+ring.Offset*2, h.CornerRadius+ring.Offset)
		c.Stroke()
	}

	c.SetColor(h.Color)
	c.SetLineWidth(h.BorderWidth)
	outline.Trace(c, x, y, h.Size, h.CornerRadius)
	c.Stroke()

	c.SetColor(h.Color.WithAlpha(h.InnerOpacity))
	c.SetLineWidth(h.InnerStrokeWidth)
	outline.Trace(c, x, y, h.InnerSize(), h.InnerRadius())
	c.Stroke()
}
