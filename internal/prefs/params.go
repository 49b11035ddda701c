package prefs

import (
	"github.com/iburimskiy/cursorglow/internal/highlight"
	"github.com/iburimskiy/cursorglow/internal/settings"
)

type kind int

const (
	kindNumber kind = iota
	kindColor
	kindShape
	kindToggle
)

// param is one adjustable setting of the preferences surface.
type param struct {
	label string
	kind  kind

	// number params
	min, max, step float64
	get            func(r settings.Record) float64
	set            func(h *highlight.Highlight, v float64)

	// only meaningful for the rounded square
	squareOnly bool
}

var params = []param{
	{label: "Size", min: 10, max: 100, step: 1,
		get: func(r settings.Record) float64 { return r.Size },
		set: func(h *highlight.Highlight, v float64) { h.Size = v }},
	{label: "Corner Radius", min: 0, max: 50, step: 1, squareOnly: true,
		get: func(r settings.Record) float64 { return r.CornerRadius },
		set: func(h *highlight.Highlight, v float64) { h.CornerRadius = v }},
	{label: "Rotation", min: 0, max: 360, step: 1,
		get: func(r settings.Record) float64 { return r.Rotation },
		set: func(h *highlight.Highlight, v float64) { h.Rotation = v }},
	{label: "Color", kind: kindColor},
	{label: "Inner Shape Opacity", min: 0.1, max: 1, step: 0.1,
		get: func(r settings.Record) float64 { return r.InnerOpacity },
		set: func(h *highlight.Highlight, v float64) { h.InnerOpacity = v }},
	{label: "Glow Size", min: 0, max: 30, step: 1,
		get: func(r settings.Record) float64 { return r.GlowSize },
		set: func(h *highlight.Highlight, v float64) { h.GlowSize = v }},
	{label: "Glow Opacity", min: 0, max: 1, step: 0.05,
		get: func(r settings.Record) float64 { return r.GlowOpacity },
		set: func(h *highlight.Highlight, v float64) { h.GlowOpacity = v }},
	{label: "Shape", kind: kindShape},
	{label: "Outer Stroke Width", min: 1, max: 20, step: 1,
		get: func(r settings.Record) float64 { return r.BorderWidth },
		set: func(h *highlight.Highlight, v float64) { h.BorderWidth = v }},
	{label: "Inner Stroke Width", min: 0, max: 20, step: 1,
		get: func(r settings.Record) float64 { return r.InnerStrokeWidth },
		set: func(h *highlight.Highlight, v float64) { h.InnerStrokeWidth = v }},
	{label: "Bend Animation", kind: kindToggle},
	{label: "Animation Speed", min: 0.5, max: 20, step: 0.5,
		get: func(r settings.Record) float64 { return r.AnimationSpeed },
		set: func(h *highlight.Highlight, v float64) { h.AnimationSpeed = v }},
}

// enabled reports whether the param can be changed with the current shape.
func (p param) enabled(r settings.Record) bool {
	return !p.squareOnly || r.Shape != highlight.Circle.String()
}

func (p param) clamp(v float64) float64 {
	return min(max(v, p.min), p.max)
}
