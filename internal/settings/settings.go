// Package settings converts the highlight's appearance to and from the
// persisted settings record and keeps that record in a JSON file.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/iburimskiy/cursorglow/internal/highlight"
)

// Record is the persisted form of the highlight's appearance. Field order is
// the order keys are written in.
type Record struct {
	Size             float64    `json:"size" yaml:"size"`
	Color            [4]float64 `json:"color" yaml:"color"`
	CornerRadius     float64    `json:"corner_radius" yaml:"corner_radius"`
	Rotation         float64    `json:"rotation" yaml:"rotation"`
	Shape            string     `json:"shape" yaml:"shape"`
	BorderWidth      float64    `json:"border_width" yaml:"border_width"`
	InnerStrokeWidth float64    `json:"inner_stroke_width" yaml:"inner_stroke_width"`
	AnimationEnabled bool       `json:"animation_enabled" yaml:"animation_enabled"`
	AnimationSpeed   float64    `json:"animation_speed" yaml:"animation_speed"`
	InnerOpacity     float64    `json:"inner_opacity" yaml:"inner_opacity"`
	GlowSize         float64    `json:"glow_size" yaml:"glow_size"`
	GlowOpacity      float64    `json:"glow_opacity" yaml:"glow_opacity"`
	InnerPadding     float64    `json:"inner_padding" yaml:"inner_padding"`
}

// Defaults is the record of a freshly constructed highlight.
func Defaults() Record {
	return Serialize(highlight.New(time.Time{}))
}

// Serialize captures every persisted field of h.
func Serialize(h *highlight.Highlight) Record {
	return Record{
		Size:             h.Size,
		Color:            [4]float64{h.Color.R, h.Color.G, h.Color.B, h.Color.A},
		CornerRadius:     h.CornerRadius,
		Rotation:         h.Rotation,
		Shape:            h.Shape.String(),
		BorderWidth:      h.BorderWidth,
		InnerStrokeWidth: h.InnerStrokeWidth,
		AnimationEnabled: h.AnimationEnabled,
		AnimationSpeed:   h.AnimationSpeed,
		InnerOpacity:     h.InnerOpacity,
		GlowSize:         h.GlowSize,
		GlowOpacity:      h.GlowOpacity,
		InnerPadding:     h.InnerPadding,
	}
}

// Apply copies the record into h, shape first. An unparsable shape leaves
// h.Shape untouched; Decode never produces one.
func (r Record) Apply(h *highlight.Highlight) {
	if shape, err := highlight.ParseShapeKind(r.Shape); err == nil {
		h.Shape = shape
	}
	h.Size = r.Size
	h.Color = highlight.Color{R: r.Color[0], G: r.Color[1], B: r.Color[2], A: r.Color[3]}
	h.CornerRadius = r.CornerRadius
	h.Rotation = r.Rotation
	h.BorderWidth = r.BorderWidth
	h.InnerStrokeWidth = r.InnerStrokeWidth
	h.AnimationEnabled = r.AnimationEnabled
	h.AnimationSpeed = r.AnimationSpeed
	h.InnerOpacity = r.InnerOpacity
	h.GlowSize = r.GlowSize
	h.GlowOpacity = r.GlowOpacity
	h.InnerPadding = r.InnerPadding
}

type field struct {
	key   string
	ptr   func(r *Record) any
	check func(r Record) error
}

// fields lists every key in decode order. Shape comes first because the
// corner radius control depends on it.
var fields = []field{
	{"shape", func(r *Record) any { return &r.Shape }, func(r Record) error {
		_, err := highlight.ParseShapeKind(r.Shape)
		return err
	}},
	{"size", func(r *Record) any { return &r.Size }, func(r Record) error { return positive(r.Size) }},
	{"color", func(r *Record) any { return &r.Color }, func(r Record) error {
		for _, c := range r.Color {
			if err := unit(c); err != nil {
				return err
			}
		}
		return nil
	}},
	{"corner_radius", func(r *Record) any { return &r.CornerRadius }, func(r Record) error { return nonNegative(r.CornerRadius) }},
	{"rotation", func(r *Record) any { return &r.Rotation }, func(r Record) error { return finite(r.Rotation) }},
	{"border_width", func(r *Record) any { return &r.BorderWidth }, func(r Record) error { return positive(r.BorderWidth) }},
	{"inner_stroke_width", func(r *Record) any { return &r.InnerStrokeWidth }, func(r Record) error { return nonNegative(r.InnerStrokeWidth) }},
	{"animation_enabled", func(r *Record) any { return &r.AnimationEnabled }, func(Record) error { return nil }},
	{"animation_speed", func(r *Record) any { return &r.AnimationSpeed }, func(r Record) error { return positive(r.AnimationSpeed) }},
	{"inner_opacity", func(r *Record) any { return &r.InnerOpacity }, func(r Record) error { return unit(r.InnerOpacity) }},
	{"glow_size", func(r *Record) any { return &r.GlowSize }, func(r Record) error { return nonNegative(r.GlowSize) }},
	{"glow_opacity", func(r *Record) any { return &r.GlowOpacity }, func(r Record) error { return unit(r.GlowOpacity) }},
	{"inner_padding", func(r *Record) any { return &r.InnerPadding }, func(r Record) error { return nonNegative(r.InnerPadding) }},
}

// Decode reads a settings document on top of defaults. Keys that are missing
// keep their default silently; keys that fail to parse or hold an out of range
// value keep their default and are reported in the returned error, which joins
// one error per rejected key. The returned record is always usable.
func Decode(data []byte, defaults Record) (Record, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return defaults, fmt.Errorf("settings is not a JSON object: %w", err)
	}

	rec := defaults
	var errs []error
	for _, f := range fields {
		msg, ok := raw[f.key]
		if !ok {
			continue
		}
		next := rec
		if err := json.Unmarshal(msg, f.ptr(&next)); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.key, err))
			continue
		}
		if err := f.check(next); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.key, err))
			continue
		}
		rec = next
	}
	return rec, errors.Join(errs...)
}

// Validate reports every field of r that is outside its domain.
func (r Record) Validate() error {
	var errs []error
	for _, f := range fields {
		if err := f.check(r); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.key, err))
		}
	}
	return errors.Join(errs...)
}

// Encode renders r the way it is stored on disk.
func Encode(r Record) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	return append(data, '\n'), nil
}

func finite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%v is not a finite number", v)
	}
	return nil
}

func positive(v float64) error {
	if err := finite(v); err != nil {
		return err
	}
	if v <= 0 {
		return fmt.Errorf("%v must be greater than zero", v)
	}
	return nil
}

func nonNegative(v float64) error {
	if err := finite(v); err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("%v must not be negative", v)
	}
	return nil
}

func unit(v float64) error {
	if err := finite(v); err != nil {
		return err
	}
	if v < 0 || v > 1 {
		return fmt.Errorf("%v is outside [0, 1]", v)
	}
	return nil
}
