// Package prefs is the preferences surface: a list of the adjustable
// settings, each edited through a native dialog and sent back as a change.
package prefs

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/cursorglow/internal/app"
	"github.com/iburimskiy/cursorglow/internal/config"
	"github.com/iburimskiy/cursorglow/internal/highlight"
	"github.com/iburimskiy/cursorglow/internal/presets"
	"github.com/iburimskiy/cursorglow/internal/settings"
)

// Dialogs are the native dialogs the preferences surface is built from.
// Every method returns zenity.ErrCanceled when the user dismisses the dialog.
type Dialogs interface {
	Choose(title string, items []string) (string, error)
	Entry(title, text, value string) (string, error)
	Color(title string, current color.Color) (color.Color, error)
	Info(title, text string) error
}

const (
	itemPresets = "Presets…"
	itemAbout   = "About " + config.AppName
	itemClose   = "Close"

	shapeRoundedSquare = "Rounded Square"
	shapeCircle        = "Circle"
	toggleOn           = "On"
	toggleOff          = "Off"
)

type Preferences struct {
	dialogs Dialogs
	presets []presets.Preset
	send    func(app.Change)
}

// New builds the preferences surface. send receives every accepted change.
func New(dialogs Dialogs, list []presets.Preset, send func(app.Change)) *Preferences {
	return &Preferences{
		dialogs: dialogs,
		presets: list,
		send:    send,
	}
}

// Run shows the settings list until the user closes it. current is the
// appearance at the time the surface was opened; Run keeps its own copy
// up to date as changes are sent.
func (p *Preferences) Run(current settings.Record) error {
	for {
		items := p.items(current)
		choice, err := p.dialogs.Choose("Preferences", items)
		if errors.Is(err, zenity.ErrCanceled) || choice == itemClose {
			return nil
		}
		if err != nil {
			return fmt.Errorf("preferences list: %w", err)
		}

		next, err := p.handle(choice, current)
		if errors.Is(err, zenity.ErrCanceled) {
			continue
		}
		if err != nil {
			log.Printf("[Prefs] %v", err)
			if infoErr := p.dialogs.Info("Preferences", err.Error()); infoErr != nil && !errors.Is(infoErr, zenity.ErrCanceled) {
				return infoErr
			}
			continue
		}
		current = next
	}
}

func (p *Preferences) items(r settings.Record) []string {
	items := make([]string, 0, len(params)+3)
	for _, prm := range params {
		items = append(items, itemLabel(prm, r))
	}
	return append(items, itemPresets, itemAbout, itemClose)
}

func itemLabel(prm param, r settings.Record) string {
	var value string
	switch prm.kind {
	case kindNumber:
		value = formatNumber(prm.get(r))
	case kindColor:
		value = fmt.Sprintf("rgba(%s, %s, %s, %s)",
			formatNumber(r.Color[0]), formatNumber(r.Color[1]), formatNumber(r.Color[2]), formatNumber(r.Color[3]))
	case kindShape:
		value = shapeCircle
		if r.Shape != highlight.Circle.String() {
			value = shapeRoundedSquare
		}
	case kindToggle:
		value = toggleOff
		if r.AnimationEnabled {
			value = toggleOn
		}
	}
	label := prm.label + ": " + value
	if !prm.enabled(r) {
		label += " (rounded square only)"
	}
	return label
}

func (p *Preferences) handle(choice string, current settings.Record) (settings.Record, error) {
	switch choice {
	case itemPresets:
		return p.choosePreset(current)
	case itemAbout:
		text := fmt.Sprintf("%s %s\n%s", config.AppName, config.AppVersion, config.AppWebsite)
		return current, p.dialogs.Info("About", text)
	}

	for _, prm := range params {
		if !strings.HasPrefix(choice, prm.label+": ") {
			continue
		}
		if !prm.enabled(current) {
			return current, p.dialogs.Info(prm.label, prm.label+" only applies to the rounded square shape.")
		}
		edit, err := p.ask(prm, current)
		if err != nil {
			return current, err
		}
		return p.apply(prm.label, edit, current), nil
	}
	return current, fmt.Errorf("unknown preferences item %q", choice)
}

// ask runs the dialog for one param and returns the edit it produced.
func (p *Preferences) ask(prm param, r settings.Record) (func(h *highlight.Highlight), error) {
	switch prm.kind {
	case kindColor:
		cur := color.NRGBA{
			R: uint8(math.Round(r.Color[0] * 255)),
			G: uint8(math.Round(r.Color[1] * 255)),
			B: uint8(math.Round(r.Color[2] * 255)),
			A: uint8(math.Round(r.Color[3] * 255)),
		}
		picked, err := p.dialogs.Color(prm.label, cur)
		if err != nil {
			return nil, err
		}
		c := toColor(picked)
		return func(h *highlight.Highlight) { h.Color = c }, nil

	case kindShape:
		choice, err := p.dialogs.Choose(prm.label, []string{shapeRoundedSquare, shapeCircle})
		if err != nil {
			return nil, err
		}
		shape := highlight.RoundedSquare
		if choice == shapeCircle {
			shape = highlight.Circle
		}
		return func(h *highlight.Highlight) { h.Shape = shape }, nil

	case kindToggle:
		choice, err := p.dialogs.Choose(prm.label, []string{toggleOn, toggleOff})
		if err != nil {
			return nil, err
		}
		on := choice == toggleOn
		return func(h *highlight.Highlight) { h.AnimationEnabled = on }, nil
	}

	text := fmt.Sprintf("%s (%s to %s)", prm.label, formatNumber(prm.min), formatNumber(prm.max))
	answer, err := p.dialogs.Entry(prm.label, text, formatNumber(prm.get(r)))
	if err != nil {
		return nil, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(answer), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%s: %q is not a number", prm.label, answer)
	}
	v = prm.clamp(v)
	return func(h *highlight.Highlight) { prm.set(h, v) }, nil
}

func (p *Preferences) choosePreset(current settings.Record) (settings.Record, error) {
	if len(p.presets) == 0 {
		return current, p.dialogs.Info("Presets", "No presets available.")
	}
	names := make([]string, 0, len(p.presets))
	for _, preset := range p.presets {
		names = append(names, preset.Name)
	}
	name, err := p.dialogs.Choose("Presets", names)
	if err != nil {
		return current, err
	}
	preset, ok := presets.Find(p.presets, name)
	if !ok {
		return current, fmt.Errorf("unknown preset %q", name)
	}
	rec, err := preset.Apply(current)
	if err != nil {
		return current, err
	}
	return p.apply("preset "+preset.Name, func(h *highlight.Highlight) { rec.Apply(h) }, current), nil
}

// apply sends the edit and returns current with the same edit applied.
func (p *Preferences) apply(label string, edit func(h *highlight.Highlight), current settings.Record) settings.Record {
	p.send(app.Change{Label: label, Edit: edit})

	h := highlight.New(time.Time{})
	current.Apply(h)
	edit(h)
	return settings.Serialize(h)
}

func toColor(c color.Color) highlight.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return highlight.Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
