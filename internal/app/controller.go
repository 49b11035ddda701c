// Package app owns the highlight and the cursor position and applies input,
// animation ticks and appearance changes to them, one event at a time.
package app

import (
	"log"

	"github.com/iburimskiy/cursorglow/internal/highlight"
	"github.com/iburimskiy/cursorglow/internal/settings"
)

// Saver persists a settings record.
type Saver interface {
	Save(r settings.Record) error
}

// Hooks are optional callbacks fired after the controller handled an event.
type Hooks struct {
	Saved   func(err error)
	Pressed func(b highlight.Button)
}

type Controller struct {
	highlight *highlight.Highlight
	cursorX   float64
	cursorY   float64
	saver     Saver
	hooks     Hooks
}

// NewController takes ownership of h. saver may be nil, in which case
// changes are kept in memory only.
func NewController(h *highlight.Highlight, saver Saver, hooks Hooks) *Controller {
	return &Controller{
		highlight: h,
		saver:     saver,
		hooks:     hooks,
	}
}

func (c *Controller) Dispatch(ev Event) {
	switch ev := ev.(type) {
	case Motion:
		c.cursorX, c.cursorY = ev.X, ev.Y
	case Press:
		c.highlight.Press(ev.Button)
		if c.hooks.Pressed != nil {
			c.hooks.Pressed(ev.Button)
		}
	case Release:
		c.highlight.Release(ev.Button)
	case Tick:
		c.highlight.Update(ev.Now)
	case Change:
		if ev.Edit == nil {
			return
		}
		ev.Edit(c.highlight)
		c.persist(ev.Label)
	}
}

func (c *Controller) persist(label string) {
	if c.saver == nil {
		return
	}
	err := c.saver.Save(settings.Serialize(c.highlight))
	if err != nil {
		log.Printf("[Settings] Failed to save after %s change: %v", label, err)
	}
	if c.hooks.Saved != nil {
		c.hooks.Saved(err)
	}
}

// Render draws the highlight at the last known cursor position.
func (c *Controller) Render(canvas highlight.Canvas) {
	highlight.Render(canvas, c.highlight, c.cursorX, c.cursorY)
}

func (c *Controller) Cursor() (x, y float64) {
	return c.cursorX, c.cursorY
}

// Snapshot returns a copy of the current appearance for readers on other goroutines.
func (c *Controller) Snapshot() settings.Record {
	return settings.Serialize(c.highlight)
}

func (c *Controller) Highlight() *highlight.Highlight {
	return c.highlight
}
