package overlay

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/cursorglow/internal/app"
	"github.com/iburimskiy/cursorglow/internal/highlight"
)

type command int

const (
	cmdNone command = iota
	cmdPreferences
	cmdQuit
)

var mouseButtons = map[ebiten.MouseButton]highlight.Button{
	ebiten.MouseButtonLeft:  highlight.ButtonPrimary,
	ebiten.MouseButtonRight: highlight.ButtonSecondary,
}

// localInput polls the window's own pointer and keyboard once per tick.
type localInput struct {
	prevKey  map[ebiten.Key]bool
	lastX    int
	lastY    int
	hasMoved bool
}

func newLocalInput() *localInput {
	return &localInput{
		prevKey: map[ebiten.Key]bool{},
	}
}

// pollPointer dispatches the window's pointer motion and button edges.
func (in *localInput) pollPointer(ctrl *app.Controller) {
	x, y := ebiten.CursorPosition()
	if !in.hasMoved || x != in.lastX || y != in.lastY {
		in.lastX, in.lastY, in.hasMoved = x, y, true
		ctrl.Dispatch(app.Motion{X: float64(x), Y: float64(y)})
	}

	for mb, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb) {
			ctrl.Dispatch(app.Press{Button: b})
		}
		if inpututil.IsMouseButtonJustReleased(mb) {
			ctrl.Dispatch(app.Release{Button: b})
		}
	}
}

// pollKeys returns the keyboard command issued this tick, if any.
func (in *localInput) pollKeys() command {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !in.prevKey[k]
		in.prevKey[k] = pressed
		return jp
	}

	// Poll every shortcut key each tick so the edge state stays fresh.
	held := ebiten.IsKeyPressed(ebiten.KeyControl)
	p := justPressed(ebiten.KeyP)
	q := justPressed(ebiten.KeyQ)
	esc := justPressed(ebiten.KeyEscape)
	switch {
	case held && p:
		return cmdPreferences
	case (held && q) || esc:
		return cmdQuit
	}
	return cmdNone
}
