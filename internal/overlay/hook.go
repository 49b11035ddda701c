package overlay

import (
	"log"
	"time"

	"github.com/go-vgo/robotgo"
	hook "github.com/robotn/gohook"

	"github.com/iburimskiy/cursorglow/internal/app"
	"github.com/iburimskiy/cursorglow/internal/highlight"
)

// globalInput feeds desktop-wide input to a mouse-passthrough overlay that
// never receives pointer or keyboard events itself. Button and key events
// come from gohook on its own goroutine; the cursor is polled with robotgo
// on the game goroutine.
type globalInput struct {
	lastX, lastY int
	hasMoved     bool
	done         chan bool
}

func startGlobalInput(queue app.Queue, commands chan<- command) *globalInput {
	post := func(ev app.Event) {
		if !queue.Post(ev) {
			log.Printf("[Hook] Event queue full, dropping %T", ev)
		}
	}
	send := func(cmd command) {
		select {
		case commands <- cmd:
		default:
		}
	}

	// gohook reports libuiohook's MOUSE_PRESSED as MouseHold and
	// MOUSE_RELEASED as MouseDown.
	hook.Register(hook.MouseHold, []string{}, func(e hook.Event) {
		if b, ok := hookButton(e.Button); ok {
			post(app.Press{Button: b})
		}
	})
	hook.Register(hook.MouseDown, []string{}, func(e hook.Event) {
		if b, ok := hookButton(e.Button); ok {
			post(app.Release{Button: b})
		}
	})
	hook.Register(hook.KeyDown, []string{"p", "ctrl"}, func(hook.Event) {
		send(cmdPreferences)
	})
	hook.Register(hook.KeyDown, []string{"q", "ctrl"}, func(hook.Event) {
		send(cmdQuit)
	})

	s := hook.Start()
	log.Printf("[Hook] Global input started")
	return &globalInput{done: hook.Process(s)}
}

func hookButton(button uint16) (highlight.Button, bool) {
	switch button {
	case hook.MouseMap["left"]:
		return highlight.ButtonPrimary, true
	case hook.MouseMap["right"]:
		return highlight.ButtonSecondary, true
	}
	return highlight.ButtonNone, false
}

// pollCursor reads the global cursor and reports it in window coordinates
// when it moved since the previous tick.
func (g *globalInput) pollCursor(winX, winY int, scale float64) (x, y float64, moved bool) {
	gx, gy := robotgo.Location()
	if g.hasMoved && gx == g.lastX && gy == g.lastY {
		return 0, 0, false
	}
	g.lastX, g.lastY, g.hasMoved = gx, gy, true
	x, y = screenToWindow(gx, gy, winX, winY, scale)
	return x, y, true
}

func (g *globalInput) stop() {
	hook.End()
	select {
	case <-g.done:
	case <-time.After(time.Second):
	}
	log.Printf("[Hook] Global input stopped")
}
