package overlay

import (
	"image/color"
	"log"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/cursorglow/internal/app"
	"github.com/iburimskiy/cursorglow/internal/config"
	"github.com/iburimskiy/cursorglow/internal/highlight"
	"github.com/iburimskiy/cursorglow/internal/prefs"
	"github.com/iburimskiy/cursorglow/internal/presets"
)

// Options selects how the game window behaves.
type Options struct {
	// Overlay draws on a transparent, click-through, always-on-top window
	// that follows the desktop cursor instead of the window's own pointer.
	Overlay    bool
	ClickSound bool
	Presets    []presets.Preset
	Dialogs    prefs.Dialogs
}

type Game struct {
	ctrl     *app.Controller
	queue    app.Queue
	commands chan command

	canvas  *Canvas
	local   *localInput
	global  *globalInput
	clicker *clicker

	prefs     *prefs.Preferences
	prefsOpen atomic.Bool

	overlay bool

	// toast
	toastText  string
	toastUntil time.Time
}

func NewGame(h *highlight.Highlight, saver app.Saver, opts Options) *Game {
	g := &Game{
		queue:    app.NewQueue(config.EventQueueSize),
		commands: make(chan command, 4),
		canvas:   NewCanvas(),
		local:    newLocalInput(),
		overlay:  opts.Overlay,
	}

	hooks := app.Hooks{Saved: g.saved}
	if opts.ClickSound {
		c, err := newClicker()
		if err != nil {
			log.Printf("[Sound] Click sound disabled: %v", err)
		} else {
			g.clicker = c
			hooks.Pressed = c.pressed
		}
	}
	g.ctrl = app.NewController(h, saver, hooks)

	dialogs := opts.Dialogs
	if dialogs == nil {
		dialogs = prefs.Zenity{}
	}
	g.prefs = prefs.New(dialogs, opts.Presets, func(c app.Change) { g.queue.Send(c) })

	if opts.Overlay {
		if p := DetectProtocol(); GlobalInputSupported(p) {
			g.global = startGlobalInput(g.queue, g.commands)
		} else {
			log.Printf("[Overlay] Global input is unavailable on %s, following the window pointer only", p)
		}
	}
	return g
}

func (g *Game) Update() error {
	g.queue.Drain(g.ctrl)

	cmd := g.local.pollKeys()
	if g.global != nil {
		wx, wy := ebiten.WindowPosition()
		if x, y, moved := g.global.pollCursor(wx, wy, ebiten.Monitor().DeviceScaleFactor()); moved {
			g.ctrl.Dispatch(app.Motion{X: x, Y: y})
		}
		select {
		case c := <-g.commands:
			cmd = c
		default:
		}
	} else {
		g.local.pollPointer(g.ctrl)
	}

	switch cmd {
	case cmdPreferences:
		g.openPreferences()
	case cmdQuit:
		return ebiten.Termination
	}

	g.ctrl.Dispatch(app.Tick{Now: time.Now()})
	return nil
}

// openPreferences runs the dialogs on their own goroutine. Edits come back
// through the event queue, so the highlight is only touched here.
func (g *Game) openPreferences() {
	if !g.prefsOpen.CompareAndSwap(false, true) {
		return
	}
	current := g.ctrl.Snapshot()
	go func() {
		defer g.prefsOpen.Store(false)
		if err := g.prefs.Run(current); err != nil {
			log.Printf("[Prefs] %v", err)
		}
	}()
}

func (g *Game) saved(err error) {
	if err != nil {
		g.toastText = "Failed to save settings: " + err.Error()
	} else {
		g.toastText = "Settings saved"
	}
	g.toastUntil = time.Now().Add(config.ToastDuration)
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.overlay {
		screen.Clear()
	} else {
		screen.Fill(color.RGBA{R: 24, G: 26, B: 32, A: 255})
		g.drawWelcome(screen)
	}

	g.ctrl.Render(g.canvas.Begin(screen))

	if time.Now().Before(g.toastUntil) {
		g.drawToast(screen)
	}
}

func (g *Game) drawWelcome(screen *ebiten.Image) {
	b := screen.Bounds()
	cx, cy := b.Dx()/2, b.Dy()/2
	// Approximate debug font character width.
	ebitenutil.DebugPrintAt(screen, config.WelcomeTitle, cx-len(config.WelcomeTitle)*6/2, cy-16)
	ebitenutil.DebugPrintAt(screen, config.WelcomeHint, cx-len(config.WelcomeHint)*6/2, cy+4)
}

func (g *Game) drawToast(screen *ebiten.Image) {
	const pad = 8
	b := screen.Bounds()
	w := len(g.toastText)*6 + 2*pad
	h := 16 + 2*pad
	x := (b.Dx() - w) / 2
	y := b.Dy() - h - 24

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), color.RGBA{R: 40, G: 44, B: 56, A: 230}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, g.toastText, x+pad, y+pad)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Close releases the global hooks and the audio device.
func (g *Game) Close() {
	if g.global != nil {
		g.global.stop()
		g.global = nil
	}
	if g.clicker != nil {
		g.clicker.close()
		g.clicker = nil
	}
}
