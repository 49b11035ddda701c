package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/cursorglow/internal/config"
	"github.com/iburimskiy/cursorglow/internal/highlight"
	"github.com/iburimskiy/cursorglow/internal/overlay"
	"github.com/iburimskiy/cursorglow/internal/presets"
	"github.com/iburimskiy/cursorglow/internal/settings"
)

func main() {
	overlayMode := flag.Bool("overlay", false, "draw on a transparent click-through window covering the monitor")
	configPath := flag.String("config", "", "settings file (default <user config dir>/cursorglow/settings.json)")
	clickSound := flag.Bool("click-sound", false, "play a short tone on every button press")
	verbose := flag.Bool("verbose", true, "write log output to stderr")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	path := *configPath
	if path == "" {
		var err error
		path, err = settings.DefaultPath()
		if err != nil {
			log.Printf("[Settings] Warning: %v (using %s)", err, config.SettingsFile)
			path = config.SettingsFile
		}
	}
	store := settings.NewStore(path)

	record, err := store.Load()
	if err != nil {
		log.Printf("[Settings] Warning: %v (using defaults)", err)
	}
	h := highlight.New(time.Now())
	record.Apply(h)
	log.Printf("[Settings] Loaded from %s", store.Path())

	list, err := presets.Builtin()
	if err != nil {
		log.Printf("[Presets] Warning: %v", err)
	}

	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetWindowTitle(config.AppName)
	if *overlayMode {
		setupOverlayWindow()
	} else {
		ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := overlay.NewGame(h, store, overlay.Options{
		Overlay:    *overlayMode,
		ClickSound: *clickSound,
		Presets:    list,
	})
	defer g.Close()

	err = ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{
		ScreenTransparent: *overlayMode,
	})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("[Overlay] %v", err)
		g.Close()
		log.Fatal(err)
	}
}

func setupOverlayWindow() {
	p := overlay.DetectProtocol()
	log.Printf("[Overlay] Display protocol: %s", p)

	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetWindowSize(w, h)
	// Without global input the overlay has to see the pointer itself.
	if overlay.GlobalInputSupported(p) {
		ebiten.SetWindowMousePassthrough(true)
	}
}
