package config

import "time"

const (
	AppID      = "com.renchon.cursorglow"
	AppName    = "CursorGlow"
	AppVersion = "0.0.1"
	AppWebsite = "https://github.com/ren-chon/cursorglow"

	WindowWidth  = 1280
	WindowHeight = 720

	// Update runs at this rate; the press animation uses wall-clock deltas,
	// so this only bounds how smooth it looks.
	TicksPerSecond = 60

	SettingsDir  = "cursorglow"
	SettingsFile = "settings.json"

	// Toast
	ToastDuration = time.Second

	// Events coming from dialogs and global hooks
	EventQueueSize = 256

	// Welcome text
	WelcomeTitle = "Welcome to CursorGlow!"
	WelcomeHint  = "Press Ctrl+P to open settings"

	// Click feedback tone
	ClickSampleRate = 44100
	ClickFrequency  = 880.0
	ClickDuration   = 30 * time.Millisecond
	ClickVolume     = 0.25
)
