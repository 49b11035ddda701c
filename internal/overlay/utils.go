package overlay

import (
	"os"
	"runtime"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// screenToWindow converts a global cursor position in physical pixels into
// the window's device-independent coordinates.
func screenToWindow(gx, gy, winX, winY int, scale float64) (float64, float64) {
	if scale <= 0 {
		scale = 1
	}
	return float64(gx)/scale - float64(winX), float64(gy)/scale - float64(winY)
}

// DisplayProtocol names the session's display server on Linux.
type DisplayProtocol string

const (
	X11     DisplayProtocol = "x11"
	Wayland DisplayProtocol = "wayland"
)

// DetectProtocol reports Wayland when WAYLAND_DISPLAY is set and X11 otherwise.
func DetectProtocol() DisplayProtocol {
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return Wayland
	}
	return X11
}

// GlobalInputSupported reports whether desktop-wide hooks can see the
// pointer. Wayland compositors do not hand global input to clients.
func GlobalInputSupported(p DisplayProtocol) bool {
	return runtime.GOOS != "linux" || p != Wayland
}
