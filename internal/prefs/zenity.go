package prefs

import (
	"image/color"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/cursorglow/internal/config"
)

// Zenity shows the dialogs natively through zenity.
type Zenity struct{}

func (Zenity) Choose(title string, items []string) (string, error) {
	return zenity.List(title, items,
		zenity.Title(config.AppName+" - "+title),
		zenity.DisallowEmpty(),
		zenity.Height(520),
	)
}

func (Zenity) Entry(title, text, value string) (string, error) {
	return zenity.Entry(text,
		zenity.Title(config.AppName+" - "+title),
		zenity.EntryText(value),
	)
}

func (Zenity) Color(title string, current color.Color) (color.Color, error) {
	return zenity.SelectColor(
		zenity.Title(config.AppName+" - "+title),
		zenity.Color(current),
		zenity.ShowPalette(),
	)
}

func (Zenity) Info(title, text string) error {
	return zenity.Info(text,
		zenity.Title(config.AppName+" - "+title),
		zenity.InfoIcon,
	)
}
