package theme

import (
	"image/color"
)

// Theme defines the color palette for the gallery panel.
type Theme struct {
	Name string

	// General
	Background color.RGBA // behind the list and drawing area
	Foreground color.RGBA // main text color

	// Toolbar & list
	ToolbarBackground color.RGBA
	ListBackground    color.RGBA
	Selection         color.RGBA // selected row highlight
	StatusBackground  color.RGBA

	// Buttons
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonText            color.RGBA
	ButtonBorder          color.RGBA

	// Drawing area
	CheckerLight color.RGBA
	CheckerDark  color.RGBA
}

// Default returns the built-in light theme.
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{220, 220, 220, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		ToolbarBackground:     color.RGBA{220, 220, 220, 255},
		ListBackground:        color.RGBA{235, 235, 235, 255},
		Selection:             color.RGBA{180, 200, 230, 255},
		StatusBackground:      color.RGBA{240, 240, 240, 255},
		ButtonBackground:      color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover: color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress: color.RGBA{150, 150, 150, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
		CheckerLight:          color.RGBA{220, 220, 220, 255},
		CheckerDark:           color.RGBA{192, 192, 192, 255},
	}
}

// Dark returns the built-in dark theme.
func Dark() *Theme {
	return &Theme{
		Name:                  "Dark",
		Background:            color.RGBA{40, 40, 40, 255},
		Foreground:            color.RGBA{230, 230, 230, 255},
		ToolbarBackground:     color.RGBA{50, 50, 50, 255},
		ListBackground:        color.RGBA{32, 32, 32, 255},
		Selection:             color.RGBA{60, 80, 120, 255},
		StatusBackground:      color.RGBA{28, 28, 28, 255},
		ButtonBackground:      color.RGBA{70, 70, 70, 255},
		ButtonBackgroundHover: color.RGBA{90, 90, 90, 255},
		ButtonBackgroundPress: color.RGBA{110, 110, 110, 255},
		ButtonText:            color.RGBA{230, 230, 230, 255},
		ButtonBorder:          color.RGBA{20, 20, 20, 255},
		CheckerLight:          color.RGBA{80, 80, 80, 255},
		CheckerDark:           color.RGBA{60, 60, 60, 255},
	}
}

// Builtin returns the named built-in theme, or nil.
func Builtin(name string) *Theme {
	switch name {
	case "", "default", "Default":
		return Default()
	case "dark", "Dark":
		return Dark()
	}
	return nil
}
