package viz

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Palette is the fixed set of named scene colours for one session. Built
// once at startup and passed by value; nothing mutates it afterwards.
type Palette struct {
	Background   RGB `yaml:"background"`
	Text         RGB `yaml:"text"`
	Road         RGB `yaml:"road"`
	Car          RGB `yaml:"car"`
	LightGreen   RGB `yaml:"light_green"`
	LightRed     RGB `yaml:"light_red"`
	Generator    RGB `yaml:"generator"`
	DecelZone    RGB `yaml:"deceleration_zone"`
	StopZoneFull RGB `yaml:"stopping_zone_full"`
	StopZoneHalf RGB `yaml:"stopping_zone_half"`
}

// LightPalette is the default theme.
func LightPalette() Palette {
	return Palette{
		Background:   RGB{R: 255, G: 255, B: 255},
		Text:         RGB{R: 0, G: 0, B: 0},
		Road:         RGB{R: 200, G: 200, B: 200},
		Car:          RGB{R: 40, G: 40, B: 40},
		LightGreen:   RGB{R: 0, G: 255, B: 0},
		LightRed:     RGB{R: 255, G: 0, B: 0},
		Generator:    RGB{R: 255, G: 100, B: 255},
		DecelZone:    RGB{R: 155, G: 175, B: 213},
		StopZoneFull: RGB{R: 219, G: 125, B: 125},
		StopZoneHalf: RGB{R: 213, G: 173, B: 99},
	}
}

// DarkPalette is the built-in alternate theme.
func DarkPalette() Palette {
	return Palette{
		Background:   RGB{R: 0, G: 0, B: 0},
		Text:         RGB{R: 255, G: 255, B: 255},
		Road:         RGB{R: 55, G: 55, B: 55},
		Car:          RGB{R: 215, G: 215, B: 215},
		LightGreen:   RGB{R: 0, G: 255, B: 0},
		LightRed:     RGB{R: 255, G: 0, B: 0},
		Generator:    RGB{R: 140, G: 0, B: 140},
		DecelZone:    RGB{R: 55, G: 75, B: 113},
		StopZoneFull: RGB{R: 119, G: 25, B: 25},
		StopZoneHalf: RGB{R: 113, G: 73, B: 0},
	}
}
