package viz

import (
	"math"
	"strconv"

	"trafficviz/internal/sim"
)

// Font selects which atlas a label is drawn with.
type Font int

const (
	FontRegular Font = iota
	FontItalic
)

// Rect is an axis-aligned filled rectangle in screen pixels.
type Rect struct {
	X, Y, W, H int
	Color      RGB
}

// Lamp is a filled circle (a traffic light lamp) in screen pixels.
type Lamp struct {
	X, Y, R int
	Color   RGB
}

// Label is a piece of text anchored at its top-left corner.
type Label struct {
	Text  string
	X, Y  int
	Font  Font
	Color RGB
}

// Frame is one fully laid-out scene, ready for the renderer. Rects are
// ordered back to front; later entries paint over earlier ones.
type Frame struct {
	Background RGB
	Rects      []Rect
	Lamps      []Lamp
	Labels     []Label
}

// BuildScene lays out one snapshot. It is a pure function of its arguments;
// all GL work happens later in the renderer, so this half is covered by
// plain unit tests.
func BuildScene(snap sim.Snapshot, g Geometry, pal Palette, paused bool) Frame {
	f := Frame{Background: pal.Background}

	f.Labels = append(f.Labels, Label{
		Text:  "Time: " + formatTime(snap.Time),
		X:     g.OriginX(),
		Y:     g.OriginY(),
		Font:  FontRegular,
		Color: pal.Text,
	})

	scale := g.HorizontalScale(snap)
	for i, road := range snap.Roads {
		buildRoad(&f, road, g, pal, scale, g.RoadCenterY(i, len(snap.Roads)))
	}

	// HUD last: the pause glyph must stay on top of every road, even when a
	// small window pushes a road bar into the corner.
	if paused {
		buildPauseIcon(&f, g, pal)
	}
	return f
}

// formatTime prints the recorded time value as plain decimal, so an integral
// timestamp shows without a decimal point and large ones never switch to
// scientific notation. Only extreme magnitudes fall back to the exponent
// form.
func formatTime(t float64) string {
	if a := math.Abs(t); a != 0 && (a >= 1e15 || a < 1e-4) {
		return strconv.FormatFloat(t, 'g', -1, 64)
	}
	return strconv.FormatFloat(t, 'f', -1, 64)
}

// buildPauseIcon places two vertical bars in the canvas's top-right corner:
// a text-coloured block with its middle third cut back to the background.
func buildPauseIcon(f *Frame, g Geometry, pal Palette) {
	x := g.OriginX() + g.CanvasW() - PauseIconW
	y := g.OriginY()
	f.Rects = append(f.Rects,
		Rect{X: x, Y: y, W: PauseIconW, H: PauseIconH, Color: pal.Text},
		Rect{X: x + PauseIconW/3, Y: y, W: PauseIconW - 2*(PauseIconW/3), H: PauseIconH, Color: pal.Background},
	)
}

func buildRoad(f *Frame, road sim.Road, g Geometry, pal Palette, scale float64, centerY int) {
	roadX := g.OriginX()
	roadW := ScaleX(road.Length, scale)
	roadTop := centerY - RoadHeight/2

	f.Labels = append(f.Labels, Label{
		Text:  road.Name,
		X:     roadX,
		Y:     centerY + RoadHeight/2 + RoadNameOffset,
		Font:  FontItalic,
		Color: pal.Text,
	})
	f.Rects = append(f.Rects, Rect{X: roadX, Y: roadTop, W: roadW, H: RoadHeight, Color: pal.Road})

	for _, light := range road.Lights {
		buildLight(f, light, g, pal, scale, centerY)
	}
	for _, car := range road.Cars {
		buildCar(f, car, g, pal, scale, centerY)
	}

	// Generator marker: where new vehicles enter, immediately left of the
	// canvas edge.
	genW := ScaleWidth(CarUnitWidth, scale)
	f.Rects = append(f.Rects, Rect{
		X: roadX - genW, Y: roadTop, W: genW, H: RoadHeight, Color: pal.Generator,
	})
}

func buildLight(f *Frame, light sim.Light, g Geometry, pal Palette, scale float64, centerY int) {
	lightX := g.OriginX() + ScaleX(light.X, scale)
	roadTop := centerY - RoadHeight/2

	// Indicator zones only while the light is restrictive. Zone data may be
	// present while green; it is suppressed, not an error.
	if !light.Green && light.HasZones() {
		decel := ScaleX(*light.DecelX, scale)
		stop := ScaleX(*light.StopX, scale)
		f.Rects = append(f.Rects,
			Rect{X: lightX - decel, Y: roadTop, W: decel, H: RoadHeight, Color: pal.DecelZone},
			Rect{X: lightX - stop, Y: roadTop, W: stop, H: RoadHeight, Color: pal.StopZoneFull},
			// Half-stop band: exactly half the width and offset of the full
			// band. A fixed visual convention, not simulation data.
			Rect{X: lightX - stop/2, Y: roadTop, W: stop / 2, H: RoadHeight, Color: pal.StopZoneHalf},
		)
	}

	col := pal.LightRed
	if light.Green {
		col = pal.LightGreen
	}
	lineW := ScaleWidth(StopLineUnitWidth, scale)
	f.Rects = append(f.Rects, Rect{
		X: lightX - lineW/2, Y: roadTop, W: lineW, H: RoadHeight + LightOffset, Color: col,
	})
	f.Lamps = append(f.Lamps, Lamp{
		X:     lightX,
		Y:     centerY + RoadHeight/2 + LightOffset + LightRadius,
		R:     LightRadius,
		Color: col,
	})
}

// buildCar places the car block with its left edge one car-width behind the
// mapped position, so the car visually occupies the space it has covered.
func buildCar(f *Frame, car sim.Car, g Geometry, pal Palette, scale float64, centerY int) {
	carW := ScaleWidth(CarUnitWidth, scale)
	carX := g.OriginX() + ScaleX(car.X, scale) - carW
	f.Rects = append(f.Rects, Rect{
		X: carX, Y: centerY - CarHeight/2, W: carW, H: CarHeight, Color: pal.Car,
	})
}
