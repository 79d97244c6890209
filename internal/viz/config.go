package viz

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 200
	WindowTitle  = "Traffic Simulation Visualizer"
)

// Render loop tick rate. Playback rate only changes how many timeline
// indices are consumed per tick, never this frequency.
const TickRate = 60

// Canvas layout (screen pixels).
const (
	CanvasMargin   = 16
	RoadHeight     = 20
	CarHeight      = 10
	LightOffset    = 4
	LightRadius    = 5
	RoadNameOffset = 3
	PauseIconW     = 15
	PauseIconH     = 20
)

// Shape widths in simulation units. These scale with the per-frame
// horizontal scale and are floored at one pixel so degenerate scales
// stay visible.
const (
	CarUnitWidth      = 4.0
	StopLineUnitWidth = 1.0
)

// Font sizes in pixels. Road names use the smaller italic face.
const (
	FontSizeRegular = 16
	FontSizeItalic  = 12
)
