package viz

import (
	"math"

	"trafficviz/internal/sim"
)

// Geometry maps simulation coordinates onto the current framebuffer. The
// canvas is the window inset by a fixed margin on every side; it is rebuilt
// each tick from the live framebuffer size so resizes take effect
// immediately.
type Geometry struct {
	WindowW int
	WindowH int
	Margin  int
}

// NewGeometry builds the canvas geometry for a framebuffer of w by h pixels.
func NewGeometry(w, h int) Geometry {
	return Geometry{WindowW: w, WindowH: h, Margin: CanvasMargin}
}

func (g Geometry) OriginX() int { return g.Margin }
func (g Geometry) OriginY() int { return g.Margin }
func (g Geometry) CanvasW() int { return g.WindowW - 2*g.Margin }
func (g Geometry) CanvasH() int { return g.WindowH - 2*g.Margin }

// HorizontalScale returns pixels per simulation unit so the snapshot's
// longest road spans the full canvas width. Recomputed per snapshot: roads
// of varying length across the timeline always fill the canvas.
func (g Geometry) HorizontalScale(snap sim.Snapshot) float64 {
	return float64(g.CanvasW()) / snap.MaxRoadLength()
}

// RoadCenterY returns the vertical center of road i out of k roads. Roads
// are evenly spaced with equal margins above the first and below the last.
func (g Geometry) RoadCenterY(i, k int) int {
	return g.OriginY() + int(float64(i+1)*float64(g.CanvasH())/float64(k+1))
}

// ScaleX maps a simulation offset to a pixel offset from the canvas left
// edge.
func ScaleX(v, scale float64) int {
	return int(math.Round(v * scale))
}

// ScaleWidth maps a fixed simulation-unit width to pixels, floored at one
// pixel so zero-scale degenerate cases remain visible.
func ScaleWidth(units, scale float64) int {
	px := int(units * scale)
	if px < 1 {
		px = 1
	}
	return px
}
