package sinewalk

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// debugStats holds per-frame timings. Only populated in debug mode.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	frames     int
}

// debugLogEvery is the number of frames between debug stat lines.
const debugLogEvery = 60

var (
	debugVertexColor  = Color{1, 1, 0, 1}
	debugHeadingColor = Color{0, 1, 0, 1}
	debugBoundsColor  = Color{1, 0.4, 0, 0.2}
)

// debugLog writes averaged timings once every debugLogEvery frames.
func (a *App) debugLog() {
	a.stats.frames++
	if a.stats.frames < debugLogEvery {
		return
	}
	n := time.Duration(a.stats.frames)
	m := a.controller.Motion()
	a.log.Debug("frame stats",
		zap.Duration("update", a.stats.updateTime/n),
		zap.Duration("draw", a.stats.drawTime/n),
		zap.Float64("x", m.Position.X),
		zap.Float64("y", m.Position.Y),
		zap.Float64("rotation", m.RotationDegrees),
	)
	a.stats = debugStats{}
}

// drawDebug marks the triangle's world vertices, the heading and the path
// bounds, and prints the motion state with the cursor in triangle space.
func (a *App) drawDebug(cv Canvas) {
	p := a.panel.Params()
	b := PathBounds(p.Amplitude, p.Cycles, a.viewport)
	cv.FillRect(b, debugBoundsColor)

	for _, v := range a.triangle.WorldVertices() {
		cv.FillCircle(v, 4, debugVertexColor)
	}
	m := a.controller.Motion()
	for i := 1; i <= 6; i++ {
		cv.FillCircle(m.Position.Add(m.Heading.Scale(float64(i)*10)), 2, debugHeadingColor)
	}
	local := a.triangle.ToLocal(Vec2{a.pointer.lastX, a.pointer.lastY})
	cv.DrawText(fmt.Sprintf("pos (%.1f, %.1f)\nrot %.1f\n%s drag=%v\ncursor local (%.1f, %.1f)",
		m.Position.X, m.Position.Y, m.RotationDegrees,
		a.controller.State(), a.controller.Dragging(),
		local.X, local.Y),
		panelPadding, a.viewport.Height-80)
}
