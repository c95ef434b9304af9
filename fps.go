package sinewalk

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jbeda/geom"
)

// fpsRefresh is how often (seconds) the FPS text is recomputed.
const fpsRefresh = 0.5

// fpsCounter caches the "FPS/TPS" text so it only changes twice a second.
type fpsCounter struct {
	elapsed float64
	text    string
}

func (f *fpsCounter) update(dt float64) {
	f.elapsed += dt
	if f.text != "" && f.elapsed < fpsRefresh {
		return
	}
	f.elapsed = 0
	f.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

// draw prints the cached text in the top-right corner.
func (f *fpsCounter) draw(cv Canvas, vp Viewport) {
	if f.text == "" {
		return
	}
	cv.FillRect(geom.Rect{
		Min: geom.Coord{X: vp.Width - 100, Y: 0},
		Max: geom.Coord{X: vp.Width, Y: 32},
	}, Color{0, 0, 0, 0.5})
	cv.DrawText(f.text, vp.Width-96, 0)
}
