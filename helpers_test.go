package sinewalk

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-9

func assertVec(t *testing.T, want, got Vec2, delta float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, delta, msgAndArgs...)
}

func assertMatrix(t *testing.T, want, got Transform) {
	t.Helper()
	for i := range got {
		assert.InDelta(t, want[i], got[i], epsilon, "element %d (full: %v vs %v)", i, want, got)
	}
}

// angleDiff returns a-b in degrees normalized to (-180, 180].
func angleDiff(a, b float64) float64 {
	d := a - b
	for d > 180 {
		d -= 360
	}
	for d <= -180 {
		d += 360
	}
	return d
}

// recordingCanvas captures draw calls instead of rendering them.
type recordingCanvas struct {
	depth    int
	maxDepth int
	polygons []recordedPolygon
	images   []recordedImage
	circles  int
	rects    []geom.Rect
	texts    []string
}

type recordedPolygon struct {
	verts []Vec2
	color Color
}

type recordedImage struct {
	offset Vec2
	alpha  float64
}

func (c *recordingCanvas) PushTransform(Transform) {
	c.depth++
	c.maxDepth = max(c.maxDepth, c.depth)
}

func (c *recordingCanvas) PopTransform() { c.depth-- }

func (c *recordingCanvas) FillPolygon(verts []Vec2, col Color) {
	c.polygons = append(c.polygons, recordedPolygon{verts: verts, color: col})
}

func (c *recordingCanvas) DrawImage(_ *ebiten.Image, offset Vec2, alpha float64) {
	c.images = append(c.images, recordedImage{offset: offset, alpha: alpha})
}

func (c *recordingCanvas) FillCircle(Vec2, float64, Color) { c.circles++ }

func (c *recordingCanvas) FillRect(r geom.Rect, _ Color) { c.rects = append(c.rects, r) }

func (c *recordingCanvas) DrawText(s string, _, _ float64) { c.texts = append(c.texts, s) }
