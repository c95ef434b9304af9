package sinewalk

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jbeda/geom"
)

// Canvas is the drawing surface shapes, the path and the panel render into.
// Geometry passed to the fill and image methods is in the coordinate space
// of the current transform; DrawText always uses screen coordinates.
type Canvas interface {
	PushTransform(m Transform)
	PopTransform()
	FillPolygon(verts []Vec2, c Color)
	DrawImage(img *ebiten.Image, offset Vec2, alpha float64)
	FillCircle(center Vec2, radius float64, c Color)
	FillRect(r geom.Rect, c Color)
	DrawText(s string, x, y float64)
}

// circleSegments is the number of fan triangles used to approximate a circle.
const circleSegments = 12

// ScreenCanvas draws onto an ebiten image.
type ScreenCanvas struct {
	dst   *ebiten.Image
	stack []Transform

	vertBuf  []ebiten.Vertex
	indexBuf []uint16
}

// NewScreenCanvas returns a canvas targeting dst with an identity transform.
func NewScreenCanvas(dst *ebiten.Image) *ScreenCanvas {
	return &ScreenCanvas{
		dst:   dst,
		stack: []Transform{IdentityTransform},
	}
}

// Reset retargets the canvas and clears its transform stack.
func (c *ScreenCanvas) Reset(dst *ebiten.Image) {
	c.dst = dst
	c.stack = append(c.stack[:0], IdentityTransform)
}

func (c *ScreenCanvas) current() Transform {
	return c.stack[len(c.stack)-1]
}

// PushTransform composes m onto the current transform.
func (c *ScreenCanvas) PushTransform(m Transform) {
	c.stack = append(c.stack, c.current().Mul(m))
}

// PopTransform restores the previous transform. The base identity is never popped.
func (c *ScreenCanvas) PopTransform() {
	if len(c.stack) > 1 {
		c.stack = c.stack[:len(c.stack)-1]
	}
}

// FillPolygon fills a convex polygon as a triangle fan.
func (c *ScreenCanvas) FillPolygon(verts []Vec2, col Color) {
	if len(verts) < 3 {
		return
	}
	c.vertBuf = c.vertBuf[:0]
	c.indexBuf = c.indexBuf[:0]
	m := c.current()
	for _, v := range verts {
		c.vertBuf = append(c.vertBuf, solidVertex(m.Apply(v), col))
	}
	for i := 1; i < len(verts)-1; i++ {
		c.indexBuf = append(c.indexBuf, 0, uint16(i), uint16(i+1))
	}
	c.dst.DrawTriangles(c.vertBuf, c.indexBuf, ensureWhitePixel(), nil)
}

// FillCircle fills a circle approximated by circleSegments triangles.
func (c *ScreenCanvas) FillCircle(center Vec2, radius float64, col Color) {
	pts := make([]Vec2, circleSegments)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / circleSegments)
		pts[i] = Vec2{center.X + radius*cos, center.Y + radius*sin}
	}
	c.FillPolygon(pts, col)
}

// FillRect fills an axis-aligned rectangle (in the current transform's space).
func (c *ScreenCanvas) FillRect(r geom.Rect, col Color) {
	c.FillPolygon([]Vec2{
		{r.Min.X, r.Min.Y},
		{r.Max.X, r.Min.Y},
		{r.Max.X, r.Max.Y},
		{r.Min.X, r.Max.Y},
	}, col)
}

// DrawImage draws img with its top-left corner at offset under the current transform.
func (c *ScreenCanvas) DrawImage(img *ebiten.Image, offset Vec2, alpha float64) {
	if img == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(offset.X, offset.Y)
	op.GeoM.Concat(c.current().GeoM())
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(img, &op)
}

// DrawText prints debug-font text at screen position (x, y).
func (c *ScreenCanvas) DrawText(s string, x, y float64) {
	ebitenutil.DebugPrintAt(c.dst, s, int(x), int(y))
}

// solidVertex builds a premultiplied vertex sampling the white pixel.
func solidVertex(p Vec2, col Color) ebiten.Vertex {
	a := float32(col.A)
	return ebiten.Vertex{
		DstX:   float32(p.X),
		DstY:   float32(p.Y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(col.R) * a,
		ColorG: float32(col.G) * a,
		ColorB: float32(col.B) * a,
		ColorA: a,
	}
}

// --- White pixel singleton (no sync.Once, the game loop is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}
