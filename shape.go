package sinewalk

import (
	"errors"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ErrEmptyImage is returned when a bitmap has zero width or height.
var ErrEmptyImage = errors.New("sinewalk: image has no pixels")

// Motion is the position, orientation and last direction of travel shared
// by every drawable variant. The triangle and the image both reference the
// same Motion, so they can never drift apart.
type Motion struct {
	Position        Vec2
	RotationDegrees float64
	Heading         Vec2 // unit vector, last direction of travel
}

// ShapeKind distinguishes the drawable variants of a Shape.
type ShapeKind uint8

const (
	ShapeTriangle ShapeKind = iota // filled 3-vertex polygon
	ShapeImage                     // bitmap centered on the origin
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeTriangle:
		return "triangle"
	case ShapeImage:
		return "image"
	default:
		return fmt.Sprintf("ShapeKind(%d)", uint8(k))
	}
}

// Shape is a positioned, rotatable polygon. Vertices are in local space and
// always pass through WorldTransform before they are drawn or hit-tested.
type Shape struct {
	Kind   ShapeKind
	Motion *Motion

	// Vertices in local space. For ShapeImage these are the four corners of
	// the bitmap, centered on the origin.
	Vertices []Vec2
	Color    Color
	Alpha    float64

	// RotationOffset (degrees) aligns the variant's own forward axis with the
	// shared rotation.
	RotationOffset float64

	image         *ebiten.Image
	Width, Height float64
}

// imageRotationOffset turns a bitmap pointing along +X so it faces the same
// way as the triangle, whose forward axis is +Y.
var imageRotationOffset = Degrees(OrientedAngle(Vec2{1, 0}, Vec2{0, 1}))

// DefaultTriangle returns the local vertices of the isoceles triangle.
func DefaultTriangle() [3]Vec2 {
	return [3]Vec2{{-50, -50}, {0, 100}, {50, -50}}
}

// NewTriangle creates a filled triangle bound to m.
func NewTriangle(m *Motion, verts [3]Vec2, c Color) *Shape {
	return &Shape{
		Kind:     ShapeTriangle,
		Motion:   m,
		Vertices: verts[:],
		Color:    c,
		Alpha:    1,
	}
}

// NewImageShape creates a bitmap shape bound to m.
func NewImageShape(m *Motion, img *ebiten.Image) (*Shape, error) {
	if img == nil {
		return nil, ErrEmptyImage
	}
	b := img.Bounds()
	return newImageShape(m, img, float64(b.Dx()), float64(b.Dy()))
}

func newImageShape(m *Motion, img *ebiten.Image, w, h float64) (*Shape, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyImage
	}
	hw, hh := w/2, h/2
	return &Shape{
		Kind:           ShapeImage,
		Motion:         m,
		Vertices:       []Vec2{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}},
		Color:          ColorWhite,
		Alpha:          1,
		RotationOffset: imageRotationOffset,
		image:          img,
		Width:          w,
		Height:         h,
	}, nil
}

// LoadImageShape loads a PNG/JPEG/GIF file and wraps it in an image shape.
func LoadImageShape(m *Motion, path string) (*Shape, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	s, err := NewImageShape(m, img)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	return s, nil
}

// WorldTransform returns translate(position) ∘ rotate(rotation + offset).
func (s *Shape) WorldTransform() Transform {
	return WorldTransform(s.Motion.Position, s.Motion.RotationDegrees+s.RotationOffset)
}

// WorldVertices returns the vertices rotated about the local origin and
// then moved to the shape's position.
func (s *Shape) WorldVertices() []Vec2 {
	pts := RotatePoints(s.Vertices, Radians(s.Motion.RotationDegrees+s.RotationOffset))
	for i := range pts {
		pts[i] = pts[i].Add(s.Motion.Position)
	}
	return pts
}

// ToLocal maps a world-space point into the shape's local space.
func (s *Shape) ToLocal(p Vec2) Vec2 {
	return s.WorldTransform().Invert().Apply(p)
}

// Draw renders the shape at its current world transform.
func (s *Shape) Draw(cv Canvas) {
	cv.PushTransform(s.WorldTransform())
	defer cv.PopTransform()

	switch s.Kind {
	case ShapeTriangle:
		c := s.Color
		c.A *= s.Alpha
		cv.FillPolygon(s.Vertices, c)
	case ShapeImage:
		cv.DrawImage(s.image, Vec2{-s.Width / 2, -s.Height / 2}, s.Alpha)
	}
}

// Contains reports whether the world-space point p lies inside the shape.
// Only triangles are hit-testable.
func (s *Shape) Contains(p Vec2) bool {
	if s.Kind != ShapeTriangle || len(s.Vertices) != 3 {
		return false
	}
	w := s.WorldVertices()
	return InsideWorld(p, w[0], w[1], w[2])
}

// InsideWorld reports whether q lies strictly inside the triangle v1 v2 v3,
// all given in world space. The directions from q to each vertex are
// normalized and the signed angles (v1,v2), (v2,v3), (v3,v1) must all share
// the sign of the triangle's winding. Either winding order is accepted.
//
// A query point on a vertex, and a degenerate triangle, are never inside.
func InsideWorld(q, v1, v2, v3 Vec2) bool {
	winding := v2.Sub(v1).Cross(v3.Sub(v1))
	if winding == 0 {
		return false
	}
	d1 := v1.Sub(q).Normalize()
	d2 := v2.Sub(q).Normalize()
	d3 := v3.Sub(q).Normalize()
	if d1 == (Vec2{}) || d2 == (Vec2{}) || d3 == (Vec2{}) {
		return false
	}
	a1 := OrientedAngle(d1, d2)
	a2 := OrientedAngle(d2, d3)
	a3 := OrientedAngle(d3, d1)
	// ±π means q lies on an edge.
	if math.Abs(a1) >= math.Pi || math.Abs(a2) >= math.Pi || math.Abs(a3) >= math.Pi {
		return false
	}
	if winding < 0 {
		return a1 < 0 && a2 < 0 && a3 < 0
	}
	return a1 > 0 && a2 > 0 && a3 > 0
}
