package sinewalk

import (
	"errors"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsideWorldDefaultTriangle(t *testing.T) {
	v := DefaultTriangle()
	tests := []struct {
		name string
		q    Vec2
		want bool
	}{
		{"origin", Vec2{0, 0}, true},
		{"near apex", Vec2{0, 95}, true},
		{"near base", Vec2{10, -45}, true},
		{"right of base", Vec2{60, -40}, false},
		{"below base", Vec2{0, -60}, false},
		{"beyond apex", Vec2{0, 120}, false},
		{"outside slanted edge", Vec2{40, 40}, false},
		{"on vertex", v[1], false},
		{"on edge", Vec2{0, -50}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InsideWorld(tt.q, v[0], v[1], v[2]))
		})
	}
}

func TestInsideWorldDefaultWindingIsNegative(t *testing.T) {
	// The setup triangle is wound so that a point inside sees three
	// negative oriented angles.
	v := DefaultTriangle()
	q := Vec2{0, 0}
	d1 := v[0].Sub(q).Normalize()
	d2 := v[1].Sub(q).Normalize()
	d3 := v[2].Sub(q).Normalize()
	assert.Negative(t, OrientedAngle(d1, d2))
	assert.Negative(t, OrientedAngle(d2, d3))
	assert.Negative(t, OrientedAngle(d3, d1))
}

func TestInsideWorldEitherWinding(t *testing.T) {
	v := DefaultTriangle()
	assert.True(t, InsideWorld(Vec2{0, 0}, v[2], v[1], v[0]))
	assert.False(t, InsideWorld(Vec2{0, -60}, v[2], v[1], v[0]))
}

func TestInsideWorldDegenerate(t *testing.T) {
	assert.False(t, InsideWorld(Vec2{1, 1}, Vec2{0, 0}, Vec2{1, 1}, Vec2{2, 2}))
	assert.False(t, InsideWorld(Vec2{0, 0}, Vec2{0, 0}, Vec2{0, 0}, Vec2{0, 0}))
}

// Interior and exterior samples stay classified under any rigid motion.
func TestInsideWorldRigidMotion(t *testing.T) {
	triangles := [][3]Vec2{
		DefaultTriangle(),
		{{50, -50}, {0, 100}, {-50, -50}},
		{{0, 0}, {200, 10}, {30, 150}},
	}
	weights := [][3]float64{{1. / 3, 1. / 3, 1. / 3}, {0.6, 0.2, 0.2}, {0.1, 0.45, 0.45}, {0.05, 0.05, 0.9}}
	angles := []float64{0, 15, 90, 181, -73, 359}
	offsets := []Vec2{{0, 0}, {400, 300}, {-1000, 2.5}}

	for ti, tri := range triangles {
		centroid := tri[0].Add(tri[1]).Add(tri[2]).Scale(1.0 / 3)
		var inside, outside []Vec2
		for _, w := range weights {
			inside = append(inside, tri[0].Scale(w[0]).Add(tri[1].Scale(w[1])).Add(tri[2].Scale(w[2])))
		}
		for i := range tri {
			j := (i + 1) % 3
			outside = append(outside, tri[i].Add(tri[i].Sub(centroid).Scale(0.5)))
			mid := tri[i].Add(tri[j]).Scale(0.5)
			outside = append(outside, mid.Add(mid.Sub(centroid).Scale(0.3)))
		}

		for _, deg := range angles {
			for _, off := range offsets {
				m := WorldTransform(off, deg)
				w := m.ApplyAll(tri[:])
				for _, p := range inside {
					assert.True(t, InsideWorld(m.Apply(p), w[0], w[1], w[2]),
						"triangle %d deg %v off %v: %v should be inside", ti, deg, off, p)
				}
				for _, p := range outside {
					assert.False(t, InsideWorld(m.Apply(p), w[0], w[1], w[2]),
						"triangle %d deg %v off %v: %v should be outside", ti, deg, off, p)
				}
			}
		}
	}
}

func TestShapeContainsBakesInRotation(t *testing.T) {
	m := &Motion{Position: Vec2{400, 300}}
	tri := NewTriangle(m, DefaultTriangle(), ColorBlue)

	assert.True(t, tri.Contains(Vec2{400, 380}))
	assert.False(t, tri.Contains(Vec2{400, 230}))

	m.RotationDegrees = 180
	assert.False(t, tri.Contains(Vec2{400, 380}))
	assert.True(t, tri.Contains(Vec2{400, 230}))
}

func TestShapeWorldVertices(t *testing.T) {
	m := &Motion{Position: Vec2{10, 20}, RotationDegrees: 90}
	tri := NewTriangle(m, DefaultTriangle(), ColorBlue)
	got := tri.WorldVertices()
	require.Len(t, got, 3)
	// (0,100) rotated 90° is (-100,0).
	assertVec(t, Vec2{-90, 20}, got[1], 1e-9)
}

func TestImageShapeLayout(t *testing.T) {
	m := &Motion{}
	s, err := newImageShape(m, nil, 96, 24)
	require.NoError(t, err)
	assert.Equal(t, ShapeImage, s.Kind)
	assert.InDelta(t, 90.0, s.RotationOffset, epsilon)
	assert.Equal(t, []Vec2{{-48, -12}, {48, -12}, {48, 12}, {-48, 12}}, s.Vertices)
	assert.False(t, s.Contains(Vec2{}))
}

func TestImageShapeEmpty(t *testing.T) {
	_, err := newImageShape(&Motion{}, nil, 0, 10)
	assert.ErrorIs(t, err, ErrEmptyImage)
	_, err = NewImageShape(&Motion{}, nil)
	assert.ErrorIs(t, err, ErrEmptyImage)
}

func TestLoadImageShapeMissingFile(t *testing.T) {
	_, err := LoadImageShape(&Motion{}, "testdata/does-not-exist.png")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "does-not-exist.png")
}

// The image faces the same way as the triangle under the shared rotation.
func TestImageMirrorsTriangle(t *testing.T) {
	m := &Motion{Position: Vec2{200, 100}, RotationDegrees: 37}
	tri := NewTriangle(m, DefaultTriangle(), ColorBlue)
	img, err := newImageShape(m, nil, 96, 24)
	require.NoError(t, err)

	triForward := tri.WorldTransform().Apply(Vec2{0, 1}).Sub(m.Position)
	imgForward := img.WorldTransform().Apply(Vec2{1, 0}).Sub(m.Position)
	assertVec(t, triForward, imgForward, 1e-9)

	m.Position = m.Position.Add(Vec2{5, -5})
	m.RotationDegrees += 12
	assertVec(t, m.Position, tri.WorldTransform().Apply(Vec2{}), epsilon)
	assertVec(t, m.Position, img.WorldTransform().Apply(Vec2{}), epsilon)
}

func TestShapeDrawDispatch(t *testing.T) {
	m := &Motion{Position: Vec2{1, 2}}

	var cv recordingCanvas
	tri := NewTriangle(m, DefaultTriangle(), ColorBlue)
	tri.Alpha = 0.5
	tri.Draw(&cv)
	require.Len(t, cv.polygons, 1)
	assert.Len(t, cv.polygons[0].verts, 3)
	assert.InDelta(t, 0.5, cv.polygons[0].color.A, epsilon)
	assert.Empty(t, cv.images)
	assert.Equal(t, 0, cv.depth)
	assert.Equal(t, 1, cv.maxDepth)

	cv = recordingCanvas{}
	img, err := newImageShape(m, nil, 96, 24)
	require.NoError(t, err)
	img.Draw(&cv)
	require.Len(t, cv.images, 1)
	assert.Equal(t, Vec2{-48, -12}, cv.images[0].offset)
	assert.Empty(t, cv.polygons)
	assert.Equal(t, 0, cv.depth)
}

func TestShapeKindString(t *testing.T) {
	assert.Equal(t, "triangle", ShapeTriangle.String())
	assert.Equal(t, "image", ShapeImage.String())
	assert.Equal(t, "ShapeKind(9)", ShapeKind(9).String())
	assert.False(t, math.IsNaN(imageRotationOffset))
}

func TestWorldVerticesMatchWorldTransform(t *testing.T) {
	m := &Motion{Position: Vec2{-30, 75}, RotationDegrees: 217}
	tri := NewTriangle(m, DefaultTriangle(), ColorBlue)
	img, err := newImageShape(m, nil, 96, 24)
	require.NoError(t, err)

	for _, s := range []*Shape{tri, img} {
		want := s.WorldTransform().ApplyAll(s.Vertices)
		got := s.WorldVertices()
		require.Len(t, got, len(want))
		for i := range want {
			assertVec(t, want[i], got[i], 1e-9, "%v vertex %d", s.Kind, i)
		}
	}
}

func TestShapeToLocal(t *testing.T) {
	m := &Motion{Position: Vec2{400, 300}, RotationDegrees: 90}
	tri := NewTriangle(m, DefaultTriangle(), ColorBlue)

	for _, v := range DefaultTriangle() {
		w := tri.WorldTransform().Apply(v)
		assertVec(t, v, tri.ToLocal(w), 1e-9)
	}
	// (0,100) rotated by 90° points along -X.
	assertVec(t, Vec2{0, 100}, tri.ToLocal(Vec2{300, 300}), 1e-9)
}
