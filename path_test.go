package sinewalk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testViewport = Viewport{Width: 800, Height: 600}

func TestCurveEvalKnownPoints(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		amp    float64
		cycles float64
		want   Vec2
	}{
		{"start sits on the midline", 0, 150, 4, Vec2{0, 300}},
		{"first crest", 100, 150, 4, Vec2{100, 150}},
		{"first trough", 300, 150, 4, Vec2{300, 450}},
		{"zero amplitude is flat", 123, 0, 4, Vec2{123, 300}},
		{"one cycle crest", 400, 100, 1, Vec2{400, 200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, tt.want, CurveEval(tt.x, tt.amp, tt.cycles, testViewport), 1e-9)
		})
	}
}

func TestCurveEvalPeriodicity(t *testing.T) {
	for _, cycles := range []float64{1, 2.5, 4, 8} {
		half := testViewport.Width / cycles
		for _, x := range []float64{0, 17, 250, 799} {
			p := CurveEval(x, 150, cycles, testViewport)
			full := CurveEval(x+2*half, 150, cycles, testViewport)
			mirrored := CurveEval(x+half, 150, cycles, testViewport)

			assert.InDelta(t, p.Y, full.Y, 1e-6, "cycles %v x %v", cycles, x)
			mid := testViewport.Height / 2
			assert.InDelta(t, p.Y-mid, -(mirrored.Y - mid), 1e-6, "cycles %v x %v", cycles, x)
		}
	}
}

func TestCurveEvalStaysWithinAmplitude(t *testing.T) {
	for x := -50.0; x < 900; x += 3.7 {
		p := CurveEval(x, 220, 3, testViewport)
		assert.Equal(t, x, p.X)
		assert.LessOrEqual(t, p.Y, 300+220+1e-9)
		assert.GreaterOrEqual(t, p.Y, 300-220-1e-9)
	}
}

func TestSamplePath(t *testing.T) {
	pts := SamplePath(150, 4, testViewport, 1)
	require.Len(t, pts, 800)
	assert.Equal(t, 0.0, pts[0].X)
	assert.Equal(t, 799.0, pts[799].X)

	assert.Len(t, SamplePath(150, 4, testViewport, 10), 80)
	assert.Nil(t, SamplePath(150, 4, testViewport, 0))
	assert.Nil(t, SamplePath(150, 4, Viewport{}, 1))
}

func TestPathBounds(t *testing.T) {
	b := PathBounds(150, 4, testViewport)
	assert.InDelta(t, 0, b.Min.X, 1e-9)
	assert.InDelta(t, 799, b.Max.X, 1e-9)
	assert.InDelta(t, 150, b.Min.Y, 1e-9)
	assert.InDelta(t, 450, b.Max.Y, 1e-9)

	flat := PathBounds(0, 4, testViewport)
	assert.InDelta(t, 300, flat.Min.Y, 1e-9)
	assert.InDelta(t, 300, flat.Max.Y, 1e-9)
}
