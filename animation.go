package sinewalk

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// TweenMotion or TweenAlpha and call Update(dt) each frame.
//
// There is no global animation manager; the App updates its own groups.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// Update advances all tweens by dt seconds and writes values to the target fields.
func (g *TweenGroup) Update(dt float32) {
	if g == nil || g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Active reports whether g exists and has not finished.
func (g *TweenGroup) Active() bool {
	return g != nil && !g.Done
}

// TweenMotion creates a TweenGroup that eases m's position and rotation to
// those of target. m's rotation is first wrapped to within 180° of the
// target so the shape takes the short way round. Heading is not
// interpolated; callers set it when the group finishes.
func TweenMotion(m *Motion, target Motion, duration float32, fn ease.TweenFunc) *TweenGroup {
	m.RotationDegrees = target.RotationDegrees + math.Remainder(m.RotationDegrees-target.RotationDegrees, 360)
	g := &TweenGroup{}
	g.add(&m.Position.X, target.Position.X, duration, fn)
	g.add(&m.Position.Y, target.Position.Y, duration, fn)
	g.add(&m.RotationDegrees, target.RotationDegrees, duration, fn)
	return g
}

// TweenAlpha creates a TweenGroup that fades s.Alpha from its current value
// to the target.
func TweenAlpha(s *Shape, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&s.Alpha, to, duration, fn)
	return g
}
