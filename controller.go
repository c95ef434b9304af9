package sinewalk

// Params are the tunable values exposed on the panel. The controller only
// reads them once per tick.
type Params struct {
	Speed     float64 `yaml:"speed"`
	Amplitude float64 `yaml:"amplitude"`
	Cycles    float64 `yaml:"cycles"`
	ShowPath  bool    `yaml:"show_path"`
	UseImage  bool    `yaml:"use_image"`
}

// Parameter ranges and defaults.
const (
	SpeedMin, SpeedMax, SpeedDefault             = 1.0, 10.0, 5.0
	AmplitudeMin, AmplitudeMax, AmplitudeDefault = 0.0, 300.0, 150.0
	CyclesMin, CyclesMax, CyclesDefault          = 1.0, 8.0, 4.0
)

// DefaultParams returns the panel's initial values.
func DefaultParams() Params {
	return Params{
		Speed:     SpeedDefault,
		Amplitude: AmplitudeDefault,
		Cycles:    CyclesDefault,
		ShowPath:  true,
		UseImage:  false,
	}
}

// Clamp returns p with every numeric value forced into its range.
func (p Params) Clamp() Params {
	p.Speed = clampRange(p.Speed, SpeedMin, SpeedMax)
	p.Amplitude = clampRange(p.Amplitude, AmplitudeMin, AmplitudeMax)
	p.Cycles = clampRange(p.Cycles, CyclesMin, CyclesMax)
	return p
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// triangleForward is the local axis the triangle points along.
var triangleForward = Vec2{0, 1}

// StartMotion computes the placement used at startup and on reset: the
// shape sits on the curve near x=0, faces along the curve, and has taken
// one step.
func StartMotion(p Params, vp Viewport) Motion {
	pos := CurveEval(0, p.Amplitude, p.Cycles, vp)
	heading := CurveEval(pos.X+1, p.Amplitude, p.Cycles, vp).Sub(pos).Normalize()
	return Motion{
		Position:        CurveEval(pos.X+p.Speed*heading.X, p.Amplitude, p.Cycles, vp),
		RotationDegrees: Degrees(OrientedAngle(triangleForward, heading)),
		Heading:         heading,
	}
}

// AnimState is the top-level animation state.
type AnimState uint8

const (
	AnimStopped AnimState = iota
	AnimRunning
)

func (s AnimState) String() string {
	if s == AnimRunning {
		return "running"
	}
	return "stopped"
}

// DragState is the pointer gesture state.
type DragState uint8

const (
	DragIdle DragState = iota
	DragDragging
)

// Controller advances the shared Motion along the path and turns pointer
// and key events into drags, rotations and run toggles.
type Controller struct {
	motion *Motion
	hit    *Shape

	anim       AnimState
	drag       DragState
	lastMouse  Vec2
	rotateHeld bool
}

// NewController binds a controller to m. Presses are hit-tested against hit,
// which must be a triangle sharing m.
func NewController(m *Motion, hit *Shape) *Controller {
	return &Controller{motion: m, hit: hit}
}

// Motion returns the shared motion state.
func (c *Controller) Motion() *Motion { return c.motion }

// State returns the animation state.
func (c *Controller) State() AnimState { return c.anim }

// Running reports whether the animation is advancing.
func (c *Controller) Running() bool { return c.anim == AnimRunning }

// Dragging reports whether a drag gesture is active.
func (c *Controller) Dragging() bool { return c.drag == DragDragging }

// RotateHeld reports whether the rotate modifier is currently held.
func (c *Controller) RotateHeld() bool { return c.rotateHeld }

// ToggleRunning flips between stopped and running.
func (c *Controller) ToggleRunning() {
	if c.anim == AnimRunning {
		c.anim = AnimStopped
	} else {
		c.anim = AnimRunning
	}
}

// Stop halts the animation without touching the motion state.
func (c *Controller) Stop() {
	c.anim = AnimStopped
}

// Tick advances the motion one frame. It does nothing while stopped.
func (c *Controller) Tick(p Params, vp Viewport) {
	if c.anim != AnimRunning {
		return
	}
	m := c.motion
	if m.Position.X+p.Speed > vp.Width {
		m.Position.X = 0
		return
	}

	next := CurveEval(m.Position.X+p.Speed*m.Heading.X, p.Amplitude, p.Cycles, vp)
	heading := next.Sub(m.Position).Normalize()
	if heading == (Vec2{}) {
		heading = m.Heading
	}
	m.RotationDegrees += Degrees(OrientedAngle(m.Heading, heading))
	m.Position = next
	m.Heading = heading
}

// PointerDown starts a drag when p is inside the triangle at its current
// world transform. Returns true if a drag started.
func (c *Controller) PointerDown(p Vec2) bool {
	if c.hit == nil || !c.hit.Contains(p) {
		return false
	}
	c.drag = DragDragging
	c.lastMouse = p
	return true
}

// PointerMove rotates (modifier held) or translates (otherwise) the shape
// by the movement since the last pointer event. The mode is chosen from the
// modifier state at this event.
func (c *Controller) PointerMove(p Vec2) {
	if c.drag != DragDragging {
		return
	}
	if c.rotateHeld {
		c.motion.RotationDegrees += p.X - c.lastMouse.X
	} else {
		c.motion.Position = c.motion.Position.Add(p.Sub(c.lastMouse))
	}
	c.lastMouse = p
}

// PointerUp ends any drag.
func (c *Controller) PointerUp() {
	c.drag = DragIdle
}

// SetRotateModifier records whether the rotate modifier is held.
func (c *Controller) SetRotateModifier(held bool) {
	c.rotateHeld = held
}

// KeyDown handles the keys the controller owns. Returns true if consumed.
func (c *Controller) KeyDown(k Key) bool {
	switch k {
	case KeySpace:
		c.ToggleRunning()
		return true
	case KeyControl:
		c.rotateHeld = true
		return true
	}
	return false
}

// KeyUp handles key releases. Returns true if consumed.
func (c *Controller) KeyUp(k Key) bool {
	if k == KeyControl {
		c.rotateHeld = false
		return true
	}
	return false
}
