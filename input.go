package sinewalk

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// pointerTarget records who owns the pointer between press and release.
type pointerTarget uint8

const (
	targetNone pointerTarget = iota
	targetPanel
	targetShape
)

// pointerState tracks the mouse between frames so level input becomes
// press/move/release edges.
type pointerState struct {
	down   bool
	lastX  float64
	lastY  float64
	target pointerTarget
	button MouseButton // button captured at press time
}

// ebitenKeys maps the keys the program reacts to onto ebiten key codes.
// KeyControl is handled through the modifier bitmask instead.
var ebitenKeys = []struct {
	key Key
	eb  ebiten.Key
}{
	{KeySpace, ebiten.KeySpace},
	{KeyF, ebiten.KeyF},
	{KeyI, ebiten.KeyI},
	{KeyP, ebiten.KeyP},
	{KeyR, ebiten.KeyR},
	{KeyD, ebiten.KeyD},
	{KeyS, ebiten.KeyS},
	{KeyH, ebiten.KeyH},
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// hardwareInput is one frame of polled keyboard and mouse state.
type hardwareInput struct {
	mods     KeyModifiers
	pressed  []Key
	released []Key
	x, y     float64
	down     bool
	button   MouseButton
}

// pollHardware reads the current ebiten input state.
func pollHardware() hardwareInput {
	in := hardwareInput{mods: readModifiers(), button: MouseButtonLeft}
	for _, k := range ebitenKeys {
		if inpututil.IsKeyJustPressed(k.eb) {
			in.pressed = append(in.pressed, k.key)
		}
		if inpututil.IsKeyJustReleased(k.eb) {
			in.released = append(in.released, k.key)
		}
	}

	mx, my := ebiten.CursorPosition()
	in.x, in.y = float64(mx), float64(my)
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		in.down = true
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		in.down, in.button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		in.down, in.button = true, MouseButtonMiddle
	}
	return in
}

// processInput is called from App.Update. An injected event, when queued,
// replaces real input for the frame. While a script is running the hardware
// is not polled at all, so held injected keys and buttons survive frames
// with nothing queued.
func (a *App) processInput() {
	if a.processInjectedInput() {
		return
	}
	if a.testRunner != nil && !a.testRunner.Done() {
		return
	}

	in := a.poll()
	a.processModifiers(in.mods)
	for _, k := range in.pressed {
		a.processKey(k, true)
	}
	for _, k := range in.released {
		a.processKey(k, false)
	}
	a.processPointer(in.x, in.y, in.down, in.button)
}

// processModifiers turns changes of the Ctrl bit into KeyControl events.
func (a *App) processModifiers(mods KeyModifiers) {
	ctrl := mods&ModCtrl != 0
	if ctrl != a.controller.RotateHeld() {
		a.processKey(KeyControl, ctrl)
	}
}

// processKey routes a key edge to the controller, then to app shortcuts.
func (a *App) processKey(k Key, down bool) {
	if !down {
		a.controller.KeyUp(k)
		return
	}
	if a.controller.KeyDown(k) {
		if k == KeySpace {
			a.log.Info("animation toggled", zap.Stringer("state", a.controller.State()))
		}
		return
	}
	switch k {
	case KeyF:
		a.toggleFullscreen()
	case KeyI:
		a.panel.SetUseImage(!a.panel.Params().UseImage)
	case KeyP:
		a.panel.SetShowPath(!a.panel.Params().ShowPath)
	case KeyR:
		a.reset()
	case KeyD:
		a.debug = !a.debug
		a.log.Info("debug overlay", zap.Bool("enabled", a.debug))
	case KeyS:
		a.Screenshot("manual")
	case KeyH:
		a.panel.SetVisible(!a.panel.Visible())
	}
}

// processPointer runs the pointer state machine for the mouse. The panel
// gets first refusal on a press; whoever takes the press keeps the pointer
// until release.
func (a *App) processPointer(x, y float64, pressed bool, button MouseButton) {
	ps := &a.pointer
	p := Vec2{x, y}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.target = targetNone
		if a.panel.PointerDown(p) {
			ps.target = targetPanel
		} else if button == MouseButtonLeft && a.controller.PointerDown(p) {
			ps.target = targetShape
			a.log.Debug("drag start", zap.Float64("x", x), zap.Float64("y", y))
		}
	case !pressed && ps.down:
		switch ps.target {
		case targetPanel:
			a.panel.PointerUp()
		case targetShape:
			if x != ps.lastX || y != ps.lastY {
				a.controller.PointerMove(p)
			}
			a.controller.PointerUp()
			a.log.Debug("drag end", zap.Float64("x", x), zap.Float64("y", y))
		}
		ps.down = false
		ps.target = targetNone
	case pressed && ps.down:
		if x != ps.lastX || y != ps.lastY {
			switch ps.target {
			case targetPanel:
				a.panel.PointerMove(p)
			case targetShape:
				a.controller.PointerMove(p)
			}
		}
	}
	ps.lastX = x
	ps.lastY = y
}
