// Package sinewalk animates a shape along a sine-wave path with [Ebitengine].
//
// A triangle (or a bitmap) travels across the window following
// [CurveEval]. The user can grab it with the mouse and drag it, hold Ctrl
// while dragging to rotate it, and tune speed, amplitude and cycle count
// from an on-screen [Panel].
//
// # Quick start
//
//	cfg := sinewalk.DefaultConfig()
//	logger, _ := sinewalk.NewLogger(cfg.Log)
//	if err := sinewalk.Run(cfg, logger); err != nil {
//		log.Fatal(err)
//	}
//
// # Shapes and motion
//
// Both drawable variants ([ShapeTriangle] and [ShapeImage]) point at one
// shared [Motion]. Local vertices always pass through [WorldTransform]
// (translate then rotate) before they are drawn or hit-tested, so the image
// mirrors the triangle exactly whichever one is on screen.
//
// # Controller
//
// [Controller.Tick] moves the shape one step along the curve while running
// and integrates the change of heading into its rotation. Pointer presses
// inside the triangle ([InsideWorld]) start a drag; moves translate the
// shape, or rotate it while the modifier is held.
//
// # Scripted runs
//
// [LoadTestScript] reads a YAML or JSON list of steps (click, drag, key,
// wait, screenshot) that are injected as input one frame at a time. See
// scripts/smoke.yaml.
//
// [Ebitengine]: https://ebitengine.org
package sinewalk
