// Package kinetic is a small motion and disclosure engine for page-style
// views: scroll-linked styles, staggered list reveals, expandable menus and
// typewriter text.
//
// Everything runs on one goroutine. An [Engine] owns a [Timeline] for coarse
// timers and a list of per-frame subscribers; the host calls
// [Engine.Update] once per rendered frame and reads the resulting values.
//
//	engine := kinetic.NewEngine(logger)
//	defer engine.Dispose()
//
//	cfg := kinetic.DefaultScrollConfig()
//	cfg.Styles.Opacity = kinetic.MustKeyframes(
//		[]float64{0, 0.2, 0.8, 1},
//		[]float64{0, 1, 1, 0},
//	)
//	fx, _ := engine.NewScrollEffect("projects", section, viewport, cfg)
//
//	// each frame
//	engine.Update(dt)
//	style := fx.Style()
//
// # Components
//
// [ProgressTracker] turns an element's position in its viewport into a
// progress value. [Spring] smooths it, [Keyframes] and [StyleMap]
// interpolate it into a [Style]; [ScrollEffect] wires the three together.
//
// [Disclosure] is the open/close state machine for a menu whose children
// must finish exiting before the container shrinks. [StaggeredReveal]
// reveals list items one at a time the first time the list becomes
// visible. [Typewriter] types and deletes a list of words forever.
//
// Every component has a Dispose method that cancels its pending timers and
// frame subscription. [Engine.Dispose] disposes everything created through
// the engine.
//
// # Configuration
//
// [DefaultConfig] holds named presets for every component, loaded from an
// embedded YAML file. [LoadConfig] reads the same format, so presets can be
// overridden per site.
//
// Engine events can be forwarded to a [Donburi] world with the
// kinetic/ecs adapter.
//
// [Donburi]: https://github.com/yohamta/donburi
package kinetic
