// Package tween is an interpolation and scheduling engine: it animates
// arbitrary Go values over time by reading and writing them through a
// pluggable accessor, composes individual tweens into sequential and
// parallel timelines, and drives the whole tree from a single per-frame
// delta.
//
// # Architecture
//
// Two concrete node kinds share one timing state machine, BaseTween, and a
// Manager drives them:
//
//   - Tween (tween.go) is a leaf: it interpolates 1..CombinedAttrsLimit
//     scalar components of one target between a start and target value,
//     optionally through one or more Waypoint control points via a
//     path.Interpolator, shaped by an ease.Equation.
//   - Timeline (timeline.go) is a composite: it holds an ordered list of
//     children (Tween or nested Timeline) and runs them either in
//     ModeSequence or ModeParallel, by giving each child the right delay
//     at Build time and then forwarding to every child the part of its
//     delta spent inside its own iterations - each child's own pre-delay
//     and terminal-step handling does the rest.
//   - Manager (manager.go) owns a set of root nodes and advances them all
//     from one Update(delta) call per frame, dropping each root once it
//     finishes or is killed.
//
// BaseTween itself (basetween.go) knows nothing about what a "step"
// animates; it only tracks delay, repeat count, repeat-delay, yoyo, and
// the current step/time cursor, and dispatches to the owning node's body
// hooks (initializeOverride, updateOverride, enterIteration) and to the
// configured Callback at the right points. A tagged, composition-based
// split - BaseTween embedded by Tween and Timeline, dispatching through
// the small body interface - stands in for what would otherwise be a
// deeper class hierarchy with virtual update/initialize methods.
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent use from multiple
// goroutines without external synchronization: a Manager and every node
// reachable from it are meant to be owned by a single "frame loop"
// goroutine, matching how the underlying accessor.Registry, the
// process-wide limits (limits.go) and the package logger (logging.go) are
// themselves read under far cheaper synchronization than would be needed
// for per-frame concurrent mutation.
//
// # Execution Model
//
// A node is configured through its fluent builder methods, then either
// started directly (node.Start(manager)) or added once built
// (manager.Add(node)). From then on, advancing the owning Manager (or,
// for an unmanaged node, calling node.Base().Advance(delta) directly)
// is the only supported way to progress time; Callback is invoked
// synchronously, inline, and must not re-enter Advance on any node
// reachable from the one that invoked it.
//
// # Usage
//
//	m := tween.NewManager()
//	tween.To(ball, axisXY, 1.5).
//		Ease(ease.QuadInOut).
//		Target(400, 0).
//		Callback(func(tr tween.Trigger, n tween.Tweener) {
//			if tr == tween.TriggerComplete {
//				n.(*tween.Tween).Free()
//			}
//		}).
//		CallbackTriggers(tween.TriggerComplete).
//		Start(m)
//
//	// once per frame:
//	m.Update(deltaSeconds)
package tween
