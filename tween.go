package tween

import (
	"fmt"

	"github.com/joeycumines/go-tween/accessor"
	"github.com/joeycumines/go-tween/ease"
	"github.com/joeycumines/go-tween/path"
)

// Tween is a leaf node: it animates between 1..CombinedAttrsLimit scalar
// components of a single target, resolved through the accessor package.
// It is built with one of To, From, Set, Call or Mark, configured with its
// fluent setters, then either added to a Manager via Start or built and
// driven directly through its embedded BaseTween.
type Tween struct {
	BaseTween

	target   any
	typeCode int
	registry *accessor.Registry
	accessor accessor.Accessor

	equation ease.Equation
	pathFn   path.Interpolator

	isFrom     bool
	isRelative bool

	combinedAttrsCnt int
	startValues      []float64
	targetValues     []float64
	waypoints        [][]float64

	valueBuffer []float64
	pathScratch []float64

	builtOK bool
}

// To builds a tween that animates target's typeCode-selected components
// from their current values to whatever Target supplies, over duration
// seconds.
func To(target any, typeCode int, duration float64) *Tween {
	return newTween(target, typeCode, duration)
}

// From builds a tween that animates target's components from whatever
// Target supplies back to their current values - i.e. the inverse of To.
// It is implemented by swapping the sampled start and target arrays once
// initialization has read the current values.
func From(target any, typeCode int, duration float64) *Tween {
	t := newTween(target, typeCode, duration)
	t.isFrom = true
	return t
}

// Set builds a zero-duration tween that snaps target's components to
// whatever Target supplies, the instant it starts.
func Set(target any, typeCode int) *Tween {
	return newTween(target, typeCode, 0)
}

// Call builds a zero-duration tween with no target, whose sole purpose is
// to invoke cb on TriggerStart - a convenient way to schedule a plain
// function call at a point in a Timeline.
func Call(cb Callback) *Tween {
	t := newTween(nil, 0, 0)
	t.callback = cb
	t.callbackTriggers = TriggerStart
	return t
}

// Mark builds a zero-duration, callback-less tween, useful purely as a
// named position inside a Timeline (e.g. to compute a duration via
// FullDuration without attaching behavior).
func Mark() *Tween {
	return newTween(nil, 0, 0)
}

func newTween(target any, typeCode int, duration float64) *Tween {
	if duration < 0 {
		panic(newError(ErrInvalidDuration, "duration must be >= 0"))
	}
	t := getTweenFromPool()
	t.target = target
	t.typeCode = typeCode
	t.duration = duration
	t.equation = ease.Linear
	t.pathFn = path.CatmullRom
	return t
}

// --- fluent configuration; all panic(*Error) if already started ---

// Target declares the final value of each animated component. Calling it
// more than once replaces the previous declaration.
func (t *Tween) Target(values ...float64) *Tween {
	t.requireMutable()
	if len(values) > CombinedAttrsLimit() {
		panic(newError(ErrCombinedAttrsOverflow, fmt.Sprintf("%d values > limit %d", len(values), CombinedAttrsLimit())))
	}
	t.targetValues = append(t.targetValues[:0], values...)
	t.combinedAttrsCnt = len(values)
	t.isRelative = false
	return t
}

// TargetRelative is Target, except each value is added to the
// corresponding start value once sampled at initialization, instead of
// being used as an absolute endpoint.
func (t *Tween) TargetRelative(values ...float64) *Tween {
	t.Target(values...)
	t.isRelative = true
	return t
}

// Waypoint appends an intermediate control point the path Interpolator
// passes through, between the start and target values. Waypoints are
// capped by WaypointsLimit.
func (t *Tween) Waypoint(values ...float64) *Tween {
	t.requireMutable()
	if len(t.waypoints) >= WaypointsLimit() {
		panic(newError(ErrWaypointsOverflow, fmt.Sprintf("more than %d waypoints", WaypointsLimit())))
	}
	cp := make([]float64, len(values))
	copy(cp, values)
	t.waypoints = append(t.waypoints, cp)
	return t
}

// Ease sets the easing equation applied to the normalized iteration
// progress before it is used to blend values. A nil equation (the zero
// value is never valid here, but it can be cleared explicitly) makes the
// tween a silent no-op for value writes, per the fire-and-forget contract.
func (t *Tween) Ease(eq ease.Equation) *Tween {
	t.requireMutable()
	t.equation = eq
	return t
}

// Path selects the curve evaluator used when one or more waypoints are
// present; the default is path.CatmullRom. With a nil Path, the tween
// blends linearly from start to target and its waypoints are ignored.
func (t *Tween) Path(p path.Interpolator) *Tween {
	t.requireMutable()
	t.pathFn = p
	return t
}

// Registry overrides the accessor.Registry consulted at build time,
// instead of accessor.Default.
func (t *Tween) Registry(r *accessor.Registry) *Tween {
	t.requireMutable()
	t.registry = r
	return t
}

func (t *Tween) Delay(seconds float64) *Tween             { t.setDelay(seconds); return t }
func (t *Tween) Repeat(count int, delay float64) *Tween   { t.setRepeat(count, delay); return t }
func (t *Tween) RepeatYoyo(count int, delay float64) *Tween { t.setRepeatYoyo(count, delay); return t }
func (t *Tween) Callback(cb Callback) *Tween               { t.setCallback(cb); return t }
func (t *Tween) CallbackTriggers(mask Trigger) *Tween       { t.setCallbackTriggers(mask); return t }
func (t *Tween) UserData(v any) *Tween                      { t.setUserData(v); return t }
func (t *Tween) Pause() *Tween                              { t.BaseTween.Pause(); return t }
func (t *Tween) Resume() *Tween                             { t.BaseTween.Resume(); return t }

// Kill marks the tween as killed; subsequent Advance calls are no-ops.
func (t *Tween) Kill() { t.killSelf() }

// Build resolves the tween's accessor and allocates its value buffers. It
// is idempotent and is called automatically by Start and by a containing
// Timeline's Build. A tween driven directly through its BaseTween without
// Start must be built first, or it has no accessor and writes no values;
// calling it directly also surfaces a build error (e.g. ErrNoAccessor)
// before scheduling.
func (t *Tween) Build() *Tween {
	if err := t.build(); err != nil {
		panic(err)
	}
	return t
}

// Start builds the tween and, if m is non-nil, adds it to m.
func (t *Tween) Start(m *Manager) *Tween {
	t.Build()
	if m != nil {
		m.Add(t)
	}
	return t
}

// Free resets the tween and returns it to the shared pool. Do not touch t
// after calling Free.
func (t *Tween) Free() {
	t.reset()
	tweenPool.Put(t)
}

func (t *Tween) reset() {
	t.BaseTween.reset()
	t.target = nil
	t.typeCode = 0
	t.registry = nil
	t.accessor = nil
	t.equation = nil
	t.pathFn = nil
	t.isFrom = false
	t.isRelative = false
	t.combinedAttrsCnt = 0
	t.startValues = t.startValues[:0]
	t.targetValues = t.targetValues[:0]
	t.waypoints = t.waypoints[:0]
	t.valueBuffer = t.valueBuffer[:0]
	t.pathScratch = t.pathScratch[:0]
	t.builtOK = false
}

func (t *Tween) ensureBuilt() {
	if err := t.build(); err != nil {
		panic(err)
	}
}

func (t *Tween) build() error {
	if t.builtOK {
		return nil
	}
	if t.target == nil {
		t.builtOK = true
		return nil
	}

	reg := t.registry
	if reg == nil {
		reg = accessor.Default
	}
	acc, ok := reg.Lookup(t.target)
	if !ok {
		logger().Warning().
			Str("target_type", fmt.Sprintf("%T", t.target)).
			Int("type_code", t.typeCode).
			Log("tween: build: no accessor registered for target")
		return newError(ErrNoAccessor, fmt.Sprintf("%T", t.target))
	}
	t.accessor = acc

	limit := CombinedAttrsLimit()
	// The accessor is probed for the component count only when Target has
	// not declared one, so a tween with a declared Target reads nothing
	// from its target before step 0.
	if t.combinedAttrsCnt == 0 {
		probe := make([]float64, limit)
		n := acc.GetValues(t.target, t.typeCode, probe)
		if n > limit {
			return newError(ErrCombinedAttrsOverflow, fmt.Sprintf("accessor reports %d components > limit %d", n, limit))
		}
		if n == 0 {
			logger().Warning().
				Str("target_type", fmt.Sprintf("%T", t.target)).
				Int("type_code", t.typeCode).
				Log("tween: build: accessor reported 0 components for target")
		}
		t.combinedAttrsCnt = n
	}
	if t.combinedAttrsCnt > limit {
		return newError(ErrCombinedAttrsOverflow, fmt.Sprintf("%d > limit %d", t.combinedAttrsCnt, limit))
	}

	t.valueBuffer = make([]float64, t.combinedAttrsCnt)
	t.startValues = make([]float64, t.combinedAttrsCnt)
	if len(t.targetValues) == 0 {
		t.targetValues = make([]float64, t.combinedAttrsCnt)
	}
	if len(t.waypoints) > 0 {
		t.pathScratch = make([]float64, len(t.waypoints)+2)
	}

	t.builtOK = true
	return nil
}

func (t *Tween) initializeOverride() {
	if t.target != nil && t.accessor != nil {
		t.accessor.GetValues(t.target, t.typeCode, t.startValues)
	}
	if t.isRelative {
		for i := range t.targetValues {
			t.targetValues[i] += t.startValues[i]
		}
		for _, wp := range t.waypoints {
			for i := range wp {
				wp[i] += t.startValues[i]
			}
		}
	}
	if t.isFrom {
		t.startValues, t.targetValues = t.targetValues, t.startValues
	}
}

func (t *Tween) enterIteration(int) {}

func (t *Tween) updateOverride(step int, isIteration bool, _ float64) {
	if !isIteration || t.target == nil || t.accessor == nil {
		return
	}
	k := step / 2
	reversed := t.isYoyo && k%2 == 1

	var u float64
	switch {
	case t.duration <= 0:
		if reversed {
			u = 0
		} else {
			u = 1
		}
	case reversed:
		u = (t.duration - t.currentTime) / t.duration
	default:
		u = t.currentTime / t.duration
	}

	if t.equation == nil {
		return
	}
	t.writeValues(t.equation(u))
}

func (t *Tween) writeValues(progress float64) {
	n := t.combinedAttrsCnt
	if n == 0 {
		return
	}
	buf := t.valueBuffer[:n]

	if len(t.waypoints) == 0 || t.pathFn == nil {
		for i := 0; i < n; i++ {
			buf[i] = t.startValues[i] + progress*(t.targetValues[i]-t.startValues[i])
		}
	} else {
		numPts := len(t.waypoints) + 2
		pts := t.pathScratch[:numPts]
		for i := 0; i < n; i++ {
			pts[0] = t.startValues[i]
			for w, wp := range t.waypoints {
				pts[w+1] = wp[i]
			}
			pts[numPts-1] = t.targetValues[i]
			buf[i] = t.pathFn(progress, pts)
		}
	}

	t.accessor.SetValues(t.target, t.typeCode, buf)
}
