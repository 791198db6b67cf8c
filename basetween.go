package tween

import "math"

// Infinite is the sentinel RepeatCount meaning "repeat forever". A tween or
// timeline configured with Infinite never reaches its terminal step while
// advancing forward.
const Infinite = -1

// body is implemented by the two concrete node kinds (*Tween, *Timeline)
// and supplies the behavior BaseTween's timing state machine delegates to
// at well-defined points, instead of relying on a deeper class hierarchy.
type body interface {
	// initializeOverride runs exactly once, the first time the node's
	// step transitions from -1 into 0.
	initializeOverride()
	// updateOverride runs once per Advance-internal step that lands (or
	// momentarily clamps) inside an iteration window. isIteration is
	// always true when this is called from an iteration step; it is
	// part of the signature so a single implementation can be reused
	// defensively. delta is the portion of the call's signed time delta
	// that was actually consumed while inside this step (already
	// clamped at the step's boundary when the call is an overflow or
	// underflow).
	updateOverride(step int, isIteration bool, delta float64)
	// enterIteration runs every time the node transitions into iteration
	// index k (k = step/2), in either time direction, including the
	// very first entry. Tween ignores it; Timeline uses it to rewind
	// its children ahead of replaying them.
	enterIteration(k int)
}

// selfBinder is the internal pairing of the public Tweener surface with
// the private body hooks; BaseTween holds one so it can dispatch back to
// whichever concrete node embeds it.
type selfBinder interface {
	Tweener
	body
}

// BaseTween is the timing state machine shared by Tween and Timeline: it
// owns delay, repeat, repeat-delay, yoyo, the current step/time cursor,
// and lifecycle callback dispatch. This type intentionally has no
// knowledge of what a "step" animates, only when things happen.
type BaseTween struct {
	self selfBinder

	duration    float64
	repeatCount int
	repeatDelay float64
	delay       float64
	isYoyo      bool

	step        int
	currentTime float64

	isStarted     bool
	isInitialized bool
	isFinished    bool
	isKilled      bool
	isPaused      bool

	callback         Callback
	callbackTriggers Trigger
	userData         any
}

// Base returns b itself; it exists so BaseTween satisfies the Base() method
// required by Tweener once embedded in Tween or Timeline.
func (b *BaseTween) Base() *BaseTween { return b }

func (b *BaseTween) bind(self selfBinder) {
	b.self = self
}

func (b *BaseTween) reset() {
	self := b.self
	*b = BaseTween{}
	b.self = self
	b.step = -1
}

// --- read-only state ---

func (b *BaseTween) Duration() float64         { return b.duration }
func (b *BaseTween) RepeatCount() int          { return b.repeatCount }
func (b *BaseTween) RepeatDelay() float64      { return b.repeatDelay }
func (b *BaseTween) Delay() float64            { return b.delay }
func (b *BaseTween) IsYoyo() bool              { return b.isYoyo }
func (b *BaseTween) Step() int                 { return b.step }
func (b *BaseTween) CurrentTime() float64      { return b.currentTime }
func (b *BaseTween) IsStarted() bool           { return b.isStarted }
func (b *BaseTween) IsInitialized() bool       { return b.isInitialized }
func (b *BaseTween) IsFinished() bool          { return b.isFinished }
func (b *BaseTween) IsKilled() bool            { return b.isKilled }
func (b *BaseTween) IsPaused() bool            { return b.isPaused }
func (b *BaseTween) CallbackTriggers() Trigger { return b.callbackTriggers }
func (b *BaseTween) UserData() any             { return b.userData }

// NormalTime reports the current position within the active iteration,
// normalized to [0,1]. It is 0 while in pre-delay or a repeat-delay, and 1
// once finished.
func (b *BaseTween) NormalTime() float64 {
	if b.isFinished {
		return 1
	}
	if !b.isIterationStep(b.step) {
		return 0
	}
	if b.duration <= 0 {
		return 1
	}
	return b.currentTime / b.duration
}

// FullDuration is the total time this node takes to run from pre-delay to
// terminal: delay + (1+repeatCount)*duration + repeatCount*repeatDelay.
func (b *BaseTween) FullDuration() float64 {
	if b.isInfiniteRepeat() {
		return math.Inf(1)
	}
	return b.delay + float64(1+b.repeatCount)*b.duration + float64(b.repeatCount)*b.repeatDelay
}

// --- builder-side mutators; all panic with *Error(ErrMutateAfterStart) if
// the node has already been started ---

func (b *BaseTween) requireMutable() {
	if b.isStarted {
		panic(newError(ErrMutateAfterStart, ""))
	}
}

func (b *BaseTween) setDelay(seconds float64) {
	b.requireMutable()
	if seconds < 0 {
		panic(newError(ErrInvalidDuration, "delay must be >= 0"))
	}
	b.delay = seconds
}

func (b *BaseTween) setRepeat(count int, delay float64) {
	b.requireMutable()
	if count != Infinite && count < 0 {
		panic(newError(ErrInvalidDuration, "repeat count must be >= 0 or Infinite"))
	}
	if delay < 0 {
		panic(newError(ErrInvalidDuration, "repeat delay must be >= 0"))
	}
	b.repeatCount = count
	b.repeatDelay = delay
	b.isYoyo = false
}

func (b *BaseTween) setRepeatYoyo(count int, delay float64) {
	b.setRepeat(count, delay)
	b.isYoyo = true
}

func (b *BaseTween) setCallback(cb Callback) {
	b.requireMutable()
	b.callback = cb
}

func (b *BaseTween) setCallbackTriggers(mask Trigger) {
	b.requireMutable()
	b.callbackTriggers = mask
}

func (b *BaseTween) setUserData(v any) {
	b.requireMutable()
	b.userData = v
}

// Pause short-circuits Advance until Resume is called. It does not cascade
// to children: a Timeline's children simply never see a delta while the
// parent is paused.
func (b *BaseTween) Pause() { b.isPaused = true }

// Resume undoes Pause.
func (b *BaseTween) Resume() { b.isPaused = false }

func (b *BaseTween) killSelf() { b.isKilled = true }

// --- internals of the state machine ---

func (b *BaseTween) isInfiniteRepeat() bool { return b.repeatCount == Infinite }

func (b *BaseTween) terminalStep() int { return 2*(1+b.repeatCount) + 1 }

func (b *BaseTween) isTerminalStep(step int) bool {
	return !b.isInfiniteRepeat() && step == b.terminalStep()
}

func (b *BaseTween) isIterationStep(step int) bool {
	return step >= 0 && step%2 == 0 && !b.isTerminalStep(step)
}

func (b *BaseTween) fire(trigger Trigger) {
	if b.callback == nil || b.callbackTriggers&trigger == 0 {
		return
	}
	b.callback(trigger, b.self)
}

// Advance moves the state machine forward (delta > 0) or backward
// (delta < 0) by delta seconds, crossing as many step boundaries as
// necessary and firing every callback that the crossing implies. It is a
// no-op once Kill has been observed, and also while paused.
func (b *BaseTween) Advance(delta float64) {
	if b.isKilled || b.isPaused {
		return
	}
	b.isStarted = true
	remaining := delta
	for {
		var leftover float64
		switch {
		case b.step == -1:
			leftover = b.advancePreDelay(remaining)
		case b.isTerminalStep(b.step):
			leftover = b.advanceTerminal(remaining)
		case b.step%2 == 0:
			leftover = b.advanceIteration(remaining)
		default:
			leftover = b.advanceRepeatDelay(remaining)
		}
		if b.isKilled || leftover == 0 {
			return
		}
		remaining = leftover
	}
}

func (b *BaseTween) advancePreDelay(remaining float64) float64 {
	b.currentTime += remaining
	if remaining >= 0 {
		if b.currentTime >= b.delay {
			leftover := b.currentTime - b.delay
			b.enterStep0()
			if b.isKilled {
				return 0
			}
			// run the iteration even for a zero leftover, so entering step 0
			// writes the iteration's starting values
			return b.advanceIteration(leftover)
		}
		return 0
	}
	if b.currentTime < 0 {
		b.currentTime = 0
	}
	return 0
}

func (b *BaseTween) enterStep0() {
	if !b.isInitialized {
		b.isInitialized = true
		b.self.initializeOverride()
		b.fire(TriggerBegin)
		if b.isKilled {
			return
		}
	}
	b.step = 0
	b.currentTime = 0
	b.self.enterIteration(0)
	b.fire(TriggerStart)
}

func (b *BaseTween) advanceIteration(remaining float64) float64 {
	k := b.step / 2
	prevCT := b.currentTime
	b.currentTime += remaining

	switch {
	case remaining >= 0 && b.currentTime >= b.duration:
		leftover := b.currentTime - b.duration
		localDelta := b.duration - prevCT
		b.currentTime = b.duration
		b.self.updateOverride(b.step, true, localDelta)
		if b.isKilled {
			return 0
		}
		b.fire(TriggerEnd)
		if b.isKilled {
			return 0
		}
		if b.hasNextIteration(k) {
			b.step++
			b.currentTime = 0
		} else {
			b.step = b.terminalStep()
			b.isFinished = true
			b.fire(TriggerComplete)
			if b.isKilled {
				return 0
			}
		}
		return leftover

	case remaining < 0 && b.currentTime <= 0:
		leftover := b.currentTime
		localDelta := -prevCT
		b.currentTime = 0
		b.self.updateOverride(b.step, true, localDelta)
		if b.isKilled {
			return 0
		}
		b.fire(TriggerBackEnd)
		if b.isKilled {
			return 0
		}
		if k == 0 {
			b.step = -1
			b.currentTime = b.delay
			b.fire(TriggerBackComplete)
			if b.isKilled {
				return 0
			}
		} else {
			b.step--
			b.currentTime = b.repeatDelay
		}
		return leftover

	default:
		b.self.updateOverride(b.step, true, remaining)
		return 0
	}
}

func (b *BaseTween) advanceRepeatDelay(remaining float64) float64 {
	b.currentTime += remaining
	if remaining >= 0 {
		if b.currentTime > b.repeatDelay {
			leftover := b.currentTime - b.repeatDelay
			k := (b.step-1)/2 + 1
			b.step++
			b.currentTime = 0
			b.self.enterIteration(k)
			b.fire(TriggerStart)
			if b.isKilled {
				return 0
			}
			return leftover
		}
		return 0
	}
	if b.currentTime < 0 {
		leftover := b.currentTime
		k := (b.step - 1) / 2
		b.step--
		b.currentTime = b.duration
		b.self.enterIteration(k)
		b.fire(TriggerBackStart)
		if b.isKilled {
			return 0
		}
		return leftover
	}
	return 0
}

func (b *BaseTween) advanceTerminal(remaining float64) float64 {
	if remaining >= 0 {
		return 0
	}
	b.isFinished = false
	b.step = 2 * b.repeatCount
	b.currentTime = b.duration
	b.self.enterIteration(b.repeatCount)
	b.fire(TriggerBackStart)
	if b.isKilled {
		return 0
	}
	return remaining
}

func (b *BaseTween) hasNextIteration(k int) bool {
	if b.isInfiniteRepeat() {
		return true
	}
	return k < b.repeatCount
}

// primeForForwardReplay rewinds the node to its pristine pre-start state,
// so that feeding it positive deltas replays it from the beginning. Used
// by a parent Timeline when (re-)entering a non-yoyo-reversed iteration.
func (b *BaseTween) primeForForwardReplay() {
	b.isStarted = false
	b.isFinished = false
	b.step = -1
	b.currentTime = 0
}

// primeForBackwardReplay rewinds the node to its terminal state, so that
// feeding it negative deltas replays it backward from the end. Used by a
// parent Timeline when (re-)entering a yoyo-reversed iteration.
func (b *BaseTween) primeForBackwardReplay() {
	b.isStarted = true
	b.isFinished = true
	if b.isInfiniteRepeat() {
		b.step = 0
	} else {
		b.step = b.terminalStep()
	}
	b.currentTime = 0
}
