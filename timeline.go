package tween

// Mode selects how a Timeline schedules its children.
type Mode int

const (
	// ModeSequence runs children one after another: each child's delay is
	// set, at build time, to the sum of its older siblings' FullDuration.
	ModeSequence Mode = iota
	// ModeParallel runs every child from offset zero, concurrently; the
	// timeline's own duration is the longest child's FullDuration.
	ModeParallel
)

// Timeline is a composite node: it owns an ordered list of children
// (Tween or nested Timeline) and forwards to every child the part of each
// delta it spends inside one of its own iterations (negated in a
// yoyo-reversed iteration), relying on BaseTween's own pre-delay and
// terminal handling to realize both SEQUENCE and PARALLEL scheduling -
// see Build for how that delay is computed.
type Timeline struct {
	BaseTween

	mode     Mode
	children []Tweener
	parent   *Timeline
	builtOK  bool
}

// Sequence starts a new root Timeline that runs its children one after
// another.
func Sequence() *Timeline { return newTimeline(ModeSequence) }

// Parallel starts a new root Timeline that runs all of its children
// concurrently.
func Parallel() *Timeline { return newTimeline(ModeParallel) }

func newTimeline(mode Mode) *Timeline {
	tl := getTimelineFromPool()
	tl.mode = mode
	return tl
}

// Push appends child to the timeline. child must not already be started,
// and must not (directly or through nesting) be this timeline itself.
func (tl *Timeline) Push(child Tweener) *Timeline {
	tl.requireMutable()
	if child == nil {
		return tl
	}
	if child.Base().isStarted {
		panic(newError(ErrBadNesting, "cannot push an already-started tween or timeline"))
	}
	if childTl, ok := child.(*Timeline); ok {
		if childTl == tl || timelineContains(childTl, tl) {
			panic(newError(ErrBadNesting, "circular timeline composition"))
		}
	}
	tl.children = append(tl.children, child)
	return tl
}

func timelineContains(root, target *Timeline) bool {
	for _, c := range root.children {
		childTl, ok := c.(*Timeline)
		if !ok {
			continue
		}
		if childTl == target || timelineContains(childTl, target) {
			return true
		}
	}
	return false
}

// BeginSequence pushes a new nested sequence timeline and returns it, open
// for further Push/Begin calls. Pair with End to resume building the
// parent.
func (tl *Timeline) BeginSequence() *Timeline { return tl.begin(ModeSequence) }

// BeginParallel pushes a new nested parallel timeline and returns it, open
// for further Push/Begin calls. Pair with End to resume building the
// parent.
func (tl *Timeline) BeginParallel() *Timeline { return tl.begin(ModeParallel) }

func (tl *Timeline) begin(mode Mode) *Timeline {
	child := newTimeline(mode)
	child.parent = tl
	tl.Push(child)
	return child
}

// End closes the current nested timeline and returns its parent, for
// continued building. Calling End with no matching Begin is a usage
// error.
func (tl *Timeline) End() *Timeline {
	if tl.parent == nil {
		panic(newError(ErrBadNesting, "End called without a matching Begin"))
	}
	p := tl.parent
	tl.parent = nil
	return p
}

func (tl *Timeline) Delay(seconds float64) *Timeline               { tl.setDelay(seconds); return tl }
func (tl *Timeline) Repeat(count int, delay float64) *Timeline     { tl.setRepeat(count, delay); return tl }
func (tl *Timeline) RepeatYoyo(count int, delay float64) *Timeline { tl.setRepeatYoyo(count, delay); return tl }
func (tl *Timeline) Callback(cb Callback) *Timeline                 { tl.setCallback(cb); return tl }
func (tl *Timeline) CallbackTriggers(mask Trigger) *Timeline        { tl.setCallbackTriggers(mask); return tl }
func (tl *Timeline) UserData(v any) *Timeline                       { tl.setUserData(v); return tl }
func (tl *Timeline) Pause() *Timeline                               { tl.BaseTween.Pause(); return tl }
func (tl *Timeline) Resume() *Timeline                              { tl.BaseTween.Resume(); return tl }

// Kill marks the timeline, and every descendant, as killed.
func (tl *Timeline) Kill() {
	tl.killSelf()
	for _, c := range tl.children {
		c.Kill()
	}
}

// Build computes this timeline's own duration and every child's delay,
// recursively building nested timelines and leaf tweens. It is idempotent
// and runs automatically from Start. A timeline driven directly through
// its BaseTween without Start must be built first; calling it directly
// also surfaces a build error (e.g. a descendant Tween's ErrNoAccessor)
// eagerly.
func (tl *Timeline) Build() *Timeline {
	if tl.builtOK {
		return tl
	}
	tl.builtOK = true

	var cursor, longest float64
	for _, c := range tl.children {
		b := c.Base()
		switch tl.mode {
		case ModeSequence:
			b.delay = cursor
		case ModeParallel:
			b.delay = 0
		}
		c.ensureBuilt()
		d := b.FullDuration()
		// d includes the delay just assigned, so in a sequence it is also
		// where this child ends and the next one starts
		cursor = d
		if d > longest {
			longest = d
		}
	}
	switch tl.mode {
	case ModeSequence:
		tl.duration = cursor
	case ModeParallel:
		tl.duration = longest
	}
	return tl
}

// Start builds the timeline and, if m is non-nil, adds it to m.
func (tl *Timeline) Start(m *Manager) *Timeline {
	tl.Build()
	if m != nil {
		m.Add(tl)
	}
	return tl
}

// Free frees every child transitively, then resets the timeline and
// returns it to the shared pool, per the ownership rule that a Timeline
// exclusively owns its children.
func (tl *Timeline) Free() {
	for _, c := range tl.children {
		switch node := c.(type) {
		case *Tween:
			node.Free()
		case *Timeline:
			node.Free()
		}
	}
	tl.reset()
	timelinePool.Put(tl)
}

func (tl *Timeline) reset() {
	tl.BaseTween.reset()
	tl.mode = ModeSequence
	tl.children = tl.children[:0]
	tl.parent = nil
	tl.builtOK = false
}

func (tl *Timeline) ensureBuilt() { tl.Build() }

func (tl *Timeline) initializeOverride() {}

func (tl *Timeline) enterIteration(k int) {
	reversed := tl.isYoyo && k%2 == 1
	for _, c := range tl.children {
		if reversed {
			c.Base().primeForBackwardReplay()
		} else {
			c.Base().primeForForwardReplay()
		}
	}
}

func (tl *Timeline) updateOverride(step int, isIteration bool, delta float64) {
	if !isIteration {
		return
	}
	k := step / 2
	childDelta := delta
	if tl.isYoyo && k%2 == 1 {
		childDelta = -delta
	}

	if delta >= 0 {
		for _, c := range tl.children {
			c.Base().Advance(childDelta)
		}
	} else {
		for i := len(tl.children) - 1; i >= 0; i-- {
			tl.children[i].Base().Advance(childDelta)
		}
	}
}
