package tween

import "golang.org/x/exp/slices"

// Manager owns a set of root-level Tween and Timeline nodes and drives
// them all from a single Update call per frame, removing each one once it
// is finished or killed. It is the usual entry point for an application's
// per-frame loop; nodes not added to a Manager can still be driven
// directly via their own Base().Advance.
type Manager struct {
	roots  []Tweener
	paused bool
}

// NewManager returns an empty, running Manager.
func NewManager() *Manager {
	return &Manager{}
}

// Add registers root, building it first if it has not been built yet. A
// node already present is not added twice.
func (m *Manager) Add(root Tweener) {
	if root == nil {
		return
	}
	root.ensureBuilt()
	if slices.Contains(m.roots, root) {
		return
	}
	m.roots = append(m.roots, root)
}

// Update advances every registered, non-paused root by delta seconds, then
// drops any root that finished or was killed during this pass. It is a
// no-op while the manager itself is paused.
func (m *Manager) Update(delta float64) {
	if m.paused {
		return
	}
	for _, root := range m.roots {
		b := root.Base()
		if b.isPaused {
			continue
		}
		b.Advance(delta)
	}
	m.roots = slices.DeleteFunc(m.roots, func(t Tweener) bool {
		b := t.Base()
		return b.isKilled || b.isFinished
	})
}

// KillAll kills every root (and, transitively, every descendant) currently
// registered.
func (m *Manager) KillAll() {
	for _, root := range m.roots {
		root.Kill()
	}
}

// KillTarget kills every Tween in the manager (at any nesting depth) whose
// target is target. When typeCodes is empty, any typeCode on that target
// matches; otherwise only the listed typeCodes match. It reports whether
// any tween matched.
func (m *Manager) KillTarget(target any, typeCodes ...int) bool {
	found := false
	for _, root := range m.roots {
		if killTargetIn(root, target, typeCodes) {
			found = true
		}
	}
	return found
}

// ContainsTarget reports whether any registered Tween (at any nesting
// depth) targets target, under the same typeCodes matching rule as
// KillTarget.
func (m *Manager) ContainsTarget(target any, typeCodes ...int) bool {
	for _, root := range m.roots {
		if containsTargetIn(root, target, typeCodes) {
			return true
		}
	}
	return false
}

func killTargetIn(node Tweener, target any, typeCodes []int) bool {
	found := false
	if t, ok := node.(*Tween); ok && matchesTarget(t, target, typeCodes) {
		t.Kill()
		found = true
	}
	if tl, ok := node.(*Timeline); ok {
		for _, c := range tl.children {
			if killTargetIn(c, target, typeCodes) {
				found = true
			}
		}
	}
	return found
}

func containsTargetIn(node Tweener, target any, typeCodes []int) bool {
	if t, ok := node.(*Tween); ok && matchesTarget(t, target, typeCodes) {
		return true
	}
	if tl, ok := node.(*Timeline); ok {
		for _, c := range tl.children {
			if containsTargetIn(c, target, typeCodes) {
				return true
			}
		}
	}
	return false
}

func matchesTarget(t *Tween, target any, typeCodes []int) bool {
	if t.target != target {
		return false
	}
	if len(typeCodes) == 0 {
		return true
	}
	for _, tc := range typeCodes {
		if tc == t.typeCode {
			return true
		}
	}
	return false
}

// Pause stops Update from advancing anything, without altering any root's
// own paused flag.
func (m *Manager) Pause() { m.paused = true }

// Resume undoes Pause.
func (m *Manager) Resume() { m.paused = false }

// Size returns the number of root-level nodes currently registered.
func (m *Manager) Size() int { return len(m.roots) }

// RunningTweensCount returns the number of live (not finished, not killed)
// Tween leaves reachable from the manager's roots, at any nesting depth.
func (m *Manager) RunningTweensCount() int {
	n := 0
	for _, root := range m.roots {
		n += countRunning(root, true, false)
	}
	return n
}

// RunningTimelinesCount is RunningTweensCount's counterpart for Timeline
// nodes.
func (m *Manager) RunningTimelinesCount() int {
	n := 0
	for _, root := range m.roots {
		n += countRunning(root, false, true)
	}
	return n
}

func countRunning(node Tweener, countTweens, countTimelines bool) int {
	b := node.Base()
	n := 0
	switch tl := node.(type) {
	case *Timeline:
		if countTimelines && !b.isKilled && !b.isFinished {
			n++
		}
		for _, c := range tl.children {
			n += countRunning(c, countTweens, countTimelines)
		}
	case *Tween:
		if countTweens && !b.isKilled && !b.isFinished {
			n++
		}
	}
	return n
}
