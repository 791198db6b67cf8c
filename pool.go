package tween

import "sync"

var (
	tweenPool = sync.Pool{New: func() any { return new(Tween) }}
	timelinePool = sync.Pool{New: func() any { return new(Timeline) }}
)

// EnsurePoolCapacity pre-warms the Tween and Timeline pools with n spare
// instances each, so the first n concurrent animations of each kind avoid
// an allocation. It is a soft hint, not a hard cap - sync.Pool is free to
// drop any of these between calls (notably across a GC), and the pools
// grow past n on demand regardless.
func EnsurePoolCapacity(n int) {
	tweens := make([]*Tween, 0, n)
	for i := 0; i < n; i++ {
		tweens = append(tweens, tweenPool.Get().(*Tween))
	}
	for _, t := range tweens {
		tweenPool.Put(t)
	}

	timelines := make([]*Timeline, 0, n)
	for i := 0; i < n; i++ {
		timelines = append(timelines, timelinePool.Get().(*Timeline))
	}
	for _, tl := range timelines {
		timelinePool.Put(tl)
	}
}

func getTweenFromPool() *Tween {
	t := tweenPool.Get().(*Tween)
	t.reset()
	t.bind(t)
	return t
}

func getTimelineFromPool() *Timeline {
	tl := timelinePool.Get().(*Timeline)
	tl.reset()
	tl.bind(tl)
	return tl
}
