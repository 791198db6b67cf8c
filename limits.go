package tween

import "sync/atomic"

// Default process-wide limits, kept deliberately low so that a tween's
// value buffers stay small by default; raise them with
// SetCombinedAttrsLimit / SetWaypointsLimit before building any tween that
// needs more.
const (
	defaultCombinedAttrsLimit = 3
	defaultWaypointsLimit     = 0
)

var (
	combinedAttrsLimit atomic.Int32
	waypointsLimit      atomic.Int32
)

func init() {
	combinedAttrsLimit.Store(defaultCombinedAttrsLimit)
	waypointsLimit.Store(defaultWaypointsLimit)
}

// SetCombinedAttrsLimit raises (or lowers) the process-wide cap on how
// many parallel scalar components a single tween may declare. Existing
// tweens are unaffected; the cap is only consulted while building.
func SetCombinedAttrsLimit(n int) {
	combinedAttrsLimit.Store(int32(n))
}

// CombinedAttrsLimit returns the current process-wide cap set by
// SetCombinedAttrsLimit (default 3).
func CombinedAttrsLimit() int {
	return int(combinedAttrsLimit.Load())
}

// SetWaypointsLimit raises (or lowers) the process-wide cap on how many
// waypoints a single tween may declare.
func SetWaypointsLimit(n int) {
	waypointsLimit.Store(int32(n))
}

// WaypointsLimit returns the current process-wide cap set by
// SetWaypointsLimit (default 0).
func WaypointsLimit() int {
	return int(waypointsLimit.Load())
}
