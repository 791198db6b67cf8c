package tween

// Trigger identifies the kind of lifecycle edge that fired a Callback.
// Values are a bitmask so a callback can be registered against a union of
// triggers via CallbackTriggers.
type Trigger uint8

const (
	// TriggerBegin fires exactly once, the first time a tween's step
	// moves from -1 (pre-delay) to 0, forward only.
	TriggerBegin Trigger = 1 << iota
	// TriggerStart fires on every forward entry into an iteration step.
	TriggerStart
	// TriggerEnd fires on every forward exit from an iteration step.
	TriggerEnd
	// TriggerComplete fires once, on the forward transition into the
	// terminal step. It always fires alongside (immediately after) the
	// TriggerEnd of the final iteration.
	TriggerComplete
	// TriggerBackStart fires on every reverse entry into an iteration
	// step (i.e. re-entering from above, moving backward in time).
	TriggerBackStart
	// TriggerBackEnd fires on every reverse exit from an iteration step.
	TriggerBackEnd
	// TriggerBackComplete fires on the reverse transition out of step 0
	// into pre-delay. It always fires alongside (immediately after) the
	// TriggerBackEnd of the first iteration.
	TriggerBackComplete

	// TriggerAny matches every trigger above; registering a callback
	// with this mask observes the full lifecycle.
	TriggerAny = TriggerBegin | TriggerStart | TriggerEnd | TriggerComplete |
		TriggerBackStart | TriggerBackEnd | TriggerBackComplete
)

func (t Trigger) String() string {
	switch t {
	case TriggerBegin:
		return "BEGIN"
	case TriggerStart:
		return "START"
	case TriggerEnd:
		return "END"
	case TriggerComplete:
		return "COMPLETE"
	case TriggerBackStart:
		return "BACK_START"
	case TriggerBackEnd:
		return "BACK_END"
	case TriggerBackComplete:
		return "BACK_COMPLETE"
	default:
		return "UNKNOWN"
	}
}

// Tweener is implemented by both *Tween and *Timeline, and is the type a
// Callback receives: the concrete node that fired the trigger. The
// interface is deliberately sealed (via the unexported ensureBuilt) to the
// two kinds this package defines; the engine never has to cope with a
// third, foreign implementation.
type Tweener interface {
	// Base returns the shared timing state machine embedded in the
	// concrete node.
	Base() *BaseTween
	// Kill marks the node (and, for a Timeline, its children) as killed;
	// see Tween.Kill and Timeline.Kill for the exact contract.
	Kill()

	ensureBuilt()
}

// Callback observes lifecycle transitions of a tween or timeline. It runs
// synchronously on the caller's goroutine, inside Advance; it must not
// call Advance (directly or via Manager.Update) on any tween reachable
// from the one that invoked it, including itself - doing so is a
// reentrancy bug. It may freely call Kill, including on its own node or a
// containing timeline.
type Callback func(trigger Trigger, node Tweener)
