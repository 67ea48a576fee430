package core

type AbortReason string

const (
	// The release frame carried no pointer position.
	AbortNoPointer AbortReason = "no_pointer"
	// The release position was not over any port.
	AbortNoPort AbortReason = "no_port"
	// The release position was over a port of the start node.
	AbortSameNode AbortReason = "same_node"
	// A click on empty space replaced the pending connection.
	AbortCanceled AbortReason = "canceled"
)

// GestureEvent describes a gesture transition. Fields that do not apply to
// the event are left zero.
type GestureEvent struct {
	Frame  uint64
	Node   NodeID
	Port   PortID
	Pos    V2
	Target *Endpoint
	Reason AbortReason
}

// Hooks lets callers observe the controller without changing its behavior.
// Any nil callback is skipped.
type Hooks struct {
	OnConnectionStart  func(*GestureEvent)
	OnConnectionCommit func(*GestureEvent)
	OnConnectionAbort  func(*GestureEvent)
	OnDragStart        func(*GestureEvent)
	OnDragEnd          func(*GestureEvent)
	OnResolveError     func(Connection, error)
}

// ChainHooks returns hooks that call each of hs in order.
func ChainHooks(hs ...Hooks) Hooks {
	chain := func(pick func(Hooks) func(*GestureEvent)) func(*GestureEvent) {
		var fns []func(*GestureEvent)
		for _, h := range hs {
			if fn := pick(h); fn != nil {
				fns = append(fns, fn)
			}
		}
		if len(fns) == 0 {
			return nil
		}
		return func(e *GestureEvent) {
			for _, fn := range fns {
				fn(e)
			}
		}
	}

	var resolveFns []func(Connection, error)
	for _, h := range hs {
		if h.OnResolveError != nil {
			resolveFns = append(resolveFns, h.OnResolveError)
		}
	}

	res := Hooks{
		OnConnectionStart:  chain(func(h Hooks) func(*GestureEvent) { return h.OnConnectionStart }),
		OnConnectionCommit: chain(func(h Hooks) func(*GestureEvent) { return h.OnConnectionCommit }),
		OnConnectionAbort:  chain(func(h Hooks) func(*GestureEvent) { return h.OnConnectionAbort }),
		OnDragStart:        chain(func(h Hooks) func(*GestureEvent) { return h.OnDragStart }),
		OnDragEnd:          chain(func(h Hooks) func(*GestureEvent) { return h.OnDragEnd }),
	}
	if len(resolveFns) > 0 {
		res.OnResolveError = func(c Connection, err error) {
			for _, fn := range resolveFns {
				fn(c, err)
			}
		}
	}
	return res
}

func emit(fn func(*GestureEvent), e GestureEvent) {
	if fn != nil {
		fn(&e)
	}
}
