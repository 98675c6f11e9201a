package health

import "sync/atomic"

// ready gates the readiness endpoint during graceful shutdown. The server
// flips it off before draining so load balancers stop routing new traffic.
var ready atomic.Bool

func init() {
	ready.Store(true)
}

// SetReady toggles the readiness gate.
func SetReady(v bool) {
	ready.Store(v)
}

// Ready reports the current readiness gate state.
func Ready() bool {
	return ready.Load()
}
