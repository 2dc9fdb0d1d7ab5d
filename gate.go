package retro

import "sync/atomic"

// gateState is the single-instance state of the engine.
type gateState int32

const (
	stateUninitialized gateState = iota
	stateInitialized
)

// gate allows Uninitialized -> Initialized through acquire and
// Initialized -> Uninitialized through release. Initialized -> Initialized
// is rejected.
type gate struct {
	state atomic.Int32
}

// acquire moves the gate to Initialized. It reports false if the gate was
// already Initialized.
func (g *gate) acquire() bool {
	return g.state.CompareAndSwap(int32(stateUninitialized), int32(stateInitialized))
}

func (g *gate) release() {
	g.state.Store(int32(stateUninitialized))
}

func (g *gate) load() gateState {
	return gateState(g.state.Load())
}

// engineGate guards the one live Engine per process.
var engineGate gate

// Initialized reports whether an Engine has been created and not yet reset.
func Initialized() bool {
	return engineGate.load() == stateInitialized
}
