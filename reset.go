package retro

import (
	"errors"
	"sync"

	"github.com/gogpu/retro/platform"
	"github.com/gogpu/retro/registry"
)

// ErrRestartUnsupported is returned by Reset on platforms whose process
// cannot outlive an engine session.
var ErrRestartUnsupported = errors.New("retro: platform does not support in-place restart")

var resetFunc struct {
	mu sync.Mutex
	fn func()
}

// SetResetFunc registers fn to run on every successful Reset, after the
// registry has been reset and before Init is allowed again. Hosts use it to
// tear down per-session state such as their frame loop or audio device.
// A nil fn removes the hook.
func SetResetFunc(fn func()) {
	resetFunc.mu.Lock()
	resetFunc.fn = fn
	resetFunc.mu.Unlock()
}

// Reset prepares a running host process for a new engine session.
//
// It overwrites every slot of reg (registry.Default if nil) with fresh
// defaults, runs the hook set by SetResetFunc, then releases the
// single-instance gate so Init may succeed again. Handles cloned before the
// reset, including those held by the previous Engine, keep referring to the
// same containers and therefore see the reset contents; see
// registry.Registry.Reset for the details.
//
// Reset is only available when p.SupportsRestart reports true.
func Reset(p platform.Platform, reg *registry.Registry) error {
	if p == nil {
		return ErrNilPlatform
	}
	if !p.SupportsRestart() {
		return ErrRestartUnsupported
	}
	if reg == nil {
		reg = registry.Default()
	}

	reg.Reset()

	resetFunc.mu.Lock()
	fn := resetFunc.fn
	resetFunc.mu.Unlock()
	if fn != nil {
		fn()
	}

	engineGate.release()

	Logger().Info("retro: engine reset", "resets", reg.Resets())
	return nil
}
