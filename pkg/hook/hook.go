// Package hook installs and removes inline hooks on live functions. The
// first five bytes of the target are replaced with a near jump to an
// interceptor, and a trampoline holding the displaced bytes keeps the
// original callable for the whole lifetime of the hook.
package hook

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// State of a Hook. Transitions run strictly
// Uninstalled -> Installing -> Installed -> Removing -> Uninstalled.
type State int32

const (
	Uninstalled State = iota
	Installing
	Installed
	Removing
)

func (s State) String() string {
	switch s {
	case Uninstalled:
		return "uninstalled"
	case Installing:
		return "installing"
	case Installed:
		return "installed"
	case Removing:
		return "removing"
	}
	return "unknown"
}

var (
	// ErrTargetNotFound means the target module is not loaded or does
	// not export the requested symbol.
	ErrTargetNotFound = errors.New("target module or export not found")
	// ErrBadPrologue means the target entry bytes cannot be relocated.
	ErrBadPrologue = errors.New("unsupported prologue at target")
	// ErrDisplacement means a jump does not encode as rel32.
	ErrDisplacement = errors.New("jump displacement does not fit in 32 bits")
	// ErrAlreadyInstalled means Install ran on a non-idle hook.
	ErrAlreadyInstalled = errors.New("hook already installed")
	// ErrNotInstalled means Remove or a call-through ran on an idle hook.
	ErrNotInstalled = errors.New("hook not installed")
)

const (
	// defaultDrainSettle gives a thread that has taken the patched jump
	// but not yet bumped the in-flight counter a moment to show up.
	defaultDrainSettle = 10 * time.Millisecond
	// defaultDrainTimeout bounds how long removal waits for in-flight
	// interceptor calls to leave before leaking the trampoline.
	defaultDrainTimeout = time.Second

	drainPoll = time.Millisecond
)

// A Hook owns everything one installed patch needs: the resolved target,
// the saved prologue bytes, the optional relay and the trampoline.
// Separate Hook values are fully independent; there is no package-level
// hook table.
//
// The interceptor runs on whatever thread calls the hooked function and
// the installer/remover runs elsewhere, so the flags below are the only
// synchronization between them. The interceptor must bracket itself with
// Enter/Exit and forward through the trampoline exactly once per call.
type Hook struct {
	module, proc string
	target       uintptr
	interceptor  uintptr

	prologue [PatchSize]byte
	relay    *execBlock
	tramp    *Trampoline

	state    atomic.Int32
	down     atomic.Bool
	inflight atomic.Int64

	drainSettle  time.Duration
	drainTimeout time.Duration
}

// New prepares a hook on a named export of an already-loaded module.
// Nothing is resolved or written until Install.
func New(module, proc string, interceptor uintptr) *Hook {
	return &Hook{
		module:       module,
		proc:         proc,
		interceptor:  interceptor,
		drainSettle:  defaultDrainSettle,
		drainTimeout: defaultDrainTimeout,
	}
}

// NewForAddress prepares a hook on a function known only by address.
func NewForAddress(target, interceptor uintptr) *Hook {
	h := New("", "", interceptor)
	h.target = target
	return h
}

// State returns the current lifecycle state.
func (h *Hook) State() State {
	return State(h.state.Load())
}

// Installed reports whether the patch is live.
func (h *Hook) Installed() bool {
	return h.State() == Installed
}

// TargetAddr is the resolved entry address, zero before Install.
func (h *Hook) TargetAddr() uintptr {
	return h.target
}

// Original returns the callable trampoline entry. It is zero before
// installation and after a clean removal; after a removal that timed
// out draining it still points at the leaked trampoline, so a call
// caught inside its Enter/Exit bracket can always forward.
func (h *Hook) Original() uintptr {
	t := h.tramp
	if t == nil {
		return 0
	}
	return t.Addr()
}

// Enter brackets one interceptor call and reports whether non-essential
// work (overlay, lazy setup) may run. The call must still be forwarded
// through the trampoline exactly once regardless of the result.
func (h *Hook) Enter() bool {
	h.inflight.Add(1)
	return !h.down.Load()
}

// Exit closes the bracket opened by Enter.
func (h *Hook) Exit() {
	h.inflight.Add(-1)
}

// ShuttingDown reports whether teardown has begun.
func (h *Hook) ShuttingDown() bool {
	return h.down.Load()
}

// SignalShutdown publishes the shutdown flag ahead of Remove. Remove
// sets the flag itself; callers with teardown of their own to run
// between the flag flip and the byte restore call this first.
func (h *Hook) SignalShutdown() {
	h.down.Store(true)
}

// Install resolves the target, saves its prologue, builds the trampoline
// (and a relay when the interceptor is out of rel32 range) and only then
// writes the five-byte patch. On any failure before the patch write the
// target is left untouched and the hook returns to Uninstalled.
func (h *Hook) Install() error {
	if !h.state.CompareAndSwap(int32(Uninstalled), int32(Installing)) {
		return ErrAlreadyInstalled
	}
	h.down.Store(false)
	// Blocks leaked by a timed-out removal are dropped here, once no
	// bracket from the previous cycle can still be open.
	h.relay = nil
	h.tramp = nil
	if err := h.install(); err != nil {
		h.state.Store(int32(Uninstalled))
		return err
	}
	h.state.Store(int32(Installed))
	return nil
}

func (h *Hook) install() error {
	addr := h.target
	if addr == 0 {
		a, err := resolveExport(h.module, h.proc)
		if err != nil {
			return err
		}
		addr = a
	}

	code := readMemory(addr, prologueScan)
	if err := validatePatchRegion(code, disasmMode); err != nil {
		return err
	}
	copy(h.prologue[:], code)

	dest := h.interceptor
	var relay *execBlock
	if !reachable(addr, dest) {
		r, err := newRelay(addr, dest)
		if err != nil {
			return err
		}
		if !reachable(addr, r.Addr()) {
			r.release()
			return errors.Wrap(ErrDisplacement, "relay out of range")
		}
		relay, dest = r, r.Addr()
	}

	tramp, err := newTrampoline(addr, h.prologue)
	if err != nil {
		relay.release()
		return err
	}

	patch, err := jumpTo(addr, dest)
	if err != nil {
		tramp.Release()
		relay.release()
		return err
	}
	if err := applyPatch(addr, patch[:]); err != nil {
		tramp.Release()
		relay.release()
		return errors.Wrap(err, "patch target")
	}

	h.target = addr
	h.relay = relay
	h.tramp = tramp
	return nil
}

// Remove restores the saved prologue and releases the trampoline. The
// shutdown flag is published strictly before any byte is restored, the
// patch is reverted before draining so no new call can enter through it,
// and the executable blocks are freed only once no interceptor call is
// left in flight. If the drain times out the blocks are leaked instead
// of freed under a running call, and stay published so the straggler
// can still forward through the trampoline.
func (h *Hook) Remove() error {
	if !h.state.CompareAndSwap(int32(Installed), int32(Removing)) {
		return ErrNotInstalled
	}
	h.down.Store(true)
	if err := revertPatch(h.target, h.prologue[:]); err != nil {
		// The jump is still live, so the trampoline must stay too.
		h.state.Store(int32(Installed))
		return errors.Wrap(err, "restore target")
	}
	if h.drain() {
		h.relay.release()
		h.tramp.Release()
		h.relay = nil
		h.tramp = nil
	} else {
		// A call is still inside its Enter/Exit bracket and must be
		// able to forward through the trampoline, so the blocks stay
		// published as well as leaked. A later Install drops them.
		log.Printf("[WARNING] hook at %#x: calls still in flight after %v, leaking trampoline",
			h.target, h.drainTimeout)
	}
	h.state.Store(int32(Uninstalled))
	return nil
}

func (h *Hook) drain() bool {
	time.Sleep(h.drainSettle)
	deadline := time.Now().Add(h.drainTimeout)
	for h.inflight.Load() != 0 {
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(drainPoll)
	}
	return true
}
