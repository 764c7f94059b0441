package hook

import (
	"syscall"

	"github.com/pkg/errors"
)

// CallOriginal invokes the unpatched function through the trampoline
// with stdcall/Win64 convention. It is what an interceptor uses to
// forward the call it intercepted.
func (h *Hook) CallOriginal(args ...uintptr) (uintptr, error) {
	t := h.tramp
	if t == nil {
		return 0, errors.Wrap(ErrNotInstalled, "no trampoline")
	}
	r, _, _ := syscall.SyscallN(t.Addr(), args...)
	return r, nil
}
