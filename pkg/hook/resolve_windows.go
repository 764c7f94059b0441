package hook

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// resolveExport finds an export in a module that is already loaded in
// this process. It deliberately does not load the module itself: a hook
// on a library the host never loaded makes no sense, and pinning a
// fresh reference would change unload behavior under our feet.
func resolveExport(module, proc string) (uintptr, error) {
	mod, err := windows.GetModuleHandle(windows.StringToUTF16Ptr(module))
	if err != nil {
		return 0, errors.Wrapf(ErrTargetNotFound, "module %s: %v", module, err)
	}
	addr, err := windows.GetProcAddress(mod, proc)
	if err != nil {
		return 0, errors.Wrapf(ErrTargetNotFound, "export %s!%s: %v", module, proc, err)
	}
	return addr, nil
}
