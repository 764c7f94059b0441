//go:build !windows

package hook

import "github.com/pkg/errors"

func resolveExport(module, proc string) (uintptr, error) {
	return 0, errors.Wrapf(ErrTargetNotFound, "export %s!%s: no module loader on this platform", module, proc)
}
