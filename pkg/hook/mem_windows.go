//go:build windows

package hook

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// allocGranularity is the VirtualAlloc allocation granularity; region
// bases are always multiples of 64KiB.
const allocGranularity = 0x10000

// maxAllocReach caps the near-allocation search well inside rel32 range.
const maxAllocReach = 1 << 30

// withPatchable runs op with write permission enabled on the pages
// covering [addr, addr+n), restoring the previous protection afterwards.
func withPatchable(addr uintptr, n int, op func()) error {
	var old uint32
	if err := windows.VirtualProtect(addr, uintptr(n), windows.PAGE_EXECUTE_READWRITE, &old); err != nil {
		return errors.Wrap(err, "VirtualProtect")
	}
	op()
	var tmp uint32
	if err := windows.VirtualProtect(addr, uintptr(n), old, &tmp); err != nil {
		return errors.Wrap(err, "VirtualProtect restore")
	}
	return nil
}

// osAllocExec commits size bytes of read+write+execute memory. When near
// is non-zero, candidate bases spiral out from it one granularity step
// at a time so the block lands within rel32 range of the patch site.
func osAllocExec(near uintptr, size int) (uintptr, error) {
	const flags = windows.MEM_COMMIT | windows.MEM_RESERVE
	if near == 0 {
		addr, err := windows.VirtualAlloc(0, uintptr(size), flags, windows.PAGE_EXECUTE_READWRITE)
		if err != nil {
			return 0, errors.Wrap(err, "VirtualAlloc")
		}
		return addr, nil
	}
	base := near &^ uintptr(allocGranularity-1)
	for off := uintptr(allocGranularity); off < maxAllocReach; off += allocGranularity {
		if addr, err := windows.VirtualAlloc(base+off, uintptr(size), flags, windows.PAGE_EXECUTE_READWRITE); err == nil {
			return addr, nil
		}
		if base > off {
			if addr, err := windows.VirtualAlloc(base-off, uintptr(size), flags, windows.PAGE_EXECUTE_READWRITE); err == nil {
				return addr, nil
			}
		}
	}
	return 0, errors.New("no free region within reach of the target")
}

func osFreeExec(addr uintptr, size int) error {
	return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
}

// osProtectExecRead drops write permission from a populated block.
func osProtectExecRead(addr uintptr, size int) error {
	var old uint32
	return windows.VirtualProtect(addr, uintptr(size), windows.PAGE_EXECUTE_READ, &old)
}
