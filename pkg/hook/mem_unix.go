//go:build linux || darwin

package hook

import (
	"os"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// withPatchable flips every page covering [addr, addr+n) to rwx for the
// duration of op. mprotect cannot report the previous protection, so the
// pages are left read+execute afterwards, which is what code pages use.
func withPatchable(addr uintptr, n int, op func()) error {
	if err := protectRange(addr, n, unix.PROT_READ|unix.PROT_WRITE|unix.PROT_EXEC); err != nil {
		return err
	}
	op()
	return protectRange(addr, n, unix.PROT_READ|unix.PROT_EXEC)
}

func protectRange(addr uintptr, n int, prot int) error {
	pageSize := uintptr(os.Getpagesize())
	for p := addr &^ (pageSize - 1); p < addr+uintptr(n); p += pageSize {
		if err := unix.Mprotect(byteSlice(p, int(pageSize)), prot); err != nil {
			return errors.Wrap(err, "mprotect")
		}
	}
	return nil
}

// osAllocExec maps an anonymous rwx block. The kernel picks the address;
// anonymous mappings cluster together, which keeps them within rel32
// range of each other, so the near hint is not enforced here.
func osAllocExec(near uintptr, size int) (uintptr, error) {
	b, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE|unix.PROT_EXEC,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return 0, errors.Wrap(err, "mmap")
	}
	return uintptr(unsafe.Pointer(&b[0])), nil
}

func osFreeExec(addr uintptr, size int) error {
	return unix.Munmap(byteSlice(addr, size))
}

// osProtectExecRead drops write permission from a populated block.
func osProtectExecRead(addr uintptr, size int) error {
	return protectRange(addr, size, unix.PROT_READ|unix.PROT_EXEC)
}
