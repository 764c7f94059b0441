// Package proxy forwards bass.dll exports to the renamed original
// library sitting next to the proxy. Exports the original does not
// provide fall back to the stub table, so a partial or missing
// bass_real.dll degrades to silence instead of crashing the host.
package proxy

import (
	"log"
	"path/filepath"
	"sync"
	"syscall"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"

	"bassgate/pkg/bassstub"
)

// RealLibraryName is what the original bass.dll is renamed to before
// the proxy takes its place.
const RealLibraryName = "bass_real.dll"

// GetModuleHandleEx flags not surfaced by x/sys/windows.
const (
	getModuleHandleExFlagUnchangedRefcount = 0x00000002
	getModuleHandleExFlagFromAddress       = 0x00000004
)

var (
	kernel32               = windows.NewLazySystemDLL("kernel32.dll")
	procGetModuleHandleExW = kernel32.NewProc("GetModuleHandleExW")

	// moduleAnchor lives in the proxy image's data section, so its
	// address identifies this DLL to GetModuleHandleEx.
	moduleAnchor byte
)

// Library is a lazily loaded handle on the renamed original plus a
// cache of resolved exports. The zero value forwards nothing; use Open.
type Library struct {
	handle windows.Handle

	mu     sync.Mutex
	procs  map[string]uintptr
	warned map[string]bool
}

// Open loads the renamed original from the directory the proxy itself
// was loaded from, never from the search path, so a bass_real.dll
// elsewhere on the system cannot shadow the one shipped with the game.
// A missing library is not an error; every call answers from the stub
// table instead.
func Open() (*Library, error) {
	lib := &Library{
		procs:  make(map[string]uintptr),
		warned: make(map[string]bool),
	}
	dir, err := ownDir()
	if err != nil {
		return lib, errors.Wrap(err, "locate proxy directory")
	}
	h, err := windows.LoadLibraryEx(filepath.Join(dir, RealLibraryName), 0,
		windows.LOAD_WITH_ALTERED_SEARCH_PATH)
	if err != nil {
		return lib, errors.Wrapf(err, "load %s", RealLibraryName)
	}
	lib.handle = h
	return lib, nil
}

// ownDir finds the directory of the module containing this code, which
// is the proxy DLL itself, not the host executable.
func ownDir() (string, error) {
	var mod windows.Handle
	r, _, err := procGetModuleHandleExW.Call(
		getModuleHandleExFlagFromAddress|getModuleHandleExFlagUnchangedRefcount,
		uintptr(unsafe.Pointer(&moduleAnchor)),
		uintptr(unsafe.Pointer(&mod)))
	if r == 0 {
		return "", errors.Wrap(err, "GetModuleHandleExW")
	}
	buf := make([]uint16, windows.MAX_PATH)
	n, err := windows.GetModuleFileName(mod, &buf[0], uint32(len(buf)))
	if err != nil {
		return "", errors.Wrap(err, "GetModuleFileName")
	}
	return filepath.Dir(windows.UTF16ToString(buf[:n])), nil
}

// Loaded reports whether the original library is available.
func (l *Library) Loaded() bool {
	return l.handle != 0
}

// proc resolves and caches one export of the original.
func (l *Library) proc(name string) uintptr {
	if l.handle == 0 {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if addr, ok := l.procs[name]; ok {
		return addr
	}
	addr, err := windows.GetProcAddress(l.handle, name)
	if err != nil {
		addr = 0
	}
	l.procs[name] = addr
	return addr
}

// Call forwards one export to the original library. When the original
// is missing or lacks the export, the stub table answers instead, with
// a single warning per export name.
func (l *Library) Call(name string, args ...uintptr) uintptr {
	if addr := l.proc(name); addr != 0 {
		r, _, _ := syscall.SyscallN(addr, args...)
		return r
	}
	l.warnOnce(name)
	v, _ := bassstub.Answer(name)
	return v
}

func (l *Library) warnOnce(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.warned[name] {
		return
	}
	l.warned[name] = true
	log.Printf("[WARNING] %s not forwarded, answering from stub", name)
}

// Close releases the handle on the original library.
func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := windows.FreeLibrary(l.handle)
	l.handle = 0
	return err
}
