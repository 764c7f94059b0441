package overlay

import (
	"encoding/binary"
	"runtime"
	"syscall"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"

	"bassgate/pkg/hook"
)

// testService builds a Service whose window probes are stubbed, so the
// interceptor paths run without a GL context or a real window.
func testService(t *testing.T) (*Service, *Console) {
	t.Helper()
	c := NewConsole()
	s := NewService(c)
	s.glContext = func() uintptr { return 0 }
	s.windowFromDC = func(hdc uintptr) uintptr { return 0 }
	s.setWindowLong = func(hwnd, index, value uintptr) uintptr { return 0 }
	return s, c
}

// countingTarget allocates a callable function that bumps and returns a
// counter stored inside its own block, so a test can see exactly how
// many times it ran. The first five bytes are plain nops and relocate
// cleanly into a trampoline.
func countingTarget(t *testing.T) uintptr {
	t.Helper()
	const size = 64
	const counterOff = 32
	base, err := windows.VirtualAlloc(0, size,
		windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_EXECUTE_READWRITE)
	require.NoError(t, err)
	t.Cleanup(func() { _ = windows.VirtualFree(base, 0, windows.MEM_RELEASE) })

	code := unsafe.Slice((*byte)(unsafe.Pointer(base)), size)
	for i := range code {
		code[i] = 0xCC
	}
	copy(code, []byte{0x90, 0x90, 0x90, 0x90, 0x90})
	switch runtime.GOARCH {
	case "amd64":
		// inc dword [rip+21]; mov eax, [rip+15]; ret
		copy(code[5:], []byte{0xFF, 0x05, 0x15, 0x00, 0x00, 0x00})
		copy(code[11:], []byte{0x8B, 0x05, 0x0F, 0x00, 0x00, 0x00})
		code[17] = 0xC3
	case "386":
		// inc dword [counter]; mov eax, [counter]; ret
		code[5], code[6] = 0xFF, 0x05
		binary.LittleEndian.PutUint32(code[7:], uint32(base+counterOff))
		code[11] = 0xA1
		binary.LittleEndian.PutUint32(code[12:], uint32(base+counterOff))
		code[16] = 0xC3
	default:
		t.Skipf("no counting target encoding for %s", runtime.GOARCH)
	}
	binary.LittleEndian.PutUint32(code[counterOff:], 0)
	return base
}

func counterValue(base uintptr) uint32 {
	return binary.LittleEndian.Uint32(unsafe.Slice((*byte)(unsafe.Pointer(base+32)), 4))
}

func TestServiceLazyInitOnce(t *testing.T) {
	s, _ := testService(t)

	substitutions := 0
	s.glContext = func() uintptr { return 1 }
	s.windowFromDC = func(hdc uintptr) uintptr { return 0x1234 }
	s.setWindowLong = func(hwnd, index, value uintptr) uintptr {
		substitutions++
		return 0x5678 // the host's original wndproc
	}

	for i := 0; i < 3; i++ {
		s.frame(1)
	}
	assert.Equal(t, 1, substitutions)
	assert.Equal(t, uintptr(0x5678), s.origWndProc.Load())
	assert.Equal(t, uintptr(0x1234), s.hwnd.Load())
	assert.Equal(t, uint64(3), s.overlay.Snapshot().Frames)
}

func TestServiceNoSetupWithoutContext(t *testing.T) {
	s, _ := testService(t)

	substitutions := 0
	s.setWindowLong = func(hwnd, index, value uintptr) uintptr {
		substitutions++
		return 1
	}

	// No GL context yet: nothing is set up and no frame is counted.
	s.frame(1)
	assert.Zero(t, substitutions)
	assert.False(t, s.initialized.Load())

	// A context without a resolvable window still defers setup.
	s.glContext = func() uintptr { return 1 }
	s.frame(1)
	assert.Zero(t, substitutions)
	assert.False(t, s.initialized.Load())
	assert.Zero(t, s.overlay.Snapshot().Frames)
}

// TestServiceShutdownStillForwardsOnce drives real calls through the
// patched function: with the shutdown flag set the interceptor must
// skip all overlay work yet forward to the original exactly once per
// call.
func TestServiceShutdownStillForwardsOnce(t *testing.T) {
	s, _ := testService(t)
	target := countingTarget(t)

	s.hk = hook.NewForAddress(target, windows.NewCallback(s.onSwapBuffers))
	require.NoError(t, s.hk.Install())
	defer func() { _ = s.hk.Remove() }()

	s.hk.SignalShutdown()

	r, _, _ := syscall.SyscallN(target, 0)
	assert.Equal(t, uintptr(1), r)
	r, _, _ = syscall.SyscallN(target, 0)
	assert.Equal(t, uintptr(2), r)

	assert.Equal(t, uint32(2), counterValue(target))
	assert.Zero(t, s.overlay.Snapshot().Frames)
	assert.False(t, s.initialized.Load())
}

func TestServiceWndMsgTogglesOverlay(t *testing.T) {
	s, c := testService(t)

	require.True(t, s.overlay.Settings().Visible)
	s.onWndMsg(0, wmKeyDown, vkF9, 0)
	assert.False(t, s.overlay.Settings().Visible)
	s.onWndMsg(0, wmKeyDown, vkF9, 0)
	assert.True(t, s.overlay.Settings().Visible)
	assert.NotEmpty(t, c.Lines())

	// Other messages pass through without touching the settings.
	s.onWndMsg(0, 0x0200, 0, 0) // WM_MOUSEMOVE
	assert.True(t, s.overlay.Settings().Visible)
}
