package hook

import (
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

func TestResolveExport(t *testing.T) {
	addr, err := resolveExport("kernel32.dll", "GetTickCount")
	require.NoError(t, err)
	assert.NotZero(t, addr)

	_, err = resolveExport("kernel32.dll", "NoSuchExport_xk91")
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

// TestHookExecution installs a hook on a tiny real function, calls
// through the patch, through the trampoline, and then through the
// restored original.
func TestHookExecution(t *testing.T) {
	// mov eax, 42; ret
	target := allocCode(t, []byte{0xB8, 0x2A, 0x00, 0x00, 0x00, 0xC3})

	interceptor := windows.NewCallback(func() uintptr {
		return 1337
	})

	h := NewForAddress(target.Addr(), interceptor)
	h.drainSettle = 0
	require.NoError(t, h.Install())

	r, _, _ := syscall.SyscallN(target.Addr())
	assert.Equal(t, uintptr(1337), r)

	orig, err := h.CallOriginal()
	require.NoError(t, err)
	assert.Equal(t, uintptr(42), orig)

	require.NoError(t, h.Remove())
	r, _, _ = syscall.SyscallN(target.Addr())
	assert.Equal(t, uintptr(42), r)
}

// TestCallOriginalAfterDrainTimeout pins down the forward path of a
// call that was still inside its Enter/Exit bracket when removal gave
// up waiting: the leaked trampoline must remain callable.
func TestCallOriginalAfterDrainTimeout(t *testing.T) {
	// mov eax, 42; ret
	target := allocCode(t, []byte{0xB8, 0x2A, 0x00, 0x00, 0x00, 0xC3})

	interceptor := windows.NewCallback(func() uintptr {
		return 1337
	})

	h := NewForAddress(target.Addr(), interceptor)
	h.drainSettle = 0
	h.drainTimeout = 20 * time.Millisecond
	require.NoError(t, h.Install())

	h.Enter() // the straggler
	require.NoError(t, h.Remove())

	r, err := h.CallOriginal()
	require.NoError(t, err)
	assert.Equal(t, uintptr(42), r)
	h.Exit()
}
