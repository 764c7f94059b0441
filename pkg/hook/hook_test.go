package hook

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateString(t *testing.T) {
	assert.Equal(t, "uninstalled", Uninstalled.String())
	assert.Equal(t, "installing", Installing.String())
	assert.Equal(t, "installed", Installed.String())
	assert.Equal(t, "removing", Removing.String())
}

func TestInstallRemoveRestoresBytes(t *testing.T) {
	target := allocCode(t, hotPatchPrologue)
	interceptor := allocCode(t, []byte{0xC3})
	before := readMemory(target.Addr(), prologueScan)

	h := NewForAddress(target.Addr(), interceptor.Addr())
	require.NoError(t, h.Install())
	assert.Equal(t, Installed, h.State())
	assert.True(t, h.Installed())
	assert.Equal(t, target.Addr(), h.TargetAddr())
	require.NotZero(t, h.Original())

	// The patch site now holds a near jump into either the interceptor
	// or, when that is out of rel32 range, a relay that leads to it.
	patched := readMemory(target.Addr(), PatchSize)
	require.Equal(t, byte(opJmpRel32), patched[0])
	disp := int32(binary.LittleEndian.Uint32(patched[1:]))
	dest := uintptr(int64(target.Addr()) + PatchSize + int64(disp))
	if h.relay != nil {
		assert.Equal(t, h.relay.Addr(), dest)
	} else {
		assert.Equal(t, interceptor.Addr(), dest)
	}

	// The trampoline starts with the displaced prologue bytes.
	assert.Equal(t, before[:PatchSize], readMemory(h.Original(), PatchSize))

	h.drainSettle = 0
	require.NoError(t, h.Remove())
	assert.Equal(t, Uninstalled, h.State())
	assert.Zero(t, h.Original())
	assert.Equal(t, before, readMemory(target.Addr(), prologueScan))
}

func TestInstallUnknownModule(t *testing.T) {
	h := New("no_such_module_xk91.dll", "NoSuchExport", 0x1000)
	err := h.Install()
	assert.ErrorIs(t, err, ErrTargetNotFound)
	assert.Equal(t, Uninstalled, h.State())
}

func TestInstallBadPrologue(t *testing.T) {
	target := allocCode(t, []byte{0xC3})
	before := readMemory(target.Addr(), prologueScan)

	h := NewForAddress(target.Addr(), 0x1000)
	err := h.Install()
	assert.ErrorIs(t, err, ErrBadPrologue)
	assert.Equal(t, Uninstalled, h.State())
	assert.Equal(t, before, readMemory(target.Addr(), prologueScan))
}

func TestDoubleInstallAndRemove(t *testing.T) {
	target := allocCode(t, hotPatchPrologue)
	interceptor := allocCode(t, []byte{0xC3})

	h := NewForAddress(target.Addr(), interceptor.Addr())
	h.drainSettle = 0
	require.NoError(t, h.Install())
	assert.ErrorIs(t, h.Install(), ErrAlreadyInstalled)

	require.NoError(t, h.Remove())
	assert.ErrorIs(t, h.Remove(), ErrNotInstalled)
}

func TestEnterExitShutdown(t *testing.T) {
	h := NewForAddress(0x1000, 0x2000)

	assert.True(t, h.Enter())
	h.Exit()
	assert.False(t, h.ShuttingDown())

	h.SignalShutdown()
	assert.True(t, h.ShuttingDown())
	assert.False(t, h.Enter())
	h.Exit()
}

func TestRemoveWaitsForInflightCalls(t *testing.T) {
	target := allocCode(t, hotPatchPrologue)
	interceptor := allocCode(t, []byte{0xC3})

	h := NewForAddress(target.Addr(), interceptor.Addr())
	h.drainSettle = 0
	require.NoError(t, h.Install())

	const hold = 50 * time.Millisecond
	require.True(t, h.Enter())
	go func() {
		time.Sleep(hold)
		h.Exit()
	}()

	start := time.Now()
	require.NoError(t, h.Remove())
	assert.GreaterOrEqual(t, time.Since(start), hold-10*time.Millisecond)
	assert.Equal(t, Uninstalled, h.State())
}

func TestRemoveDrainTimeoutLeaksTrampoline(t *testing.T) {
	target := allocCode(t, hotPatchPrologue)
	interceptor := allocCode(t, []byte{0xC3})

	h := NewForAddress(target.Addr(), interceptor.Addr())
	h.drainSettle = 0
	h.drainTimeout = 20 * time.Millisecond
	require.NoError(t, h.Install())
	tramp := h.Original()

	h.Enter() // still open when the deadline passes

	require.NoError(t, h.Remove())
	assert.Equal(t, Uninstalled, h.State())

	// The stuck call must still be able to forward: the leaked
	// trampoline stays published until the next install cycle.
	assert.Equal(t, tramp, h.Original())
	assert.Equal(t, hotPatchPrologue, readMemory(h.Original(), PatchSize))
	h.Exit()

	// A fresh cycle drops the leaked blocks and builds new ones.
	h.drainTimeout = defaultDrainTimeout
	require.NoError(t, h.Install())
	assert.NotZero(t, h.Original())
	require.NoError(t, h.Remove())
	assert.Zero(t, h.Original())
}

func TestInstallResetsShutdownFlag(t *testing.T) {
	target := allocCode(t, hotPatchPrologue)
	interceptor := allocCode(t, []byte{0xC3})

	h := NewForAddress(target.Addr(), interceptor.Addr())
	h.drainSettle = 0
	require.NoError(t, h.Install())
	require.NoError(t, h.Remove())
	assert.True(t, h.ShuttingDown())

	require.NoError(t, h.Install())
	assert.False(t, h.ShuttingDown())
	require.NoError(t, h.Remove())
}
