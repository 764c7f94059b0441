package overlay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	frames []Snapshot
}

func (r *recordingRenderer) RenderFrame(s Snapshot) {
	r.frames = append(r.frames, s)
}

func TestOverlayFrameRendersWhenVisible(t *testing.T) {
	rec := &recordingRenderer{}
	o := New(NewConsole(), rec)

	o.Frame()
	o.Frame()
	require.Len(t, rec.frames, 2)
	assert.Equal(t, uint64(2), rec.frames[1].Frames)
}

func TestOverlayHiddenSkipsRenderer(t *testing.T) {
	rec := &recordingRenderer{}
	o := New(NewConsole(), rec)

	assert.False(t, o.ToggleVisible())
	o.Frame()
	assert.Empty(t, rec.frames)

	assert.True(t, o.ToggleVisible())
	o.Frame()
	assert.Len(t, rec.frames, 1)
}

func TestOverlayDefaults(t *testing.T) {
	o := New(NewConsole(), nil)
	s := o.Settings()
	assert.True(t, s.Visible)
	assert.True(t, s.DarkTheme)
	assert.False(t, s.Wireframe)
}

func TestOverlayUpdateSettings(t *testing.T) {
	o := New(NewConsole(), nil)
	s := o.Update(func(s *Settings) {
		s.Wireframe = true
		s.ClearScreen = true
		s.ClearColor = [3]float32{0.1, 0.2, 0.3}
	})
	assert.True(t, s.Wireframe)
	assert.Equal(t, [3]float32{0.1, 0.2, 0.3}, o.Settings().ClearColor)
}

func TestOverlaySnapshotCarriesState(t *testing.T) {
	c := NewConsole()
	o := New(c, nil)
	o.SetInfo(SysInfo{CPUName: "Pentium 4", TotalRAM: 512, OSVersion: "windows XP"})
	c.Logf("hello")

	snap := o.Snapshot()
	assert.Equal(t, "Pentium 4", snap.Info.CPUName)
	require.Len(t, snap.Lines, 1)
	assert.Contains(t, snap.Lines[0], "hello")
}

func TestConsoleRendererReportsOncePerWindow(t *testing.T) {
	c := NewConsole()
	r := NewConsoleRenderer(c)

	r.RenderFrame(Snapshot{FPS: 0})
	assert.Empty(t, c.Lines())

	r.RenderFrame(Snapshot{FPS: 60.0, Frames: 120})
	r.RenderFrame(Snapshot{FPS: 60.0, Frames: 180})
	require.Len(t, c.Lines(), 1)
	assert.Contains(t, c.Lines()[0], "60.0 fps")

	r.RenderFrame(Snapshot{FPS: 72.5, Frames: 240})
	assert.Len(t, c.Lines(), 2)
}

func TestCollectSysInfoNeverPanics(t *testing.T) {
	done := make(chan SysInfo, 1)
	go func() { done <- CollectSysInfo() }()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("sysinfo collection hung")
	}
}
