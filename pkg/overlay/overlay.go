// Package overlay draws a diagnostic layer over a host application's
// frames. The windows interceptor feeds it one Frame call per buffer
// swap; everything else (console scrollback, frame statistics, host
// info, settings) is portable and testable off a real render loop.
package overlay

import "sync"

// Settings controls what the overlay draws. The visibility flag is
// flipped from the window procedure thread while frames render on
// another, so access goes through the Overlay lock.
type Settings struct {
	Visible     bool
	DarkTheme   bool
	Wireframe   bool
	ClearScreen bool
	ClearColor  [3]float32
}

// Snapshot is one frame's view of the overlay state, safe to use
// without holding any lock.
type Snapshot struct {
	Settings Settings
	FPS      float64
	Frames   uint64
	Lines    []string
	Info     SysInfo
}

// Renderer draws one frame from a snapshot. The console renderer below
// is the default; a GL-backed one plugs in the same way.
type Renderer interface {
	RenderFrame(Snapshot)
}

// Overlay ties the console, frame statistics and settings together and
// drives a Renderer once per presented frame.
type Overlay struct {
	mu       sync.Mutex
	settings Settings
	info     SysInfo

	stats    *FrameStats
	console  *Console
	renderer Renderer
}

func New(console *Console, r Renderer) *Overlay {
	return &Overlay{
		settings: Settings{
			Visible:   true,
			DarkTheme: true,
		},
		stats:    NewFrameStats(),
		console:  console,
		renderer: r,
	}
}

// Console returns the scrollback the overlay draws.
func (o *Overlay) Console() *Console {
	return o.console
}

// SetInfo records the host summary shown on the overlay.
func (o *Overlay) SetInfo(info SysInfo) {
	o.mu.Lock()
	o.info = info
	o.mu.Unlock()
}

// Settings returns the current settings.
func (o *Overlay) Settings() Settings {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.settings
}

// Update applies fn to the settings under the lock and returns the
// result.
func (o *Overlay) Update(fn func(*Settings)) Settings {
	o.mu.Lock()
	defer o.mu.Unlock()
	fn(&o.settings)
	return o.settings
}

// ToggleVisible flips overlay visibility and reports the new state.
func (o *Overlay) ToggleVisible() bool {
	return o.Update(func(s *Settings) {
		s.Visible = !s.Visible
	}).Visible
}

// Frame records one presented frame and, when the overlay is visible,
// hands the renderer a snapshot to draw.
func (o *Overlay) Frame() {
	o.stats.Tick()
	snap := o.Snapshot()
	if !snap.Settings.Visible || o.renderer == nil {
		return
	}
	o.renderer.RenderFrame(snap)
}

// Snapshot captures the overlay state for one frame.
func (o *Overlay) Snapshot() Snapshot {
	o.mu.Lock()
	settings, info := o.settings, o.info
	o.mu.Unlock()
	return Snapshot{
		Settings: settings,
		FPS:      o.stats.FPS(),
		Frames:   o.stats.Frames(),
		Lines:    o.console.Lines(),
		Info:     info,
	}
}

// ConsoleRenderer reports the frame rate into the console once per
// completed measurement window instead of drawing anything. It stands
// in wherever no GL renderer is wired up.
type ConsoleRenderer struct {
	console *Console
	lastFPS float64
}

func NewConsoleRenderer(c *Console) *ConsoleRenderer {
	return &ConsoleRenderer{console: c}
}

func (r *ConsoleRenderer) RenderFrame(snap Snapshot) {
	if snap.FPS == 0 || snap.FPS == r.lastFPS {
		return
	}
	r.lastFPS = snap.FPS
	r.console.Logf("%.1f fps over %d frames", snap.FPS, snap.Frames)
}
