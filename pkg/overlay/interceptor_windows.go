package overlay

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sys/windows"

	"bassgate/pkg/hook"
)

const (
	wmKeyDown = 0x0100
	vkF9      = 0x78

	// GWLP_WNDPROC
	gwlpWndProc = ^uintptr(3)
)

var (
	user32             = windows.NewLazySystemDLL("user32.dll")
	procWindowFromDC   = user32.NewProc("WindowFromDC")
	procCallWindowProc = user32.NewProc("CallWindowProcW")
	procDefWindowProc  = user32.NewProc("DefWindowProcW")
	procSetWindowLong  = user32.NewProc(setWindowLongProc)

	opengl32              = windows.NewLazySystemDLL("opengl32.dll")
	procWGLCurrentContext = opengl32.NewProc("wglGetCurrentContext")
)

// Service hooks wglSwapBuffers and runs the overlay inside the host's
// render loop. One Service owns one hook; there is no shared state
// between instances.
//
// The first swap that arrives with a current GL context performs the
// lazy setup: find the window behind the device context, substitute its
// window procedure, and print the host summary. Install cannot do this
// itself because the host has not created its context yet when the
// library loads.
type Service struct {
	console *Console
	overlay *Overlay
	hk      *hook.Hook

	initialized atomic.Bool
	hwnd        atomic.Uintptr
	origWndProc atomic.Uintptr
	wndProcCB   uintptr

	detachOnce sync.Once

	// Window probes, swappable in tests.
	glContext     func() uintptr
	windowFromDC  func(hdc uintptr) uintptr
	setWindowLong func(hwnd, index, value uintptr) uintptr
}

func NewService(console *Console) *Service {
	s := &Service{
		console: console,
		overlay: New(console, NewConsoleRenderer(console)),
	}
	s.wndProcCB = windows.NewCallback(s.onWndMsg)
	s.hk = hook.New("opengl32.dll", "wglSwapBuffers", windows.NewCallback(s.onSwapBuffers))
	s.glContext = func() uintptr {
		r, _, _ := procWGLCurrentContext.Call()
		return r
	}
	s.windowFromDC = func(hdc uintptr) uintptr {
		r, _, _ := procWindowFromDC.Call(hdc)
		return r
	}
	s.setWindowLong = func(hwnd, index, value uintptr) uintptr {
		r, _, _ := procSetWindowLong.Call(hwnd, index, value)
		return r
	}
	return s
}

// Overlay exposes the overlay for the exported settings surface.
func (s *Service) Overlay() *Overlay {
	return s.overlay
}

// Attach installs the buffer-swap hook. Failure leaves the host
// untouched and is reported, not fatal: a host that never loaded
// opengl32 simply runs without an overlay.
func (s *Service) Attach() error {
	if err := s.hk.Install(); err != nil {
		s.console.Logf("overlay: hook install failed: %v", err)
		return err
	}
	s.console.Logf("overlay: hooked wglSwapBuffers at %#x", s.hk.TargetAddr())
	return nil
}

// onSwapBuffers is the interceptor. Whatever happens with the overlay,
// the original wglSwapBuffers is forwarded exactly once per call.
func (s *Service) onSwapBuffers(hdc uintptr) uintptr {
	active := s.hk.Enter()
	defer s.hk.Exit()
	if active {
		s.frame(hdc)
	}
	r, err := s.hk.CallOriginal(hdc)
	if err != nil {
		return 0
	}
	return r
}

func (s *Service) frame(hdc uintptr) {
	if !s.initialized.Load() {
		if !s.lazyInit(hdc) {
			return
		}
	}
	s.overlay.Frame()
}

// lazyInit runs on the render thread the first time a swap arrives with
// a live GL context behind it.
func (s *Service) lazyInit(hdc uintptr) bool {
	if s.glContext() == 0 {
		return false
	}
	hwnd := s.windowFromDC(hdc)
	if hwnd == 0 {
		return false
	}
	if !s.initialized.CompareAndSwap(false, true) {
		return true
	}
	s.hwnd.Store(hwnd)

	prev := s.setWindowLong(hwnd, gwlpWndProc, s.wndProcCB)
	if prev == 0 {
		s.console.Logf("overlay: wndproc substitution failed, hotkeys disabled")
	} else {
		s.origWndProc.Store(prev)
	}

	info := CollectSysInfo()
	s.overlay.SetInfo(info)
	s.console.Logf("overlay: attached to window %#x", hwnd)
	s.console.Logf("cpu: %s", info.CPUName)
	s.console.Logf("ram: %d MiB", info.TotalRAM)
	s.console.Logf("os: %s", info.OSVersion)
	s.console.Logf("press F9 to toggle the overlay")
	return true
}

// onWndMsg handles the overlay hotkey and chains every message to the
// host's original window procedure.
func (s *Service) onWndMsg(hwnd, msg, wparam, lparam uintptr) uintptr {
	if msg == wmKeyDown && wparam == vkF9 && !s.hk.ShuttingDown() {
		if s.overlay.ToggleVisible() {
			s.console.Logf("overlay shown")
		} else {
			s.console.Logf("overlay hidden")
		}
	}
	if orig := s.origWndProc.Load(); orig != 0 {
		r, _, _ := procCallWindowProc.Call(orig, hwnd, msg, wparam, lparam)
		return r
	}
	r, _, _ := procDefWindowProc.Call(hwnd, msg, wparam, lparam)
	return r
}

// Detach tears the overlay down in dependency order: flag the shutdown
// so frames stop doing overlay work, give the window its procedure
// back, then remove the hook, which restores the patched bytes and
// waits out in-flight swap calls before freeing the trampoline.
func (s *Service) Detach() {
	s.detachOnce.Do(func() {
		s.hk.SignalShutdown()
		s.restoreWndProc()
		if err := s.hk.Remove(); err != nil {
			s.console.Logf("overlay: hook removal failed: %v", err)
			return
		}
		s.console.Logf("overlay: detached")
	})
}

func (s *Service) restoreWndProc() {
	orig := s.origWndProc.Swap(0)
	hwnd := s.hwnd.Load()
	if orig == 0 || hwnd == 0 {
		return
	}
	if prev := s.setWindowLong(hwnd, gwlpWndProc, orig); prev == 0 {
		// The window may already be gone during host shutdown.
		s.console.Logf("overlay: wndproc restore failed")
	}
}
