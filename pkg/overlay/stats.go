package overlay

import "time"

// FrameStats derives frames-per-second from buffer-swap timestamps over
// a sliding one-second window. It is only ever touched from the render
// thread, so it carries no lock.
type FrameStats struct {
	frames int
	fps    float64
	window time.Time
	total  uint64
	now    func() time.Time
}

func NewFrameStats() *FrameStats {
	return &FrameStats{now: time.Now}
}

// Tick records one presented frame and reports whether a fresh FPS
// value was just computed.
func (s *FrameStats) Tick() bool {
	t := s.now()
	s.total++
	if s.window.IsZero() {
		s.window = t
	}
	s.frames++
	elapsed := t.Sub(s.window)
	if elapsed < time.Second {
		return false
	}
	s.fps = float64(s.frames) / elapsed.Seconds()
	s.frames = 0
	s.window = t
	return true
}

// FPS is the most recently completed window's rate, zero until the
// first window closes.
func (s *FrameStats) FPS() float64 {
	return s.fps
}

// Frames is the total number of frames seen since creation.
func (s *FrameStats) Frames() uint64 {
	return s.total
}
