package profiling

import "time"

// historySize is the number of frames kept for min/avg/max
const historySize = 60

// FrameStats keeps a rolling window of frame durations and an FPS
// counter updated once per second.
type FrameStats struct {
	history []time.Duration

	frames    int
	lastCheck time.Time
	fps       int
}

// Record adds one frame of duration d finished at now.
func (f *FrameStats) Record(d time.Duration, now time.Time) {
	if len(f.history) >= historySize {
		f.history = f.history[1:]
	}
	f.history = append(f.history, d)

	if f.lastCheck.IsZero() {
		f.lastCheck = now
	}
	f.frames++
	if elapsed := now.Sub(f.lastCheck); elapsed >= time.Second {
		f.fps = int(float64(f.frames) / elapsed.Seconds())
		f.frames = 0
		f.lastCheck = now
	}
}

// FPS returns the rate measured over the last full second
func (f *FrameStats) FPS() int { return f.fps }

// Window returns min, average and max over the kept history.
func (f *FrameStats) Window() (lo, avg, hi time.Duration) {
	if len(f.history) == 0 {
		return 0, 0, 0
	}
	lo, hi = f.history[0], f.history[0]
	var total time.Duration
	for _, d := range f.history {
		total += d
		lo = min(lo, d)
		hi = max(hi, d)
	}
	return lo, total / time.Duration(len(f.history)), hi
}
