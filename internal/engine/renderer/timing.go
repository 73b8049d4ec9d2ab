package renderer

import (
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// FrameStats accumulates CPU frame times over a reporting window.
type FrameStats struct {
	Window time.Duration

	start  time.Time
	frames int
	total  time.Duration
	worst  time.Duration
}

// FrameReport summarizes one reporting window.
type FrameReport struct {
	Frames int
	FPS    float64
	AvgMS  float64
	MaxMS  float64
}

// NewFrameStats reports once per window.
func NewFrameStats(window time.Duration) *FrameStats {
	return &FrameStats{Window: window}
}

// Add records one frame that ended at now and took dt. It returns a report
// and true when the window has elapsed, then starts a new window.
func (s *FrameStats) Add(now time.Time, dt time.Duration) (FrameReport, bool) {
	if s.start.IsZero() {
		s.start = now
	}
	s.frames++
	s.total += dt
	if dt > s.worst {
		s.worst = dt
	}

	elapsed := now.Sub(s.start)
	if elapsed < s.Window {
		return FrameReport{}, false
	}

	r := FrameReport{
		Frames: s.frames,
		FPS:    float64(s.frames) / elapsed.Seconds(),
		AvgMS:  ms(s.total) / float64(s.frames),
		MaxMS:  ms(s.worst),
	}
	s.start = now
	s.frames = 0
	s.total = 0
	s.worst = 0
	return r, true
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// GPUTimer measures GPU time of a pass with GL_TIME_ELAPSED queries. Two
// queries alternate so reading a result never stalls on the current frame.
type GPUTimer struct {
	queries [2]uint32
	current int
	pending [2]bool
	last    time.Duration
}

// NewGPUTimer allocates the query objects.
func NewGPUTimer() *GPUTimer {
	t := &GPUTimer{}
	gl.GenQueries(2, &t.queries[0])
	return t
}

// Begin starts timing the pass.
func (t *GPUTimer) Begin() {
	gl.BeginQuery(gl.TIME_ELAPSED, t.queries[t.current])
}

// End stops timing and collects the other query if it is ready.
func (t *GPUTimer) End() {
	gl.EndQuery(gl.TIME_ELAPSED)
	t.pending[t.current] = true
	t.current = 1 - t.current

	if !t.pending[t.current] {
		return
	}
	var available int32
	gl.GetQueryObjectiv(t.queries[t.current], gl.QUERY_RESULT_AVAILABLE, &available)
	if available == gl.FALSE {
		return
	}
	var ns uint64
	gl.GetQueryObjectui64v(t.queries[t.current], gl.QUERY_RESULT, &ns)
	t.last = time.Duration(ns)
	t.pending[t.current] = false
}

// Last returns the most recent completed measurement.
func (t *GPUTimer) Last() time.Duration {
	return t.last
}

// Delete releases the query objects.
func (t *GPUTimer) Delete() {
	gl.DeleteQueries(2, &t.queries[0])
}
