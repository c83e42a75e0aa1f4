package tui

// sparkLevels are the eight block heights of a sparkline cell.
var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// RingBuffer keeps the most recent samples of a percentage series.
type RingBuffer struct {
	data []float64
	next int
	full bool
}

// NewRingBuffer creates a buffer holding up to capacity samples. A
// non-positive capacity holds one.
func NewRingBuffer(capacity int) *RingBuffer {
	return &RingBuffer{data: make([]float64, max(capacity, 1))}
}

// Push appends v, dropping the oldest sample when full.
func (r *RingBuffer) Push(v float64) {
	r.data[r.next] = v
	r.next++
	if r.next == len(r.data) {
		r.next = 0
		r.full = true
	}
}

// Len returns the number of samples held.
func (r *RingBuffer) Len() int {
	if r.full {
		return len(r.data)
	}
	return r.next
}

// Cap returns the capacity.
func (r *RingBuffer) Cap() int { return len(r.data) }

// Last returns the newest sample, or 0 when empty.
func (r *RingBuffer) Last() float64 {
	if r.Len() == 0 {
		return 0
	}
	return r.data[(r.next-1+len(r.data))%len(r.data)]
}

// Slice returns the samples oldest first.
func (r *RingBuffer) Slice() []float64 {
	if !r.full {
		if r.next == 0 {
			return nil
		}
		return append([]float64(nil), r.data[:r.next]...)
	}
	out := make([]float64, 0, len(r.data))
	out = append(out, r.data[r.next:]...)
	return append(out, r.data[:r.next]...)
}

// Resize changes the capacity, keeping the newest samples that fit.
func (r *RingBuffer) Resize(capacity int) {
	capacity = max(capacity, 1)
	if capacity == len(r.data) {
		return
	}
	samples := r.Slice()
	if len(samples) > capacity {
		samples = samples[len(samples)-capacity:]
	}
	r.data = make([]float64, capacity)
	r.next, r.full = 0, false
	for _, v := range samples {
		r.Push(v)
	}
}

// Reset drops every sample.
func (r *RingBuffer) Reset() {
	r.next, r.full = 0, false
}

// RenderSparkline draws one block per value, scaling 0..100 onto the eight
// block heights. Values outside the range are clamped.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	top := len(sparkLevels) - 1
	cells := make([]rune, len(values))
	for i, v := range values {
		level := int(min(max(v, 0), 100) / 100 * float64(top))
		cells[i] = sparkLevels[level]
	}
	return string(cells)
}
