package audio

import "sync"

// SampleRing is a fixed-capacity ring of mono amplitude samples. The
// speaker goroutine pushes while the update loop reads, so access is
// mutex-guarded
type SampleRing struct {
	mu   sync.Mutex
	buf  []float64
	head int // next write position
	full bool
}

// NewSampleRing creates a ring holding size samples
func NewSampleRing(size int) *SampleRing {
	if size < 1 {
		size = 1
	}
	return &SampleRing{buf: make([]float64, size)}
}

// Push appends samples, overwriting the oldest when full
func (r *SampleRing) Push(samples []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range samples {
		r.buf[r.head] = s
		r.head++
		if r.head == len(r.buf) {
			r.head = 0
			r.full = true
		}
	}
}

// Window copies the most recent len(dst) samples into dst in chronological
// order and returns how many were available
func (r *SampleRing) Window(dst []float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	avail := r.head
	if r.full {
		avail = len(r.buf)
	}
	n := len(dst)
	if n > avail {
		n = avail
	}

	// Walk backwards n samples from head, then copy forward
	start := r.head - n
	if start < 0 {
		start += len(r.buf)
	}
	for i := 0; i < n; i++ {
		dst[i] = r.buf[(start+i)%len(r.buf)]
	}
	return n
}
