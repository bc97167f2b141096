package audio

import (
	"math"

	"github.com/lixenwraith/beatfield/parameter"
)

// Frame is one frame's worth of audio forcing: three smoothed band
// energies in [0,1] and whether a beat fired this frame
type Frame struct {
	Bass, Mid, Treble float64
	Beat              bool
}

// SampleSource supplies recent mono amplitude samples. Window fills dst
// with the newest samples in chronological order and returns the count
type SampleSource interface {
	Window(dst []float64) int
}

// Gains mapping raw window estimates to the [0,1] energy range. The live
// path has no FFT; these scale time-domain RMS/delta statistics so typical
// music peaks near 1.0
const (
	bassGain   = 3.2
	midGain    = 9.0
	trebleGain = 14.0

	// midLag is the sample lag of the mid-band difference estimator
	midLag = 8

	// minLiveWindow is the minimum sample count before the live path is
	// trusted over the synthetic one
	minLiveWindow = 256
)

// EnergyModel maps an amplitude stream to band energies and beat events.
// With no sample source it runs a deterministic oscillator bank over
// cumulative elapsed time, so the simulation is fully exercisable without
// an audio asset
type EnergyModel struct {
	bass, mid, treble float64

	elapsed  float64
	cooldown float64
	reactive bool

	window []float64

	wave     []float64
	waveHead int
	waveFull bool
}

// NewEnergyModel creates an idle model; the first beat may fire as soon
// as bass energy crosses the threshold
func NewEnergyModel() *EnergyModel {
	return &EnergyModel{
		cooldown: parameter.BeatCooldown,
		reactive: true,
		window:   make([]float64, parameter.EnergyWindow),
		wave:     make([]float64, parameter.WaveformWindow),
	}
}

// SetReactive toggles audio responsiveness. While off, energies decay to
// zero and no beats fire
func (m *EnergyModel) SetReactive(on bool) {
	m.reactive = on
}

// Reactive reports whether the model is responding to audio
func (m *EnergyModel) Reactive() bool {
	return m.reactive
}

// Update advances the model by dt seconds, reading src when non-nil and
// falling back to the synthetic path otherwise. Returns this frame's
// energies and beat flag
func (m *EnergyModel) Update(dt float64, src SampleSource) Frame {
	m.elapsed += dt
	m.cooldown += dt

	var rawBass, rawMid, rawTreble, waveSample float64
	switch {
	case !m.reactive:
		// Targets stay zero; energies decay below

	case src != nil:
		if n := src.Window(m.window); n >= minLiveWindow {
			rawBass, rawMid, rawTreble, waveSample = liveEstimates(m.window[:n])
			break
		}
		fallthrough

	default:
		rawBass, rawMid, rawTreble, waveSample = syntheticEstimates(m.elapsed)
	}

	m.bass = clamp01(smooth(m.bass, rawBass, parameter.BassEnergySmoothing, dt))
	m.mid = clamp01(smooth(m.mid, rawMid, parameter.MidEnergySmoothing, dt))
	m.treble = clamp01(smooth(m.treble, rawTreble, parameter.TrebleEnergySmoothing, dt))

	m.pushWave(waveSample)

	beat := false
	if m.reactive && m.bass > parameter.BeatThreshold && m.cooldown >= parameter.BeatCooldown {
		beat = true
		m.cooldown = 0
	}

	return Frame{Bass: m.bass, Mid: m.mid, Treble: m.treble, Beat: beat}
}

// Waveform copies the most recent len(dst) display samples in
// chronological order and returns the count
func (m *EnergyModel) Waveform(dst []float64) int {
	avail := m.waveHead
	if m.waveFull {
		avail = len(m.wave)
	}
	n := len(dst)
	if n > avail {
		n = avail
	}
	start := m.waveHead - n
	if start < 0 {
		start += len(m.wave)
	}
	for i := 0; i < n; i++ {
		dst[i] = m.wave[(start+i)%len(m.wave)]
	}
	return n
}

func (m *EnergyModel) pushWave(s float64) {
	m.wave[m.waveHead] = s
	m.waveHead++
	if m.waveHead == len(m.wave) {
		m.waveHead = 0
		m.waveFull = true
	}
}

// liveEstimates derives band statistics from a time-domain window.
// Approximate band split without an FFT: full-window RMS tracks overall
// (bass-dominated) level, lagged differences emphasize mid movement,
// sample-to-sample differences emphasize high-frequency content
func liveEstimates(w []float64) (bass, mid, treble, wave float64) {
	var sumSq float64
	for _, s := range w {
		sumSq += s * s
	}
	bass = clamp01(math.Sqrt(sumSq/float64(len(w))) * bassGain)

	var midSq float64
	for i := midLag; i < len(w); i++ {
		d := w[i] - w[i-midLag]
		midSq += d * d
	}
	mid = clamp01(math.Sqrt(midSq/float64(len(w)-midLag)) * midGain)

	var trebSq float64
	for i := 1; i < len(w); i++ {
		d := w[i] - w[i-1]
		trebSq += d * d
	}
	treble = clamp01(math.Sqrt(trebSq/float64(len(w)-1)) * trebleGain)

	return bass, mid, treble, w[len(w)-1]
}

// syntheticEstimates is a pure function of cumulative elapsed time:
// phase-shifted oscillator pairs per band, bounded, continuous and
// non-constant. Bass periodically crosses the beat threshold
func syntheticEstimates(t float64) (bass, mid, treble, wave float64) {
	const tau = 2 * math.Pi

	bass = clamp01(0.50 +
		0.32*math.Sin(tau*parameter.SyntheticBassFreq*t) +
		0.18*math.Sin(tau*0.53*t+1.3))
	mid = clamp01(0.45 +
		0.25*math.Sin(tau*parameter.SyntheticMidFreq*t+0.7) +
		0.18*math.Sin(tau*1.1*t+2.1))
	treble = clamp01(0.40 +
		0.22*math.Sin(tau*parameter.SyntheticTrebleFreq*t+1.9) +
		0.20*math.Sin(tau*2.9*t+0.4))

	wave = 0.5*math.Sin(tau*parameter.SyntheticBassFreq*t) +
		0.3*math.Sin(tau*parameter.SyntheticMidFreq*t+0.7) +
		0.2*math.Sin(tau*parameter.SyntheticTrebleFreq*t+1.9)
	return bass, mid, treble, wave
}

// smooth moves cur toward target with a first-order response of the given
// rate (1/sec); step factor saturates at 1 so large dt cannot overshoot
func smooth(cur, target, rate, dt float64) float64 {
	step := rate * dt
	if step > 1 {
		step = 1
	}
	return cur + (target-cur)*step
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
