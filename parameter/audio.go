package parameter

import "time"

// Beat detection
const (
	// BeatThreshold is the bass energy level that can fire a beat
	BeatThreshold = 0.60

	// BeatCooldown is minimum spacing between beat events
	BeatCooldown = 0.25
)

// Band energy smoothing rates toward raw estimates (1/sec)
const (
	BassEnergySmoothing   = 14.0
	MidEnergySmoothing    = 10.0
	TrebleEnergySmoothing = 8.0
)

// Sample capture
const (
	// TapRingSize is capacity of the amplitude ring fed by the speaker goroutine
	TapRingSize = 8192

	// EnergyWindow is samples consumed per energy estimate
	EnergyWindow = 2048

	// WaveformWindow is samples shown by the waveform strip
	WaveformWindow = 512
)

// Playback
const (
	// SpeakerBufferDuration determines speaker.Init buffer size
	SpeakerBufferDuration = 100 * time.Millisecond
)

// Synthetic path oscillator frequencies (Hz-ish, over cumulative elapsed time)
const (
	SyntheticBassFreq   = 1.9
	SyntheticMidFreq    = 3.7
	SyntheticTrebleFreq = 7.3
)
