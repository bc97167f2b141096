package parameter

// Band palette hues (degrees) for go-colorful ramps
const (
	BassHue   = 12.0 // red-orange
	MidHue    = 130.0
	TrebleHue = 210.0

	// HueJitter is per-particle hue variation at spawn
	HueJitter = 18.0

	PaletteSaturation = 0.85
	PaletteValueMin   = 0.55
)

// Brightness response to bounce energy at draw time
const (
	// GlowGain maps bounce energy to added brightness
	GlowGain = 0.45
)

// Layout
const (
	// WaveformHeight is rows reserved for the waveform strip at the bottom
	WaveformHeight = 6

	// HUDRow is the screen row of the status line
	HUDRow = 0
)

// Beat flash duration in frames for the HUD indicator
const BeatFlashFrames = 8
