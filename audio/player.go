package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/beatfield/parameter"
)

// Player decodes an audio file, loops it through the speaker and taps the
// stream into a SampleRing for the energy model. Playback runs on beep's
// speaker goroutine; the ring is the only shared state
type Player struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	ring     *SampleRing
	log      *logrus.Entry
}

// NewPlayer opens and decodes path (wav or mp3 by extension) and
// initializes the speaker for its native sample rate
func NewPlayer(path string, log *logrus.Logger) (*Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported audio format %q (wav and mp3 only)", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(parameter.SpeakerBufferDuration)); err != nil {
		streamer.Close()
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":       path,
		"sampleRate": format.SampleRate,
		"channels":   format.NumChannels,
	}).Info("audio source loaded")

	return &Player{
		streamer: streamer,
		format:   format,
		ring:     NewSampleRing(parameter.TapRingSize),
		log:      log.WithField("component", "player"),
	}, nil
}

// Start begins looped playback at the given volume (doublings relative to
// source level; 0 is unchanged)
func (p *Player) Start(volume float64) {
	tap := &tapStreamer{src: beep.Loop(-1, p.streamer), ring: p.ring}
	speaker.Play(&effects.Volume{
		Streamer: tap,
		Base:     2,
		Volume:   volume,
	})
	p.log.Info("playback started")
}

// Ring exposes the tapped sample stream; satisfies SampleSource
func (p *Player) Ring() *SampleRing {
	return p.ring
}

// Close stops the speaker and releases the decoder
func (p *Player) Close() {
	speaker.Clear()
	speaker.Close()
	if err := p.streamer.Close(); err != nil {
		p.log.WithError(err).Warn("streamer close failed")
	}
}

// tapStreamer passes samples through while copying their mono mix into
// the ring. Allocation-free in Stream: the scratch buffer is reused
type tapStreamer struct {
	src     beep.Streamer
	ring    *SampleRing
	scratch []float64
}

func (t *tapStreamer) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.src.Stream(samples)
	if n > 0 {
		if cap(t.scratch) < n {
			t.scratch = make([]float64, n)
		}
		mono := t.scratch[:n]
		for i := 0; i < n; i++ {
			mono[i] = (samples[i][0] + samples[i][1]) / 2
		}
		t.ring.Push(mono)
	}
	return n, ok
}

func (t *tapStreamer) Err() error {
	return t.src.Err()
}
