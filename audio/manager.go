// Package audio plays the scene's background music and sound effects through
// the system speaker.
package audio

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	sampleRate = beep.SampleRate(48000)

	resampleQuality = 4

	// Music starts this many volume steps (base 2) below full and rises to
	// full over musicFadeSeconds.
	musicStartVolume = -6
	musicFadeSeconds = 2.0
)

// Manager owns the speaker and mixes music and sound effects into it. All
// failures after Init are logged and swallowed.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *effects.Volume
	musicFile   beep.StreamSeekCloser
	fade        *gween.Tween
	buffers     map[string]*beep.Buffer
	initialized bool
	logger      *log.Logger
}

// NewManager creates a manager. Nothing is played until Init succeeds.
func NewManager(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		mixer:   &beep.Mixer{},
		buffers: make(map[string]*beep.Buffer),
		logger:  logger,
	}
}

// Init opens the speaker. It is the only call whose failure is reported.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// PlayMusic loops the track at path, fading it in. Any previous track stops.
func (m *Manager) PlayMusic(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	streamer, format, err := decodeFile(path)
	if err != nil {
		m.logger.Printf("audio: music %s: %v", path, err)
		return
	}

	m.stopMusicLocked()

	volume := &effects.Volume{
		Streamer: resampled(format, beep.Loop(-1, streamer)),
		Base:     2,
		Volume:   musicStartVolume,
	}

	speaker.Lock()
	m.mixer.Add(volume)
	speaker.Unlock()

	m.music = volume
	m.musicFile = streamer
	m.fade = gween.New(musicStartVolume, 0, musicFadeSeconds, ease.OutQuad)
}

// PlaySoundEffect plays the sound at path once. The file is decoded the first
// time it is requested and replayed from memory afterwards.
func (m *Manager) PlaySoundEffect(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	buffer, err := m.bufferLocked(path)
	if err != nil {
		m.logger.Printf("audio: effect %s: %v", path, err)
		return
	}

	speaker.Lock()
	m.mixer.Add(buffer.Streamer(0, buffer.Len()))
	speaker.Unlock()
}

// Update advances the music fade by dt seconds.
func (m *Manager) Update(dt float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fade == nil || m.music == nil {
		return
	}

	current, finished := m.fade.Update(float32(dt))

	speaker.Lock()
	m.music.Volume = float64(current)
	speaker.Unlock()

	if finished {
		m.fade = nil
	}
}

// Close stops everything that is playing.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()

	m.stopMusicLocked()
	m.buffers = make(map[string]*beep.Buffer)
	m.initialized = false
}

func (m *Manager) stopMusicLocked() {
	if m.music != nil {
		// An exhausted streamer is dropped by the mixer on its next pass.
		speaker.Lock()
		m.music.Streamer = beep.Silence(0)
		speaker.Unlock()
		m.music = nil
	}
	if m.musicFile != nil {
		m.musicFile.Close()
		m.musicFile = nil
	}
	m.fade = nil
}

func (m *Manager) bufferLocked(path string) (*beep.Buffer, error) {
	if buffer, ok := m.buffers[path]; ok {
		return buffer, nil
	}

	streamer, format, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: format.NumChannels,
		Precision:   format.Precision,
	})
	buffer.Append(resampled(format, streamer))
	m.buffers[path] = buffer
	return buffer, nil
}

func resampled(format beep.Format, s beep.Streamer) beep.Streamer {
	if format.SampleRate == sampleRate {
		return s
	}
	return beep.Resample(resampleQuality, format.SampleRate, sampleRate, s)
}

// decodeFile opens path and picks a decoder from its extension. On success the
// returned streamer owns the file.
func decodeFile(path string) (beep.StreamSeekCloser, beep.Format, error) {
	decode, err := decoderFor(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	streamer, format, err := decode(f)
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode: %w", err)
	}
	return streamer, format, nil
}

type decodeFunc func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

func decoderFor(path string) (decodeFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) }, nil
	case ".mp3":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) }, nil
	case ".ogg":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return vorbis.Decode(f) }, nil
	default:
		return nil, fmt.Errorf("unsupported audio format %q", ext)
	}
}
