package audio

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSilentWav(t *testing.T, dir string, rate beep.SampleRate, samples int) string {
	t.Helper()
	path := filepath.Join(dir, "eat.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Silence(samples), format))
	return path
}

func newQuietManager() *Manager {
	return NewManager(log.New(io.Discard, "", 0))
}

func TestDecoderFor(t *testing.T) {
	for _, path := range []string{"a.wav", "b.MP3", "dir/c.ogg"} {
		decode, err := decoderFor(path)
		assert.NoError(t, err, path)
		assert.NotNil(t, decode, path)
	}

	_, err := decoderFor("music.flac")
	assert.ErrorContains(t, err, ".flac")
}

func TestUninitializedManagerIsSilent(t *testing.T) {
	m := newQuietManager()

	m.PlayMusic("missing.mp3")
	m.PlaySoundEffect("missing.wav")
	m.Update(0.5)
	m.Close()

	assert.Nil(t, m.music)
	assert.Empty(t, m.buffers)
}

func TestEffectBufferIsDecodedOnce(t *testing.T) {
	path := writeSilentWav(t, t.TempDir(), sampleRate, 4800)
	m := newQuietManager()

	first, err := m.bufferLocked(path)
	require.NoError(t, err)
	assert.Equal(t, 4800, first.Len())

	second, err := m.bufferLocked(path)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestEffectBufferIsResampled(t *testing.T) {
	path := writeSilentWav(t, t.TempDir(), sampleRate/2, 2400)
	m := newQuietManager()

	buffer, err := m.bufferLocked(path)
	require.NoError(t, err)
	assert.Equal(t, sampleRate, buffer.Format().SampleRate)
	assert.InDelta(t, 4800, buffer.Len(), 64)
}

func TestEffectBufferMissingFile(t *testing.T) {
	m := newQuietManager()

	_, err := m.bufferLocked(filepath.Join(t.TempDir(), "missing.wav"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, m.buffers)
}
