package assets

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/sim"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthToneHeader(t *testing.T) {
	spec := config.ToneSpec{Wave: config.WaveSquare, Freq: 440, Duration: 0.1, Volume: 0.5}

	data := SynthTone(spec, 44100)

	require.Greater(t, len(data), 44)
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
	assert.Equal(t, "data", string(data[36:40]))
	dataLen := binary.LittleEndian.Uint32(data[40:44])
	assert.Equal(t, uint32(4410*channels*bytesPerSample), dataLen)
	assert.Equal(t, int(dataLen)+44, len(data))
}

func TestSynthToneDecodes(t *testing.T) {
	for id, spec := range config.Sound.SFX {
		stream, err := wav.DecodeWithSampleRate(config.Audio.SampleRate, bytes.NewReader(SynthTone(spec, config.Audio.SampleRate)))
		require.NoError(t, err, "sound %d", id)

		pcm, err := io.ReadAll(stream)
		require.NoError(t, err)
		assert.NotEmpty(t, pcm, "sound %d", id)
	}
}

func TestSynthToneIsDeterministic(t *testing.T) {
	spec := config.Sound.SFX[config.SoundServe]
	assert.Equal(t, SynthTone(spec, 22050), SynthTone(spec, 22050))
}

func TestSynthMelodyLength(t *testing.T) {
	notes := []config.Note{{Freq: 440, Beats: 1}, {Freq: 0, Beats: 1}}

	data := SynthMelody(notes, 120, 0.3, 1000)

	// Two half-second notes at 1 kHz.
	assert.Equal(t, uint32(1000*channels*bytesPerSample), binary.LittleEndian.Uint32(data[40:44]))
}

func TestLoadCourts(t *testing.T) {
	courts, err := LoadCourts()
	require.NoError(t, err)
	require.NotEmpty(t, courts)

	classic, err := LoadCourt("classic")
	require.NoError(t, err)
	assert.Equal(t, sim.DefaultConfig(), classic.Apply(sim.DefaultConfig()))

	_, err = LoadCourt("missing")
	assert.Error(t, err)
}
