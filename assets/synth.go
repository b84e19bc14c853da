package assets

import (
	"bytes"
	"encoding/binary"
	"math"
	"math/rand/v2"

	"github.com/automoto/pong/config"
)

const (
	channels       = 2
	bytesPerSample = 2
	// attack and release ramps keep tones from clicking
	rampSeconds = 0.004
)

// SynthTone renders spec as a 16-bit stereo WAV file.
func SynthTone(spec config.ToneSpec, sampleRate int) []byte {
	pcm := make([]int16, 0, int(spec.Duration*float64(sampleRate)))
	pcm = appendTone(pcm, spec, sampleRate)
	return encodeWAV(pcm, sampleRate)
}

// SynthMelody renders notes back to back at bpm using a soft square voice.
func SynthMelody(notes []config.Note, bpm float64, volume float64, sampleRate int) []byte {
	beat := 60 / bpm
	var pcm []int16
	for _, n := range notes {
		spec := config.ToneSpec{
			Wave:     config.WaveSquare,
			Freq:     n.Freq,
			Duration: n.Beats * beat,
			Volume:   volume,
		}
		if n.Freq == 0 {
			spec.Volume = 0
		}
		pcm = appendTone(pcm, spec, sampleRate)
	}
	return encodeWAV(pcm, sampleRate)
}

func appendTone(pcm []int16, spec config.ToneSpec, sampleRate int) []int16 {
	n := int(spec.Duration * float64(sampleRate))
	if n <= 0 {
		return pcm
	}
	endFreq := spec.EndFreq
	if endFreq == 0 {
		endFreq = spec.Freq
	}
	ramp := int(rampSeconds * float64(sampleRate))
	noise := rand.New(rand.NewPCG(uint64(spec.Freq*1000)+1, uint64(n)))

	var phase float64
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := spec.Freq + (endFreq-spec.Freq)*t
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		var v float64
		switch spec.Wave {
		case config.WaveSquare:
			v = 1
			if phase >= 0.5 {
				v = -1
			}
		case config.WaveTriangle:
			v = 4*math.Abs(phase-0.5) - 1
		case config.WaveNoise:
			v = noise.Float64()*2 - 1
		}

		env := 1.0
		if i < ramp {
			env = float64(i) / float64(ramp)
		} else if n-i < ramp {
			env = float64(n-i) / float64(ramp)
		}

		s := int16(v * env * spec.Volume * 0.8 * math.MaxInt16)
		for c := 0; c < channels; c++ {
			pcm = append(pcm, s)
		}
	}
	return pcm
}

// encodeWAV wraps interleaved samples in a canonical PCM RIFF header.
func encodeWAV(pcm []int16, sampleRate int) []byte {
	dataLen := len(pcm) * bytesPerSample
	buf := bytes.NewBuffer(make([]byte, 0, 44+dataLen))

	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, struct {
		Size          uint32
		Format        uint16
		Channels      uint16
		SampleRate    uint32
		ByteRate      uint32
		BlockAlign    uint16
		BitsPerSample uint16
	}{
		Size:          16,
		Format:        1,
		Channels:      channels,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * channels * bytesPerSample),
		BlockAlign:    channels * bytesPerSample,
		BitsPerSample: 8 * bytesPerSample,
	})

	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, uint32(dataLen))
	_ = binary.Write(buf, binary.LittleEndian, pcm)
	return buf.Bytes()
}
