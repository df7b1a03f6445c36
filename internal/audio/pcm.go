// Package audio decodes session master recordings and prepares the clips cut
// from them: mono downmix, cutting by milliseconds and peak normalisation.
package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// DefaultHeadroomDB is the headroom left below full scale when clips are
// normalised.
const DefaultHeadroomDB = 0.1

// ErrUnsupportedFormat is returned for anything other than 16-bit PCM WAV.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// PCM is interleaved signed 16-bit audio.
type PCM struct {
	SampleRate int
	Channels   int
	Samples    []int16
}

// Decode reads a 16-bit PCM WAV stream.
func Decode(r io.ReadSeeker) (*PCM, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: not a WAV file", ErrUnsupportedFormat)
	}
	if dec.BitDepth != 16 {
		return nil, fmt.Errorf("%w: %d-bit samples", ErrUnsupportedFormat, dec.BitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}

	samples := make([]int16, len(buf.Data))
	for i, s := range buf.Data {
		samples[i] = clamp16(s)
	}

	return &PCM{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		Samples:    samples,
	}, nil
}

// Frames is the number of sample frames (samples per channel).
func (p *PCM) Frames() int {
	if p.Channels <= 0 {
		return 0
	}
	return len(p.Samples) / p.Channels
}

// IsEmpty reports whether the audio has no frames.
func (p *PCM) IsEmpty() bool {
	return p == nil || p.Frames() == 0
}

// DurationMs is the length of the audio in milliseconds.
func (p *PCM) DurationMs() int64 {
	if p.SampleRate <= 0 {
		return 0
	}
	return int64(p.Frames()) * 1000 / int64(p.SampleRate)
}

// Mono averages all channels of each frame. Mono input is returned as is.
func (p *PCM) Mono() *PCM {
	if p.Channels <= 1 {
		return p
	}

	frames := p.Frames()
	out := make([]int16, frames)
	for i := range frames {
		var sum int32
		for c := range p.Channels {
			sum += int32(p.Samples[i*p.Channels+c])
		}
		out[i] = int16(sum / int32(p.Channels))
	}
	return &PCM{SampleRate: p.SampleRate, Channels: 1, Samples: out}
}

// Cut returns the frames between startMs (inclusive) and stopMs (exclusive),
// clipped to the bounds of the audio. The samples are copied.
func (p *PCM) Cut(startMs, stopMs int64) *PCM {
	frames := int64(p.Frames())
	from := clampFrame(startMs*int64(p.SampleRate)/1000, frames)
	to := clampFrame(stopMs*int64(p.SampleRate)/1000, frames)
	if to < from {
		to = from
	}

	ch := int64(p.Channels)
	out := make([]int16, (to-from)*ch)
	copy(out, p.Samples[from*ch:to*ch])
	return &PCM{SampleRate: p.SampleRate, Channels: p.Channels, Samples: out}
}

// Normalize scales the audio so its peak sits headroomDB below full scale.
// Silent audio is returned unchanged.
func (p *PCM) Normalize(headroomDB float64) *PCM {
	var peak int32
	for _, s := range p.Samples {
		v := int32(s)
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		return p
	}

	target := math.Pow(10, -headroomDB/20) * math.MaxInt16
	gain := target / float64(peak)

	out := make([]int16, len(p.Samples))
	for i, s := range p.Samples {
		out[i] = clamp16(int(math.Round(float64(s) * gain)))
	}
	return &PCM{SampleRate: p.SampleRate, Channels: p.Channels, Samples: out}
}

// Bytes returns the samples as little-endian 16-bit PCM.
func (p *PCM) Bytes() []byte {
	out := make([]byte, len(p.Samples)*2)
	for i, s := range p.Samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}

// WriteWAV encodes the audio as a 16-bit PCM WAV file.
func (p *PCM) WriteWAV(w io.WriteSeeker) error {
	enc := wav.NewEncoder(w, p.SampleRate, 16, p.Channels, 1)

	data := make([]int, len(p.Samples))
	for i, s := range p.Samples {
		data[i] = int(s)
	}
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: p.Channels, SampleRate: p.SampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close wav: %w", err)
	}
	return nil
}

func clampFrame(f, frames int64) int64 {
	if f < 0 {
		return 0
	}
	if f > frames {
		return frames
	}
	return f
}

func clamp16(v int) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
