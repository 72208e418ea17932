package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/mjibson/go-dsp/wav"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

const (
	wavFormatPCM   = 1
	wavFormatFloat = 3
)

// DecodeWAV reads a PCM or float WAV stream and returns mono samples at
// sampleRate. The header is parsed by go-dsp; samples are taken from the
// data chunk directly so the count is exact for any length.
func DecodeWAV(r io.Reader, sampleRate int) ([]float32, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read wav: %w", err)
	}
	w, err := wav.New(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to read wav header: %w", err)
	}
	if w.NumChannels == 0 || w.SampleRate == 0 {
		return nil, fmt.Errorf("wav with %d channels at %d Hz: %w", w.NumChannels, w.SampleRate, ErrUnsupportedFormat)
	}
	data, err := wavData(raw)
	if err != nil {
		return nil, err
	}
	samples, err := pcmToFloats(data, int(w.AudioFormat), int(w.BitsPerSample))
	if err != nil {
		return nil, err
	}
	mono := Downmix(samples, int(w.NumChannels))
	return Resample(mono, int(w.SampleRate), sampleRate), nil
}

// wavData returns the payload of the first data chunk. A chunk that claims
// more bytes than the file holds is truncated to what is present.
func wavData(raw []byte) ([]byte, error) {
	pos := 12 // RIFF header
	for pos+8 <= len(raw) {
		id := string(raw[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(raw[pos+4:]))
		start := pos + 8
		if id == "data" {
			end := start + size
			if end > len(raw) || end < start {
				end = len(raw)
			}
			return raw[start:end], nil
		}
		pos = start + size + size&1
		if pos < start {
			break
		}
	}
	return nil, fmt.Errorf("wav has no data chunk: %w", ErrUnsupportedFormat)
}

// pcmToFloats scales samples to [-1, 1]. A trailing partial sample is
// dropped.
func pcmToFloats(data []byte, format, bits int) ([]float32, error) {
	switch {
	case format == wavFormatPCM && bits == 8:
		out := make([]float32, len(data))
		for i, v := range data {
			out[i] = (float32(v) - 128) / 128
		}
		return out, nil
	case format == wavFormatPCM && bits == 16:
		n := len(data) / 2
		out := make([]float32, n)
		for i := 0; i < n; i++ {
			out[i] = float32(int16(binary.LittleEndian.Uint16(data[i*2:]))) / 32768
		}
		return out, nil
	case format == wavFormatPCM && bits == 24:
		n := len(data) / 3
		out := make([]float32, n)
		for i := 0; i < n; i++ {
			b := data[i*3:]
			v := int32(uint32(b[0])<<8|uint32(b[1])<<16|uint32(b[2])<<24) >> 8
			out[i] = float32(v) / (1 << 23)
		}
		return out, nil
	case format == wavFormatPCM && bits == 32:
		n := len(data) / 4
		out := make([]float32, n)
		for i := 0; i < n; i++ {
			out[i] = float32(float64(int32(binary.LittleEndian.Uint32(data[i*4:]))) / (1 << 31))
		}
		return out, nil
	case format == wavFormatFloat && bits == 32:
		return bytesToFloats(data), nil
	default:
		return nil, fmt.Errorf("wav format %d with %d bits: %w", format, bits, ErrUnsupportedFormat)
	}
}

// DecodeFile decodes path to mono samples at sampleRate. WAV files are read
// directly, anything else goes through ffmpeg.
func DecodeFile(path string, sampleRate int, ffmpegPath string) ([]float32, error) {
	if strings.EqualFold(filepath.Ext(path), ".wav") {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sound %q: %w", path, err)
		}
		defer f.Close()
		return DecodeWAV(f, sampleRate)
	}
	return decodeFFmpeg(path, sampleRate, ffmpegPath)
}

func decodeFFmpeg(path string, sampleRate int, ffmpegPath string) ([]float32, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open sound %q: %w", path, err)
	}

	log.Printf("Decoding %s with FFmpeg...", path)
	buf := bytes.NewBuffer(nil)
	cmd := ffmpeg.Input(path).
		Output("pipe:", ffmpeg.KwArgs{
			"f":  "f32le",
			"ac": 1,
			"ar": sampleRate,
		}).
		WithOutput(buf)
	if ffmpegPath != "" {
		cmd = cmd.SetFfmpegPath(ffmpegPath)
	}
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg failed to decode %q: %w", path, err)
	}
	return bytesToFloats(buf.Bytes()), nil
}

// bytesToFloats converts little-endian f32 PCM. A trailing partial sample
// is dropped.
func bytesToFloats(b []byte) []float32 {
	n := len(b) / 4
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return out
}

// Downmix averages interleaved channels into one.
func Downmix(samples []float32, channels int) []float32 {
	if channels <= 1 {
		return samples
	}
	frames := len(samples) / channels
	out := make([]float32, frames)
	for i := 0; i < frames; i++ {
		var sum float32
		for c := 0; c < channels; c++ {
			sum += samples[i*channels+c]
		}
		out[i] = sum / float32(channels)
	}
	return out
}

// Resample converts samples from one rate to another by linear
// interpolation.
func Resample(samples []float32, from, to int) []float32 {
	if from == to || from <= 0 || to <= 0 || len(samples) == 0 {
		return samples
	}
	n := int(int64(len(samples)) * int64(to) / int64(from))
	out := make([]float32, n)
	step := float64(from) / float64(to)
	last := len(samples) - 1
	for i := range out {
		pos := float64(i) * step
		j := int(pos)
		if j >= last {
			out[i] = samples[last]
			continue
		}
		frac := float32(pos - float64(j))
		out[i] = samples[j]*(1-frac) + samples[j+1]*frac
	}
	return out
}
