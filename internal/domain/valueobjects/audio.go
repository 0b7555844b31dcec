package valueobjects

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// AudioData is a synthesized speech payload: raw little-endian 16-bit PCM
// samples at a fixed rate. The speech model returns bare PCM, so WAV framing
// is added here when a playable container is needed.
type AudioData struct {
	pcm        []byte
	sampleRate int
	channels   int
}

func NewAudioData(pcm []byte, sampleRate, channels int) (*AudioData, error) {
	if len(pcm) == 0 {
		return nil, fmt.Errorf("audio data cannot be empty")
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate: %d", sampleRate)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("invalid channel count: %d", channels)
	}

	return &AudioData{
		pcm:        pcm,
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

func (a *AudioData) PCM() []byte {
	return a.pcm
}

func (a *AudioData) SampleRate() int {
	return a.sampleRate
}

func (a *AudioData) Channels() int {
	return a.channels
}

// Duration returns the playback length in seconds.
func (a *AudioData) Duration() float64 {
	bytesPerSecond := a.sampleRate * a.channels * 2
	return float64(len(a.pcm)) / float64(bytesPerSecond)
}

// WAV wraps the PCM samples in a RIFF/WAVE header.
func (a *AudioData) WAV() []byte {
	const bitsPerSample = 16

	byteRate := a.sampleRate * a.channels * bitsPerSample / 8
	blockAlign := a.channels * bitsPerSample / 8

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(a.pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(a.channels))
	binary.Write(&buf, binary.LittleEndian, uint32(a.sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(a.pcm)))
	buf.Write(a.pcm)

	return buf.Bytes()
}
