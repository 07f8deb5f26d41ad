// Package wavio decodes 16-bit PCM WAV data for the demo driver. It is
// deliberately minimal: canonical 44-byte header, PCM only.
package wavio

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// header is the canonical RIFF/WAVE header layout.
type header struct {
	ChunkID       [4]byte // "RIFF"
	ChunkSize     uint32
	Format        [4]byte // "WAVE"
	Subchunk1ID   [4]byte // "fmt "
	Subchunk1Size uint32
	AudioFormat   uint16 // 1 for PCM
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Subchunk2ID   [4]byte // "data"
	Subchunk2Size uint32
}

// Clip is decoded interleaved PCM audio.
type Clip struct {
	SampleRate int
	Channels   int
	Samples    []int16
}

// Decode parses 16-bit PCM WAV data.
func Decode(data []byte) (*Clip, error) {
	if len(data) < 44 {
		return nil, fmt.Errorf("wavio: data too short: %d bytes", len(data))
	}

	r := bytes.NewReader(data)

	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("wavio: read header: %w", err)
	}

	switch {
	case string(h.ChunkID[:]) != "RIFF" || string(h.Format[:]) != "WAVE":
		return nil, fmt.Errorf("wavio: not a RIFF/WAVE file")
	case string(h.Subchunk1ID[:]) != "fmt " || string(h.Subchunk2ID[:]) != "data":
		return nil, fmt.Errorf("wavio: non-canonical chunk layout")
	case h.AudioFormat != 1:
		return nil, fmt.Errorf("wavio: unsupported audio format %d (PCM only)", h.AudioFormat)
	case h.BitsPerSample != 16:
		return nil, fmt.Errorf("wavio: unsupported bit depth %d (16-bit only)", h.BitsPerSample)
	case h.NumChannels == 0:
		return nil, fmt.Errorf("wavio: zero channels")
	}

	numSamples := int(h.Subchunk2Size) / 2
	if numSamples <= 0 {
		return nil, fmt.Errorf("wavio: no audio data")
	}

	samples := make([]int16, numSamples)
	if err := binary.Read(r, binary.LittleEndian, samples); err != nil {
		return nil, fmt.Errorf("wavio: read samples: %w", err)
	}

	return &Clip{
		SampleRate: int(h.SampleRate),
		Channels:   int(h.NumChannels),
		Samples:    samples,
	}, nil
}

// Encode serialises PCM samples into canonical mono WAV data. It exists
// so tests can round-trip clips without fixture files.
func Encode(samples []int16, sampleRate int) ([]byte, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("wavio: no samples")
	}

	if sampleRate <= 0 {
		return nil, fmt.Errorf("wavio: sample rate must be positive: %d", sampleRate)
	}

	dataSize := uint32(len(samples) * 2)

	h := header{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     36 + dataSize,
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   1,
		NumChannels:   1,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate) * 2,
		BlockAlign:    2,
		BitsPerSample: 16,
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: dataSize,
	}

	buf := bytes.NewBuffer(make([]byte, 0, 44+len(samples)*2))

	if err := binary.Write(buf, binary.LittleEndian, h); err != nil {
		return nil, fmt.Errorf("wavio: write header: %w", err)
	}

	if err := binary.Write(buf, binary.LittleEndian, samples); err != nil {
		return nil, fmt.Errorf("wavio: write samples: %w", err)
	}

	return buf.Bytes(), nil
}
