// Package wavfile serializes captured audio into temporary WAV files.
package wavfile

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Write encodes mono float32 samples as 16-bit PCM into a temporary
// WAV file and returns its path. Samples are clamped to [-1, 1] before
// conversion. The caller owns the file and must remove it.
func Write(samples []float32, sampleRate int) (string, error) {
	f, err := os.CreateTemp("", "shh-*.wav")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()

	fail := func(step string, err error) (string, error) {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("%s: %w", step, err)
	}

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		buf.Data[i] = int(s * 32767)
	}

	if err := enc.Write(buf); err != nil {
		enc.Close()
		return fail("write wav data", err)
	}
	if err := enc.Close(); err != nil {
		return fail("finalize wav", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close wav file: %w", err)
	}
	return path, nil
}
