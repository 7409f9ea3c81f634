package audiocapture

import (
	"fmt"
	"log/slog"

	"github.com/gordonklaus/portaudio"
)

// openStream opens the default PortAudio input device: mono, float32,
// with ~100ms blocks delivered to onBlock from the audio thread.
func openStream(sampleRate int, onBlock func([]float32)) (inputStream, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize portaudio: %w", err)
	}

	frames := sampleRate * int(blockDuration.Milliseconds()) / 1000

	stream, err := portaudio.OpenDefaultStream(1, 0, float64(sampleRate), frames,
		func(in []float32, _ portaudio.StreamCallbackTimeInfo, flags portaudio.StreamCallbackFlags) {
			// Overruns drop input on the device side. Not an error: the
			// recording keeps going with whatever arrives.
			if flags&portaudio.InputOverflow != 0 {
				slog.Warn("audio input overflow")
			}
			onBlock(in)
		})
	if err != nil {
		if terr := portaudio.Terminate(); terr != nil {
			slog.Error("terminate portaudio", "error", terr)
		}
		return nil, fmt.Errorf("open default input: %w", err)
	}

	return &paStream{stream: stream}, nil
}

type paStream struct {
	stream *portaudio.Stream
}

func (p *paStream) Start() error { return p.stream.Start() }
func (p *paStream) Stop() error  { return p.stream.Stop() }

func (p *paStream) Close() error {
	err := p.stream.Close()
	if terr := portaudio.Terminate(); terr != nil && err == nil {
		err = terr
	}
	return err
}
