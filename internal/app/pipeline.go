// Package app drives one recording through transcription to delivery.
package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/shh-cli/shh/audiocapture"
	"github.com/shh-cli/shh/history"
	"github.com/shh-cli/shh/internal/types"
)

// Session is the part of an audio capture session the pipeline drives.
type Session interface {
	Elapsed() time.Duration
	MaxDuration() time.Duration
	MaxDurationReached() bool
	Close() []float32
}

// SessionOpener acquires the microphone.
type SessionOpener func(cfg audiocapture.Config) (Session, error)

// Encoder serializes samples into a temporary file and returns its
// path. The pipeline owns removal of that file.
type Encoder func(samples []float32, sampleRate int) (string, error)

// Transcriber is the remote speech-to-text collaborator.
type Transcriber interface {
	Transcribe(ctx context.Context, wavPath string) (string, error)
}

// Formatter is the remote formatting/translation collaborator.
type Formatter interface {
	Format(ctx context.Context, text string, style types.Style, targetLanguage string) (string, types.Usage, error)
}

// Detector annotates transcripts with their detected language.
type Detector interface {
	Detect(text string) (string, bool)
}

// HistorySink records finished transcriptions.
type HistorySink interface {
	Add(e history.Entry) error
}

// Pipeline sequences one capture-transcribe-format-deliver run.
// OpenSession, Encode and Transcribe are required; the rest are
// optional collaborators.
type Pipeline struct {
	OpenSession SessionOpener
	Encode      Encoder
	Transcriber Transcriber
	Formatter   Formatter
	Copy        func(text string) error
	Detector    Detector
	History     HistorySink

	// Remove releases the encoded temp file. Defaults to os.Remove.
	Remove func(path string) error

	// StopInput delivers the cooperative stop signal, one line per
	// recording. Usually os.Stdin.
	StopInput io.Reader

	// Progress, when set, is called at the poll cadence while
	// recording.
	Progress func(elapsed, max time.Duration)

	SampleRate  int
	MaxDuration time.Duration
}

// Outcome is the terminal value of one pipeline run.
type Outcome struct {
	Text             string
	Copied           bool
	ClipboardErr     error
	DetectedLanguage string
	Stop             StopReason
	Duration         time.Duration
	Usage            types.Usage
	Err              *Error
}

// ExitCode maps the outcome to the process exit code. Clipboard
// failure does not affect it.
func (o Outcome) ExitCode() int {
	if o.Err != nil {
		return o.Err.ExitCode()
	}
	return ExitOK
}

func fail(kind Kind, err error) Outcome {
	return Outcome{Err: &Error{Kind: kind, Err: err}}
}

// Run records until the operator stops or the cap is hit, then carries
// the audio through encoding, transcription, optional formatting and
// clipboard delivery. Every exit path releases the encoded temp file
// exactly once.
func (p *Pipeline) Run(ctx context.Context, style types.Style, targetLanguage string) Outcome {
	sess, err := p.OpenSession(audiocapture.Config{
		SampleRate:  p.SampleRate,
		MaxDuration: p.MaxDuration,
	})
	if err != nil {
		return fail(KindRecording, err)
	}

	reason := waitRecording(ctx, sess, p.StopInput, p.Progress)
	samples := sess.Close()

	if reason == StopInterrupted {
		return Outcome{Stop: reason, Err: &Error{Kind: KindInterrupted, Err: ctx.Err()}}
	}
	if len(samples) == 0 {
		o := fail(KindNoAudio, errors.New("no audio captured"))
		o.Stop = reason
		return o
	}

	sampleRate := p.SampleRate
	if sampleRate <= 0 {
		sampleRate = audiocapture.DefaultSampleRate
	}
	duration := time.Duration(float64(len(samples)) / float64(sampleRate) * float64(time.Second))

	wavPath, err := p.Encode(samples, sampleRate)
	if err != nil {
		o := fail(KindEncoding, err)
		o.Stop = reason
		return o
	}

	// The temp file outlives several stages; release it exactly once
	// no matter which one exits the run.
	removed := false
	release := func() {
		if removed {
			return
		}
		removed = true
		remove := p.Remove
		if remove == nil {
			remove = os.Remove
		}
		if err := remove(wavPath); err != nil && !os.IsNotExist(err) {
			slog.Warn("remove temp audio file", "path", wavPath, "error", err)
		}
	}
	defer release()

	transcript, err := p.Transcriber.Transcribe(ctx, wavPath)
	if err != nil {
		o := fail(KindTranscription, err)
		o.Stop = reason
		return o
	}

	outcome := Outcome{
		Text:     transcript,
		Stop:     reason,
		Duration: duration,
	}

	// Neutral with no translation is a pass-through: the raw
	// transcript is delivered with no formatting call at all.
	if style != types.StyleNeutral || targetLanguage != "" {
		formatted, usage, err := p.Formatter.Format(ctx, transcript, style, targetLanguage)
		if err != nil {
			o := fail(KindFormatting, err)
			o.Stop = reason
			return o
		}
		outcome.Text = formatted
		outcome.Usage = usage
	}

	release()

	if p.Detector != nil {
		if lang, ok := p.Detector.Detect(transcript); ok {
			outcome.DetectedLanguage = lang
		}
	}

	if p.Copy != nil {
		if err := p.Copy(outcome.Text); err != nil {
			outcome.ClipboardErr = err
			slog.Warn("copy to clipboard", "error", err)
		} else {
			outcome.Copied = true
		}
	}

	if p.History != nil {
		err := p.History.Add(history.Entry{
			Text:             outcome.Text,
			Style:            style,
			TargetLanguage:   targetLanguage,
			DetectedLanguage: outcome.DetectedLanguage,
			DurationSeconds:  duration.Seconds(),
		})
		if err != nil {
			slog.Warn("record history entry", "error", err)
		}
	}

	return outcome
}
