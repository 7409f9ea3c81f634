package app

import "fmt"

// Kind classifies a pipeline failure by the stage that produced it.
type Kind int

const (
	// KindConfig means the run could not start (missing API key, bad flags).
	KindConfig Kind = iota + 1
	// KindRecording means the microphone stream could not be opened.
	KindRecording
	// KindNoAudio means the capture finished with zero samples.
	KindNoAudio
	// KindEncoding means the captured buffer could not be written as WAV.
	KindEncoding
	// KindTranscription means the speech-to-text call failed.
	KindTranscription
	// KindFormatting means the formatting/translation call failed.
	KindFormatting
	// KindInterrupted means the operator aborted the run during capture.
	KindInterrupted
)

// Exit codes are part of the CLI contract; scripts depend on them.
const (
	ExitOK            = 0
	ExitConfig        = 2
	ExitRecording     = 10
	ExitNoAudio       = 11
	ExitEncoding      = 12
	ExitTranscription = 13
	ExitFormatting    = 14
	ExitInterrupted   = 130
)

// Stage names the failing stage for one-line error messages.
func (k Kind) Stage() string {
	switch k {
	case KindConfig:
		return "configuration"
	case KindRecording:
		return "recording"
	case KindNoAudio:
		return "recording"
	case KindEncoding:
		return "encoding"
	case KindTranscription:
		return "transcription"
	case KindFormatting:
		return "formatting"
	case KindInterrupted:
		return "interrupt"
	}
	return "unknown"
}

// ExitCode maps the kind to its stable process exit code.
func (k Kind) ExitCode() int {
	switch k {
	case KindConfig:
		return ExitConfig
	case KindRecording:
		return ExitRecording
	case KindNoAudio:
		return ExitNoAudio
	case KindEncoding:
		return ExitEncoding
	case KindTranscription:
		return ExitTranscription
	case KindFormatting:
		return ExitFormatting
	case KindInterrupted:
		return ExitInterrupted
	}
	return 1
}

// Error is a classified pipeline failure.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.Stage() + " failed"
	}
	return fmt.Sprintf("%s failed: %v", e.Kind.Stage(), e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ExitCode returns the process exit code for this failure.
func (e *Error) ExitCode() int { return e.Kind.ExitCode() }
