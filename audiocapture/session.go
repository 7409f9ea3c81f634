// Package audiocapture records microphone audio into a bounded buffer.
package audiocapture

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const (
	// DefaultSampleRate is the rate Whisper expects.
	DefaultSampleRate = 16000

	// DefaultMaxDuration caps a recording at five minutes.
	DefaultMaxDuration = 300 * time.Second

	// blockDuration is the nominal size of one capture block.
	blockDuration = 100 * time.Millisecond
)

// Config holds configuration for a capture session.
type Config struct {
	SampleRate  int           // Sample rate in Hz, default 16000
	MaxDuration time.Duration // Recording cap, default 300s
}

// inputStream is the platform stream behind a session.
type inputStream interface {
	Start() error
	Stop() error
	Close() error
}

// streamOpener creates an input stream delivering mono float32 blocks
// to onBlock. The callback does not own the slice it receives.
type streamOpener func(sampleRate int, onBlock func([]float32)) (inputStream, error)

// Session is one open microphone recording. Blocks arriving from the
// stream callback are accumulated until Close, which flattens them in
// arrival order. A Session must not be reused after Close.
type Session struct {
	mu          sync.Mutex
	sampleRate  int
	maxDuration time.Duration
	startTime   time.Time
	blocks      [][]float32
	flat        []float32
	stream      inputStream
	closed      bool

	now func() time.Time
}

// Open acquires the default microphone and starts recording.
func Open(cfg Config) (*Session, error) {
	return openWith(openStream, cfg)
}

func openWith(open streamOpener, cfg Config) (*Session, error) {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	if cfg.MaxDuration <= 0 {
		cfg.MaxDuration = DefaultMaxDuration
	}

	s := &Session{
		sampleRate:  cfg.SampleRate,
		maxDuration: cfg.MaxDuration,
		now:         time.Now,
	}

	stream, err := open(cfg.SampleRate, s.appendBlock)
	if err != nil {
		return nil, fmt.Errorf("open input stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		if cerr := stream.Close(); cerr != nil {
			slog.Error("close input stream", "error", cerr)
		}
		return nil, fmt.Errorf("start input stream: %w", err)
	}

	s.stream = stream
	s.startTime = s.now()
	return s, nil
}

// appendBlock copies one stream block into the session buffer. The
// stream reclaims its buffer after the callback returns, so the copy
// is mandatory. Safe to call concurrently with Elapsed and Close.
func (s *Session) appendBlock(block []float32) {
	if len(block) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	buf := make([]float32, len(block))
	copy(buf, block)
	s.blocks = append(s.blocks, buf)
}

// SampleRate returns the configured sample rate.
func (s *Session) SampleRate() int {
	return s.sampleRate
}

// Elapsed returns how long the session has been recording.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now().Sub(s.startTime)
}

// MaxDuration returns the recording cap.
func (s *Session) MaxDuration() time.Duration {
	return s.maxDuration
}

// MaxDurationReached reports whether elapsed time has met or passed
// the cap. The boundary is inclusive.
func (s *Session) MaxDurationReached() bool {
	return s.Elapsed() >= s.maxDuration
}

// Close stops and releases the stream, then flattens the accumulated
// blocks in arrival order into a single buffer. A capture that never
// produced a block yields an empty, non-nil slice. Close is
// idempotent; later calls return the same buffer.
func (s *Session) Close() []float32 {
	s.mu.Lock()
	if s.closed {
		flat := s.flat
		s.mu.Unlock()
		return flat
	}
	s.closed = true
	stream := s.stream
	s.mu.Unlock()

	// Stop outside the lock: the stream waits for in-flight callbacks,
	// and those callbacks take the same lock.
	if err := stream.Stop(); err != nil {
		slog.Error("stop input stream", "error", err)
	}
	if err := stream.Close(); err != nil {
		slog.Error("close input stream", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, b := range s.blocks {
		total += len(b)
	}
	flat := make([]float32, 0, total)
	for _, b := range s.blocks {
		flat = append(flat, b...)
	}
	s.blocks = nil
	s.flat = flat
	return flat
}
