package app

import (
	"bufio"
	"context"
	"io"
	"time"
)

// pollInterval bounds how late the race can notice a finished
// condition; it is also the progress update cadence.
const pollInterval = 100 * time.Millisecond

// StopReason says why a recording ended.
type StopReason int

const (
	// StopRequested means the operator pressed Enter.
	StopRequested StopReason = iota + 1
	// StopTimeout means the maximum recording duration was reached.
	StopTimeout
	// StopInterrupted means the run was cancelled (SIGINT).
	StopInterrupted
)

func (r StopReason) String() string {
	switch r {
	case StopRequested:
		return "stopped"
	case StopTimeout:
		return "timeout"
	case StopInterrupted:
		return "interrupted"
	}
	return "unknown"
}

// recordingSession is the view of an open capture session the race
// needs.
type recordingSession interface {
	Elapsed() time.Duration
	MaxDuration() time.Duration
	MaxDurationReached() bool
}

// watchStop closes the returned channel once one line arrives on r.
// The reading goroutine cannot be unblocked from outside; when the
// race ends another way it stays parked on the read until the process
// exits, which is the usual fate of a blocked stdin read in a CLI.
func watchStop(r io.Reader) <-chan struct{} {
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		br := bufio.NewReader(r)
		_, _ = br.ReadString('\n')
	}()
	return stopped
}

// waitRecording races the operator's stop signal against the session's
// maximum duration, reporting progress each poll tick. The deadline is
// checked before the stop signal on every pass, so an exactly
// simultaneous stop resolves to StopTimeout and a recording can never
// overrun its cap.
func waitRecording(ctx context.Context, sess recordingSession, stopInput io.Reader, progress func(elapsed, max time.Duration)) StopReason {
	stopped := watchStop(stopInput)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		if sess.MaxDurationReached() {
			return StopTimeout
		}
		if progress != nil {
			progress(sess.Elapsed(), sess.MaxDuration())
		}

		select {
		case <-ctx.Done():
			return StopInterrupted
		case <-stopped:
			if sess.MaxDurationReached() {
				return StopTimeout
			}
			return StopRequested
		case <-ticker.C:
		}
	}
}
