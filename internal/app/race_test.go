package app

import (
	"context"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeSession is a recordingSession whose deadline the test controls.
type fakeSession struct {
	elapsed    atomic.Int64 // nanoseconds
	max        time.Duration
	maxReached atomic.Bool

	mu      sync.Mutex
	samples []float32
	closed  bool
}

func (f *fakeSession) Elapsed() time.Duration     { return time.Duration(f.elapsed.Load()) }
func (f *fakeSession) MaxDuration() time.Duration { return f.max }
func (f *fakeSession) MaxDurationReached() bool   { return f.maxReached.Load() }

func (f *fakeSession) Close() []float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return f.samples
}

// blockedReader never delivers data, like a stdin nobody types into.
type blockedReader struct{}

func (blockedReader) Read([]byte) (int, error) {
	select {}
}

func TestRaceResolvesToStopOnEnter(t *testing.T) {
	sess := &fakeSession{max: time.Hour}

	got := waitRecording(context.Background(), sess, strings.NewReader("\n"), nil)
	if got != StopRequested {
		t.Fatalf("reason = %v, want StopRequested", got)
	}
}

func TestRaceResolvesToTimeoutOnDeadline(t *testing.T) {
	sess := &fakeSession{max: time.Second}
	sess.maxReached.Store(true)

	r, w := io.Pipe()
	defer w.Close()
	defer r.Close()

	got := waitRecording(context.Background(), sess, r, nil)
	if got != StopTimeout {
		t.Fatalf("reason = %v, want StopTimeout", got)
	}
}

func TestRaceTieResolvesToTimeout(t *testing.T) {
	// Stop signal already delivered AND deadline already passed: the
	// deadline is authoritative.
	sess := &fakeSession{max: time.Second}
	sess.maxReached.Store(true)

	got := waitRecording(context.Background(), sess, strings.NewReader("\n"), nil)
	if got != StopTimeout {
		t.Fatalf("reason = %v, want StopTimeout on tie", got)
	}
}

func TestRaceDeadlineNoticedWithinCadence(t *testing.T) {
	sess := &fakeSession{max: time.Second}

	done := make(chan StopReason, 1)
	go func() {
		done <- waitRecording(context.Background(), sess, blockedReader{}, nil)
	}()

	// Let the loop settle into polling, then trip the deadline.
	time.Sleep(20 * time.Millisecond)
	sess.maxReached.Store(true)

	select {
	case got := <-done:
		if got != StopTimeout {
			t.Fatalf("reason = %v, want StopTimeout", got)
		}
	case <-time.After(time.Second):
		t.Fatal("race did not resolve within the poll cadence")
	}
}

func TestRaceInterrupted(t *testing.T) {
	sess := &fakeSession{max: time.Hour}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := waitRecording(ctx, sess, blockedReader{}, nil)
	if got != StopInterrupted {
		t.Fatalf("reason = %v, want StopInterrupted", got)
	}
}

func TestRaceReportsProgress(t *testing.T) {
	sess := &fakeSession{max: time.Hour}
	sess.elapsed.Store(int64(3 * time.Second))

	var calls atomic.Int32
	var gotElapsed, gotMax time.Duration
	progress := func(elapsed, max time.Duration) {
		if calls.Add(1) == 1 {
			gotElapsed, gotMax = elapsed, max
		}
	}

	_ = waitRecording(context.Background(), sess, strings.NewReader("\n"), progress)

	if calls.Load() == 0 {
		t.Fatal("progress never reported")
	}
	if gotElapsed != 3*time.Second || gotMax != time.Hour {
		t.Fatalf("progress got (%v, %v)", gotElapsed, gotMax)
	}
}
