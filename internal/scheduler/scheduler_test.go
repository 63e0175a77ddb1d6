package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/catgar/catgar/internal/logging"
)

// Sub-minute intervals must be honoured as-is, so the job has to fire a
// second time well before a full minute elapses.
func TestStart_SubMinuteInterval(t *testing.T) {
	runs := make(chan struct{}, 8)
	s := New(50*time.Millisecond, func(ctx context.Context) error {
		runs <- struct{}{}
		return nil
	}, logging.New("error", "text"))

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	for i := 0; i < 2; i++ {
		select {
		case <-runs:
		case <-time.After(5 * time.Second):
			t.Fatalf("job did not run %d times within 5s", i+1)
		}
	}
}

func TestStart_JobErrorKeepsSchedule(t *testing.T) {
	runs := make(chan struct{}, 8)
	s := New(50*time.Millisecond, func(ctx context.Context) error {
		runs <- struct{}{}
		return errors.New("upstream down")
	}, logging.New("error", "text"))

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	for i := 0; i < 2; i++ {
		select {
		case <-runs:
		case <-time.After(5 * time.Second):
			t.Fatal("schedule stopped after a failing run")
		}
	}
}
