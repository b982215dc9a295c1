package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerRunsJobAndRecordsOutcome(t *testing.T) {
	s := New()
	ran := make(chan struct{})
	s.Register(Job{
		Name:     "ping",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			close(ran)
			return nil
		},
	})

	require.NoError(t, s.Trigger(context.Background(), "ping"))
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run")
	}

	require.Eventually(t, func() bool {
		info, err := s.Info("ping")
		return err == nil && info.Status == StatusOK
	}, 2*time.Second, 10*time.Millisecond)
}

func TestTriggerUnknownJob(t *testing.T) {
	s := New()
	err := s.Trigger(context.Background(), "nope")
	assert.Error(t, err)
}

func TestFailedJobKeepsMessage(t *testing.T) {
	s := New()
	s.Register(Job{
		Name:     "broken",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			return errors.New("disk full")
		},
	})

	require.NoError(t, s.Trigger(context.Background(), "broken"))
	require.Eventually(t, func() bool {
		info, err := s.Info("broken")
		return err == nil && info.Status == StatusFailed && info.Message == "disk full"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestListReportsRegisteredJobs(t *testing.T) {
	s := New()
	s.Register(Job{Name: "a", Description: "first", Interval: time.Minute, Fn: func(ctx context.Context) error { return nil }})
	s.Register(Job{Name: "b", Description: "second", Interval: time.Minute, Fn: func(ctx context.Context) error { return nil }})

	items := s.List()
	assert.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, StatusIdle, it.Status)
		assert.False(t, it.NextRunAt.IsZero())
	}
}
