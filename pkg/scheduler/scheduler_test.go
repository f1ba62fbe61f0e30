package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
)

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New("", func(context.Context) error { return nil }); err == nil {
		t.Fatalf("expected error for empty expression")
	}

	if _, err := New("* * * * *", nil); err == nil {
		t.Fatalf("expected error for nil job")
	}
}

func TestStartRejectsInvalidExpression(t *testing.T) {
	s, err := New("not-a-cron", func(context.Context) error { return nil })
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if err := s.Start(context.Background()); err == nil {
		t.Fatalf("expected schedule error")
	}
}

func TestStartTwiceFails(t *testing.T) {
	s, err := New("@daily", func(context.Context) error { return nil })
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	ctx := context.Background()

	if err := s.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}

	t.Cleanup(s.Stop)

	if err := s.Start(ctx); err == nil {
		t.Fatalf("expected second start to fail")
	}
}

func TestStopWithoutStartIsNoop(t *testing.T) {
	s, err := New("@daily", func(context.Context) error { return nil })
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	s.Stop()
}

func TestSchedulerRunsJob(t *testing.T) {
	var runs atomic.Int32

	job := func(context.Context) error {
		runs.Add(1)

		return nil
	}

	s, err := New(
		"* * * * * *",
		job,
		WithCron(cron.New(cron.WithParser(DefaultParser))),
		WithJobTimeout(time.Second),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	deadline := time.After(3 * time.Second)

	for runs.Load() == 0 {
		select {
		case <-deadline:
			s.Stop()
			t.Fatalf("job never ran")
		case <-time.After(50 * time.Millisecond):
		}
	}

	s.Stop()
}

func TestRunLogsJobError(t *testing.T) {
	s, err := New("@daily", func(context.Context) error {
		return errors.New("boom")
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	s.run(context.Background())
}
