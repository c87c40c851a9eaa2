package closequeue

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestJoinWaitsForTaskDone(t *testing.T) {
	q := New[int](0)
	for i := 0; i < 3; i++ {
		if err := q.TryPut(i); err != nil {
			t.Fatal(err)
		}
	}
	if q.Unfinished() != 3 {
		t.Fatalf("unfinished = %d want 3", q.Unfinished())
	}

	done := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		done <- q.Join(ctx)
	}()

	for i := 0; i < 3; i++ {
		if _, err := q.TryGet(); err != nil {
			t.Fatal(err)
		}
		if err := q.TaskDone(); err != nil {
			t.Fatal(err)
		}
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("join: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("join did not return after all tasks were done")
	}
}

func TestJoinReturnsImmediatelyWhenIdle(t *testing.T) {
	q := New[int](0)
	if err := q.Join(context.Background()); err != nil {
		t.Fatalf("join on idle queue: %v", err)
	}
}

func TestJoinContextDeadline(t *testing.T) {
	q := New[int](0)
	if err := q.TryPut(1); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := q.Join(ctx); !errors.Is(err, ErrDeadlineExceeded) {
		t.Fatalf("join = %v want deadline exceeded", err)
	}
}

func TestTaskDoneOverflow(t *testing.T) {
	q := New[int](0)
	if err := q.TaskDone(); !errors.Is(err, ErrTaskDone) {
		t.Fatalf("taskdone on idle queue = %v want ErrTaskDone", err)
	}
	if err := q.TryPut(1); err != nil {
		t.Fatal(err)
	}
	if err := q.TaskDone(); err != nil {
		t.Fatal(err)
	}
	if err := q.TaskDone(); !errors.Is(err, ErrTaskDone) {
		t.Fatalf("extra taskdone = %v want ErrTaskDone", err)
	}
}

func TestCloseDoesNotRetireTasks(t *testing.T) {
	q := New[int](0)
	if err := q.TryPut(1); err != nil {
		t.Fatal(err)
	}
	q.Close()
	if q.Unfinished() != 1 {
		t.Fatalf("unfinished = %d want 1: close must not touch the counter", q.Unfinished())
	}
}
