package audit

import (
	"context"
	"errors"
)

// ErrQueueFull is returned when the async queue cannot accept more events.
var ErrQueueFull = errors.New("audit queue full")

// Queue is a Store that hands events to a Worker through a buffered channel
// so request paths never block on the downstream sink.
type Queue struct {
	out chan<- Event
}

func NewQueue(out chan<- Event) *Queue {
	return &Queue{out: out}
}

func (q *Queue) Append(ctx context.Context, event Event) error {
	select {
	case q.out <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrQueueFull
	}
}
