package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps missing timestamps", func(t *testing.T) {
		store := NewInMemoryStore()
		fixed := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
		p := NewPublisher(store)
		p.now = func() time.Time { return fixed }

		require.NoError(t, p.Emit(ctx, Event{Action: ActionSpeakerRegistered, SpeakerID: "s-1"}))

		events, err := store.ListBySpeaker(ctx, "s-1")
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, fixed, events[0].Timestamp)
	})

	t.Run("keeps explicit timestamps", func(t *testing.T) {
		store := NewInMemoryStore()
		ts := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, NewPublisher(store).Emit(ctx, Event{Timestamp: ts, SpeakerID: "s-2"}))

		events, _ := store.ListBySpeaker(ctx, "s-2")
		require.Len(t, events, 1)
		assert.Equal(t, ts, events[0].Timestamp)
	})
}

func TestInMemoryStore_ListRecent(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Append(ctx, Event{SpeakerID: id}))
	}

	recent, err := store.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "c", recent[0].SpeakerID)
	assert.Equal(t, "b", recent[1].SpeakerID)

	all, err := store.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestQueue(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts until full", func(t *testing.T) {
		ch := make(chan Event, 1)
		q := NewQueue(ch)

		require.NoError(t, q.Append(ctx, Event{SpeakerID: "first"}))
		err := q.Append(ctx, Event{SpeakerID: "second"})
		assert.ErrorIs(t, err, ErrQueueFull)
	})
}

type failingStore struct{}

func (failingStore) Append(context.Context, Event) error { return errors.New("broker down") }

func TestWorker(t *testing.T) {
	t.Run("forwards queued events to the sink", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		inbox := make(chan Event, 2)
		sink := NewInMemoryStore()
		done := make(chan error, 1)

		go func() { done <- NewWorker(sink, inbox, nil).Run(ctx) }()
		inbox <- Event{SpeakerID: "queued"}

		require.Eventually(t, func() bool {
			events, _ := sink.ListBySpeaker(context.Background(), "queued")
			return len(events) == 1
		}, time.Second, 5*time.Millisecond)

		cancel()
		assert.ErrorIs(t, <-done, context.Canceled)
	})

	t.Run("logs sink failures and keeps running", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inbox := make(chan Event)
		done := make(chan error, 1)

		go func() { done <- NewWorker(failingStore{}, inbox, logger).Run(ctx) }()
		inbox <- Event{Action: ActionSpeakerRejected}
		inbox <- Event{Action: ActionSpeakerRejected}

		cancel()
		<-done
		assert.Contains(t, buf.String(), "failed to forward audit event")
	})
}

func TestEncodeRecord(t *testing.T) {
	event := Event{Action: ActionSpeakerRegistered, SpeakerID: "s-9", Email: "ada@example.com", Fee: 250}

	record, err := encodeRecord("speaker-audit", event)
	require.NoError(t, err)
	assert.Equal(t, "speaker-audit", record.Topic)
	assert.Equal(t, []byte("ada@example.com"), record.Key)
	require.Len(t, record.Headers, 1)
	assert.Equal(t, "speaker_registered", string(record.Headers[0].Value))

	var decoded Event
	require.NoError(t, json.Unmarshal(record.Value, &decoded))
	assert.Equal(t, event.SpeakerID, decoded.SpeakerID)
	assert.Equal(t, 250, decoded.Fee)
}

func TestNewKafkaSink_RequiresConfig(t *testing.T) {
	_, err := NewKafkaSink(nil, "topic")
	assert.Error(t, err)

	_, err = NewKafkaSink([]string{"localhost:9092"}, "")
	assert.Error(t, err)
}
