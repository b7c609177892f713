package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherInvokesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var seen []EventType
	d.Subscribe(EventMemberApproved, func(_ context.Context, e Event) error {
		seen = append(seen, e.Type)
		return nil
	})
	d.Subscribe(EventMemberRejected, func(_ context.Context, e Event) error {
		seen = append(seen, e.Type)
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventMemberApproved})
	require.NoError(t, err)
	assert.Equal(t, []EventType{EventMemberApproved}, seen)
}

func TestDispatcherSwallowsHandlerErrors(t *testing.T) {
	d := NewInMemoryDispatcher()

	calls := 0
	d.Subscribe(EventMemberRegistered, func(context.Context, Event) error {
		calls++
		return errors.New("smtp down")
	})
	d.Subscribe(EventMemberRegistered, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventMemberRegistered})
	require.NoError(t, err, "handler failures must not surface to the publisher")
	assert.Equal(t, 2, calls, "later handlers still run after a failure")
}
