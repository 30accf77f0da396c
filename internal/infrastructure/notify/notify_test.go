package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

type countingNotifier struct{ n int }

func (c *countingNotifier) Notify(context.Context, domain.Notification) { c.n++ }

func TestKafkaNotifierPublishes(t *testing.T) {
	w := &fakeWriter{}
	k := NewKafkaNotifierWithWriter(w, "storefront_events")
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	k.Notify(context.Background(), domain.Notification{
		Kind:      domain.NotifyCartAdded,
		SessionID: "session-1",
		ItemID:    "7",
		Title:     "Added to cart",
		At:        at,
	})

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, "session-1", string(msg.Key))
	assert.Equal(t, at, msg.Time)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "cart_added", string(msg.Headers[0].Value))

	var decoded domain.Notification
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "7", decoded.ItemID)

	require.NoError(t, k.Close())
	assert.True(t, w.closed)
}

func TestKafkaNotifierSwallowsErrors(t *testing.T) {
	k := NewKafkaNotifierWithWriter(&fakeWriter{err: errors.New("broker down")}, "t")

	assert.NotPanics(t, func() {
		k.Notify(context.Background(), domain.Notification{Kind: domain.NotifyCartAdded})
	})
}

func TestMultiFansOut(t *testing.T) {
	a, b := &countingNotifier{}, &countingNotifier{}
	m := Multi{a, NewLogNotifier(), b}

	m.Notify(context.Background(), domain.Notification{Kind: domain.NotifyWishlistAdded})

	assert.Equal(t, 1, a.n)
	assert.Equal(t, 1, b.n)
}
