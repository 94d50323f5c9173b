package realtime

import (
	"context"
	"testing"
	"time"
)

// runPump emulates the snapshot pump: it delivers changes from src
// until the context is cancelled, then tears the subscription down the
// same way Watch's goroutine does.
func runPump(ctx context.Context, sub *Subscription, src <-chan Change) {
	go func() {
		defer sub.finish()
		for {
			select {
			case c, ok := <-src:
				if !ok {
					return
				}
				sub.deliver(ctx, c)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func TestSubscriptionDeliversChanges(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sub := newSubscription(cancel, 4)
	src := make(chan Change, 4)
	runPump(ctx, sub, src)

	src <- Change{Kind: ChangeAdded, Collection: "processes", DocID: "p1"}

	select {
	case c := <-sub.Events():
		if c.DocID != "p1" || c.Kind != ChangeAdded {
			t.Fatalf("unexpected change: %+v", c)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for change")
	}

	sub.Unsubscribe()
}

func TestUnsubscribeClosesEventsChannel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sub := newSubscription(cancel, 1)
	runPump(ctx, sub, make(chan Change))

	sub.Unsubscribe()

	select {
	case _, open := <-sub.Events():
		if open {
			t.Fatal("expected events channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sub := newSubscription(cancel, 1)
	runPump(ctx, sub, make(chan Change))

	sub.Unsubscribe()
	sub.Unsubscribe() // second call must not panic or hang
}

func TestUnsubscribeDoesNotBlockOnFullBuffer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sub := newSubscription(cancel, 1)
	src := make(chan Change, 8)
	runPump(ctx, sub, src)

	// Fill the buffer and leave one delivery blocked on the channel.
	for i := 0; i < 4; i++ {
		src <- Change{Kind: ChangeAdded, DocID: "x"}
	}

	done := make(chan struct{})
	go func() {
		sub.Unsubscribe()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Unsubscribe blocked on an undrained subscription")
	}
}
