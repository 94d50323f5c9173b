// Package realtime streams office-scoped document changes off
// Firestore query snapshots. The generic subscription primitive is
// store-agnostic so the channel semantics can be tested without a
// Firestore connection.
package realtime

import (
	"context"
	"sync"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
)

// ChangeKind mirrors the snapshot change kinds.
type ChangeKind string

const (
	ChangeAdded    ChangeKind = "added"
	ChangeModified ChangeKind = "modified"
	ChangeRemoved  ChangeKind = "removed"
)

// Change is one document change delivered to a subscriber.
type Change struct {
	Kind       ChangeKind             `json:"kind"`
	Collection string                 `json:"collection"`
	DocID      string                 `json:"docId"`
	Data       map[string]interface{} `json:"data,omitempty"`
}

// Subscription is a handle on a change stream. Events is closed after
// Unsubscribe returns or when the backing stream ends.
type Subscription struct {
	events chan Change
	cancel context.CancelFunc
	once   sync.Once
	done   chan struct{}
}

func newSubscription(cancel context.CancelFunc, buffer int) *Subscription {
	return &Subscription{
		events: make(chan Change, buffer),
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// Events returns the change channel.
func (s *Subscription) Events() <-chan Change {
	return s.events
}

// Unsubscribe stops the stream and waits for the pump goroutine to
// finish. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.once.Do(s.cancel)
	<-s.done
}

// deliver pushes a change without blocking teardown: if the context is
// gone the change is dropped.
func (s *Subscription) deliver(ctx context.Context, c Change) {
	select {
	case s.events <- c:
	case <-ctx.Done():
	}
}

// finish marks the pump as stopped and closes the event channel.
func (s *Subscription) finish() {
	close(s.events)
	close(s.done)
}

// Watcher turns Firestore snapshot streams into Subscriptions.
type Watcher struct {
	fs     *firestore.Client
	logger *zap.Logger
}

// NewWatcher creates a Watcher.
func NewWatcher(fs *firestore.Client, logger *zap.Logger) *Watcher {
	return &Watcher{fs: fs, logger: logger}
}

// Watch subscribes to every change in one collection scoped to an
// office. The subscription lives until Unsubscribe is called or ctx is
// cancelled.
func (w *Watcher) Watch(ctx context.Context, collection, officeID string) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	sub := newSubscription(cancel, 32)

	query := w.fs.Collection(collection).Where("officeId", "==", officeID)
	iter := query.Snapshots(ctx)

	go func() {
		defer sub.finish()
		defer iter.Stop()
		for {
			snap, err := iter.Next()
			if err != nil {
				if ctx.Err() == nil {
					w.logger.Warn("snapshot stream ended",
						zap.String("collection", collection),
						zap.Error(err))
				}
				return
			}
			for _, dc := range snap.Changes {
				c := Change{
					Collection: collection,
					DocID:      dc.Doc.Ref.ID,
				}
				switch dc.Kind {
				case firestore.DocumentAdded:
					c.Kind = ChangeAdded
				case firestore.DocumentModified:
					c.Kind = ChangeModified
				case firestore.DocumentRemoved:
					c.Kind = ChangeRemoved
				}
				if c.Kind != ChangeRemoved {
					c.Data = dc.Doc.Data()
				}
				sub.deliver(ctx, c)
			}
		}
	}()

	return sub
}
