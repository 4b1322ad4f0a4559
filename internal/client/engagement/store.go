// Package engagement keeps per-item vote state consistent between the local
// view and the backend's confirmed truth.
package engagement

import (
	"context"
	"errors"
	"sync"

	"github.com/prepshare/prepshare/internal/client/api"
	"github.com/prepshare/prepshare/internal/client/models"
	"github.com/prepshare/prepshare/internal/client/notify"
	"github.com/prepshare/prepshare/internal/client/session"
	"github.com/prepshare/prepshare/internal/common"
	"github.com/prepshare/prepshare/internal/logging"
)

var (
	// ErrUnknownItem means ToggleVote was called for an item the store has
	// never been given.
	ErrUnknownItem = errors.New("unknown item")

	// ErrVoteInFlight means a prior toggle for the same item has not
	// resolved yet. The repeat call is dropped without a server round trip.
	ErrVoteInFlight = errors.New("vote already in flight")
)

const (
	msgLoginRequired  = "Please log in to upvote."
	msgSessionExpired = "Your session has expired. Please log in again."
	msgUpvoted        = "Upvoted!"
	msgUpvoteRemoved  = "Upvote removed."
	msgGenericFailure = "Something went wrong while upvoting."
)

// Session is the slice of the session tracker the store depends on.
type Session interface {
	Current() session.Principal
	Subscribe(fn func(session.Principal)) (unsubscribe func())
}

// Store tracks an EngagementRecord per loaded item.
//
// Vote counts are server-authoritative: a record is only ever replaced
// wholesale from a confirmed VoteResult, never incremented or decremented
// locally. The voted flag is recomputed from the item's voter set whenever
// the principal changes, with no network call.
type Store struct {
	sess Session
	api  api.Client
	sink notify.Sink
	log  logging.Logger

	mu       sync.Mutex
	items    map[string]models.Experience
	records  map[string]models.EngagementRecord
	inflight map[string]struct{}
	onUpdate func(models.Experience)
	unsub    func()
}

// NewStore builds a store and subscribes it to principal changes.
func NewStore(sess Session, client api.Client, sink notify.Sink, log logging.Logger) *Store {
	s := &Store{
		sess:     sess,
		api:      client,
		sink:     sink,
		log:      log.With("component", "engagement"),
		items:    make(map[string]models.Experience),
		records:  make(map[string]models.EngagementRecord),
		inflight: make(map[string]struct{}),
	}
	s.unsub = sess.Subscribe(s.recomputeAll)
	return s
}

// Close releases the store's session subscription.
func (s *Store) Close() {
	if s.unsub != nil {
		s.unsub()
		s.unsub = nil
	}
}

// SetUpdateHook registers fn to receive the refreshed item after a confirmed
// toggle, so a parent list view can update its copy without a refetch.
func (s *Store) SetUpdateHook(fn func(models.Experience)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = fn
}

// Load seeds (or re-seeds) records for the given items. The voted flag is
// derived from membership of the current principal in each item's voter set.
func (s *Store) Load(items ...models.Experience) {
	p := s.sess.Current()
	uid := ""
	if p != nil {
		uid = p.UID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		s.items[item.ID] = item
		s.records[item.ID] = models.EngagementRecord{
			ItemID:             item.ID,
			VoteCount:          item.Upvotes,
			VotedByCurrentUser: item.UpvotedByUser(uid),
		}
	}
}

// Forget discards state for items that left the view.
func (s *Store) Forget(ids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		delete(s.items, id)
		delete(s.records, id)
	}
}

// Record returns the current engagement state for an item.
func (s *Store) Record(id string) (models.EngagementRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	return rec, ok
}

// recomputeAll re-derives every voted flag after a principal change. Counts
// are untouched; no network call is made.
func (s *Store) recomputeAll(p session.Principal) {
	uid := ""
	if p != nil {
		uid = p.UID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, rec := range s.records {
		item, ok := s.items[id]
		if !ok {
			continue
		}
		rec.VotedByCurrentUser = item.UpvotedByUser(uid)
		s.records[id] = rec
	}
}

// updateVoterSet returns a copy of set with uid present iff voted.
func updateVoterSet(set []string, uid string, voted bool) []string {
	out := make([]string, 0, len(set)+1)
	for _, id := range set {
		if id != uid {
			out = append(out, id)
		}
	}
	if voted && uid != "" {
		out = append(out, uid)
	}
	return out
}

// ToggleVote flips the current user's vote on itemID.
//
// With no principal the backend is never contacted; the user is told to log
// in and state is left unchanged. A repeat call while a toggle is already in
// flight is dropped with ErrVoteInFlight. On success the record is replaced
// wholesale from the response; on failure nothing is mutated and the server's
// reason (when supplied) is surfaced. Every issued attempt ends in exactly
// one notification.
func (s *Store) ToggleVote(ctx context.Context, itemID string) error {
	p := s.sess.Current()
	if p == nil {
		s.sink.Notify(msgLoginRequired, notify.SeverityInfo, notify.DefaultDuration)
		return common.ErrSignInRequired
	}

	s.mu.Lock()
	if _, ok := s.records[itemID]; !ok {
		s.mu.Unlock()
		return ErrUnknownItem
	}
	if _, busy := s.inflight[itemID]; busy {
		s.mu.Unlock()
		return ErrVoteInFlight
	}
	s.inflight[itemID] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inflight, itemID)
		s.mu.Unlock()
	}()

	// Fresh credential per call: short-lived tokens must not be reused.
	token, err := p.Token(ctx)
	if err != nil {
		s.sink.Notify(msgSessionExpired, notify.SeverityError, notify.DefaultDuration)
		return err
	}

	res, err := s.api.ToggleUpvote(ctx, token, itemID)
	if err != nil {
		s.log.Warn(ctx, "upvote toggle failed", "item", itemID, "err", err)
		s.sink.Notify(api.Reason(err, msgGenericFailure), notify.SeverityError, notify.DefaultDuration)
		return err
	}

	s.mu.Lock()
	s.records[itemID] = models.EngagementRecord{
		ItemID:             itemID,
		VoteCount:          res.Upvotes,
		VotedByCurrentUser: res.Upvoted,
	}
	var updated *models.Experience
	if res.UpdatedExperience != nil {
		s.items[itemID] = *res.UpdatedExperience
		updated = res.UpdatedExperience
	} else if item, ok := s.items[itemID]; ok {
		// No full item in the response: mirror the confirmed count and the
		// principal's confirmed membership onto the local copy before
		// propagating it upward. Upvoted is server truth, not guesswork, so
		// the voter set stays usable for later principal-change recomputes.
		item.Upvotes = res.Upvotes
		item.UpvotedBy = updateVoterSet(item.UpvotedBy, p.UID(), res.Upvoted)
		s.items[itemID] = item
		updated = &item
	}
	hook := s.onUpdate
	s.mu.Unlock()

	if hook != nil && updated != nil {
		hook(*updated)
	}

	if res.Upvoted {
		s.sink.Notify(msgUpvoted, notify.SeveritySuccess, notify.DefaultDuration)
	} else {
		s.sink.Notify(msgUpvoteRemoved, notify.SeveritySuccess, notify.DefaultDuration)
	}
	return nil
}
