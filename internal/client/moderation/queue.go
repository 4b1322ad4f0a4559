// Package moderation drives the two-queue pending-approval workflow:
// parallel per-category fetches with partial-failure tolerance, and
// approve/reject decisions that only remove items after the backend
// confirms them.
package moderation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/prepshare/prepshare/internal/client/api"
	"github.com/prepshare/prepshare/internal/client/models"
	"github.com/prepshare/prepshare/internal/client/notify"
	"github.com/prepshare/prepshare/internal/client/session"
	"github.com/prepshare/prepshare/internal/common"
	"github.com/prepshare/prepshare/internal/logging"
)

// State is a per-category load state. The two categories move through their
// states independently; a sibling failure never blocks the other.
type State int

const (
	StateUnloaded State = iota
	StateLoading
	StateLoaded
)

const msgLoginRequired = "Please log in to moderate."

var (
	// ErrUnknownCategory rejects categories outside the fixed enumeration.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrUnknownDecision rejects anything but approve/reject.
	ErrUnknownDecision = errors.New("unknown decision")
)

// Session is the slice of the session tracker the queue depends on.
type Session interface {
	Current() session.Principal
}

// Queue holds the two pending lists. Each list is privately owned and only
// mutated from the queue's own response handling.
type Queue struct {
	sess Session
	api  api.Client
	sink notify.Sink
	log  logging.Logger

	mu     sync.Mutex
	lists  map[models.Category][]models.PendingItem
	states map[models.Category]State
}

// NewQueue builds an empty queue; both categories start unloaded.
func NewQueue(sess Session, client api.Client, sink notify.Sink, log logging.Logger) *Queue {
	q := &Queue{
		sess:   sess,
		api:    client,
		sink:   sink,
		log:    log.With("component", "moderation"),
		lists:  make(map[models.Category][]models.PendingItem),
		states: make(map[models.Category]State),
	}
	for _, c := range models.Categories() {
		q.states[c] = StateUnloaded
	}
	return q
}

// State returns the load state for one category.
func (q *Queue) State(category models.Category) State {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.states[category]
}

// Pending returns a copy of one category's pending list.
func (q *Queue) Pending(category models.Category) []models.PendingItem {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]models.PendingItem, len(q.lists[category]))
	copy(out, q.lists[category])
	return out
}

// LoadPending refreshes both category lists concurrently.
//
// The fetches are independent: one failing leaves that category's previous
// list in place (empty on first load) while the other still populates. Each
// successful fetch replaces its list, never appends, so repeated reloads are
// idempotent. Results are filtered to unapproved items even though the
// endpoints are expected to pre-filter. The joined error covers every failed
// category; failures are also surfaced as notifications.
func (q *Queue) LoadPending(ctx context.Context) error {
	p := q.sess.Current()
	if p == nil {
		q.sink.Notify(msgLoginRequired, notify.SeverityInfo, notify.DefaultDuration)
		return common.ErrSignInRequired
	}

	q.mu.Lock()
	for _, c := range models.Categories() {
		q.states[c] = StateLoading
	}
	q.mu.Unlock()

	var wg sync.WaitGroup
	errs := make([]error, len(models.Categories()))

	for i, category := range models.Categories() {
		wg.Add(1)
		go func(i int, category models.Category) {
			defer wg.Done()
			errs[i] = q.loadCategory(ctx, p, category)
		}(i, category)
	}
	wg.Wait()

	return errors.Join(errs...)
}

func (q *Queue) loadCategory(ctx context.Context, p session.Principal, category models.Category) error {
	items, err := q.fetchPending(ctx, p, category)

	q.mu.Lock()
	if err == nil {
		q.lists[category] = items
	}
	q.states[category] = StateLoaded
	q.mu.Unlock()

	if err != nil {
		q.log.Warn(ctx, "pending fetch failed", "category", category, "err", err)
		q.sink.Notify(
			fmt.Sprintf("Failed to load pending %s items.", category),
			notify.SeverityError, notify.DefaultDuration,
		)
		return fmt.Errorf("loading %s: %w", category, err)
	}
	return nil
}

func (q *Queue) fetchPending(ctx context.Context, p session.Principal, category models.Category) ([]models.PendingItem, error) {
	// Each fetch obtains its own fresh credential.
	token, err := p.Token(ctx)
	if err != nil {
		return nil, err
	}

	switch category {
	case models.CategoryInterview:
		list, err := q.api.ListExperiences(ctx, token)
		if err != nil {
			return nil, err
		}
		items := make([]models.PendingItem, 0, len(list))
		for _, e := range list {
			if e.Approved {
				continue
			}
			items = append(items, models.PendingFromExperience(e))
		}
		return items, nil

	case models.CategoryScreening:
		list, err := q.api.ListScreeningQuestions(ctx, token)
		if err != nil {
			return nil, err
		}
		items := make([]models.PendingItem, 0, len(list))
		for _, s := range list {
			if s.Approved {
				continue
			}
			items = append(items, models.PendingFromScreening(s))
		}
		return items, nil

	default:
		return nil, ErrUnknownCategory
	}
}

// Resolve applies a moderator decision to one pending item.
//
// The item is removed from its local list only after the backend confirms
// success: a moderation action must look slow but certain, never fast but
// possibly wrong. On failure the item stays and a notification names the
// category and the attempted decision. Resolving an id no longer in the list
// is a local no-op and never reaches the backend.
func (q *Queue) Resolve(ctx context.Context, category models.Category, id string, decision models.Decision) error {
	if !category.Valid() {
		return ErrUnknownCategory
	}
	if !decision.Valid() {
		return ErrUnknownDecision
	}

	p := q.sess.Current()
	if p == nil {
		q.sink.Notify(msgLoginRequired, notify.SeverityInfo, notify.DefaultDuration)
		return common.ErrSignInRequired
	}

	q.mu.Lock()
	present := false
	for _, item := range q.lists[category] {
		if item.ID == id {
			present = true
			break
		}
	}
	q.mu.Unlock()
	if !present {
		// Already resolved in this session (e.g. a double invocation).
		return nil
	}

	token, err := p.Token(ctx)
	if err != nil {
		q.notifyResolveFailure(category, decision)
		return err
	}

	if err := q.api.ResolveModeration(ctx, token, category, id, decision); err != nil {
		q.log.Warn(ctx, "moderation decision failed",
			"category", category, "id", id, "decision", decision, "err", err)
		q.notifyResolveFailure(category, decision)
		return err
	}

	q.mu.Lock()
	list := q.lists[category]
	filtered := make([]models.PendingItem, 0, len(list))
	for _, item := range list {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	q.lists[category] = filtered
	q.mu.Unlock()

	q.sink.Notify(
		fmt.Sprintf("%s %s successfully!", category.DisplayName(), pastTense(decision)),
		notify.SeveritySuccess, notify.DefaultDuration,
	)
	return nil
}

func (q *Queue) notifyResolveFailure(category models.Category, decision models.Decision) {
	q.sink.Notify(
		fmt.Sprintf("Failed to %s %s.", decision, category),
		notify.SeverityError, notify.DefaultDuration,
	)
}

func pastTense(d models.Decision) string {
	switch d {
	case models.DecisionApprove:
		return "approved"
	case models.DecisionReject:
		return "rejected"
	default:
		return string(d)
	}
}
