package cli

import (
	"context"
	"errors"

	"github.com/prepshare/prepshare/internal/client/engagement"
)

// Upvote toggles the current user's vote on an experience. All outcome
// feedback (login nudge, success, failure) arrives through the notification
// sink; a toggle already in flight is ignored, mirroring a disabled button.
func (a *App) Upvote(ctx context.Context, args []string) error {
	id, err := a.resolveExperienceID(args, "upvote")
	if err != nil {
		return err
	}

	err = a.votes.ToggleVote(ctx, id)
	if errors.Is(err, engagement.ErrVoteInFlight) {
		return nil
	}
	return err
}
