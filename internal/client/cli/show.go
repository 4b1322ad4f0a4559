package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/prepshare/prepshare/internal/client/api"
	"github.com/prepshare/prepshare/internal/common"
)

// Show prints one experience in full. The read path raises no toast: a
// missing or unreachable item renders as its own terminal state.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.resolveExperienceID(args, "show")
	if err != nil {
		return err
	}

	exp, err := a.catalog.Get(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) || errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintln(a.out, "Experience not found.")
		} else {
			fmt.Fprintln(a.out, "Failed to load the experience. Try again later.")
		}
		return err
	}

	a.votes.Load(*exp)
	rec, _ := a.votes.Record(exp.ID)

	fmt.Fprintf(a.out, "\n%s — %s at %s\n", exp.Name, exp.Title(), exp.Company)
	if exp.Difficulty != "" {
		fmt.Fprintf(a.out, "Difficulty: %s\n", exp.Difficulty)
	}
	fmt.Fprintf(a.out, "Posted: %s\n", exp.CreatedAt.Format("2006-01-02"))
	voted := ""
	if rec.VotedByCurrentUser {
		voted = " (you upvoted)"
	}
	fmt.Fprintf(a.out, "Upvotes: %d%s\n\n", rec.VoteCount, voted)
	if exp.Description != "" {
		fmt.Fprintln(a.out, exp.Description)
	} else if exp.Content != "" {
		fmt.Fprintln(a.out, exp.Content)
	}
	return nil
}
