package cli

import (
	"context"
	"fmt"
)

// List prints the approved experience feed and seeds the engagement store
// with the fetched items so upvote state is ready for toggling.
func (a *App) List(ctx context.Context) error {
	list, err := a.catalog.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load experiences: %v\n", err)
		return err
	}

	a.mu.Lock()
	a.lastList = list
	a.mu.Unlock()
	a.votes.Load(list...)

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No experiences yet.")
		return nil
	}

	for i, exp := range list {
		rec, _ := a.votes.Record(exp.ID)
		marker := " "
		if rec.VotedByCurrentUser {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%3d. %s%-4d %s — %s at %s\n",
			i+1, marker, rec.VoteCount, exp.Name, exp.Title(), exp.Company)
	}
	return nil
}
