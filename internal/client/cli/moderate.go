package cli

import (
	"context"
	"fmt"

	"github.com/prepshare/prepshare/internal/client/models"
	"github.com/prepshare/prepshare/internal/client/moderation"
)

// Pending loads both moderation queues and prints them. A failed category
// is reported through the sink while the other still renders.
func (a *App) Pending(ctx context.Context) error {
	err := a.queue.LoadPending(ctx)

	for _, category := range models.Categories() {
		if a.queue.State(category) != moderation.StateLoaded {
			continue
		}
		items := a.queue.Pending(category)
		fmt.Fprintf(a.out, "\nPending %s approvals:\n", category.DisplayName())
		if len(items) == 0 {
			fmt.Fprintf(a.out, "  none\n")
			continue
		}
		for _, item := range items {
			fmt.Fprintf(a.out, "  [%s] %s — %s (submitted %s)\n",
				item.ID, item.Title, item.Company, item.SubmittedAt.Format("2006-01-02"))
		}
	}
	return err
}

// Approve confirms a pending item: approve <interview|oa> <id>.
func (a *App) Approve(ctx context.Context, args []string) error {
	return a.resolve(ctx, args, models.DecisionApprove)
}

// Reject declines a pending item: reject <interview|oa> <id>.
func (a *App) Reject(ctx context.Context, args []string) error {
	return a.resolve(ctx, args, models.DecisionReject)
}

func (a *App) resolve(ctx context.Context, args []string, decision models.Decision) error {
	if len(args) != 2 {
		fmt.Fprintf(a.out, "Usage: %s <interview|oa> <id>\n", decision)
		return nil
	}
	category := models.Category(args[0])
	if !category.Valid() {
		fmt.Fprintf(a.out, "Unknown category %q (expected interview or oa)\n", args[0])
		return moderation.ErrUnknownCategory
	}
	return a.queue.Resolve(ctx, category, args[1], decision)
}
