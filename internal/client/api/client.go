package api

import (
	"context"

	"github.com/prepshare/prepshare/internal/client/models"
)

// Client is the remote API surface consumed by the client services.
//
// Authenticated calls take the bearer credential explicitly: credentials are
// short-lived and must be obtained fresh from the principal for every call,
// so the transport never stores one.
type Client interface {
	Close() error

	// ListExperiences fetches every experience visible to the caller.
	// token may be empty for anonymous browsing.
	ListExperiences(ctx context.Context, token string) ([]models.Experience, error)

	// GetExperience fetches a single experience for the detail view.
	GetExperience(ctx context.Context, id string) (*models.Experience, error)

	// ToggleUpvote flips the caller's vote on an experience and returns the
	// server-confirmed vote state.
	ToggleUpvote(ctx context.Context, token string, id string) (*models.VoteResult, error)

	// ListScreeningQuestions fetches every screening question visible to the
	// caller.
	ListScreeningQuestions(ctx context.Context, token string) ([]models.ScreeningQuestion, error)

	// ResolveModeration applies an approve/reject decision to a pending item.
	ResolveModeration(ctx context.Context, token string, category models.Category, id string, decision models.Decision) error
}
