// Package models holds the client-side representations of backend resources.
// JSON tags follow the backend's Mongo-flavored field names (_id, createdAt).
package models

import "time"

// Experience is one interview-experience report as returned by the backend.
// Upvotes and UpvotedBy are server-authoritative; the client never adjusts
// them locally by guesswork.
type Experience struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	RoleApplied string    `json:"roleApplied,omitempty"`
	Company     string    `json:"company"`
	Difficulty  string    `json:"difficulty,omitempty"`
	Description string    `json:"description,omitempty"`
	Content     string    `json:"content,omitempty"`
	Approved    bool      `json:"approved"`
	Upvotes     int       `json:"upvotes"`
	UpvotedBy   []string  `json:"upvotedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Title returns the display headline, preferring the explicit roleApplied
// field over the legacy role field.
func (e Experience) Title() string {
	if e.RoleApplied != "" {
		return e.RoleApplied
	}
	return e.Role
}

// UpvotedByUser reports whether uid is in the experience's voter set.
func (e Experience) UpvotedByUser(uid string) bool {
	if uid == "" {
		return false
	}
	for _, id := range e.UpvotedBy {
		if id == uid {
			return true
		}
	}
	return false
}

// VoteResult is the backend's response to a vote toggle. UpdatedExperience
// is optional; when present it carries the full refreshed item so list views
// can be updated without a refetch.
type VoteResult struct {
	Upvotes           int         `json:"upvotes"`
	Upvoted           bool        `json:"upvoted"`
	UpdatedExperience *Experience `json:"updatedExperience,omitempty"`
}

// EngagementRecord is the per-item vote state shown to the current user.
// It is replaced wholesale from a confirmed VoteResult, never incremented.
type EngagementRecord struct {
	ItemID             string
	VoteCount          int
	VotedByCurrentUser bool
}
