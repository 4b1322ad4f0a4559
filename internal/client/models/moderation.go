package models

import "time"

// Category identifies one of the two moderated content kinds. The raw values
// are the backend's path segments.
type Category string

const (
	CategoryInterview Category = "interview"
	CategoryScreening Category = "oa"
)

// Categories lists all moderated categories in display order.
func Categories() []Category {
	return []Category{CategoryInterview, CategoryScreening}
}

// DisplayName returns the human-readable kind used in notifications.
func (c Category) DisplayName() string {
	switch c {
	case CategoryInterview:
		return "Experience"
	case CategoryScreening:
		return "OA Question"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c == CategoryInterview || c == CategoryScreening
}

// Decision is a moderator's verdict on a pending item. The raw values are
// the backend's path segments.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Valid reports whether d is a known decision.
func (d Decision) Valid() bool {
	return d == DecisionApprove || d == DecisionReject
}

// ScreeningQuestion is one online-assessment question awaiting or past
// moderation.
type ScreeningQuestion struct {
	ID        string    `json:"_id"`
	Question  string    `json:"question"`
	Company   string    `json:"company"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
}

// PendingItem is the category-agnostic view of a submission awaiting
// moderation. Only unapproved items are ever materialized as PendingItems.
type PendingItem struct {
	ID          string
	Category    Category
	Title       string
	Subtitle    string
	Company     string
	SubmittedAt time.Time
}

// PendingFromExperience projects an experience into the moderation queue view.
func PendingFromExperience(e Experience) PendingItem {
	return PendingItem{
		ID:          e.ID,
		Category:    CategoryInterview,
		Title:       e.Name,
		Subtitle:    e.Title() + " at " + e.Company,
		Company:     e.Company,
		SubmittedAt: e.CreatedAt,
	}
}

// PendingFromScreening projects a screening question into the moderation
// queue view.
func PendingFromScreening(q ScreeningQuestion) PendingItem {
	return PendingItem{
		ID:          q.ID,
		Category:    CategoryScreening,
		Title:       q.Question,
		Company:     q.Company,
		SubmittedAt: q.CreatedAt,
	}
}
