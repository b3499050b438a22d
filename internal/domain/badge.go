package domain

import "time"

// BadgeStatus is the completion state reported by the Badger service
type BadgeStatus string

// Badge completion statuses
const (
	BadgeStatusNotStarted BadgeStatus = "NOT_STARTED"
	BadgeStatusIncomplete BadgeStatus = "INCOMPLETE"
	BadgeStatusComplete   BadgeStatus = "COMPLETE"
)

// Badge is a snapshot of one user badge as returned by the Badger service.
// Snapshots are immutable; the poller only compares successive snapshots,
// it never mutates them.
type Badge struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Status      BadgeStatus      `json:"status"`
	Progress    float64          `json:"progress"`
	CompletedAt *time.Time       `json:"completedAt,omitempty"`
	Conditions  []BadgeCondition `json:"conditions,omitempty"`
}

// BadgeCondition is one progress condition attached to a badge
type BadgeCondition struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
	Target      float64 `json:"target"`
	Progress    float64 `json:"progress"`
}

// IsComplete reports whether the badge has been earned
func (b Badge) IsComplete() bool {
	return b.Status == BadgeStatusComplete
}

// CompletedAfter reports whether the badge completed strictly after t.
// Badges without a completion timestamp are never "after" anything.
func (b Badge) CompletedAfter(t time.Time) bool {
	if !b.IsComplete() || b.CompletedAt == nil {
		return false
	}
	return b.CompletedAt.After(t)
}
