package models

import "time"

type RequirementPriority string

const (
	PriorityHigh   RequirementPriority = "high"
	PriorityMedium RequirementPriority = "medium"
	PriorityLow    RequirementPriority = "low"
)

func (p RequirementPriority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type RequirementStatus string

const (
	StatusDraft     RequirementStatus = "draft"
	StatusConfirmed RequirementStatus = "confirmed"
	StatusFrozen    RequirementStatus = "frozen"
)

func (s RequirementStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusConfirmed, StatusFrozen:
		return true
	}
	return false
}

// Requirement is one tracked product requirement. Version increments on
// every content update so downstream artifacts can reference the revision
// they were generated from.
type Requirement struct {
	ID        string              `json:"id" db:"id"`
	Title     string              `json:"title" db:"title"`
	Content   string              `json:"content" db:"content"`
	Priority  RequirementPriority `json:"priority" db:"priority"`
	Status    RequirementStatus   `json:"status" db:"status"`
	Version   int                 `json:"version" db:"version"`
	CreatorID string              `json:"creator_id" db:"creator_id"`
	CreatedAt time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt time.Time           `json:"updated_at" db:"updated_at"`
}
