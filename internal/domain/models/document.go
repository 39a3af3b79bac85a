package models

import "time"

type DocType string

const (
	DocTypeCode         DocType = "code"
	DocTypeRequirement  DocType = "requirement"
	DocTypeTest         DocType = "test"
	DocTypeArchitecture DocType = "architecture"
)

func (d DocType) Valid() bool {
	switch d {
	case DocTypeCode, DocTypeRequirement, DocTypeTest, DocTypeArchitecture:
		return true
	}
	return false
}

// Document is one stored artifact: hand-written or the saved output of a
// generation run.
type Document struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	DocType   DocType   `json:"doc_type" db:"doc_type"`
	Content   string    `json:"content" db:"content"`
	TaskID    *string   `json:"task_id,omitempty" db:"task_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
