package models

import "time"

// ExamType is the root of the content hierarchy (e.g. a national exam).
type ExamType struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Departments []*Department `json:"departments"`
}
