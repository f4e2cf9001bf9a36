package models

import "time"

// AcademicPeriod is a term or year within a department (e.g. "2024 Spring").
type AcademicPeriod struct {
	ID           int64     `json:"id"`
	DepartmentID int64     `json:"departmentId"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Materials []*Material `json:"materials"`
}
