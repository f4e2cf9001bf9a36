package models

import "time"

// Department groups academic periods under an exam type.
type Department struct {
	ID         int64     `json:"id"`
	ExamTypeID int64     `json:"examTypeId"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	AcademicPeriods []*AcademicPeriod `json:"academicPeriods"`
}
