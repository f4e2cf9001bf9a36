package models

import "time"

// MaterialType discriminates what kind of content a material carries.
type MaterialType string

const (
	MaterialTypeDocument MaterialType = "DOCUMENT"
	MaterialTypeQuestion MaterialType = "QUESTION"
)

// Material is a study item inside an academic period. The type discriminator
// suggests documents and questions are exclusive, but the schema does not
// enforce that and a material may carry both (unresolved invariant).
type Material struct {
	ID               int64        `json:"id"`
	AcademicPeriodID int64        `json:"academicPeriodId"`
	Title            string       `json:"title"`
	Type             MaterialType `json:"type"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`

	Documents []*Document `json:"documents"`
	Questions []*Question `json:"questions"`
}
