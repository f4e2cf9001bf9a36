package models

import "time"

// Question is a practice question attached to a material.
type Question struct {
	ID           int64     `json:"id"`
	MaterialID   int64     `json:"materialId"`
	QuestionText string    `json:"questionText"`
	Explanation  *string   `json:"explanation,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Options []*QuestionOption `json:"options"`
}

// QuestionOption is one answer choice for a question.
type QuestionOption struct {
	ID         int64     `json:"id"`
	QuestionID int64     `json:"questionId"`
	OptionText string    `json:"optionText"`
	IsCorrect  bool      `json:"isCorrect"`
	CreatedAt  time.Time `json:"createdAt"`
}
