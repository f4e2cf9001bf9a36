package dto

// CreateExamTypeRequest creates a hierarchy root.
type CreateExamTypeRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// UpdateExamTypeRequest updates a hierarchy root.
type UpdateExamTypeRequest = CreateExamTypeRequest

// CreateDepartmentRequest creates a department under an exam type.
type CreateDepartmentRequest struct {
	ExamTypeID int64  `json:"examTypeId" binding:"required,min=1"`
	Name       string `json:"name" binding:"required,min=2,max=255"`
}

// UpdateDepartmentRequest renames a department.
type UpdateDepartmentRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
}

// CreateAcademicPeriodRequest creates a period under a department.
type CreateAcademicPeriodRequest struct {
	DepartmentID int64  `json:"departmentId" binding:"required,min=1"`
	Name         string `json:"name" binding:"required,min=2,max=255"`
}

// UpdateAcademicPeriodRequest renames a period.
type UpdateAcademicPeriodRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
}

// CreateMaterialRequest creates a material under an academic period.
type CreateMaterialRequest struct {
	AcademicPeriodID int64  `json:"academicPeriodId" binding:"required,min=1"`
	Title            string `json:"title" binding:"required,min=2,max=255"`
	Type             string `json:"type" binding:"required,oneof=DOCUMENT QUESTION"`
}

// UpdateMaterialRequest updates a material's title and type.
type UpdateMaterialRequest struct {
	Title string `json:"title" binding:"required,min=2,max=255"`
	Type  string `json:"type" binding:"required,oneof=DOCUMENT QUESTION"`
}

// CreateQuestionOption is one option in a question creation request.
type CreateQuestionOption struct {
	OptionText string `json:"optionText" binding:"required,min=1,max=2000"`
	IsCorrect  bool   `json:"isCorrect"`
}

// CreateQuestionRequest creates a question with its options.
type CreateQuestionRequest struct {
	QuestionText string                 `json:"questionText" binding:"required,min=1"`
	Explanation  *string                `json:"explanation" binding:"omitempty,max=5000"`
	Options      []CreateQuestionOption `json:"options" binding:"required,min=1,dive"`
}
