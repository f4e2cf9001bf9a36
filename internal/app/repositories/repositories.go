package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	ExamTypeRepository       *ExamTypeRepository
	DepartmentRepository     *DepartmentRepository
	AcademicPeriodRepository *AcademicPeriodRepository
	MaterialRepository       *MaterialRepository
	DocumentRepository       *DocumentRepository
	QuestionRepository       *QuestionRepository
	AdminRepository          *AdminRepository
	UserRepository           *UserRepository
	TokenRepository          *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ExamTypeRepository:       NewExamTypeRepository(db),
		DepartmentRepository:     NewDepartmentRepository(db),
		AcademicPeriodRepository: NewAcademicPeriodRepository(db),
		MaterialRepository:       NewMaterialRepository(db),
		DocumentRepository:       NewDocumentRepository(db),
		QuestionRepository:       NewQuestionRepository(db),
		AdminRepository:          NewAdminRepository(db),
		UserRepository:           NewUserRepository(db),
		TokenRepository:          NewTokenRepository(db),
	}
}
