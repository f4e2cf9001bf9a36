package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/kaan/examportal/internal/app/models"
	appRepos "github.com/kaan/examportal/internal/app/repositories"
	"github.com/kaan/examportal/internal/pkg/auth"
	"github.com/kaan/examportal/internal/pkg/validation"
)

const defaultSuperAdminEmail = "admin@examportal.app"

// CreateDefaultData seeds a default super admin and a small sample content
// hierarchy into an empty database. Existing rows are left alone.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminRepo := appRepos.NewAdminRepository(dbPool)
	examTypeRepo := appRepos.NewExamTypeRepository(dbPool)
	deptRepo := appRepos.NewDepartmentRepository(dbPool)
	periodRepo := appRepos.NewAcademicPeriodRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	if err := seedSuperAdmin(ctx, adminRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	examTypes, err := examTypeRepo.GetAll(ctx)
	if err != nil {
		return errors.Join(finalErr, err)
	}
	if len(examTypes) > 0 {
		// already populated, nothing to seed
		return finalErr
	}

	examType := &appModels.ExamType{Name: "University Entrance"}
	if err := examTypeRepo.Create(ctx, examType); err != nil {
		lgr.Error().Err(err).Msg("Error creating sample exam type")
		return errors.Join(finalErr, err)
	}

	for _, deptName := range []string{"Mathematics", "Physics"} {
		dept := &appModels.Department{ExamTypeID: examType.ID, Name: deptName}
		if err := deptRepo.Create(ctx, dept); err != nil {
			lgr.Error().Err(err).Str("department", deptName).Msg("Error creating sample department")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		period := &appModels.AcademicPeriod{DepartmentID: dept.ID, Name: "2025-2026"}
		if err := periodRepo.Create(ctx, period); err != nil {
			lgr.Error().Err(err).Str("department", deptName).Msg("Error creating sample academic period")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Sample content hierarchy created")
	return finalErr
}

// seedSuperAdmin creates the default super admin unless one already exists.
// The initial password comes from SEED_ADMIN_PASSWORD and must be changed
// after first login.
func seedSuperAdmin(ctx context.Context, adminRepo *appRepos.AdminRepository, lgr zerolog.Logger) error {
	exists, err := adminRepo.EmailExists(ctx, defaultSuperAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default super admin")
		return err
	}
	if exists {
		return nil
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
		lgr.Warn().Msg("SEED_ADMIN_PASSWORD not set, seeding super admin with default password")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &appModels.Admin{
		Email:        validation.NormalizeEmail(defaultSuperAdminEmail),
		Password:     hash,
		Name:         "Super Admin",
		IsActive:     true,
		IsSuperAdmin: true,
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating default super admin")
		return err
	}

	lgr.Info().Str("email", defaultSuperAdminEmail).Msg("Default super admin created")
	return nil
}
