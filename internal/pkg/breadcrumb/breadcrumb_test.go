package breadcrumb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/examportal/internal/app/models"
)

func TestBuildEmptyTrail(t *testing.T) {
	crumbs := Build(Trail{})

	require.Len(t, crumbs, 1)
	assert.Equal(t, Crumb{ID: "home", Name: "Home", Path: "/", IsClickable: true}, crumbs[0])
}

func TestBuildFullTrail(t *testing.T) {
	crumbs := Build(Trail{
		ExamType:       &models.ExamType{ID: 1, Name: "University Entrance"},
		Department:     &models.Department{ID: 2, Name: "Mathematics"},
		AcademicPeriod: &models.AcademicPeriod{ID: 3, Name: "2025-2026"},
		Material:       &models.Material{ID: 4, Title: "Limits"},
	})

	require.Len(t, crumbs, 5)
	assert.Equal(t, "home", crumbs[0].ID)
	assert.Equal(t, "exam-type-1", crumbs[1].ID)
	assert.Equal(t, "department-2", crumbs[2].ID)
	assert.Equal(t, "academic-period-3", crumbs[3].ID)
	assert.Equal(t, "material-4", crumbs[4].ID)
	assert.Equal(t, "/materials/4", crumbs[4].Path)

	for _, c := range crumbs[:4] {
		assert.True(t, c.IsClickable, "crumb %s", c.ID)
	}
	assert.False(t, crumbs[4].IsClickable)
}

func TestBuildPartialTrail(t *testing.T) {
	crumbs := Build(Trail{
		ExamType:   &models.ExamType{ID: 1, Name: "University Entrance"},
		Department: &models.Department{ID: 2, Name: "Physics"},
	})

	require.Len(t, crumbs, 3)
	assert.True(t, crumbs[1].IsClickable)
	assert.False(t, crumbs[2].IsClickable)
}

func TestBuildIgnoresLevelsAfterGap(t *testing.T) {
	// A material without its parents does not appear; the trail stays
	// contiguous from the root.
	crumbs := Build(Trail{
		Material: &models.Material{ID: 4, Title: "Limits"},
	})

	require.Len(t, crumbs, 1)
	assert.Equal(t, "home", crumbs[0].ID)
}
