// Package breadcrumb synthesizes the navigation trail for a point in the
// content hierarchy.
package breadcrumb

import (
	"fmt"

	"github.com/kaan/examportal/internal/app/models"
)

// Crumb is one entry of the trail.
type Crumb struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Path        string `json:"path"`
	IsClickable bool   `json:"isClickable"`
}

// Trail is an optional chain of hierarchy levels. Levels after the first nil
// entry are ignored, keeping the trail contiguous.
type Trail struct {
	ExamType       *models.ExamType
	Department     *models.Department
	AcademicPeriod *models.AcademicPeriod
	Material       *models.Material
}

// Build maps a trail to an ordered crumb list. An empty trail yields the
// single Home crumb; a full trail yields five crumbs in hierarchy order with
// only the last one not clickable.
func Build(t Trail) []Crumb {
	crumbs := []Crumb{{ID: "home", Name: "Home", Path: "/", IsClickable: true}}

	if t.ExamType != nil {
		crumbs = append(crumbs, Crumb{
			ID:          fmt.Sprintf("exam-type-%d", t.ExamType.ID),
			Name:        t.ExamType.Name,
			Path:        fmt.Sprintf("/exam-types/%d", t.ExamType.ID),
			IsClickable: true,
		})
		if t.Department != nil {
			crumbs = append(crumbs, Crumb{
				ID:          fmt.Sprintf("department-%d", t.Department.ID),
				Name:        t.Department.Name,
				Path:        fmt.Sprintf("/departments/%d", t.Department.ID),
				IsClickable: true,
			})
			if t.AcademicPeriod != nil {
				crumbs = append(crumbs, Crumb{
					ID:          fmt.Sprintf("academic-period-%d", t.AcademicPeriod.ID),
					Name:        t.AcademicPeriod.Name,
					Path:        fmt.Sprintf("/academic-periods/%d", t.AcademicPeriod.ID),
					IsClickable: true,
				})
				if t.Material != nil {
					crumbs = append(crumbs, Crumb{
						ID:          fmt.Sprintf("material-%d", t.Material.ID),
						Name:        t.Material.Title,
						Path:        fmt.Sprintf("/materials/%d", t.Material.ID),
						IsClickable: true,
					})
				}
			}
		}
	}

	// The current location is not a link.
	if len(crumbs) > 1 {
		crumbs[len(crumbs)-1].IsClickable = false
	}
	return crumbs
}
