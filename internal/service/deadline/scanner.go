// Package deadline decides which active projects are close enough to
// their deadline to warrant a warning, and at which urgency tier.
package deadline

import (
	"sort"
	"time"

	"gestion-talento/internal/domain"
)

// DueProject pairs a project with the urgency tier it matched. Tier is
// the day-offset window, so smaller means more urgent.
type DueProject struct {
	Project  domain.Project
	Tier     int
	DaysLeft int
}

// FindDueProjects returns at most one entry per project: the smallest
// configured window the deadline falls within. Projects without a
// deadline, inactive projects, and projects already past their deadline
// are excluded; the engine warns before a deadline, never after.
func FindDueProjects(projects []domain.Project, now time.Time, windows []int) []DueProject {
	if len(windows) == 0 {
		return nil
	}

	sorted := make([]int, 0, len(windows))
	for _, w := range windows {
		if w >= 0 {
			sorted = append(sorted, w)
		}
	}
	sort.Ints(sorted)

	var due []DueProject
	for _, project := range projects {
		if !project.Active || project.Deadline == nil {
			continue
		}
		if project.Deadline.Before(now) {
			continue
		}

		days := int(project.Deadline.Sub(now).Hours() / 24)
		for _, window := range sorted {
			if days <= window {
				due = append(due, DueProject{Project: project, Tier: window, DaysLeft: days})
				break
			}
		}
	}
	return due
}
