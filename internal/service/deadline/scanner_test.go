package deadline_test

import (
	"testing"
	"time"

	"gestion-talento/internal/domain"
	"gestion-talento/internal/service/deadline"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultWindows = []int{7, 3, 1}

func activeProject(deadline *time.Time) domain.Project {
	return domain.Project{
		ID:       uuid.New(),
		Title:    "Proyecto",
		Deadline: deadline,
		Active:   true,
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func TestFindDueProjects_SmallestWindowWins(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	// 2 full days away matches both the 3 and 7 day windows; the 3-day
	// tier is the one reported.
	project := activeProject(timePtr(now.Add(48 * time.Hour)))

	due := deadline.FindDueProjects([]domain.Project{project}, now, defaultWindows)
	require.Len(t, due, 1)
	assert.Equal(t, 3, due[0].Tier)
	assert.Equal(t, 2, due[0].DaysLeft)
}

func TestFindDueProjects_WindowBoundaries(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	t.Run("Deadline Today Is Tier 1", func(t *testing.T) {
		project := activeProject(timePtr(now.Add(6 * time.Hour)))
		due := deadline.FindDueProjects([]domain.Project{project}, now, defaultWindows)
		require.Len(t, due, 1)
		assert.Equal(t, 1, due[0].Tier)
		assert.Equal(t, 0, due[0].DaysLeft)
	})

	t.Run("Exactly Seven Days Is Tier 7", func(t *testing.T) {
		project := activeProject(timePtr(now.Add(7 * 24 * time.Hour)))
		due := deadline.FindDueProjects([]domain.Project{project}, now, defaultWindows)
		require.Len(t, due, 1)
		assert.Equal(t, 7, due[0].Tier)
		assert.Equal(t, 7, due[0].DaysLeft)
	})

	t.Run("Beyond Largest Window Not Due", func(t *testing.T) {
		project := activeProject(timePtr(now.Add(8 * 24 * time.Hour)))
		due := deadline.FindDueProjects([]domain.Project{project}, now, defaultWindows)
		assert.Empty(t, due)
	})
}

func TestFindDueProjects_Exclusions(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	t.Run("Past Deadline", func(t *testing.T) {
		project := activeProject(timePtr(now.Add(-time.Hour)))
		assert.Empty(t, deadline.FindDueProjects([]domain.Project{project}, now, defaultWindows))
	})

	t.Run("No Deadline", func(t *testing.T) {
		project := activeProject(nil)
		assert.Empty(t, deadline.FindDueProjects([]domain.Project{project}, now, defaultWindows))
	})

	t.Run("Inactive Project", func(t *testing.T) {
		project := activeProject(timePtr(now.Add(24 * time.Hour)))
		project.Active = false
		assert.Empty(t, deadline.FindDueProjects([]domain.Project{project}, now, defaultWindows))
	})

	t.Run("No Windows", func(t *testing.T) {
		project := activeProject(timePtr(now.Add(24 * time.Hour)))
		assert.Empty(t, deadline.FindDueProjects([]domain.Project{project}, now, nil))
	})

	t.Run("Negative Windows Ignored", func(t *testing.T) {
		project := activeProject(timePtr(now.Add(24 * time.Hour)))
		due := deadline.FindDueProjects([]domain.Project{project}, now, []int{-5, 3})
		require.Len(t, due, 1)
		assert.Equal(t, 3, due[0].Tier)
	})
}

func TestFindDueProjects_UnsortedWindows(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	project := activeProject(timePtr(now.Add(48 * time.Hour)))

	// Window order in configuration does not change the matched tier.
	due := deadline.FindDueProjects([]domain.Project{project}, now, []int{1, 7, 3})
	require.Len(t, due, 1)
	assert.Equal(t, 3, due[0].Tier)
}

func TestFindDueProjects_MultipleProjects(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	urgent := activeProject(timePtr(now.Add(12 * time.Hour)))
	near := activeProject(timePtr(now.Add(5 * 24 * time.Hour)))
	far := activeProject(timePtr(now.Add(30 * 24 * time.Hour)))

	due := deadline.FindDueProjects([]domain.Project{urgent, near, far}, now, defaultWindows)
	require.Len(t, due, 2)

	tiers := map[uuid.UUID]int{}
	for _, d := range due {
		tiers[d.Project.ID] = d.Tier
	}
	assert.Equal(t, 1, tiers[urgent.ID])
	assert.Equal(t, 7, tiers[near.ID])
}
