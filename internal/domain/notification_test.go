package domain_test

import (
	"testing"

	"gestion-talento/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDeadlineWarningKey(t *testing.T) {
	userID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	projectID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	key := domain.DeadlineWarningKey(userID, projectID, 3)
	assert.Equal(t, "deadline-warning:11111111-1111-1111-1111-111111111111:22222222-2222-2222-2222-222222222222:t3", key)

	// Different tiers are distinct warnings.
	assert.NotEqual(t, key, domain.DeadlineWarningKey(userID, projectID, 7))
}

func TestWelcomeKey(t *testing.T) {
	userID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	assert.Equal(t, "welcome:11111111-1111-1111-1111-111111111111", domain.WelcomeKey(userID))
}
