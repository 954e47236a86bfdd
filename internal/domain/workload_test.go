package domain_test

import (
	"testing"
	"time"

	"gestion-talento/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLoad(t *testing.T) {
	tests := []struct {
		percent float64
		want    domain.LoadClass
	}{
		{0, domain.LoadUnderload},
		{49.9, domain.LoadUnderload},
		{50, domain.LoadNominal},
		{79.9, domain.LoadNominal},
		{80, domain.LoadOverload},
		{100, domain.LoadOverload},
		{137.5, domain.LoadOverload},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.ClassifyLoad(tt.percent), "percent %.1f", tt.percent)
	}
}

func TestPeriodOf(t *testing.T) {
	// 2026-08-29 is a Saturday in ISO week 35.
	assert.Equal(t, "2026-W35", domain.PeriodOf(time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)))
	// Jan 1st 2027 belongs to ISO week 53 of 2026.
	assert.Equal(t, "2026-W53", domain.PeriodOf(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)))
	// Single-digit weeks are zero padded.
	assert.Equal(t, "2026-W02", domain.PeriodOf(time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)))
}

func TestWorkloadSnapshot_Breakdown(t *testing.T) {
	snap := &domain.WorkloadSnapshot{
		PerProject: []byte(`[{"project_id":"11111111-1111-1111-1111-111111111111","hours":20},{"project_id":"22222222-2222-2222-2222-222222222222","hours":10}]`),
	}

	breakdown, err := snap.Breakdown()
	assert.NoError(t, err)
	assert.Len(t, breakdown, 2)
	assert.Equal(t, 20.0, breakdown[0].Hours)
	assert.Equal(t, 10.0, breakdown[1].Hours)

	empty := &domain.WorkloadSnapshot{}
	breakdown, err = empty.Breakdown()
	assert.NoError(t, err)
	assert.Empty(t, breakdown)
}
