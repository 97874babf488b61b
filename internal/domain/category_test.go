package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecFor(t *testing.T) {
	tests := []struct {
		name          string
		category      ResourceCategory
		expectError   bool
		expectedQuota int
	}{
		{
			name:          "treadmill",
			category:      CategoryTreadmill,
			expectedQuota: 2,
		},
		{
			name:          "cycle",
			category:      CategoryCycle,
			expectedQuota: 2,
		},
		{
			name:          "induction stove",
			category:      CategoryInduction,
			expectedQuota: 3,
		},
		{
			name:          "ping pong table",
			category:      CategoryPingPongTable,
			expectedQuota: 1,
		},
		{
			name:          "arcade machine",
			category:      CategoryArcadeMachine,
			expectedQuota: 1,
		},
		{
			name:        "unknown category",
			category:    ResourceCategory("sauna"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := SpecFor(tt.category)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrUnknownCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.category, spec.Category)
			assert.Equal(t, tt.expectedQuota, spec.MaxBookingActionsPerDay)
			assert.Equal(t, DefaultSlotDurationMinutes, spec.SlotDurationMinutes)
		})
	}
}

func TestSpecBySlug(t *testing.T) {
	tests := []struct {
		slug             string
		expectedCategory ResourceCategory
		expectError      bool
	}{
		{slug: "treadmills", expectedCategory: CategoryTreadmill},
		{slug: "cycles", expectedCategory: CategoryCycle},
		{slug: "inductions", expectedCategory: CategoryInduction},
		{slug: "ping-pong-tables", expectedCategory: CategoryPingPongTable},
		{slug: "arcade-machines", expectedCategory: CategoryArcadeMachine},
		{slug: "saunas", expectError: true},
		{slug: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			spec, err := SpecBySlug(tt.slug)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrUnknownCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCategory, spec.Category)
		})
	}
}

func TestCategorySpec_IsDurationAllowed(t *testing.T) {
	spec, err := SpecFor(CategoryTreadmill)
	require.NoError(t, err)

	assert.True(t, spec.IsDurationAllowed(30))
	assert.True(t, spec.IsDurationAllowed(60))
	assert.False(t, spec.IsDurationAllowed(0))
	assert.False(t, spec.IsDurationAllowed(45))
	assert.False(t, spec.IsDurationAllowed(90))
}

func TestAllCategorySpecs(t *testing.T) {
	specs := AllCategorySpecs()
	require.Len(t, specs, 5)

	slugs := make(map[string]bool, len(specs))
	for _, spec := range specs {
		slugs[spec.PathSlug] = true
	}
	assert.Len(t, slugs, 5, "slugs must be unique")
}
