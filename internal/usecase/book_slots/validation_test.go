package book_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DORM-ReservationService/internal/domain"
)

func TestValidateRequest(t *testing.T) {
	spec, err := domain.SpecFor(domain.CategoryTreadmill)
	require.NoError(t, err)

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	aligned := now.Add(time.Hour)

	valid := func() *Request {
		return &Request{
			UserID:     42,
			ResourceID: 1,
			Category:   domain.CategoryTreadmill,
			StartTime:  aligned,
		}
	}

	tests := []struct {
		name        string
		mutate      func(*Request)
		expectError bool
	}{
		{
			name:   "valid single slot",
			mutate: func(*Request) {},
		},
		{
			name:   "valid double slot",
			mutate: func(r *Request) { r.DurationMinutes = 60 },
		},
		{
			name:        "non-positive user id",
			mutate:      func(r *Request) { r.UserID = 0 },
			expectError: true,
		},
		{
			name:        "non-positive resource id",
			mutate:      func(r *Request) { r.ResourceID = -1 },
			expectError: true,
		},
		{
			name:        "zero start time",
			mutate:      func(r *Request) { r.StartTime = time.Time{} },
			expectError: true,
		},
		{
			name:        "misaligned minutes",
			mutate:      func(r *Request) { r.StartTime = aligned.Add(15 * time.Minute) },
			expectError: true,
		},
		{
			name:        "nonzero seconds",
			mutate:      func(r *Request) { r.StartTime = aligned.Add(time.Second) },
			expectError: true,
		},
		{
			name:        "unsupported duration",
			mutate:      func(r *Request) { r.DurationMinutes = 90 },
			expectError: true,
		},
		{
			name:        "too far in the past",
			mutate:      func(r *Request) { r.StartTime = now.Add(-2 * time.Hour) },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)

			err := validateRequest(req, spec, now, time.UTC)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Минутный допуск покрывает сетевые задержки и расхождение часов клиента:
// слот, начавшийся полминуты назад, ещё можно занять
func TestValidateRequest_PastTolerance(t *testing.T) {
	spec, err := domain.SpecFor(domain.CategoryTreadmill)
	require.NoError(t, err)

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	req := &Request{
		UserID:     42,
		ResourceID: 1,
		Category:   domain.CategoryTreadmill,
		StartTime:  start,
	}

	assert.NoError(t, validateRequest(req, spec, start.Add(30*time.Second), time.UTC))
	assert.Error(t, validateRequest(req, spec, start.Add(2*time.Minute), time.UTC))
}
