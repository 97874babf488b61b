package get_booked_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DORM-ReservationService/internal/domain"
	resourceRepo "github.com/m04kA/DORM-ReservationService/internal/infra/storage/resource"
	"github.com/m04kA/DORM-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeResourceRepo struct {
	resource *domain.Resource
}

func (f *fakeResourceRepo) GetByID(_ context.Context, id int64) (*domain.Resource, error) {
	if f.resource == nil || f.resource.ID != id {
		return nil, resourceRepo.ErrResourceNotFound
	}
	return f.resource, nil
}

type fakeSlotRepo struct {
	slots []domain.TimeSlot

	gotFrom time.Time
	gotTo   time.Time
}

func (f *fakeSlotRepo) ListBookedByResourceAndPeriod(_ context.Context, _ int64, from, to time.Time) ([]domain.TimeSlot, error) {
	f.gotFrom = from
	f.gotTo = to
	return f.slots, nil
}

func TestUseCase_Execute(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	date := time.Date(2026, 3, 1, 0, 0, 0, 0, loc)
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, loc)
	bookedAt := start.Add(-time.Hour)

	slots := &fakeSlotRepo{slots: []domain.TimeSlot{
		{
			ID:         1,
			ResourceID: 5,
			StartTime:  start,
			EndTime:    start.Add(30 * time.Minute),
			UserID:     ptr.Ptr(int64(42)),
			BookedAt:   &bookedAt,
		},
	}}
	resources := &fakeResourceRepo{resource: &domain.Resource{
		ID: 5, Category: domain.CategoryInduction, IsAvailable: true,
	}}

	uc := NewUseCase(slots, resources, loc, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceID: 5,
		Category:   domain.CategoryInduction,
		Date:       date,
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, int64(42), resp.Slots[0].UserID)
	assert.Equal(t, bookedAt, resp.Slots[0].BookedAt)

	// Выборка идёт за календарный день в опорной таймзоне
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), slots.gotFrom)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, loc), slots.gotTo)
}

// Дата из запроса парсится в UTC; окно дня должно строиться по её
// календарным компонентам в опорной таймзоне, иначе для зон западнее UTC
// выборка уедет на предыдущий день
func TestUseCase_Execute_DayWindowInWesternTimezone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	slots := &fakeSlotRepo{}
	resources := &fakeResourceRepo{resource: &domain.Resource{
		ID: 5, Category: domain.CategoryInduction, IsAvailable: true,
	}}
	uc := NewUseCase(slots, resources, loc, nopLogger{})

	date, err := time.Parse(domain.DateFormat, "2026-03-01")
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{
		ResourceID: 5,
		Category:   domain.CategoryInduction,
		Date:       date,
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), slots.gotFrom)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, loc), slots.gotTo)
}

func TestUseCase_Execute_ResourceNotFound(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{}, &fakeResourceRepo{}, time.UTC, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ResourceID: 5,
		Category:   domain.CategoryInduction,
		Date:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestUseCase_Execute_CategoryMismatch(t *testing.T) {
	resources := &fakeResourceRepo{resource: &domain.Resource{
		ID: 5, Category: domain.CategoryCycle, IsAvailable: true,
	}}
	uc := NewUseCase(&fakeSlotRepo{}, resources, time.UTC, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ResourceID: 5,
		Category:   domain.CategoryInduction,
		Date:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrResourceNotFound)
}
