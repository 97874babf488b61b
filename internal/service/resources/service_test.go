package resources

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DORM-ReservationService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeResourceRepo struct {
	resources []domain.Resource
}

func (f *fakeResourceRepo) ListByCategory(_ context.Context, _ domain.ResourceCategory) ([]domain.Resource, error) {
	return f.resources, nil
}

type fakeSlotRepo struct {
	occupied map[int64]bool
	checked  []int64
}

func (f *fakeSlotRepo) HasActiveAt(_ context.Context, resourceID int64, _ time.Time) (bool, error) {
	f.checked = append(f.checked, resourceID)
	return f.occupied[resourceID], nil
}

func TestService_ListByCategory(t *testing.T) {
	resources := &fakeResourceRepo{resources: []domain.Resource{
		{ID: 1, Category: domain.CategoryTreadmill, IsAvailable: true},
		{ID: 2, Category: domain.CategoryTreadmill, IsAvailable: true},
		{ID: 3, Category: domain.CategoryTreadmill, IsAvailable: false},
	}}
	slots := &fakeSlotRepo{occupied: map[int64]bool{2: true}}

	svc := NewService(resources, slots, nopLogger{})

	resp, err := svc.ListByCategory(context.Background(), domain.CategoryTreadmill)
	require.NoError(t, err)
	require.Len(t, resp.Resources, 3)

	assert.False(t, resp.Resources[0].IsOccupiedNow)
	assert.True(t, resp.Resources[1].IsOccupiedNow)

	// Недоступный ресурс попадает в список с обоими флагами
	assert.False(t, resp.Resources[2].IsAvailable)
	assert.False(t, resp.Resources[2].IsOccupiedNow)
	assert.Contains(t, slots.checked, int64(3))
}

// Вывод ресурса из бронирования не затрагивает уже занятые слоты:
// занятость отражает состояние слотов независимо от флага доступности
func TestService_ListByCategory_UnavailableResourceStillReportsOccupancy(t *testing.T) {
	resources := &fakeResourceRepo{resources: []domain.Resource{
		{ID: 3, Category: domain.CategoryTreadmill, IsAvailable: false},
	}}
	slots := &fakeSlotRepo{occupied: map[int64]bool{3: true}}

	svc := NewService(resources, slots, nopLogger{})

	resp, err := svc.ListByCategory(context.Background(), domain.CategoryTreadmill)
	require.NoError(t, err)
	require.Len(t, resp.Resources, 1)

	assert.False(t, resp.Resources[0].IsAvailable)
	assert.True(t, resp.Resources[0].IsOccupiedNow)
}

func TestService_ListByCategory_UnknownCategory(t *testing.T) {
	svc := NewService(&fakeResourceRepo{}, &fakeSlotRepo{}, nopLogger{})

	_, err := svc.ListByCategory(context.Background(), domain.ResourceCategory("sauna"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
