package domain

import "errors"

var (
	// ErrUnknownCategory возвращается при обращении к незарегистрированной категории.
	// Это ошибка вызывающего кода, а не пользовательского ввода
	ErrUnknownCategory = errors.New("domain: unknown resource category")
)

// CategorySpec статическая конфигурация категории оборудования.
// Поведение, специфичное для категории, задаётся данными, а не кодом:
// один движок бронирования обслуживает все категории
type CategorySpec struct {
	Category ResourceCategory
	PathSlug string // сегмент URL в API (например, "treadmills")

	SlotDurationMinutes     int   // гранулярность слота
	AllowedDurationsMinutes []int // допустимые длительности одного действия бронирования
	MaxBookingActionsPerDay int   // лимит действий бронирования на пользователя в день
}

// IsDurationAllowed проверяет, что длительность входит в список допустимых
func (s *CategorySpec) IsDurationAllowed(minutes int) bool {
	for _, d := range s.AllowedDurationsMinutes {
		if d == minutes {
			return true
		}
	}
	return false
}

// categorySpecs реестр категорий. Лимиты взяты из регламента общежития:
// тренажёры - 2 действия в день, индукционные плиты - 3, оборудование лаунжа - 1
var categorySpecs = []CategorySpec{
	{
		Category:                CategoryTreadmill,
		PathSlug:                "treadmills",
		SlotDurationMinutes:     DefaultSlotDurationMinutes,
		AllowedDurationsMinutes: []int{DefaultSlotDurationMinutes, DefaultSlotDurationMinutes * 2},
		MaxBookingActionsPerDay: 2,
	},
	{
		Category:                CategoryCycle,
		PathSlug:                "cycles",
		SlotDurationMinutes:     DefaultSlotDurationMinutes,
		AllowedDurationsMinutes: []int{DefaultSlotDurationMinutes, DefaultSlotDurationMinutes * 2},
		MaxBookingActionsPerDay: 2,
	},
	{
		Category:                CategoryInduction,
		PathSlug:                "inductions",
		SlotDurationMinutes:     DefaultSlotDurationMinutes,
		AllowedDurationsMinutes: []int{DefaultSlotDurationMinutes, DefaultSlotDurationMinutes * 2},
		MaxBookingActionsPerDay: 3,
	},
	{
		Category:                CategoryPingPongTable,
		PathSlug:                "ping-pong-tables",
		SlotDurationMinutes:     DefaultSlotDurationMinutes,
		AllowedDurationsMinutes: []int{DefaultSlotDurationMinutes, DefaultSlotDurationMinutes * 2},
		MaxBookingActionsPerDay: 1,
	},
	{
		Category:                CategoryArcadeMachine,
		PathSlug:                "arcade-machines",
		SlotDurationMinutes:     DefaultSlotDurationMinutes,
		AllowedDurationsMinutes: []int{DefaultSlotDurationMinutes, DefaultSlotDurationMinutes * 2},
		MaxBookingActionsPerDay: 1,
	},
}

// SpecFor возвращает конфигурацию категории
func SpecFor(category ResourceCategory) (*CategorySpec, error) {
	for i := range categorySpecs {
		if categorySpecs[i].Category == category {
			return &categorySpecs[i], nil
		}
	}
	return nil, ErrUnknownCategory
}

// SpecBySlug возвращает конфигурацию категории по сегменту URL
func SpecBySlug(slug string) (*CategorySpec, error) {
	for i := range categorySpecs {
		if categorySpecs[i].PathSlug == slug {
			return &categorySpecs[i], nil
		}
	}
	return nil, ErrUnknownCategory
}

// AllCategorySpecs возвращает все зарегистрированные категории
func AllCategorySpecs() []CategorySpec {
	out := make([]CategorySpec, len(categorySpecs))
	copy(out, categorySpecs)
	return out
}
