package domain

import "time"

// TimeSlot центральная сущность: один слот бронирования на оборудовании.
// Пара (ResourceID, StartTime) уникальна на уровне БД - конкурентные запросы
// могут одновременно пытаться создать один и тот же слот.
//
// Инварианты:
//   - UserID установлен <=> BookedAt установлен <=> слот забронирован
//   - занятый слот никогда не освобождается и не переназначается движком бронирования
type TimeSlot struct {
	ID         int64
	ResourceID int64
	StartTime  time.Time
	EndTime    time.Time
	UserID     *int64     // nil = слот свободен
	BookedAt   *time.Time // метка действия бронирования, общая для всех слотов одного действия

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBooked возвращает true, если слот занят
func (s *TimeSlot) IsBooked() bool {
	return s.UserID != nil
}

// IsHeldBy возвращает true, если слот занят указанным пользователем
func (s *TimeSlot) IsHeldBy(userID int64) bool {
	return s.UserID != nil && *s.UserID == userID
}

// Contains проверяет, что момент времени попадает в интервал [StartTime, EndTime)
func (s *TimeSlot) Contains(t time.Time) bool {
	return !t.Before(s.StartTime) && t.Before(s.EndTime)
}

// SlotWindow вычисляет границы i-го слота действия бронирования,
// начинающегося в start с гранулярностью granularityMinutes.
// Слоты идут подряд без перекрытий, по возрастанию времени начала
func SlotWindow(start time.Time, i, granularityMinutes int) (slotStart, slotEnd time.Time) {
	granularity := time.Duration(granularityMinutes) * time.Minute
	slotStart = start.Add(time.Duration(i) * granularity)
	slotEnd = slotStart.Add(granularity)
	return slotStart, slotEnd
}

// DayWindow возвращает границы календарного дня [начало, начало+24ч),
// которому принадлежит момент t в опорной таймзоне loc
func DayWindow(t time.Time, loc *time.Location) (dayStart, dayEnd time.Time) {
	local := t.In(loc)
	dayStart = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	dayEnd = dayStart.AddDate(0, 0, 1)
	return dayStart, dayEnd
}

// IsSlotAligned проверяет, что момент времени выровнен по границе слота
// в таймзоне loc: минуты 0 или 30, нулевые секунды и доли секунды
func IsSlotAligned(t time.Time, loc *time.Location) bool {
	local := t.In(loc)
	if local.Minute() != 0 && local.Minute() != 30 {
		return false
	}
	return local.Second() == 0 && local.Nanosecond() == 0
}
