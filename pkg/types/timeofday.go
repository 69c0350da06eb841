package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidTimeFormat возвращается, когда строка времени не распознана ни одной стратегией парсинга
var ErrInvalidTimeFormat = errors.New("types: invalid time format")

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

// TimeOfDay время суток с точностью до минуты: число минут с полуночи, диапазон [0, 1440)
type TimeOfDay int

// NewTimeOfDay создает TimeOfDay из часа и минуты
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d is out of range", ErrInvalidTimeFormat, hour, minute)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// FromClock создает TimeOfDay из часов и минут time.Time
func FromClock(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// parseStrategy одна стратегия разбора строки времени.
// Стратегии пробуются строго по порядку, объявленному в parseStrategies:
// исходные данные приходят из выгрузок таблиц в разнородных форматах,
// и порядок попыток влияет на результат (например "07.30" должно дать 07:30).
type parseStrategy func(s string) (TimeOfDay, error)

var parseStrategies = []parseStrategy{
	parseLayout("15:04:05"),
	parseLayout("15:04"),
	parseLayout("15.04"),
	parseSanitized,
}

// ParseTimeOfDay разбирает текстовое представление времени.
// Принимаемые формы (в порядке попыток): HH:MM:SS, HH:MM, HH.MM;
// в крайнем случае из строки удаляются все символы кроме цифр и двоеточия,
// и повторяется попытка HH:MM. Значения вне [00:00, 23:59] не принимаются.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidTimeFormat)
	}
	for _, strategy := range parseStrategies {
		if t, err := strategy(trimmed); err == nil {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
}

func parseLayout(layout string) parseStrategy {
	return func(s string) (TimeOfDay, error) {
		t, err := time.Parse(layout, s)
		if err != nil {
			return 0, err
		}
		return FromClock(t), nil
	}
}

// parseSanitized удаляет из строки все символы кроме цифр и двоеточия
// и повторяет попытку HH:MM
func parseSanitized(s string) (TimeOfDay, error) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == ':' {
			b.WriteRune(r)
		}
	}
	t, err := time.Parse("15:04", b.String())
	if err != nil {
		return 0, err
	}
	return FromClock(t), nil
}

// Hour час суток (0-23)
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute минута часа (0-59)
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// Minutes число минут с полуночи
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// Valid проверяет, что значение лежит в [0, 1440)
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

// Before строго раньше другого времени
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

// After строго позже другого времени
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t > other
}

// AddMinutes возвращает время, сдвинутое на m минут.
// Выход за пределы суток считается ошибкой: занятия и заявки не пересекают полночь.
func (t TimeOfDay) AddMinutes(m int) (TimeOfDay, error) {
	result := TimeOfDay(int(t) + m)
	if !result.Valid() {
		return 0, fmt.Errorf("%w: %s%+d minutes leaves the day", ErrInvalidTimeFormat, t, m)
	}
	return result, nil
}

// String каноническое представление HH:MM
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
