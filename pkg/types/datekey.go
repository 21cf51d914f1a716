package types

import (
	"errors"
	"fmt"
	"time"
)

// DateKeyFormat формат календарной даты YYYY-MM-DD
const DateKeyFormat = "2006-01-02"

// ErrInvalidDateKey возвращается при некорректном формате даты
var ErrInvalidDateKey = errors.New("invalid date key format, expected YYYY-MM-DD")

// DateKey календарная дата без времени в формате "YYYY-MM-DD".
// Используется как ключ дневного закрытия и для группировки платежей по дням.
type DateKey string

// NewDateKey создает DateKey из time.Time в указанной таймзоне
func NewDateKey(t time.Time, loc *time.Location) DateKey {
	return DateKey(t.In(loc).Format(DateKeyFormat))
}

// ParseDateKey парсит строку "YYYY-MM-DD" в DateKey
func ParseDateKey(s string) (DateKey, error) {
	if _, err := time.Parse(DateKeyFormat, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateKey, s)
	}
	return DateKey(s), nil
}

// Validate проверяет корректность формата
func (d DateKey) Validate() error {
	if _, err := time.Parse(DateKeyFormat, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateKey, string(d))
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (d DateKey) IsZero() bool {
	return d == ""
}

// String возвращает строковое представление
func (d DateKey) String() string {
	return string(d)
}

// DayBounds возвращает начало дня и начало следующего дня в указанной таймзоне.
// Полуоткрытый интервал [start, end) покрывает ровно одни календарные сутки.
func (d DateKey) DayBounds(loc *time.Location) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation(DateKeyFormat, string(d), loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, string(d))
	}
	return t, t.AddDate(0, 0, 1), nil
}

// Time возвращает полночь этой даты в указанной таймзоне
func (d DateKey) Time(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyFormat, string(d), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, string(d))
	}
	return t, nil
}
