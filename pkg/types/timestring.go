package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidFormat возвращается при некорректном формате времени (ожидается HH:MM)
	ErrInvalidFormat = errors.New("invalid time string format")

	// ErrOutOfRange возвращается, когда время выходит за пределы суток
	ErrOutOfRange = errors.New("time out of range")
)

const minutesPerDay = 24 * 60

// TimeString время суток с точностью до минуты ("HH:MM").
// Внутри хранится количество минут с начала суток, поэтому все сравнения
// числовые - строка "8:00" и "08:00" дают одно и то же значение.
// Конец полуоткрытого интервала может быть равен 24:00.
type TimeString struct {
	minutes int
	valid   bool
}

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*60 + t.Minute(), valid: true}
}

// NewTimeStringFromString парсит строку вида "HH:MM" (часы могут быть без ведущего нуля)
func NewTimeStringFromString(s string) (TimeString, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	if len(parts[1]) != 2 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	if hours < 0 || mins < 0 || mins > 59 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	total := hours*60 + mins
	if total > minutesPerDay {
		return TimeString{}, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}

	return TimeString{minutes: total, valid: true}, nil
}

// MustTimeString парсит строку и паникует при ошибке. Только для тестов и констант.
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// IsZero возвращает true, если значение не было установлено
func (t TimeString) IsZero() bool {
	return !t.valid
}

// Validate проверяет, что значение установлено и находится в пределах суток
func (t TimeString) Validate() error {
	if !t.valid {
		return fmt.Errorf("%w: empty value", ErrInvalidFormat)
	}
	if t.minutes < 0 || t.minutes > minutesPerDay {
		return fmt.Errorf("%w: %d minutes", ErrOutOfRange, t.minutes)
	}
	return nil
}

// MinuteOfDay возвращает количество минут с начала суток
func (t TimeString) MinuteOfDay() int {
	return t.minutes
}

// String возвращает каноническое представление "HH:MM"
func (t TimeString) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes < other.minutes
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes > other.minutes
}

// Equal возвращает true, если значения совпадают с точностью до минуты
func (t TimeString) Equal(other TimeString) bool {
	return t.valid == other.valid && t.minutes == other.minutes
}

// AddMinutes возвращает время через n минут.
// Возвращает ошибку, если результат выходит за пределы суток.
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	total := t.minutes + n
	if total < 0 || total > minutesPerDay {
		return TimeString{}, fmt.Errorf("%w: %d minutes", ErrOutOfRange, total)
	}
	return TimeString{minutes: total, valid: true}, nil
}

// Scan реализует sql.Scanner. Поддерживает TIME колонки (lib/pq отдаёт
// time.Time), а также строковые представления.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = TimeString{}
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidFormat, src)
	}
}

func (t *TimeString) scanString(s string) error {
	// TIME колонки приходят как "HH:MM:SS", отбрасываем секунды
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if !t.valid {
		return nil, nil
	}
	return t.String(), nil
}

// MarshalJSON сериализует в строку "HH:MM"
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON парсит строку "HH:MM"
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
