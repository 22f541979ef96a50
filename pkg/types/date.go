package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateFormat формат календарной даты YYYY-MM-DD
const DateFormat = "2006-01-02"

// ErrInvalidDateFormat возвращается, если строку нельзя разобрать как дату
var ErrInvalidDateFormat = errors.New("invalid date format")

// Date календарная дата без времени и часового пояса
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf возвращает календарную дату момента t в его собственной локации
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate разбирает "YYYY-MM-DD".
// Также принимает ISO timestamp ("2024-06-01T00:00:00.000Z") - берется часть до 'T'.
func ParseDate(s string) (Date, error) {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return DateOf(t), nil
}

// MustParseDate как ParseDate, но паникует при ошибке. Для констант и тестов.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// In возвращает полночь даты в локации loc
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) utc() time.Time {
	return d.In(time.UTC)
}

// String возвращает дату в формате YYYY-MM-DD
func (d Date) String() string {
	return d.utc().Format(DateFormat)
}

// IsZero возвращает true для нулевой даты
func (d Date) IsZero() bool {
	return d == Date{}
}

// AddDays сдвигает дату на n дней (n может быть отрицательным)
func (d Date) AddDays(n int) Date {
	return DateOf(d.utc().AddDate(0, 0, n))
}

// DaysSince возвращает количество дней от other до d (d - other)
func (d Date) DaysSince(other Date) int {
	return int(d.utc().Sub(other.utc()).Hours() / 24)
}

// Before строго раньше other
func (d Date) Before(other Date) bool {
	return d.utc().Before(other.utc())
}

// After строго позже other
func (d Date) After(other Date) bool {
	return d.utc().After(other.utc())
}

// Weekday день недели даты
func (d Date) Weekday() time.Weekday {
	return d.utc().Weekday()
}

// MarshalJSON сериализует дату строкой YYYY-MM-DD
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON принимает YYYY-MM-DD или ISO timestamp
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDateFormat, err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
