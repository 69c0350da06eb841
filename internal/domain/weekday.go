package domain

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is one of the six working days of the source domain.
// The academic timetable has no Sunday column, so Sunday is not
// representable; its order defines column ordering in the weekly grid.
type Weekday int

const (
	Monday Weekday = iota // SEGUNDA
	Tuesday               // TERÇA
	Wednesday             // QUARTA
	Thursday              // QUINTA
	Friday                // SEXTA
	Saturday              // SÁBADO
)

// Weekdays lists all working days in grid column order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var weekdayTokens = map[string]Weekday{
	"SEGUNDA": Monday,
	"TERCA":   Tuesday,
	"QUARTA":  Wednesday,
	"QUINTA":  Thursday,
	"SEXTA":   Friday,
	"SABADO":  Saturday,
}

var weekdayNames = map[Weekday]string{
	Monday:    "SEGUNDA",
	Tuesday:   "TERÇA",
	Wednesday: "QUARTA",
	Thursday:  "QUINTA",
	Friday:    "SEXTA",
	Saturday:  "SÁBADO",
}

// accentReplacer folds the accented uppercase letters that appear in
// spreadsheet weekday tokens to their ASCII forms.
var accentReplacer = strings.NewReplacer(
	"Á", "A", "À", "A", "Â", "A", "Ã", "A",
	"É", "E", "Ê", "E",
	"Í", "I",
	"Ó", "O", "Ô", "O", "Õ", "O",
	"Ú", "U",
	"Ç", "C",
)

// ParseWeekday parses a spreadsheet weekday token ("SEGUNDA", "terça",
// "SABADO", ...). It is the single entry point for raw weekday strings:
// the rest of the engine only handles Weekday values.
func ParseWeekday(token string) (Weekday, error) {
	normalized := accentReplacer.Replace(strings.ToUpper(strings.TrimSpace(token)))
	day, ok := weekdayTokens[normalized]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWeekdayToken, token)
	}
	return day, nil
}

// FromTimeWeekday maps a time.Weekday to the domain Weekday.
// Sunday has no domain representation and reports ok=false.
func FromTimeWeekday(w time.Weekday) (Weekday, bool) {
	switch w {
	case time.Monday:
		return Monday, true
	case time.Tuesday:
		return Tuesday, true
	case time.Wednesday:
		return Wednesday, true
	case time.Thursday:
		return Thursday, true
	case time.Friday:
		return Friday, true
	case time.Saturday:
		return Saturday, true
	default:
		return 0, false
	}
}

// TimeWeekday maps the domain Weekday to the stdlib time.Weekday.
func (d Weekday) TimeWeekday() time.Weekday {
	switch d {
	case Monday:
		return time.Monday
	case Tuesday:
		return time.Tuesday
	case Wednesday:
		return time.Wednesday
	case Thursday:
		return time.Thursday
	case Friday:
		return time.Friday
	default:
		return time.Saturday
	}
}

// Valid reports whether the value is one of the six working days.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Saturday
}

// String returns the canonical spreadsheet token for the day.
func (d Weekday) String() string {
	if name, ok := weekdayNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Weekday(%d)", int(d))
}
