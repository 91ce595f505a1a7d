package formatting

import (
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"

	// Часовой пояс нужен и в контейнерах без /usr/share/zoneinfo
	_ "time/tzdata"
)

// DefaultTimezone часовой пояс, в котором пользователи видят даты
const DefaultTimezone = "America/Lima"

var weekdayNames = [...]string{
	"domingo",
	"lunes",
	"martes",
	"miércoles",
	"jueves",
	"viernes",
	"sábado",
}

var monthNames = [...]string{
	"enero",
	"febrero",
	"marzo",
	"abril",
	"mayo",
	"junio",
	"julio",
	"agosto",
	"septiembre",
	"octubre",
	"noviembre",
	"diciembre",
}

// WeekdayName возвращает название дня недели на испанском (es-PE)
func WeekdayName(d time.Weekday) string {
	if d >= time.Sunday && d <= time.Saturday {
		return weekdayNames[d]
	}
	return ""
}

// MonthName возвращает название месяца на испанском (es-PE)
func MonthName(m time.Month) string {
	if m >= time.January && m <= time.December {
		return monthNames[m-1]
	}
	return ""
}

// LongDate форматирует дату как "Martes, 20 de octubre de 2026" в часовом поясе loc.
// Для нулевого времени возвращает пустую строку.
func LongDate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}

	lt := t.In(loc)
	s := fmt.Sprintf("%s, %d de %s de %d",
		WeekdayName(lt.Weekday()), lt.Day(), MonthName(lt.Month()), lt.Year())
	return Capitalize(s)
}

// Capitalize переводит первую букву в верхний регистр
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
