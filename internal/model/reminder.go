package model

import "time"

// ReminderWindow окно выборки сессий для напоминаний.
// Сессия попадает в окно, если Offset <= fechaSesion-now < Offset+Width.
type ReminderWindow struct {
	Name     string
	Offset   time.Duration
	Width    time.Duration
	Interval time.Duration // как часто запускать выборку
	Title    string
	When     string // "mañana", "en 30 minutos"
}

// Bounds возвращает полуинтервал [from, to) относительно now
func (w ReminderWindow) Bounds(now time.Time) (from, to time.Time) {
	from = now.Add(w.Offset)
	return from, from.Add(w.Width)
}

// Contains попадает ли момент t в окно относительно now
func (w ReminderWindow) Contains(now, t time.Time) bool {
	from, to := w.Bounds(now)
	return !t.Before(from) && t.Before(to)
}

// DayBeforeWindow напоминание за сутки
func DayBeforeWindow(interval time.Duration) ReminderWindow {
	return ReminderWindow{
		Name:     "day",
		Offset:   24 * time.Hour,
		Width:    time.Hour,
		Interval: interval,
		Title:    "Recordatorio de sesión",
		When:     "mañana",
	}
}

// SoonWindow напоминание за полчаса
func SoonWindow(interval time.Duration) ReminderWindow {
	return ReminderWindow{
		Name:     "soon",
		Offset:   0,
		Width:    30 * time.Minute,
		Interval: interval,
		Title:    "Tu sesión comienza pronto",
		When:     "en 30 minutos",
	}
}
