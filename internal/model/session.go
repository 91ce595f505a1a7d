package model

import "time"

// Session подтверждённое занятие (sesiones_tutoria), создаётся после принятия заявки
type Session struct {
	ID          string        `json:"id"`
	StudentID   string        `json:"estudianteId"`
	TutorID     string        `json:"tutorId"`
	Course      string        `json:"curso"`
	SessionDate time.Time     `json:"fechaSesion"`
	Status      RequestStatus `json:"estado"` // для напоминаний должен быть aceptada
}
