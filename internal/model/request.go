package model

import "time"

type RequestStatus string

const (
	RequestStatusPending             RequestStatus = "pendiente"                // Ожидает ответа тутора
	RequestStatusAccepted            RequestStatus = "aceptada"                 // Принята, создана сессия
	RequestStatusCancelled           RequestStatus = "cancelada"                // Отклонена или отменена
	RequestStatusReschedulingPending RequestStatus = "reprogramacion_pendiente" // Студент предложил перенос
)

// Reschedule предложенные студентом новые дата и время
type Reschedule struct {
	Day         string    `json:"dia"`
	StartTime   string    `json:"horaInicio"`
	EndTime     string    `json:"horaFin"`
	SessionDate time.Time `json:"fechaSesion"` // нулевое значение, если дату не удалось разобрать
}

// Request заявка студента на тьюторство (solicitudes_tutoria)
type Request struct {
	ID          string        `json:"id"`
	StudentID   string        `json:"estudianteId"`
	TutorID     string        `json:"tutorId"`
	Course      string        `json:"curso"`
	Status      RequestStatus `json:"estado"`
	Day         string        `json:"dia"`
	StartTime   string        `json:"horaInicio"`
	EndTime     string        `json:"horaFin"`
	SessionDate time.Time     `json:"fechaSesion"`

	// Заполняется только в статусе reprogramacion_pendiente
	Reschedule *Reschedule `json:"reprogramacionPendiente,omitempty"`
}
