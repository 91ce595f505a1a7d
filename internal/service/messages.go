package service

import "fmt"

// Тексты уведомлений. Пользователи - испаноязычные (Перу).

const (
	titleNewRequest         = "Nueva solicitud de tutoría"
	titleRequestRejected    = "Solicitud rechazada"
	titleReschedulePending  = "Solicitud de reprogramación"
	titleRescheduleAccepted = "Reprogramación aceptada"
	titleRescheduleRejected = "Reprogramación rechazada"
	titleSessionConfirmed   = "Sesión de tutoría confirmada"

	bodyRescheduleRejected = "El tutor rechazó la reprogramación. La tutoría ha sido cancelada."
)

func newRequestBody(student, course string) string {
	return fmt.Sprintf("%s solicita una tutoría de %s", student, course)
}

func requestRejectedBody(tutor, course string) string {
	return fmt.Sprintf("%s rechazó tu solicitud de tutoría de %s", tutor, course)
}

func reschedulePendingBody(student, day, date, start, end string) string {
	return fmt.Sprintf("%s solicita reprogramar la tutoría para el %s %s, %s - %s", student, day, date, start, end)
}

func rescheduleAcceptedBody(day, date, start, end string) string {
	return fmt.Sprintf("El tutor aceptó la reprogramación. Nueva fecha: %s %s, %s - %s", day, date, start, end)
}

func sessionConfirmedBody(course, tutor string) string {
	return fmt.Sprintf("Tu sesión de %s con %s ha sido confirmada.", course, tutor)
}

func reminderBody(course, counterpart, when string) string {
	return fmt.Sprintf("Tu sesión de %s con %s es %s.", course, counterpart, when)
}
