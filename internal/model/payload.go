package model

// Payload дополнительные данные уведомления. Push-транспорт принимает только строки.
type Payload map[string]string

// Ключи payload, которые читает мобильное приложение
const (
	KeyNotificationID = "notificationId"
	KeyRequestID      = "solicitudId"
	KeySessionID      = "sesionId"
	KeyStudentID      = "estudianteId"
	KeyTutorID        = "tutorId"
	KeyCourse         = "materia"
	KeyAccepted       = "aceptada"
	KeyNewDate        = "nuevaFecha"
	KeyNewStartTime   = "nuevaHoraInicio"
	KeyNewEndTime     = "nuevaHoraFin"
	KeyNewDay         = "nuevoDia"
)

// Merge возвращает копию payload с добавленными парами из extra
func (p Payload) Merge(extra Payload) Payload {
	out := make(Payload, len(p)+len(extra))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// NewRequestPayload данные для KindNewRequest
func NewRequestPayload(requestID string, r *Request) Payload {
	return Payload{
		KeyRequestID: requestID,
		KeyStudentID: r.StudentID,
		KeyCourse:    r.Course,
	}
}

// RejectionPayload данные для KindRequestRejected
func RejectionPayload(requestID string, r *Request) Payload {
	return Payload{
		KeyRequestID: requestID,
		KeyTutorID:   r.TutorID,
		KeyCourse:    r.Course,
		KeyAccepted:  "false",
	}
}

// ScheduleChange новые дата и время, уже отформатированные для текста
type ScheduleChange struct {
	Date      string
	Day       string
	StartTime string
	EndTime   string
}

// ReschedulePendingPayload данные для KindReschedulePending, адресат - тутор
func ReschedulePendingPayload(requestID string, r *Request, c ScheduleChange) Payload {
	return Payload{
		KeyRequestID:    requestID,
		KeyStudentID:    r.StudentID,
		KeyCourse:       r.Course,
		KeyNewDate:      c.Date,
		KeyNewStartTime: c.StartTime,
		KeyNewEndTime:   c.EndTime,
		KeyNewDay:       c.Day,
	}
}

// RescheduleAcceptedPayload данные для KindRescheduleAccepted, адресат - студент
func RescheduleAcceptedPayload(requestID string, r *Request, c ScheduleChange) Payload {
	return Payload{
		KeyRequestID:    requestID,
		KeyTutorID:      r.TutorID,
		KeyCourse:       r.Course,
		KeyNewDate:      c.Date,
		KeyNewStartTime: c.StartTime,
		KeyNewEndTime:   c.EndTime,
		KeyNewDay:       c.Day,
	}
}

// RescheduleRejectedPayload данные для KindRescheduleRejected
func RescheduleRejectedPayload(requestID string, r *Request) Payload {
	return Payload{
		KeyRequestID: requestID,
		KeyTutorID:   r.TutorID,
		KeyCourse:    r.Course,
	}
}

// SessionConfirmedPayload данные для KindSessionConfirmed
func SessionConfirmedPayload(sessionID string, s *Session) Payload {
	return Payload{
		KeySessionID: sessionID,
		KeyTutorID:   s.TutorID,
		KeyCourse:    s.Course,
	}
}

// ReminderPayload общие данные напоминания для студента и тутора
func ReminderPayload(s *Session) Payload {
	return Payload{
		KeySessionID: s.ID,
		KeyTutorID:   s.TutorID,
		KeyStudentID: s.StudentID,
		KeyCourse:    s.Course,
	}
}
