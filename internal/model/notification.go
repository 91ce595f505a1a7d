package model

import "time"

// Kind тип уведомления, пишется в поле tipo
type Kind string

const (
	KindNewRequest         Kind = "solicitudTutoria"        // Новая заявка, получатель - тутор
	KindRequestRejected    Kind = "respuestaSolicitud"      // Заявка отклонена, получатель - студент
	KindReschedulePending  Kind = "reprogramacionPendiente" // Запрошен перенос, получатель - тутор
	KindRescheduleAccepted Kind = "reprogramacionAceptada"  // Перенос принят, получатель - студент
	KindRescheduleRejected Kind = "reprogramacionRechazada" // Перенос отклонён, получатель - студент
	KindSessionConfirmed   Kind = "sesionConfirmada"        // Сессия создана, получатель - студент
	KindSessionReminder    Kind = "recordatorioSesion"      // Напоминание обоим участникам
	KindManual             Kind = "manual"                  // Отправлено администратором
)

// Kinds все известные типы уведомлений
var Kinds = []Kind{
	KindNewRequest,
	KindRequestRejected,
	KindReschedulePending,
	KindRescheduleAccepted,
	KindRescheduleRejected,
	KindSessionConfirmed,
	KindSessionReminder,
	KindManual,
}

// Valid проверяет, что тип входит в закрытый список
func (k Kind) Valid() bool {
	switch k {
	case KindNewRequest, KindRequestRejected, KindReschedulePending, KindRescheduleAccepted,
		KindRescheduleRejected, KindSessionConfirmed, KindSessionReminder, KindManual:
		return true
	}
	return false
}

// Notification запись в коллекции notificaciones. Создаётся один раз и больше не меняется.
type Notification struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"usuarioId"`
	Title       string    `json:"titulo"`
	Body        string    `json:"mensaje"`
	Kind        Kind      `json:"tipo"`
	CreatedAt   time.Time `json:"fechaCreacion"` // проставляет хранилище
	Read        bool      `json:"leida"`
	Payload     Payload   `json:"datosAdicionales"`
}

// Intent то, что классификатор передаёт диспетчеру
type Intent struct {
	RecipientID string
	Title       string
	Body        string
	Kind        Kind
	Payload     Payload
}
