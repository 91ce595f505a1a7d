package event

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Freeeeeet/tutoria_notifier/internal/model"
)

// Document поля документа в том виде, в каком их прислал источник
type Document map[string]any

// String возвращает строковое поле или "" если его нет
func (d Document) String(key string) string {
	switch v := d[key].(type) {
	case string:
		return v
	case nil:
		return ""
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Sub возвращает вложенный документ или nil
func (d Document) Sub(key string) Document {
	switch v := d[key].(type) {
	case Document:
		return v
	case map[string]any:
		return Document(v)
	}
	return nil
}

// Instant приводит поле-дату к time.Time. Понимает time.Time, значения с
// методом AsTime (protobuf Timestamp), {_seconds: N} / {seconds: N},
// числа (миллисекунды эпохи) и строки. Если разобрать не удалось - нулевое время.
func (d Document) Instant(key string) time.Time {
	return ParseInstant(d[key])
}

type asTimer interface {
	AsTime() time.Time
}

var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// maxMillis граница допустимых дат: ±100 000 000 суток от эпохи
const maxMillis = 8.64e15

// ParseInstant см. Document.Instant
func ParseInstant(v any) time.Time {
	switch t := v.(type) {
	case nil:
		return time.Time{}
	case time.Time:
		return t
	case *time.Time:
		if t == nil {
			return time.Time{}
		}
		return *t
	case asTimer:
		return t.AsTime()
	case map[string]any:
		return secondsField(Document(t))
	case Document:
		return secondsField(t)
	case string:
		return parseInstantString(t)
	case json.Number:
		return parseInstantString(t.String())
	case float64:
		return fromMillis(t)
	case float32:
		return fromMillis(float64(t))
	case int:
		return fromMillis(float64(t))
	case int64:
		return fromMillis(float64(t))
	}
	return time.Time{}
}

func secondsField(d Document) time.Time {
	for _, key := range []string{"_seconds", "seconds"} {
		raw, ok := d[key]
		if !ok {
			continue
		}
		secs, ok := toFloat(raw)
		if !ok || secs == 0 || math.Abs(secs*1000) > maxMillis {
			return time.Time{}
		}
		nanos, _ := toFloat(d["_nanoseconds"])
		if nanos == 0 {
			nanos, _ = toFloat(d["nanos"])
		}
		return time.Unix(int64(secs), int64(nanos))
	}
	return time.Time{}
}

func parseInstantString(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if ms, err := strconv.ParseFloat(s, 64); err == nil {
		return fromMillis(ms)
	}
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func fromMillis(ms float64) time.Time {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxMillis {
		return time.Time{}
	}
	return time.UnixMilli(int64(ms))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

// Request декодирует документ solicitudes_tutoria
func (d Document) Request(id string) *model.Request {
	r := &model.Request{
		ID:          id,
		StudentID:   d.String("estudianteId"),
		TutorID:     d.String("tutorId"),
		Course:      d.String("curso"),
		Status:      model.RequestStatus(d.String("estado")),
		Day:         d.String("dia"),
		StartTime:   d.String("horaInicio"),
		EndTime:     d.String("horaFin"),
		SessionDate: d.Instant("fechaSesion"),
	}
	if sub := d.Sub("reprogramacionPendiente"); sub != nil {
		r.Reschedule = &model.Reschedule{
			Day:         sub.String("dia"),
			StartTime:   sub.String("horaInicio"),
			EndTime:     sub.String("horaFin"),
			SessionDate: sub.Instant("fechaSesion"),
		}
	}
	return r
}

// Session декодирует документ sesiones_tutoria
func (d Document) Session(id string) *model.Session {
	return &model.Session{
		ID:          id,
		StudentID:   d.String("estudianteId"),
		TutorID:     d.String("tutorId"),
		Course:      d.String("curso"),
		SessionDate: d.Instant("fechaSesion"),
		Status:      model.RequestStatus(d.String("estado")),
	}
}
