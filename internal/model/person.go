package model

import "strings"

const (
	DefaultStudentLabel = "Estudiante"
	DefaultTutorLabel   = "Tutor"
)

// Person запись студента или тутора (estudiantes / tutores)
type Person struct {
	ID        string `json:"id"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellidos"`
}

// DisplayName возвращает "имя фамилия" или fallback, если записи нет
func (p *Person) DisplayName(fallback string) string {
	if p == nil {
		return fallback
	}
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return fallback
	}
	return name
}
