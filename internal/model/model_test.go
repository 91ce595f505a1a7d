package model

import (
	"testing"
	"time"
)

func TestReminderWindowContains(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)
	day := DayBeforeWindow(time.Hour)
	soon := SoonWindow(30 * time.Minute)

	tests := []struct {
		name     string
		at       time.Time
		wantDay  bool
		wantSoon bool
	}{
		{"now", now, false, true},
		{"in 29m", now.Add(29 * time.Minute), false, true},
		{"in 30m", now.Add(30 * time.Minute), false, false},
		{"in 24h", now.Add(24 * time.Hour), true, false},
		{"in 24h30m", now.Add(24*time.Hour + 30*time.Minute), true, false},
		{"in 25h", now.Add(25 * time.Hour), false, false},
		{"in the past", now.Add(-time.Minute), false, false},
	}
	for _, tt := range tests {
		if got := day.Contains(now, tt.at); got != tt.wantDay {
			t.Errorf("%s: day.Contains = %v, want %v", tt.name, got, tt.wantDay)
		}
		if got := soon.Contains(now, tt.at); got != tt.wantSoon {
			t.Errorf("%s: soon.Contains = %v, want %v", tt.name, got, tt.wantSoon)
		}
	}
}

func TestPersonDisplayName(t *testing.T) {
	t.Parallel()

	var missing *Person
	if got := missing.DisplayName(DefaultTutorLabel); got != "Tutor" {
		t.Errorf("nil person = %q", got)
	}
	if got := (&Person{FirstName: "Ana", LastName: ""}).DisplayName(DefaultStudentLabel); got != "Ana" {
		t.Errorf("first name only = %q", got)
	}
	if got := (&Person{}).DisplayName(DefaultStudentLabel); got != "Estudiante" {
		t.Errorf("empty person = %q", got)
	}
}

func TestKindValid(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds {
		if !k.Valid() {
			t.Errorf("%q must be valid", k)
		}
	}
	if Kind("solicitud").Valid() {
		t.Error("unknown kind reported as valid")
	}
}

func TestPayloadMerge(t *testing.T) {
	t.Parallel()

	base := Payload{KeyCourse: "Física"}
	merged := base.Merge(Payload{KeyNotificationID: "n1"})

	if merged[KeyCourse] != "Física" || merged[KeyNotificationID] != "n1" {
		t.Errorf("Merge() = %v", merged)
	}
	if _, ok := base[KeyNotificationID]; ok {
		t.Error("Merge() modified the receiver")
	}
}

func TestUserCanSendManual(t *testing.T) {
	t.Parallel()

	var nobody *User
	if nobody.CanSendManual() {
		t.Error("nil user allowed")
	}
	if (&User{Role: "tutor"}).CanSendManual() {
		t.Error("tutor allowed")
	}
	if !(&User{Role: RoleSuperAdmin}).CanSendManual() {
		t.Error("superAdmin denied")
	}
}
