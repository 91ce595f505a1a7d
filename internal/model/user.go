package model

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superAdmin"
)

// User профиль пользователя (users)
type User struct {
	ID        string `json:"id"`
	PushToken string `json:"fcmToken"` // FCM токен или chat id для Telegram
	Role      Role   `json:"role"`
}

// CanSendManual может ли пользователь отправлять ручные уведомления
func (u *User) CanSendManual() bool {
	return u != nil && (u.Role == RoleAdmin || u.Role == RoleSuperAdmin)
}
