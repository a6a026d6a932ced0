package domain

import "time"

type Role string

const (
	RoleBrand   Role = "brand"
	RoleBlogger Role = "blogger"
	RoleManager Role = "manager"
)

// User принадлежит сервису аккаунтов; здесь только чтение.
// Чату нужны id и username для авторизации и атрибуции сообщений.
type User struct {
	ID        int64     `db:"id"`
	Email     string    `db:"email"`
	Username  string    `db:"username"`
	Role      Role      `db:"role"`
	Confirmed bool      `db:"is_confirmed"`
	CreatedAt time.Time `db:"created_at"`
}
