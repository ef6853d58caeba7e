package entity

import "time"

const (
	RoleStudent  = "student"
	RoleEducator = "educator"
)

type User struct {
	ID         int       `json:"id"`
	Username   string    `json:"username"`
	Password   string    `json:"-"` // bcrypt-хеш, не сырой пароль
	Role       string    `json:"role"`
	University string    `json:"university"`
	CreatedAt  time.Time `json:"created_at"`
}
