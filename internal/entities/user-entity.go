package entities

import "climate-repair-system/internal/authz"

type User struct {
	ID       int        `json:"user_id" db:"user_id"`
	Fio      string     `json:"fio" db:"fio"`
	Phone    string     `json:"phone" db:"phone"`
	Login    string     `json:"login" db:"login"`
	Password string     `json:"-" db:"password"`
	Role     authz.Role `json:"role" db:"role"`
}
