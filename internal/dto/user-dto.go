package dto

import "climate-repair-system/internal/entities"

type UserDTO struct {
	UserID int    `json:"user_id"`
	Fio    string `json:"fio"`
	Phone  string `json:"phone"`
	Login  string `json:"login"`
	Role   string `json:"role"`
}

// SpecialistDTO — урезанная карточка для выбора ответственного:
// оператору и менеджеру не нужны логин и роль.
type SpecialistDTO struct {
	UserID int    `json:"user_id"`
	Fio    string `json:"fio"`
	Phone  string `json:"phone"`
}

func NewUserDTO(u entities.User) UserDTO {
	return UserDTO{
		UserID: u.ID,
		Fio:    u.Fio,
		Phone:  u.Phone,
		Login:  u.Login,
		Role:   string(u.Role),
	}
}

func NewSpecialistDTO(u entities.User) SpecialistDTO {
	return SpecialistDTO{
		UserID: u.ID,
		Fio:    u.Fio,
		Phone:  u.Phone,
	}
}
