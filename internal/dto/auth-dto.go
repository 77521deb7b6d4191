package dto

type RegisterDTO struct {
	Fio      string `json:"fio" validate:"required,min=3,max=255"`
	Phone    string `json:"phone" validate:"required,min=5,max=32"`
	Login    string `json:"login" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required"`
}

type LoginDTO struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ProfileDTO — ответ /me, собирается из claims и записи пользователя.
type ProfileDTO struct {
	UserID int    `json:"user_id"`
	Fio    string `json:"fio"`
	Phone  string `json:"phone"`
	Login  string `json:"login"`
	Role   string `json:"role"`
}
