package errors

import "fmt"

var (
	// JWT и токены
	ErrInvalidSigningMethod = fmt.Errorf("неверный метод подписи токена")
	ErrInvalidToken         = fmt.Errorf("недопустимый токен")
	ErrTokenExpired         = fmt.Errorf("срок действия токена истёк")
	ErrTokenNotYetValid     = fmt.Errorf("токен ещё не активен")
	ErrMissingClaims        = fmt.Errorf("в токене отсутствуют обязательные поля")

	// Аутентификация
	ErrEmptyAuthHeader    = fmt.Errorf("заголовок авторизации отсутствует")
	ErrInvalidAuthHeader  = fmt.Errorf("неверный формат заголовка авторизации")
	ErrInvalidCredentials = fmt.Errorf("неверный логин или пароль")
	ErrUnauthorized       = fmt.Errorf("неавторизован")

	// Авторизация
	ErrForbidden      = fmt.Errorf("доступ запрещён")
	ErrNotResponsible = fmt.Errorf("вы не являетесь ответственным за эту заявку")

	// Контекст
	ErrActorNotFoundInContext = fmt.Errorf("пользователь не найден в контексте запроса")

	// Общие
	ErrNotFound    = fmt.Errorf("запись не найдена")
	ErrBadRequest  = fmt.Errorf("неверный запрос")
	ErrLoginTaken  = fmt.Errorf("пользователь с таким логином уже существует")
	ErrEmptyUpdate = fmt.Errorf("в запросе нет ни одного поля для обновления")
)

// HttpError несет HTTP-код и сообщение для пользователя; техническая
// причина остается в Err и наружу не отдается.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]string
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]string) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

// Кастомные типы ошибок
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
