package utils

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "climate-repair-system/pkg/errors"
)

// HttpResponse — единый конверт ответа API.
type HttpResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Body    interface{} `json:"body,omitempty"`
}

func SuccessResponse(c echo.Context, code int, message string, body interface{}) error {
	return c.JSON(code, HttpResponse{
		Status:  true,
		Message: message,
		Body:    body,
	})
}

// ErrorResponse переводит ошибку доменного слоя в HTTP-статус.
// Порядок проверок важен: сначала точные sentinel-ошибки, затем типы.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		return c.JSON(httpErr.Code, HttpResponse{
			Status:  false,
			Message: httpErr.Message,
			Body:    httpErr.Details,
		})
	}

	var invalidInput *apperrors.InvalidInputError
	if errors.As(err, &invalidInput) {
		return c.JSON(http.StatusBadRequest, HttpResponse{
			Status:  false,
			Message: invalidInput.Message,
		})
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			details[fe.Field()] = "не прошло проверку по правилу '" + fe.Tag() + "'"
		}
		return c.JSON(http.StatusBadRequest, HttpResponse{
			Status:  false,
			Message: "Ошибка валидации данных",
			Body:    details,
		})
	}

	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, apperrors.ErrNotResponsible),
		errors.Is(err, apperrors.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenNotYetValid),
		errors.Is(err, apperrors.ErrMissingClaims),
		errors.Is(err, apperrors.ErrInvalidSigningMethod),
		errors.Is(err, apperrors.ErrEmptyAuthHeader),
		errors.Is(err, apperrors.ErrInvalidAuthHeader),
		errors.Is(err, apperrors.ErrActorNotFoundInContext):
		code = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrEmptyUpdate),
		errors.Is(err, apperrors.ErrLoginTaken):
		code = http.StatusBadRequest
	}

	if code == http.StatusInternalServerError {
		logger.Error("Внутренняя ошибка сервера", zap.Error(err))
		return c.JSON(code, HttpResponse{
			Status:  false,
			Message: "Внутренняя ошибка сервера",
		})
	}

	return c.JSON(code, HttpResponse{
		Status:  false,
		Message: err.Error(),
	})
}
