package utils

import (
	"context"

	"climate-repair-system/internal/authz"
	"climate-repair-system/pkg/contextkeys"
	apperrors "climate-repair-system/pkg/errors"
)

// GetActorFromCtx достаёт actor, положенный auth-middleware.
// Отсутствие actor означает обращение мимо middleware и трактуется
// как ошибка аутентификации.
func GetActorFromCtx(ctx context.Context) (*authz.Actor, error) {
	actor, ok := ctx.Value(contextkeys.ActorKey).(*authz.Actor)
	if !ok || actor == nil {
		return nil, apperrors.ErrActorNotFoundInContext
	}
	return actor, nil
}
