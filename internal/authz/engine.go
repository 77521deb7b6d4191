package authz

import (
	"fmt"

	apperrors "climate-repair-system/pkg/errors"
)

// Target — поля владения цели операции. Ровно то, что нужно движку:
// решение зависит только от роли, id актора и этих двух полей.
type Target struct {
	ClientID int
	MasterID *int
}

// DeniedError сохраняет действие и цель для журнала; наружу уходит
// только сообщение вложенной причины.
type DeniedError struct {
	Action   Action
	Role     Role
	ActorID  int
	TargetID int
	Reason   error
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("%v (действие %s, роль %s, актор %d, цель %d)",
		e.Reason, e.Action, e.Role, e.ActorID, e.TargetID)
}

func (e *DeniedError) Unwrap() error { return e.Reason }

func deny(actor Actor, action Action, targetID int, reason error) error {
	return &DeniedError{
		Action:   action,
		Role:     actor.Role,
		ActorID:  actor.ID,
		TargetID: targetID,
		Reason:   reason,
	}
}

// Decide — единственная точка принятия решений по правам. Возвращает
// nil при разрешении, иначе DeniedError. Запрещено все, что явно не
// разрешено таблицей capabilities; для целевых операций сверх таблицы
// проверяется владение. Проверку существования цели выполняет
// вызывающий ДО обращения сюда: на отсутствующей записи владение не
// оценивается.
func Decide(actor Actor, action Action, target *Target) error {
	if !capabilities[actor.Role][action] {
		return deny(actor, action, 0, apperrors.ErrForbidden)
	}

	if target == nil {
		return nil
	}

	isMaster := target.MasterID != nil && *target.MasterID == actor.ID

	switch action {
	case RequestsView, CommentsView:
		if actor.Role == RoleCustomer && target.ClientID != actor.ID {
			return deny(actor, action, target.ClientID, apperrors.ErrForbidden)
		}
		if actor.Role == RoleSpecialist && !isMaster {
			return deny(actor, action, target.ClientID, apperrors.ErrForbidden)
		}

	case RequestsUpdate:
		if actor.Role == RoleSpecialist && !isMaster {
			return deny(actor, action, target.ClientID, apperrors.ErrForbidden)
		}

	case CommentsCreate:
		// Для специалиста несовпадение с master_id — отдельная причина
		// отказа, не общий 403.
		if actor.Role == RoleSpecialist && !isMaster {
			return deny(actor, action, target.ClientID, apperrors.ErrNotResponsible)
		}
	}

	return nil
}

// ScopeFilter — предварительная фильтрация списка заявок по роли.
type ScopeFilter struct {
	ClientID *int
	MasterID *int
}

// ListScope возвращает фильтр видимости для списочных операций:
// заказчик видит только свои заявки, специалист — только назначенные
// ему, оператор и менеджер — все.
func ListScope(actor Actor) ScopeFilter {
	switch actor.Role {
	case RoleCustomer:
		id := actor.ID
		return ScopeFilter{ClientID: &id}
	case RoleSpecialist:
		id := actor.ID
		return ScopeFilter{MasterID: &id}
	default:
		return ScopeFilter{}
	}
}
