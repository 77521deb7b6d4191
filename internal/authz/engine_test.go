package authz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "climate-repair-system/pkg/errors"
)

// Полная таблица "роль x действие" без учета владения. Все, чего нет
// в списке разрешенного, должно быть запрещено.
func TestDecideCapabilityTable(t *testing.T) {
	allowed := map[Role]map[Action]bool{
		RoleCustomer: {
			RequestsList: true, RequestsView: true, RequestsCreate: true,
			CommentsView: true,
		},
		RoleSpecialist: {
			RequestsList: true, RequestsView: true, RequestsUpdate: true,
			CommentsView: true, CommentsCreate: true, StatsOwn: true,
		},
		RoleOperator: {
			RequestsList: true, RequestsView: true, RequestsCreate: true,
			RequestsUpdate: true, CommentsView: true, SpecialistsList: true,
		},
		RoleManager: {
			RequestsList: true, RequestsView: true, RequestsCreate: true,
			RequestsUpdate: true, RequestsDelete: true,
			CommentsView: true, CommentsCreate: true,
			UsersList: true, SpecialistsList: true,
			StatsGlobal: true, StatsOwn: false, ReportsExport: true,
		},
	}

	for _, role := range AllRoles {
		actor := Actor{ID: 1, Role: role}
		for _, action := range AllActions {
			err := Decide(actor, action, nil)
			if allowed[role][action] {
				assert.NoError(t, err, "роль %s должна иметь право на %s", role, action)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrForbidden,
					"роль %s не должна иметь право на %s", role, action)
			}
		}
	}
}

func intPtr(v int) *int { return &v }

func TestDecideCustomerOwnership(t *testing.T) {
	customer := Actor{ID: 10, Role: RoleCustomer}

	err := Decide(customer, RequestsView, &Target{ClientID: 10})
	require.NoError(t, err)

	err = Decide(customer, RequestsView, &Target{ClientID: 11})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	err = Decide(customer, CommentsView, &Target{ClientID: 11})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestDecideSpecialistOwnership(t *testing.T) {
	specialist := Actor{ID: 7, Role: RoleSpecialist}

	t.Run("своя заявка доступна", func(t *testing.T) {
		target := &Target{ClientID: 1, MasterID: intPtr(7)}
		assert.NoError(t, Decide(specialist, RequestsView, target))
		assert.NoError(t, Decide(specialist, RequestsUpdate, target))
		assert.NoError(t, Decide(specialist, CommentsCreate, target))
	})

	t.Run("чужая заявка запрещена", func(t *testing.T) {
		target := &Target{ClientID: 1, MasterID: intPtr(8)}
		assert.ErrorIs(t, Decide(specialist, RequestsView, target), apperrors.ErrForbidden)
		assert.ErrorIs(t, Decide(specialist, RequestsUpdate, target), apperrors.ErrForbidden)
	})

	t.Run("заявка без мастера запрещена", func(t *testing.T) {
		target := &Target{ClientID: 1}
		assert.ErrorIs(t, Decide(specialist, RequestsView, target), apperrors.ErrForbidden)
	})

	t.Run("комментарий к чужой заявке дает отдельную причину", func(t *testing.T) {
		target := &Target{ClientID: 1, MasterID: intPtr(8)}
		err := Decide(specialist, CommentsCreate, target)
		assert.ErrorIs(t, err, apperrors.ErrNotResponsible)
		assert.NotErrorIs(t, errors.Unwrap(err.(*DeniedError)), apperrors.ErrForbidden)
	})
}

// Оператор читает комментарии любой заявки, проверка владения к нему
// не применяется.
func TestDecideOperatorReadsAnyComments(t *testing.T) {
	operator := Actor{ID: 2, Role: RoleOperator}

	assert.NoError(t, Decide(operator, CommentsView, &Target{ClientID: 3, MasterID: intPtr(7)}))
	assert.NoError(t, Decide(operator, CommentsView, &Target{ClientID: 3}))
}

func TestDecideManagerUnrestricted(t *testing.T) {
	manager := Actor{ID: 99, Role: RoleManager}
	target := &Target{ClientID: 1, MasterID: intPtr(2)}

	assert.NoError(t, Decide(manager, RequestsView, target))
	assert.NoError(t, Decide(manager, RequestsUpdate, target))
	assert.NoError(t, Decide(manager, CommentsCreate, target))
}

func TestListScope(t *testing.T) {
	customerScope := ListScope(Actor{ID: 5, Role: RoleCustomer})
	require.NotNil(t, customerScope.ClientID)
	assert.Equal(t, 5, *customerScope.ClientID)
	assert.Nil(t, customerScope.MasterID)

	specialistScope := ListScope(Actor{ID: 6, Role: RoleSpecialist})
	require.NotNil(t, specialistScope.MasterID)
	assert.Equal(t, 6, *specialistScope.MasterID)
	assert.Nil(t, specialistScope.ClientID)

	for _, role := range []Role{RoleOperator, RoleManager} {
		scope := ListScope(Actor{ID: 7, Role: role})
		assert.Nil(t, scope.ClientID, "роль %s видит все заявки", role)
		assert.Nil(t, scope.MasterID, "роль %s видит все заявки", role)
	}
}

func TestParseRole(t *testing.T) {
	for _, role := range AllRoles {
		parsed, err := ParseRole(string(role))
		require.NoError(t, err)
		assert.Equal(t, role, parsed)
	}

	_, err := ParseRole("Директор")
	assert.Error(t, err)
}
