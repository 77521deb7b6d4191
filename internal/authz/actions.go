// internal/authz/actions.go
package authz

// --- СПИСОК ВСЕХ ДЕЙСТВИЙ В СИСТЕМЕ ---

type Action string

const (
	// Заявки
	RequestsList   Action = "requests:list"
	RequestsView   Action = "requests:view"
	RequestsCreate Action = "requests:create"
	RequestsUpdate Action = "requests:update"
	RequestsDelete Action = "requests:delete"

	// Комментарии
	CommentsView   Action = "comments:view"
	CommentsCreate Action = "comments:create"

	// Пользователи
	UsersList       Action = "users:list"
	SpecialistsList Action = "users:specialists"

	// Статистика
	StatsGlobal Action = "stats:global"
	StatsOwn    Action = "stats:own"

	// Отчеты
	ReportsExport Action = "reports:export"
)

var AllActions = []Action{
	RequestsList, RequestsView, RequestsCreate, RequestsUpdate, RequestsDelete,
	CommentsView, CommentsCreate,
	UsersList, SpecialistsList,
	StatsGlobal, StatsOwn,
	ReportsExport,
}

// capabilities — единая таблица прав: роль разрешает действие только
// если оно явно перечислено здесь. Проверки владения выполняются
// отдельно в Decide.
var capabilities = map[Role]map[Action]bool{
	RoleCustomer: {
		RequestsList:   true,
		RequestsView:   true,
		RequestsCreate: true,
		CommentsView:   true,
	},
	RoleSpecialist: {
		RequestsList:   true,
		RequestsView:   true,
		RequestsUpdate: true,
		CommentsView:   true,
		CommentsCreate: true,
		StatsOwn:       true,
	},
	RoleOperator: {
		RequestsList:    true,
		RequestsView:    true,
		RequestsCreate:  true,
		RequestsUpdate:  true,
		CommentsView:    true,
		SpecialistsList: true,
	},
	RoleManager: {
		RequestsList:    true,
		RequestsView:    true,
		RequestsCreate:  true,
		RequestsUpdate:  true,
		RequestsDelete:  true,
		CommentsView:    true,
		CommentsCreate:  true,
		UsersList:       true,
		SpecialistsList: true,
		StatsGlobal:     true,
		ReportsExport:   true,
	},
}
