package authz

import "fmt"

// Role — закрытый набор ролей; значения совпадают со строками в БД и
// в токене. Роль назначается при регистрации и не меняется.
type Role string

const (
	RoleCustomer   Role = "Заказчик"
	RoleSpecialist Role = "Специалист"
	RoleOperator   Role = "Оператор"
	RoleManager    Role = "Менеджер"
)

var AllRoles = []Role{RoleCustomer, RoleSpecialist, RoleOperator, RoleManager}

func ParseRole(s string) (Role, error) {
	for _, r := range AllRoles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("недопустимая роль %q", s)
}

// Actor — аутентифицированный пользователь, выполняющий операцию.
// Заполняется из claims токена, сессионного состояния в ядре нет.
type Actor struct {
	ID   int
	Role Role
	Fio  string
}
