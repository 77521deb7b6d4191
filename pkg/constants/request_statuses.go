package constants

// --- СТАТУСЫ ЗАЯВОК (Совпадают со значениями в БД) ---
const (
	StatusNew            = "Новая заявка"
	StatusInRepair       = "В процессе ремонта"
	StatusAwaitingParts  = "Ожидание комплектующих"
	StatusReadyForPickup = "Готова к выдаче"
	StatusCompleted      = "Завершена"
)

// KnownStatuses — закрытый набор; граф переходов намеренно не
// задается, любой статус может сменить любой другой.
var KnownStatuses = []string{
	StatusNew,
	StatusInRepair,
	StatusAwaitingParts,
	StatusReadyForPickup,
	StatusCompleted,
}

// Статусы, при которых заявка считается выполненной.
var CompletedStatuses = []string{
	StatusReadyForPickup,
	StatusCompleted,
}

func IsKnownStatus(status string) bool {
	for _, s := range KnownStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func IsCompletedStatus(status string) bool {
	for _, s := range CompletedStatuses {
		if s == status {
			return true
		}
	}
	return false
}
