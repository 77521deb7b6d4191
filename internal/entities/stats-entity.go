package entities

// ProblemStat — количество заявок с одинаковым описанием проблемы.
// Группировка идет по сырой строке, без нормализации.
type ProblemStat struct {
	ProblemType string `json:"problem_type"`
	Count       int    `json:"cnt"`
}

// GlobalStats — сводные показатели по всему пулу заявок (доступны
// только менеджеру). AverageDays == nil означает "нет данных", а не 0.
type GlobalStats struct {
	CompletedCount int            `json:"completed_requests_count"`
	AverageDays    *float64       `json:"average_completion_time_days"`
	Problems       []ProblemStat  `json:"problem_statistics"`
	ByStatus       map[string]int `json:"status_distribution,omitempty"`
}

// UserStats — показатели по заявкам одного пользователя (личная
// статистика специалиста или срез по пользователю для менеджера).
type UserStats struct {
	Total       int            `json:"total_requests"`
	Completed   int            `json:"completed_requests"`
	Efficiency  float64        `json:"efficiency_percent"`
	AverageDays *float64       `json:"average_completion_time_days"`
	ByStatus    map[string]int `json:"status_distribution"`
}
