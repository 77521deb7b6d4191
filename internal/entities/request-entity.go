package entities

import "time"

// RepairRequest — заявка на ремонт климатического оборудования.
// client_id обязателен всегда; master_id появляется только после
// назначения ответственного специалиста.
type RepairRequest struct {
	ID                 int        `json:"request_id" db:"request_id"`
	StartDate          time.Time  `json:"start_date" db:"start_date"`
	EquipmentType      string     `json:"equipment_type" db:"equipment_type"`
	EquipmentModel     string     `json:"equipment_model" db:"equipment_model"`
	ProblemDescription string     `json:"problem_description" db:"problem_description"`
	Status             string     `json:"request_status" db:"request_status"`
	CompletionDate     *time.Time `json:"completion_date,omitempty" db:"completion_date"`
	RepairParts        *string    `json:"repair_parts,omitempty" db:"repair_parts"`
	MasterID           *int       `json:"master_id,omitempty" db:"master_id"`
	ClientID           int        `json:"client_id" db:"client_id"`
}
