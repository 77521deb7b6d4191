package dto

import (
	"time"

	"github.com/aarondl/null/v8"

	"climate-repair-system/internal/entities"
)

const dateLayout = "2006-01-02"

type CreateRequestDTO struct {
	StartDate          string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EquipmentType      string `json:"equipment_type" validate:"required"`
	EquipmentModel     string `json:"equipment_model" validate:"required"`
	ProblemDescription string `json:"problem_description" validate:"required"`
	Status             string `json:"request_status" validate:"omitempty"`
	MasterID           *int   `json:"master_id,omitempty" validate:"omitempty,gt=0"`
	ClientID           int    `json:"client_id" validate:"omitempty,gt=0"`
}

// UpdateRequestDTO — частичное обновление. Для master_id важна разница
// между "поля нет" (указатель nil, ничего не трогаем) и "поле есть со
// значением null" (null.Int с Valid=false — снятие специалиста).
type UpdateRequestDTO struct {
	Status             *string   `json:"request_status,omitempty"`
	ProblemDescription *string   `json:"problem_description,omitempty"`
	MasterID           *null.Int `json:"master_id,omitempty"`
	CompletionDate     *string   `json:"completion_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RepairParts        *string   `json:"repair_parts,omitempty"`
}

// HasChanges сообщает, есть ли в запросе хоть одно распознанное поле.
// Пустое обновление — ошибка валидации, а не тихий no-op.
func (d UpdateRequestDTO) HasChanges() bool {
	return d.Status != nil ||
		d.ProblemDescription != nil ||
		d.MasterID != nil ||
		d.CompletionDate != nil ||
		d.RepairParts != nil
}

type RequestDTO struct {
	RequestID          int     `json:"request_id"`
	StartDate          string  `json:"start_date"`
	EquipmentType      string  `json:"equipment_type"`
	EquipmentModel     string  `json:"equipment_model"`
	ProblemDescription string  `json:"problem_description"`
	Status             string  `json:"request_status"`
	CompletionDate     *string `json:"completion_date"`
	RepairParts        *string `json:"repair_parts"`
	MasterID           *int    `json:"master_id"`
	ClientID           int     `json:"client_id"`
}

func NewRequestDTO(r entities.RepairRequest) RequestDTO {
	res := RequestDTO{
		RequestID:          r.ID,
		StartDate:          r.StartDate.Format(dateLayout),
		EquipmentType:      r.EquipmentType,
		EquipmentModel:     r.EquipmentModel,
		ProblemDescription: r.ProblemDescription,
		Status:             r.Status,
		RepairParts:        r.RepairParts,
		MasterID:           r.MasterID,
		ClientID:           r.ClientID,
	}
	if r.CompletionDate != nil {
		s := r.CompletionDate.Format(dateLayout)
		res.CompletionDate = &s
	}
	return res
}

func NewRequestDTOs(list []entities.RepairRequest) []RequestDTO {
	out := make([]RequestDTO, 0, len(list))
	for _, r := range list {
		out = append(out, NewRequestDTO(r))
	}
	return out
}

// ParseDate разбирает дату формата 2006-01-02 из входных DTO.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
