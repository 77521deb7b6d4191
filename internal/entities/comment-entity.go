package entities

import "time"

// Comment живет только внутри родительской заявки; после создания не
// редактируется и не удаляется.
type Comment struct {
	ID         int       `json:"comment_id" db:"comment_id"`
	Message    string    `json:"message" db:"message"`
	MasterID   int       `json:"master_id" db:"master_id"`
	MasterName string    `json:"master_name,omitempty" db:"master_name"`
	RequestID  int       `json:"request_id" db:"request_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
