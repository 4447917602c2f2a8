package model

import "time"

// Действия, попадающие в журнал аудита.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// AuditEvent: запись журнала изменений.
type AuditEvent struct {
	ID       string    `json:"id"`
	Entity   string    `json:"entity"`
	EntityID int       `json:"entity_id"`
	Action   string    `json:"action"`
	Actor    string    `json:"actor,omitempty"`
	Rows     int64     `json:"rows,omitempty"` // строк удалено каскадом
	At       time.Time `json:"at"`
}
