package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"room-booking-api/core/entity"
)

// Notification is addressed to a department, not an account: the booking
// flow has no user accounts, so a normalized department code is the only
// stable recipient identity.
type Notification struct {
	DepartmentCode string `db:"department_code" json:"department_code"`
	Title          string `db:"title" json:"title"`
	Message        string `db:"message" json:"message"`
	Type           string `db:"type" json:"type"`
	Data           JSONB  `db:"data" json:"data"`
	IsRead         bool   `db:"is_read" json:"is_read"`
	entity.BaseEntity
}

type JSONB map[string]interface{}

func (a JSONB) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

func (a *JSONB) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &a)
}

type PaginatedNotificationEntity = entity.Pagination[Notification]
