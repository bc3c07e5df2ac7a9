package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DepartmentCode is a shared secret identifying a department. Codes are
// stored normalized so lookups are insensitive to surrounding whitespace and
// letter case.
type DepartmentCode struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Code           string    `db:"code" json:"code"`
	DepartmentName string    `db:"department_name" json:"department_name"`
	Role           string    `db:"role" json:"role"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// NormalizeCode is the single canonical form for department codes everywhere
// in the service.
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
