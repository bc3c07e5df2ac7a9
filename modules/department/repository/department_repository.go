package repository

import (
	"context"
	"database/sql"
	"room-booking-api/core/database"
	"room-booking-api/core/logger"
	"room-booking-api/modules/department/entity"

	"github.com/google/uuid"
)

type DepartmentRepository struct {
	db database.IDatabase
}

func NewDepartmentRepository(db database.IDatabase) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

type DepartmentRepositoryInterface interface {
	Create(ctx context.Context, dc *entity.DepartmentCode) (*entity.DepartmentCode, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DepartmentCode, error)
	GetByCode(ctx context.Context, code string) (*entity.DepartmentCode, error)
	List(ctx context.Context) ([]entity.DepartmentCode, error)
	Update(ctx context.Context, dc *entity.DepartmentCode) error
	Delete(ctx context.Context, id uuid.UUID) error
}

const departmentColumns = `id, code, department_name, role, created_at, updated_at`

func (r *DepartmentRepository) Create(ctx context.Context, dc *entity.DepartmentCode) (*entity.DepartmentCode, error) {
	query := `
		INSERT INTO department_codes (code, department_name, role)
		VALUES ($1, $2, $3)
		RETURNING ` + departmentColumns

	var created entity.DepartmentCode
	err := r.db.GetContext(ctx, &created, query, dc.Code, dc.DepartmentName, dc.Role)
	if err != nil {
		logger.Error("DepartmentRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DepartmentCode, error) {
	var dc entity.DepartmentCode
	err := r.db.GetContext(ctx, &dc, `SELECT `+departmentColumns+` FROM department_codes WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("DepartmentRepository:GetByID", err)
		return nil, err
	}
	return &dc, nil
}

// GetByCode expects an already-normalized code; rows are stored normalized.
func (r *DepartmentRepository) GetByCode(ctx context.Context, code string) (*entity.DepartmentCode, error) {
	var dc entity.DepartmentCode
	err := r.db.GetContext(ctx, &dc, `SELECT `+departmentColumns+` FROM department_codes WHERE code = $1`, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("DepartmentRepository:GetByCode", err)
		return nil, err
	}
	return &dc, nil
}

func (r *DepartmentRepository) List(ctx context.Context) ([]entity.DepartmentCode, error) {
	var codes []entity.DepartmentCode
	err := r.db.SelectContext(ctx, &codes, `SELECT `+departmentColumns+` FROM department_codes ORDER BY department_name`)
	if err != nil {
		logger.Error("DepartmentRepository:List", err)
		return nil, err
	}
	return codes, nil
}

func (r *DepartmentRepository) Update(ctx context.Context, dc *entity.DepartmentCode) error {
	query := `
		UPDATE department_codes
		SET code = $2, department_name = $3, role = $4, updated_at = NOW()
		WHERE id = $1
	`
	err := r.db.ExecContext(ctx, query, dc.ID, dc.Code, dc.DepartmentName, dc.Role)
	if err != nil {
		logger.Error("DepartmentRepository:Update", err)
	}
	return err
}

func (r *DepartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.ExecContext(ctx, `DELETE FROM department_codes WHERE id = $1`, id)
	if err != nil {
		logger.Error("DepartmentRepository:Delete", err)
	}
	return err
}
