package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"danakita/internal/models/db_models"
)

type ProgramRepositoryInterface interface {
	CreateProgram(program *db_models.Program, ctx context.Context) error
	GetByID(programID uuid.UUID, ctx context.Context) (*db_models.Program, error)
	ListActive(page int, pageSize int, ctx context.Context) ([]db_models.Program, error)
	// IncrementCollected applies the program-total increment inside the
	// caller's transaction as a SQL-level atomic add, never read-modify-write.
	IncrementCollected(tx *gorm.DB, programID uuid.UUID, amountMinor int64) error
}

func NewProgramRepository(db *gorm.DB) ProgramRepositoryInterface {
	return &ProgramRepository{db: db}
}

type ProgramRepository struct {
	db *gorm.DB
}

func (p *ProgramRepository) CreateProgram(program *db_models.Program, ctx context.Context) error {
	return p.db.WithContext(ctx).Create(program).Error
}

func (p *ProgramRepository) GetByID(programID uuid.UUID, ctx context.Context) (*db_models.Program, error) {
	var program db_models.Program
	err := p.db.WithContext(ctx).Where("id = ?", programID).First(&program).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &program, nil
}

func (p *ProgramRepository) ListActive(page int, pageSize int, ctx context.Context) ([]db_models.Program, error) {
	var programs []db_models.Program
	err := p.db.WithContext(ctx).
		Where("is_active = TRUE").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&programs).Error
	if err != nil {
		return nil, err
	}
	return programs, nil
}

func (p *ProgramRepository) IncrementCollected(tx *gorm.DB, programID uuid.UUID, amountMinor int64) error {
	res := tx.Model(&db_models.Program{}).
		Where("id = ?", programID).
		UpdateColumn("collected_amount_minor", gorm.Expr("collected_amount_minor + ?", amountMinor))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
