package services

import (
	"context"

	"github.com/google/uuid"

	"danakita/internal/models/db_models"
	"danakita/internal/models/response_models"
	"danakita/internal/repositories"
	"danakita/pkg/utils"
)

type CreateProgramInput struct {
	Title             string
	Slug              string
	Description       string
	Categories        []string
	TargetAmountMinor int64
}

type ProgramServiceInterface interface {
	CreateProgram(input CreateProgramInput, ctx context.Context) (*response_models.ProgramResponse, error)
	GetProgram(programID uuid.UUID, ctx context.Context) (*response_models.ProgramResponse, error)
	ListPrograms(page int, pageSize int, ctx context.Context) ([]response_models.ProgramResponse, error)
}

func NewProgramService(programs repositories.ProgramRepositoryInterface) ProgramServiceInterface {
	return &ProgramService{programs: programs}
}

type ProgramService struct {
	programs repositories.ProgramRepositoryInterface
}

func (p *ProgramService) CreateProgram(input CreateProgramInput, ctx context.Context) (*response_models.ProgramResponse, error) {
	program := &db_models.Program{
		Title:             input.Title,
		Slug:              input.Slug,
		Description:       input.Description,
		Categories:        input.Categories,
		TargetAmountMinor: input.TargetAmountMinor,
		IsActive:          true,
	}
	if err := p.programs.CreateProgram(program, ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toProgramResponse(program), nil
}

func (p *ProgramService) GetProgram(programID uuid.UUID, ctx context.Context) (*response_models.ProgramResponse, error) {
	program, err := p.programs.GetByID(programID, ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if program == nil {
		return nil, utils.ErrProgramNotFound
	}
	return toProgramResponse(program), nil
}

func (p *ProgramService) ListPrograms(page int, pageSize int, ctx context.Context) ([]response_models.ProgramResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPage
	}

	programs, err := p.programs.ListActive(page, pageSize, ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ProgramResponse, 0, len(programs))
	for i := range programs {
		responses = append(responses, *toProgramResponse(&programs[i]))
	}
	return responses, nil
}

func toProgramResponse(program *db_models.Program) *response_models.ProgramResponse {
	return &response_models.ProgramResponse{
		ID:              program.ID.String(),
		Title:           program.Title,
		Slug:            program.Slug,
		Description:     program.Description,
		Categories:      program.Categories,
		TargetAmount:    program.TargetAmountMinor,
		CollectedAmount: program.CollectedAmountMinor,
		IsActive:        program.IsActive,
	}
}
