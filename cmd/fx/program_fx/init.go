package program_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"danakita/internal/api/controllers"
	"danakita/internal/repositories"
	"danakita/internal/services"
)

var Module = fx.Provide(
	provideProgramRepository,
	provideProgramService,
	provideProgramController,
)

func provideProgramRepository(db *gorm.DB) repositories.ProgramRepositoryInterface {
	return repositories.NewProgramRepository(db)
}

func provideProgramService(programs repositories.ProgramRepositoryInterface) services.ProgramServiceInterface {
	return services.NewProgramService(programs)
}

func provideProgramController(programService services.ProgramServiceInterface) *controllers.ProgramController {
	return controllers.NewProgramController(programService)
}
