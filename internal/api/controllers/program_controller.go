package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"danakita/internal/models/request_models"
	"danakita/internal/services"
	"danakita/pkg/utils"
)

type ProgramController struct {
	programService services.ProgramServiceInterface
}

func NewProgramController(programService services.ProgramServiceInterface) *ProgramController {
	return &ProgramController{
		programService: programService,
	}
}

func (pc *ProgramController) CreateProgramHandler(c *gin.Context) {
	var req request_models.CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid program payload")
		return
	}

	resp, err := pc.programService.CreateProgram(services.CreateProgramInput{
		Title:             req.Title,
		Slug:              req.Slug,
		Description:       req.Description,
		Categories:        req.Categories,
		TargetAmountMinor: req.TargetAmount,
	}, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Program created")
}

func (pc *ProgramController) GetProgramHandler(c *gin.Context) {
	programID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid program id")
		return
	}

	resp, err := pc.programService.GetProgram(programID, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Fetched program")
}

func (pc *ProgramController) ListProgramsHandler(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	resp, err := pc.programService.ListPrograms(page, pageSize, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Fetched programs")
}
