package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pharris560/ace-attendance/internal/application/class/usecases"
	"github.com/pharris560/ace-attendance/internal/interfaces/dto"
	"github.com/pharris560/ace-attendance/internal/interfaces/http/middleware"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
	"github.com/pharris560/ace-attendance/internal/shared/utils"
)

// ClassHandler serves class CRUD and the per-class aggregation view.
type ClassHandler struct {
	createUseCase *usecases.CreateClassUseCase
	getUseCase    *usecases.GetClassUseCase
	listUseCase   *usecases.ListClassesUseCase
	updateUseCase *usecases.UpdateClassUseCase
	deleteUseCase *usecases.DeleteClassUseCase
	statsUseCase  *usecases.GetClassStatsUseCase
	logger        logger.Interface
}

// NewClassHandler creates a new class handler
func NewClassHandler(
	createUC *usecases.CreateClassUseCase,
	getUC *usecases.GetClassUseCase,
	listUC *usecases.ListClassesUseCase,
	updateUC *usecases.UpdateClassUseCase,
	deleteUC *usecases.DeleteClassUseCase,
	statsUC *usecases.GetClassStatsUseCase,
	logger logger.Interface,
) *ClassHandler {
	return &ClassHandler{
		createUseCase: createUC,
		getUseCase:    getUC,
		listUseCase:   listUC,
		updateUseCase: updateUC,
		deleteUseCase: deleteUC,
		statsUseCase:  statsUC,
		logger:        logger,
	}
}

func (h *ClassHandler) Create(c *gin.Context) {
	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateClassCommand{
		OwnerID:    middleware.CurrentUserID(c),
		Name:       req.Name,
		Instructor: req.Instructor,
		Capacity:   req.Capacity,
		Schedule:   req.Schedule,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewClassResponse(created))
}

func (h *ClassHandler) Get(c *gin.Context) {
	cls, err := h.getUseCase.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewClassResponse(cls))
}

func (h *ClassHandler) List(c *gin.Context) {
	summaries, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListClassesCommand{
		ActingUserID: middleware.CurrentUserID(c),
		OwnedOnly:    c.Query("owned") == "true",
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewClassSummaryResponses(summaries))
}

func (h *ClassHandler) Update(c *gin.Context) {
	var req dto.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateClassCommand{
		ActingUserID: middleware.CurrentUserID(c),
		ClassID:      c.Param("id"),
		Name:         req.Name,
		Instructor:   req.Instructor,
		Capacity:     req.Capacity,
		Schedule:     req.Schedule,
		Status:       req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "class updated", dto.NewClassResponse(updated))
}

func (h *ClassHandler) Delete(c *gin.Context) {
	err := h.deleteUseCase.Execute(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *ClassHandler) Stats(c *gin.Context) {
	stats, err := h.statsUseCase.Execute(c.Request.Context(), usecases.GetClassStatsCommand{
		ClassID:  c.Param("id"),
		DateFrom: c.Query("from"),
		DateTo:   c.Query("to"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", stats)
}
