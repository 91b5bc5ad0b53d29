package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pharris560/ace-attendance/internal/application/attendance/usecases"
	"github.com/pharris560/ace-attendance/internal/interfaces/dto"
	"github.com/pharris560/ace-attendance/internal/interfaces/http/middleware"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
	"github.com/pharris560/ace-attendance/internal/shared/utils"
)

// AttendanceHandler serves record creation and mutation plus the per-class
// listing.
type AttendanceHandler struct {
	markUseCase      *usecases.MarkAttendanceUseCase
	bulkMarkUseCase  *usecases.BulkMarkAttendanceUseCase
	updateUseCase    *usecases.UpdateAttendanceUseCase
	deleteUseCase    *usecases.DeleteAttendanceUseCase
	listClassUseCase *usecases.ListClassAttendanceUseCase
	logger           logger.Interface
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(
	markUC *usecases.MarkAttendanceUseCase,
	bulkMarkUC *usecases.BulkMarkAttendanceUseCase,
	updateUC *usecases.UpdateAttendanceUseCase,
	deleteUC *usecases.DeleteAttendanceUseCase,
	listClassUC *usecases.ListClassAttendanceUseCase,
	logger logger.Interface,
) *AttendanceHandler {
	return &AttendanceHandler{
		markUseCase:      markUC,
		bulkMarkUseCase:  bulkMarkUC,
		updateUseCase:    updateUC,
		deleteUseCase:    deleteUC,
		listClassUseCase: listClassUC,
		logger:           logger,
	}
}

func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.markUseCase.Execute(c.Request.Context(), req.ToCommand(middleware.CurrentUserID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewAttendanceResponse(record))
}

func (h *AttendanceHandler) BulkMark(c *gin.Context) {
	var req dto.BulkMarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	markedBy := middleware.CurrentUserID(c)
	items := make([]usecases.MarkAttendanceCommand, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, item.ToCommand(markedBy))
	}

	results := h.bulkMarkUseCase.Execute(c.Request.Context(), usecases.BulkMarkAttendanceCommand{
		MarkedBy: markedBy,
		Items:    items,
	})

	// A mixed outcome is still 200, each row carries its own error.
	utils.SuccessResponse(c, http.StatusOK, "", dto.NewBulkMarkItemResponses(results))
}

func (h *AttendanceHandler) Update(c *gin.Context) {
	var req dto.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateAttendanceCommand{
		ActingUserID: middleware.CurrentUserID(c),
		RecordID:     c.Param("id"),
		Status:       req.Status,
		Notes:        req.Notes,
		Location:     req.ToDomainLocation(),
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "attendance updated", dto.NewAttendanceResponse(updated))
}

func (h *AttendanceHandler) Delete(c *gin.Context) {
	err := h.deleteUseCase.Execute(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *AttendanceHandler) ListByClass(c *gin.Context) {
	records, err := h.listClassUseCase.Execute(c.Request.Context(), usecases.ListClassAttendanceCommand{
		ClassID:  c.Param("id"),
		DateFrom: c.Query("from"),
		DateTo:   c.Query("to"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewEnrichedAttendanceResponses(records))
}
