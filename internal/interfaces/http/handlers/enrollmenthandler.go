package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pharris560/ace-attendance/internal/application/enrollment/usecases"
	"github.com/pharris560/ace-attendance/internal/interfaces/dto"
	"github.com/pharris560/ace-attendance/internal/interfaces/http/middleware"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
	"github.com/pharris560/ace-attendance/internal/shared/utils"
)

// EnrollmentHandler serves roster membership under /classes/:id.
type EnrollmentHandler struct {
	enrollUseCase   *usecases.EnrollStudentUseCase
	unenrollUseCase *usecases.UnenrollStudentUseCase
	rosterUseCase   *usecases.GetClassRosterUseCase
	logger          logger.Interface
}

// NewEnrollmentHandler creates a new enrollment handler
func NewEnrollmentHandler(
	enrollUC *usecases.EnrollStudentUseCase,
	unenrollUC *usecases.UnenrollStudentUseCase,
	rosterUC *usecases.GetClassRosterUseCase,
	logger logger.Interface,
) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollUseCase:   enrollUC,
		unenrollUseCase: unenrollUC,
		rosterUseCase:   rosterUC,
		logger:          logger,
	}
}

func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req dto.EnrollStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.enrollUseCase.Execute(c.Request.Context(), usecases.EnrollStudentCommand{
		ActingUserID: middleware.CurrentUserID(c),
		ClassID:      c.Param("id"),
		StudentID:    req.StudentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewEnrollmentResponse(created), "student enrolled")
}

func (h *EnrollmentHandler) Unenroll(c *gin.Context) {
	err := h.unenrollUseCase.Execute(c.Request.Context(), usecases.UnenrollStudentCommand{
		ActingUserID: middleware.CurrentUserID(c),
		ClassID:      c.Param("id"),
		StudentID:    c.Param("studentID"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *EnrollmentHandler) Roster(c *gin.Context) {
	entries, err := h.rosterUseCase.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewRosterEntryResponses(entries))
}
