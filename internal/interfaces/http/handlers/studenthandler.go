package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	attendanceusecases "github.com/pharris560/ace-attendance/internal/application/attendance/usecases"
	"github.com/pharris560/ace-attendance/internal/application/student/usecases"
	"github.com/pharris560/ace-attendance/internal/interfaces/dto"
	"github.com/pharris560/ace-attendance/internal/interfaces/http/middleware"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
	"github.com/pharris560/ace-attendance/internal/shared/utils"
)

// StudentHandler serves student CRUD and a student's attendance history.
type StudentHandler struct {
	createUseCase         *usecases.CreateStudentUseCase
	getUseCase            *usecases.GetStudentUseCase
	listUseCase           *usecases.ListStudentsUseCase
	updateUseCase         *usecases.UpdateStudentUseCase
	deleteUseCase         *usecases.DeleteStudentUseCase
	listAttendanceUseCase *attendanceusecases.ListStudentAttendanceUseCase
	logger                logger.Interface
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(
	createUC *usecases.CreateStudentUseCase,
	getUC *usecases.GetStudentUseCase,
	listUC *usecases.ListStudentsUseCase,
	updateUC *usecases.UpdateStudentUseCase,
	deleteUC *usecases.DeleteStudentUseCase,
	listAttendanceUC *attendanceusecases.ListStudentAttendanceUseCase,
	logger logger.Interface,
) *StudentHandler {
	return &StudentHandler{
		createUseCase:         createUC,
		getUseCase:            getUC,
		listUseCase:           listUC,
		updateUseCase:         updateUC,
		deleteUseCase:         deleteUC,
		listAttendanceUseCase: listAttendanceUC,
		logger:                logger,
	}
}

func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateStudentCommand{
		OwnerID:       middleware.CurrentUserID(c),
		StudentNumber: req.StudentNumber,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewStudentResponse(created))
}

func (h *StudentHandler) Get(c *gin.Context) {
	st, err := h.getUseCase.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewStudentResponse(st))
}

func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListStudentsCommand{
		ActingUserID: middleware.CurrentUserID(c),
		OwnedOnly:    c.Query("owned") == "true",
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewStudentResponses(students))
}

func (h *StudentHandler) Update(c *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateStudentCommand{
		ActingUserID:  middleware.CurrentUserID(c),
		StudentID:     c.Param("id"),
		StudentNumber: req.StudentNumber,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Status:        req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "student updated", dto.NewStudentResponse(updated))
}

func (h *StudentHandler) Delete(c *gin.Context) {
	err := h.deleteUseCase.Execute(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *StudentHandler) ListAttendance(c *gin.Context) {
	records, err := h.listAttendanceUseCase.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewEnrichedAttendanceResponses(records))
}
