package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pharris560/ace-attendance/internal/application/apikey/usecases"
	"github.com/pharris560/ace-attendance/internal/interfaces/dto"
	"github.com/pharris560/ace-attendance/internal/interfaces/http/middleware"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
	"github.com/pharris560/ace-attendance/internal/shared/utils"
)

// APIKeyHandler serves API key issuance and management for the acting user.
type APIKeyHandler struct {
	createUseCase *usecases.CreateAPIKeyUseCase
	listUseCase   *usecases.ListAPIKeysUseCase
	updateUseCase *usecases.UpdateAPIKeyUseCase
	deleteUseCase *usecases.DeleteAPIKeyUseCase
	logger        logger.Interface
}

// NewAPIKeyHandler creates a new API key handler
func NewAPIKeyHandler(
	createUC *usecases.CreateAPIKeyUseCase,
	listUC *usecases.ListAPIKeysUseCase,
	updateUC *usecases.UpdateAPIKeyUseCase,
	deleteUC *usecases.DeleteAPIKeyUseCase,
	logger logger.Interface,
) *APIKeyHandler {
	return &APIKeyHandler{
		createUseCase: createUC,
		listUseCase:   listUC,
		updateUseCase: updateUC,
		deleteUseCase: deleteUC,
		logger:        logger,
	}
}

func (h *APIKeyHandler) Create(c *gin.Context) {
	var req dto.CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateAPIKeyCommand{
		UserID: middleware.CurrentUserID(c),
		Name:   req.Name,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The raw key appears in this response only. Later reads are masked.
	utils.CreatedResponse(c, gin.H{
		"key":    result.Key,
		"rawKey": result.RawKey,
	}, "API key created, store the raw key now")
}

func (h *APIKeyHandler) List(c *gin.Context) {
	keys, err := h.listUseCase.Execute(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", keys)
}

func (h *APIKeyHandler) Update(c *gin.Context) {
	var req dto.UpdateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateAPIKeyCommand{
		UserID: middleware.CurrentUserID(c),
		KeyID:  c.Param("id"),
		Name:   req.Name,
		Active: req.Active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "API key updated", updated)
}

func (h *APIKeyHandler) Delete(c *gin.Context) {
	err := h.deleteUseCase.Execute(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
