package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pharris560/ace-attendance/internal/shared/utils"
)

// HealthHandler answers liveness probes. With a SQL backend it also pings
// the database so a wedged pool flips the probe.
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler. db may be nil for the
// memory backend.
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *gin.Context) {
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			utils.ErrorResponse(c, http.StatusServiceUnavailable, "database unreachable")
			return
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
}
